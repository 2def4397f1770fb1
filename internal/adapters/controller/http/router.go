// Package http is the REST surface of the club management API. Routing
// and status mapping live here; every business rule stays in the domain
// services.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/clubhub-dev/clubhub/internal/adapters/broadcast"
	"github.com/clubhub-dev/clubhub/internal/domain/service"
)

type Services struct {
	Auth          *service.AuthService
	Users         *service.UserService
	Clubs         *service.ClubService
	Members       *service.MemberService
	Events        *service.EventService
	Announcements *service.AnnouncementService
	Notify        *service.NotifyService
	Search        *service.SearchService
}

type Options struct {
	BaseURL        string
	AllowedOrigins []string

	// RequestTimeout bounds non-streaming requests; zero means 30s.
	RequestTimeout time.Duration
}

// NewRouter assembles the chi router with all API routes.
func NewRouter(services Services, registry *broadcast.Registry, opts Options) http.Handler {
	auth := newAuthHandler(services.Auth)
	users := newUserHandler(services.Users)
	clubs := newClubHandler(services.Clubs)
	members := newMemberHandler(services.Members)
	events := newEventHandler(services.Events, opts.BaseURL)
	announcements := newAnnouncementHandler(services.Announcements)
	notifications := newNotificationHandler(services.Notify)
	search := newSearchHandler(services.Search)
	stream := newStreamHandler(registry)

	requestTimeout := opts.RequestTimeout
	if requestTimeout == 0 {
		requestTimeout = 30 * time.Second
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	authenticated := AuthMiddleware(services.Auth)

	// The SSE stream is mounted outside the timeout middleware: its
	// request context must stay alive for the whole subscription.
	router.Group(func(r chi.Router) {
		r.Use(authenticated)
		r.Get("/stream", stream.stream)
	})

	timeLimited := middleware.Timeout(requestTimeout)

	router.With(timeLimited).Route("/auth", func(r chi.Router) {
		r.Post("/register", auth.register)
		r.Post("/login", auth.login)
		r.Post("/refresh", auth.refresh)
		r.Post("/logout", auth.logout)
		r.With(authenticated).Get("/me", auth.me)
	})

	router.With(timeLimited).Route("/clubs", func(r chi.Router) {
		r.Get("/", clubs.list)
		r.With(authenticated).Post("/", clubs.create)

		r.Route("/{clubID}", func(r chi.Router) {
			r.Get("/", clubs.get)
			r.With(authenticated).Patch("/", clubs.update)
			r.With(authenticated).Delete("/", clubs.delete)

			r.Route("/members", func(r chi.Router) {
				r.Get("/", members.list)
				r.With(authenticated).Post("/", members.join)
				r.With(authenticated).Get("/pending", members.pending)
				r.With(authenticated).Delete("/me", members.leave)
				r.With(authenticated).Post("/{memberID}/approve", members.approve)
				r.With(authenticated).Post("/{memberID}/reject", members.reject)
				r.With(authenticated).Patch("/{memberID}/role", members.changeRole)
				r.With(authenticated).Delete("/{memberID}", members.remove)
			})

			r.Route("/events", func(r chi.Router) {
				r.Get("/", events.list)
				r.With(authenticated).Post("/", events.create)
				r.Get("/{eventID}", events.get)
				r.Get("/{eventID}/qr", events.qr)
				r.With(authenticated).Patch("/{eventID}", events.update)
				r.With(authenticated).Delete("/{eventID}", events.delete)
				r.With(authenticated).Post("/{eventID}/remind", events.remind)
			})

			r.Route("/announcements", func(r chi.Router) {
				r.Get("/", announcements.list)
				r.With(authenticated).Post("/", announcements.create)
				r.Get("/{announcementID}", announcements.get)
				r.With(authenticated).Patch("/{announcementID}", announcements.update)
				r.With(authenticated).Delete("/{announcementID}", announcements.delete)
			})

			r.Get("/search/members", search.members)
		})
	})

	router.With(timeLimited).Route("/search", func(r chi.Router) {
		r.Get("/clubs", search.clubs)
		r.Get("/events", search.events)
	})

	router.Group(func(r chi.Router) {
		r.Use(timeLimited, authenticated)
		r.Get("/notifications", notifications.list)
		r.Post("/notifications/{notificationID}/read", notifications.markAsRead)
		r.Post("/users/{userID}/make-admin", users.makeAdmin)
	})

	return router
}
