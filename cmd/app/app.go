package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/viper"

	"github.com/clubhub-dev/clubhub/internal/adapters/broadcast"
	"github.com/clubhub-dev/clubhub/internal/adapters/config"
	httpController "github.com/clubhub-dev/clubhub/internal/adapters/controller/http"
	"github.com/clubhub-dev/clubhub/internal/adapters/database/postgres"
	"github.com/clubhub-dev/clubhub/internal/adapters/logger"
	"github.com/clubhub-dev/clubhub/internal/adapters/notifier"
	"github.com/clubhub-dev/clubhub/internal/adapters/scheduler"
	"github.com/clubhub-dev/clubhub/internal/domain/service"
	"github.com/clubhub-dev/clubhub/pkg/smtp"
)

// App wires the storages, services and transports together.
type App struct {
	server    *http.Server
	scheduler *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	userStorage := postgres.NewUserStorage(cfg.Database)
	clubStorage := postgres.NewClubStorage(cfg.Database)
	memberStorage := postgres.NewMemberStorage(cfg.Database)
	eventStorage := postgres.NewEventStorage(cfg.Database)
	announcementStorage := postgres.NewAnnouncementStorage(cfg.Database)
	notificationStorage := postgres.NewNotificationStorage(cfg.Database)

	registry := broadcast.NewRegistry()

	hubLogger, err := logger.Named("hub")
	if err != nil {
		return nil, err
	}
	hub := broadcast.NewHub(registry, hubLogger.SugaredLogger)

	notifierLogger, err := logger.Named("notifier")
	if err != nil {
		return nil, err
	}
	channels := notifier.New(smtp.NewClient(cfg.SMTPDialer), notifierLogger.SugaredLogger)

	notifyLogger, err := logger.Named("notify")
	if err != nil {
		return nil, err
	}

	authz := service.NewAuthzService(memberStorage)
	userService := service.NewUserService(userStorage)
	authService := service.NewAuthService(userService, cfg.Redis.Sessions, viper.GetString("service.jwt.secret"))
	clubService := service.NewClubService(clubStorage, authz)
	memberService := service.NewMemberService(memberStorage, clubStorage, authz)
	notifyService := service.NewNotifyService(
		notifyLogger.SugaredLogger,
		notificationStorage,
		eventStorage,
		memberStorage,
		userStorage,
		channels,
		hub,
	)
	eventService := service.NewEventService(eventStorage, clubStorage, authz, notifyService, hub)
	announcementService := service.NewAnnouncementService(announcementStorage, clubStorage, authz, hub)
	searchService := service.NewSearchService(clubStorage, memberStorage, userStorage, eventStorage)

	router := httpController.NewRouter(httpController.Services{
		Auth:          authService,
		Users:         userService,
		Clubs:         clubService,
		Members:       memberService,
		Events:        eventService,
		Announcements: announcementService,
		Notify:        notifyService,
		Search:        searchService,
	}, registry, httpController.Options{
		BaseURL:        viper.GetString("server.base-url"),
		AllowedOrigins: viper.GetStringSlice("server.allowed-origins"),
	})

	schedulerLogger, err := logger.Named("scheduler")
	if err != nil {
		return nil, err
	}

	return &App{
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", viper.GetInt("server.port")),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 0, // SSE connections stay open
		},
		scheduler: scheduler.New(
			notifyService,
			schedulerLogger.SugaredLogger,
			viper.GetDuration("settings.reminder-interval"),
		),
	}, nil
}

// Start runs the reminder scheduler and serves HTTP until the server
// stops.
func (a *App) Start(ctx context.Context) error {
	a.scheduler.Start(ctx)

	logger.Log.Infof("Server listening on %s", a.server.Addr)
	return a.server.ListenAndServe()
}

// Shutdown drains the HTTP server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}
