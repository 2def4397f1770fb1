package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/clubhub-dev/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-dev/clubhub/internal/domain/entity"
)

// Notifier is the delivery-channel collaborator. All sends are
// fire-and-forget booleans with no retry contract.
type Notifier interface {
	SendEmail(to, subject, body string) bool
	SendPush(userID, title, body string) bool
	SendSMS(phone, body string) bool
}

type NotificationStorage interface {
	Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error)
	Get(ctx context.Context, id string) (*entity.Notification, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.Notification, error)
	GetByEventID(ctx context.Context, eventID string) ([]entity.Notification, error)
	Update(ctx context.Context, notification *entity.Notification) (*entity.Notification, error)
}

type notifyEventStorage interface {
	Get(ctx context.Context, id string) (*entity.Event, error)
	GetUpcoming(ctx context.Context, before time.Time) ([]entity.Event, error)
}

type notifyMemberStorage interface {
	GetByClubID(ctx context.Context, clubID string) ([]entity.Member, error)
}

type notifyUserStorage interface {
	Get(ctx context.Context, id string) (*entity.User, error)
}

// NotifyService is the reminder dispatch pipeline. It computes the
// eligible recipient set from membership state, renders the message,
// fans out through the notifier channels and records one Notification
// per recipient. Per-recipient failures are swallowed so one bad
// recipient never aborts the rest.
type NotifyService struct {
	notificationStorage NotificationStorage
	eventStorage        notifyEventStorage
	memberStorage       notifyMemberStorage
	userStorage         notifyUserStorage

	notifier    Notifier
	broadcaster Broadcaster
	logger      *zap.SugaredLogger

	clock func() time.Time
}

func NewNotifyService(
	logger *zap.SugaredLogger,
	notificationStorage NotificationStorage,
	eventStorage notifyEventStorage,
	memberStorage notifyMemberStorage,
	userStorage notifyUserStorage,
	notifier Notifier,
	broadcaster Broadcaster,
) *NotifyService {
	return &NotifyService{
		logger:              logger,
		notificationStorage: notificationStorage,
		eventStorage:        eventStorage,
		memberStorage:       memberStorage,
		userStorage:         userStorage,
		notifier:            notifier,
		broadcaster:         broadcaster,
		clock:               time.Now,
	}
}

// SendEventReminder notifies every approved member of clubID whose
// linked user record resolves, provided the event starts within
// (0, hoursBeforeEvent] hours from now. Dispatch is sequential and
// best-effort. A member with an existing Notification record for the
// event is skipped, so repeated runs never re-deliver.
//
// Each recipient gets one Notification record filed under the email
// channel even though push is attempted as well; the channels actually
// tried are kept in ChannelsAttempted.
func (s *NotifyService) SendEventReminder(ctx context.Context, eventID, clubID string, hoursBeforeEvent float64) error {
	event, err := s.eventStorage.Get(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return errorz.NotFound("event not found")
	}

	// The window is evaluated once per event so eligibility cannot flip
	// between members of the same run.
	hoursUntilStart := event.HoursUntilStart(s.clock())
	if hoursUntilStart <= 0 || hoursUntilStart > hoursBeforeEvent {
		return nil
	}

	existing, err := s.notificationStorage.GetByEventID(ctx, eventID)
	if err != nil {
		return err
	}
	alreadyNotified := make(map[string]bool, len(existing))
	for _, notification := range existing {
		alreadyNotified[notification.UserID] = true
	}

	members, err := s.memberStorage.GetByClubID(ctx, clubID)
	if err != nil {
		return err
	}

	notified := 0
	for _, member := range members {
		if member.Status != entity.MemberStatusApproved {
			continue
		}
		if alreadyNotified[member.UserID] {
			continue
		}

		user, err := s.userStorage.Get(ctx, member.UserID)
		if err != nil {
			s.logger.Errorf("failed to resolve user %s for reminder: %v", member.UserID, err)
			continue
		}
		if user == nil {
			// Dangling member row; tolerated, not fatal.
			continue
		}

		s.dispatchToMember(ctx, event, member, user, hoursUntilStart)
		notified++
	}

	if notified > 0 {
		s.broadcaster.NotifyClub(clubID, "event-reminder", event)
	}
	return nil
}

func (s *NotifyService) dispatchToMember(ctx context.Context, event *entity.Event, member entity.Member, user *entity.User, hoursUntilStart float64) {
	location := event.Location
	if location == "" {
		location = "TBD"
	}
	message := fmt.Sprintf("[%s] starts in about %d hours. Location: %s",
		event.Title, int(math.Round(hoursUntilStart)), location)

	emailSent := s.notifier.SendEmail(user.Email, fmt.Sprintf("[Event reminder] %s", event.Title), message)
	s.notifier.SendPush(member.UserID, event.Title, message)

	now := s.clock()
	notification, err := s.notificationStorage.Create(ctx, &entity.Notification{
		EventID: event.ID,
		UserID:  member.UserID,
		Channel: entity.NotificationChannelEmail,
		ChannelsAttempted: []string{
			string(entity.NotificationChannelEmail),
			string(entity.NotificationChannelPush),
		},
		Message:   message,
		Status:    entity.NotificationStatusPending,
		CreatedAt: now,
	})
	if err != nil {
		s.logger.Errorf("failed to record notification for user %s: %v", member.UserID, err)
		return
	}

	if emailSent {
		notification.Status = entity.NotificationStatusSent
		notification.SentAt = &now
		if _, err = s.notificationStorage.Update(ctx, notification); err != nil {
			s.logger.Errorf("failed to mark notification %s as sent: %v", notification.ID, err)
		}
	}
}

// CheckAndNotify scans events starting within the next 24 hours and
// runs the reminder pipeline for each; invoked by the scheduler.
func (s *NotifyService) CheckAndNotify(ctx context.Context) {
	now := s.clock()
	events, err := s.eventStorage.GetUpcoming(ctx, now.Add(manualReminderWindowHours*time.Hour))
	if err != nil {
		s.logger.Errorf("failed to get upcoming events: %v", err)
		return
	}

	for _, event := range events {
		if err := s.SendEventReminder(ctx, event.ID, event.ClubID, manualReminderWindowHours); err != nil {
			s.logger.Errorf("reminder dispatch for event %s failed: %v", event.ID, err)
		}
	}
}

// GetUserNotifications lists the notifications recorded for a user.
func (s *NotifyService) GetUserNotifications(ctx context.Context, userID string) ([]entity.Notification, error) {
	return s.notificationStorage.GetByUserID(ctx, userID)
}

// MarkAsRead transitions a notification to sent. Only the recipient may
// mark their own notification.
func (s *NotifyService) MarkAsRead(ctx context.Context, notificationID, userID string) (*entity.Notification, error) {
	notification, err := s.notificationStorage.Get(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, errorz.NotFound("notification not found")
	}
	if notification.UserID != userID {
		return nil, errorz.Forbidden("notification belongs to another user")
	}

	notification.Status = entity.NotificationStatusSent
	return s.notificationStorage.Update(ctx, notification)
}
