package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/clubhub-dev/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-dev/clubhub/internal/domain/entity"
)

type notifyFixture struct {
	notifications *fakeNotificationStorage
	events        *fakeEventStorage
	members       *fakeMemberStorage
	users         *fakeUserStorage
	notifier      *fakeNotifier
	broadcaster   *fakeBroadcaster
	service       *NotifyService
	now           time.Time
}

func newNotifyFixture(t *testing.T) *notifyFixture {
	t.Helper()

	fx := &notifyFixture{
		notifications: newFakeNotificationStorage(),
		events:        newFakeEventStorage(),
		members:       newFakeMemberStorage(),
		users:         newFakeUserStorage(),
		notifier:      newFakeNotifier(),
		broadcaster:   &fakeBroadcaster{},
		now:           time.Date(2026, 6, 10, 8, 0, 0, 0, time.UTC),
	}
	fx.service = NewNotifyService(
		testLogger(),
		fx.notifications,
		fx.events,
		fx.members,
		fx.users,
		fx.notifier,
		fx.broadcaster,
	)
	fx.service.clock = func() time.Time { return fx.now }
	return fx
}

func (fx *notifyFixture) seedUser(t *testing.T, id, email string) {
	t.Helper()
	if _, err := fx.users.Create(context.Background(), &entity.User{
		ID:    id,
		Email: email,
		Name:  id,
		Role:  entity.UserRoleUser,
	}); err != nil {
		t.Fatalf("seed user %s: %v", id, err)
	}
}

func (fx *notifyFixture) seedMember(t *testing.T, clubID, userID string, status entity.MemberStatus) {
	t.Helper()
	if _, err := fx.members.Create(context.Background(), &entity.Member{
		ClubID:      clubID,
		UserID:      userID,
		Role:        entity.MemberRoleMember,
		Status:      status,
		RequestedAt: fx.now,
	}); err != nil {
		t.Fatalf("seed member %s: %v", userID, err)
	}
}

func (fx *notifyFixture) seedEvent(t *testing.T, clubID string, startsIn time.Duration) *entity.Event {
	t.Helper()
	event, err := fx.events.Create(context.Background(), &entity.Event{
		ClubID:    clubID,
		Title:     "spring tournament",
		StartDate: fx.now.Add(startsIn),
		EndDate:   fx.now.Add(startsIn + 2*time.Hour),
		Location:  "main hall",
		CreatedBy: "owner",
	})
	if err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return event
}

func TestSendEventReminderNotifiesApprovedMember(t *testing.T) {
	fx := newNotifyFixture(t)
	ctx := context.Background()

	fx.seedUser(t, "alice", "alice@example.com")
	fx.seedMember(t, "club-1", "alice", entity.MemberStatusApproved)
	event := fx.seedEvent(t, "club-1", 10*time.Hour)

	if err := fx.service.SendEventReminder(ctx, event.ID, "club-1", 24); err != nil {
		t.Fatalf("SendEventReminder: %v", err)
	}

	if len(fx.notifier.emails) != 1 {
		t.Fatalf("emails sent = %d, want 1", len(fx.notifier.emails))
	}
	email := fx.notifier.emails[0]
	if email.to != "alice@example.com" {
		t.Fatalf("email to = %q, want alice@example.com", email.to)
	}
	if !strings.Contains(email.body, "10 hours") {
		t.Fatalf("email body = %q, want rounded hours mention", email.body)
	}
	if !strings.Contains(email.body, "main hall") {
		t.Fatalf("email body = %q, want location", email.body)
	}
	if len(fx.notifier.pushes) != 1 || fx.notifier.pushes[0] != "alice" {
		t.Fatalf("pushes = %v, want one for alice", fx.notifier.pushes)
	}

	notifications, _ := fx.notifications.GetByUserID(ctx, "alice")
	if len(notifications) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notifications))
	}
	n := notifications[0]
	if n.Channel != entity.NotificationChannelEmail {
		t.Fatalf("channel = %q, want email", n.Channel)
	}
	if len(n.ChannelsAttempted) != 2 {
		t.Fatalf("channelsAttempted = %v, want email and push", n.ChannelsAttempted)
	}
	if n.Status != entity.NotificationStatusSent {
		t.Fatalf("status = %q, want sent", n.Status)
	}
	if n.SentAt == nil || !n.SentAt.Equal(fx.now) {
		t.Fatalf("sentAt = %v, want %v", n.SentAt, fx.now)
	}

	if len(fx.broadcaster.calls) != 1 || fx.broadcaster.calls[0].event != "event-reminder" {
		t.Fatalf("broadcasts = %+v, want one event-reminder", fx.broadcaster.calls)
	}
}

func TestSendEventReminderSkipsPendingAndRejected(t *testing.T) {
	fx := newNotifyFixture(t)
	ctx := context.Background()

	fx.seedUser(t, "bob", "bob@example.com")
	fx.seedUser(t, "carol", "carol@example.com")
	fx.seedMember(t, "club-1", "bob", entity.MemberStatusPending)
	fx.seedMember(t, "club-1", "carol", entity.MemberStatusRejected)
	event := fx.seedEvent(t, "club-1", 10*time.Hour)

	if err := fx.service.SendEventReminder(ctx, event.ID, "club-1", 24); err != nil {
		t.Fatalf("SendEventReminder: %v", err)
	}
	if len(fx.notifier.emails) != 0 {
		t.Fatalf("emails sent = %d, want 0", len(fx.notifier.emails))
	}
	if len(fx.broadcaster.calls) != 0 {
		t.Fatalf("broadcast fired with no eligible recipients")
	}
}

func TestSendEventReminderSkipsDanglingMember(t *testing.T) {
	fx := newNotifyFixture(t)
	ctx := context.Background()

	fx.seedUser(t, "alice", "alice@example.com")
	fx.seedMember(t, "club-1", "alice", entity.MemberStatusApproved)
	fx.seedMember(t, "club-1", "ghost", entity.MemberStatusApproved)
	event := fx.seedEvent(t, "club-1", 10*time.Hour)

	if err := fx.service.SendEventReminder(ctx, event.ID, "club-1", 24); err != nil {
		t.Fatalf("SendEventReminder: %v", err)
	}
	if len(fx.notifier.emails) != 1 || fx.notifier.emails[0].to != "alice@example.com" {
		t.Fatalf("emails = %+v, want only alice", fx.notifier.emails)
	}
}

func TestSendEventReminderOutsideWindow(t *testing.T) {
	fx := newNotifyFixture(t)
	ctx := context.Background()

	fx.seedUser(t, "alice", "alice@example.com")
	fx.seedMember(t, "club-1", "alice", entity.MemberStatusApproved)

	cases := []struct {
		name     string
		startsIn time.Duration
	}{
		{"too far out", 30 * time.Hour},
		{"already started", -time.Hour},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			event := fx.seedEvent(t, "club-1", c.startsIn)
			if err := fx.service.SendEventReminder(ctx, event.ID, "club-1", 24); err != nil {
				t.Fatalf("SendEventReminder: %v", err)
			}
			if len(fx.notifier.emails) != 0 {
				t.Fatalf("emails sent = %d, want 0", len(fx.notifier.emails))
			}
		})
	}
}

func TestSendEventReminderAtWindowBoundary(t *testing.T) {
	fx := newNotifyFixture(t)
	ctx := context.Background()

	fx.seedUser(t, "alice", "alice@example.com")
	fx.seedMember(t, "club-1", "alice", entity.MemberStatusApproved)
	event := fx.seedEvent(t, "club-1", 24*time.Hour)

	if err := fx.service.SendEventReminder(ctx, event.ID, "club-1", 24); err != nil {
		t.Fatalf("SendEventReminder: %v", err)
	}
	if len(fx.notifier.emails) != 1 {
		t.Fatalf("emails sent = %d, want 1 at exactly 24h out", len(fx.notifier.emails))
	}
}

func TestSendEventReminderUnknownEvent(t *testing.T) {
	fx := newNotifyFixture(t)

	err := fx.service.SendEventReminder(context.Background(), "missing", "club-1", 24)
	if !errorz.Is(err, errorz.KindNotFound) {
		t.Fatalf("err = %v, want not_found", err)
	}
}

func TestSendEventReminderEmailFailureLeavesPending(t *testing.T) {
	fx := newNotifyFixture(t)
	ctx := context.Background()

	fx.notifier.emailOK = false
	fx.seedUser(t, "alice", "alice@example.com")
	fx.seedMember(t, "club-1", "alice", entity.MemberStatusApproved)
	event := fx.seedEvent(t, "club-1", 10*time.Hour)

	if err := fx.service.SendEventReminder(ctx, event.ID, "club-1", 24); err != nil {
		t.Fatalf("SendEventReminder: %v", err)
	}

	notifications, _ := fx.notifications.GetByUserID(ctx, "alice")
	if len(notifications) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notifications))
	}
	if notifications[0].Status != entity.NotificationStatusPending {
		t.Fatalf("status = %q, want pending after failed email", notifications[0].Status)
	}
	if notifications[0].SentAt != nil {
		t.Fatalf("sentAt set despite failed email")
	}
}

func TestSendEventReminderTBDLocation(t *testing.T) {
	fx := newNotifyFixture(t)
	ctx := context.Background()

	fx.seedUser(t, "alice", "alice@example.com")
	fx.seedMember(t, "club-1", "alice", entity.MemberStatusApproved)
	event := fx.seedEvent(t, "club-1", 10*time.Hour)
	event.Location = ""
	if _, err := fx.events.Update(ctx, event); err != nil {
		t.Fatalf("update event: %v", err)
	}

	if err := fx.service.SendEventReminder(ctx, event.ID, "club-1", 24); err != nil {
		t.Fatalf("SendEventReminder: %v", err)
	}
	if len(fx.notifier.emails) != 1 || !strings.Contains(fx.notifier.emails[0].body, "TBD") {
		t.Fatalf("emails = %+v, want TBD location", fx.notifier.emails)
	}
}

func TestSendEventReminderSkipsAlreadyNotifiedMember(t *testing.T) {
	fx := newNotifyFixture(t)
	ctx := context.Background()

	fx.seedUser(t, "alice", "alice@example.com")
	fx.seedMember(t, "club-1", "alice", entity.MemberStatusApproved)
	event := fx.seedEvent(t, "club-1", 10*time.Hour)

	if err := fx.service.SendEventReminder(ctx, event.ID, "club-1", 24); err != nil {
		t.Fatalf("first SendEventReminder: %v", err)
	}
	if err := fx.service.SendEventReminder(ctx, event.ID, "club-1", 24); err != nil {
		t.Fatalf("second SendEventReminder: %v", err)
	}

	notifications, _ := fx.notifications.GetByUserID(ctx, "alice")
	if len(notifications) != 1 {
		t.Fatalf("notifications = %d, want 1 after a repeated trigger", len(notifications))
	}
	if len(fx.notifier.emails) != 1 {
		t.Fatalf("emails sent = %d, want 1 after a repeated trigger", len(fx.notifier.emails))
	}
	if len(fx.broadcaster.calls) != 1 {
		t.Fatalf("broadcasts = %d, want 1 after a repeated trigger", len(fx.broadcaster.calls))
	}
}

func TestSendEventReminderDoesNotRetryFailedEmail(t *testing.T) {
	fx := newNotifyFixture(t)
	ctx := context.Background()

	fx.notifier.emailOK = false
	fx.seedUser(t, "alice", "alice@example.com")
	fx.seedMember(t, "club-1", "alice", entity.MemberStatusApproved)
	event := fx.seedEvent(t, "club-1", 10*time.Hour)

	for i := 0; i < 2; i++ {
		if err := fx.service.SendEventReminder(ctx, event.ID, "club-1", 24); err != nil {
			t.Fatalf("SendEventReminder: %v", err)
		}
	}

	// The pending record from the failed attempt still marks the member
	// as handled.
	notifications, _ := fx.notifications.GetByUserID(ctx, "alice")
	if len(notifications) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notifications))
	}
}

func TestSendEventReminderWindowEvaluatedOncePerEvent(t *testing.T) {
	fx := newNotifyFixture(t)
	ctx := context.Background()

	fx.seedUser(t, "alice", "alice@example.com")
	fx.seedUser(t, "bob", "bob@example.com")
	fx.seedMember(t, "club-1", "alice", entity.MemberStatusApproved)
	fx.seedMember(t, "club-1", "bob", entity.MemberStatusApproved)
	event := fx.seedEvent(t, "club-1", 10*time.Hour)

	// The clock jumps far past the event after its first reading, as a
	// slow dispatch would observe. Eligibility must not flip between
	// members of the same run.
	calls := 0
	fx.service.clock = func() time.Time {
		calls++
		if calls == 1 {
			return fx.now
		}
		return fx.now.Add(48 * time.Hour)
	}

	if err := fx.service.SendEventReminder(ctx, event.ID, "club-1", 24); err != nil {
		t.Fatalf("SendEventReminder: %v", err)
	}
	if len(fx.notifier.emails) != 2 {
		t.Fatalf("emails sent = %d, want both members notified", len(fx.notifier.emails))
	}
}

func TestCheckAndNotifyScansUpcomingEvents(t *testing.T) {
	fx := newNotifyFixture(t)
	ctx := context.Background()

	fx.seedUser(t, "alice", "alice@example.com")
	fx.seedMember(t, "club-1", "alice", entity.MemberStatusApproved)
	fx.seedEvent(t, "club-1", 10*time.Hour)
	fx.seedEvent(t, "club-1", 72*time.Hour)

	fx.service.CheckAndNotify(ctx)

	if len(fx.notifier.emails) != 1 {
		t.Fatalf("emails sent = %d, want 1 for the near event only", len(fx.notifier.emails))
	}
}

func TestCheckAndNotifyIsIdempotentAcrossTicks(t *testing.T) {
	fx := newNotifyFixture(t)
	ctx := context.Background()

	fx.seedUser(t, "alice", "alice@example.com")
	fx.seedMember(t, "club-1", "alice", entity.MemberStatusApproved)
	event := fx.seedEvent(t, "club-1", 10*time.Hour)

	fx.service.CheckAndNotify(ctx)
	fx.now = fx.now.Add(time.Minute)
	fx.service.CheckAndNotify(ctx)

	notifications, _ := fx.notifications.GetByEventID(ctx, event.ID)
	if len(notifications) != 1 {
		t.Fatalf("notification records after two ticks = %d, want 1", len(notifications))
	}
	if len(fx.notifier.emails) != 1 {
		t.Fatalf("emails after two ticks = %d, want 1", len(fx.notifier.emails))
	}
}

func TestGetUserNotifications(t *testing.T) {
	fx := newNotifyFixture(t)
	ctx := context.Background()

	for _, userID := range []string{"alice", "alice", "bob"} {
		if _, err := fx.notifications.Create(ctx, &entity.Notification{
			EventID:   "event-1",
			UserID:    userID,
			Channel:   entity.NotificationChannelEmail,
			Message:   "hello",
			Status:    entity.NotificationStatusSent,
			CreatedAt: fx.now,
		}); err != nil {
			t.Fatalf("seed notification: %v", err)
		}
	}

	listed, err := fx.service.GetUserNotifications(ctx, "alice")
	if err != nil {
		t.Fatalf("GetUserNotifications: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("len = %d, want 2", len(listed))
	}
}

func TestMarkAsRead(t *testing.T) {
	fx := newNotifyFixture(t)
	ctx := context.Background()

	notification, err := fx.notifications.Create(ctx, &entity.Notification{
		EventID:   "event-1",
		UserID:    "alice",
		Channel:   entity.NotificationChannelEmail,
		Message:   "hello",
		Status:    entity.NotificationStatusPending,
		CreatedAt: fx.now,
	})
	if err != nil {
		t.Fatalf("seed notification: %v", err)
	}

	_, err = fx.service.MarkAsRead(ctx, notification.ID, "bob")
	if !errorz.Is(err, errorz.KindForbidden) {
		t.Fatalf("err = %v, want forbidden for another user", err)
	}

	_, err = fx.service.MarkAsRead(ctx, "missing", "alice")
	if !errorz.Is(err, errorz.KindNotFound) {
		t.Fatalf("err = %v, want not_found", err)
	}

	updated, err := fx.service.MarkAsRead(ctx, notification.ID, "alice")
	if err != nil {
		t.Fatalf("MarkAsRead: %v", err)
	}
	if updated.Status != entity.NotificationStatusSent {
		t.Fatalf("status = %q, want sent", updated.Status)
	}
}
