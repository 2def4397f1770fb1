package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/clubhub-dev/clubhub/internal/domain/entity"
	"go.uber.org/zap"
)

// In-memory fakes for the storage interfaces. Lookups that find nothing
// return (nil, nil), matching the postgres adapters.

type fakeClubStorage struct {
	clubs  map[string]*entity.Club
	nextID int
}

func newFakeClubStorage() *fakeClubStorage {
	return &fakeClubStorage{clubs: make(map[string]*entity.Club)}
}

func (f *fakeClubStorage) Create(_ context.Context, club *entity.Club) (*entity.Club, error) {
	if club.ID == "" {
		f.nextID++
		club.ID = fmt.Sprintf("club-%d", f.nextID)
	}
	f.clubs[club.ID] = club
	return club, nil
}

func (f *fakeClubStorage) Get(_ context.Context, id string) (*entity.Club, error) {
	return f.clubs[id], nil
}

func (f *fakeClubStorage) GetAll(_ context.Context) ([]entity.Club, error) {
	clubs := make([]entity.Club, 0, len(f.clubs))
	for _, club := range f.clubs {
		clubs = append(clubs, *club)
	}
	return clubs, nil
}

func (f *fakeClubStorage) GetWithPagination(_ context.Context, offset, limit int, _ string) ([]entity.Club, error) {
	all, _ := f.GetAll(context.Background())
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeClubStorage) Update(_ context.Context, club *entity.Club) (*entity.Club, error) {
	f.clubs[club.ID] = club
	return club, nil
}

func (f *fakeClubStorage) Delete(_ context.Context, id string) error {
	delete(f.clubs, id)
	return nil
}

func (f *fakeClubStorage) Count(_ context.Context) (int64, error) {
	return int64(len(f.clubs)), nil
}

type fakeMemberStorage struct {
	members map[string]*entity.Member
	nextID  int
}

func newFakeMemberStorage() *fakeMemberStorage {
	return &fakeMemberStorage{members: make(map[string]*entity.Member)}
}

func (f *fakeMemberStorage) Create(_ context.Context, member *entity.Member) (*entity.Member, error) {
	if member.ID == "" {
		f.nextID++
		member.ID = fmt.Sprintf("member-%d", f.nextID)
	}
	f.members[member.ID] = member
	return member, nil
}

func (f *fakeMemberStorage) Get(_ context.Context, id string) (*entity.Member, error) {
	return f.members[id], nil
}

func (f *fakeMemberStorage) GetByUserAndClub(_ context.Context, userID, clubID string) (*entity.Member, error) {
	for _, member := range f.members {
		if member.UserID == userID && member.ClubID == clubID {
			return member, nil
		}
	}
	return nil, nil
}

func (f *fakeMemberStorage) GetByClubID(_ context.Context, clubID string) ([]entity.Member, error) {
	members := make([]entity.Member, 0)
	for _, member := range f.members {
		if member.ClubID == clubID {
			members = append(members, *member)
		}
	}
	return members, nil
}

func (f *fakeMemberStorage) Update(_ context.Context, member *entity.Member) (*entity.Member, error) {
	f.members[member.ID] = member
	return member, nil
}

func (f *fakeMemberStorage) Delete(_ context.Context, id string) error {
	delete(f.members, id)
	return nil
}

type fakeEventStorage struct {
	events map[string]*entity.Event
	nextID int
}

func newFakeEventStorage() *fakeEventStorage {
	return &fakeEventStorage{events: make(map[string]*entity.Event)}
}

func (f *fakeEventStorage) Create(_ context.Context, event *entity.Event) (*entity.Event, error) {
	if event.ID == "" {
		f.nextID++
		event.ID = fmt.Sprintf("event-%d", f.nextID)
	}
	f.events[event.ID] = event
	return event, nil
}

func (f *fakeEventStorage) Get(_ context.Context, id string) (*entity.Event, error) {
	return f.events[id], nil
}

func (f *fakeEventStorage) GetAll(_ context.Context) ([]entity.Event, error) {
	events := make([]entity.Event, 0, len(f.events))
	for _, event := range f.events {
		events = append(events, *event)
	}
	return events, nil
}

func (f *fakeEventStorage) GetByClubID(_ context.Context, clubID string) ([]entity.Event, error) {
	events := make([]entity.Event, 0)
	for _, event := range f.events {
		if event.ClubID == clubID {
			events = append(events, *event)
		}
	}
	return events, nil
}

func (f *fakeEventStorage) GetUpcoming(_ context.Context, before time.Time) ([]entity.Event, error) {
	events := make([]entity.Event, 0)
	for _, event := range f.events {
		if event.StartDate.Before(before) {
			events = append(events, *event)
		}
	}
	return events, nil
}

func (f *fakeEventStorage) Update(_ context.Context, event *entity.Event) (*entity.Event, error) {
	f.events[event.ID] = event
	return event, nil
}

func (f *fakeEventStorage) Delete(_ context.Context, id string) error {
	delete(f.events, id)
	return nil
}

type fakeAnnouncementStorage struct {
	announcements map[string]*entity.Announcement
	nextID        int
}

func newFakeAnnouncementStorage() *fakeAnnouncementStorage {
	return &fakeAnnouncementStorage{announcements: make(map[string]*entity.Announcement)}
}

func (f *fakeAnnouncementStorage) Create(_ context.Context, announcement *entity.Announcement) (*entity.Announcement, error) {
	if announcement.ID == "" {
		f.nextID++
		announcement.ID = fmt.Sprintf("announcement-%d", f.nextID)
	}
	if announcement.CreatedAt.IsZero() {
		announcement.CreatedAt = time.Now()
	}
	f.announcements[announcement.ID] = announcement
	return announcement, nil
}

func (f *fakeAnnouncementStorage) Get(_ context.Context, id string) (*entity.Announcement, error) {
	return f.announcements[id], nil
}

func (f *fakeAnnouncementStorage) GetByClubID(_ context.Context, clubID string) ([]entity.Announcement, error) {
	announcements := make([]entity.Announcement, 0)
	for _, announcement := range f.announcements {
		if announcement.ClubID == clubID {
			announcements = append(announcements, *announcement)
		}
	}
	return announcements, nil
}

func (f *fakeAnnouncementStorage) Update(_ context.Context, announcement *entity.Announcement) (*entity.Announcement, error) {
	f.announcements[announcement.ID] = announcement
	return announcement, nil
}

func (f *fakeAnnouncementStorage) Delete(_ context.Context, id string) error {
	delete(f.announcements, id)
	return nil
}

type fakeUserStorage struct {
	users  map[string]*entity.User
	nextID int
}

func newFakeUserStorage() *fakeUserStorage {
	return &fakeUserStorage{users: make(map[string]*entity.User)}
}

func (f *fakeUserStorage) Create(_ context.Context, user *entity.User) (*entity.User, error) {
	if user.ID == "" {
		f.nextID++
		user.ID = fmt.Sprintf("user-%d", f.nextID)
	}
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserStorage) Get(_ context.Context, id string) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserStorage) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStorage) GetAll(_ context.Context) ([]entity.User, error) {
	users := make([]entity.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, *user)
	}
	return users, nil
}

func (f *fakeUserStorage) Update(_ context.Context, user *entity.User) (*entity.User, error) {
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserStorage) Delete(_ context.Context, id string) error {
	delete(f.users, id)
	return nil
}

type fakeNotificationStorage struct {
	notifications map[string]*entity.Notification
	nextID        int
}

func newFakeNotificationStorage() *fakeNotificationStorage {
	return &fakeNotificationStorage{notifications: make(map[string]*entity.Notification)}
}

func (f *fakeNotificationStorage) Create(_ context.Context, notification *entity.Notification) (*entity.Notification, error) {
	if notification.ID == "" {
		f.nextID++
		notification.ID = fmt.Sprintf("notification-%d", f.nextID)
	}
	f.notifications[notification.ID] = notification
	return notification, nil
}

func (f *fakeNotificationStorage) Get(_ context.Context, id string) (*entity.Notification, error) {
	return f.notifications[id], nil
}

func (f *fakeNotificationStorage) GetByUserID(_ context.Context, userID string) ([]entity.Notification, error) {
	notifications := make([]entity.Notification, 0)
	for _, notification := range f.notifications {
		if notification.UserID == userID {
			notifications = append(notifications, *notification)
		}
	}
	return notifications, nil
}

func (f *fakeNotificationStorage) GetByEventID(_ context.Context, eventID string) ([]entity.Notification, error) {
	notifications := make([]entity.Notification, 0)
	for _, notification := range f.notifications {
		if notification.EventID == eventID {
			notifications = append(notifications, *notification)
		}
	}
	return notifications, nil
}

func (f *fakeNotificationStorage) Update(_ context.Context, notification *entity.Notification) (*entity.Notification, error) {
	f.notifications[notification.ID] = notification
	return notification, nil
}

type emailCall struct {
	to      string
	subject string
	body    string
}

type fakeNotifier struct {
	emailOK bool
	pushOK  bool

	emails []emailCall
	pushes []string
	sms    []string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{emailOK: true, pushOK: true}
}

func (f *fakeNotifier) SendEmail(to, subject, body string) bool {
	f.emails = append(f.emails, emailCall{to: to, subject: subject, body: body})
	return f.emailOK
}

func (f *fakeNotifier) SendPush(userID, _, _ string) bool {
	f.pushes = append(f.pushes, userID)
	return f.pushOK
}

func (f *fakeNotifier) SendSMS(phone, _ string) bool {
	f.sms = append(f.sms, phone)
	return true
}

type broadcastCall struct {
	clubID string
	event  string
}

type fakeBroadcaster struct {
	calls []broadcastCall
}

func (f *fakeBroadcaster) NotifyClub(clubID, event string, _ interface{}) {
	f.calls = append(f.calls, broadcastCall{clubID: clubID, event: event})
}

type fakeSessionStorage struct {
	mu       sync.Mutex
	sessions map[string]string
}

func newFakeSessionStorage() *fakeSessionStorage {
	return &fakeSessionStorage{sessions: make(map[string]string)}
}

func (f *fakeSessionStorage) Set(_ context.Context, token, userID string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[token] = userID
	return nil
}

func (f *fakeSessionStorage) Get(_ context.Context, token string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sessions[token], nil
}

func (f *fakeSessionStorage) Delete(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, token)
	return nil
}

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
