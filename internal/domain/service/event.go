package service

import (
	"context"
	"time"

	"github.com/clubhub-dev/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-dev/clubhub/internal/domain/dto"
	"github.com/clubhub-dev/clubhub/internal/domain/entity"
	"github.com/clubhub-dev/clubhub/internal/domain/utils/validator"
)

type EventStorage interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	Get(ctx context.Context, id string) (*entity.Event, error)
	GetAll(ctx context.Context) ([]entity.Event, error)
	GetByClubID(ctx context.Context, clubID string) ([]entity.Event, error)
	GetUpcoming(ctx context.Context, before time.Time) ([]entity.Event, error)
	Update(ctx context.Context, event *entity.Event) (*entity.Event, error)
	Delete(ctx context.Context, id string) error
}

type eventClubStorage interface {
	Get(ctx context.Context, id string) (*entity.Club, error)
}

// reminderDispatcher is the reminder pipeline consumed by the manual
// owner-gated trigger.
type reminderDispatcher interface {
	SendEventReminder(ctx context.Context, eventID, clubID string, hoursBeforeEvent float64) error
}

// manualReminderWindowHours is the fixed window of the manual trigger;
// the scheduler uses the same value.
const manualReminderWindowHours = 24

type EventService struct {
	storage     EventStorage
	clubStorage eventClubStorage
	authz       *AuthzService
	dispatcher  reminderDispatcher
	broadcaster Broadcaster
}

func NewEventService(
	storage EventStorage,
	clubStorage eventClubStorage,
	authz *AuthzService,
	dispatcher reminderDispatcher,
	broadcaster Broadcaster,
) *EventService {
	return &EventService{
		storage:     storage,
		clubStorage: clubStorage,
		authz:       authz,
		dispatcher:  dispatcher,
		broadcaster: broadcaster,
	}
}

func (s *EventService) getClub(ctx context.Context, clubID string) (*entity.Club, error) {
	club, err := s.clubStorage.Get(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, errorz.NotFound("club not found")
	}
	return club, nil
}

// Create publishes a club event; owner only. Start must be strictly
// before end.
func (s *EventService) Create(ctx context.Context, clubID string, create dto.CreateEvent, createdBy string) (*entity.Event, error) {
	club, err := s.getClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if err = s.authz.RequireOwner(ctx, createdBy, club); err != nil {
		return nil, err
	}
	if !validator.EventTitle(create.Title) {
		return nil, errorz.Validation("event title is required")
	}
	if !validator.EventDates(create.StartDate, create.EndDate) {
		return nil, errorz.Validation("event start date must be before the end date")
	}

	event, err := s.storage.Create(ctx, &entity.Event{
		ClubID:       clubID,
		Title:        create.Title,
		Description:  create.Description,
		StartDate:    create.StartDate,
		EndDate:      create.EndDate,
		Location:     create.Location,
		MaxAttendees: create.MaxAttendees,
		CreatedBy:    createdBy,
	})
	if err != nil {
		return nil, err
	}

	s.broadcaster.NotifyClub(clubID, "new-event", event)
	return event, nil
}

func (s *EventService) GetAll(ctx context.Context, clubID string) ([]entity.Event, error) {
	if _, err := s.getClub(ctx, clubID); err != nil {
		return nil, err
	}
	return s.storage.GetByClubID(ctx, clubID)
}

// Get resolves an event within a club. An id that belongs to another
// club is reported exactly like a missing one.
func (s *EventService) Get(ctx context.Context, clubID, eventID string) (*entity.Event, error) {
	event, err := s.storage.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil || event.ClubID != clubID {
		return nil, errorz.NotFound("event not found")
	}
	return event, nil
}

// Update applies a partial update; owner only. Dates are validated after
// merging the patch with the stored values.
func (s *EventService) Update(ctx context.Context, clubID, eventID string, update dto.UpdateEvent, requesterID string) (*entity.Event, error) {
	club, err := s.getClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	event, err := s.Get(ctx, clubID, eventID)
	if err != nil {
		return nil, err
	}
	if err = s.authz.RequireOwner(ctx, requesterID, club); err != nil {
		return nil, err
	}

	startDate := event.StartDate
	if update.StartDate != nil {
		startDate = *update.StartDate
	}
	endDate := event.EndDate
	if update.EndDate != nil {
		endDate = *update.EndDate
	}
	if !validator.EventDates(startDate, endDate) {
		return nil, errorz.Validation("event start date must be before the end date")
	}

	if update.Title != nil {
		if !validator.EventTitle(*update.Title) {
			return nil, errorz.Validation("event title is required")
		}
		event.Title = *update.Title
	}
	if update.Description != nil {
		event.Description = *update.Description
	}
	if update.Location != nil {
		event.Location = *update.Location
	}
	if update.MaxAttendees != nil {
		event.MaxAttendees = *update.MaxAttendees
	}
	event.StartDate = startDate
	event.EndDate = endDate

	return s.storage.Update(ctx, event)
}

func (s *EventService) Delete(ctx context.Context, clubID, eventID, requesterID string) error {
	club, err := s.getClub(ctx, clubID)
	if err != nil {
		return err
	}
	event, err := s.Get(ctx, clubID, eventID)
	if err != nil {
		return err
	}
	if err = s.authz.RequireOwner(ctx, requesterID, club); err != nil {
		return err
	}
	return s.storage.Delete(ctx, event.ID)
}

// SendReminder manually triggers the reminder pipeline for an event with
// the fixed 24 hour window; owner only.
func (s *EventService) SendReminder(ctx context.Context, clubID, eventID, requesterID string) error {
	club, err := s.getClub(ctx, clubID)
	if err != nil {
		return err
	}
	event, err := s.Get(ctx, clubID, eventID)
	if err != nil {
		return err
	}
	if err = s.authz.RequireOwner(ctx, requesterID, club); err != nil {
		return err
	}
	return s.dispatcher.SendEventReminder(ctx, event.ID, clubID, manualReminderWindowHours)
}
