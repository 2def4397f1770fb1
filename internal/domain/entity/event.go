package entity

import (
	"fmt"
	"time"
)

type Event struct {
	ID           string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ClubID       string `gorm:"not null;type:uuid;index"`
	Title        string `gorm:"not null"`
	Description  string
	StartDate    time.Time `gorm:"not null"`
	EndDate      time.Time `gorm:"not null"`
	Location     string
	MaxAttendees int
	CreatedBy    string `gorm:"not null;type:uuid"`
}

// HoursUntilStart reports how far in the future the event starts,
// negative once the event has begun.
func (e *Event) HoursUntilStart(now time.Time) float64 {
	return e.StartDate.Sub(now).Hours()
}

// Link generates the public detail URL for the event, used in reminder
// messages and invite QR codes.
func (e *Event) Link(baseURL string) string {
	return fmt.Sprintf("%s/clubs/%s/events/%s", baseURL, e.ClubID, e.ID)
}
