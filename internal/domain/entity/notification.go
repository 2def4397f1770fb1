package entity

import (
	"time"

	"github.com/lib/pq"
)

type NotificationChannel string

const (
	NotificationChannelEmail NotificationChannel = "email"
	NotificationChannelSMS   NotificationChannel = "sms"
	NotificationChannelPush  NotificationChannel = "push"
)

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
)

// Notification records one reminder delivered (or attempted) to a user.
// Channel holds the channel the record is filed under; ChannelsAttempted
// keeps the full list of channels the dispatcher tried.
type Notification struct {
	ID                string              `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	EventID           string              `gorm:"not null;type:uuid;index"`
	UserID            string              `gorm:"not null;type:uuid;index"`
	Channel           NotificationChannel `gorm:"not null"`
	ChannelsAttempted pq.StringArray      `gorm:"type:text[]"`
	Message           string              `gorm:"not null"`
	Status            NotificationStatus  `gorm:"not null;default:'pending'"`
	CreatedAt         time.Time           `gorm:"not null"`
	SentAt            *time.Time
}
