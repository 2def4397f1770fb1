package entity

import "time"

type AnnouncementType string

const (
	AnnouncementTypeGeneral AnnouncementType = "general"
	AnnouncementTypeUrgent  AnnouncementType = "urgent"
	AnnouncementTypeEvent   AnnouncementType = "event"
)

type Announcement struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time
	UpdatedAt time.Time
	ClubID    string           `gorm:"not null;type:uuid;index"`
	Title     string           `gorm:"not null"`
	Content   string           `gorm:"not null"`
	Type      AnnouncementType `gorm:"not null;default:'general'"`
	IsPinned  bool             `gorm:"not null;default:false"`
	CreatedBy string           `gorm:"not null;type:uuid"`
}
