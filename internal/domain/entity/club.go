package entity

import "time"

// Club is owned by exactly one user. The owner is not represented as a
// Member row; ownership lives solely on OwnerID.
type Club struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string `gorm:"not null"`
	Description string
	OwnerID     string `gorm:"not null;type:uuid;index"`
}

func (c *Club) IsOwner(userID string) bool {
	return c.OwnerID == userID
}
