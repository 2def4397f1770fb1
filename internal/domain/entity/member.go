package entity

import "time"

type MemberRole string

const (
	MemberRoleMember        MemberRole = "member"
	MemberRoleVicePresident MemberRole = "vice_president"
	MemberRoleManager       MemberRole = "manager"
)

type MemberStatus string

const (
	MemberStatusPending  MemberStatus = "pending"
	MemberStatusApproved MemberStatus = "approved"
	MemberStatusRejected MemberStatus = "rejected"
)

// Member is a join request and, once approved, an active membership.
// The unique index enforces at most one row per (club, user) pair.
type Member struct {
	ID          string       `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ClubID      string       `gorm:"not null;type:uuid;uniqueIndex:idx_members_club_user"`
	UserID      string       `gorm:"not null;type:uuid;uniqueIndex:idx_members_club_user"`
	Role        MemberRole   `gorm:"not null;default:'member'"`
	Status      MemberStatus `gorm:"not null;default:'pending'"`
	RequestedAt time.Time    `gorm:"not null"`
	ApprovedAt  *time.Time
	RejectedAt  *time.Time
}
