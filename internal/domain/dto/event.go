package dto

import "time"

type CreateEvent struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Location     string    `json:"location"`
	MaxAttendees int       `json:"maxAttendees"`
}

// UpdateEvent carries a partial update; nil fields are left untouched.
// Date validation happens against the merge of these fields with the
// stored event, not against the patch alone.
type UpdateEvent struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Location     *string    `json:"location"`
	MaxAttendees *int       `json:"maxAttendees"`
}

type FilterEvents struct {
	ClubID string
	From   *time.Time
	To     *time.Time
}
