package dto

type CreateClub struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateClub carries a partial update; nil fields are left untouched.
type UpdateClub struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
