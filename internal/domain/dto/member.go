package dto

import "github.com/clubhub-dev/clubhub/internal/domain/entity"

type ChangeMemberRole struct {
	Role entity.MemberRole `json:"role"`
}

// MemberWithUser pairs a membership row with the resolved user record,
// as returned by member search.
type MemberWithUser struct {
	Member entity.Member `json:"member"`
	User   PublicUser    `json:"user"`
}
