package dto

import "github.com/clubhub-dev/clubhub/internal/domain/entity"

type CreateAnnouncement struct {
	Title    string                  `json:"title"`
	Content  string                  `json:"content"`
	Type     entity.AnnouncementType `json:"type"`
	IsPinned bool                    `json:"isPinned"`
}

type UpdateAnnouncement struct {
	Title    *string                  `json:"title"`
	Content  *string                  `json:"content"`
	Type     *entity.AnnouncementType `json:"type"`
	IsPinned *bool                    `json:"isPinned"`
}
