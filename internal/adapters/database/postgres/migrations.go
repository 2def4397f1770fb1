package postgres

import "github.com/clubhub-dev/clubhub/internal/domain/entity"

// Migrations is a list of all gorm migrations for the database.
var Migrations = []interface{}{
	&entity.User{},
	&entity.Club{},
	&entity.Member{},
	&entity.Event{},
	&entity.Announcement{},
	&entity.Notification{},
}
