package store

import (
	"github.com/MKhiriev/go-biz-reviews/internal/logger"
)

// Repositories bundles one repository per entity over a shared database
// connection.
type Repositories struct {
	UserRepository     UserRepository
	BusinessRepository BusinessRepository
	PhotoRepository    PhotoRepository
	ReviewRepository   ReviewRepository
}

// NewRepositories constructs all entity repositories backed by db.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db, logger),
		BusinessRepository: NewBusinessRepository(db, logger),
		PhotoRepository:    NewPhotoRepository(db, logger),
		ReviewRepository:   NewReviewRepository(db, logger),
	}
}
