package store

import (
	"context"

	"github.com/MKhiriev/go-biz-reviews/models"
)

// UserRepository persists and retrieves user accounts.
//
// CreateUser never writes the admin column: the database default (false) is
// the only way the flag gets its value on insert. No caller, including the
// registration handler and the seed importer, can create an administrator
// through this interface.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// BusinessRepository persists and retrieves business listings.
type BusinessRepository interface {
	CreateBusiness(ctx context.Context, business models.Business) (models.Business, error)
	GetAllBusinesses(ctx context.Context) ([]models.Business, error)
	FindBusinessByID(ctx context.Context, businessID int64) (models.Business, error)
	FindBusinessesByOwner(ctx context.Context, ownerID int64) ([]models.Business, error)
	UpdateBusiness(ctx context.Context, businessID int64, update models.BusinessUpdate) error
	DeleteBusiness(ctx context.Context, businessID int64) error
}

// PhotoRepository persists and retrieves photos.
type PhotoRepository interface {
	CreatePhoto(ctx context.Context, photo models.Photo) (models.Photo, error)
	GetAllPhotos(ctx context.Context) ([]models.Photo, error)
	FindPhotoByID(ctx context.Context, photoID int64) (models.Photo, error)
	FindPhotosByOwner(ctx context.Context, userID int64) ([]models.Photo, error)
	UpdatePhoto(ctx context.Context, photoID int64, update models.PhotoUpdate) error
	DeletePhoto(ctx context.Context, photoID int64) error
}

// ReviewRepository persists and retrieves reviews.
type ReviewRepository interface {
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)
	GetAllReviews(ctx context.Context) ([]models.Review, error)
	FindReviewByID(ctx context.Context, reviewID int64) (models.Review, error)
	FindReviewsByOwner(ctx context.Context, userID int64) ([]models.Review, error)
	UpdateReview(ctx context.Context, reviewID int64, update models.ReviewUpdate) error
	DeleteReview(ctx context.Context, reviewID int64) error
}
