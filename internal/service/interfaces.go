package service

import (
	"context"

	"github.com/MKhiriev/go-biz-reviews/models"
)

// AuthService handles registration, credential verification, and the JWT
// token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService exposes user profile reads. Password hashes never leave the
// model boundary: the field is excluded from JSON serialization.
type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

// BusinessService implements the ownership-scoped CRUD pattern for business
// listings. List and Get are public; every mutating operation verifies the
// acting principal against the resource's owner.
type BusinessService interface {
	List(ctx context.Context) ([]models.Business, error)
	Get(ctx context.Context, businessID int64) (models.Business, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Business, error)
	Create(ctx context.Context, principal models.Principal, req models.CreateBusinessRequest) (models.Business, error)
	Update(ctx context.Context, principal models.Principal, businessID int64, update models.BusinessUpdate) error
	Delete(ctx context.Context, principal models.Principal, businessID int64) error
}

// PhotoService implements the ownership-scoped CRUD pattern for photos.
type PhotoService interface {
	List(ctx context.Context) ([]models.Photo, error)
	Get(ctx context.Context, photoID int64) (models.Photo, error)
	ListByOwner(ctx context.Context, userID int64) ([]models.Photo, error)
	Create(ctx context.Context, principal models.Principal, req models.CreatePhotoRequest) (models.Photo, error)
	Update(ctx context.Context, principal models.Principal, photoID int64, update models.PhotoUpdate) error
	Delete(ctx context.Context, principal models.Principal, photoID int64) error
}

// ReviewService implements the ownership-scoped CRUD pattern for reviews.
type ReviewService interface {
	List(ctx context.Context) ([]models.Review, error)
	Get(ctx context.Context, reviewID int64) (models.Review, error)
	ListByOwner(ctx context.Context, userID int64) ([]models.Review, error)
	Create(ctx context.Context, principal models.Principal, req models.CreateReviewRequest) (models.Review, error)
	Update(ctx context.Context, principal models.Principal, reviewID int64, update models.ReviewUpdate) error
	Delete(ctx context.Context, principal models.Principal, reviewID int64) error
}
