package service

import (
	"context"

	"github.com/MKhiriev/go-biz-reviews/models"
)

// Hand-rolled repository fakes with function fields. Each test sets only the
// methods it expects to be called; an unset method panics, which surfaces
// unexpected repository traffic immediately.

type fakeUserRepo struct {
	createUser      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmail func(ctx context.Context, email string) (models.User, error)
	findUserByID    func(ctx context.Context, userID int64) (models.User, error)
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return f.createUser(ctx, user)
}

func (f *fakeUserRepo) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return f.findUserByEmail(ctx, email)
}

func (f *fakeUserRepo) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return f.findUserByID(ctx, userID)
}

type fakeBusinessRepo struct {
	createBusiness        func(ctx context.Context, business models.Business) (models.Business, error)
	getAllBusinesses      func(ctx context.Context) ([]models.Business, error)
	findBusinessByID      func(ctx context.Context, businessID int64) (models.Business, error)
	findBusinessesByOwner func(ctx context.Context, ownerID int64) ([]models.Business, error)
	updateBusiness        func(ctx context.Context, businessID int64, update models.BusinessUpdate) error
	deleteBusiness        func(ctx context.Context, businessID int64) error
}

func (f *fakeBusinessRepo) CreateBusiness(ctx context.Context, business models.Business) (models.Business, error) {
	return f.createBusiness(ctx, business)
}

func (f *fakeBusinessRepo) GetAllBusinesses(ctx context.Context) ([]models.Business, error) {
	return f.getAllBusinesses(ctx)
}

func (f *fakeBusinessRepo) FindBusinessByID(ctx context.Context, businessID int64) (models.Business, error) {
	return f.findBusinessByID(ctx, businessID)
}

func (f *fakeBusinessRepo) FindBusinessesByOwner(ctx context.Context, ownerID int64) ([]models.Business, error) {
	return f.findBusinessesByOwner(ctx, ownerID)
}

func (f *fakeBusinessRepo) UpdateBusiness(ctx context.Context, businessID int64, update models.BusinessUpdate) error {
	return f.updateBusiness(ctx, businessID, update)
}

func (f *fakeBusinessRepo) DeleteBusiness(ctx context.Context, businessID int64) error {
	return f.deleteBusiness(ctx, businessID)
}

type fakeReviewRepo struct {
	createReview       func(ctx context.Context, review models.Review) (models.Review, error)
	getAllReviews      func(ctx context.Context) ([]models.Review, error)
	findReviewByID     func(ctx context.Context, reviewID int64) (models.Review, error)
	findReviewsByOwner func(ctx context.Context, userID int64) ([]models.Review, error)
	updateReview       func(ctx context.Context, reviewID int64, update models.ReviewUpdate) error
	deleteReview       func(ctx context.Context, reviewID int64) error
}

func (f *fakeReviewRepo) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	return f.createReview(ctx, review)
}

func (f *fakeReviewRepo) GetAllReviews(ctx context.Context) ([]models.Review, error) {
	return f.getAllReviews(ctx)
}

func (f *fakeReviewRepo) FindReviewByID(ctx context.Context, reviewID int64) (models.Review, error) {
	return f.findReviewByID(ctx, reviewID)
}

func (f *fakeReviewRepo) FindReviewsByOwner(ctx context.Context, userID int64) ([]models.Review, error) {
	return f.findReviewsByOwner(ctx, userID)
}

func (f *fakeReviewRepo) UpdateReview(ctx context.Context, reviewID int64, update models.ReviewUpdate) error {
	return f.updateReview(ctx, reviewID, update)
}

func (f *fakeReviewRepo) DeleteReview(ctx context.Context, reviewID int64) error {
	return f.deleteReview(ctx, reviewID)
}
