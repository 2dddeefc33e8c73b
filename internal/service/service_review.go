package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-biz-reviews/internal/logger"
	"github.com/MKhiriev/go-biz-reviews/internal/store"
	"github.com/MKhiriev/go-biz-reviews/models"
)

// reviewService is the concrete implementation of ReviewService. Ownership
// checks follow the same pattern as photoService; in addition the dollar and
// star ratings are range-checked before they reach the store.
type reviewService struct {
	reviewRepository store.ReviewRepository
	logger           *logger.Logger
}

func NewReviewService(reviewRepository store.ReviewRepository, logger *logger.Logger) ReviewService {
	return &reviewService{reviewRepository: reviewRepository, logger: logger}
}

func (r *reviewService) List(ctx context.Context) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	reviews, err := r.reviewRepository.GetAllReviews(ctx)
	if err != nil {
		log.Err(err).Msg("listing reviews failed")
		return nil, fmt.Errorf("listing reviews failed: %w", err)
	}

	return reviews, nil
}

func (r *reviewService) Get(ctx context.Context, reviewID int64) (models.Review, error) {
	log := logger.FromContext(ctx)

	review, err := r.reviewRepository.FindReviewByID(ctx, reviewID)
	if err != nil {
		log.Err(err).Int64("id", reviewID).Msg("review search by id failed")
		return models.Review{}, fmt.Errorf("review search by id failed: %w", err)
	}

	return review, nil
}

func (r *reviewService) ListByOwner(ctx context.Context, userID int64) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	reviews, err := r.reviewRepository.FindReviewsByOwner(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userId", userID).Msg("listing reviews by user failed")
		return nil, fmt.Errorf("listing reviews by user failed: %w", err)
	}

	return reviews, nil
}

// Create validates the request and inserts a new review. Dollars must fall in
// [1, 4] and stars in [0, 5].
func (r *reviewService) Create(ctx context.Context, principal models.Principal, req models.CreateReviewRequest) (models.Review, error) {
	log := logger.FromContext(ctx)

	if req.UserID <= 0 || req.BusinessID <= 0 || !validDollars(req.Dollars) || !validStars(req.Stars) {
		log.Error().Any("request", req).Msg("invalid review data provided")
		return models.Review{}, ErrInvalidDataProvided
	}
	if !principal.AllowedFor(req.UserID) {
		log.Error().Int64("principal", principal.UserID).Int64("userId", req.UserID).Msg("review create denied")
		return models.Review{}, ErrNotResourceOwner
	}

	review := models.Review{
		UserID:     req.UserID,
		BusinessID: req.BusinessID,
		Dollars:    req.Dollars,
		Stars:      req.Stars,
		Review:     req.Review,
	}

	created, err := r.reviewRepository.CreateReview(ctx, review)
	if err != nil {
		log.Err(err).Int64("userId", req.UserID).Int64("businessId", req.BusinessID).Msg("review creation ended with error")
		return models.Review{}, fmt.Errorf("review creation ended with error: %w", err)
	}

	return created, nil
}

func (r *reviewService) Update(ctx context.Context, principal models.Principal, reviewID int64, update models.ReviewUpdate) error {
	log := logger.FromContext(ctx)

	if update.Dollars != nil && !validDollars(*update.Dollars) {
		log.Error().Int64("id", reviewID).Msg("invalid review dollars provided")
		return ErrInvalidDataProvided
	}
	if update.Stars != nil && !validStars(*update.Stars) {
		log.Error().Int64("id", reviewID).Msg("invalid review stars provided")
		return ErrInvalidDataProvided
	}

	existing, err := r.reviewRepository.FindReviewByID(ctx, reviewID)
	if err != nil {
		log.Err(err).Int64("id", reviewID).Msg("review search by id failed")
		return fmt.Errorf("review search by id failed: %w", err)
	}
	if !principal.AllowedFor(existing.UserID) {
		log.Error().Int64("principal", principal.UserID).Int64("id", reviewID).Msg("review update denied")
		return ErrNotResourceOwner
	}
	if update.IsEmpty() {
		return nil
	}

	if err := r.reviewRepository.UpdateReview(ctx, reviewID, update); err != nil {
		log.Err(err).Int64("id", reviewID).Msg("review update ended with error")
		return fmt.Errorf("review update ended with error: %w", err)
	}

	return nil
}

func (r *reviewService) Delete(ctx context.Context, principal models.Principal, reviewID int64) error {
	log := logger.FromContext(ctx)

	existing, err := r.reviewRepository.FindReviewByID(ctx, reviewID)
	if err != nil {
		log.Err(err).Int64("id", reviewID).Msg("review search by id failed")
		return fmt.Errorf("review search by id failed: %w", err)
	}
	if !principal.AllowedFor(existing.UserID) {
		log.Error().Int64("principal", principal.UserID).Int64("id", reviewID).Msg("review delete denied")
		return ErrNotResourceOwner
	}

	if err := r.reviewRepository.DeleteReview(ctx, reviewID); err != nil {
		log.Err(err).Int64("id", reviewID).Msg("review delete ended with error")
		return fmt.Errorf("review delete ended with error: %w", err)
	}

	return nil
}

func validDollars(dollars int) bool {
	return dollars >= 1 && dollars <= 4
}

func validStars(stars float64) bool {
	return stars >= 0 && stars <= 5
}
