package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-biz-reviews/internal/logger"
	"github.com/MKhiriev/go-biz-reviews/models"
	"github.com/jackc/pgerrcode"
)

// reviewRepository is the PostgreSQL-backed implementation of
// [ReviewRepository] over the "reviews" table.
type reviewRepository struct {
	*DB
	logger *logger.Logger
}

// NewReviewRepository constructs a [ReviewRepository] backed by the provided
// database connection and logger.
func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		DB:     db,
		logger: logger,
	}
}

func scanReview(scanner interface{ Scan(...any) error }, rv *models.Review) error {
	return scanner.Scan(
		&rv.ReviewID,
		&rv.UserID,
		&rv.BusinessID,
		&rv.Dollars,
		&rv.Stars,
		&rv.Review,
		&rv.CreatedAt,
		&rv.UpdatedAt,
	)
}

// CreateReview persists a new review and returns it with server-assigned
// fields populated from the RETURNING clause.
func (r *reviewRepository) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createReview,
		review.UserID, review.BusinessID, review.Dollars, review.Stars, review.Review)

	if err := scanReview(row, &review); err != nil {
		log.Err(err).
			Str("func", "*reviewRepository.CreateReview").
			Int64("user_id", review.UserID).
			Msg("failed to insert review")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Review{}, ErrInvalidReference
		default:
			return models.Review{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return review, nil
}

// GetAllReviews returns every review record ordered by id.
func (r *reviewRepository) GetAllReviews(ctx context.Context) ([]models.Review, error) {
	return r.queryReviews(ctx, getAllReviews)
}

// FindReviewByID retrieves a single review.
//
// Returns [ErrReviewNotFound] when no row matches reviewID.
func (r *reviewRepository) FindReviewByID(ctx context.Context, reviewID int64) (models.Review, error) {
	log := logger.FromContext(ctx)

	var review models.Review
	row := r.DB.QueryRowContext(ctx, findReviewByID, reviewID)

	if err := scanReview(row, &review); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Review{}, ErrReviewNotFound
		}
		log.Err(err).
			Str("func", "*reviewRepository.FindReviewByID").
			Int64("review_id", reviewID).
			Msg("failed to scan review row")
		return models.Review{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return review, nil
}

// FindReviewsByOwner returns all reviews whose persisted user_id equals
// userID.
func (r *reviewRepository) FindReviewsByOwner(ctx context.Context, userID int64) ([]models.Review, error) {
	return r.queryReviews(ctx, findReviewsByOwner, userID)
}

// UpdateReview applies the allowlisted fields present in update.
//
// Returns [ErrReviewNotFound] when no row matches reviewID.
func (r *reviewRepository) UpdateReview(ctx context.Context, reviewID int64, update models.ReviewUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildReviewUpdateQuery(reviewID, update)
	if err != nil {
		log.Err(err).
			Str("func", "*reviewRepository.UpdateReview").
			Int64("review_id", reviewID).
			Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrInvalidReference
		}
		log.Err(err).
			Str("func", "*reviewRepository.UpdateReview").
			Int64("review_id", reviewID).
			Msg("failed to execute update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrReviewNotFound
	}

	return nil
}

// DeleteReview removes the record with the given id.
//
// Returns [ErrReviewNotFound] when no row matches reviewID.
func (r *reviewRepository) DeleteReview(ctx context.Context, reviewID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteReview, reviewID)
	if err != nil {
		log.Err(err).
			Str("func", "*reviewRepository.DeleteReview").
			Int64("review_id", reviewID).
			Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrReviewNotFound
	}

	return nil
}

func (r *reviewRepository) queryReviews(ctx context.Context, query string, args ...any) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*reviewRepository.queryReviews").
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0, 50)

	for rows.Next() {
		var review models.Review
		if err := scanReview(rows, &review); err != nil {
			log.Err(err).
				Str("func", "*reviewRepository.queryReviews").
				Msg("failed to scan review row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*reviewRepository.queryReviews").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reviews, nil
}
