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

// photoRepository is the PostgreSQL-backed implementation of
// [PhotoRepository] over the "photos" table.
type photoRepository struct {
	*DB
	logger *logger.Logger
}

// NewPhotoRepository constructs a [PhotoRepository] backed by the provided
// database connection and logger.
func NewPhotoRepository(db *DB, logger *logger.Logger) PhotoRepository {
	logger.Debug().Msg("creating photo repository")
	return &photoRepository{
		DB:     db,
		logger: logger,
	}
}

func scanPhoto(scanner interface{ Scan(...any) error }, p *models.Photo) error {
	return scanner.Scan(
		&p.PhotoID,
		&p.UserID,
		&p.BusinessID,
		&p.Caption,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

// CreatePhoto persists a new photo and returns it with server-assigned fields
// populated from the RETURNING clause.
func (r *photoRepository) CreatePhoto(ctx context.Context, photo models.Photo) (models.Photo, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createPhoto, photo.UserID, photo.BusinessID, photo.Caption)

	if err := scanPhoto(row, &photo); err != nil {
		log.Err(err).
			Str("func", "*photoRepository.CreatePhoto").
			Int64("user_id", photo.UserID).
			Msg("failed to insert photo")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Photo{}, ErrInvalidReference
		default:
			return models.Photo{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return photo, nil
}

// GetAllPhotos returns every photo record ordered by id.
func (r *photoRepository) GetAllPhotos(ctx context.Context) ([]models.Photo, error) {
	return r.queryPhotos(ctx, getAllPhotos)
}

// FindPhotoByID retrieves a single photo.
//
// Returns [ErrPhotoNotFound] when no row matches photoID.
func (r *photoRepository) FindPhotoByID(ctx context.Context, photoID int64) (models.Photo, error) {
	log := logger.FromContext(ctx)

	var photo models.Photo
	row := r.DB.QueryRowContext(ctx, findPhotoByID, photoID)

	if err := scanPhoto(row, &photo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Photo{}, ErrPhotoNotFound
		}
		log.Err(err).
			Str("func", "*photoRepository.FindPhotoByID").
			Int64("photo_id", photoID).
			Msg("failed to scan photo row")
		return models.Photo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return photo, nil
}

// FindPhotosByOwner returns all photos whose persisted user_id equals userID.
func (r *photoRepository) FindPhotosByOwner(ctx context.Context, userID int64) ([]models.Photo, error) {
	return r.queryPhotos(ctx, findPhotosByOwner, userID)
}

// UpdatePhoto applies the allowlisted fields present in update.
//
// Returns [ErrPhotoNotFound] when no row matches photoID.
func (r *photoRepository) UpdatePhoto(ctx context.Context, photoID int64, update models.PhotoUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildPhotoUpdateQuery(photoID, update)
	if err != nil {
		log.Err(err).
			Str("func", "*photoRepository.UpdatePhoto").
			Int64("photo_id", photoID).
			Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrInvalidReference
		}
		log.Err(err).
			Str("func", "*photoRepository.UpdatePhoto").
			Int64("photo_id", photoID).
			Msg("failed to execute update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPhotoNotFound
	}

	return nil
}

// DeletePhoto removes the record with the given id.
//
// Returns [ErrPhotoNotFound] when no row matches photoID.
func (r *photoRepository) DeletePhoto(ctx context.Context, photoID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deletePhoto, photoID)
	if err != nil {
		log.Err(err).
			Str("func", "*photoRepository.DeletePhoto").
			Int64("photo_id", photoID).
			Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPhotoNotFound
	}

	return nil
}

func (r *photoRepository) queryPhotos(ctx context.Context, query string, args ...any) ([]models.Photo, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*photoRepository.queryPhotos").
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	photos := make([]models.Photo, 0, 50)

	for rows.Next() {
		var photo models.Photo
		if err := scanPhoto(rows, &photo); err != nil {
			log.Err(err).
				Str("func", "*photoRepository.queryPhotos").
				Msg("failed to scan photo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		photos = append(photos, photo)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*photoRepository.queryPhotos").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return photos, nil
}
