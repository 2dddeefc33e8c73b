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

// businessRepository is the PostgreSQL-backed implementation of
// [BusinessRepository]. It executes all business CRUD operations against the
// "businesses" table using the embedded [*DB] connection.
type businessRepository struct {
	*DB
	logger *logger.Logger
}

// NewBusinessRepository constructs a [BusinessRepository] backed by the
// provided database connection and logger.
func NewBusinessRepository(db *DB, logger *logger.Logger) BusinessRepository {
	logger.Debug().Msg("creating business repository")
	return &businessRepository{
		DB:     db,
		logger: logger,
	}
}

func scanBusiness(scanner interface{ Scan(...any) error }, b *models.Business) error {
	return scanner.Scan(
		&b.BusinessID,
		&b.OwnerID,
		&b.Name,
		&b.Address,
		&b.City,
		&b.State,
		&b.Zip,
		&b.Phone,
		&b.Category,
		&b.Subcategory,
		&b.Website,
		&b.Email,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
}

// CreateBusiness persists a new business and returns it with server-assigned
// fields (BusinessID, CreatedAt, UpdatedAt) populated from the RETURNING
// clause.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (owner does not exist) → [ErrInvalidReference].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *businessRepository) CreateBusiness(ctx context.Context, business models.Business) (models.Business, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createBusiness,
		business.OwnerID,
		business.Name,
		business.Address,
		business.City,
		business.State,
		business.Zip,
		business.Phone,
		business.Category,
		business.Subcategory,
		business.Website,
		business.Email,
	)

	if err := scanBusiness(row, &business); err != nil {
		log.Err(err).
			Str("func", "*businessRepository.CreateBusiness").
			Int64("owner_id", business.OwnerID).
			Msg("failed to insert business")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Business{}, ErrInvalidReference
		default:
			return models.Business{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return business, nil
}

// GetAllBusinesses returns every business record ordered by id.
// Returns an empty slice when the table is empty.
func (r *businessRepository) GetAllBusinesses(ctx context.Context) ([]models.Business, error) {
	return r.queryBusinesses(ctx, getAllBusinesses)
}

// FindBusinessByID retrieves a single business.
//
// Returns [ErrBusinessNotFound] when no row matches businessID.
func (r *businessRepository) FindBusinessByID(ctx context.Context, businessID int64) (models.Business, error) {
	log := logger.FromContext(ctx)

	var business models.Business
	row := r.DB.QueryRowContext(ctx, findBusinessByID, businessID)

	if err := scanBusiness(row, &business); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Business{}, ErrBusinessNotFound
		}
		log.Err(err).
			Str("func", "*businessRepository.FindBusinessByID").
			Int64("business_id", businessID).
			Msg("failed to scan business row")
		return models.Business{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return business, nil
}

// FindBusinessesByOwner returns all businesses whose persisted owner_id
// equals ownerID.
func (r *businessRepository) FindBusinessesByOwner(ctx context.Context, ownerID int64) ([]models.Business, error) {
	return r.queryBusinesses(ctx, findBusinessesByOwner, ownerID)
}

// UpdateBusiness applies the allowlisted fields present in update to the
// record with the given id. The SET list is built dynamically via squirrel so
// that absent fields stay untouched.
//
// Returns [ErrBusinessNotFound] when no row matches businessID and
// [ErrInvalidReference] when a supplied owner id points at a missing user.
func (r *businessRepository) UpdateBusiness(ctx context.Context, businessID int64, update models.BusinessUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildBusinessUpdateQuery(businessID, update)
	if err != nil {
		log.Err(err).
			Str("func", "*businessRepository.UpdateBusiness").
			Int64("business_id", businessID).
			Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrInvalidReference
		}
		log.Err(err).
			Str("func", "*businessRepository.UpdateBusiness").
			Int64("business_id", businessID).
			Msg("failed to execute update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBusinessNotFound
	}

	return nil
}

// DeleteBusiness removes the record with the given id.
//
// Returns [ErrBusinessNotFound] when no row matches businessID.
func (r *businessRepository) DeleteBusiness(ctx context.Context, businessID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteBusiness, businessID)
	if err != nil {
		log.Err(err).
			Str("func", "*businessRepository.DeleteBusiness").
			Int64("business_id", businessID).
			Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBusinessNotFound
	}

	return nil
}

func (r *businessRepository) queryBusinesses(ctx context.Context, query string, args ...any) ([]models.Business, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*businessRepository.queryBusinesses").
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	businesses := make([]models.Business, 0, 50)

	for rows.Next() {
		var business models.Business
		if err := scanBusiness(rows, &business); err != nil {
			log.Err(err).
				Str("func", "*businessRepository.queryBusinesses").
				Msg("failed to scan business row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		businesses = append(businesses, business)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*businessRepository.queryBusinesses").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return businesses, nil
}
