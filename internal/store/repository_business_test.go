package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-biz-reviews/internal/logger"
	"github.com/MKhiriev/go-biz-reviews/models"
	"github.com/jackc/pgerrcode"
)

func newTestBusinessRepo(t *testing.T) (*businessRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &businessRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

var businessTestColumns = []string{
	"business_id", "owner_id", "name", "address", "city", "state", "zip",
	"phone", "category", "subcategory", "website", "email", "created_at", "updated_at",
}

func testBusiness() models.Business {
	return models.Business{
		OwnerID:     3,
		Name:        "Block 15",
		Address:     "300 SW Jefferson Ave.",
		City:        "Corvallis",
		State:       "OR",
		Zip:         "97333",
		Phone:       "541-758-2077",
		Category:    "Restaurant",
		Subcategory: "Brewpub",
		Website:     "http://block15.com",
	}
}

func TestCreateBusiness_Success(t *testing.T) {
	repo, mock, db := newTestBusinessRepo(t)
	defer db.Close()

	ctx := context.Background()
	business := testBusiness()
	now := time.Now()

	rows := sqlmock.NewRows(businessTestColumns).AddRow(
		1, business.OwnerID, business.Name, business.Address, business.City,
		business.State, business.Zip, business.Phone, business.Category,
		business.Subcategory, business.Website, business.Email, now, now,
	)

	mock.ExpectQuery("INSERT INTO businesses").
		WithArgs(
			business.OwnerID, business.Name, business.Address, business.City,
			business.State, business.Zip, business.Phone, business.Category,
			business.Subcategory, business.Website, business.Email,
		).
		WillReturnRows(rows)

	created, err := repo.CreateBusiness(ctx, business)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.BusinessID != 1 {
		t.Errorf("expected BusinessID=1, got %d", created.BusinessID)
	}
}

func TestCreateBusiness_ForeignKeyViolation(t *testing.T) {
	repo, mock, db := newTestBusinessRepo(t)
	defer db.Close()

	ctx := context.Background()
	business := testBusiness()
	business.OwnerID = 99999

	mock.ExpectQuery("INSERT INTO businesses").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateBusiness(ctx, business)
	if !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
}

func TestFindBusinessByID_NotFound(t *testing.T) {
	repo, mock, db := newTestBusinessRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM businesses").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindBusinessByID(ctx, 42)
	if !errors.Is(err, ErrBusinessNotFound) {
		t.Fatalf("expected ErrBusinessNotFound, got %v", err)
	}
}

func TestGetAllBusinesses_Empty(t *testing.T) {
	repo, mock, db := newTestBusinessRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM businesses").
		WillReturnRows(sqlmock.NewRows(businessTestColumns))

	businesses, err := repo.GetAllBusinesses(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(businesses) != 0 {
		t.Errorf("expected empty result, got %d rows", len(businesses))
	}
}

func TestUpdateBusiness_NotFound(t *testing.T) {
	repo, mock, db := newTestBusinessRepo(t)
	defer db.Close()

	ctx := context.Background()
	name := "New Name"

	mock.ExpectExec("UPDATE businesses").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateBusiness(ctx, 42, models.BusinessUpdate{Name: &name})
	if !errors.Is(err, ErrBusinessNotFound) {
		t.Fatalf("expected ErrBusinessNotFound, got %v", err)
	}
}

func TestUpdateBusiness_Success(t *testing.T) {
	repo, mock, db := newTestBusinessRepo(t)
	defer db.Close()

	ctx := context.Background()
	name := "New Name"
	city := "Portland"

	mock.ExpectExec("UPDATE businesses").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateBusiness(ctx, 1, models.BusinessUpdate{Name: &name, City: &city}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteBusiness_NotFound(t *testing.T) {
	repo, mock, db := newTestBusinessRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM businesses").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteBusiness(ctx, 42)
	if !errors.Is(err, ErrBusinessNotFound) {
		t.Fatalf("expected ErrBusinessNotFound, got %v", err)
	}
}

func TestDeleteBusiness_Success(t *testing.T) {
	repo, mock, db := newTestBusinessRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM businesses").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteBusiness(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
