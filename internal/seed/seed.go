// Package seed bulk-loads JSON fixture files into the store through the
// regular repositories. It is used by cmd/seed to populate a fresh database
// with sample users, businesses, photos, and reviews.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-biz-reviews/internal/logger"
	"github.com/MKhiriev/go-biz-reviews/internal/store"
	"github.com/MKhiriev/go-biz-reviews/internal/utils"
	"github.com/MKhiriev/go-biz-reviews/models"
)

// Fixture file names expected inside the data directory. Files are optional;
// a missing file is skipped. Insertion order follows the foreign-key
// dependencies: users before businesses, businesses before photos and reviews.
const (
	usersFile      = "users.json"
	businessesFile = "businesses.json"
	photosFile     = "photos.json"
	reviewsFile    = "reviews.json"
)

// seedUser mirrors models.RegisterRequest but reads the password field so
// that fixtures can carry either plain-text passwords or pre-computed bcrypt
// hashes.
type seedUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Loader struct {
	repositories *store.Repositories
	dataDir      string
	logger       *logger.Logger
}

func NewLoader(repositories *store.Repositories, dataDir string, logger *logger.Logger) *Loader {
	return &Loader{
		repositories: repositories,
		dataDir:      dataDir,
		logger:       logger,
	}
}

// Run loads every fixture file present in the data directory and inserts its
// records through the repositories.
//
// Passwords that already look like bcrypt hashes are stored as-is; everything
// else is hashed before insert. This affordance exists only here, never in
// the registration path. Seeded users can never be admins either: the user
// INSERT carries no admin column, so the database default applies.
func (l *Loader) Run(ctx context.Context) error {
	if err := l.loadUsers(ctx); err != nil {
		return err
	}
	if err := l.loadBusinesses(ctx); err != nil {
		return err
	}
	if err := l.loadPhotos(ctx); err != nil {
		return err
	}
	return l.loadReviews(ctx)
}

func (l *Loader) loadUsers(ctx context.Context) error {
	users, ok, err := readFixture[seedUser](filepath.Join(l.dataDir, usersFile))
	if err != nil {
		return fmt.Errorf("reading users fixture: %w", err)
	}
	if !ok {
		l.logger.Info().Str("file", usersFile).Msg("fixture file absent, skipping")
		return nil
	}

	for _, u := range users {
		password := u.Password
		if !utils.LooksLikeBcryptHash(password) {
			password, err = utils.HashPassword(password)
			if err != nil {
				return fmt.Errorf("hashing seed password for %q: %w", u.Email, err)
			}
		}

		created, err := l.repositories.UserRepository.CreateUser(ctx, models.User{
			Name:     u.Name,
			Email:    u.Email,
			Password: password,
		})
		if err != nil {
			return fmt.Errorf("seeding user %q: %w", u.Email, err)
		}
		l.logger.Debug().Int64("id", created.UserID).Str("email", created.Email).Msg("seeded user")
	}

	l.logger.Info().Int("count", len(users)).Msg("seeded users")
	return nil
}

func (l *Loader) loadBusinesses(ctx context.Context) error {
	businesses, ok, err := readFixture[models.Business](filepath.Join(l.dataDir, businessesFile))
	if err != nil {
		return fmt.Errorf("reading businesses fixture: %w", err)
	}
	if !ok {
		l.logger.Info().Str("file", businessesFile).Msg("fixture file absent, skipping")
		return nil
	}

	for _, b := range businesses {
		if _, err := l.repositories.BusinessRepository.CreateBusiness(ctx, b); err != nil {
			return fmt.Errorf("seeding business %q: %w", b.Name, err)
		}
	}

	l.logger.Info().Int("count", len(businesses)).Msg("seeded businesses")
	return nil
}

func (l *Loader) loadPhotos(ctx context.Context) error {
	photos, ok, err := readFixture[models.Photo](filepath.Join(l.dataDir, photosFile))
	if err != nil {
		return fmt.Errorf("reading photos fixture: %w", err)
	}
	if !ok {
		l.logger.Info().Str("file", photosFile).Msg("fixture file absent, skipping")
		return nil
	}

	for _, p := range photos {
		if _, err := l.repositories.PhotoRepository.CreatePhoto(ctx, p); err != nil {
			return fmt.Errorf("seeding photo for business %d: %w", p.BusinessID, err)
		}
	}

	l.logger.Info().Int("count", len(photos)).Msg("seeded photos")
	return nil
}

func (l *Loader) loadReviews(ctx context.Context) error {
	reviews, ok, err := readFixture[models.Review](filepath.Join(l.dataDir, reviewsFile))
	if err != nil {
		return fmt.Errorf("reading reviews fixture: %w", err)
	}
	if !ok {
		l.logger.Info().Str("file", reviewsFile).Msg("fixture file absent, skipping")
		return nil
	}

	for _, rv := range reviews {
		if _, err := l.repositories.ReviewRepository.CreateReview(ctx, rv); err != nil {
			return fmt.Errorf("seeding review for business %d: %w", rv.BusinessID, err)
		}
	}

	l.logger.Info().Int("count", len(reviews)).Msg("seeded reviews")
	return nil
}

// readFixture reads a JSON array of T from path. The second return value
// reports whether the file exists.
func readFixture[T any](path string) ([]T, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, true, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	return records, true, nil
}
