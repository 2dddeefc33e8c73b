package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-biz-reviews/internal/logger"
	"github.com/MKhiriev/go-biz-reviews/internal/store"
	"github.com/MKhiriev/go-biz-reviews/models"
)

// photoService is the concrete implementation of PhotoService. It follows the
// same ownership-scoped pattern as businessService with user_id as the owner
// column.
type photoService struct {
	photoRepository store.PhotoRepository
	logger          *logger.Logger
}

func NewPhotoService(photoRepository store.PhotoRepository, logger *logger.Logger) PhotoService {
	return &photoService{photoRepository: photoRepository, logger: logger}
}

func (p *photoService) List(ctx context.Context) ([]models.Photo, error) {
	log := logger.FromContext(ctx)

	photos, err := p.photoRepository.GetAllPhotos(ctx)
	if err != nil {
		log.Err(err).Msg("listing photos failed")
		return nil, fmt.Errorf("listing photos failed: %w", err)
	}

	return photos, nil
}

func (p *photoService) Get(ctx context.Context, photoID int64) (models.Photo, error) {
	log := logger.FromContext(ctx)

	photo, err := p.photoRepository.FindPhotoByID(ctx, photoID)
	if err != nil {
		log.Err(err).Int64("id", photoID).Msg("photo search by id failed")
		return models.Photo{}, fmt.Errorf("photo search by id failed: %w", err)
	}

	return photo, nil
}

func (p *photoService) ListByOwner(ctx context.Context, userID int64) ([]models.Photo, error) {
	log := logger.FromContext(ctx)

	photos, err := p.photoRepository.FindPhotosByOwner(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userId", userID).Msg("listing photos by user failed")
		return nil, fmt.Errorf("listing photos by user failed: %w", err)
	}

	return photos, nil
}

// Create validates the request and inserts a new photo. The uploader id comes
// from the request body; a non-admin principal may only upload as itself.
// A dangling business id surfaces as store.ErrInvalidReference.
func (p *photoService) Create(ctx context.Context, principal models.Principal, req models.CreatePhotoRequest) (models.Photo, error) {
	log := logger.FromContext(ctx)

	if req.UserID <= 0 || req.BusinessID <= 0 {
		log.Error().Any("request", req).Msg("invalid photo data provided")
		return models.Photo{}, ErrInvalidDataProvided
	}
	if !principal.AllowedFor(req.UserID) {
		log.Error().Int64("principal", principal.UserID).Int64("userId", req.UserID).Msg("photo create denied")
		return models.Photo{}, ErrNotResourceOwner
	}

	photo := models.Photo{
		UserID:     req.UserID,
		BusinessID: req.BusinessID,
		Caption:    req.Caption,
	}

	created, err := p.photoRepository.CreatePhoto(ctx, photo)
	if err != nil {
		log.Err(err).Int64("userId", req.UserID).Int64("businessId", req.BusinessID).Msg("photo creation ended with error")
		return models.Photo{}, fmt.Errorf("photo creation ended with error: %w", err)
	}

	return created, nil
}

func (p *photoService) Update(ctx context.Context, principal models.Principal, photoID int64, update models.PhotoUpdate) error {
	log := logger.FromContext(ctx)

	existing, err := p.photoRepository.FindPhotoByID(ctx, photoID)
	if err != nil {
		log.Err(err).Int64("id", photoID).Msg("photo search by id failed")
		return fmt.Errorf("photo search by id failed: %w", err)
	}
	if !principal.AllowedFor(existing.UserID) {
		log.Error().Int64("principal", principal.UserID).Int64("id", photoID).Msg("photo update denied")
		return ErrNotResourceOwner
	}
	if update.IsEmpty() {
		return nil
	}

	if err := p.photoRepository.UpdatePhoto(ctx, photoID, update); err != nil {
		log.Err(err).Int64("id", photoID).Msg("photo update ended with error")
		return fmt.Errorf("photo update ended with error: %w", err)
	}

	return nil
}

func (p *photoService) Delete(ctx context.Context, principal models.Principal, photoID int64) error {
	log := logger.FromContext(ctx)

	existing, err := p.photoRepository.FindPhotoByID(ctx, photoID)
	if err != nil {
		log.Err(err).Int64("id", photoID).Msg("photo search by id failed")
		return fmt.Errorf("photo search by id failed: %w", err)
	}
	if !principal.AllowedFor(existing.UserID) {
		log.Error().Int64("principal", principal.UserID).Int64("id", photoID).Msg("photo delete denied")
		return ErrNotResourceOwner
	}

	if err := p.photoRepository.DeletePhoto(ctx, photoID); err != nil {
		log.Err(err).Int64("id", photoID).Msg("photo delete ended with error")
		return fmt.Errorf("photo delete ended with error: %w", err)
	}

	return nil
}
