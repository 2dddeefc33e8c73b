// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-biz-reviews/internal/logger"
	"github.com/MKhiriev/go-biz-reviews/internal/store"
	"github.com/MKhiriev/go-biz-reviews/models"
)

// businessService is the concrete implementation of BusinessService.
//
// Reads are public. Mutations follow the ownership-scoped pattern: the acting
// principal must own the resource or hold the admin flag. On create the check
// runs against the owner id supplied in the request; on update and delete it
// runs against the owner recorded in the store, and existence is always
// checked first so that a missing resource yields not-found rather than
// forbidden.
type businessService struct {
	businessRepository store.BusinessRepository
	logger             *logger.Logger
}

func NewBusinessService(businessRepository store.BusinessRepository, logger *logger.Logger) BusinessService {
	return &businessService{businessRepository: businessRepository, logger: logger}
}

// List returns all businesses.
func (b *businessService) List(ctx context.Context) ([]models.Business, error) {
	log := logger.FromContext(ctx)

	businesses, err := b.businessRepository.GetAllBusinesses(ctx)
	if err != nil {
		log.Err(err).Msg("listing businesses failed")
		return nil, fmt.Errorf("listing businesses failed: %w", err)
	}

	return businesses, nil
}

// Get returns one business by id.
func (b *businessService) Get(ctx context.Context, businessID int64) (models.Business, error) {
	log := logger.FromContext(ctx)

	business, err := b.businessRepository.FindBusinessByID(ctx, businessID)
	if err != nil {
		log.Err(err).Int64("id", businessID).Msg("business search by id failed")
		return models.Business{}, fmt.Errorf("business search by id failed: %w", err)
	}

	return business, nil
}

// ListByOwner returns all businesses owned by the given user.
func (b *businessService) ListByOwner(ctx context.Context, ownerID int64) ([]models.Business, error) {
	log := logger.FromContext(ctx)

	businesses, err := b.businessRepository.FindBusinessesByOwner(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("ownerId", ownerID).Msg("listing businesses by owner failed")
		return nil, fmt.Errorf("listing businesses by owner failed: %w", err)
	}

	return businesses, nil
}

// Create validates the request and inserts a new business.
//
// The owner id comes from the request body, so the check runs against the
// claimed owner: a principal may only create businesses it would itself own,
// unless it is an admin.
func (b *businessService) Create(ctx context.Context, principal models.Principal, req models.CreateBusinessRequest) (models.Business, error) {
	log := logger.FromContext(ctx)

	if !validBusinessRequest(req) {
		log.Error().Any("request", req).Msg("invalid business data provided")
		return models.Business{}, ErrInvalidDataProvided
	}
	if !principal.AllowedFor(req.OwnerID) {
		log.Error().Int64("principal", principal.UserID).Int64("ownerId", req.OwnerID).Msg("business create denied")
		return models.Business{}, ErrNotResourceOwner
	}

	business := models.Business{
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Zip:         req.Zip,
		Phone:       req.Phone,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Website:     req.Website,
		Email:       req.Email,
	}

	created, err := b.businessRepository.CreateBusiness(ctx, business)
	if err != nil {
		log.Err(err).Int64("ownerId", req.OwnerID).Msg("business creation ended with error")
		return models.Business{}, fmt.Errorf("business creation ended with error: %w", err)
	}

	return created, nil
}

// Update applies a partial update to an existing business.
//
// Existence is checked before ownership, and ownership against the persisted
// owner id, not anything the client sent.
func (b *businessService) Update(ctx context.Context, principal models.Principal, businessID int64, update models.BusinessUpdate) error {
	log := logger.FromContext(ctx)

	existing, err := b.businessRepository.FindBusinessByID(ctx, businessID)
	if err != nil {
		log.Err(err).Int64("id", businessID).Msg("business search by id failed")
		return fmt.Errorf("business search by id failed: %w", err)
	}
	if !principal.AllowedFor(existing.OwnerID) {
		log.Error().Int64("principal", principal.UserID).Int64("id", businessID).Msg("business update denied")
		return ErrNotResourceOwner
	}
	if update.IsEmpty() {
		return nil
	}

	if err := b.businessRepository.UpdateBusiness(ctx, businessID, update); err != nil {
		log.Err(err).Int64("id", businessID).Msg("business update ended with error")
		return fmt.Errorf("business update ended with error: %w", err)
	}

	return nil
}

// Delete removes an existing business. Dependent photos and reviews are
// removed by the store's cascade rules.
func (b *businessService) Delete(ctx context.Context, principal models.Principal, businessID int64) error {
	log := logger.FromContext(ctx)

	existing, err := b.businessRepository.FindBusinessByID(ctx, businessID)
	if err != nil {
		log.Err(err).Int64("id", businessID).Msg("business search by id failed")
		return fmt.Errorf("business search by id failed: %w", err)
	}
	if !principal.AllowedFor(existing.OwnerID) {
		log.Error().Int64("principal", principal.UserID).Int64("id", businessID).Msg("business delete denied")
		return ErrNotResourceOwner
	}

	if err := b.businessRepository.DeleteBusiness(ctx, businessID); err != nil {
		log.Err(err).Int64("id", businessID).Msg("business delete ended with error")
		return fmt.Errorf("business delete ended with error: %w", err)
	}

	return nil
}

// validBusinessRequest reports whether every required business field is
// present. Website and Email stay optional.
func validBusinessRequest(req models.CreateBusinessRequest) bool {
	return req.OwnerID > 0 &&
		req.Name != "" &&
		req.Address != "" &&
		req.City != "" &&
		req.State != "" &&
		req.Zip != "" &&
		req.Phone != "" &&
		req.Category != "" &&
		req.Subcategory != ""
}
