package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-biz-reviews/internal/logger"
	"github.com/MKhiriev/go-biz-reviews/internal/store"
	"github.com/MKhiriev/go-biz-reviews/internal/utils"
	"github.com/MKhiriev/go-biz-reviews/models"
)

func (h *Handler) listBusinesses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	businesses, err := h.services.BusinessService.List(ctx)
	if err != nil {
		log.Err(err).Msg("listing businesses failed")
		writeServiceError(w, err)
		return
	}
	if businesses == nil {
		businesses = []models.Business{}
	}

	utils.WriteJSON(w, models.BusinessesResponse{Businesses: businesses}, http.StatusOK)
}

func (h *Handler) getBusiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	businessID, err := parseIDParam(r, "id")
	if err != nil {
		log.Err(err).Msg("non-numeric business id in path")
		utils.WriteError(w, store.ErrBusinessNotFound.Error(), http.StatusNotFound)
		return
	}

	business, err := h.services.BusinessService.Get(ctx, businessID)
	if err != nil {
		log.Err(err).Int64("id", businessID).Msg("business lookup failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, business, http.StatusOK)
}

func (h *Handler) createBusiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CreateBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	business, err := h.services.BusinessService.Create(ctx, principal, req)
	if err != nil {
		log.Err(err).Msg("business creation failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.IDResponse{ID: business.BusinessID}, http.StatusCreated)
}

func (h *Handler) updateBusiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	businessID, err := parseIDParam(r, "id")
	if err != nil {
		log.Err(err).Msg("non-numeric business id in path")
		utils.WriteError(w, store.ErrBusinessNotFound.Error(), http.StatusNotFound)
		return
	}

	var update models.BusinessUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.BusinessService.Update(ctx, principal, businessID, update); err != nil {
		log.Err(err).Int64("id", businessID).Msg("business update failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "business successfully updated"}, http.StatusOK)
}

func (h *Handler) deleteBusiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	businessID, err := parseIDParam(r, "id")
	if err != nil {
		log.Err(err).Msg("non-numeric business id in path")
		utils.WriteError(w, store.ErrBusinessNotFound.Error(), http.StatusNotFound)
		return
	}

	if err := h.services.BusinessService.Delete(ctx, principal, businessID); err != nil {
		log.Err(err).Int64("id", businessID).Msg("business delete failed")
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
