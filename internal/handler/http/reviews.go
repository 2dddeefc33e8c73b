package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-biz-reviews/internal/logger"
	"github.com/MKhiriev/go-biz-reviews/internal/store"
	"github.com/MKhiriev/go-biz-reviews/internal/utils"
	"github.com/MKhiriev/go-biz-reviews/models"
)

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	reviews, err := h.services.ReviewService.List(ctx)
	if err != nil {
		log.Err(err).Msg("listing reviews failed")
		writeServiceError(w, err)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	utils.WriteJSON(w, models.ReviewsResponse{Reviews: reviews}, http.StatusOK)
}

func (h *Handler) getReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	reviewID, err := parseIDParam(r, "id")
	if err != nil {
		log.Err(err).Msg("non-numeric review id in path")
		utils.WriteError(w, store.ErrReviewNotFound.Error(), http.StatusNotFound)
		return
	}

	review, err := h.services.ReviewService.Get(ctx, reviewID)
	if err != nil {
		log.Err(err).Int64("id", reviewID).Msg("review lookup failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, review, http.StatusOK)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	review, err := h.services.ReviewService.Create(ctx, principal, req)
	if err != nil {
		log.Err(err).Msg("review creation failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.IDResponse{ID: review.ReviewID}, http.StatusCreated)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	reviewID, err := parseIDParam(r, "id")
	if err != nil {
		log.Err(err).Msg("non-numeric review id in path")
		utils.WriteError(w, store.ErrReviewNotFound.Error(), http.StatusNotFound)
		return
	}

	var update models.ReviewUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ReviewService.Update(ctx, principal, reviewID, update); err != nil {
		log.Err(err).Int64("id", reviewID).Msg("review update failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "review successfully updated"}, http.StatusOK)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	reviewID, err := parseIDParam(r, "id")
	if err != nil {
		log.Err(err).Msg("non-numeric review id in path")
		utils.WriteError(w, store.ErrReviewNotFound.Error(), http.StatusNotFound)
		return
	}

	if err := h.services.ReviewService.Delete(ctx, principal, reviewID); err != nil {
		log.Err(err).Int64("id", reviewID).Msg("review delete failed")
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
