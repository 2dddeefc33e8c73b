package http

import (
	"net/http"

	"github.com/MKhiriev/go-biz-reviews/internal/logger"
	"github.com/MKhiriev/go-biz-reviews/internal/store"
	"github.com/MKhiriev/go-biz-reviews/internal/utils"
	"github.com/MKhiriev/go-biz-reviews/models"
)

// getUser returns the profile of one user. The password hash never appears in
// the response: the field carries a `json:"-"` tag on the model.
// Authentication and the subject-or-admin check are enforced by middleware
// before this handler runs.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := parseIDParam(r, "userId")
	if err != nil {
		log.Err(err).Msg("non-numeric user id in path")
		utils.WriteError(w, store.ErrNoUserWasFound.Error(), http.StatusNotFound)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user lookup failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) listUserBusinesses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := parseIDParam(r, "userId")
	if err != nil {
		log.Err(err).Msg("non-numeric user id in path")
		utils.WriteError(w, store.ErrNoUserWasFound.Error(), http.StatusNotFound)
		return
	}

	businesses, err := h.services.BusinessService.ListByOwner(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userId", userID).Msg("listing user businesses failed")
		writeServiceError(w, err)
		return
	}
	if businesses == nil {
		businesses = []models.Business{}
	}

	utils.WriteJSON(w, models.BusinessesResponse{Businesses: businesses}, http.StatusOK)
}

func (h *Handler) listUserPhotos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := parseIDParam(r, "userId")
	if err != nil {
		log.Err(err).Msg("non-numeric user id in path")
		utils.WriteError(w, store.ErrNoUserWasFound.Error(), http.StatusNotFound)
		return
	}

	photos, err := h.services.PhotoService.ListByOwner(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userId", userID).Msg("listing user photos failed")
		writeServiceError(w, err)
		return
	}
	if photos == nil {
		photos = []models.Photo{}
	}

	utils.WriteJSON(w, models.PhotosResponse{Photos: photos}, http.StatusOK)
}

func (h *Handler) listUserReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := parseIDParam(r, "userId")
	if err != nil {
		log.Err(err).Msg("non-numeric user id in path")
		utils.WriteError(w, store.ErrNoUserWasFound.Error(), http.StatusNotFound)
		return
	}

	reviews, err := h.services.ReviewService.ListByOwner(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userId", userID).Msg("listing user reviews failed")
		writeServiceError(w, err)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	utils.WriteJSON(w, models.ReviewsResponse{Reviews: reviews}, http.StatusOK)
}
