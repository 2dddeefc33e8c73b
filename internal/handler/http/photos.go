package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-biz-reviews/internal/logger"
	"github.com/MKhiriev/go-biz-reviews/internal/store"
	"github.com/MKhiriev/go-biz-reviews/internal/utils"
	"github.com/MKhiriev/go-biz-reviews/models"
)

func (h *Handler) listPhotos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	photos, err := h.services.PhotoService.List(ctx)
	if err != nil {
		log.Err(err).Msg("listing photos failed")
		writeServiceError(w, err)
		return
	}
	if photos == nil {
		photos = []models.Photo{}
	}

	utils.WriteJSON(w, models.PhotosResponse{Photos: photos}, http.StatusOK)
}

func (h *Handler) getPhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	photoID, err := parseIDParam(r, "id")
	if err != nil {
		log.Err(err).Msg("non-numeric photo id in path")
		utils.WriteError(w, store.ErrPhotoNotFound.Error(), http.StatusNotFound)
		return
	}

	photo, err := h.services.PhotoService.Get(ctx, photoID)
	if err != nil {
		log.Err(err).Int64("id", photoID).Msg("photo lookup failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, photo, http.StatusOK)
}

func (h *Handler) createPhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CreatePhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	photo, err := h.services.PhotoService.Create(ctx, principal, req)
	if err != nil {
		log.Err(err).Msg("photo creation failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.IDResponse{ID: photo.PhotoID}, http.StatusCreated)
}

func (h *Handler) updatePhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	photoID, err := parseIDParam(r, "id")
	if err != nil {
		log.Err(err).Msg("non-numeric photo id in path")
		utils.WriteError(w, store.ErrPhotoNotFound.Error(), http.StatusNotFound)
		return
	}

	var update models.PhotoUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.PhotoService.Update(ctx, principal, photoID, update); err != nil {
		log.Err(err).Int64("id", photoID).Msg("photo update failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "photo successfully updated"}, http.StatusOK)
}

func (h *Handler) deletePhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	photoID, err := parseIDParam(r, "id")
	if err != nil {
		log.Err(err).Msg("non-numeric photo id in path")
		utils.WriteError(w, store.ErrPhotoNotFound.Error(), http.StatusNotFound)
		return
	}

	if err := h.services.PhotoService.Delete(ctx, principal, photoID); err != nil {
		log.Err(err).Int64("id", photoID).Msg("photo delete failed")
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
