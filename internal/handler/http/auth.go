package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-biz-reviews/internal/logger"
	"github.com/MKhiriev/go-biz-reviews/internal/utils"
	"github.com/MKhiriev/go-biz-reviews/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeServiceError(w, err)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Str("email", registeredUser.Email).Msg("user registered")

	utils.WriteJSON(w, models.IDResponse{ID: registeredUser.UserID}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("login failed")
		writeServiceError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString, UserID: foundUser.UserID}, http.StatusOK)
}
