package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-biz-reviews/internal/service"
	"github.com/MKhiriev/go-biz-reviews/internal/store"
	"github.com/MKhiriev/go-biz-reviews/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:       http.StatusBadRequest,
	service.ErrMissingRegistrationFields: http.StatusBadRequest,
	service.ErrInvalidEmail:              http.StatusBadRequest,
	service.ErrMissingCredentials:        http.StatusBadRequest,
	service.ErrInvalidCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:   http.StatusUnauthorized,
	service.ErrNotResourceOwner:          http.StatusForbidden,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrBusinessNotFound:   http.StatusNotFound,
	store.ErrPhotoNotFound:      http.StatusNotFound,
	store.ErrReviewNotFound:     http.StatusNotFound,
	store.ErrInvalidReference:   http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError maps a service or store error to its HTTP status and
// writes a JSON error body. Internal failures never leak their message: the
// body carries the generic status text instead.
func writeServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := http.StatusText(http.StatusInternalServerError)

	for target, mappedStatus := range errorStatusMap {
		if errors.Is(err, target) {
			status = mappedStatus
			if mappedStatus != http.StatusInternalServerError {
				message = target.Error()
			}
			break
		}
	}

	utils.WriteError(w, message, status)
}
