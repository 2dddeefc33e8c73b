package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-biz-reviews/internal/logger"
	"github.com/MKhiriev/go-biz-reviews/internal/utils"
	"github.com/MKhiriev/go-biz-reviews/models"
	"github.com/go-chi/chi/v5"
)

// parseIDParam parses the named chi URL parameter as a positive int64.
func parseIDParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// principalFromRequest fetches the authenticated principal placed in the
// request context by the auth middleware. If it is absent the route was wired
// without authentication; the request is rejected with 401 and ok is false.
func principalFromRequest(w http.ResponseWriter, r *http.Request) (models.Principal, bool) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Err(ErrNoPrincipalInContext).Msg("handler reached without auth middleware")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return models.Principal{}, false
	}
	return principal, true
}
