package http

import (
	"net/http"

	"github.com/MKhiriev/go-biz-reviews/internal/logger"
	"github.com/MKhiriev/go-biz-reviews/internal/service"
	"github.com/MKhiriev/go-biz-reviews/internal/store"
	"github.com/MKhiriev/go-biz-reviews/internal/utils"
)

// requireSubjectOrAdmin guards the /users/{userId} subtree. It compares the
// user id from the URL against the authenticated principal and rejects with
// 403 unless the principal is that user or an admin. A non-numeric id is
// treated as a nonexistent user and yields 404.
//
// Must be mounted after the auth middleware: it relies on the principal
// placed in the request context.
func (h *Handler) requireSubjectOrAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		principal, ok := utils.GetPrincipalFromContext(r.Context())
		if !ok {
			log.Error().Err(ErrNoPrincipalInContext).Msg("ownership check without auth middleware")
			utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		userID, err := parseIDParam(r, "userId")
		if err != nil {
			log.Err(err).Str("userId", r.URL.Path).Msg("non-numeric user id in path")
			utils.WriteError(w, store.ErrNoUserWasFound.Error(), http.StatusNotFound)
			return
		}

		if !principal.AllowedFor(userID) {
			log.Error().Int64("principal", principal.UserID).Int64("userId", userID).Msg("access to another user's resources denied")
			utils.WriteError(w, service.ErrNotResourceOwner.Error(), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
