package models

// Principal is the authenticated identity derived from a verified token.
// It is attached to the request context by the authorization middleware and
// consumed by services performing ownership checks.
type Principal struct {
	// UserID is the subject of the verified token.
	UserID int64

	// Admin reports whether the token carried the administrative privilege.
	Admin bool
}

// AllowedFor reports whether the principal may act on a resource owned by
// ownerID: either the principal is the owner or it holds the admin flag.
func (p Principal) AllowedFor(ownerID int64) bool {
	return p.Admin || p.UserID == ownerID
}
