package models

// ErrorResponse is the uniform error body returned by every failing endpoint:
// a single human-readable message, never a stack trace or driver error text.
type ErrorResponse struct {
	Error string `json:"error"`
}

// IDResponse is returned by create operations: the server-assigned id of the
// newly persisted record.
type IDResponse struct {
	ID int64 `json:"id"`
}

// MessageResponse acknowledges a successful update.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is the body of a successful POST /users/login.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
}

// BusinessesResponse wraps a business collection, both for the public listing
// and for the per-user GET /users/{userId}/businesses endpoint.
type BusinessesResponse struct {
	Businesses []Business `json:"businesses"`
}

// PhotosResponse wraps a photo collection.
type PhotosResponse struct {
	Photos []Photo `json:"photos"`
}

// ReviewsResponse wraps a review collection.
type ReviewsResponse struct {
	Reviews []Review `json:"reviews"`
}
