package models

// Request DTOs decoded from client JSON bodies.
//
// Each struct is the explicit allowlist of client-writable fields for the
// operation: server-managed fields (ids, admin flag, timestamps) simply do
// not exist here, so a client cannot smuggle them in. Update DTOs use
// pointer fields so that only the fields actually present in the request
// body reach the storage layer.

// RegisterRequest is the body of POST /users.
// There is deliberately no admin field: the flag is server-managed.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateBusinessRequest is the body of POST /businesses.
// OwnerID is compared to the acting principal before the record exists;
// this is the only place client-supplied owner data takes part in an
// authorization decision.
type CreateBusinessRequest struct {
	OwnerID     int64  `json:"ownerId"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	Phone       string `json:"phone"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Website     string `json:"website"`
	Email       string `json:"email"`
}

// BusinessUpdate is the body of PUT /businesses/{id}.
type BusinessUpdate struct {
	OwnerID     *int64  `json:"ownerId"`
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Zip         *string `json:"zip"`
	Phone       *string `json:"phone"`
	Category    *string `json:"category"`
	Subcategory *string `json:"subcategory"`
	Website     *string `json:"website"`
	Email       *string `json:"email"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u BusinessUpdate) IsEmpty() bool {
	return u.OwnerID == nil && u.Name == nil && u.Address == nil &&
		u.City == nil && u.State == nil && u.Zip == nil && u.Phone == nil &&
		u.Category == nil && u.Subcategory == nil && u.Website == nil &&
		u.Email == nil
}

// CreatePhotoRequest is the body of POST /photos.
type CreatePhotoRequest struct {
	UserID     int64  `json:"userId"`
	BusinessID int64  `json:"businessId"`
	Caption    string `json:"caption"`
}

// PhotoUpdate is the body of PUT /photos/{id}.
type PhotoUpdate struct {
	UserID     *int64  `json:"userId"`
	BusinessID *int64  `json:"businessId"`
	Caption    *string `json:"caption"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u PhotoUpdate) IsEmpty() bool {
	return u.UserID == nil && u.BusinessID == nil && u.Caption == nil
}

// CreateReviewRequest is the body of POST /reviews.
type CreateReviewRequest struct {
	UserID     int64   `json:"userId"`
	BusinessID int64   `json:"businessId"`
	Dollars    int     `json:"dollars"`
	Stars      float64 `json:"stars"`
	Review     string  `json:"review"`
}

// ReviewUpdate is the body of PUT /reviews/{id}.
type ReviewUpdate struct {
	UserID     *int64   `json:"userId"`
	BusinessID *int64   `json:"businessId"`
	Dollars    *int     `json:"dollars"`
	Stars      *float64 `json:"stars"`
	Review     *string  `json:"review"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u ReviewUpdate) IsEmpty() bool {
	return u.UserID == nil && u.BusinessID == nil && u.Dollars == nil &&
		u.Stars == nil && u.Review == nil
}
