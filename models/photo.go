package models

import "time"

// Photo is an image a user attached to a business.
// UserID is the owner field checked by all mutating operations.
type Photo struct {
	PhotoID    int64     `json:"id"`
	UserID     int64     `json:"userId"`
	BusinessID int64     `json:"businessId"`
	Caption    string    `json:"caption,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Photo model.
func (p Photo) TableName() string {
	return "photos"
}
