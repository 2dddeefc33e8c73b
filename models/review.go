package models

import "time"

// Review is a user's rating of a business.
// Dollars is the 1-4 expensiveness rating, Stars the 0-5 quality rating.
// UserID is the owner field checked by all mutating operations.
type Review struct {
	ReviewID   int64     `json:"id"`
	UserID     int64     `json:"userId"`
	BusinessID int64     `json:"businessId"`
	Dollars    int       `json:"dollars"`
	Stars      float64   `json:"stars"`
	Review     string    `json:"review,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Review model.
func (r Review) TableName() string {
	return "reviews"
}
