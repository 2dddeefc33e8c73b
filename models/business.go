package models

import "time"

// Business is a venue listing owned by exactly one user.
// OwnerID links the record to the owning account; it is assigned on create
// and is the field all ownership checks compare against.
type Business struct {
	BusinessID  int64     `json:"id"`
	OwnerID     int64     `json:"ownerId"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Zip         string    `json:"zip"`
	Phone       string    `json:"phone"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	Website     string    `json:"website,omitempty"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Business model.
func (b Business) TableName() string {
	return "businesses"
}
