package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-biz-reviews/models"
)

const (
	// admin is deliberately absent from the column list: the database default
	// (false) is the only source of the flag on insert.
	createUser = `INSERT INTO users (name, email, password)
    VALUES ($1, $2, $3)
    RETURNING user_id, name, email, password, admin, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password, admin, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password, admin, created_at
    FROM users
    WHERE user_id = $1;`

	businessColumns = `business_id, owner_id, name, address, city, state, zip, phone,
		category, subcategory, website, email, created_at, updated_at`

	createBusiness = `INSERT INTO businesses (owner_id, name, address, city, state, zip,
		phone, category, subcategory, website, email)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    RETURNING ` + businessColumns + `;`

	getAllBusinesses = `SELECT ` + businessColumns + `
    FROM businesses
    ORDER BY business_id;`

	findBusinessByID = `SELECT ` + businessColumns + `
    FROM businesses
    WHERE business_id = $1;`

	findBusinessesByOwner = `SELECT ` + businessColumns + `
    FROM businesses
    WHERE owner_id = $1
    ORDER BY business_id;`

	deleteBusiness = `DELETE FROM businesses WHERE business_id = $1;`

	photoColumns = `photo_id, user_id, business_id, caption, created_at, updated_at`

	createPhoto = `INSERT INTO photos (user_id, business_id, caption)
    VALUES ($1, $2, $3)
    RETURNING ` + photoColumns + `;`

	getAllPhotos = `SELECT ` + photoColumns + `
    FROM photos
    ORDER BY photo_id;`

	findPhotoByID = `SELECT ` + photoColumns + `
    FROM photos
    WHERE photo_id = $1;`

	findPhotosByOwner = `SELECT ` + photoColumns + `
    FROM photos
    WHERE user_id = $1
    ORDER BY photo_id;`

	deletePhoto = `DELETE FROM photos WHERE photo_id = $1;`

	reviewColumns = `review_id, user_id, business_id, dollars, stars, review, created_at, updated_at`

	createReview = `INSERT INTO reviews (user_id, business_id, dollars, stars, review)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + reviewColumns + `;`

	getAllReviews = `SELECT ` + reviewColumns + `
    FROM reviews
    ORDER BY review_id;`

	findReviewByID = `SELECT ` + reviewColumns + `
    FROM reviews
    WHERE review_id = $1;`

	findReviewsByOwner = `SELECT ` + reviewColumns + `
    FROM reviews
    WHERE user_id = $1
    ORDER BY review_id;`

	deleteReview = `DELETE FROM reviews WHERE review_id = $1;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// ($n) placeholders. Used for dynamically shaped UPDATE statements where the
// SET list depends on which allowlisted fields the client supplied.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildBusinessUpdateQuery builds an UPDATE over exactly the fields present
// in update. updated_at is always touched so that an update carrying only one
// field still bumps the record's modification time.
func buildBusinessUpdateQuery(businessID int64, update models.BusinessUpdate) (string, []any, error) {
	builder := psql.Update("businesses").Set("updated_at", sq.Expr("NOW()"))

	if update.OwnerID != nil {
		builder = builder.Set("owner_id", *update.OwnerID)
	}
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Address != nil {
		builder = builder.Set("address", *update.Address)
	}
	if update.City != nil {
		builder = builder.Set("city", *update.City)
	}
	if update.State != nil {
		builder = builder.Set("state", *update.State)
	}
	if update.Zip != nil {
		builder = builder.Set("zip", *update.Zip)
	}
	if update.Phone != nil {
		builder = builder.Set("phone", *update.Phone)
	}
	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
	}
	if update.Subcategory != nil {
		builder = builder.Set("subcategory", *update.Subcategory)
	}
	if update.Website != nil {
		builder = builder.Set("website", *update.Website)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}

	return builder.Where(sq.Eq{"business_id": businessID}).ToSql()
}

// buildPhotoUpdateQuery builds an UPDATE over exactly the fields present in
// update.
func buildPhotoUpdateQuery(photoID int64, update models.PhotoUpdate) (string, []any, error) {
	builder := psql.Update("photos").Set("updated_at", sq.Expr("NOW()"))

	if update.UserID != nil {
		builder = builder.Set("user_id", *update.UserID)
	}
	if update.BusinessID != nil {
		builder = builder.Set("business_id", *update.BusinessID)
	}
	if update.Caption != nil {
		builder = builder.Set("caption", *update.Caption)
	}

	return builder.Where(sq.Eq{"photo_id": photoID}).ToSql()
}

// buildReviewUpdateQuery builds an UPDATE over exactly the fields present in
// update.
func buildReviewUpdateQuery(reviewID int64, update models.ReviewUpdate) (string, []any, error) {
	builder := psql.Update("reviews").Set("updated_at", sq.Expr("NOW()"))

	if update.UserID != nil {
		builder = builder.Set("user_id", *update.UserID)
	}
	if update.BusinessID != nil {
		builder = builder.Set("business_id", *update.BusinessID)
	}
	if update.Dollars != nil {
		builder = builder.Set("dollars", *update.Dollars)
	}
	if update.Stars != nil {
		builder = builder.Set("stars", *update.Stars)
	}
	if update.Review != nil {
		builder = builder.Set("review", *update.Review)
	}

	return builder.Where(sq.Eq{"review_id": reviewID}).ToSql()
}
