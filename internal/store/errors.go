package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already in use")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("user not found")

	// ErrBusinessNotFound is returned when a query or mutation targets a
	// business id that does not exist in the database.
	ErrBusinessNotFound = errors.New("business not found")

	// ErrPhotoNotFound is returned when a query or mutation targets a photo id
	// that does not exist in the database.
	ErrPhotoNotFound = errors.New("photo not found")

	// ErrReviewNotFound is returned when a query or mutation targets a review
	// id that does not exist in the database.
	ErrReviewNotFound = errors.New("review not found")

	// ErrInvalidReference is returned when an insert or update points an owner
	// or business reference at a row that does not exist (foreign key
	// violation).
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an update without any fields to set).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
