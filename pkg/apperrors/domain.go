package apperrors

import "net/http"

// Factories for wrapping repository errors.

func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// Predefined errors for the frequent static cases.

// ErrInvalidProfileType rejects an operation the requester's profile type
// does not permit (only venues post jobs, only artists form groups).
var ErrInvalidProfileType = New(
	CodeInvalidOperation,
	"business_logic",
	"Operation not available for this profile type",
	http.StatusBadRequest,
)

// ErrAlreadyApplied surfaces the (job, applicant) uniqueness constraint as a
// user-facing message rather than a raw duplicate-key failure.
var ErrAlreadyApplied = New(
	CodeAlreadyExists,
	"jobs",
	"You have already applied to this job",
	http.StatusConflict,
)

// ErrAlreadyMember surfaces the (group, profile) membership uniqueness.
var ErrAlreadyMember = New(
	CodeAlreadyExists,
	"groups",
	"Profile is already a member of this group",
	http.StatusConflict,
)

// ErrSelfMessage rejects a message whose sender and receiver coincide.
var ErrSelfMessage = New(
	CodeValidationFailed,
	"messaging",
	"Cannot send a message to yourself",
	http.StatusBadRequest,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

// ErrVenueUnclaimed rejects mutations of legacy venues that have no owner.
// Such rows are read-only until claimed.
var ErrVenueUnclaimed = New(
	CodeConflict,
	"venues",
	"Venue has no owner; claim it before editing",
	http.StatusConflict,
)

// ErrVenueAlreadyClaimed rejects a claim on a venue that already has an owner.
var ErrVenueAlreadyClaimed = New(
	CodeConflict,
	"venues",
	"Venue is already claimed",
	http.StatusConflict,
)
