package domain

import "errors"

// Authentication and session errors.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingToken       = errors.New("access denied, no token provided")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnknownSubject     = errors.New("user not found")
	ErrForbidden          = errors.New("access forbidden, admin only")
	ErrTooManyAttempts    = errors.New("too many login attempts, try again later")
)

// Resource errors.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrStoreNotFound        = errors.New("store not found")
	ErrStoreNameTaken       = errors.New("a store with this name already exists")
	ErrStoreHasUsers        = errors.New("cannot delete store while users are assigned to it; move those users to another store first")
	ErrStoreHasTransactions = errors.New(`cannot delete store because it already has transactions; set its status to "inactive" instead`)
	ErrUnknownReference     = errors.New("referenced role, store or region does not exist")
	ErrNoExportData         = errors.New("no data to export for this filter")
)

// ValidationError reports malformed or missing input. It is raised before the
// store is touched.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
