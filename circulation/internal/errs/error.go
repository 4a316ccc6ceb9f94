package errs

import (
	"net/http"

	"github.com/pkg/errors"
)

type Kind uint8

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvariant
	KindValidation
	KindAuthorization
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindInvariant:
		return "InvariantViolation"
	case KindValidation:
		return "ValidationError"
	case KindAuthorization:
		return "AuthorizationError"
	default:
		return "Internal"
	}
}

// Error is a user-facing failure of a single request.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

var (
	ErrNotFound            = New(KindNotFound, "not found")
	ErrBookNotFound        = New(KindNotFound, "book not found")
	ErrCopyNotFound        = New(KindNotFound, "copy not found")
	ErrReservationNotFound = New(KindNotFound, "reservation not found")
	ErrRentalNotFound      = New(KindNotFound, "rental not found")

	ErrNoCopyAvailable            = New(KindInvariant, "no copy of this book is available")
	ErrDuplicateActiveReservation = New(KindInvariant, "you already have an active reservation for this book")
	ErrReservationNotActive       = New(KindInvariant, "reservation is not active")
	ErrAlreadyIssued              = New(KindInvariant, "book is already issued for this reservation")
	ErrNoReservedCopy             = New(KindInvariant, "no reserved copy of this book")
	ErrAlreadyReturned            = New(KindInvariant, "rental is already returned")
	ErrOpenRental                 = New(KindInvariant, "reservation has an open rental")
	ErrCopyBusy                   = New(KindInvariant, "copy is reserved or rented")
	ErrDuplicateISBN              = New(KindInvariant, "book with this isbn already exists")

	ErrInvalidDueDate    = New(KindValidation, "due date must be in the future")
	ErrInvalidExpiry     = New(KindValidation, "expiry must not precede reservation creation")
	ErrInvalidCopyStatus = New(KindValidation, "status must be one of Available, Damaged, Lost")
	ErrNothingToUpdate   = New(KindValidation, "expiresAt or dueDate is required")
	ErrInvalidReference  = New(KindValidation, "author or genre does not exist")

	ErrForbidden     = New(KindAuthorization, "reservation belongs to another user")
	ErrAdminRequired = New(KindAuthorization, "admin privileges required")
)

// KindOf walks the wrap chain and returns the kind of the first *Error found.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvariant:
		return http.StatusConflict
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthorization:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Message is the user-facing text: the sentinel message for known errors, the full chain otherwise.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
