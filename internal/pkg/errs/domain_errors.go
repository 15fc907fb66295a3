package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrForbidden        = errors.New("operation not permitted for this user")

	// Pet errors
	ErrPetNotFound     = errors.New("pet not found")
	ErrPetNotAvailable = errors.New("pet not available for adoption")

	// Adoption request errors
	ErrAdoptionRequestNotFound = errors.New("adoption request not found")
	ErrDuplicateRequest        = errors.New("adoption request already exists for this pet")
	ErrInvalidTransition       = errors.New("invalid status transition")
	ErrInvalidDeliveryDate     = errors.New("invalid delivery date")

	// Payment errors
	ErrPaymentNotRequired        = errors.New("payment not required for free adoption")
	ErrPaymentNotInitiated       = errors.New("payment not initiated")
	ErrPaymentAlreadySettled     = errors.New("payment already settled")
	ErrPaymentVerificationFailed = errors.New("payment signature verification failed")
	ErrGatewayUnavailable        = errors.New("payment gateway unavailable")
	ErrGatewayOrderMismatch      = errors.New("payment order does not belong to this request")
	ErrPaymentNotSettled         = errors.New("payment not settled")
	ErrRequestNotApproved        = errors.New("adoption request not approved")

	// Service/booking errors
	ErrServiceNotFound     = errors.New("service not found")
	ErrServiceNotAvailable = errors.New("service not available")
	ErrBookingNotFound     = errors.New("booking not found")

	// Notification errors
	ErrNotificationNotFound = errors.New("notification not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
