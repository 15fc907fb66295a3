package api

import (
	"errors"
	"net/http"

	"petconnect/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondCommandError maps use case sentinels to HTTP statuses. Every
// transition endpoint funnels through here so status codes stay consistent.
func respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrPetNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Pet not found"})
	case errors.Is(err, errs.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
	case errors.Is(err, errs.ErrAdoptionRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Adoption request not found"})
	case errors.Is(err, errs.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, errs.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
	case errors.Is(err, errs.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, errs.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, errs.ErrPetNotAvailable):
		c.JSON(http.StatusConflict, gin.H{"error": "Pet is no longer available"})
	case errors.Is(err, errs.ErrServiceNotAvailable):
		c.JSON(http.StatusConflict, gin.H{"error": "Service is not available"})
	case errors.Is(err, errs.ErrDuplicateRequest):
		c.JSON(http.StatusConflict, gin.H{"error": "You already have a request for this pet"})
	case errors.Is(err, errs.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Operation not allowed in the current state"})
	case errors.Is(err, errs.ErrRequestNotApproved):
		c.JSON(http.StatusConflict, gin.H{"error": "Request is not approved"})
	case errors.Is(err, errs.ErrPaymentNotRequired):
		c.JSON(http.StatusConflict, gin.H{"error": "No payment is required for this adoption"})
	case errors.Is(err, errs.ErrPaymentNotInitiated):
		c.JSON(http.StatusConflict, gin.H{"error": "Payment has not been initiated"})
	case errors.Is(err, errs.ErrPaymentAlreadySettled):
		c.JSON(http.StatusConflict, gin.H{"error": "Payment has already been completed"})
	case errors.Is(err, errs.ErrPaymentNotSettled):
		c.JSON(http.StatusConflict, gin.H{"error": "Payment has not been completed"})
	case errors.Is(err, errs.ErrGatewayOrderMismatch):
		c.JSON(http.StatusConflict, gin.H{"error": "Payment order does not match this request"})
	case errors.Is(err, errs.ErrPaymentVerificationFailed):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment signature verification failed"})
	case errors.Is(err, errs.ErrInvalidDeliveryDate):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid delivery date"})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed"})
	case errors.Is(err, errs.ErrGatewayUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment gateway is unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format"})
		return uuid.Nil, false
	}
	return id, true
}
