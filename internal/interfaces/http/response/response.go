package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "vendorhub.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error maps a domain error to an HTTP response. Typed state machine errors
// carry enough structure for clients to react without parsing messages.
func Error(c *gin.Context, err error) {
	var illegal *domainerrors.IllegalTransitionError
	if errors.As(err, &illegal) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "illegal_transition",
			"entity": illegal.Kind,
			"from":   illegal.From,
			"to":     illegal.To,
		})
		return
	}

	var missingReason *domainerrors.MissingReasonError
	if errors.As(err, &missingReason) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "missing_reason",
			"entity": missingReason.Kind,
			"to":     missingReason.To,
		})
		return
	}

	var unknown *domainerrors.UnknownEntityError
	if errors.As(err, &unknown) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "unknown_entity_or_status",
			"message": unknown.Error(),
		})
		return
	}

	if errors.Is(err, domainerrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	if errors.Is(err, domainerrors.ErrMerchantNotActive) || errors.Is(err, domainerrors.ErrCapabilityDisabled) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	var persistence *domainerrors.PersistenceError
	if errors.As(err, &persistence) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "persistence_failure"})
		return
	}

	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{
			"error":   appErr.Message,
			"message": appErr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
