package http

import (
	"errors"
	"net/http"
	"strings"

	"bitnest/pkg/logger"
	"bitnest/services/api/internal/entity"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto status codes. Anything unrecognised is logged and answered
// with fallback.
func respondError(c *gin.Context, log *logger.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, entity.ErrInvalidProtocol),
		errors.Is(err, entity.ErrInvalidAmount),
		errors.Is(err, entity.ErrInvalidTotal),
		errors.Is(err, entity.ErrInvalidAddress),
		errors.Is(err, entity.ErrInvalidReferralCode):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, entity.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	case errors.Is(err, entity.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case errors.Is(err, entity.ErrLiquidityNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Liquidity stats not found"})
	case errors.Is(err, entity.ErrTransactionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found"})
	case errors.Is(err, entity.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"message": "Username already exists"})
	case errors.Is(err, entity.ErrUpstream):
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch blockchain data",
			"error":   strings.TrimPrefix(err.Error(), entity.ErrUpstream.Error()+": "),
		})
	default:
		log.Error("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": fallback})
	}
}
