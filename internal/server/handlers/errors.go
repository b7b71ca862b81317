package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/barstock/internal/domain/models"
	"github.com/mamadbah2/barstock/internal/service/reporting"
)

var notFoundDetails = []struct {
	err    error
	detail string
}{
	{models.ErrItemNotFound, "Item not found"},
	{models.ErrSessionNotFound, "Session not found"},
	{models.ErrPurchaseNotFound, "Purchase not found"},
	{models.ErrOrderNotFound, "Order not found"},
	{models.ErrSupplierNotFound, "Supplier not found in shopping list"},
}

var badRequestErrors = []error{
	models.ErrNoStockCounts,
	models.ErrInvalidStatus,
	models.ErrInvalidQuantity,
	models.ErrInvalidCategory,
}

// respondError maps service errors to a status code and a {"detail": ...} body.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	for _, nf := range notFoundDetails {
		if errors.Is(err, nf.err) {
			c.JSON(http.StatusNotFound, gin.H{"detail": nf.detail})
			return
		}
	}

	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
	}

	if errors.Is(err, reporting.ErrExportDisabled) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": err.Error()})
		return
	}

	logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
}

// respondBindError answers a payload that failed to bind or validate.
func respondBindError(c *gin.Context, logger *zap.Logger, err error) {
	logger.Debug("invalid request payload", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
}
