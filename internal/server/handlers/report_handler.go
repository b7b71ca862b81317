package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/barstock/internal/domain/models"
	"github.com/mamadbah2/barstock/internal/service/reporting"
)

// ReportingService is the report surface used over HTTP.
type ReportingService interface {
	ShoppingList(ctx context.Context) (models.ShoppingList, error)
	SupplierText(ctx context.Context, supplier string) (string, error)
	QuickRestock(ctx context.Context) ([]models.LowStockItem, error)
	SessionComparison(ctx context.Context, id1, id2 string) (models.SessionComparison, error)
	ExportSessionComparison(ctx context.Context, id1, id2 string) (int, error)
	UsageSummary(ctx context.Context) (models.UsageSummary, error)
}

// ReportHandler serves the shopping list, restock and usage reports.
type ReportHandler struct {
	svc    ReportingService
	logger *zap.Logger
}

// NewReportHandler constructs the HTTP handler adapter.
func NewReportHandler(svc ReportingService, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{svc: svc, logger: logger}
}

func (h *ReportHandler) ShoppingList(c *gin.Context) {
	list, err := h.svc.ShoppingList(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ReportHandler) ShoppingListText(c *gin.Context) {
	supplier := c.Param("supplier")
	text, err := h.svc.SupplierText(c.Request.Context(), supplier)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"supplier": supplier, "text": text})
}

func (h *ReportHandler) QuickRestock(c *gin.Context) {
	low, err := h.svc.QuickRestock(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, low)
}

func (h *ReportHandler) SessionComparison(c *gin.Context) {
	cmp, err := h.svc.SessionComparison(c.Request.Context(), c.Param("id1"), c.Param("id2"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, cmp)
}

func (h *ReportHandler) ExportSessionComparison(c *gin.Context) {
	n, err := h.svc.ExportSessionComparison(c.Request.Context(), c.Param("id1"), c.Param("id2"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Exported %d items", n), "rows": n})
}

// UsageSummary answers 200 with a message while fewer than two sessions have saved counts.
func (h *ReportHandler) UsageSummary(c *gin.Context) {
	summary, err := h.svc.UsageSummary(c.Request.Context())
	if errors.Is(err, reporting.ErrNotEnoughSessions) {
		c.JSON(http.StatusOK, gin.H{"message": reporting.NotEnoughSessionsMessage})
		return
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
