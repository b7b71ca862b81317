package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/barstock/internal/domain/models"
)

// InventoryService is the catalog and stock-count surface used over HTTP.
type InventoryService interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id string) (models.Item, error)
	CreateItem(ctx context.Context, in models.ItemInput) (models.Item, error)
	UpdateItem(ctx context.Context, id string, in models.ItemInput) (models.Item, error)
	DeleteItem(ctx context.Context, id string) error
	ListStockCounts(ctx context.Context) ([]models.StockCount, error)
	GetStockCount(ctx context.Context, itemID string) (models.StockCount, error)
	CreateStockCount(ctx context.Context, in models.StockCountInput) (models.StockCount, error)
	UpdateStockCount(ctx context.Context, itemID string, upd models.StockCountUpdate) (models.StockCount, error)
	RecordCaseCount(ctx context.Context, itemID string, in models.CaseCountInput) (models.StockCount, error)
	SeedDemoCatalog(ctx context.Context) ([]models.Item, error)
}

// InventoryHandler serves items, stock counts and the demo seed.
type InventoryHandler struct {
	svc    InventoryService
	logger *zap.Logger
}

// NewInventoryHandler constructs the HTTP handler adapter.
func NewInventoryHandler(svc InventoryService, logger *zap.Logger) *InventoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryHandler{svc: svc, logger: logger}
}

func (h *InventoryHandler) ListItems(c *gin.Context) {
	items, err := h.svc.ListItems(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *InventoryHandler) GetItem(c *gin.Context) {
	item, err := h.svc.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var in models.ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	item, err := h.svc.CreateItem(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	var in models.ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	item, err := h.svc.UpdateItem(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	if err := h.svc.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

func (h *InventoryHandler) ListStockCounts(c *gin.Context) {
	counts, err := h.svc.ListStockCounts(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *InventoryHandler) GetStockCount(c *gin.Context) {
	count, err := h.svc.GetStockCount(c.Request.Context(), c.Param("item_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, count)
}

func (h *InventoryHandler) CreateStockCount(c *gin.Context) {
	var in models.StockCountInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	count, err := h.svc.CreateStockCount(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, count)
}

func (h *InventoryHandler) UpdateStockCount(c *gin.Context) {
	var upd models.StockCountUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	count, err := h.svc.UpdateStockCount(c.Request.Context(), c.Param("item_id"), upd)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, count)
}

// RecordCaseCount accepts per-location {cases, singles} pairs.
func (h *InventoryHandler) RecordCaseCount(c *gin.Context) {
	var in models.CaseCountInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	count, err := h.svc.RecordCaseCount(c.Request.Context(), c.Param("item_id"), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, count)
}

// InitializeRealData replaces the catalog with the demo catalog.
func (h *InventoryHandler) InitializeRealData(c *gin.Context) {
	items, err := h.svc.SeedDemoCatalog(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Initialized %d items", len(items)),
		"items":   len(items),
	})
}
