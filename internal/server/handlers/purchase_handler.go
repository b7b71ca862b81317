package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/barstock/internal/domain/models"
)

// PurchaseService is the purchase surface used over HTTP.
type PurchaseService interface {
	Create(ctx context.Context, in models.PurchaseInput) (models.PurchaseEntry, error)
	Get(ctx context.Context, id string) (models.PurchaseEntry, error)
	List(ctx context.Context) ([]models.PurchaseEntry, error)
	ListBySession(ctx context.Context, sessionID string) ([]models.PurchaseEntry, error)
	Update(ctx context.Context, id string, in models.PurchaseInput) (models.PurchaseEntry, error)
	Delete(ctx context.Context, id string) error
}

// PurchaseHandler serves purchase entries.
type PurchaseHandler struct {
	svc    PurchaseService
	logger *zap.Logger
}

// NewPurchaseHandler constructs the HTTP handler adapter.
func NewPurchaseHandler(svc PurchaseService, logger *zap.Logger) *PurchaseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PurchaseHandler{svc: svc, logger: logger}
}

func (h *PurchaseHandler) Create(c *gin.Context) {
	var in models.PurchaseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	entry, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *PurchaseHandler) List(c *gin.Context) {
	entries, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *PurchaseHandler) Get(c *gin.Context) {
	entry, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *PurchaseHandler) ListBySession(c *gin.Context) {
	entries, err := h.svc.ListBySession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *PurchaseHandler) Update(c *gin.Context) {
	var in models.PurchaseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	entry, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *PurchaseHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Purchase deleted successfully"})
}
