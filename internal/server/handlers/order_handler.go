package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/barstock/internal/domain/models"
)

// OrderService is the shopping-order surface used over HTTP.
type OrderService interface {
	CreateOrder(ctx context.Context, in models.OrderInput) (models.ShoppingOrder, error)
	ListOrders(ctx context.Context) ([]models.ShoppingOrder, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus, notes string) (models.ShoppingOrder, error)
}

// OrderHandler serves shopping orders.
type OrderHandler struct {
	svc    OrderService
	logger *zap.Logger
}

// NewOrderHandler constructs the HTTP handler adapter.
func NewOrderHandler(svc OrderService, logger *zap.Logger) *OrderHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderHandler{svc: svc, logger: logger}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var in models.OrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	order, err := h.svc.CreateOrder(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.svc.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateStatus reads the new status and optional notes from the query string.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	status := models.OrderStatus(c.Query("status"))
	order, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), status, c.Query("notes"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
