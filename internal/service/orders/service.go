// Package orders turns shopping-list sections into tracked supplier orders.
package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mamadbah2/barstock/internal/domain/models"
	"github.com/mamadbah2/barstock/internal/repository"
)

// ShoppingLists provides the current section of a supplier.
type ShoppingLists interface {
	SupplierSection(ctx context.Context, supplier string) (models.SupplierList, error)
}

// Service implements shopping-order operations.
type Service struct {
	store    repository.OrderRepository
	shopping ShoppingLists
	logger   *zap.Logger
	now      func() time.Time
	newID    func() string
}

// NewService wires a new order service.
func NewService(store repository.OrderRepository, shopping ShoppingLists, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:    store,
		shopping: shopping,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// CreateOrder stores a planned order. Without planned items the supplier's
// current shopping-list section is used.
func (s *Service) CreateOrder(ctx context.Context, in models.OrderInput) (models.ShoppingOrder, error) {
	planned := in.PlannedItems
	if len(planned) == 0 {
		section, err := s.shopping.SupplierSection(ctx, in.Supplier)
		if err != nil {
			return models.ShoppingOrder{}, err
		}
		planned = section.Items
	}

	total := decimal.Zero
	for _, line := range planned {
		total = total.Add(decimal.NewFromFloat(line.EstimatedCost))
	}

	now := s.now().UTC()
	order := models.ShoppingOrder{
		ID:           s.newID(),
		Supplier:     in.Supplier,
		PlannedItems: planned,
		Status:       models.OrderPlanned,
		Notes:        in.Notes,
		TotalCost:    total.Round(2).InexactFloat64(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.CreateOrder(ctx, order); err != nil {
		return models.ShoppingOrder{}, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info("shopping order planned",
		zap.String("order_id", order.ID),
		zap.String("supplier", order.Supplier),
		zap.Int("items", len(order.PlannedItems)))
	return order, nil
}

// ListOrders returns every order, newest first.
func (s *Service) ListOrders(ctx context.Context) ([]models.ShoppingOrder, error) {
	orders, err := s.store.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus moves the order to status. An empty notes keeps the stored notes.
func (s *Service) UpdateStatus(ctx context.Context, id string, status models.OrderStatus, notes string) (models.ShoppingOrder, error) {
	if !status.Valid() {
		return models.ShoppingOrder{}, models.ErrInvalidStatus
	}

	order, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return models.ShoppingOrder{}, repository.MapNotFound(err, models.ErrOrderNotFound, "get order")
	}

	if !order.Status.CanMoveTo(status) {
		return models.ShoppingOrder{}, fmt.Errorf("%w: cannot move from %s to %s", models.ErrInvalidStatus, order.Status, status)
	}

	order.Status = status
	if notes != "" {
		order.Notes = notes
	}
	order.UpdatedAt = s.now().UTC()

	if err := s.store.ReplaceOrder(ctx, order); err != nil {
		return models.ShoppingOrder{}, repository.MapNotFound(err, models.ErrOrderNotFound, "update order")
	}

	s.logger.Info("shopping order updated", zap.String("order_id", order.ID), zap.String("status", string(status)))
	return order, nil
}
