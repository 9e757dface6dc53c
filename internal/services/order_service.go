// internal/services/order_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vedabooks/shop-backend/internal/models"
	"github.com/vedabooks/shop-backend/internal/storage"
	"github.com/vedabooks/shop-backend/internal/utils"
)

const ordersKey = "orders"

// OrderService turns a cart into a placed order. There is no payment
// processor behind it: orders are created pending and handled out of
// band, which is all the storefront needs.
type OrderService struct {
	snapshots   storage.Snapshots
	cartService *CartService

	mu     sync.Mutex
	orders map[string]models.Order
}

type CheckoutRequest struct {
	FirstName  string `json:"first_name" validate:"required,min=2,max=100"`
	LastName   string `json:"last_name" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,min=10,max=20"`
	Address    string `json:"address" validate:"required,min=10,max=300"`
	City       string `json:"city" validate:"required,min=2,max=100"`
	PostalCode string `json:"postal_code" validate:"required,min=5,max=10"`
	Comment    string `json:"comment,omitempty" validate:"max=1000"`
	Delivery   string `json:"delivery_method" validate:"required,oneof=pickup delivery"`
}

// NewOrderService rehydrates placed orders from their snapshot.
func NewOrderService(ctx context.Context, snapshots storage.Snapshots, cartService *CartService) *OrderService {
	s := &OrderService{
		snapshots:   snapshots,
		cartService: cartService,
		orders:      make(map[string]models.Order),
	}

	data, err := snapshots.Load(ctx, ordersKey)
	if err != nil {
		if err != storage.ErrNoSnapshot {
			logrus.WithError(err).Warn("Failed to load orders snapshot")
		}
		return s
	}

	if err := json.Unmarshal(data, &s.orders); err != nil {
		logrus.WithError(err).Warn("Discarding corrupt orders snapshot")
		if err := snapshots.Delete(ctx, ordersKey); err != nil {
			logrus.WithError(err).Warn("Failed to clear corrupt orders snapshot")
		}
		s.orders = make(map[string]models.Order)
	}
	return s
}

// Checkout validates the customer form, snapshots the session's cart
// into a pending order and clears the cart. An empty cart fails with
// ErrEmptyCart.
func (s *OrderService) Checkout(ctx context.Context, sessionID string, req *CheckoutRequest) (models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return models.Order{}, fmt.Errorf("validation failed: %w", err)
	}

	summary := s.cartService.Summary(ctx, sessionID)
	if len(summary.Items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	now := timeNow()
	delivery := models.DeliveryMethod(req.Delivery)

	estimated := now.AddDate(0, 0, 7)
	if delivery == models.DeliveryMethodPickup {
		estimated = now.AddDate(0, 0, 1)
	}

	order := models.Order{
		ID:    uuid.NewString(),
		Items: summary.Items,
		Customer: models.Customer{
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Email:      req.Email,
			Phone:      req.Phone,
			Address:    req.Address,
			City:       req.City,
			PostalCode: req.PostalCode,
			Comment:    req.Comment,
			Delivery:   delivery,
		},
		Total:             summary.Total,
		Status:            models.OrderStatusPending,
		CreatedAt:         now,
		EstimatedDelivery: &estimated,
	}

	s.mu.Lock()
	s.orders[order.ID] = order
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.cartService.Clear(ctx, sessionID)

	logrus.WithFields(logrus.Fields{
		"order_id": order.ID,
		"total":    order.Total,
		"items":    len(order.Items),
	}).Info("Order placed")

	return order, nil
}

func (s *OrderService) GetOrder(id string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.orders)
	if err != nil {
		logrus.WithError(err).Error("Failed to marshal orders snapshot")
		return
	}

	if err := s.snapshots.Save(ctx, ordersKey, data); err != nil {
		logrus.WithError(err).Error("Failed to save orders snapshot")
	}
}
