// internal/services/order_service_test.go
package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedabooks/shop-backend/internal/models"
	"github.com/vedabooks/shop-backend/internal/storage/memory"
)

func validCheckout() *CheckoutRequest {
	return &CheckoutRequest{
		FirstName:  "Анна",
		LastName:   "Петрова",
		Email:      "anna@example.com",
		Phone:      "+79991234567",
		Address:    "ул. Ленина, д. 10, кв. 5",
		City:       "Москва",
		PostalCode: "101000",
		Delivery:   "delivery",
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	ctx := context.Background()
	snapshots := memory.New()
	carts := NewCartService(snapshots)
	orders := NewOrderService(ctx, snapshots, carts)

	_, err := orders.Checkout(ctx, testSession, validCheckout())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutValidation(t *testing.T) {
	ctx := context.Background()
	snapshots := memory.New()
	carts := NewCartService(snapshots)
	orders := NewOrderService(ctx, snapshots, carts)

	carts.AddItem(ctx, testSession, testBook("a", 1000))

	bad := validCheckout()
	bad.Email = "not-an-email"
	_, err := orders.Checkout(ctx, testSession, bad)
	assert.Error(t, err)

	bad = validCheckout()
	bad.Delivery = "teleport"
	_, err = orders.Checkout(ctx, testSession, bad)
	assert.Error(t, err)

	// Failed checkouts leave the cart untouched.
	assert.Equal(t, 1, carts.ItemCount(ctx, testSession))
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	ctx := context.Background()
	snapshots := memory.New()
	carts := NewCartService(snapshots)
	orders := NewOrderService(ctx, snapshots, carts)

	carts.AddItem(ctx, testSession, testBook("a", 1200))
	carts.AddItem(ctx, testSession, testBook("a", 1200))
	carts.AddItem(ctx, testSession, testBook("b", 500))

	order, err := orders.Checkout(ctx, testSession, validCheckout())
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 2*1200+500, order.Total)
	assert.Len(t, order.Items, 2)
	require.NotNil(t, order.EstimatedDelivery)
	assert.Equal(t, order.CreatedAt.AddDate(0, 0, 7), *order.EstimatedDelivery)

	// The cart is emptied, in memory and in its snapshot.
	assert.Equal(t, 0, carts.ItemCount(ctx, testSession))
	data, err := snapshots.Load(ctx, "cart:"+testSession)
	require.NoError(t, err)
	var persisted []models.CartItem
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Empty(t, persisted)

	// The order is retrievable, also after a restart.
	got, err := orders.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Total, got.Total)

	restarted := NewOrderService(ctx, snapshots, carts)
	got, err = restarted.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestCheckoutPickupEstimate(t *testing.T) {
	ctx := context.Background()
	snapshots := memory.New()
	carts := NewCartService(snapshots)
	orders := NewOrderService(ctx, snapshots, carts)

	carts.AddItem(ctx, testSession, testBook("a", 100))

	req := validCheckout()
	req.Delivery = "pickup"
	order, err := orders.Checkout(ctx, testSession, req)
	require.NoError(t, err)

	require.NotNil(t, order.EstimatedDelivery)
	assert.Equal(t, order.CreatedAt.AddDate(0, 0, 1), *order.EstimatedDelivery)
}

func TestGetOrderUnknown(t *testing.T) {
	ctx := context.Background()
	snapshots := memory.New()
	orders := NewOrderService(ctx, snapshots, NewCartService(snapshots))

	_, err := orders.GetOrder("ghost")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
