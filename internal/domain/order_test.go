package domain_test

import (
	"testing"
	"time"

	"github.com/ecommerce-dz/go-store/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    domain.OrderStatus
		to      domain.OrderStatus
		allowed bool
	}{
		{domain.StatusPending, domain.StatusConfirmed, true},
		{domain.StatusPending, domain.StatusCancelled, true},
		{domain.StatusPending, domain.StatusShipped, false},
		{domain.StatusPending, domain.StatusDelivered, false},
		{domain.StatusConfirmed, domain.StatusShipped, true},
		{domain.StatusConfirmed, domain.StatusCancelled, false},
		{domain.StatusShipped, domain.StatusDelivered, true},
		{domain.StatusShipped, domain.StatusCancelled, false},
		{domain.StatusDelivered, domain.StatusPending, false},
		{domain.StatusCancelled, domain.StatusConfirmed, false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, domain.StatusDelivered.Terminal())
	assert.True(t, domain.StatusCancelled.Terminal())
	assert.False(t, domain.StatusPending.Terminal())
	assert.False(t, domain.StatusConfirmed.Terminal())
	assert.False(t, domain.StatusShipped.Terminal())
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, domain.StatusPending.Valid())
	assert.False(t, domain.OrderStatus("lost").Valid())
	assert.False(t, domain.OrderStatus("").Valid())
}

func TestNewOrderDefaults(t *testing.T) {
	now := time.Now()
	order := domain.NewOrder("o1", domain.Customer{Name: "Client"}, nil, 0, now, "")

	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, domain.PaymentCOD, order.PaymentMethod)
	assert.Equal(t, now, order.CreatedAt)
}

func TestCartTotal(t *testing.T) {
	items := []domain.CartItem{
		{Product: domain.Product{ID: "a", Price: 1000}, Quantity: 3},
		{Product: domain.Product{ID: "b", Price: 2500}, Quantity: 2},
	}

	assert.Equal(t, int64(8000), domain.CartTotal(items))
	assert.Zero(t, domain.CartTotal(nil))
}
