package checkout_test

import (
	"testing"

	"github.com/jackyeh168/ddd_checkout/src/internal/domain/checkout"
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/customer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderService(t *testing.T) *checkout.OrderService {
	t.Helper()
	rewards, err := checkout.NewRewardPointsService(checkout.DefaultRewardRate)
	require.NoError(t, err)
	return checkout.NewOrderService(rewards)
}

func TestRewardPointsService_CalculateFromTotal(t *testing.T) {
	service, err := checkout.NewRewardPointsService(2)
	require.NoError(t, err)

	tests := []struct {
		total    string
		expected int
	}{
		{"0", 0},
		{"1.99", 0},
		{"10", 5},
		{"21", 10},
		{"-10", 0},
	}

	for _, tt := range tests {
		t.Run(tt.total, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.CalculateFromTotal(decimal.RequireFromString(tt.total)))
		})
	}
}

func TestNewRewardPointsService_InvalidRate_ReturnsError(t *testing.T) {
	_, err := checkout.NewRewardPointsService(0)

	assert.ErrorIs(t, err, checkout.ErrInvalidRewardRate)
}

func TestOrderService_PlaceOrder_AwardsRewardPoints(t *testing.T) {
	// Arrange
	c, err := customer.NewCustomer(customer.NewCustomerID(), "Customer 1")
	require.NoError(t, err)
	item := newItem(t, "i1", 10, 1)

	// Act
	order, err := newOrderService(t).PlaceOrder(c, []checkout.OrderItem{item})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 5, c.RewardPoints())
	assert.True(t, decimal.NewFromInt(10).Equal(order.Total()))
	assert.Equal(t, c.ID(), order.CustomerID())
	assert.Len(t, order.Events(), 1)
}

func TestOrderService_PlaceOrder_NoItems_ReturnsError(t *testing.T) {
	c, _ := customer.NewCustomer(customer.NewCustomerID(), "Customer 1")

	order, err := newOrderService(t).PlaceOrder(c, nil)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, checkout.ErrItemsRequired)
	assert.Equal(t, 0, c.RewardPoints())
}

func TestOrderService_Total(t *testing.T) {
	o1, _ := checkout.NewOrder(newOrderID(t, "o1"), customer.NewCustomerID(), []checkout.OrderItem{newItem(t, "i1", 100, 1)})
	o2, _ := checkout.NewOrder(newOrderID(t, "o2"), customer.NewCustomerID(), []checkout.OrderItem{newItem(t, "i2", 200, 2)})

	total := newOrderService(t).Total([]*checkout.Order{o1, o2})

	assert.True(t, decimal.NewFromInt(500).Equal(total))
}
