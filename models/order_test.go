package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStatuses(t *testing.T) {
	assert.Equal(t, []OrderStatus{OrderConfirmed, OrderCancelled}, NextStatuses(OrderPending))
	assert.Equal(t, []OrderStatus{OrderCompleted, OrderCancelled}, NextStatuses(OrderConfirmed))
	assert.Nil(t, NextStatuses(OrderCompleted))
	assert.Nil(t, NextStatuses(OrderCancelled))
	assert.Nil(t, NextStatuses(OrderStatus("SHIPPED")))
}

func TestTerminal(t *testing.T) {
	assert.False(t, OrderPending.Terminal())
	assert.False(t, OrderConfirmed.Terminal())
	assert.True(t, OrderCompleted.Terminal())
	assert.True(t, OrderCancelled.Terminal())
}

func TestCustomerCanCancel(t *testing.T) {
	assert.True(t, CustomerCanCancel(OrderPending))
	assert.True(t, CustomerCanCancel(OrderConfirmed))
	assert.False(t, CustomerCanCancel(OrderCompleted))
	assert.False(t, CustomerCanCancel(OrderCancelled))
}

func TestStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderConfirmed, OrderCompleted, OrderCancelled} {
		assert.True(t, s.Valid())
	}
	assert.False(t, OrderStatus("SHIPPED").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestOrderTotal(t *testing.T) {
	order := Order{OrderDetails: []OrderDetail{
		{OrchidID: 1, Quantity: 2, UnitPrice: 150000},
		{OrchidID: 2, Quantity: 1, UnitPrice: 90000},
	}}
	assert.Equal(t, int64(390000), order.Total())
}

func TestCartTotalAndCount(t *testing.T) {
	items := []CartItem{
		{OrchidID: 1, Price: 150000, Quantity: 2},
		{OrchidID: 2, Price: 90000, Quantity: 3},
	}
	assert.Equal(t, int64(570000), CartTotal(items))
	assert.Equal(t, 5, CartCount(items))

	assert.Equal(t, int64(0), CartTotal(nil))
	assert.Equal(t, 0, CartCount(nil))
}
