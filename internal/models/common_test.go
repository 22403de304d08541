// internal/models/common_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusSteps(t *testing.T) {
	assert.Equal(t, 0, OrderStatusPlaced.Step())
	assert.Equal(t, 1, OrderStatusPaymentConfirmed.Step())
	assert.Equal(t, 2, OrderStatusPreparing.Step())
	assert.Equal(t, 3, OrderStatusShipped.Step())
	assert.Equal(t, 4, OrderStatusDelivered.Step())
	assert.Equal(t, -1, OrderStatusCancelled.Step())
}

func TestOrderStatusTransitions(t *testing.T) {
	// Forward moves, including skips, are fine.
	assert.True(t, OrderStatusPlaced.CanTransitionTo(OrderStatusPaymentConfirmed))
	assert.True(t, OrderStatusPlaced.CanTransitionTo(OrderStatusShipped))
	assert.True(t, OrderStatusPreparing.CanTransitionTo(OrderStatusDelivered))

	// Backwards moves are not, and neither is staying put.
	assert.False(t, OrderStatusShipped.CanTransitionTo(OrderStatusPreparing))
	assert.False(t, OrderStatusDelivered.CanTransitionTo(OrderStatusPlaced))
	assert.False(t, OrderStatusPlaced.CanTransitionTo(OrderStatusPlaced))
	assert.False(t, OrderStatusDelivered.CanTransitionTo(OrderStatusDelivered))

	// Cancellation works anywhere before delivery, and is terminal.
	assert.True(t, OrderStatusPlaced.CanTransitionTo(OrderStatusCancelled))
	assert.True(t, OrderStatusShipped.CanTransitionTo(OrderStatusCancelled))
	assert.False(t, OrderStatusDelivered.CanTransitionTo(OrderStatusCancelled))
	assert.False(t, OrderStatusCancelled.CanTransitionTo(OrderStatusPlaced))
	assert.False(t, OrderStatusCancelled.CanTransitionTo(OrderStatusCancelled))

	// Unknown targets are rejected.
	assert.False(t, OrderStatusPlaced.CanTransitionTo(OrderStatus("lost")))
}

func TestBodyStyleValid(t *testing.T) {
	assert.True(t, BodyStyleSedan.Valid())
	assert.True(t, BodyStyleStationWagon.Valid())
	assert.False(t, BodyStyle("Coupe").Valid())
}
