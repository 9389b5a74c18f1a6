package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisplayStatusShippedBecomesCompletedAfterAWeek(t *testing.T) {
	now := time.Date(2026, 6, 20, 10, 0, 0, 0, time.UTC)

	order := Order{Status: OrderStatusShipped, OrderDate: now.Add(-7 * 24 * time.Hour)}
	assert.Equal(t, OrderStatusCompleted, order.DisplayStatus(now))

	// Stored column is untouched
	assert.Equal(t, OrderStatusShipped, order.Status)
}

func TestDisplayStatusShippedUnderAWeekStaysShipped(t *testing.T) {
	now := time.Date(2026, 6, 20, 10, 0, 0, 0, time.UTC)

	order := Order{Status: OrderStatusShipped, OrderDate: now.Add(-6 * 24 * time.Hour)}
	assert.Equal(t, OrderStatusShipped, order.DisplayStatus(now))
}

func TestDisplayStatusNonShippedNeverCompletes(t *testing.T) {
	now := time.Now()
	old := now.Add(-30 * 24 * time.Hour)

	for _, status := range []string{OrderStatusPending, OrderStatusProcessing} {
		order := Order{Status: status, OrderDate: old}
		assert.Equal(t, status, order.DisplayStatus(now))
	}
}

func TestDisplayStatusZeroOrderDate(t *testing.T) {
	order := Order{Status: OrderStatusShipped}
	assert.Equal(t, OrderStatusShipped, order.DisplayStatus(time.Now()))
}
