package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"slicehub/models"
)

func TestAnalyticsAggregatesOrders(t *testing.T) {
	wed := time.Date(2023, 10, 25, 14, 30, 0, 0, time.UTC) // Wednesday
	thu := time.Date(2023, 10, 26, 10, 15, 0, 0, time.UTC) // Thursday
	seeded := []models.Order{
		{ID: "ORD-1003", Total: 16, Status: models.StatusPending, PlacedAt: thu},
		{ID: "ORD-1002", Total: 15, Status: models.StatusPreparing, PlacedAt: thu},
		{ID: "ORD-1001", Total: 40, Status: models.StatusDelivered, PlacedAt: wed},
	}
	s := New(nil, seeded, nil)

	summary := s.Analytics()

	assert.InDelta(t, 71, summary.TotalRevenue, 1e-9)
	assert.Equal(t, 2, summary.ActiveOrders)
	assert.Equal(t, 1, summary.StatusCounts[models.StatusDelivered])
	assert.Equal(t, 1, summary.StatusCounts[models.StatusPreparing])
	assert.Equal(t, 1, summary.StatusCounts[models.StatusPending])
	assert.InDelta(t, 40, summary.RevenueByWeekday[time.Wednesday], 1e-9)
	assert.InDelta(t, 31, summary.RevenueByWeekday[time.Thursday], 1e-9)
}

func TestAnalyticsTracksNewOrders(t *testing.T) {
	s := newTestStore()
	s.Login("Alice", models.RoleCustomer)
	s.AddToCart(pepperoni)

	_, err := s.PlaceOrder(validDetails())
	assert.NoError(t, err)

	summary := s.Analytics()
	assert.InDelta(t, 15, summary.TotalRevenue, 1e-9)
	assert.Equal(t, 1, summary.ActiveOrders)
}

func TestAnalyticsEmptyHistory(t *testing.T) {
	s := New(nil, nil, nil)

	summary := s.Analytics()

	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.ActiveOrders)
	assert.Empty(t, summary.StatusCounts)
}
