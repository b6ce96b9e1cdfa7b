package store

import (
	"time"

	"slicehub/models"
)

// Summary aggregates the order history for the admin dashboard.
type Summary struct {
	TotalRevenue     float64
	ActiveOrders     int // everything not yet delivered
	StatusCounts     map[models.OrderStatus]int
	RevenueByWeekday map[time.Weekday]float64
}

// Analytics derives the dashboard summary from the current order
// history. It is a pure read; nothing is cached between calls.
func (s *Store) Analytics() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := Summary{
		StatusCounts:     make(map[models.OrderStatus]int),
		RevenueByWeekday: make(map[time.Weekday]float64),
	}
	for _, o := range s.orders {
		summary.TotalRevenue += o.Total
		summary.StatusCounts[o.Status]++
		if o.Status != models.StatusDelivered {
			summary.ActiveOrders++
		}
		summary.RevenueByWeekday[o.PlacedAt.Weekday()] += o.Total
	}
	return summary
}
