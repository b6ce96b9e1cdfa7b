// Package seed loads the fixed catalog and the pre-existing orders that
// constitute the storefront's only persisted-looking state. Restarting
// the process resets everything to this data.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"slicehub/models"
)

//go:embed menu.yaml
var menuYAML []byte

//go:embed orders.yaml
var ordersYAML []byte

// Menu returns the seed catalog. Each call returns a fresh slice so
// callers can never alias each other's copies.
func Menu() []models.MenuItem {
	var items []models.MenuItem
	if err := yaml.Unmarshal(menuYAML, &items); err != nil {
		// Embedded data is part of the build; a decode failure is a
		// programmer error, handled like a failed migration.
		panic(fmt.Sprintf("seed: invalid menu.yaml: %v", err))
	}
	return items
}

type seedLine struct {
	ItemID   string `yaml:"item_id"`
	Quantity int    `yaml:"quantity"`
}

type seedOrder struct {
	ID              string               `yaml:"id"`
	UserID          string               `yaml:"user_id"`
	Lines           []seedLine           `yaml:"lines"`
	Total           float64              `yaml:"total"`
	Status          models.OrderStatus   `yaml:"status"`
	PlacedAt        time.Time            `yaml:"placed_at"`
	DeliveryAddress string               `yaml:"delivery_address"`
	Payment         models.PaymentMethod `yaml:"payment"`
}

// Orders returns the seeded order history, most recent first, with each
// line resolved to a full catalog snapshot.
func Orders() []models.Order {
	var raw []seedOrder
	if err := yaml.Unmarshal(ordersYAML, &raw); err != nil {
		panic(fmt.Sprintf("seed: invalid orders.yaml: %v", err))
	}

	byID := make(map[string]models.MenuItem)
	for _, item := range Menu() {
		byID[item.ID] = item
	}

	orders := make([]models.Order, 0, len(raw))
	for _, so := range raw {
		order := models.Order{
			ID:              so.ID,
			UserID:          so.UserID,
			Total:           so.Total,
			Status:          so.Status,
			PlacedAt:        so.PlacedAt,
			DeliveryAddress: so.DeliveryAddress,
			Payment:         so.Payment,
		}
		for _, line := range so.Lines {
			item, ok := byID[line.ItemID]
			if !ok {
				panic(fmt.Sprintf("seed: order %s references unknown item %q", so.ID, line.ItemID))
			}
			order.Items = append(order.Items, models.CartLine{Item: item, Quantity: line.Quantity})
		}
		orders = append(orders, order)
	}

	// Most recent first, matching how the store keeps its collection.
	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}
	return orders
}
