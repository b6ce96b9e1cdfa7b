package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slicehub/models"
)

func TestMenuSeed(t *testing.T) {
	menu := Menu()
	require.Len(t, menu, 6)

	seen := map[string]bool{}
	for _, item := range menu {
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
		assert.NotEmpty(t, item.Name)
		assert.Greater(t, item.Price, 0.0)
		assert.Contains(t, []models.MenuCategory{
			models.CategoryVeg, models.CategoryNonVeg, models.CategoryVegan,
		}, item.Category)
		assert.GreaterOrEqual(t, item.Spiciness, 1)
		assert.LessOrEqual(t, item.Spiciness, 3)
	}

	assert.Equal(t, "Margherita Supreme", menu[0].Name)
	assert.InDelta(t, 12, menu[0].Price, 1e-9)
}

func TestMenuReturnsFreshCopies(t *testing.T) {
	first := Menu()
	first[0].Price = 999

	assert.InDelta(t, 12, Menu()[0].Price, 1e-9)
}

func TestOrdersSeed(t *testing.T) {
	orders := Orders()
	require.Len(t, orders, 3)

	// Most recent first.
	assert.Equal(t, "ORD-1003", orders[0].ID)
	assert.Equal(t, "ORD-1001", orders[2].ID)

	delivered := orders[2]
	assert.Equal(t, models.StatusDelivered, delivered.Status)
	assert.Equal(t, models.PaymentCard, delivered.Payment)
	assert.Equal(t, "123 Main St", delivered.DeliveryAddress)
	require.Len(t, delivered.Items, 2)
	assert.Equal(t, "Margherita Supreme", delivered.Items[0].Item.Name)
	assert.Equal(t, 2, delivered.Items[1].Quantity)
	assert.InDelta(t, 40, delivered.Total, 1e-9)
}

func TestOrderTotalsMatchLineSnapshots(t *testing.T) {
	for _, order := range Orders() {
		var sum float64
		for _, line := range order.Items {
			sum += line.Subtotal()
		}
		assert.InDelta(t, order.Total, sum, 1e-9, "order %s", order.ID)
	}
}
