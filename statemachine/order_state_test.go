package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slicehub/models"
)

func TestStatusesInPipelineOrder(t *testing.T) {
	want := []models.OrderStatus{
		models.StatusPending,
		models.StatusPreparing,
		models.StatusOutForDelivery,
		models.StatusDelivered,
	}
	assert.Equal(t, want, Statuses())
}

func TestNextWalksThePipeline(t *testing.T) {
	next, ok := Next(models.StatusPending)
	require.True(t, ok)
	assert.Equal(t, models.StatusPreparing, next)

	next, ok = Next(models.StatusOutForDelivery)
	require.True(t, ok)
	assert.Equal(t, models.StatusDelivered, next)

	_, ok = Next(models.StatusDelivered)
	assert.False(t, ok, "delivered is terminal")
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(models.StatusDelivered))
	assert.False(t, IsTerminal(models.StatusPending))
	assert.False(t, IsTerminal(models.StatusOutForDelivery))
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		from models.OrderStatus
		to   models.OrderStatus
		want Change
	}{
		{"same status", models.StatusPending, models.StatusPending, NoChange},
		{"natural step", models.StatusPending, models.StatusPreparing, Forward},
		{"last step", models.StatusOutForDelivery, models.StatusDelivered, Forward},
		{"jump ahead", models.StatusPending, models.StatusDelivered, Skip},
		{"one past next", models.StatusPreparing, models.StatusDelivered, Skip},
		{"rewind", models.StatusDelivered, models.StatusPreparing, Rewind},
		{"rewind to start", models.StatusPreparing, models.StatusPending, Rewind},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.from, tc.to))
		})
	}
}

func TestChangeString(t *testing.T) {
	assert.Equal(t, "forward", Forward.String())
	assert.Equal(t, "skip", Skip.String())
	assert.Equal(t, "rewind", Rewind.String())
	assert.Equal(t, "no-change", NoChange.String())
}
