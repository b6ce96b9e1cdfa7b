// Package statemachine defines the natural fulfillment pipeline for
// orders. The store does not enforce it: status overrides are an
// administrative tool and may set any status from any other. The
// pipeline exists so overrides that jump or rewind it can be audited.
package statemachine

import "slicehub/models"

// pipeline is the authoritative fulfillment order
var pipeline = []models.OrderStatus{
	models.StatusPending,
	models.StatusPreparing,
	models.StatusOutForDelivery,
	models.StatusDelivered,
}

// Statuses returns the closed set of statuses exposed to the operator,
// in pipeline order.
func Statuses() []models.OrderStatus {
	out := make([]models.OrderStatus, len(pipeline))
	copy(out, pipeline)
	return out
}

// Next returns the natural next step in the pipeline. ok is false at
// the terminal status and for statuses outside the pipeline.
func Next(s models.OrderStatus) (models.OrderStatus, bool) {
	i := indexOf(s)
	if i < 0 || i == len(pipeline)-1 {
		return "", false
	}
	return pipeline[i+1], true
}

// IsTerminal reports whether s is the end of the pipeline.
func IsTerminal(s models.OrderStatus) bool {
	return s == pipeline[len(pipeline)-1]
}

// Change classifies a status transition relative to the pipeline
type Change int

const (
	NoChange Change = iota
	Forward         // the natural next step
	Skip            // forward, but jumping over at least one step
	Rewind          // backwards against the pipeline
)

func (c Change) String() string {
	switch c {
	case NoChange:
		return "no-change"
	case Forward:
		return "forward"
	case Skip:
		return "skip"
	case Rewind:
		return "rewind"
	default:
		return "unknown"
	}
}

// Classify describes how a transition relates to the natural pipeline.
func Classify(from, to models.OrderStatus) Change {
	if from == to {
		return NoChange
	}
	fi, ti := indexOf(from), indexOf(to)
	switch {
	case ti == fi+1:
		return Forward
	case ti > fi:
		return Skip
	default:
		return Rewind
	}
}

func indexOf(s models.OrderStatus) int {
	for i, p := range pipeline {
		if p == s {
			return i
		}
	}
	return -1
}
