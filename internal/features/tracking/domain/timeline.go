package domain

import (
	ordersdomain "backoffice-api/internal/features/orders/domain"
)

// Stage is one step of the fulfillment timeline with its completion flag.
type Stage struct {
	// Name is the status value this stage represents.
	Name ordersdomain.Status `json:"name"`
	// Completed is true when the order has reached or passed this stage.
	Completed bool `json:"completed"`
}

// Timeline is the rendered progress view for one order. For cancelled
// orders the linear stages are absent and Cancelled is set instead.
type Timeline struct {
	// Cancelled marks the terminal branch; when true, Stages is empty.
	Cancelled bool `json:"cancelled"`
	// Stages holds the linear fulfillment steps with completion flags.
	Stages []Stage `json:"stages,omitempty"`
}

// BuildTimeline maps an order status onto the fulfillment sequence.
// Unknown statuses produce a timeline with nothing completed; cancelled
// bypasses the linear view entirely.
func BuildTimeline(status ordersdomain.Status) Timeline {
	if status == ordersdomain.StatusCancelled {
		return Timeline{Cancelled: true}
	}

	completed := ordersdomain.StageCompletion(status)
	stages := make([]Stage, 0, len(completed))
	for i, name := range ordersdomain.Stages() {
		stages = append(stages, Stage{
			Name:      name,
			Completed: completed[i],
		})
	}

	return Timeline{Stages: stages}
}
