package analysis

import (
	"time"

	"chatscope/domain"
	cserrors "chatscope/errors"
)

// Heatmap accumulates call durations per (weekday, hour) slot.
// Monday is row 0, matching the rendering layer's row labels.
type Heatmap struct {
	cells [7][24]heatCell
}

type heatCell struct {
	sum float64
	n   int
}

// Mean returns the mean duration for a slot and whether any call
// happened there at all.
func (h *Heatmap) Mean(weekday, hour int) (float64, bool) {
	cell := h.cells[weekday][hour]
	if cell.n == 0 {
		return 0, false
	}
	return cell.sum / float64(cell.n), true
}

// CallSummary holds the whole-run call scalars.
type CallSummary struct {
	Total                int
	Completed            int
	Missed               int
	MeanCompletedMinutes float64
}

// BuildHeatmap groups mean call duration by weekday and hour.
// Returns ErrNoCalls when the chat contains no call records.
func BuildHeatmap(calls []domain.Call) (*Heatmap, error) {
	if len(calls) == 0 {
		return nil, cserrors.ErrNoCalls
	}
	var h Heatmap
	for _, call := range calls {
		day := mondayIndexed(call.At.Weekday())
		cell := &h.cells[day][call.At.Hour()]
		cell.sum += float64(call.DurationMinutes)
		cell.n++
	}
	return &h, nil
}

// Summarize reduces the call set to its headline scalars.
func Summarize(calls []domain.Call) (CallSummary, error) {
	if len(calls) == 0 {
		return CallSummary{}, cserrors.ErrNoCalls
	}
	summary := CallSummary{Total: len(calls)}
	sum := 0
	for _, call := range calls {
		switch call.Status {
		case domain.CallMissed:
			summary.Missed++
		default:
			summary.Completed++
			sum += call.DurationMinutes
		}
	}
	if summary.Completed > 0 {
		summary.MeanCompletedMinutes = float64(sum) / float64(summary.Completed)
	}
	return summary, nil
}

// mondayIndexed maps Go's Sunday-first weekday to a Monday-first row.
func mondayIndexed(day time.Weekday) int {
	return (int(day) + 6) % 7
}
