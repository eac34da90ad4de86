// Package timeseries turns irregular message timestamps into a gap-free
// daily count series with a centered rolling trend.
package timeseries

import (
	"math"
	"time"

	"chatscope/domain"
	cserrors "chatscope/errors"
)

// trendWindow is the centered rolling-mean width in days.
const trendWindow = 7

// DailySeries is a contiguous per-calendar-day message count.
// Counts[i] belongs to Start plus i days; no day is skipped between the
// first and last observed message.
type DailySeries struct {
	Start  time.Time
	Counts []int
}

func (s DailySeries) Len() int {
	return len(s.Counts)
}

// Date returns the calendar day for index i.
func (s DailySeries) Date(i int) time.Time {
	return s.Start.AddDate(0, 0, i)
}

// Last returns the final observed day.
func (s DailySeries) Last() time.Time {
	return s.Date(len(s.Counts) - 1)
}

// Build groups messages by calendar day, filling unobserved days with 0.
// Returns ErrEmptyChat when there is nothing to count.
func Build(messages []domain.Message) (DailySeries, error) {
	if len(messages) == 0 {
		return DailySeries{}, cserrors.ErrEmptyChat
	}

	first := day(messages[0].At)
	last := first
	perDay := make(map[time.Time]int, len(messages))
	for _, msg := range messages {
		d := day(msg.At)
		perDay[d]++
		if d.Before(first) {
			first = d
		}
		if d.After(last) {
			last = d
		}
	}

	n := daysBetween(first, last) + 1
	counts := make([]int, n)
	for d, c := range perDay {
		counts[daysBetween(first, d)] = c
	}
	return DailySeries{Start: first, Counts: counts}, nil
}

// Trend is the centered 7-day rolling mean of the series, aligned to the
// same index. Positions where the window cannot be fully formed hold NaN.
func (s DailySeries) Trend() []float64 {
	trend := make([]float64, len(s.Counts))
	half := trendWindow / 2
	for i := range trend {
		if i < half || i+half >= len(s.Counts) {
			trend[i] = math.NaN()
			continue
		}
		sum := 0
		for j := i - half; j <= i+half; j++ {
			sum += s.Counts[j]
		}
		trend[i] = float64(sum) / trendWindow
	}
	return trend
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}
