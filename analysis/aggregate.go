package analysis

import (
	"log/slog"
	"sort"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"chatscope/domain"
)

// SenderCounts holds per-sender totals. Every sender present in Messages
// also has an entry in Images and Stickers, zero when none matched.
type SenderCounts struct {
	Messages map[string]int
	Images   map[string]int
	Stickers map[string]int
}

// LengthStats describes the distribution of message lengths (in runes)
// for one sender.
type LengthStats struct {
	Mean   float64
	Median float64
}

type Aggregator struct {
	log     *slog.Logger
	markers *MarkerMatcher
}

func NewAggregator(log *slog.Logger, markers *MarkerMatcher) *Aggregator {
	return &Aggregator{log: log, markers: markers}
}

// CountBySender tallies messages and media markers per sender.
func (a *Aggregator) CountBySender(messages []domain.Message) SenderCounts {
	counts := SenderCounts{
		Messages: make(map[string]int),
		Images:   make(map[string]int),
		Stickers: make(map[string]int),
	}
	for _, msg := range messages {
		counts.Messages[msg.Sender]++
		for _, marker := range a.markers.Match(msg.Content) {
			switch marker {
			case MarkerImage:
				counts.Images[msg.Sender]++
			case MarkerSticker:
				counts.Stickers[msg.Sender]++
			}
		}
	}
	// Senders without media still appear in every grouping.
	for sender := range counts.Messages {
		if _, ok := counts.Images[sender]; !ok {
			counts.Images[sender] = 0
		}
		if _, ok := counts.Stickers[sender]; !ok {
			counts.Stickers[sender] = 0
		}
	}
	return counts
}

// HourHistogram buckets messages by hour of day across all senders.
func (a *Aggregator) HourHistogram(messages []domain.Message) [24]int {
	var hours [24]int
	for _, msg := range messages {
		hours[msg.At.Hour()]++
	}
	return hours
}

// LengthStatsBySender computes mean and median message length per sender.
func (a *Aggregator) LengthStatsBySender(messages []domain.Message) map[string]LengthStats {
	grouped := lo.GroupBy(messages, func(msg domain.Message) string {
		return msg.Sender
	})

	result := make(map[string]LengthStats, len(grouped))
	for sender, msgs := range grouped {
		lengths := lo.Map(msgs, func(msg domain.Message, _ int) float64 {
			return float64(len([]rune(msg.Content)))
		})
		sort.Float64s(lengths)
		result[sender] = LengthStats{
			Mean:   stat.Mean(lengths, nil),
			Median: median(lengths),
		}
	}
	return result
}

// median expects a sorted slice and interpolates even-sized inputs.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
