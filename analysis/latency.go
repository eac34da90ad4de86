package analysis

import (
	"time"

	"chatscope/domain"
)

// MeanResponseMinutes computes, per sender, the mean gap in minutes
// between a message and that sender's own previous message. Messages by
// other senders in between are irrelevant. Senders with fewer than two
// messages are excluded, not reported as zero.
func MeanResponseMinutes(messages []domain.Message) map[string]float64 {
	lastAt := make(map[string]time.Time)
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, msg := range messages {
		if prev, ok := lastAt[msg.Sender]; ok {
			sums[msg.Sender] += msg.At.Sub(prev).Minutes()
			counts[msg.Sender]++
		}
		lastAt[msg.Sender] = msg.At
	}

	result := make(map[string]float64, len(counts))
	for sender, n := range counts {
		result[sender] = sums[sender] / float64(n)
	}
	return result
}
