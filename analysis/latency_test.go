package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chatscope/domain"
)

func TestMeanResponseMinutes(t *testing.T) {
	req := require.New(t)
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	messages := []domain.Message{
		msg("Alice", "hi", base),
		msg("Bob", "hey", base.Add(5*time.Minute)),
		msg("Alice", "how are you", base.Add(10*time.Minute)),
		msg("Alice", "still there?", base.Add(40*time.Minute)),
	}

	latency := MeanResponseMinutes(messages)

	// Alice: gaps 10 and 30 minutes to her own previous messages, the
	// interleaved Bob message is irrelevant.
	req.InDelta(20.0, latency["Alice"], 1e-9)

	// Bob wrote once, so he has no gap and must be absent.
	_, ok := latency["Bob"]
	req.False(ok)
}

func TestMeanResponseMinutes_SingleGap(t *testing.T) {
	req := require.New(t)
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	latency := MeanResponseMinutes([]domain.Message{
		msg("Alice", "hi", base),
		msg("Alice", "me again", base.Add(10*time.Minute)),
	})
	req.InDelta(10.0, latency["Alice"], 1e-9)
}

func TestMeanResponseMinutes_Empty(t *testing.T) {
	require.Empty(t, MeanResponseMinutes(nil))
}
