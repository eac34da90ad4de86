package test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"chatscope/analysis"
	"chatscope/emojiset"
	cserrors "chatscope/errors"
	"chatscope/forecast"
	"chatscope/parser"
	"chatscope/report"
)

const scenario = "[01/01/2024, 10:00:00] Alice: hi\n" +
	"[01/01/2024, 10:05:00] Bob: hey\n" +
	"[01/01/2024, 10:10:00] Alice: how are you\n" +
	"[02/01/2024, 09:00:00] Bob: Missed video call"

func newPipeline(t *testing.T) (*parser.Parser, *report.Builder) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelError)
	markers, err := analysis.NewMarkerMatcher([]string{analysis.MarkerImage, analysis.MarkerSticker})
	require.NoError(t, err)
	builder := report.NewBuilder(log,
		analysis.NewAggregator(log, markers),
		forecast.New(log, forecast.NewStepwiseSelector(log), 0))
	return parser.New(log), builder
}

// The whole pipeline over the reference conversation.
func TestPipeline_Scenario(t *testing.T) {
	req := require.New(t)
	p, builder := newPipeline(t)

	parsed := p.Parse(scenario)
	req.Len(parsed.Messages, 3)
	req.Len(parsed.Calls, 1)
	req.Equal(0, parsed.Skipped)

	rep, err := builder.Build(context.Background(), parsed, nil, emojiset.Default)
	req.NoError(err)

	req.Equal(map[string]int{"Alice": 2, "Bob": 1}, rep.Senders.Messages)

	req.Equal(1, rep.Calls)
	req.Equal(1, rep.Summary.Total)
	req.Equal(1, rep.Summary.Missed)
	req.Equal(0, parsed.Calls[0].DurationMinutes)

	// Messages span a single calendar day; the call does not count.
	req.Equal(1, rep.Series.Len())
	req.Equal([]int{3}, rep.Series.Counts)

	// Alice has one own-message gap of 10 minutes; Bob wrote only once.
	req.InDelta(10.0, rep.Latency["Alice"], 1e-9)
	_, ok := rep.Latency["Bob"]
	req.False(ok)

	// One day of history cannot support a model. The failure is stage
	// local: every other table above still reported.
	req.ErrorIs(rep.Errs.Forecast, cserrors.ErrSeriesTooShort)

	req.ErrorIs(rep.Errs.Emojis, cserrors.ErrNoEmojis)
}

// Optional smoke run over a real export supplied via the environment.
func TestPipeline_Fixture(t *testing.T) {
	req := require.New(t)
	cfg, err := LoadConfig()
	req.NoError(err)
	if cfg.FixturePath == "" {
		t.Skip("CHATSCOPE_FIXTURE_PATH not set")
	}

	raw, err := os.ReadFile(cfg.FixturePath)
	req.NoError(err)

	p, builder := newPipeline(t)
	parsed := p.Parse(string(raw))
	req.NotEmpty(parsed.Messages)

	rep, err := builder.Build(context.Background(), parsed, nil, emojiset.Default)
	req.NoError(err)

	total := 0
	for _, n := range rep.Senders.Messages {
		total += n
	}
	req.Equal(len(parsed.Messages), total)
}
