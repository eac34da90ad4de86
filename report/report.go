// Package report runs the downstream analytics over one parsed record
// set and assembles their outputs. The four analytics are independent,
// share no mutable state and run concurrently; a failure in one stage
// never touches the others.
package report

import (
	"context"
	"log/slog"
	"sync"

	"chatscope/analysis"
	"chatscope/domain"
	cserrors "chatscope/errors"
	"chatscope/forecast"
	"chatscope/lexical"
	"chatscope/parser"
	"chatscope/timeseries"
)

// topWords is how many rows the word frequency table keeps.
const topWords = 10

// Report aggregates every analytics output of one run. Stage-local
// failures land in StageErrors instead of aborting the run.
type Report struct {
	Messages int
	Calls    int
	Skipped  int

	Senders  analysis.SenderCounts
	Lengths  map[string]analysis.LengthStats
	Hours    [24]int
	Heatmap  *analysis.Heatmap
	Summary  analysis.CallSummary
	Series   timeseries.DailySeries
	Trend    []float64
	Forecast *forecast.Result
	Latency  map[string]float64

	TopEmojis []lexical.EmojiCount
	TopWords  []lexical.WordCount
	Corpus    string
	Language  string

	Errs StageErrors
}

// StageErrors records which independently fallible stages failed.
type StageErrors struct {
	Calls    error
	Forecast error
	Emojis   error
}

type Builder struct {
	log        *slog.Logger
	aggregator *analysis.Aggregator
	forecaster *forecast.Forecaster
}

func NewBuilder(log *slog.Logger, aggregator *analysis.Aggregator, forecaster *forecast.Forecaster) *Builder {
	return &Builder{log: log, aggregator: aggregator, forecaster: forecaster}
}

// Build runs every analytic over the parsed records. Only an entirely
// empty record set is an error; anything stage-local is reported inside
// the returned Report.
func (b *Builder) Build(ctx context.Context, parsed parser.Result, stopwords map[string]struct{}, isEmoji lexical.Classifier) (Report, error) {
	if len(parsed.Messages) == 0 {
		return Report{}, cserrors.ErrEmptyChat
	}

	rep := Report{
		Messages: len(parsed.Messages),
		Calls:    len(parsed.Calls),
		Skipped:  parsed.Skipped,
	}

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		b.aggregate(&rep, parsed.Messages, parsed.Calls)
	}()
	go func() {
		defer wg.Done()
		b.project(ctx, &rep, parsed.Messages)
	}()
	go func() {
		defer wg.Done()
		rep.Latency = analysis.MeanResponseMinutes(parsed.Messages)
	}()
	go func() {
		defer wg.Done()
		b.lexical(&rep, parsed.Messages, stopwords, isEmoji)
	}()

	wg.Wait()
	return rep, nil
}

func (b *Builder) aggregate(rep *Report, messages []domain.Message, calls []domain.Call) {
	rep.Senders = b.aggregator.CountBySender(messages)
	rep.Lengths = b.aggregator.LengthStatsBySender(messages)
	rep.Hours = b.aggregator.HourHistogram(messages)

	heatmap, err := analysis.BuildHeatmap(calls)
	if err != nil {
		b.log.Info("Call analysis skipped", "reason", err)
		rep.Errs.Calls = err
		return
	}
	rep.Heatmap = heatmap
	rep.Summary, _ = analysis.Summarize(calls)
}

func (b *Builder) project(ctx context.Context, rep *Report, messages []domain.Message) {
	series, err := timeseries.Build(messages)
	if err != nil {
		// Unreachable with a non-empty message set, kept for safety.
		rep.Errs.Forecast = err
		return
	}
	rep.Series = series
	rep.Trend = series.Trend()

	result, err := b.forecaster.Forecast(ctx, series)
	if err != nil {
		b.log.Warn("Forecast unavailable", "err", err)
		rep.Errs.Forecast = err
		return
	}
	rep.Forecast = &result
}

func (b *Builder) lexical(rep *Report, messages []domain.Message, stopwords map[string]struct{}, isEmoji lexical.Classifier) {
	rep.Language = lexical.DetectLanguage(messages)
	rep.Corpus = lexical.Corpus(messages, stopwords)
	rep.TopWords = lexical.WordFrequencies(rep.Corpus, topWords)

	emojis, err := lexical.TopEmojis(messages, isEmoji, lexical.DefaultTopEmojis)
	if err != nil {
		b.log.Info("Emoji analysis skipped", "reason", err)
		rep.Errs.Emojis = err
		return
	}
	rep.TopEmojis = emojis
}
