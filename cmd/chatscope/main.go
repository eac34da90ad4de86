package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gabriel-vasile/mimetype"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/shirou/gopsutil/process"

	"chatscope/analysis"
	"chatscope/emojiset"
	"chatscope/forecast"
	"chatscope/parser"
	"chatscope/report"
	"chatscope/repositories"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the whole pipeline and centralizes error reporting, so that
// deferred cleanups execute before the process exits and the entry point
// stays testable.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Input. A missing or non-text export is the only fatal failure.
	raw, err := os.ReadFile(config.ChatExportPath)
	if err != nil {
		return fmt.Errorf("reading chat export: %w", err)
	}
	if mtype := mimetype.Detect(raw); !mtype.Is("text/plain") {
		return fmt.Errorf("chat export is %s, expected a plain-text file", mtype)
	}

	stopwords, err := loadStopwords(config.StopwordsPath)
	if err != nil {
		return fmt.Errorf("loading stopwords: %w", err)
	}

	// 3. Parse, then analyze.
	parsed := parser.New(log).Parse(string(raw))
	log.Info("Chat parsed",
		"messages", len(parsed.Messages),
		"calls", len(parsed.Calls),
		"skipped", parsed.Skipped)

	markers, err := analysis.NewMarkerMatcher([]string{analysis.MarkerImage, analysis.MarkerSticker})
	if err != nil {
		return fmt.Errorf("building marker matcher: %w", err)
	}
	builder := report.NewBuilder(log,
		analysis.NewAggregator(log, markers),
		forecast.New(log, forecast.NewStepwiseSelector(log), config.ForecastTimeout))

	rep, err := builder.Build(ctx, parsed, stopwords, emojiset.Default)
	if err != nil {
		return fmt.Errorf("building report: %w", err)
	}

	report.Render(os.Stdout, rep)

	// 4. Optional persistence of the finished run.
	if config.StoreReport && config.BadgerFilepath != "" {
		if err := storeReport(log, config.BadgerFilepath, rep); err != nil {
			return err
		}
	}

	logSelfStats(log)
	return nil
}

func storeReport(log *slog.Logger, path string, rep report.Report) error {
	db, err := badger.Open(badger.DefaultOptions(path).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	repo := repositories.NewReportRepository(db, log)
	if err := repo.Store(repositories.FromReport(rep)); err != nil {
		return fmt.Errorf("storing report: %w", err)
	}
	log.Info("Report stored", "path", path)
	return nil
}

// loadStopwords reads one lower-case word per line. Stopword lists are
// an external resource; an empty path simply disables filtering.
func loadStopwords(path string) (map[string]struct{}, error) {
	if path == "" {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	words := make(map[string]struct{})
	sc := bufio.NewScanner(file)
	for sc.Scan() {
		word := strings.TrimSpace(strings.ToLower(sc.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words[word] = struct{}{}
	}
	return words, sc.Err()
}

// logSelfStats records the process footprint of the run, useful when
// chewing through multi-year exports.
func logSelfStats(log *slog.Logger) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return
	}
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return
	}
	cpu, err := p.CPUPercent()
	if err != nil {
		return
	}
	log.Debug("Run complete", "rss_mb", memInfo.RSS/1024/1024, "cpu_percent", cpu)
}
