//go:generate go run go.uber.org/mock/mockgen -source=report.go -destination=../mocks/mock_report_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"chatscope/report"
)

type IReportRepository interface {
	Store(stored StoredReport) error
	List(limit int) ([]StoredReport, error)
}

// ReportRepository persists finished analysis reports. The pipeline
// itself is stateless; storage is an optional sink used by the CLI so
// past runs can be compared and inspected.
type ReportRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewReportRepository(db *badger.DB, log *slog.Logger) *ReportRepository {
	return &ReportRepository{db: db, log: log}
}

// StoredReport is the JSON snapshot of one run. Errors become plain
// strings and the heatmap becomes an explicit nullable matrix so the
// document stays self-describing.
type StoredReport struct {
	ID       uuid.UUID `json:"id"`
	At       time.Time `json:"at"`
	Messages int       `json:"messages"`
	Calls    int       `json:"calls"`
	Skipped  int       `json:"skipped"`

	MessagesBySender map[string]int `json:"messages_by_sender"`
	ImagesBySender   map[string]int `json:"images_by_sender"`
	StickersBySender map[string]int `json:"stickers_by_sender"`
	Hours            [24]int        `json:"hours"`

	SeriesStart  time.Time       `json:"series_start"`
	SeriesCounts []int           `json:"series_counts"`
	Heatmap      [7][24]*float64 `json:"heatmap"`

	ForecastOrder  string    `json:"forecast_order,omitempty"`
	ForecastValues []float64 `json:"forecast_values,omitempty"`
	ForecastError  string    `json:"forecast_error,omitempty"`
	CallsError     string    `json:"calls_error,omitempty"`
	EmojisError    string    `json:"emojis_error,omitempty"`

	LatencyMinutes map[string]float64 `json:"latency_minutes"`
	Language       string             `json:"language,omitempty"`
	TopEmojis      []string           `json:"top_emojis,omitempty"`
	TopWords       []string           `json:"top_words,omitempty"`
}

// FromReport snapshots a report for persistence.
func FromReport(rep report.Report) StoredReport {
	stored := StoredReport{
		ID:               uuid.New(),
		At:               time.Now().UTC(),
		Messages:         rep.Messages,
		Calls:            rep.Calls,
		Skipped:          rep.Skipped,
		MessagesBySender: rep.Senders.Messages,
		ImagesBySender:   rep.Senders.Images,
		StickersBySender: rep.Senders.Stickers,
		Hours:            rep.Hours,
		SeriesStart:      rep.Series.Start,
		SeriesCounts:     rep.Series.Counts,
		LatencyMinutes:   rep.Latency,
		Language:         rep.Language,
	}
	if rep.Heatmap != nil {
		for day := 0; day < 7; day++ {
			for hour := 0; hour < 24; hour++ {
				if mean, ok := rep.Heatmap.Mean(day, hour); ok {
					value := mean
					stored.Heatmap[day][hour] = &value
				}
			}
		}
	}
	if rep.Forecast != nil {
		stored.ForecastOrder = rep.Forecast.Order.String()
		stored.ForecastValues = rep.Forecast.Values
	}
	if rep.Errs.Forecast != nil {
		stored.ForecastError = rep.Errs.Forecast.Error()
	}
	if rep.Errs.Calls != nil {
		stored.CallsError = rep.Errs.Calls.Error()
	}
	if rep.Errs.Emojis != nil {
		stored.EmojisError = rep.Errs.Emojis.Error()
	}
	for _, row := range rep.TopEmojis {
		stored.TopEmojis = append(stored.TopEmojis, fmt.Sprintf("%s %d", row.Emoji, row.Count))
	}
	for _, row := range rep.TopWords {
		stored.TopWords = append(stored.TopWords, fmt.Sprintf("%s %d", row.Word, row.Count))
	}
	return stored
}

// Store persists a snapshot. The key embeds a zero-padded timestamp so
// a prefix scan returns runs in chronological order, with the UUID as a
// collision disconnector.
func (r *ReportRepository) Store(stored StoredReport) error {
	key := fmt.Sprintf("report:%019d:%s", stored.At.UnixNano(), stored.ID)
	bytes, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// List returns up to limit snapshots, most recent first.
func (r *ReportRepository) List(limit int) ([]StoredReport, error) {
	var reports []StoredReport
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte("report:")
		seek := append(append([]byte(nil), prefix...), []byte("9999999999999999999")...)
		for it.Seek(seek); it.ValidForPrefix(prefix) && len(reports) < limit; it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var stored StoredReport
				if err := json.Unmarshal(val, &stored); err != nil {
					return fmt.Errorf("decoding report: %w", err)
				}
				reports = append(reports, stored)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.log.Debug("Listed stored reports", "count", len(reports))
	return reports, nil
}
