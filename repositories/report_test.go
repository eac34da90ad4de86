package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestReportRepository_StoreAndList(t *testing.T) {
	req := require.New(t)
	repo := NewReportRepository(openTestDB(t), slog.Default())

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		duration := 12.5
		stored := StoredReport{
			ID:               uuid.New(),
			At:               base.Add(time.Duration(i) * time.Hour),
			Messages:         100 + i,
			Calls:            2,
			MessagesBySender: map[string]int{"Alice": 60 + i, "Bob": 40},
			LatencyMinutes:   map[string]float64{"Alice": 12.25},
			SeriesCounts:     []int{3, 0, 1},
			Language:         "es",
		}
		stored.Heatmap[0][14] = &duration
		req.NoError(repo.Store(stored))
	}

	reports, err := repo.List(10)
	req.NoError(err)
	req.Len(reports, 3)

	// Most recent first.
	req.Equal(102, reports[0].Messages)
	req.Equal(100, reports[2].Messages)

	latest := reports[0]
	req.Equal(map[string]int{"Alice": 62, "Bob": 40}, latest.MessagesBySender)
	req.InDelta(12.25, latest.LatencyMinutes["Alice"], 1e-9)
	req.NotNil(latest.Heatmap[0][14])
	req.InDelta(12.5, *latest.Heatmap[0][14], 1e-9)
	req.Nil(latest.Heatmap[1][3])
}

func TestReportRepository_ListLimit(t *testing.T) {
	req := require.New(t)
	repo := NewReportRepository(openTestDB(t), slog.Default())

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		req.NoError(repo.Store(StoredReport{ID: uuid.New(), At: base.Add(time.Duration(i) * time.Minute)}))
	}

	reports, err := repo.List(2)
	req.NoError(err)
	req.Len(reports, 2)
}
