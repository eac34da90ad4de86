package main

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chatscope/mocks"
	"chatscope/repositories"
)

func TestListReports(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIReportRepository(ctrl)

	at := time.Date(2024, 3, 10, 18, 30, 0, 0, time.UTC)
	repo.EXPECT().List(5).Return([]repositories.StoredReport{
		{
			At:            at,
			Messages:      42,
			Calls:         3,
			Skipped:       1,
			ForecastOrder: "ARIMA(1,1,0)",
			Language:      "en",
			TopEmojis:     []string{"😂 7", "🔥 2"},
		},
		{At: at.Add(-24 * time.Hour), Messages: 10},
	}, nil)

	var buf bytes.Buffer
	req.NoError(listReports(&buf, repo, 5))

	out := buf.String()
	req.Contains(out, "2024-03-10 18:30:00")
	req.Contains(out, "ARIMA(1,1,0)")
	req.Contains(out, "😂 7")
	// Reports without a forecast show a dash instead of an empty column.
	req.Contains(out, "-")
}

func TestListReports_Error(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIReportRepository(ctrl)

	repo.EXPECT().List(20).Return(nil, fmt.Errorf("db closed"))

	var buf bytes.Buffer
	err := listReports(&buf, repo, 20)
	req.Error(err)
	req.Empty(buf.String())
}
