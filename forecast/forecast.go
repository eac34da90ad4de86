//go:generate go run go.uber.org/mock/mockgen -source=forecast.go -destination=../mocks/mock_order_selector.go -package=mocks

// Package forecast fits an automatic-order ARIMA model to the daily
// message series and projects a fixed 30-day horizon. Order selection is
// a pluggable strategy so the projection contract stays testable without
// running a real search.
package forecast

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"chatscope/timeseries"
)

// Horizon is the fixed look-ahead window, in days.
const Horizon = 30

// Order is a non-seasonal ARIMA order triple.
type Order struct {
	P, D, Q int
}

func (o Order) String() string {
	return fmt.Sprintf("ARIMA(%d,%d,%d)", o.P, o.D, o.Q)
}

// Result carries the chosen order and the projected horizon.
// Values and Dates always have exactly Horizon entries, Dates starting
// the day after the last observed series date.
type Result struct {
	Order  Order
	Values []float64
	Dates  []time.Time
}

// OrderSelector chooses a model order for a series, or reports that the
// search failed. Implementations must honor ctx cancellation: the search
// is the only potentially unbounded computation in the pipeline.
type OrderSelector interface {
	SelectOrder(ctx context.Context, series []float64) (Order, error)
}

type Forecaster struct {
	log      *slog.Logger
	selector OrderSelector
	budget   time.Duration // time bound on the order search, 0 means none
}

func New(log *slog.Logger, selector OrderSelector, budget time.Duration) *Forecaster {
	return &Forecaster{log: log, selector: selector, budget: budget}
}

// Forecast selects an order, fits it, and projects Horizon days past the
// end of the series. Counts cannot go negative, so projections are
// clamped at zero. Any failure here is recoverable for the caller.
func (f *Forecaster) Forecast(ctx context.Context, series timeseries.DailySeries) (Result, error) {
	values := lo.Map(series.Counts, func(count int, _ int) float64 {
		return float64(count)
	})

	searchCtx := ctx
	if f.budget > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, f.budget)
		defer cancel()
	}
	order, err := f.selector.SelectOrder(searchCtx, values)
	if err != nil {
		return Result{}, fmt.Errorf("order selection: %w", err)
	}

	m, err := fitARIMA(values, order)
	if err != nil {
		return Result{}, fmt.Errorf("fitting %s: %w", order, err)
	}

	values = m.forecast(Horizon)
	dates := make([]time.Time, Horizon)
	for i := range values {
		if values[i] < 0 {
			values[i] = 0
		}
		dates[i] = series.Last().AddDate(0, 0, i+1)
	}

	f.log.Info("Forecast complete", "order", order.String(), "horizon", Horizon)
	return Result{Order: order, Values: values, Dates: dates}, nil
}
