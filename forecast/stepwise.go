package forecast

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/stat"

	cserrors "chatscope/errors"
)

const (
	// minObservations is the practical minimum before any order is even
	// attempted: shorter series cannot support the lag regressions.
	minObservations = 10

	// kpssCritical is the 5% critical value of the KPSS level statistic.
	kpssCritical = 0.463
)

// StepwiseSelector picks a non-seasonal (p,d,q) by the stepwise walk of
// Hyndman and Khandakar: the differencing degree comes from repeated
// KPSS tests, then the (p,q) plane is explored from a handful of seeds,
// moving to the best AIC neighbour until no move improves.
type StepwiseSelector struct {
	log     *slog.Logger
	maxP    int
	maxQ    int
	maxFits int
}

func NewStepwiseSelector(log *slog.Logger) *StepwiseSelector {
	return &StepwiseSelector{log: log, maxP: 5, maxQ: 5, maxFits: 40}
}

func (s *StepwiseSelector) SelectOrder(ctx context.Context, series []float64) (Order, error) {
	if len(series) < minObservations {
		return Order{}, fmt.Errorf("%w: %d observations", cserrors.ErrSeriesTooShort, len(series))
	}

	d := chooseDifferencing(series)

	type candidate struct {
		order Order
		aic   float64
	}
	tried := make(map[Order]bool)
	best := candidate{aic: math.Inf(1)}
	found := false
	fits := 0

	try := func(order Order) bool {
		if tried[order] || fits >= s.maxFits ||
			order.P < 0 || order.Q < 0 || order.P > s.maxP || order.Q > s.maxQ {
			return false
		}
		tried[order] = true
		fits++
		m, err := fitARIMA(series, order)
		if err != nil {
			s.log.Debug("Candidate rejected",
				"p", order.P, "d", order.D, "q", order.Q, "err", err)
			return false
		}
		if m.aic < best.aic {
			best = candidate{order: order, aic: m.aic}
			found = true
			return true
		}
		return false
	}

	for _, seed := range []Order{{2, d, 2}, {0, d, 0}, {1, d, 0}, {0, d, 1}} {
		if err := ctx.Err(); err != nil {
			return Order{}, err
		}
		try(seed)
	}

	improved := true
	for improved && fits < s.maxFits {
		if err := ctx.Err(); err != nil {
			return Order{}, err
		}
		improved = false
		p, q := best.order.P, best.order.Q
		for _, next := range []Order{
			{p + 1, d, q}, {p - 1, d, q},
			{p, d, q + 1}, {p, d, q - 1},
			{p + 1, d, q + 1}, {p - 1, d, q - 1},
		} {
			if try(next) {
				improved = true
			}
		}
	}

	if !found {
		return Order{}, fmt.Errorf("%w: no candidate converged", cserrors.ErrOrderSearchFailed)
	}
	s.log.Debug("Order selected",
		"p", best.order.P, "d", best.order.D, "q", best.order.Q,
		"aic", best.aic, "fits", fits)
	return best.order, nil
}

// chooseDifferencing differences until the KPSS statistic drops below
// its 5% critical value, capped at two differences.
func chooseDifferencing(series []float64) int {
	w := series
	d := 0
	for d < 2 && kpss(w) > kpssCritical {
		w = diff(w)
		d++
	}
	return d
}

// kpss is the KPSS level-stationarity statistic with a Bartlett-window
// long-run variance estimate.
func kpss(series []float64) float64 {
	n := len(series)
	if n < 3 {
		return 0
	}
	mean := stat.Mean(series, nil)
	demeaned := make([]float64, n)
	for i, v := range series {
		demeaned[i] = v - mean
	}

	cumulative := 0.0
	eta := 0.0
	for _, e := range demeaned {
		cumulative += e
		eta += cumulative * cumulative
	}
	eta /= float64(n) * float64(n)

	lag := int(4 * math.Pow(float64(n)/100, 0.25))
	variance := 0.0
	for _, e := range demeaned {
		variance += e * e
	}
	variance /= float64(n)
	for j := 1; j <= lag && j < n; j++ {
		weight := 1 - float64(j)/float64(lag+1)
		gamma := 0.0
		for t := j; t < n; t++ {
			gamma += demeaned[t] * demeaned[t-j]
		}
		variance += 2 * weight * gamma / float64(n)
	}

	if variance < 1e-12 {
		return 0
	}
	return eta / variance
}
