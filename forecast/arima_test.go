package forecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	cserrors "chatscope/errors"
)

// noisyWeekly builds a deterministic series with a weekly swing and
// LCG noise, irregular enough to keep every lag regression full rank.
func noisyWeekly(n int) []float64 {
	series := make([]float64, n)
	seed := uint32(1)
	for i := range series {
		seed = seed*1664525 + 1013904223
		noise := float64(seed%1000)/1000 - 0.5
		series[i] = 20 + 6*math.Sin(float64(i)*2*math.Pi/7) + 4*noise
	}
	return series
}

func TestFitARIMA_MeanModel(t *testing.T) {
	req := require.New(t)
	series := []float64{2, 4, 6, 4, 2, 4, 6, 4, 2, 4}

	m, err := fitARIMA(series, Order{0, 0, 0})
	req.NoError(err)

	preds := m.forecast(3)
	req.Len(preds, 3)
	for _, v := range preds {
		req.InDelta(3.8, v, 1e-9)
	}
}

func TestFitARIMA_RandomWalkWithDrift(t *testing.T) {
	req := require.New(t)

	// First differences are 1..9, so the drift is their mean of 5.
	series := []float64{1, 2, 4, 7, 11, 16, 22, 29, 37, 46}

	m, err := fitARIMA(series, Order{0, 1, 0})
	req.NoError(err)

	preds := m.forecast(3)
	req.InDelta(51, preds[0], 1e-6)
	req.InDelta(56, preds[1], 1e-6)
	req.InDelta(61, preds[2], 1e-6)
}

func TestFitARIMA_Autoregressive(t *testing.T) {
	req := require.New(t)

	series := make([]float64, 40)
	series[0] = 1
	sign := 1.0
	for i := 1; i < len(series); i++ {
		series[i] = 2 + 0.5*series[i-1] + sign
		sign = -sign
	}

	m, err := fitARIMA(series, Order{1, 0, 0})
	req.NoError(err)
	req.Len(m.ar, 1)

	preds := m.forecast(5)
	req.Len(preds, 5)
	for _, v := range preds {
		req.False(math.IsNaN(v))
		req.False(math.IsInf(v, 0))
	}
}

func TestFitARIMA_MixedOrder(t *testing.T) {
	req := require.New(t)

	series := noisyWeekly(80)

	m, err := fitARIMA(series, Order{2, 0, 2})
	req.NoError(err)
	req.Len(m.ar, 2)
	req.Len(m.ma, 2)
	req.False(math.IsNaN(m.aic))

	for _, v := range m.forecast(10) {
		req.False(math.IsNaN(v))
	}
}

func TestFitARIMA_ConstantSeries(t *testing.T) {
	req := require.New(t)
	series := []float64{5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5}

	_, err := fitARIMA(series, Order{1, 0, 0})
	req.ErrorIs(err, cserrors.ErrOrderSearchFailed)
}

func TestFitARIMA_TooShort(t *testing.T) {
	req := require.New(t)

	_, err := fitARIMA([]float64{1, 3, 2}, Order{2, 0, 2})
	req.ErrorIs(err, cserrors.ErrSeriesTooShort)
}
