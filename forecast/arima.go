package forecast

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	cserrors "chatscope/errors"
)

// model is a fitted ARIMA(p,d,q) with conditional-sum-of-squares
// residuals. Estimation is the Hannan-Rissanen two-stage regression:
// a long autoregression supplies residual proxies, then the ARMA
// coefficients come from a single least-squares solve.
type model struct {
	order    Order
	levels   [][]float64 // series at each differencing level, levels[0] is the input
	constant float64
	ar       []float64
	ma       []float64
	resid    []float64 // residuals of the differenced series
	sigma2   float64
	aic      float64
}

func fitARIMA(series []float64, order Order) (*model, error) {
	m := &model{order: order, levels: [][]float64{series}}
	w := series
	for k := 0; k < order.D; k++ {
		w = diff(w)
		m.levels = append(m.levels, w)
	}

	n := len(w)
	maxPQ := order.P
	if order.Q > maxPQ {
		maxPQ = order.Q
	}
	if n <= maxPQ+2 {
		return nil, fmt.Errorf("%w: %d observations after differencing", cserrors.ErrSeriesTooShort, n)
	}
	if stat.Variance(w, nil) < 1e-9 {
		return nil, fmt.Errorf("%w: differenced series is constant", cserrors.ErrOrderSearchFailed)
	}

	if err := m.estimate(w); err != nil {
		return nil, err
	}
	m.score(w, maxPQ)
	return m, nil
}

// estimate fills constant, ar and ma by least squares.
func (m *model) estimate(w []float64) error {
	p, q := m.order.P, m.order.Q
	n := len(w)

	if p == 0 && q == 0 {
		m.constant = stat.Mean(w, nil)
		return nil
	}

	if q == 0 {
		beta, err := lagRegression(w, nil, p, 0, p)
		if err != nil {
			return err
		}
		m.constant, m.ar = beta[0], beta[1:]
		return nil
	}

	// Long autoregression for residual proxies.
	long := p
	if q > long {
		long = q
	}
	long += 3
	start := long + q
	if n-start < p+q+2 {
		return fmt.Errorf("%w: %d observations for ARMA(%d,%d)", cserrors.ErrSeriesTooShort, n, p, q)
	}
	longBeta, err := lagRegression(w, nil, long, 0, long)
	if err != nil {
		return err
	}
	proxies := make([]float64, n)
	for t := long; t < n; t++ {
		pred := longBeta[0]
		for i := 0; i < long; i++ {
			pred += longBeta[1+i] * w[t-1-i]
		}
		proxies[t] = w[t] - pred
	}

	beta, err := lagRegression(w, proxies, p, q, start)
	if err != nil {
		return err
	}
	m.constant = beta[0]
	m.ar = beta[1 : 1+p]
	m.ma = beta[1+p:]
	return nil
}

// score computes conditional residuals over the whole differenced
// series, the innovation variance and the AIC.
func (m *model) score(w []float64, burn int) {
	n := len(w)
	m.resid = make([]float64, n)
	for t := 0; t < n; t++ {
		m.resid[t] = w[t] - m.step(w, m.resid, t)
	}

	ssr := 0.0
	for t := burn; t < n; t++ {
		ssr += m.resid[t] * m.resid[t]
	}
	effective := n - burn
	m.sigma2 = ssr / float64(effective)
	if m.sigma2 < 1e-12 {
		m.sigma2 = 1e-12
	}
	params := float64(m.order.P + m.order.Q + 2)
	m.aic = float64(effective)*math.Log(m.sigma2) + 2*params
}

// step is the one-step ARMA prediction at index t given histories.
func (m *model) step(w, resid []float64, t int) float64 {
	pred := m.constant
	for i, coeff := range m.ar {
		if idx := t - 1 - i; idx >= 0 {
			pred += coeff * w[idx]
		}
	}
	for j, coeff := range m.ma {
		if idx := t - 1 - j; idx >= 0 {
			pred += coeff * resid[idx]
		}
	}
	return pred
}

// forecast projects h steps past the end of the series and integrates
// the differencing back out. Future innovations are zero.
func (m *model) forecast(h int) []float64 {
	d := m.order.D
	w := append([]float64(nil), m.levels[d]...)
	resid := append([]float64(nil), m.resid...)

	preds := make([]float64, 0, h)
	for s := 0; s < h; s++ {
		t := len(w)
		pred := m.step(w, resid, t)
		w = append(w, pred)
		resid = append(resid, 0)
		preds = append(preds, pred)
	}

	for k := d - 1; k >= 0; k-- {
		level := m.levels[k]
		last := level[len(level)-1]
		for i := range preds {
			last += preds[i]
			preds[i] = last
		}
	}
	return preds
}

// lagRegression solves w[t] ~ 1 + w lags + proxy lags by QR least squares
// and returns the coefficient vector [constant, ar..., ma...].
func lagRegression(w, proxies []float64, p, q, start int) ([]float64, error) {
	n := len(w)
	rows := n - start
	cols := 1 + p + q
	if rows <= cols {
		return nil, fmt.Errorf("%w: %d rows for %d coefficients", cserrors.ErrSeriesTooShort, rows, cols)
	}

	x := mat.NewDense(rows, cols, nil)
	y := mat.NewVecDense(rows, nil)
	for r := 0; r < rows; r++ {
		t := start + r
		x.Set(r, 0, 1)
		for i := 0; i < p; i++ {
			x.Set(r, 1+i, w[t-1-i])
		}
		for j := 0; j < q; j++ {
			x.Set(r, 1+p+j, proxies[t-1-j])
		}
		y.SetVec(r, w[t])
	}

	var qr mat.QR
	qr.Factorize(x)
	var sol mat.Dense
	if err := qr.SolveTo(&sol, false, y); err != nil {
		return nil, fmt.Errorf("%w: %v", cserrors.ErrOrderSearchFailed, err)
	}

	beta := make([]float64, cols)
	for i := range beta {
		beta[i] = sol.At(i, 0)
	}
	return beta, nil
}

func diff(series []float64) []float64 {
	if len(series) == 0 {
		return nil
	}
	out := make([]float64, len(series)-1)
	for i := 1; i < len(series); i++ {
		out[i-1] = series[i] - series[i-1]
	}
	return out
}
