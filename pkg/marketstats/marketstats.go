package marketstats

import (
	"math"
	"sync"

	"github.com/gammazero/deque"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Tick is a single top-of-book observation. Prices arrive from upstream feeds
// as decimals and are only converted to float64 at the gate boundary.
type Tick struct {
	Bid decimal.Decimal
	Ask decimal.Decimal
}

func (t Tick) mid() decimal.Decimal {
	return t.Bid.Add(t.Ask).Div(two)
}

// Window keeps the most recent ticks and derives the spread and volatility
// inputs of the market-condition check.
type Window struct {
	size  int
	ticks *deque.Deque[Tick]

	mu sync.Mutex
}

func NewWindow(size int) *Window {
	if size < 2 {
		size = 2
	}
	return &Window{
		size:  size,
		ticks: &deque.Deque[Tick]{},
	}
}

func (w *Window) Add(t Tick) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.ticks.PushBack(t)
	for w.ticks.Len() > w.size {
		w.ticks.PopFront()
	}
}

func (w *Window) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.ticks.Len()
}

// Snapshot returns the latest spread and the volatility over the window.
// Spread is ask minus bid of the newest tick. Volatility is the population
// standard deviation of mid-price returns; fewer than 2 ticks -> 0.
func (w *Window) Snapshot() (spread, volatility float64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := w.ticks.Len()
	if n == 0 {
		return 0, 0
	}

	last := w.ticks.Back()
	spread = last.Ask.Sub(last.Bid).InexactFloat64()

	if n < 2 {
		return spread, 0
	}

	returns := make([]float64, 0, n-1)
	prev := w.ticks.At(0).mid().InexactFloat64()
	for i := 1; i < n; i++ {
		mid := w.ticks.At(i).mid().InexactFloat64()
		if prev != 0 {
			returns = append(returns, mid/prev-1)
		}
		prev = mid
	}
	if len(returns) == 0 {
		return spread, 0
	}

	var sum float64
	for _, r := range returns {
		sum += r
	}
	mean := sum / float64(len(returns))

	var sq float64
	for _, r := range returns {
		d := r - mean
		sq += d * d
	}
	volatility = math.Sqrt(sq / float64(len(returns)))

	return spread, volatility
}
