// Package stats generates synthetic daily return series with a known
// annualized Sharpe ratio and computes the sample statistics estimated
// from the finite series.
package stats

import (
	"math"
	"math/rand/v2"
)

// Days is the fixed series length: two years of daily trading observations.
const Days = 504

// TradingDays is the conventional annualization base (252 trading days/year).
const TradingDays = 252

// Stats holds the ground-truth and sample statistics for one round.
type Stats struct {
	ActualSharpe float64 // ground truth, drawn uniformly from [-3, 3]
	SampleSharpe float64 // annualized Sharpe estimated from the series
	SharpeError  float64 // annualized standard error of the estimator
	SampleMean   float64
	SampleMin    float64
	SampleMax    float64
}

// PlotPoint is one point of the cumulative return series, used for charting.
type PlotPoint struct {
	Day       int
	CumReturn float64
}

// randSharpe draws an annualized Sharpe ratio uniformly from [-3, 3].
func randSharpe(rng *rand.Rand) float64 {
	return rng.Float64()*6.0 - 3.0
}

// returnSeries draws Days independent daily returns consistent with the given
// annualized Sharpe ratio, assuming unit annual volatility: daily mean is
// sharpe/252 and daily standard deviation is 1/sqrt(252).
func returnSeries(sharpe float64, rng *rand.Rand) []float64 {
	mu := sharpe / TradingDays
	sigma := 1.0 / math.Sqrt(TradingDays)

	returns := make([]float64, Days)
	for i := range returns {
		returns[i] = mu + sigma*rng.NormFloat64()
	}
	return returns
}

// sampleSharpe computes the annualized sample Sharpe ratio and the sample
// mean of a return series. The variance divides by len(returns), not len-1;
// the error-bound formula and the numeric test oracle depend on this exact
// normalization. A zero-variance series yields ±Inf or NaN, which callers
// observe as ordinary float values.
func sampleSharpe(returns []float64) (sharpe, mean float64) {
	n := float64(len(returns))

	var sum float64
	for _, r := range returns {
		sum += r
	}
	mean = sum / n

	var sqSum float64
	for _, r := range returns {
		d := r - mean
		sqSum += d * d
	}
	std := math.Sqrt(sqSum / n)

	return (mean * TradingDays) / (std * math.Sqrt(TradingDays)), mean
}

// minMax returns the extrema of the series.
func minMax(returns []float64) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, r := range returns {
		if r < min {
			min = r
		}
		if r > max {
			max = r
		}
	}
	return min, max
}

// GenerateRound draws a fresh round from the given generator: an actual
// Sharpe ratio, a return series consistent with it, and the sample
// statistics. For a fixed generator state the output is reproducible; the
// generator advances by exactly 1 + Days draws per call, so sequential
// rounds replay from an initial seed.
func GenerateRound(rng *rand.Rand) ([]float64, Stats) {
	actual := randSharpe(rng)
	returns := returnSeries(actual, rng)
	sharpe, mean := sampleSharpe(returns)
	min, max := minMax(returns)

	// Asymptotic standard error of the Sharpe estimator, annualized.
	sharpeErr := math.Sqrt((1.0+sharpe*sharpe/2.0)/Days) * math.Sqrt(TradingDays)

	return returns, Stats{
		ActualSharpe: actual,
		SampleSharpe: sharpe,
		SharpeError:  sharpeErr,
		SampleMean:   mean,
		SampleMin:    min,
		SampleMax:    max,
	}
}

// PlotData builds the cumulative return series for charting: the running
// prefix sum of returns paired with the day index. Recomputed on demand,
// never persisted.
func PlotData(returns []float64) []PlotPoint {
	points := make([]PlotPoint, len(returns))
	var cum float64
	for i, r := range returns {
		cum += r
		points[i] = PlotPoint{Day: i, CumReturn: cum}
	}
	return points
}
