package telemetry

import (
	"sync"
	"time"

	"github.com/montanaflynn/stats"
	"go.uber.org/atomic"
)

// Totals summarizes everything an Aggregator has observed: per-stage call
// counts (CollisionCheckCount instead sums the SAT checks each
// CollisionChecked call reports), plus min/max/mean durations for the
// predict, sample, search, and validate stages.
type Totals struct {
	PredictCount          int64
	SampleCount           int64
	SearchCount           int64
	ValidateCount         int64
	CollisionCheckCount   int64
	ValidatePassCount     int64
	PredictDurationStats  DurationStats
	SampleDurationStats   DurationStats
	SearchDurationStats   DurationStats
	ValidateDurationStats DurationStats
}

// DurationStats is the min/max/mean of a set of observed durations, in
// seconds. Zero value means no samples were observed.
type DurationStats struct {
	Min, Max, Mean float64
}

// Aggregator is a concurrency-safe Observer: call counts use
// go.uber.org/atomic counters, and per-stage duration summaries are computed
// from github.com/montanaflynn/stats on demand in Totals, so the hot path
// only ever pays for an atomic increment and a mutex-guarded append.
type Aggregator struct {
	predictCount  atomic.Int64
	sampleCount   atomic.Int64
	searchCount   atomic.Int64
	validateCount atomic.Int64
	checkCount    atomic.Int64
	passCount     atomic.Int64

	mu         sync.Mutex
	predictDs  []float64
	sampleDs   []float64
	searchDs   []float64
	validateDs []float64
}

// NewAggregator returns a zeroed Aggregator ready to observe a planning call.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

func (a *Aggregator) Predicted(d time.Duration, numObstacles int) {
	a.predictCount.Inc()
	a.mu.Lock()
	a.predictDs = append(a.predictDs, d.Seconds())
	a.mu.Unlock()
}

func (a *Aggregator) Sampled(d time.Duration, gridSize int) {
	a.sampleCount.Inc()
	a.mu.Lock()
	a.sampleDs = append(a.sampleDs, d.Seconds())
	a.mu.Unlock()
}

func (a *Aggregator) Searched(d time.Duration, visited int) {
	a.searchCount.Inc()
	a.mu.Lock()
	a.searchDs = append(a.searchDs, d.Seconds())
	a.mu.Unlock()
}

func (a *Aggregator) Validated(d time.Duration, popped int, passed bool) {
	a.validateCount.Inc()
	if passed {
		a.passCount.Inc()
	}
	a.mu.Lock()
	a.validateDs = append(a.validateDs, d.Seconds())
	a.mu.Unlock()
}

func (a *Aggregator) CollisionChecked(d time.Duration, checks int) {
	a.checkCount.Add(int64(checks))
}

// Totals snapshots every counter and computes duration summary statistics.
// It may be called at any time, including mid-planning-call.
func (a *Aggregator) Totals() Totals {
	a.mu.Lock()
	predictDs := append([]float64{}, a.predictDs...)
	sampleDs := append([]float64{}, a.sampleDs...)
	searchDs := append([]float64{}, a.searchDs...)
	validateDs := append([]float64{}, a.validateDs...)
	a.mu.Unlock()

	return Totals{
		PredictCount:          a.predictCount.Load(),
		SampleCount:           a.sampleCount.Load(),
		SearchCount:           a.searchCount.Load(),
		ValidateCount:         a.validateCount.Load(),
		CollisionCheckCount:   a.checkCount.Load(),
		ValidatePassCount:     a.passCount.Load(),
		PredictDurationStats:  summarize(predictDs),
		SampleDurationStats:   summarize(sampleDs),
		SearchDurationStats:   summarize(searchDs),
		ValidateDurationStats: summarize(validateDs),
	}
}

func summarize(ds []float64) DurationStats {
	if len(ds) == 0 {
		return DurationStats{}
	}
	min, _ := stats.Min(ds)
	max, _ := stats.Max(ds)
	mean, _ := stats.Mean(ds)
	return DurationStats{Min: min, Max: max, Mean: mean}
}
