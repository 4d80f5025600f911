package telemetry

import (
	"testing"
	"time"

	"go.viam.com/test"
)

func TestAggregatorCountsCalls(t *testing.T) {
	t.Parallel()
	agg := NewAggregator()
	agg.Predicted(5*time.Millisecond, 2)
	agg.Sampled(10*time.Millisecond, 27)
	agg.Searched(20*time.Millisecond, 10)
	agg.Validated(1*time.Millisecond, 1, true)
	agg.CollisionChecked(2*time.Millisecond, 4)

	totals := agg.Totals()
	test.That(t, totals.PredictCount, test.ShouldEqual, int64(1))
	test.That(t, totals.SampleCount, test.ShouldEqual, int64(1))
	test.That(t, totals.SearchCount, test.ShouldEqual, int64(1))
	test.That(t, totals.ValidateCount, test.ShouldEqual, int64(1))
	test.That(t, totals.ValidatePassCount, test.ShouldEqual, int64(1))
	test.That(t, totals.CollisionCheckCount, test.ShouldEqual, int64(4))
}

func TestAggregatorDurationStats(t *testing.T) {
	t.Parallel()
	agg := NewAggregator()
	agg.Searched(10*time.Millisecond, 1)
	agg.Searched(30*time.Millisecond, 1)
	agg.Searched(20*time.Millisecond, 1)

	totals := agg.Totals()
	test.That(t, totals.SearchDurationStats.Min, test.ShouldAlmostEqual, 0.010, 1e-9)
	test.That(t, totals.SearchDurationStats.Max, test.ShouldAlmostEqual, 0.030, 1e-9)
	test.That(t, totals.SearchDurationStats.Mean, test.ShouldAlmostEqual, 0.020, 1e-9)
}

func TestNoopObserverDoesNothing(t *testing.T) {
	t.Parallel()
	var o Observer = NoopObserver{}
	o.Predicted(time.Second, 1)
	o.Sampled(time.Second, 1)
	o.Searched(time.Second, 1)
	o.Validated(time.Second, 1, true)
	o.CollisionChecked(time.Second, 1)
}
