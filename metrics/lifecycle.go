package metrics

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	LIFECYCLE_TTL = time.Minute * 10
)

type LifecycleMetrics struct {
	inFlightGauge metric.Int64ObservableGauge
	inFlightCount *atomic.Int64

	outcomeCounter          metric.Int64Counter
	lifecycleTimeHistogram  metric.Float64Histogram
	lifecycleStartTimeCache *ttlcache.Cache[string, time.Time]

	opts metric.MeasurementOption
}

// NewLifecycleMetrics initializes metrics of order lifecycles
func NewLifecycleMetrics(ctx context.Context, meter metric.Meter, opts metric.MeasurementOption) (*LifecycleMetrics, error) {
	inFlightCount := new(atomic.Int64)
	inFlightGauge, err := meter.Int64ObservableGauge(
		"sdk.LifecyclesInFlight",
		metric.WithInt64Callback(func(context context.Context, result metric.Int64Observer) error {
			result.Observe(inFlightCount.Load(), opts)
			return nil
		}),
		metric.WithDescription("Number of order lifecycles currently tracked"),
	)
	if err != nil {
		return nil, err
	}

	outcomeCounter, err := meter.Int64Counter(
		"sdk.LifecycleOutcomes",
		metric.WithDescription("Terminal outcomes of order lifecycles"),
	)
	if err != nil {
		return nil, err
	}

	lifecycleTimeHistogram, err := meter.Float64Histogram(
		"sdk.LifecycleTime",
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &LifecycleMetrics{
		inFlightGauge:          inFlightGauge,
		inFlightCount:          inFlightCount,
		outcomeCounter:         outcomeCounter,
		lifecycleTimeHistogram: lifecycleTimeHistogram,
		lifecycleStartTimeCache: ttlcache.New(
			ttlcache.WithTTL[string, time.Time](LIFECYCLE_TTL),
		),
		opts: opts,
	}, nil
}

func (m *LifecycleMetrics) StartLifecycle(id string) {
	m.inFlightCount.Add(1)
	m.lifecycleStartTimeCache.Set(id, time.Now(), ttlcache.DefaultTTL)
}

func (m *LifecycleMetrics) EndLifecycle(id string, outcome string) {
	m.outcomeCounter.Add(context.Background(), 1, m.opts, metric.WithAttributes(attribute.String("outcome", outcome)))

	startTime := m.lifecycleStartTimeCache.Get(id)
	if startTime == nil {
		log.Warn().Msgf("Lifecycle start time with ID %s not found", id)
		return
	}
	m.inFlightCount.Add(-1)
	m.lifecycleStartTimeCache.Delete(id)

	m.lifecycleTimeHistogram.Record(context.Background(), time.Since(startTime.Value()).Seconds(), m.opts)
}

// InFlight returns the number of started lifecycles that did not end yet.
func (m *LifecycleMetrics) InFlight() int64 {
	return m.inFlightCount.Load()
}
