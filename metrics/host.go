package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// HostInfo identifies the running gateway in host metrics.
type HostInfo struct {
	Env     string
	Version string
	ChainID uint64
}

func (i HostInfo) attributes() metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("env", i.Env),
		attribute.String("version", i.Version),
		attribute.Int64("chain_id", int64(i.ChainID)),
	)
}

type HostMetrics struct {
	startTime      time.Time
	startTimeGauge metric.Int64ObservableGauge
	uptimeGauge    metric.Float64ObservableGauge
	registration   metric.Registration
}

// NewHostMetrics reports when the gateway started and how long it has been serving.
func NewHostMetrics(meter metric.Meter, info HostInfo) (*HostMetrics, error) {
	startTimeGauge, err := meter.Int64ObservableGauge(
		"sdk.StartTimeSeconds",
		metric.WithDescription("Unix time the gateway started at"),
	)
	if err != nil {
		return nil, err
	}
	uptimeGauge, err := meter.Float64ObservableGauge(
		"sdk.UptimeSeconds",
		metric.WithDescription("Seconds since the gateway started"),
	)
	if err != nil {
		return nil, err
	}

	h := &HostMetrics{
		startTime:      time.Now(),
		startTimeGauge: startTimeGauge,
		uptimeGauge:    uptimeGauge,
	}
	opts := info.attributes()
	h.registration, err = meter.RegisterCallback(func(ctx context.Context, o metric.Observer) error {
		o.ObserveInt64(h.startTimeGauge, h.startTime.Unix(), opts)
		o.ObserveFloat64(h.uptimeGauge, time.Since(h.startTime).Seconds(), opts)
		return nil
	}, startTimeGauge, uptimeGauge)
	if err != nil {
		return nil, err
	}

	return h, nil
}

func (h *HostMetrics) Stop() error {
	return h.registration.Unregister()
}
