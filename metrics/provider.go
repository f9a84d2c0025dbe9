package metrics

import (
	"context"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const METER_NAME = "bebop-sdk"

// InitMetricProvider exports metrics to the OTLP collector at collectorURL. Without a
// collector the global provider is returned and metrics are dropped.
func InitMetricProvider(ctx context.Context, collectorURL string) (metric.MeterProvider, func(context.Context) error, error) {
	if collectorURL == "" {
		return otel.GetMeterProvider(), func(context.Context) error { return nil }, nil
	}

	u, err := url.Parse(collectorURL)
	if err != nil {
		return nil, nil, err
	}

	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(u.Host),
		otlpmetrichttp.WithURLPath("/v1/metrics"),
	}
	if u.Scheme == "http" {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, nil, err
	}

	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)))
	otel.SetMeterProvider(mp)
	return mp, mp.Shutdown, nil
}
