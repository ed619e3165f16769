package metrics

import (
	"context"
	"time"

	"github.com/libp2p/go-libp2p/core/host"
	"go.opentelemetry.io/otel/metric"
)

type HostMetrics struct {
	startTimeGauge metric.Int64ObservableGauge
	peerCountGauge metric.Int64ObservableGauge
}

// NewHostMetrics initializes metrics related to the replica host
func NewHostMetrics(ctx context.Context, meter metric.Meter, opts metric.MeasurementOption, h host.Host) (*HostMetrics, error) {
	startTime := time.Now().Unix()
	startTimeGauge, err := meter.Int64ObservableGauge(
		"replica.StartTimeSeconds",
		metric.WithDescription("Start time of the replica"),
		metric.WithInt64Callback(func(ctx context.Context, result metric.Int64Observer) error {
			result.Observe(startTime, opts)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	peerCountGauge, err := meter.Int64ObservableGauge(
		"replica.ConnectedPeers",
		metric.WithDescription("Number of connected coordination peers"),
		metric.WithInt64Callback(func(ctx context.Context, result metric.Int64Observer) error {
			result.Observe(int64(len(h.Network().Peers())), opts)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return &HostMetrics{
		startTimeGauge: startTimeGauge,
		peerCountGauge: peerCountGauge,
	}, nil
}
