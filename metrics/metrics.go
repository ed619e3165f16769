package metrics

import (
	"context"

	"github.com/libp2p/go-libp2p/core/host"
	"github.com/sygmaprotocol/sygma-core/observability"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type VaultMetrics struct {
	*observability.RelayerMetrics
	*HostMetrics
	*BridgeMetrics
}

// NewVaultMetrics creates an instance of metrics with all the metrics of the
// coordinator replica
func NewVaultMetrics(ctx context.Context, meter metric.Meter, h host.Host, env, id, version string) (*VaultMetrics, error) {
	attributes := []attribute.KeyValue{
		attribute.String("env", env),
		attribute.String("instance", id),
		attribute.String("version", version),
	}
	opts := metric.WithAttributes(attributes...)

	relayerMetrics, err := observability.NewRelayerMetrics(ctx, meter, attributes...)
	if err != nil {
		return nil, err
	}

	hostMetrics, err := NewHostMetrics(ctx, meter, opts, h)
	if err != nil {
		return nil, err
	}

	bridgeMetrics, err := NewBridgeMetrics(ctx, meter, opts)
	if err != nil {
		return nil, err
	}

	return &VaultMetrics{
		RelayerMetrics: relayerMetrics,
		HostMetrics:    hostMetrics,
		BridgeMetrics:  bridgeMetrics,
	}, nil
}
