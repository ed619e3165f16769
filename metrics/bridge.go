package metrics

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/metric"
)

const (
	REQUEST_TTL = time.Minute * 30
)

type BridgeMetrics struct {
	pendingRequestsGauge metric.Int64ObservableGauge
	pendingRequestCount  *int64

	finalizationTimeHistogram metric.Float64Histogram
	requestStartTimeCache     *ttlcache.Cache[string, time.Time]

	depositsCompletedCounter metric.Int64Counter
	depositsRefundedCounter  metric.Int64Counter
}

// NewBridgeMetrics initializes metrics related to cross-chain vault requests
func NewBridgeMetrics(ctx context.Context, meter metric.Meter, opts metric.MeasurementOption) (*BridgeMetrics, error) {
	pendingRequestCount := new(int64)
	pendingRequestsGauge, err := meter.Int64ObservableGauge(
		"replica.PendingRequests",
		metric.WithInt64Callback(func(context context.Context, result metric.Int64Observer) error {
			result.Observe(*pendingRequestCount, opts)
			return nil
		}),
		metric.WithDescription("Number of initiated requests awaiting finalization"),
	)
	if err != nil {
		return nil, err
	}

	finalizationTimeHistogram, err := meter.Float64Histogram("replica.RequestFinalizationTime")
	if err != nil {
		return nil, err
	}

	depositsCompletedCounter, err := meter.Int64Counter(
		"replica.DepositsCompleted",
		metric.WithDescription("Number of composed deposits completed"),
	)
	if err != nil {
		return nil, err
	}
	depositsRefundedCounter, err := meter.Int64Counter(
		"replica.DepositsRefunded",
		metric.WithDescription("Number of composed deposits refunded"),
	)
	if err != nil {
		return nil, err
	}

	requestStartTimeCache := ttlcache.New(
		ttlcache.WithTTL[string, time.Time](REQUEST_TTL),
	)
	go requestStartTimeCache.Start()

	return &BridgeMetrics{
		pendingRequestsGauge:      pendingRequestsGauge,
		pendingRequestCount:       pendingRequestCount,
		finalizationTimeHistogram: finalizationTimeHistogram,
		requestStartTimeCache:     requestStartTimeCache,
		depositsCompletedCounter:  depositsCompletedCounter,
		depositsRefundedCounter:   depositsRefundedCounter,
	}, nil
}

func (m *BridgeMetrics) TrackPendingRequests(count int) {
	*m.pendingRequestCount = int64(count)
}

func (m *BridgeMetrics) StartRequest(guid common.Hash) {
	m.requestStartTimeCache.Set(guid.Hex(), time.Now(), ttlcache.DefaultTTL)
}

func (m *BridgeMetrics) FinalizeRequest(guid common.Hash) {
	startTime := m.requestStartTimeCache.Get(guid.Hex())
	if startTime == nil {
		log.Warn().Msgf("Request start time for %s not found", guid.Hex())
		return
	}

	m.finalizationTimeHistogram.Record(context.Background(), time.Since(startTime.Value()).Seconds())
}

func (m *BridgeMetrics) DepositCompleted() {
	m.depositsCompletedCounter.Add(context.Background(), 1)
}

func (m *BridgeMetrics) DepositRefunded() {
	m.depositsRefundedCounter.Add(context.Background(), 1)
}
