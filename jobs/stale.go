package jobs

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/omnivault/vault-accounting/bridge"
	"github.com/omnivault/vault-accounting/composer"
)

type DepositRefunder interface {
	PendingDeposits() []*composer.PendingDeposit
	RefundDeposit(ctx context.Context, guid common.Hash) error
}

type RequestLedger interface {
	PendingRequests() []*bridge.RequestInfo
}

type PendingMetrics interface {
	TrackPendingRequests(count int)
}

// StartStaleRequestJob periodically refunds composed deposits whose
// accounting request never resolved and logs hub requests stuck past their
// TTL. Hub requests are only reported, funds for them never left the
// initiator.
func StartStaleRequestJob(
	ctx context.Context,
	interval time.Duration,
	ttl time.Duration,
	refunder DepositRefunder,
	ledger RequestLedger,
	metrics PendingMetrics,
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			refundStaleDeposits(ctx, ttl, refunder)
			reportStaleRequests(ttl, ledger, metrics)
		case <-ctx.Done():
			return
		}
	}
}

func refundStaleDeposits(ctx context.Context, ttl time.Duration, refunder DepositRefunder) {
	for _, d := range refunder.PendingDeposits() {
		if time.Since(d.CreatedAt) < ttl {
			continue
		}

		err := refunder.RefundDeposit(ctx, d.GUID)
		if err != nil {
			log.Err(err).Str("guid", d.GUID.Hex()).Msgf("Failed refunding stale deposit")
			continue
		}

		log.Info().Str("guid", d.GUID.Hex()).Msgf(
			"Refunded stale deposit from depositor %s", d.Depositor.Hex(),
		)
	}
}

func reportStaleRequests(ttl time.Duration, ledger RequestLedger, metrics PendingMetrics) {
	pending := ledger.PendingRequests()
	metrics.TrackPendingRequests(len(pending))

	for _, r := range pending {
		if time.Since(r.CreatedAt) < ttl {
			continue
		}

		log.Warn().Str("guid", r.GUID.Hex()).Msgf(
			"Request initiated by %s stuck past TTL", r.Initiator.Hex(),
		)
	}
}
