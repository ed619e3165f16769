package bridge

import "context"

type batchModeKey struct{}

// WithBatchMode marks the execution context as batched. Vault action
// requests are rejected inside a batch because the total assets snapshot
// would be taken mid-multicall.
func WithBatchMode(ctx context.Context) context.Context {
	return context.WithValue(ctx, batchModeKey{}, true)
}

func IsBatched(ctx context.Context) bool {
	batched, _ := ctx.Value(batchModeKey{}).(bool)
	return batched
}
