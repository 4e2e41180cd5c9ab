package tracing

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

var cycleIDCtxKey = ctxKey{}

// WithCycleID tags ctx with a fresh collection cycle id unless it already
// carries one.
func WithCycleID(ctx context.Context) context.Context {
	if _, ok := ctx.Value(cycleIDCtxKey).(string); ok {
		return ctx
	}

	return context.WithValue(ctx, cycleIDCtxKey, generateCycleID())
}

func GetCycleID(ctx context.Context) string {
	cycleID, ok := ctx.Value(cycleIDCtxKey).(string)
	if !ok {
		return ""
	}

	return cycleID
}

func generateCycleID() string {
	v, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v.String()
}
