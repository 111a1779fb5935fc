package context

import (
	"context"
	"strconv"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	customerIDKey
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(requestIDKey).(string)
	return v
}

// WithCustomerID tags the context with the customer a request operates on.
func WithCustomerID(ctx context.Context, customerID int64) context.Context {
	return context.WithValue(ctx, customerIDKey, customerID)
}

// CustomerIDFromContext returns the tagged customer id, or "" when none is set.
func CustomerIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, ok := ctx.Value(customerIDKey).(int64)
	if !ok {
		return ""
	}
	return strconv.FormatInt(v, 10)
}
