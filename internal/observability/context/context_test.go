package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestAndCustomerIDs(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestIDFromContext(ctx))
	assert.Empty(t, CustomerIDFromContext(ctx))

	ctx = WithRequestID(ctx, "req-1")
	ctx = WithCustomerID(ctx, 42)
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	assert.Equal(t, "42", CustomerIDFromContext(ctx))
}
