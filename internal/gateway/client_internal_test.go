package gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_UnencodableBodyIsGatewayError(t *testing.T) {
	c := NewClient("http://127.0.0.1:0", "test-key")

	err := c.do(context.Background(), "POST", "/payments", map[string]any{"bad": make(chan int)}, nil)

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Zero(t, gwErr.StatusCode)
	assert.Error(t, gwErr.Unwrap())
}
