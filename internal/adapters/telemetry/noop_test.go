package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/telemetry"
	"go.trai.ch/kiln/internal/core/ports"
)

func TestNoOp(t *testing.T) {
	rec := telemetry.NewNoOp()

	ctx, vertex := rec.Record(context.Background(), "generate rules")
	require.NotNil(t, vertex)

	// No vertex is attached; downstream code falls back to plain logging.
	_, ok := ports.VertexFromContext(ctx)
	assert.False(t, ok)

	n, err := vertex.Stdout().Write([]byte("discarded"))
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	vertex.Complete(nil)
	vertex.Cached()
	require.NoError(t, rec.Close())
}
