package sample

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/lambdadb/pkg/testutil"
)

func TestBatch(t *testing.T) {
	b, err := Batch(context.Background(), testutil.TestAssembler(t))
	require.NoError(t, err)

	assert.Equal(t, 3, b.NumRows())
	assert.Equal(t, 3, b.NumColumns())
	assert.Equal(t, []string{"id", "name", "age"}, b.Schema().Names())
	assert.True(t, b.Schema().Field(2).Nullable())

	age := b.Column(2)
	assert.Equal(t, 1, age.NullCount())
	assert.True(t, age.IsNull(2))
	assert.Equal(t, "Charlie", b.Column(1).Value(2))
}
