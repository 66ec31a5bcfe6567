// Package testutil provides testing utilities for LambdaDB
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/ajitpratap0/lambdadb/pkg/batch"
	"github.com/ajitpratap0/lambdadb/pkg/schema"
)

// TestLogger creates a test logger that writes to the test output.
func TestLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

// TestAssembler returns an assembler that logs to the test output.
func TestAssembler(t *testing.T, opts ...batch.Option) *batch.Assembler {
	return batch.NewAssembler(append([]batch.Option{batch.WithLogger(TestLogger(t))}, opts...)...)
}

// Field builds a field or fails the test.
func Field(t *testing.T, name string, dt schema.DataType, nullable bool) schema.Field {
	t.Helper()
	f, err := schema.NewField(name, dt, nullable)
	require.NoError(t, err)
	return f
}

// CheckedAllocator returns an Arrow allocator that fails the test at cleanup
// if any allocation is still live.
func CheckedAllocator(t *testing.T) *memory.CheckedAllocator {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	t.Cleanup(func() { mem.AssertSize(t, 0) })
	return mem
}

// WriteFile writes content to name inside a per-test temp directory and
// returns the path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
