//go:build unit && !windows

package shell

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunner(t *testing.T) {
	r := NewRunner()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		res := r.Run(ctx, "sh", "-c", "echo hello")
		assert.True(t, res.OK())
		assert.Equal(t, "hello", res.Stdout)
	})

	t.Run("ExitCode", func(t *testing.T) {
		res := r.Run(ctx, "sh", "-c", "echo oops >&2; exit 3")
		assert.False(t, res.OK())
		assert.Equal(t, 3, res.Code)
		assert.Equal(t, "oops", res.Stderr)
		assert.Equal(t, "oops", res.Diagnostic())
	})

	t.Run("MissingProgram", func(t *testing.T) {
		res := r.Run(ctx, "definitely-not-a-real-binary")
		assert.False(t, res.OK())
		assert.NotEmpty(t, res.Stderr)
	})

	t.Run("Timeout", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()

		res := r.Run(ctx, "sh", "-c", "sleep 5")
		assert.False(t, res.OK())
		assert.Contains(t, res.Stderr, "timed out")
	})
}
