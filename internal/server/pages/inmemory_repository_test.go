package pages

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safenotes/safenotes/internal/common"
)

func TestInMemoryRepository_SaveAndGet(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, "abc", "<html>x</html>", time.Hour))

	html, err := r.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "<html>x</html>", html)
}

func TestInMemoryRepository_MissingIsNotFound(t *testing.T) {
	r := NewInMemoryRepository()

	_, err := r.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInMemoryRepository_Expires(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	now := time.Now()
	r.now = func() time.Time { return now }
	require.NoError(t, r.Save(ctx, "abc", "x", time.Hour))

	r.now = func() time.Time { return now.Add(61 * time.Minute) }
	_, err := r.Get(ctx, "abc")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
