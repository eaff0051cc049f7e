package support

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azim218/RentMyWaifu/internal/common"
	"github.com/azim218/RentMyWaifu/internal/models"
	"github.com/azim218/RentMyWaifu/internal/store"
)

func TestNewJSONRepository_DoesNotCreateFile(t *testing.T) {
	dir := t.TempDir()
	NewJSONRepository(store.New(dir))

	_, err := os.Stat(filepath.Join(dir, common.SupportFile))
	assert.True(t, os.IsNotExist(err), "the document appears on first submission only")
}

func TestLast_EmptyStore(t *testing.T) {
	r := NewJSONRepository(store.New(t.TempDir()))

	got, err := r.Last(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAppendAndLast_KeepsInsertionOrder(t *testing.T) {
	r := NewJSONRepository(store.New(t.TempDir()))
	ctx := context.Background()

	for i := 1; i <= 6; i++ {
		req := models.SupportRequest{
			Email:   fmt.Sprintf("u%d@example.com", i),
			Subject: fmt.Sprintf("s%d", i),
			User:    common.GuestName,
		}
		require.NoError(t, r.Append(ctx, req))
	}

	got, err := r.Last(ctx, 5)
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i, req := range got {
		assert.Equal(t, fmt.Sprintf("u%d@example.com", i+2), req.Email)
	}

	count, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestLast_FewerThanRequested(t *testing.T) {
	r := NewJSONRepository(store.New(t.TempDir()))
	ctx := context.Background()

	require.NoError(t, r.Append(ctx, models.SupportRequest{Email: "a@b.c", User: common.GuestName}))

	got, err := r.Last(ctx, 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a@b.c", got[0].Email)
}
