package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_UploadDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	res, err := store.Upload(ctx, "registrations/1/a.json", "application/json", strings.NewReader(`{"ok":true}`))
	require.NoError(t, err)
	assert.Equal(t, "registrations/1/a.json", res.Key)
	assert.Len(t, res.ETag, 32)

	body, ok := store.Get("registrations/1/a.json")
	require.True(t, ok)
	assert.JSONEq(t, `{"ok":true}`, string(body))

	require.NoError(t, store.Delete(ctx, "registrations/1/a.json"))
	assert.Equal(t, 0, store.Len())
	assert.ErrorIs(t, store.Delete(ctx, "registrations/1/a.json"), ErrObjectNotFound)
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMemoryStore().Upload(ctx, "k", "text/plain", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewCloudflareR2Store_RequiresAllFields(t *testing.T) {
	_, err := NewCloudflareR2Store(context.Background(), CloudflareR2Config{AccountID: "acc"})
	assert.Error(t, err)
}
