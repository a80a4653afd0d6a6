package tokenstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutAndVerify(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "tokens.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "1", "secret-token"))

	ok, err := store.Verify(ctx, "1", "secret-token")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Verify(ctx, "1", "wrong-token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTokenNotFound(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "tokens.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Token(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPutOverwritesExistingToken(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "tokens.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "7", "first"))
	require.NoError(t, store.Put(ctx, "7", "second"))

	token, err := store.Token(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, "second", token)
}
