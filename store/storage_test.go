package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")

	fs, err := OpenFileStorage(path)
	require.NoError(t, err)
	require.NoError(t, fs.Set("cart_alice", `[{"productId":"p1"}]`))

	// a second open over the same file sees the write
	reopened, err := OpenFileStorage(path)
	require.NoError(t, err)
	v, ok := reopened.Get("cart_alice")
	require.True(t, ok)
	assert.Equal(t, `[{"productId":"p1"}]`, v)
}

func TestFileStorageRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")

	fs, err := OpenFileStorage(path)
	require.NoError(t, err)
	require.NoError(t, fs.Set("k", "v"))
	require.NoError(t, fs.Remove("k"))

	_, ok := fs.Get("k")
	assert.False(t, ok)
}

func TestFileStorageCorruptFileFailsOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(path, []byte(`{{{`), 0o644))

	fs, err := OpenFileStorage(path)
	require.NoError(t, err)

	_, ok := fs.Get("anything")
	assert.False(t, ok)

	// still writable after the reset
	require.NoError(t, fs.Set("k", "v"))
}

func TestFileStorageMissingFile(t *testing.T) {
	fs, err := OpenFileStorage(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err)
	_, ok := fs.Get("k")
	assert.False(t, ok)
}

func TestFileStorageBacksCart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")

	fs, err := OpenFileStorage(path)
	require.NoError(t, err)

	cart := NewCart(fs, NewSession())
	cart.Add(Item{ProductID: "p1", Name: "Matte Lipstick", Quantity: 2})

	// a fresh process would reopen the file and rebuild the same cart
	reopened, err := OpenFileStorage(path)
	require.NoError(t, err)
	assert.Equal(t, cart.Items(), NewCart(reopened, NewSession()).Items())
}
