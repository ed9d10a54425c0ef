package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewDisk(dir)
	require.NoError(t, err)
	return store, dir
}

func writeFile(t *testing.T, store Store, name, content string) {
	t.Helper()
	w, err := store.Create(name)
	require.NoError(t, err)
	_, err = io.WriteString(w, content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
}

func TestNewDiskCreatesRoot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store, err := NewDisk(dir)
	require.NoError(t, err)

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
	assert.NoError(t, store.Ping())
}

func TestNewDiskRequiresRoot(t *testing.T) {
	_, err := NewDisk("")
	assert.Error(t, err)
}

func TestCreateOpenRemove(t *testing.T) {
	store, _ := newTestStore(t)

	writeFile(t, store, "uuid_hello.txt", "hello world")

	r, err := store.Open("uuid_hello.txt")
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "hello world", string(data))

	require.NoError(t, store.Remove("uuid_hello.txt"))

	_, err = store.Open("uuid_hello.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveMissing(t *testing.T) {
	store, _ := newTestStore(t)
	assert.ErrorIs(t, store.Remove("uuid_gone.txt"), ErrNotFound)
}

func TestInvalidNamesRejected(t *testing.T) {
	store, dir := newTestStore(t)

	outside := filepath.Join(dir, "..", "escape.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))

	names := []string{
		"",
		".",
		"..",
		"../escape.txt",
		"a/b.txt",
		`a\b.txt`,
		"/etc/passwd",
	}
	for _, name := range names {
		_, err := store.Create(name)
		assert.ErrorIs(t, err, ErrInvalidName, "Create(%q)", name)

		_, err = store.Open(name)
		assert.ErrorIs(t, err, ErrInvalidName, "Open(%q)", name)

		assert.ErrorIs(t, store.Remove(name), ErrInvalidName, "Remove(%q)", name)

		_, err = store.Path(name)
		assert.ErrorIs(t, err, ErrInvalidName, "Path(%q)", name)
	}

	// The escape target must have survived every attempt.
	_, err := os.Stat(outside)
	assert.NoError(t, err)
}

func TestList(t *testing.T) {
	store, dir := newTestStore(t)

	writeFile(t, store, "uuid_a.txt", "aaaa")
	writeFile(t, store, "uuid_b.bin", "bb")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	sizes := map[string]int64{}
	for _, e := range entries {
		sizes[e.Name] = e.Size
	}
	assert.Equal(t, int64(4), sizes["uuid_a.txt"])
	assert.Equal(t, int64(2), sizes["uuid_b.bin"])
}

func TestListEmpty(t *testing.T) {
	store, _ := newTestStore(t)
	entries, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPath(t *testing.T) {
	store, dir := newTestStore(t)
	writeFile(t, store, "uuid_c.txt", "c")

	p, err := store.Path("uuid_c.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "uuid_c.txt"), p)

	_, err = store.Path("uuid_missing.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDiskSpace(t *testing.T) {
	store, _ := newTestStore(t)

	free, total, ok := store.DiskSpace()
	require.True(t, ok)
	assert.Greater(t, total, uint64(0))
	assert.LessOrEqual(t, free, total)
}

func TestDiskSpaceFallback(t *testing.T) {
	free, total, ok := diskSpace(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.False(t, ok)
	assert.Equal(t, uint64(fallbackDiskFree), free)
	assert.Equal(t, uint64(fallbackDiskTotal), total)
}
