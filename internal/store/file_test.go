package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sodamelon/kanban/internal/model"
	"github.com/sodamelon/kanban/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_GetMissing(t *testing.T) {
	f, err := store.NewFile(t.TempDir())
	require.NoError(t, err)

	_, err = f.Get(context.Background(), key)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestFile_PutReplaces(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	f, err := store.NewFile(dir)
	require.NoError(t, err)

	require.NoError(t, f.Put(ctx, key, []byte("first")))
	require.NoError(t, f.Put(ctx, key, []byte("second")))

	got, err := f.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
	assert.Equal(t, "kanban-boards.json", entries[0].Name())
}

func TestFile_SanitizesKey(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	f, err := store.NewFile(dir)
	require.NoError(t, err)

	require.NoError(t, f.Put(ctx, "../escape/key", []byte("x")))

	_, err = os.Stat(filepath.Join(dir, ".._escape_key.json"))
	assert.NoError(t, err)
}

func TestFile_FailedPutKeepsPreviousValue(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	ctx := context.Background()
	dir := t.TempDir()
	f, err := store.NewFile(dir)
	require.NoError(t, err)
	s := store.New(f, nil)

	want := sampleCollection()
	require.True(t, store.Save(ctx, s, key, want))

	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	assert.False(t, store.Save(ctx, s, key, model.Collection{}))
	assert.Equal(t, want, store.Load(ctx, s, key, model.Collection{}))
}

func TestFile_EmptyDir(t *testing.T) {
	_, err := store.NewFile("")
	assert.Error(t, err)
}
