package refqueue

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// storeFactories lists every Store implementation under a shared contract.
func storeFactories(t *testing.T) map[string]func() Store {
	return map[string]func() Store{
		"memory": func() Store { return NewMemoryStore() },
		"file": func() Store {
			return NewFileStore(filepath.Join(t.TempDir(), "header.tmp"))
		},
		"sqlite": func() Store {
			s, err := NewSQLiteStore(":memory:")
			require.NoError(t, err)
			return s
		},
	}
}

func TestStoreContract(t *testing.T) {
	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := factory()
			defer func() { _ = store.Close() }()

			entries, err := store.ReadAll(ctx)
			require.NoError(t, err)
			require.Empty(t, entries)

			for _, e := range []string{"a.h", "b.cpp", "c.java"} {
				require.NoError(t, store.Append(ctx, e))
			}
			entries, err = store.ReadAll(ctx)
			require.NoError(t, err)
			require.Equal(t, []string{"a.h", "b.cpp", "c.java"}, entries)

			require.NoError(t, store.ReplaceAll(ctx, []string{"c.java"}))
			entries, err = store.ReadAll(ctx)
			require.NoError(t, err)
			require.Equal(t, []string{"c.java"}, entries)

			require.NoError(t, store.ReplaceAll(ctx, nil))
			entries, err = store.ReadAll(ctx)
			require.NoError(t, err)
			require.Empty(t, entries)
		})
	}
}

func TestFileStore_Format(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "header.tmp")
	require.NoError(t, os.WriteFile(path, []byte("  a.h \nb.cpp\n"), 0o600))

	store := NewFileStore(path)
	entries, err := store.ReadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"a.h", "b.cpp"}, entries)

	require.NoError(t, store.Append(ctx, "c.java"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "  a.h \nb.cpp\nc.java\n", string(data))

	require.NoError(t, store.ReplaceAll(ctx, []string{"c.java"}))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "c.java\n", string(data))

	leftovers, err := filepath.Glob(path + ".*")
	require.NoError(t, err)
	require.Empty(t, leftovers)
}

func TestFileStore_ReplaceKeepsMode(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "header.tmp")
	store := NewFileStore(path)

	require.NoError(t, store.Append(ctx, "a.h"))
	require.NoError(t, os.Chmod(path, 0o644))
	require.NoError(t, store.ReplaceAll(ctx, []string{"b.cpp"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestSQLiteStore_Persists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "queue.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Append(ctx, "a.h"))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	entries, err := reopened.ReadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"a.h"}, entries)
}

func TestOpenStore(t *testing.T) {
	b, err := ParseBackend(" SQLite ")
	require.NoError(t, err)
	require.Equal(t, BackendSQLite, b)

	_, err = ParseBackend("redis")
	require.Error(t, err)

	store, err := OpenStore(BackendFile, filepath.Join(t.TempDir(), "header.tmp"))
	require.NoError(t, err)
	require.IsType(t, &FileStore{}, store)
}
