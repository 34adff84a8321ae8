package refqueue

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/listingproc/internal/foundation/errors"
	"git.home.luguber.info/inful/listingproc/internal/metrics"
)

func TestParseHeaderRequest(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"b|c", "b"},
		{"  |c ", "c"},
		{" b ", "b"},
		{"|", ""},
		{"", ""},
		{" | | x", ""},
		{"a|b|c", "a"},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			require.Equal(t, tt.want, ParseHeaderRequest(tt.value).Target)
		})
	}
}

func TestDisplayName(t *testing.T) {
	require.Equal(t, "FenwickTree", DisplayName("FenwickTree.h"))
	require.Equal(t, "template", DisplayName("template.cpp.bak"))
	require.Equal(t, ".vimrc", DisplayName(".vimrc"))
	require.Equal(t, "hash", DisplayName("contest/hash.sh"))
	require.Equal(t, "README", DisplayName("README"))
}

func TestDrain(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore("a.h", "b.cpp", "c.java")
	q := New(store)

	line, ok, err := q.Drain(ctx, HeaderRequest{Target: "b.cpp"})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `a\enspace{}b`, line)

	rest, err := store.ReadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"c.java"}, rest)

	line, ok, err = q.Drain(ctx, HeaderRequest{Target: "b.cpp"})
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, line)

	rest, err = store.ReadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"c.java"}, rest)
}

func TestDrain_FirstOccurrence(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore("x.h", "y.h", "x.h")

	line, ok, err := New(store).Drain(ctx, ParseHeaderRequest("x.h|"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "x", line)

	rest, _ := store.ReadAll(ctx)
	require.Equal(t, []string{"y.h", "x.h"}, rest)
}

func TestDrain_EmptyRequestIsNoop(t *testing.T) {
	store := NewMemoryStore("a.h")

	_, ok, err := New(store).Drain(context.Background(), ParseHeaderRequest(" | "))
	require.NoError(t, err)
	require.False(t, ok)

	rest, _ := store.ReadAll(context.Background())
	require.Equal(t, []string{"a.h"}, rest)
}

func TestDrain_NormalizesUnicode(t *testing.T) {
	ctx := context.Background()
	// Stored decomposed, requested precomposed.
	store := NewMemoryStore("Fe\u0301nwick.h", "z.h")

	line, ok, err := New(store).Drain(ctx, HeaderRequest{Target: "F\u00e9nwick.h"})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "F\u00e9nwick", line)
}

func TestAdd_Normalizes(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	q := New(store)

	require.NoError(t, q.Add(ctx, " Fe\u0301nwick.h \n"))
	entries, err := q.Entries(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"F\u00e9nwick.h"}, entries)
}

func TestDrain_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewPrometheusRecorder(reg)
	q := New(NewMemoryStore("a", "b", "c"), WithRecorder(rec))

	_, ok, err := q.Drain(context.Background(), HeaderRequest{Target: "b"})
	require.NoError(t, err)
	require.True(t, ok)

	expected := `
# HELP listingproc_queue_entries Reference queue entries left after the last drain
# TYPE listingproc_queue_entries gauge
listingproc_queue_entries 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "listingproc_queue_entries"))
}

type failingStore struct {
	MemoryStore
}

func (f *failingStore) Append(context.Context, string) error {
	return errors.New("disk full")
}

func (f *failingStore) ReplaceAll(context.Context, []string) error {
	return errors.New("read-only file system")
}

func TestQueue_StoreErrorsAreClassified(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{}
	require.NoError(t, store.MemoryStore.Append(ctx, "a"))
	q := New(store)

	err := q.Add(ctx, "b")
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryStore))

	_, ok, err := q.Drain(ctx, HeaderRequest{Target: "a"})
	require.False(t, ok)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryStore))
}
