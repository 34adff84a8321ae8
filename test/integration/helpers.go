package integration

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/listingproc/internal/hashing"
	"git.home.luguber.info/inful/listingproc/internal/language"
	"git.home.luguber.info/inful/listingproc/internal/listing"
	"git.home.luguber.info/inful/listingproc/internal/refqueue"
)

const (
	sourcesDir = "../../test/testdata/sources"
	goldenDir  = "../../test/testdata/golden"
)

// pipeline is a processor over a file-backed queue in a temp directory,
// hashing regions in process.
type pipeline struct {
	queuePath string
	queue     *refqueue.Queue
	processor *listing.Processor
}

func newPipeline(t *testing.T) *pipeline {
	t.Helper()
	path := filepath.Join(t.TempDir(), "header.tmp")
	queue := refqueue.New(refqueue.NewFileStore(path))
	return &pipeline{
		queuePath: path,
		queue:     queue,
		processor: listing.NewProcessor(hashing.NewResolver(hashing.Builtin), queue),
	}
}

// render processes one fixture the way `listingproc -i <file>` does.
func (p *pipeline) render(t *testing.T, name string) []byte {
	t.Helper()
	path := filepath.Join(sourcesDir, name)

	spec, err := language.Lookup(language.FromPath(path))
	require.NoError(t, err)

	// #nosec G304 -- test utility reading fixtures from testdata
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	var out bytes.Buffer
	_, err = p.processor.Process(context.Background(), listing.Unit{
		Caption:  language.CaptionFromPath(path),
		Language: spec,
		Source:   f,
	}, &out)
	require.NoError(t, err, "processing %s", name)
	return out.Bytes()
}

// verifyGolden compares actual against the golden file, or rewrites the
// golden file when updateGolden is set.
func verifyGolden(t *testing.T, goldenPath string, actual []byte, updateGolden bool) {
	t.Helper()

	if updateGolden {
		err := os.MkdirAll(filepath.Dir(goldenPath), 0o750)
		require.NoError(t, err, "failed to create golden directory")

		err = os.WriteFile(goldenPath, actual, 0o600)
		require.NoError(t, err, "failed to write golden file")

		t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	// #nosec G304 -- test utility reading golden file from testdata
	expected, err := os.ReadFile(goldenPath)
	require.NoError(t, err, "failed to read golden file: %s", goldenPath)
	require.Equal(t, string(expected), string(actual), "output mismatch for %s", goldenPath)
}

// fixtureNames lists the fixture sources in directory order.
func fixtureNames(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(sourcesDir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	require.NotEmpty(t, names)
	return names
}
