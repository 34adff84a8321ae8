package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/listingproc/internal/foundation/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "listingproc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
	require.Equal(t, "header.tmp", cfg.Queue.Path)
	require.Equal(t, 10*time.Second, cfg.Hash.Timeout)
	require.Equal(t, "hash-cpp.sh", cfg.Hash.Scripts["hash-cpp"])
}

func TestLoad_OverridesAndExpandsEnv(t *testing.T) {
	t.Setenv("LISTINGPROC_TEST_DIR", "/opt/kactl/contest")
	path := writeConfig(t, `
queue:
  backend: sqlite
  path: build/queue.db
hash:
  script_dir: ${LISTINGPROC_TEST_DIR}
  timeout: 2s
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.Queue.Backend)
	require.Equal(t, "build/queue.db", cfg.Queue.Path)
	require.Equal(t, "/opt/kactl/contest", cfg.Hash.ScriptDir)
	require.Equal(t, 2*time.Second, cfg.Hash.Timeout)
	require.Equal(t, "sh", cfg.Hash.Shell)
	require.Equal(t, LogLevelDebug, NormalizeLogLevel(cfg.Logging.Level))
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"queue.backend":  "queue:\n  backend: redis\n",
		"queue.path":     "queue:\n  path: \"\"\n",
		"hash.mode":      "hash:\n  mode: remote\n",
		"hash.timeout":   "hash:\n  timeout: 0s\n",
		"logging.format": "logging:\n  format: xml\n",
	}
	for field, content := range tests {
		t.Run(field, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			require.Error(t, err)
			require.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
			require.Contains(t, err.Error(), field)
		})
	}
}

func TestLoad_BuiltinModeSkipsExecChecks(t *testing.T) {
	cfg, err := Load(writeConfig(t, "hash:\n  mode: builtin\n  shell: \"\"\n"))
	require.NoError(t, err)
	require.Equal(t, HashModeBuiltin, NormalizeHashMode(cfg.Hash.Mode))
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "queue: [\n"))
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listingproc.yaml")

	require.NoError(t, Init(path, false))
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)

	err = Init(path, false)
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))

	require.NoError(t, Init(path, true))
}

func TestLogLevel(t *testing.T) {
	require.Equal(t, LogLevelWarn, NormalizeLogLevel(" WARNING "))
	require.Equal(t, LogLevelInfo, NormalizeLogLevel("chatty"))
	require.Equal(t, "DEBUG", LogLevelDebug.SlogLevel().String())
	require.Equal(t, LogFormatJSON, NormalizeLogFormat("JSON"))
}
