package hashing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// ExecConfig describes how hash scripts are located and run.
type ExecConfig struct {
	Shell     string
	ScriptDir string
	// Scripts maps a dialect to a script file name inside ScriptDir.
	Scripts map[string]string
	Timeout time.Duration
}

// NewExecFunc returns a Func that runs `<shell> <script_dir>/<script>` with the
// region on stdin and returns its stdout.
func NewExecFunc(cfg ExecConfig) Func {
	return func(ctx context.Context, dialect string, region []byte) (string, error) {
		script, ok := cfg.Scripts[dialect]
		if !ok {
			return "", fmt.Errorf("no hash script configured for dialect %q", dialect)
		}
		if cfg.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
			defer cancel()
		}

		scriptPath := filepath.Join(cfg.ScriptDir, script)
		// #nosec G204 -- shell and script come from the local configuration file
		cmd := exec.CommandContext(ctx, cfg.Shell, scriptPath)
		cmd.Stdin = bytes.NewReader(region)
		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		// Children of the shell may keep the output pipes open after a kill.
		cmd.WaitDelay = time.Second

		if err := cmd.Run(); err != nil {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return "", fmt.Errorf("%s timed out after %s", scriptPath, cfg.Timeout)
			}
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				return "", fmt.Errorf("%s: %w: %s", scriptPath, err, msg)
			}
			return "", fmt.Errorf("%s: %w", scriptPath, err)
		}
		return stdout.String(), nil
	}
}
