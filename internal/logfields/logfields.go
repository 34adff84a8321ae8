package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyCaption    = "caption"
	KeyLanguage   = "language"
	KeyDialect    = "dialect"
	KeyPath       = "path"
	KeyLines      = "lines"
	KeyIncludes   = "includes"
	KeyTarget     = "target"
	KeyDrained    = "drained"
	KeyRemaining  = "remaining"
	KeyBackend    = "backend"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Caption(c string) slog.Attr      { return slog.String(KeyCaption, c) }
func Language(l string) slog.Attr     { return slog.String(KeyLanguage, l) }
func Dialect(d string) slog.Attr      { return slog.String(KeyDialect, d) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Lines(n int) slog.Attr           { return slog.Int(KeyLines, n) }
func Includes(n int) slog.Attr        { return slog.Int(KeyIncludes, n) }
func Target(t string) slog.Attr       { return slog.String(KeyTarget, t) }
func Drained(n int) slog.Attr         { return slog.Int(KeyDrained, n) }
func Remaining(n int) slog.Attr       { return slog.Int(KeyRemaining, n) }
func Backend(b string) slog.Attr      { return slog.String(KeyBackend, b) }
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
