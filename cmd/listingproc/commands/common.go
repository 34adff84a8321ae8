package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/listingproc/internal/config"
	"git.home.luguber.info/inful/listingproc/internal/logfields"
)

// LogLevelEnv overrides the configured log level when set.
const LogLevelEnv = "LISTINGPROC_LOG_LEVEL"

// Global holds per-invocation state shared by all commands.
type Global struct {
	Logger *slog.Logger
	RunID  string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewGlobal returns the state for a process bound to the standard streams.
func NewGlobal() *Global {
	return &Global{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `help:"Configuration file path" default:"listingproc.yaml" env:"LISTINGPROC_CONFIG"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Process ProcessCmd `cmd:"" default:"withargs" help:"Render one source file as a listing"`
	Header  HeaderCmd  `cmd:"" help:"Print and drain the captions queued up to a page header target"`
	Init    InitCmd    `cmd:"" help:"Write a default configuration file"`
}

// AfterApply runs after flag parsing; setup logging once. The level from the
// configuration file is applied later, only when neither the flag nor the
// environment chose one.
func (c *CLI) AfterApply(g *Global) error {
	g.RunID = uuid.NewString()
	c.installLogger(g, c.flagLevel(), config.LogFormatText)
	return nil
}

// flagLevel returns the level chosen by --verbose or the environment, or ""
// when neither is set.
func (c *CLI) flagLevel() config.LogLevel {
	if c.Verbose {
		return config.LogLevelDebug
	}
	if raw, ok := os.LookupEnv(LogLevelEnv); ok && raw != "" {
		return config.NormalizeLogLevel(raw)
	}
	return ""
}

// applyLoggingConfig re-installs the logger with the configured format and,
// unless overridden, the configured level.
func (c *CLI) applyLoggingConfig(g *Global, cfg *config.Config) {
	level := c.flagLevel()
	if level == "" {
		level = config.NormalizeLogLevel(cfg.Logging.Level)
	}
	c.installLogger(g, level, config.NormalizeLogFormat(cfg.Logging.Format))
}

func (c *CLI) installLogger(g *Global, level config.LogLevel, format config.LogFormat) {
	if level == "" {
		level = config.LogLevelInfo
	}
	opts := &slog.HandlerOptions{Level: level.SlogLevel()}

	var handler slog.Handler
	if format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(g.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(g.Stderr, opts)
	}
	g.Logger = slog.New(handler).With(logfields.RunID(g.RunID))
	slog.SetDefault(g.Logger)
}
