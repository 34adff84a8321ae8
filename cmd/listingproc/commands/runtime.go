package commands

import (
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/listingproc/internal/config"
	ferrors "git.home.luguber.info/inful/listingproc/internal/foundation/errors"
	"git.home.luguber.info/inful/listingproc/internal/hashing"
	"git.home.luguber.info/inful/listingproc/internal/logfields"
	"git.home.luguber.info/inful/listingproc/internal/metrics"
	"git.home.luguber.info/inful/listingproc/internal/refqueue"
)

// runtime wires the collaborators shared by process and header.
type runtime struct {
	cfg      *config.Config
	store    refqueue.Store
	queue    *refqueue.Queue
	resolver *hashing.Resolver
	registry *prometheus.Registry
	recorder metrics.Recorder
	logger   *slog.Logger
}

func newRuntime(g *Global, root *CLI) (*runtime, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	root.applyLoggingConfig(g, cfg)

	rt := &runtime{cfg: cfg, recorder: metrics.NoopRecorder{}, logger: g.Logger}
	if cfg.Metrics.Textfile != "" {
		rt.registry = prometheus.NewRegistry()
		rt.recorder = metrics.NewPrometheusRecorder(rt.registry)
	}

	backend, err := refqueue.ParseBackend(cfg.Queue.Backend)
	if err != nil {
		return nil, err
	}
	rt.store, err = refqueue.OpenStore(backend, cfg.Queue.Path)
	if err != nil {
		return nil, err
	}
	rt.logger.Debug("Opened reference queue", logfields.Backend(string(backend)), logfields.Path(cfg.Queue.Path))
	rt.queue = refqueue.New(rt.store, refqueue.WithRecorder(rt.recorder), refqueue.WithLogger(rt.logger))

	var fn hashing.Func = hashing.Builtin
	if config.NormalizeHashMode(cfg.Hash.Mode) == config.HashModeExec {
		fn = hashing.NewExecFunc(hashing.ExecConfig{
			Shell:     cfg.Hash.Shell,
			ScriptDir: cfg.Hash.ScriptDir,
			Scripts:   cfg.Hash.Scripts,
			Timeout:   cfg.Hash.Timeout,
		})
	}
	rt.resolver = hashing.NewResolver(fn, hashing.WithRecorder(rt.recorder), hashing.WithLogger(rt.logger))
	return rt, nil
}

// Close releases the queue store and exports metrics when configured.
func (rt *runtime) Close() error {
	var errs []error
	if err := rt.store.Close(); err != nil {
		errs = append(errs, ferrors.WrapError(err, ferrors.CategoryStore, "could not close reference queue").Build())
	}
	if rt.registry != nil {
		if err := metrics.WriteTextfile(rt.cfg.Metrics.Textfile, rt.registry); err != nil {
			// Metrics never fail an invocation.
			rt.logger.Warn("Could not write metrics textfile", logfields.Path(rt.cfg.Metrics.Textfile), logfields.Error(err))
		}
	}
	return errors.Join(errs...)
}
