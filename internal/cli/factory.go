package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/live/internal/config"
	"github.com/aretw0/live/internal/logging"
	"github.com/aretw0/live/internal/metrics"
	"github.com/aretw0/live/internal/presentation/tui"
	"github.com/aretw0/live/pkg/callback"
	"github.com/aretw0/live/pkg/diagnostic"
	"github.com/aretw0/live/pkg/display"
	"github.com/aretw0/live/pkg/domain"
	"github.com/aretw0/live/pkg/sanitize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
)

// Runtime is the wired rendering pipeline for one command invocation.
type Runtime struct {
	Config   *config.Config
	Console  *display.Console
	Callback *callback.Callback
	Metrics  *metrics.Recorder
	Registry *prometheus.Registry
	Logger   *slog.Logger
	RunID    string
	Fs       afero.Fs
}

// Setup resolves configuration (file, then environment, then flags) and
// builds the callback with its collaborators.
func Setup(opts Options) (*Runtime, error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.LookupEnv == nil {
		opts.LookupEnv = os.LookupEnv
	}

	cfg, err := config.Load(opts.Fs, opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(opts.LookupEnv); err != nil {
		return nil, err
	}
	applyFlags(cfg, opts)

	if cfg.FailurePolicy == "" {
		return nil, fmt.Errorf("%w: set failure_policy, %s or --failure-policy", domain.ErrFailurePolicyUnset, config.EnvFailurePolicy)
	}
	policy, err := callback.ParseFailurePolicy(cfg.FailurePolicy)
	if err != nil {
		return nil, err
	}
	mode, err := display.ParseColorMode(cfg.Color)
	if err != nil {
		return nil, err
	}

	runID := logging.NewRunID()
	logger := logging.WithRunID(logging.New(logging.ParseLevel(cfg.LogLevel), opts.Stderr), runID)

	console := display.New(opts.Stdout,
		display.WithVerbosity(cfg.Verbosity),
		display.WithColorMode(mode),
		display.WithPalette(display.DefaultPalette().Merge(cfg.Palette)),
	)

	var sanitizerOpts []sanitize.Option
	if cfg.InternalPrefix != "" {
		sanitizerOpts = append(sanitizerOpts, sanitize.WithInternalPrefix(cfg.InternalPrefix))
	}
	if len(cfg.RedactKeys) > 0 {
		patterns, err := sanitize.CompilePatterns(cfg.RedactKeys)
		if err != nil {
			return nil, err
		}
		sanitizerOpts = append(sanitizerOpts, sanitize.WithRedactedKeys(patterns...))
	}

	reg := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	cbOpts := []callback.Option{
		callback.WithFailurePolicy(policy),
		callback.WithSanitizer(sanitize.New(console, sanitizerOpts...)),
		callback.WithHooks(recorder.Hooks()),
		callback.WithLogger(logger),
	}
	if cfg.Diagnostic.Enabled {
		dumper, err := newDumper(console, cfg.Diagnostic, opts, logger)
		if err != nil {
			return nil, err
		}
		cbOpts = append(cbOpts, callback.WithDiagnosticDumper(dumper))
	}

	cb, err := callback.New(console, cbOpts...)
	if err != nil {
		return nil, err
	}

	logger.Debug("pipeline ready", "verbosity", cfg.Verbosity, "failure_policy", policy, "color", mode)
	return &Runtime{
		Config:   cfg,
		Console:  console,
		Callback: cb,
		Metrics:  recorder,
		Registry: reg,
		Logger:   logger,
		RunID:    runID,
		Fs:       opts.Fs,
	}, nil
}

func applyFlags(cfg *config.Config, opts Options) {
	if opts.Verbosity > 0 {
		cfg.Verbosity = opts.Verbosity
	}
	if opts.FailurePolicy != "" {
		cfg.FailurePolicy = opts.FailurePolicy
	}
	if opts.Color != "" {
		cfg.Color = opts.Color
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
}

func newDumper(console *display.Console, settings config.Diagnostic, opts Options, logger *slog.Logger) (*diagnostic.Dumper, error) {
	dumpOpts := []diagnostic.Option{
		diagnostic.WithFs(opts.Fs),
		diagnostic.WithLookupEnv(opts.LookupEnv),
		diagnostic.WithLogger(logger),
	}
	if settings.EnvVar != "" {
		dumpOpts = append(dumpOpts, diagnostic.WithEnvVar(settings.EnvVar))
	}
	if settings.Markdown {
		render, err := tui.NewRenderer(0)
		if err != nil {
			return nil, err
		}
		dumpOpts = append(dumpOpts, diagnostic.WithRenderer(render))
	}
	return diagnostic.New(console, dumpOpts...), nil
}
