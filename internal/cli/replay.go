package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aretw0/live/pkg/domain"
	"github.com/aretw0/live/pkg/eventstream"
)

// Stream formats accepted by replay.
const (
	FormatAuto = "auto"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ReplayOptions configures RunReplay.
type ReplayOptions struct {
	// Path is a file on the runtime filesystem, or "-" for Stdin.
	Path   string
	Format string
	// Strict stops at the first malformed event instead of skipping it.
	Strict bool
	Stdin  io.Reader
}

// RunReplay renders a recorded event stream and returns how many events were
// dispatched.
func RunReplay(ctx context.Context, rt *Runtime, opts ReplayOptions) (int, error) {
	var src io.Reader
	if opts.Path == "-" || opts.Path == "" {
		if opts.Stdin == nil {
			return 0, fmt.Errorf("no input: give a file or pipe events on stdin")
		}
		src = opts.Stdin
	} else {
		f, err := rt.Fs.Open(opts.Path)
		if err != nil {
			return 0, fmt.Errorf("failed to open event stream: %w", err)
		}
		defer f.Close()
		src = f
	}

	format, err := detectFormat(opts.Path, opts.Format)
	if err != nil {
		return 0, err
	}

	var reader eventstream.Reader
	if format == FormatYAML {
		reader = eventstream.NewYAMLReader(src)
	} else {
		reader = eventstream.NewJSONReader(src)
	}

	skipped := 0
	onError := func(err error) error {
		if opts.Strict {
			return err
		}
		skipped++
		rt.Logger.Warn("skipping malformed event", "err", err)
		return nil
	}

	n, err := eventstream.Pump(&contextReader{ctx: ctx, next: reader}, rt.Callback, onError)
	rt.Logger.Info("replay finished", "path", opts.Path, "events", n, "skipped", skipped)
	return n, err
}

func detectFormat(path, format string) (string, error) {
	switch strings.ToLower(format) {
	case FormatJSON, "ndjson", "jsonl":
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case "", FormatAuto:
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			return FormatYAML, nil
		}
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown stream format %q (want auto, json or yaml)", format)
	}
}

// contextReader ends the stream once ctx is done.
type contextReader struct {
	ctx  context.Context
	next eventstream.Reader
}

func (r *contextReader) Next() (domain.Event, error) {
	if err := r.ctx.Err(); err != nil {
		return domain.Event{}, io.EOF
	}
	return r.next.Next()
}
