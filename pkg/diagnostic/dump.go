// Package diagnostic appends an external configuration excerpt to failure
// reports. The excerpt is read from a file named by an environment
// variable; the two last task tags name the stage and the config section.
package diagnostic

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/live/pkg/domain"
	"github.com/aretw0/live/pkg/ports"
	"github.com/spf13/afero"
)

// DefaultEnvVar names the variable holding the document path.
const DefaultEnvVar = "DAPP_DUMP_CONFIG_DOC_PATH"

// Dumper is the default ports.DiagnosticDumper.
type Dumper struct {
	display  ports.Display
	fs       afero.Fs
	envVar   string
	lookup   func(string) (string, bool)
	renderer func(string) (string, error)
	logger   *slog.Logger
}

var _ ports.DiagnosticDumper = (*Dumper)(nil)

// Option configures a Dumper.
type Option func(*Dumper)

// WithFs sets the filesystem the document is read from.
func WithFs(fs afero.Fs) Option {
	return func(d *Dumper) {
		d.fs = fs
	}
}

// WithEnvVar changes the variable that names the document.
func WithEnvVar(name string) Option {
	return func(d *Dumper) {
		if name != "" {
			d.envVar = name
		}
	}
}

// WithLookupEnv replaces os.LookupEnv.
func WithLookupEnv(lookup func(string) (string, bool)) Option {
	return func(d *Dumper) {
		d.lookup = lookup
	}
}

// WithRenderer renders the document before display (e.g. markdown to ANSI).
// Render errors fall back to the raw text.
func WithRenderer(render func(string) (string, error)) Option {
	return func(d *Dumper) {
		d.renderer = render
	}
}

// WithLogger sets the logger used for the (debug-level) read failures.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dumper) {
		d.logger = logger
	}
}

// New creates a dumper writing to display.
func New(display ports.Display, opts ...Option) *Dumper {
	d := &Dumper{
		display: display,
		fs:      afero.NewOsFs(),
		envVar:  DefaultEnvVar,
		lookup:  os.LookupEnv,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dump writes the diagnostic block for task. It is always written, with
// empty stage and section when the task has fewer than two tags.
func (d *Dumper) Dump(task domain.Task) {
	stage, section := Sections(task.Tags)
	doc := d.readDocument()
	d.display.Display(fmt.Sprintf("\n\n%s\n...%s\n%s", stage, section, doc), 0, domain.ColorDebug)
}

// Sections returns the stage name and config section encoded in tags.
func Sections(tags []string) (stage, section string) {
	if len(tags) < 2 {
		return "", ""
	}
	return tags[len(tags)-2], tags[len(tags)-1]
}

func (d *Dumper) readDocument() string {
	path, ok := d.lookup(d.envVar)
	if !ok || path == "" {
		return ""
	}

	data, err := afero.ReadFile(d.fs, path)
	if err != nil {
		d.logger.Debug("diagnostic document unavailable", "env", d.envVar, "path", path, "error", err)
		return ""
	}

	text := string(data)
	if d.renderer != nil {
		if rendered, err := d.renderer(text); err == nil {
			return rendered
		}
	}
	return text
}
