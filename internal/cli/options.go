package cli

import (
	"io"

	"github.com/spf13/afero"
)

// Options carries the persistent flags shared by every command. Zero values
// mean "not given" and leave the file and environment settings in place.
type Options struct {
	ConfigPath    string
	Verbosity     int
	FailurePolicy string
	Color         string
	LogLevel      string

	Stdout    io.Writer
	Stderr    io.Writer
	Fs        afero.Fs
	LookupEnv func(string) (string, bool)
}
