package diagnostic

import (
	"errors"
	"testing"

	"github.com/aretw0/live/internal/testutils"
	"github.com/aretw0/live/pkg/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestDump_WithDocument(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tmp/doc.yaml", []byte("image: alpine\n"), 0o644))
	d := testutils.NewDisplay(0)

	New(d, WithFs(fs), WithLookupEnv(env(map[string]string{DefaultEnvVar: "/tmp/doc.yaml"}))).
		Dump(domain.Task{Tags: []string{"always", "install", "beforeInstall"}})

	require.Len(t, d.Lines, 1)
	assert.Equal(t, "\n\ninstall\n...beforeInstall\nimage: alpine\n", d.Lines[0].Text)
	assert.Equal(t, domain.ColorDebug, d.Lines[0].Color)
}

func TestDump_MissingEnvAndFewTags(t *testing.T) {
	d := testutils.NewDisplay(0)

	New(d, WithFs(afero.NewMemMapFs()), WithLookupEnv(env(nil))).
		Dump(domain.Task{Tags: []string{"only"}})

	require.Len(t, d.Lines, 1)
	assert.Equal(t, "\n\n\n...\n", d.Lines[0].Text)
}

func TestDump_UnreadableFileIsAbsorbed(t *testing.T) {
	d := testutils.NewDisplay(0)

	New(d, WithFs(afero.NewMemMapFs()), WithLookupEnv(env(map[string]string{DefaultEnvVar: "/nope"}))).
		Dump(domain.Task{Tags: []string{"a", "b"}})

	require.Len(t, d.Lines, 1)
	assert.Equal(t, "\n\na\n...b\n", d.Lines[0].Text)
}

func TestDump_CustomEnvVarAndRenderer(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/doc.md", []byte("# Title"), 0o644))
	d := testutils.NewDisplay(0)

	New(d,
		WithFs(fs),
		WithEnvVar("MY_DOC"),
		WithLookupEnv(env(map[string]string{"MY_DOC": "/doc.md"})),
		WithRenderer(func(s string) (string, error) { return "<" + s + ">", nil }),
	).Dump(domain.Task{})

	assert.Equal(t, "\n\n\n...\n<# Title>", d.Lines[0].Text)
}

func TestDump_RendererErrorFallsBack(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/doc", []byte("raw"), 0o644))
	d := testutils.NewDisplay(0)

	New(d,
		WithFs(fs),
		WithLookupEnv(env(map[string]string{DefaultEnvVar: "/doc"})),
		WithRenderer(func(string) (string, error) { return "", errors.New("bad") }),
	).Dump(domain.Task{})

	assert.Equal(t, "\n\n\n...\nraw", d.Lines[0].Text)
}

func TestSections(t *testing.T) {
	stage, section := Sections([]string{"x", "stage", "section"})
	assert.Equal(t, "stage", stage)
	assert.Equal(t, "section", section)

	stage, section = Sections(nil)
	assert.Empty(t, stage)
	assert.Empty(t, section)
}
