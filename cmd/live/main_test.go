package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/live"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "live version "+live.Version+"\n", out)
}

func TestReplayCommand_Stdin(t *testing.T) {
	stream := `{"event":"runner_skipped","host":{"name":"web1"},"task":{"action":"apt"}}` + "\n"
	out, err := run(t, stream, "replay", "-", "--failure-policy", "brief", "--color", "never")
	require.NoError(t, err)
	assert.Equal(t, "web1 | SKIPPED\n", out)
}
