package eventstream

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aretw0/live/internal/testutils"
	"github.com/aretw0/live/pkg/callback"
	"github.com/aretw0/live/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ndjson = `{"event":"play_start","play":{"name":"deploy","strategy":"linear"}}

{"event":"task_start","task":{"action":"shell","args":{"_raw_params":"uptime"}}}
{"event":"runner_ok","host":{"name":"web1"},"task":{"action":"shell","args":{"_raw_params":"uptime"}},"result":{"rc":0,"stdout":"up 3 days"}}
{"event":"runner_failed","host":{"name":"web2"},"task":{"action":"copy","name":"cfg","tags":["install","section"]},"result":{"msg":"denied"},"ignore_errors":true}
`

func TestDecodeJSON(t *testing.T) {
	ev, err := DecodeJSON([]byte(`{"event":"runner_ok","host":{"name":"h"},"task":{"action":"command","tags":["a","b"]},"result":{"rc":3}}`))
	require.NoError(t, err)

	assert.Equal(t, domain.EventRunnerOk, ev.Type)
	assert.Equal(t, "h", ev.Host.Name)
	assert.Equal(t, []string{"a", "b"}, ev.Task.Tags)
	assert.Equal(t, json.Number("3"), ev.Result["rc"])
	assert.Equal(t, 3, ev.TaskResult().Result.Int("rc", -1))
	assert.Nil(t, ev.Play)
}

func TestDecodeJSON_Errors(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"event":"bogus"}`))
	assert.ErrorIs(t, err, domain.ErrUnknownEvent)

	_, err = DecodeJSON([]byte(`{not json`))
	assert.Error(t, err)

	_, err = DecodeJSON([]byte(`{"event":"task_start","task":{"tags":"not-a-list"}}`))
	assert.Error(t, err)
}

func TestEncodeJSON_RoundTripsThroughDecode(t *testing.T) {
	data, err := EncodeJSON(domain.Event{
		Type: domain.EventRunnerSkipped,
		Host: domain.Host{Name: "db1"},
		Task: domain.Task{Action: "apt"},
	})
	require.NoError(t, err)

	ev, err := DecodeJSON(data)
	require.NoError(t, err)
	assert.Equal(t, "db1", ev.Host.Name)

	_, err = EncodeJSON(domain.Event{Type: "nope"})
	assert.ErrorIs(t, err, domain.ErrUnknownEvent)
}

func TestJSONReader(t *testing.T) {
	r := NewJSONReader(strings.NewReader(ndjson + "garbage\n"))

	var types []domain.EventType
	for i := 0; i < 4; i++ {
		ev, err := r.Next()
		require.NoError(t, err)
		types = append(types, ev.Type)
	}
	assert.Equal(t, []domain.EventType{
		domain.EventPlayStart, domain.EventTaskStart, domain.EventRunnerOk, domain.EventRunnerFailed,
	}, types)

	_, err := r.Next()
	assert.ErrorContains(t, err, "line 6")

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestYAMLReader(t *testing.T) {
	stream := `
event: play_start
play:
  name: deploy
  strategy: free
---
---
event: runner_ok
host:
  name: web1
task:
  action: debug
  args:
    var: release
result:
  release: v1
  rc: 0
`
	r := NewYAMLReader(strings.NewReader(stream))

	ev, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, domain.StrategyFree, ev.Play.Strategy)

	ev, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, "release", ev.Task.Arg("var"))
	assert.Equal(t, 0, ev.TaskResult().Result.Int("rc", -1))

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestYAMLReader_NonStringKeys(t *testing.T) {
	stream := `
event: runner_ok
host: {name: web1}
task: {action: firewalld}
result:
  ports: {80: http, 443: https}
  rules: [{1: allow, _ansible_no_log: false}]
`
	ev, err := NewYAMLReader(strings.NewReader(stream)).Next()
	require.NoError(t, err)

	result := ev.TaskResult().Result
	assert.Equal(t, map[string]any{"80": "http", "443": "https"}, result["ports"])

	out := callback.DumpResult(result, 0, callback.DumpOptions{})
	assert.Equal(t, `{"ports":{"443":"https","80":"http"},"rules":[{"1":"allow"}]}`, out)
}

func TestYAMLReader_SyntaxErrorIsFatal(t *testing.T) {
	r := NewYAMLReader(strings.NewReader("event: [unclosed\n"))
	_, err := r.Next()
	assert.ErrorIs(t, err, ErrFatal)
}

func TestPump_RendersStream(t *testing.T) {
	d := testutils.NewDisplay(0)
	cb, err := callback.New(d, callback.WithFailurePolicy(callback.FailureDetailed))
	require.NoError(t, err)

	var decodeErrs []error
	n, err := Pump(NewJSONReader(strings.NewReader(ndjson+"{\"event\":\"nope\"}\n")), cb, func(err error) error {
		decodeErrs = append(decodeErrs, err)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 4, n)
	require.Len(t, decodeErrs, 1)
	assert.ErrorIs(t, decodeErrs[0], domain.ErrUnknownEvent)
	assert.Equal(t, []string{
		"shell [uptime] started",
		"shell [uptime] SUCCESS | rc=0 >>",
		"stdout was:",
		"up 3 days",
		"copy [cfg] FAILED",
		"denied",
		"...ignoring",
	}, d.Texts())
}

func TestPump_StopsWhenAsked(t *testing.T) {
	d := testutils.NewDisplay(0)
	cb, err := callback.New(d, callback.WithFailurePolicy(callback.FailureBrief))
	require.NoError(t, err)

	stop := errors.New("strict")
	n, err := Pump(NewJSONReader(strings.NewReader("bad\n"+ndjson)), cb, func(error) error { return stop })

	assert.ErrorIs(t, err, stop)
	assert.Zero(t, n)
}

func TestDispatch_Unknown(t *testing.T) {
	d := testutils.NewDisplay(0)
	cb, err := callback.New(d, callback.WithFailurePolicy(callback.FailureBrief))
	require.NoError(t, err)

	assert.ErrorIs(t, Dispatch(cb, domain.Event{Type: "nope"}), domain.ErrUnknownEvent)
}
