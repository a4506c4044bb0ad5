package domain

// EventType names one lifecycle notification pushed by the engine.
type EventType string

const (
	EventPlayStart         EventType = "play_start"
	EventTaskStart         EventType = "task_start"
	EventRunnerOk          EventType = "runner_ok"
	EventRunnerFailed      EventType = "runner_failed"
	EventRunnerSkipped     EventType = "runner_skipped"
	EventRunnerUnreachable EventType = "runner_unreachable"
	EventItemOk            EventType = "item_ok"
	EventItemFailed        EventType = "item_failed"
	EventItemSkipped       EventType = "item_skipped"
	EventFileDiff          EventType = "file_diff"
)

// Event is the wire envelope of a lifecycle notification. Which fields are
// meaningful depends on Type: play_start carries Play, task_start carries
// Task, every other type carries Host, Task and Result.
type Event struct {
	Type          EventType      `json:"event" yaml:"event" mapstructure:"event"`
	Play          *Play          `json:"play,omitempty" yaml:"play" mapstructure:"play"`
	Task          Task           `json:"task" yaml:"task" mapstructure:"task"`
	Host          Host           `json:"host" yaml:"host" mapstructure:"host"`
	Result        map[string]any `json:"result,omitempty" yaml:"result" mapstructure:"result"`
	IsConditional bool           `json:"is_conditional,omitempty" yaml:"is_conditional" mapstructure:"is_conditional"`
	IgnoreErrors  bool           `json:"ignore_errors,omitempty" yaml:"ignore_errors" mapstructure:"ignore_errors"`
}

// TaskResult builds the per-host outcome carried by the event.
func (e Event) TaskResult() TaskResult {
	return TaskResult{Host: e.Host, Task: e.Task, Result: Result(e.Result)}
}

// Status classifies a per-host outcome for hooks and counters.
type Status string

const (
	StatusOK          Status = "ok"
	StatusChanged     Status = "changed"
	StatusFailed      Status = "failed"
	StatusIgnored     Status = "ignored"
	StatusSkipped     Status = "skipped"
	StatusUnreachable Status = "unreachable"
)

// Outcome is reported to observers after a per-host result was rendered.
type Outcome struct {
	Host   string
	Action string
	Status Status
	Item   bool
}
