package domain

import "fmt"

// Play is a group of tasks executed against a set of hosts.
type Play struct {
	Name     string `json:"name,omitempty" yaml:"name" mapstructure:"name"`
	Strategy string `json:"strategy,omitempty" yaml:"strategy" mapstructure:"strategy"`
}

// IsFree reports whether the play runs with the free-running strategy.
// A nil play is treated as host-synchronized.
func (p *Play) IsFree() bool {
	return p != nil && p.Strategy == StrategyFree
}

// Host identifies the target an outcome belongs to.
type Host struct {
	Name string `json:"name" yaml:"name" mapstructure:"name"`
}

// Task is the declared unit of work as the engine resolved it.
type Task struct {
	Action string         `json:"action" yaml:"action" mapstructure:"action"`
	Name   string         `json:"name,omitempty" yaml:"name" mapstructure:"name"`
	Args   map[string]any `json:"args,omitempty" yaml:"args" mapstructure:"args"`
	Tags   []string       `json:"tags,omitempty" yaml:"tags" mapstructure:"tags"`
	// Path is the source location of the task ("file:line"), when known.
	Path string `json:"path,omitempty" yaml:"path" mapstructure:"path"`
}

// Arg returns the textual form of a task argument, or "" if unset.
func (t Task) Arg(key string) string {
	v, ok := t.Args[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// TaskResult is a single host's outcome for a task.
type TaskResult struct {
	Host   Host   `json:"host" yaml:"host" mapstructure:"host"`
	Task   Task   `json:"task" yaml:"task" mapstructure:"task"`
	Result Result `json:"result" yaml:"result" mapstructure:"result"`
}

// HostName is a shorthand for r.Host.Name.
func (r TaskResult) HostName() string {
	return r.Host.Name
}
