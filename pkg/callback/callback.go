package callback

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/live/pkg/diff"
	"github.com/aretw0/live/pkg/domain"
	"github.com/aretw0/live/pkg/ports"
	"github.com/aretw0/live/pkg/sanitize"
)

// Verbosity tiers used by the renderer.
const (
	tierJSON  = 1
	tierTrace = 3
	tierArgs  = 6
)

// Callback dispatches lifecycle events to the formatting routines.
// It is not safe for concurrent use; events are delivered one at a time.
type Callback struct {
	display    ports.Display
	sanitizer  ports.Sanitizer
	diff       ports.DiffRenderer
	diagnostic ports.DiagnosticDumper
	items      ports.ItemRenderer
	policy     FailurePolicy
	hooks      Hooks
	logger     *slog.Logger

	play *domain.Play
}

var _ ports.EventHandler = (*Callback)(nil)

// New creates a Callback writing to display. A failure policy must be
// chosen with WithFailurePolicy.
func New(display ports.Display, opts ...Option) (*Callback, error) {
	if display == nil {
		return nil, domain.ErrNoDisplay
	}

	c := &Callback{display: display}
	for _, opt := range opts {
		opt(c)
	}

	if c.policy != FailureDetailed && c.policy != FailureBrief {
		return nil, fmt.Errorf("%w: got %q", domain.ErrFailurePolicyUnset, c.policy)
	}
	if c.sanitizer == nil {
		c.sanitizer = sanitize.New(display)
	}
	if c.diff == nil {
		c.diff = diff.New()
	}
	if c.items == nil {
		c.items = NewBaselineItems(display, c.sanitizer)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c, nil
}

// Policy returns the configured failure policy.
func (c *Callback) Policy() FailurePolicy {
	return c.policy
}

// Play returns the current play, or nil before the first play starts.
func (c *Callback) Play() *domain.Play {
	return c.play
}

// OnPlayStart remembers play for the following task banners.
func (c *Callback) OnPlayStart(play *domain.Play) {
	c.play = play
	if play != nil {
		c.logger.Debug("play started", "play", play.Name, "strategy", play.Strategy)
	}
	if c.hooks.OnPlayStart != nil {
		c.hooks.OnPlayStart(play)
	}
}

// OnTaskStart prints the "started" banner unless the task is a debug task or
// the play is free-running.
func (c *Callback) OnTaskStart(task domain.Task, isConditional bool) {
	c.display.Display("    on_task_start", tierTrace, domain.ColorNone)
	c.display.Display(argsJSON(task.Args), tierArgs, domain.ColorNone)

	if task.Action == domain.ActionDebug {
		return
	}
	if !c.play.IsFree() {
		c.display.Display(TaskLabel(task, "started"), 0, domain.ColorHighlight)
	}
}

// OnRunnerOk renders a successful host result.
func (c *Callback) OnRunnerOk(r domain.TaskResult) {
	c.display.Display("    on_runner_ok", tierTrace, domain.ColorNone)

	task := r.Task
	result := c.sanitizer.CleanResults(r.Result, task.Action)
	result = c.sanitizer.HandleWarnings(result)

	status := domain.StatusOK
	switch {
	case task.Action == domain.ActionDebug:
		c.displayDebugMsg(task, result)
	case domain.IsFreeForm(task.Action):
		c.displayCommandGenericMsg(task, result, "SUCCESS", domain.ColorOK)
	default:
		color := domain.ColorOK
		if result.Bool(domain.KeyChanged) {
			color = domain.ColorChanged
		}
		c.display.Display(fmt.Sprintf("%s | SUCCESS => %s", r.HostName(), c.dumpResults(result, 4)), 0, color)
	}

	if result.Bool(domain.KeyChanged) {
		status = domain.StatusChanged
	}
	c.report(r, status, false)
}

// OnRunnerFailed renders a failed host result according to the failure policy.
func (c *Callback) OnRunnerFailed(r domain.TaskResult, ignoreErrors bool) {
	c.display.Display("    on_runner_failed", tierTrace, domain.ColorNone)

	task := r.Task
	result := c.sanitizer.HandleException(r.Result)
	result = c.sanitizer.HandleWarnings(result)

	switch {
	case domain.IsFreeForm(task.Action):
		c.displayCommandGenericMsg(task, result, "FAILED", domain.ColorError)
	case domain.IsNoJSON(task.Action) && !result.Has(domain.KeyModuleStderr):
		c.display.Display(commandGenericMsg(r.HostName(), result, "FAILED"), 0, domain.ColorError)
	case c.policy == FailureBrief:
		c.display.Display(fmt.Sprintf("%s | FAILED! => %s", r.HostName(), c.dumpResults(result, 4)), 0, domain.ColorError)
	default:
		c.display.Display(TaskLabel(task, "FAILED"), 0, domain.ColorError)
		if result.Has(domain.KeyMsg) {
			c.display.Display(result.String(domain.KeyMsg), 0, domain.ColorError)
		}
		if dump := c.dumpResults(result, 4); dump != "" {
			c.display.Display("Task result => "+dump, 0, domain.ColorError)
		}
	}

	if c.policy == FailureDetailed && c.diagnostic != nil {
		c.diagnostic.Dump(task)
	}

	status := domain.StatusFailed
	if ignoreErrors {
		c.display.Display("...ignoring", 0, domain.ColorSkip)
		status = domain.StatusIgnored
	}
	c.report(r, status, false)
}

// OnRunnerSkipped renders a skipped host.
func (c *Callback) OnRunnerSkipped(r domain.TaskResult) {
	c.display.Display(fmt.Sprintf("%s | SKIPPED", r.HostName()), 0, domain.ColorSkip)
	c.report(r, domain.StatusSkipped, false)
}

// OnRunnerUnreachable renders a host the engine could not reach.
func (c *Callback) OnRunnerUnreachable(r domain.TaskResult) {
	c.display.Display(fmt.Sprintf("%s | UNREACHABLE! => %s", r.HostName(), c.dumpResults(r.Result, 4)), 0, domain.ColorUnreachable)
	c.report(r, domain.StatusUnreachable, false)
}

// OnItemOk delegates to the item renderer.
func (c *Callback) OnItemOk(r domain.TaskResult) {
	c.items.ItemOk(r)
	status := domain.StatusOK
	if r.Result.Bool(domain.KeyChanged) {
		status = domain.StatusChanged
	}
	c.report(r, status, true)
}

// OnItemFailed delegates to the item renderer.
func (c *Callback) OnItemFailed(r domain.TaskResult) {
	c.items.ItemFailed(r)
	c.report(r, domain.StatusFailed, true)
}

// OnItemSkipped delegates to the item renderer.
func (c *Callback) OnItemSkipped(r domain.TaskResult) {
	c.items.ItemSkipped(r)
	c.report(r, domain.StatusSkipped, true)
}

// OnFileDiff renders a non-empty diff payload.
func (c *Callback) OnFileDiff(r domain.TaskResult) {
	d, ok := r.Result[domain.KeyDiff]
	if !ok || isEmpty(d) {
		return
	}
	if text := c.diff.Render(d); text != "" {
		c.display.Display(text, 0, domain.ColorNone)
	}
}

func (c *Callback) dumpResults(result domain.Result, indent int) string {
	return DumpResult(result, c.display.Verbosity(), DumpOptions{
		Indent:   indent,
		SortKeys: true,
		Strip:    c.sanitizer.StripInternalKeys,
	})
}

func (c *Callback) report(r domain.TaskResult, status domain.Status, item bool) {
	c.logger.Debug("outcome rendered", "host", r.HostName(), "action", r.Task.Action, "status", status, "item", item)
	if c.hooks.OnOutcome != nil {
		c.hooks.OnOutcome(domain.Outcome{
			Host:   r.HostName(),
			Action: r.Task.Action,
			Status: status,
			Item:   item,
		})
	}
}

func argsJSON(args map[string]any) string {
	if args == nil {
		args = map[string]any{}
	}
	b, err := json.Marshal(args)
	if err != nil {
		return fmt.Sprint(args)
	}
	return string(b)
}

func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case map[string]any:
		return len(val) == 0
	case []any:
		return len(val) == 0
	case bool:
		return !val
	default:
		return false
	}
}
