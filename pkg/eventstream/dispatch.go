package eventstream

import (
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/live/pkg/domain"
	"github.com/aretw0/live/pkg/ports"
)

// Dispatch routes ev to the matching handler method.
func Dispatch(h ports.EventHandler, ev domain.Event) error {
	switch ev.Type {
	case domain.EventPlayStart:
		h.OnPlayStart(ev.Play)
	case domain.EventTaskStart:
		h.OnTaskStart(ev.Task, ev.IsConditional)
	case domain.EventRunnerOk:
		h.OnRunnerOk(ev.TaskResult())
	case domain.EventRunnerFailed:
		h.OnRunnerFailed(ev.TaskResult(), ev.IgnoreErrors)
	case domain.EventRunnerSkipped:
		h.OnRunnerSkipped(ev.TaskResult())
	case domain.EventRunnerUnreachable:
		h.OnRunnerUnreachable(ev.TaskResult())
	case domain.EventItemOk:
		h.OnItemOk(ev.TaskResult())
	case domain.EventItemFailed:
		h.OnItemFailed(ev.TaskResult())
	case domain.EventItemSkipped:
		h.OnItemSkipped(ev.TaskResult())
	case domain.EventFileDiff:
		h.OnFileDiff(ev.TaskResult())
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownEvent, ev.Type)
	}
	return nil
}

// Pump reads events from r and dispatches them until io.EOF. Decode errors
// are passed to onError; returning a non-nil error from onError stops the
// pump with that error. Fatal stream errors always stop it.
func Pump(r Reader, h ports.EventHandler, onError func(error) error) (int, error) {
	count := 0
	for {
		ev, err := r.Next()
		if errors.Is(err, io.EOF) {
			return count, nil
		}
		if err == nil {
			err = Dispatch(h, ev)
		}
		if err != nil {
			if errors.Is(err, ErrFatal) {
				return count, err
			}
			if onError == nil {
				return count, err
			}
			if stop := onError(err); stop != nil {
				return count, stop
			}
			continue
		}
		count++
	}
}
