package ports

import "github.com/aretw0/live/pkg/domain"

// EventHandler is the inbound lifecycle API called by the orchestration engine.
// Calls are delivered one at a time, in order.
type EventHandler interface {
	OnPlayStart(play *domain.Play)
	OnTaskStart(task domain.Task, isConditional bool)
	OnRunnerOk(result domain.TaskResult)
	OnRunnerFailed(result domain.TaskResult, ignoreErrors bool)
	OnRunnerSkipped(result domain.TaskResult)
	OnRunnerUnreachable(result domain.TaskResult)
	OnItemOk(result domain.TaskResult)
	OnItemFailed(result domain.TaskResult)
	OnItemSkipped(result domain.TaskResult)
	OnFileDiff(result domain.TaskResult)
}
