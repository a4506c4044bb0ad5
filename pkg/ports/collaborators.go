package ports

import "github.com/aretw0/live/pkg/domain"

// DiffRenderer formats a result's diff payload (a mapping or a list of them).
type DiffRenderer interface {
	Render(diff any) string
}

// DiagnosticDumper enriches a failure report with external context for the task.
type DiagnosticDumper interface {
	Dump(task domain.Task)
}

// ItemRenderer renders per-item outcomes of looped tasks.
type ItemRenderer interface {
	ItemOk(result domain.TaskResult)
	ItemFailed(result domain.TaskResult)
	ItemSkipped(result domain.TaskResult)
}
