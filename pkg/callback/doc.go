/*
Package callback renders orchestration lifecycle events as leveled console
output.

A Callback receives one call per event (play start, task start, per-host
outcomes, per-item outcomes, file diffs) and writes formatted lines to a
ports.Display. It keeps a single piece of state, the current play, whose
strategy decides whether "started" banners are printed.

Three task kinds get special treatment:

  - free-form commands (raw, script, command, shell) print rc, stdout and stderr;
  - debug prints the requested message or variable;
  - everything else prints a sanitized JSON dump of the result.

Failures are rendered according to an explicit FailurePolicy. With
FailureDetailed an optional ports.DiagnosticDumper adds an external
configuration excerpt after each failure.

Usage:

	cb, err := callback.New(display.New(os.Stdout),
		callback.WithFailurePolicy(callback.FailureDetailed),
	)
	if err != nil {
		return err
	}
	cb.OnPlayStart(&domain.Play{Name: "deploy", Strategy: "linear"})
	cb.OnTaskStart(task, false)
	cb.OnRunnerOk(result)
*/
package callback
