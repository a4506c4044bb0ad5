/*
Package live renders the lifecycle events of a configuration-management run
as human-readable console text, one line block per event, as the run happens.

An orchestration engine (or a recording of one) calls the callback's On*
methods in order: play start, task start, then one result per host or loop
item. The callback sanitizes each result, picks a layout for the task's
action and outcome, and writes leveled, color-tagged messages to a display.

# Architecture

  - pkg/domain: events, tasks, results and the color palette tags.
  - pkg/ports: the Display sink and the collaborator interfaces
    (sanitizer, diff renderer, diagnostic dumper, item renderer).
  - pkg/callback: the event dispatcher and result renderer.
  - pkg/display, pkg/sanitize, pkg/diff, pkg/diagnostic: default collaborators.
  - pkg/eventstream: NDJSON and YAML envelopes for recorded or remote streams.
  - pkg/adapters: Redis list and HTTP ingestion sources.

# Failure policy

Failed results can be rendered in two ways and the callback refuses to start
until one is chosen. FailureDetailed prints a task header, the failure
message, the remaining result and a diagnostic block. FailureBrief prints a
single "<host> | FAILED! => <dump>" line.

# Usage

	cb, err := live.New(os.Stdout, callback.FailureBrief)
	if err != nil {
		log.Fatal(err)
	}
	cb.OnPlayStart(&domain.Play{Name: "deploy"})
	cb.OnRunnerSkipped(domain.TaskResult{Host: domain.Host{Name: "web1"}})

The live command replays recorded streams, tails a Redis list or accepts
events over HTTP; see cmd/live.
*/
package live
