/*
Package domain contains the value types the live renderer consumes from an
orchestration engine.

The types are plain records: the engine owns the authoritative objects and
hands copies to the renderer, which reads them and never writes back. Any
presentation-time stripping of a Result happens on a Clone.

# Key Entities

  - Play: a group of tasks run with a given strategy (linear, free, ...).
  - Task: the declared unit of work (action, name, args, tags, path).
  - Result: the free-form mapping an executed action reported for one host.
  - TaskResult: the per-host outcome envelope (Host + Task + Result).
  - Color: the fixed palette the display sink understands.
*/
package domain
