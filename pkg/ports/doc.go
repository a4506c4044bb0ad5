/*
Package ports defines the interfaces between the live renderer and its
collaborators.

The renderer core depends only on these contracts, so the terminal sink,
the result sanitizer and the optional diagnostic dump can be swapped for
fakes in tests or for other frontends.

# Key Interfaces

  - EventHandler: the inbound lifecycle API the orchestration engine calls.
  - Display: the leveled, color-tagged output sink.
  - Sanitizer: presentation-time stripping of engine bookkeeping.
  - DiffRenderer: turns a result's diff payload into text.
  - DiagnosticDumper: optional failure enrichment.
  - ItemRenderer: baseline rendering of looped-item outcomes.
*/
package ports
