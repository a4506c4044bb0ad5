package callback

import (
	"fmt"

	"github.com/aretw0/live/pkg/domain"
	"github.com/aretw0/live/pkg/ports"
)

// BaselineItems renders looped-item outcomes without any specialization.
type BaselineItems struct {
	display   ports.Display
	sanitizer ports.Sanitizer
}

var _ ports.ItemRenderer = (*BaselineItems)(nil)

// NewBaselineItems creates the default item renderer.
func NewBaselineItems(display ports.Display, sanitizer ports.Sanitizer) *BaselineItems {
	return &BaselineItems{display: display, sanitizer: sanitizer}
}

// ItemOk prints "ok: [host] => (item=...)", or "changed: ..." when the item changed.
func (b *BaselineItems) ItemOk(r domain.TaskResult) {
	status, color := "ok", domain.ColorOK
	if r.Result.Bool(domain.KeyChanged) {
		status, color = "changed", domain.ColorChanged
	}
	b.display.Display(fmt.Sprintf("%s: [%s] => (item=%s)", status, r.HostName(), ItemLabel(r.Result)), 0, color)
}

// ItemFailed prints the item label and the remaining dump.
func (b *BaselineItems) ItemFailed(r domain.TaskResult) {
	result := b.sanitizer.HandleException(r.Result)
	dump := DumpResult(result, b.display.Verbosity(), DumpOptions{Strip: b.sanitizer.StripInternalKeys})
	b.display.Display(fmt.Sprintf("failed: [%s] (item=%s) => %s", r.HostName(), ItemLabel(r.Result), dump), 0, domain.ColorError)
}

// ItemSkipped prints the skipped item label.
func (b *BaselineItems) ItemSkipped(r domain.TaskResult) {
	b.display.Display(fmt.Sprintf("skipping: [%s] => (item=%s)", r.HostName(), ItemLabel(r.Result)), 0, domain.ColorSkip)
}

// ItemLabel returns the engine-provided label of a looped item, falling
// back to the item value itself.
func ItemLabel(result domain.Result) string {
	if result.Has(domain.KeyItemLabel) {
		return result.String(domain.KeyItemLabel)
	}
	return result.String(domain.KeyItem)
}
