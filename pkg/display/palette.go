package display

import "github.com/aretw0/live/pkg/domain"

// Palette maps color tags to terminal color specs ("2", "#ff0000", ...).
type Palette map[domain.Color]string

// DefaultPalette returns the classic basic-ANSI assignments.
func DefaultPalette() Palette {
	return Palette{
		domain.ColorOK:          "2",  // green
		domain.ColorChanged:     "3",  // yellow
		domain.ColorError:       "1",  // red
		domain.ColorSkip:        "6",  // cyan
		domain.ColorUnreachable: "9",  // bright red
		domain.ColorHighlight:   "15", // bright white
		domain.ColorDebug:       "8",  // dark gray
		domain.ColorWarn:        "13", // bright purple
		domain.ColorDeprecate:   "5",  // purple
	}
}

// Merge returns a copy of p with overrides applied. Unknown tags are kept,
// empty specs remove the color.
func (p Palette) Merge(overrides map[string]string) Palette {
	out := make(Palette, len(p)+len(overrides))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range overrides {
		if v == "" {
			delete(out, domain.Color(k))
			continue
		}
		out[domain.Color(k)] = v
	}
	return out
}
