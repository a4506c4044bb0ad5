package domain

// Color is a tag from the fixed palette the display sink understands.
// The sink decides how (and whether) a tag becomes terminal escapes.
type Color string

const (
	ColorNone        Color = ""
	ColorOK          Color = "ok"
	ColorChanged     Color = "changed"
	ColorError       Color = "error"
	ColorSkip        Color = "skip"
	ColorUnreachable Color = "unreachable"
	ColorHighlight   Color = "highlight"
	ColorDebug       Color = "debug"
	ColorWarn        Color = "warn"
	ColorDeprecate   Color = "deprecate"
)
