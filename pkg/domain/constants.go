package domain

// Action names with special rendering rules.
const (
	ActionDebug      = "debug"
	ActionRaw        = "raw"
	ActionScript     = "script"
	ActionCommand    = "command"
	ActionShell      = "shell"
	ActionWinCommand = "win_command"
	ActionWinShell   = "win_shell"
)

// StrategyFree is the free-running play strategy: hosts do not wait for each
// other, so per-task "started" banners would interleave meaninglessly.
const StrategyFree = "free"

// Result keys read by the renderer.
const (
	KeyRC           = "rc"
	KeyStdout       = "stdout"
	KeyStderr       = "stderr"
	KeyModuleStderr = "module_stderr"
	KeyChanged      = "changed"
	KeyFailed       = "failed"
	KeySkipped      = "skipped"
	KeySkipReason   = "skip_reason"
	KeyMsg          = "msg"
	KeyDiff         = "diff"
	KeyInvocation   = "invocation"
	KeyException    = "exception"
	KeyWarnings     = "warnings"
	KeyDeprecations = "deprecations"
	KeyItem         = "item"
	KeyLiveStdout   = "live_stdout"

	// InternalPrefix marks engine bookkeeping keys that are never displayed.
	InternalPrefix = "_ansible_"

	KeyVerboseAlways = InternalPrefix + "verbose_always"
	KeyItemLabel     = InternalPrefix + "item_label"
)

// Task argument keys.
const (
	ArgRawParams = "_raw_params"
	ArgMsg       = "msg"
	ArgVar       = "var"
)

// NotDefinedMarker is the text the engine substitutes for an unresolved variable.
const NotDefinedMarker = "IS NOT DEFINED"

// FreeFormActions accept a single unstructured string argument.
var FreeFormActions = []string{ActionRaw, ActionScript, ActionCommand, ActionShell}

// NoJSONActions never emit structured JSON on failure.
var NoJSONActions = []string{ActionCommand, ActionWinCommand, ActionShell, ActionWinShell, ActionRaw}

// IsFreeForm reports whether action takes a free-form argument string.
func IsFreeForm(action string) bool {
	return contains(FreeFormActions, action)
}

// IsNoJSON reports whether action is known to never emit structured JSON.
func IsNoJSON(action string) bool {
	return contains(NoJSONActions, action)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
