package dispatches

type State int

const (
	StateIdle State = iota
	StateConfirmPending
	StateHookRun
	StateRendering
	StateDispatched
	StateAborted
	StateFailed
)

var stateNames = map[State]string{
	StateIdle:           "idle",
	StateConfirmPending: "confirm_pending",
	StateHookRun:        "hook_run",
	StateRendering:      "rendering",
	StateDispatched:     "dispatched",
	StateAborted:        "aborted",
	StateFailed:         "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
