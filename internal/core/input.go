package core

// Action represents a viewer intent, abstracted from physical key presses so
// the window and terminal backends share one vocabulary.
type Action int

const (
	ActionNone      Action = iota
	ActionQuit             // Q, Ctrl+C, window close
	ActionComplete         // Space - draw the remaining edges now
	ActionResetView        // R - zoom 1, pan 0
	ActionZoomIn           // + / = - zoom at the surface center
	ActionZoomOut          // - - zoom out at the surface center
	ActionPanLeft          // Left arrow
	ActionPanRight         // Right arrow
	ActionPanUp            // Up arrow
	ActionPanDown          // Down arrow
	ActionNextLevel        // Esc, N, Enter - close this level and show the next one
	ActionSnapshot         // S - save the current frame as PNG
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionQuit:
		return "Quit"
	case ActionComplete:
		return "Complete"
	case ActionResetView:
		return "ResetView"
	case ActionZoomIn:
		return "ZoomIn"
	case ActionZoomOut:
		return "ZoomOut"
	case ActionPanLeft:
		return "PanLeft"
	case ActionPanRight:
		return "PanRight"
	case ActionPanUp:
		return "PanUp"
	case ActionPanDown:
		return "PanDown"
	case ActionNextLevel:
		return "NextLevel"
	case ActionSnapshot:
		return "Snapshot"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one playback tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
