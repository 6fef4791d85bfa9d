package core

// ActionKind identifies a semantic input action, abstracted from physical
// key presses and mouse events.
type ActionKind int

const (
	ActionNone             ActionKind = iota
	ActionKeyDown                     // a movement key became held
	ActionKeyUp                       // a movement key was released
	ActionPointerDown                 // click or tap at (X, Y)
	ActionStart                       // leave the title screen
	ActionRestart                     // R key - start a fresh run
	ActionConfirm                     // Enter - dismiss fact, advance zone, start
	ActionDismiss                     // close the fact card early
	ActionSelectCharacter             // choose a character by ID
	ActionSelectDifficulty            // choose a difficulty preset by ID
	ActionPause                       // P - pause/unpause
	ActionBack                        // B, Escape - go back to menu
	ActionQuit                        // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "None"
	case ActionKeyDown:
		return "KeyDown"
	case ActionKeyUp:
		return "KeyUp"
	case ActionPointerDown:
		return "PointerDown"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionDismiss:
		return "Dismiss"
	case ActionSelectCharacter:
		return "SelectCharacter"
	case ActionSelectDifficulty:
		return "SelectDifficulty"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Key is a movement key whose held state is tracked between ticks.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyJump
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyJump:
		return "Jump"
	default:
		return "None"
	}
}

// Action is a single queued input. Only the fields relevant to Kind are set:
// Key for key actions, X/Y for pointer actions and ID for selections.
type Action struct {
	Kind ActionKind
	Key  Key
	X, Y float64
	ID   string
}

// Simple builds an action that carries no payload.
func Simple(kind ActionKind) Action {
	return Action{Kind: kind}
}

// KeyDown builds a key-held action.
func KeyDown(k Key) Action {
	return Action{Kind: ActionKeyDown, Key: k}
}

// KeyUp builds a key-released action.
func KeyUp(k Key) Action {
	return Action{Kind: ActionKeyUp, Key: k}
}

// PointerDown builds a click action at (x, y).
func PointerDown(x, y float64) Action {
	return Action{Kind: ActionPointerDown, X: x, Y: y}
}

// SelectCharacter builds a character selection action.
func SelectCharacter(id string) Action {
	return Action{Kind: ActionSelectCharacter, ID: id}
}

// SelectDifficulty builds a difficulty selection action.
func SelectDifficulty(id string) Action {
	return Action{Kind: ActionSelectDifficulty, ID: id}
}

// InputFrame is the ordered queue of actions collected between two ticks.
// Order is preserved so that a click followed by a restart is replayed the
// same way every time.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends an action to the frame.
func (f *InputFrame) Push(a Action) {
	if a.Kind == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Set appends a payload-free action.
func (f *InputFrame) Set(kind ActionKind) {
	f.Push(Simple(kind))
}

// Has returns true if an action of the given kind was queued this frame.
func (f InputFrame) Has(kind ActionKind) bool {
	for _, a := range f.actions {
		if a.Kind == kind {
			return true
		}
	}
	return false
}

// Actions returns the queued actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Len returns the number of queued actions.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear empties the frame for the next tick, keeping the allocation.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	if len(f.actions) == 0 {
		return InputFrame{}
	}
	clone := make([]Action, len(f.actions))
	copy(clone, f.actions)
	return InputFrame{actions: clone}
}
