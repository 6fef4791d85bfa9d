package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-drops/internal/core"
)

// KeyMap holds the in-game key bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Confirm    key.Binding
	Dismiss    key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Character  key.Binding
	Difficulty key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns the bindings shown in the one-line help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Confirm, k.Pause, k.Quit}
}

// FullHelp returns every binding, grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Confirm, k.Dismiss, k.Pause, k.Restart},
		{k.Character, k.Difficulty, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns the default in-game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "jump"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start/continue"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close fact"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Character: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "character"),
		),
		Difficulty: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "difficulty"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Translate maps a key press to an action. Movement keys are reported
// through held instead, since the terminal only sends presses.
func (k KeyMap) Translate(msg tea.KeyMsg) (action core.Action, held core.Key) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Simple(core.ActionQuit), core.KeyNone
	case key.Matches(msg, k.Left):
		return core.Action{}, core.KeyLeft
	case key.Matches(msg, k.Right):
		return core.Action{}, core.KeyRight
	case key.Matches(msg, k.Jump):
		return core.Action{}, core.KeyJump
	case key.Matches(msg, k.Confirm):
		return core.Simple(core.ActionConfirm), core.KeyNone
	case key.Matches(msg, k.Dismiss):
		return core.Simple(core.ActionDismiss), core.KeyNone
	case key.Matches(msg, k.Pause):
		return core.Simple(core.ActionPause), core.KeyNone
	case key.Matches(msg, k.Restart):
		return core.Simple(core.ActionRestart), core.KeyNone
	case key.Matches(msg, k.Character):
		return core.SelectCharacter(""), core.KeyNone
	case key.Matches(msg, k.Difficulty):
		return core.SelectDifficulty(""), core.KeyNone
	case key.Matches(msg, k.Back):
		return core.Simple(core.ActionBack), core.KeyNone
	}
	return core.Action{}, core.KeyNone
}

// MenuKeyMap holds the bindings shared by the picker and the scoreboard.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Difficulty key.Binding
	Scores     key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns the bindings shown in the menu help bar.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Difficulty, k.Scores, k.Quit}
}

// FullHelp returns every menu binding.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Difficulty, k.Scores, k.Back, k.Quit}}
}

// DefaultMenuKeyMap returns the default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Difficulty: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "difficulty"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
