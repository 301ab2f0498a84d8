package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
)

// Action is what a key asks the session to do
type Action uint8

const (
	ActionNone Action = iota
	ActionTurn
	ActionQuit
)

// Command is a translated input event
type Command struct {
	Action    Action
	Direction core.Direction // valid for ActionTurn
}

var runeDirections = map[rune]core.Direction{
	'k': core.Up, 'w': core.Up, 'K': core.Up, 'W': core.Up,
	'j': core.Down, 's': core.Down, 'J': core.Down, 'S': core.Down,
	'h': core.Left, 'a': core.Left, 'H': core.Left, 'A': core.Left,
	'l': core.Right, 'd': core.Right, 'L': core.Right, 'D': core.Right,
}

// Translate maps a terminal event to a command
// Arrows, hjkl and wasd steer; q, Esc and Ctrl-C quit; anything else is ignored
func Translate(ev tcell.Event) Command {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return Command{}
	}

	switch key.Key() {
	case tcell.KeyUp:
		return turn(core.Up)
	case tcell.KeyDown:
		return turn(core.Down)
	case tcell.KeyLeft:
		return turn(core.Left)
	case tcell.KeyRight:
		return turn(core.Right)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Action: ActionQuit}
	case tcell.KeyRune:
		r := key.Rune()
		if r == 'q' || r == 'Q' {
			return Command{Action: ActionQuit}
		}
		if d, ok := runeDirections[r]; ok {
			return turn(d)
		}
	}
	return Command{}
}

func turn(d core.Direction) Command {
	return Command{Action: ActionTurn, Direction: d}
}
