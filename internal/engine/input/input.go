// Package input turns SDL2 events into viewer actions.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Action is something the viewer should do in response to input.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionResize
	ActionPrev
	ActionNext
)

// Event is a processed input event.
type Event struct {
	Action Action
	Width  int // for ActionResize
	Height int
}

// Input drains the SDL event queue once per frame.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 8),
	}
}

// Update polls SDL events and converts them to actions.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Action: ActionQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Action: ActionResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			// Key repeat is ignored so holding an arrow does not queue
			// a burst of requests.
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			a := keyAction(e.Keysym.Sym)
			if a == ActionNone {
				continue
			}
			i.events = append(i.events, Event{Action: a})
			if a == ActionQuit {
				quit = true
			}
		}
	}

	return quit
}

func keyAction(key sdl.Keycode) Action {
	switch key {
	case sdl.K_LEFT, sdl.K_a:
		return ActionPrev
	case sdl.K_RIGHT, sdl.K_d, sdl.K_SPACE:
		return ActionNext
	case sdl.K_ESCAPE, sdl.K_q:
		return ActionQuit
	default:
		return ActionNone
	}
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
