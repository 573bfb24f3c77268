package core

import "sync/atomic"

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends map their native key events onto actions.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H
	ActionRight          // Right arrow, D, L
	ActionPause          // P, Escape
	ActionRestart        // R, after game over
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputState holds the two paddle direction requests.
// Fields are atomic so a key-reader goroutine and the ticking goroutine can
// share one value without further locking.
type InputState struct {
	left  atomic.Bool
	right atomic.Bool
}

// NewInputState creates an InputState with no direction held.
func NewInputState() *InputState {
	return &InputState{}
}

// SetLeft records whether moving left is requested.
func (s *InputState) SetLeft(held bool) {
	s.left.Store(held)
}

// SetRight records whether moving right is requested.
func (s *InputState) SetRight(held bool) {
	s.right.Store(held)
}

// Left reports whether moving left is requested.
func (s *InputState) Left() bool {
	return s.left.Load()
}

// Right reports whether moving right is requested.
func (s *InputState) Right() bool {
	return s.right.Load()
}

// Set updates the flag belonging to a direction action. Other actions are ignored.
func (s *InputState) Set(a Action, held bool) {
	switch a {
	case ActionLeft:
		s.SetLeft(held)
	case ActionRight:
		s.SetRight(held)
	}
}

// Reset releases both directions.
func (s *InputState) Reset() {
	s.left.Store(false)
	s.right.Store(false)
}

// KeyHold emulates key release for terminals, which only report presses.
// A press holds its direction for a number of ticks; key repeat renews it.
// Pressing one direction releases the other.
//
// KeyHold is not safe for concurrent use; drive it from the ticking goroutine.
type KeyHold struct {
	state     *InputState
	holdTicks int
	left      int
	right     int
}

// NewKeyHold creates a KeyHold writing into state. holdTicks < 1 is treated as 1.
func NewKeyHold(state *InputState, holdTicks int) *KeyHold {
	return &KeyHold{state: state, holdTicks: max(holdTicks, 1)}
}

// Press marks a direction as held for the configured number of ticks.
func (h *KeyHold) Press(a Action) {
	switch a {
	case ActionLeft:
		h.left = h.holdTicks
		h.right = 0
	case ActionRight:
		h.right = h.holdTicks
		h.left = 0
	default:
		return
	}
	h.sync()
}

// Tick consumes one tick of hold time. Call it after the game step.
func (h *KeyHold) Tick() {
	if h.left > 0 {
		h.left--
	}
	if h.right > 0 {
		h.right--
	}
	h.sync()
}

// Release drops both directions immediately.
func (h *KeyHold) Release() {
	h.left, h.right = 0, 0
	h.state.Reset()
}

func (h *KeyHold) sync() {
	h.state.SetLeft(h.left > 0)
	h.state.SetRight(h.right > 0)
}
