package tui

import (
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// KeyLatch approximates key-up events for terminals, which only report
// presses. A key counts as held from its first press until no repeat has
// arrived for a while: the initial window covers the OS repeat delay, the
// repeat window the gap between auto-repeats.
type KeyLatch struct {
	initial time.Duration
	repeat  time.Duration
	held    map[core.Action]time.Time // Release deadline per held key
}

// NewKeyLatch creates a latch with the given release windows.
func NewKeyLatch(initial, repeat time.Duration) *KeyLatch {
	return &KeyLatch{
		initial: initial,
		repeat:  repeat,
		held:    make(map[core.Action]time.Time),
	}
}

// Press records a press at now. Returns true for a fresh press and false
// for an auto-repeat of a key that is still held.
func (l *KeyLatch) Press(a core.Action, now time.Time) bool {
	if deadline, ok := l.held[a]; ok && now.Before(deadline) {
		l.held[a] = now.Add(l.repeat)
		return false
	}
	l.held[a] = now.Add(l.initial)
	return true
}

// Release forgets a key. Returns true if it was held.
func (l *KeyLatch) Release(a core.Action) bool {
	if _, ok := l.held[a]; !ok {
		return false
	}
	delete(l.held, a)
	return true
}

// Expire releases every key whose deadline is not after now and returns
// them in action order.
func (l *KeyLatch) Expire(now time.Time) []core.Action {
	var released []core.Action
	for _, a := range latchedActions {
		deadline, ok := l.held[a]
		if ok && !now.Before(deadline) {
			delete(l.held, a)
			released = append(released, a)
		}
	}
	return released
}

// ReleaseAll releases every held key and returns them in action order.
func (l *KeyLatch) ReleaseAll() []core.Action {
	var released []core.Action
	for _, a := range latchedActions {
		if l.Release(a) {
			released = append(released, a)
		}
	}
	return released
}

// latchedActions are the keys whose release matters to the simulation.
var latchedActions = []core.Action{core.ActionLeft, core.ActionRight}
