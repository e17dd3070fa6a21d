package liveclass

import (
	"testing"

	"fikrswap-academy-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKeyedMachine() (*Machine, *Dispatcher) {
	keys := NewDispatcher()
	m := NewMachine(&recordingNotifier{}, logger.NopLogger{}, NopFullscreen{}, keys, "Ahmed Hassan")
	return m, keys
}

func TestShortcutKeys(t *testing.T) {
	tests := []struct {
		name  string
		event KeyEvent
		read  func(*SessionState) bool
	}{
		{"m toggles audio", KeyEvent{Key: "m"}, func(s *SessionState) bool { return s.Media.Audio }},
		{"v toggles video", KeyEvent{Key: "v"}, func(s *SessionState) bool { return s.Media.Video }},
		{"h toggles hand raise", KeyEvent{Key: "h"}, func(s *SessionState) bool { return s.Media.HandRaised }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, keys := newKeyedMachine()
			m.Join("class-1")

			keys.Dispatch(tt.event)
			assert.True(t, tt.read(m.State()))

			keys.Dispatch(tt.event)
			assert.False(t, tt.read(m.State()))
		})
	}
}

func TestFullscreenChord(t *testing.T) {
	m, keys := newKeyedMachine()
	m.Join("class-1")

	// The chord asks the platform for fullscreen; the flag follows the
	// change callback as usual.
	keys.Dispatch(KeyEvent{Key: "f", Ctrl: true})
	m.HandleFullscreenChange(true)
	assert.True(t, m.State().Fullscreen)

	keys.Dispatch(KeyEvent{Key: "f", Meta: true})
	m.HandleFullscreenChange(false)
	assert.False(t, m.State().Fullscreen)
}

// A modifier turns the plain letter shortcuts off entirely, so browser
// and OS chords pass through untouched.
func TestModifiedLettersAreInert(t *testing.T) {
	m, keys := newKeyedMachine()
	m.Join("class-1")

	keys.Dispatch(KeyEvent{Key: "m", Ctrl: true})
	keys.Dispatch(KeyEvent{Key: "v", Meta: true})
	keys.Dispatch(KeyEvent{Key: "h", Alt: true})

	state := m.State()
	assert.False(t, state.Media.Audio)
	assert.False(t, state.Media.Video)
	assert.False(t, state.Media.HandRaised)
}

func TestShortcutsInertInTextInput(t *testing.T) {
	m, keys := newKeyedMachine()
	m.Join("class-1")

	keys.Dispatch(KeyEvent{Key: "m", InTextInput: true})
	keys.Dispatch(KeyEvent{Key: "f", Ctrl: true, InTextInput: true})

	state := m.State()
	assert.False(t, state.Media.Audio)
	assert.False(t, state.Fullscreen)
}

func TestUnknownKeysIgnored(t *testing.T) {
	m, keys := newKeyedMachine()
	m.Join("class-1")
	before := *m.State()

	keys.Dispatch(KeyEvent{Key: "x"})
	keys.Dispatch(KeyEvent{Key: "Escape"})

	after := *m.State()
	assert.Equal(t, before.Media, after.Media)
	assert.Equal(t, before.Panels, after.Panels)
}

// Leaving releases the registration, so later keystrokes are dropped by
// the dispatcher instead of reaching a dead machine.
func TestKeysReleasedOnLeave(t *testing.T) {
	m, keys := newKeyedMachine()
	m.Join("class-1")
	m.Leave()

	keys.Dispatch(KeyEvent{Key: "m"})

	m.Join("class-1")
	assert.False(t, m.State().Media.Audio)
}

func TestDispatcherDropsWithoutRegistration(t *testing.T) {
	keys := NewDispatcher()
	// Must not panic.
	keys.Dispatch(KeyEvent{Key: "m"})

	fired := false
	release := keys.Register(func(KeyEvent) { fired = true })
	keys.Dispatch(KeyEvent{Key: "m"})
	require.True(t, fired)

	fired = false
	release()
	keys.Dispatch(KeyEvent{Key: "m"})
	assert.False(t, fired)
}
