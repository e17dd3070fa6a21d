package liveclass

import "sync"

// KeyEvent is one keystroke delivered by the input source.
type KeyEvent struct {
	Key   string
	Ctrl  bool
	Alt   bool
	Shift bool
	Meta  bool
	// InTextInput marks keystrokes typed into a text-entry field.
	// Shortcuts never fire for those.
	InTextInput bool
}

func (e KeyEvent) hasModifier() bool {
	return e.Ctrl || e.Alt || e.Meta
}

// KeySource delivers keystrokes for the duration of one registration.
// The machine registers on join and releases on leave, so shortcuts are
// scoped to an active session rather than guarded by ad hoc checks.
type KeySource interface {
	Register(handler func(KeyEvent)) (release func())
}

// KeySourceFunc adapts a function to the KeySource interface.
type KeySourceFunc func(handler func(KeyEvent)) func()

func (f KeySourceFunc) Register(handler func(KeyEvent)) func() { return f(handler) }

// NopKeySource delivers nothing. The default when no input surface is
// attached.
type NopKeySource struct{}

func (NopKeySource) Register(func(KeyEvent)) func() { return func() {} }

// Dispatcher is a KeySource fed by an external input surface (the REST
// key-event endpoint). While no registration is active every dispatched
// keystroke is dropped, which makes shortcuts inert outside a class
// without any per-key state checks.
type Dispatcher struct {
	mu      sync.Mutex
	handler func(KeyEvent)
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) Register(handler func(KeyEvent)) func() {
	d.mu.Lock()
	d.handler = handler
	d.mu.Unlock()
	return func() {
		d.mu.Lock()
		d.handler = nil
		d.mu.Unlock()
	}
}

func (d *Dispatcher) Dispatch(event KeyEvent) {
	d.mu.Lock()
	handler := d.handler
	d.mu.Unlock()
	if handler != nil {
		handler(event)
	}
}

// handleKey maps shortcuts to toggles: 'm' mute, 'v' video, 'h' hand
// raise, ctrl/cmd+'f' fullscreen. Inert inside text inputs; the
// registration lifetime already guarantees an active session.
func (m *Machine) handleKey(event KeyEvent) {
	if event.InTextInput {
		return
	}

	if event.hasModifier() {
		if (event.Ctrl || event.Meta) && event.Key == "f" {
			m.ToggleFullscreen()
		}
		return
	}

	switch event.Key {
	case "m":
		m.ToggleAudio()
	case "v":
		m.ToggleVideo()
	case "h":
		m.ToggleHandRaise()
	}
}
