package liveclass

import (
	"strings"
	"sync"
	"time"

	"fikrswap-academy-be/internal/pkg/logger"
	"fikrswap-academy-be/internal/pkg/notifier"

	"github.com/google/uuid"
)

// MediaState holds the local media flags for one class membership.
type MediaState struct {
	Audio       bool `json:"audio"`
	Video       bool `json:"video"`
	ScreenShare bool `json:"screen_share"`
	HandRaised  bool `json:"hand_raised"`
}

// PanelState holds the side-panel visibility flags. Panels are
// independent; both may be open at once.
type PanelState struct {
	ParticipantsOpen bool `json:"participants_open"`
	ChatOpen         bool `json:"chat_open"`
}

// Participant is a remote party's roster entry. Supplied by an external
// roster source; the machine renders it, never mutates it.
type Participant struct {
	Id          string     `json:"id"`
	DisplayName string     `json:"display_name"`
	AvatarURL   string     `json:"avatar_url,omitempty"`
	Media       MediaState `json:"media"`
}

// ChatMessage is one entry of the session's append-only chat log.
type ChatMessage struct {
	Id        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
	IsSelf    bool      `json:"is_self"`
}

// SessionState is the full in-class record. It exists only while the
// learner is in a class; leaving discards it wholesale so rejoining
// always starts from defaults.
type SessionState struct {
	ClassId    string        `json:"class_id"`
	Media      MediaState    `json:"media"`
	Panels     PanelState    `json:"panels"`
	Fullscreen bool          `json:"fullscreen"`
	Compose    string        `json:"compose"`
	Messages   []ChatMessage `json:"messages"`
	Roster     []Participant `json:"roster"`
}

// FullscreenController is the platform fullscreen capability. Request
// may be denied; the machine's flag only moves on the controller's
// change callbacks, never on the request itself.
type FullscreenController interface {
	Request() error
	Exit() error
}

// NopFullscreen accepts every request without any platform effect.
type NopFullscreen struct{}

func (NopFullscreen) Request() error { return nil }
func (NopFullscreen) Exit() error    { return nil }

// Machine manages a single learner's participation in one live class.
// NotInClass is represented by a nil state record; every toggle is a
// no-op in that state.
type Machine struct {
	notifier   notifier.Notifier
	logger     logger.ILogger
	fullscreen FullscreenController
	keys       KeySource
	localName  string

	mu          sync.Mutex
	state       *SessionState
	releaseKeys func()
}

func NewMachine(n notifier.Notifier, log logger.ILogger, fs FullscreenController, keys KeySource, localName string) *Machine {
	if fs == nil {
		fs = NopFullscreen{}
	}
	if keys == nil {
		keys = NopKeySource{}
	}
	return &Machine{
		notifier:   n,
		logger:     log,
		fullscreen: fs,
		keys:       keys,
		localName:  localName,
	}
}

// Join enters the class with every flag at its default: media off, hand
// lowered, chat panel open, participants panel closed, not fullscreen.
// Joining while already in a class is a no-op.
func (m *Machine) Join(classId string) {
	m.mu.Lock()
	if m.state != nil {
		m.mu.Unlock()
		return
	}
	m.state = &SessionState{
		ClassId: classId,
		Panels:  PanelState{ChatOpen: true},
	}
	m.releaseKeys = m.keys.Register(m.handleKey)
	m.mu.Unlock()

	m.notifier.Notify(notifier.Notice{
		Title:    "Joined class",
		Severity: notifier.SeveritySuccess,
	})
}

// Leave discards the whole in-class record and releases the keyboard
// registration. No-op while not in a class.
func (m *Machine) Leave() {
	m.mu.Lock()
	if m.state == nil {
		m.mu.Unlock()
		return
	}
	m.state = nil
	release := m.releaseKeys
	m.releaseKeys = nil
	m.mu.Unlock()

	if release != nil {
		release()
	}
	m.notifier.Notify(notifier.Notice{
		Title:    "Left class",
		Severity: notifier.SeverityInfo,
	})
}

func (m *Machine) InClass() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state != nil
}

// State returns a snapshot of the in-class record, or nil when not in
// a class.
func (m *Machine) State() *SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return nil
	}
	snapshot := *m.state
	snapshot.Messages = append([]ChatMessage(nil), m.state.Messages...)
	snapshot.Roster = append([]Participant(nil), m.state.Roster...)
	return &snapshot
}

func (m *Machine) ToggleAudio() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return
	}
	m.state.Media.Audio = !m.state.Media.Audio
}

func (m *Machine) ToggleVideo() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return
	}
	m.state.Media.Video = !m.state.Media.Video
}

// ToggleScreenShare flips the flag only. No capture API is involved;
// real media transport belongs to an external collaborator.
func (m *Machine) ToggleScreenShare() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return
	}
	m.state.Media.ScreenShare = !m.state.Media.ScreenShare
}

func (m *Machine) ToggleHandRaise() {
	m.mu.Lock()
	if m.state == nil {
		m.mu.Unlock()
		return
	}
	m.state.Media.HandRaised = !m.state.Media.HandRaised
	raised := m.state.Media.HandRaised
	m.mu.Unlock()

	if raised {
		m.notifier.Notify(notifier.Notice{
			Title:    "Hand raised",
			Severity: notifier.SeverityInfo,
		})
	} else {
		m.notifier.Notify(notifier.Notice{
			Title:    "Hand lowered",
			Severity: notifier.SeverityInfo,
		})
	}
}

func (m *Machine) ToggleParticipantsPanel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return
	}
	m.state.Panels.ParticipantsOpen = !m.state.Panels.ParticipantsOpen
}

func (m *Machine) ToggleChatPanel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return
	}
	m.state.Panels.ChatOpen = !m.state.Panels.ChatOpen
}

// ToggleFullscreen asks the platform to enter or exit fullscreen. The
// flag itself only moves when the platform reports the change via
// HandleFullscreenChange, so platform-level exits (outside this
// component's control) stay in sync. A denied request surfaces a notice
// and leaves the flag alone.
func (m *Machine) ToggleFullscreen() {
	m.mu.Lock()
	if m.state == nil {
		m.mu.Unlock()
		return
	}
	active := m.state.Fullscreen
	m.mu.Unlock()

	var err error
	if active {
		err = m.fullscreen.Exit()
	} else {
		err = m.fullscreen.Request()
	}
	if err != nil {
		m.logger.Warn("liveclass", "fullscreen request denied", map[string]interface{}{
			"error": err.Error(),
		})
		m.notifier.Notify(notifier.Notice{
			Title:       "Fullscreen unavailable",
			Description: err.Error(),
			Severity:    notifier.SeverityError,
		})
	}
}

// HandleFullscreenChange mirrors the platform's fullscreen state into
// the session record. Called for every platform change notification,
// whether or not this machine initiated it.
func (m *Machine) HandleFullscreenChange(active bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return
	}
	m.state.Fullscreen = active
}

func (m *Machine) SetCompose(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return
	}
	m.state.Compose = text
}

// SendChatMessage appends a self-authored message and clears the
// compose buffer. Whitespace-only text is dropped without touching the
// log. Delivery to other participants is owned by an external
// messaging collaborator.
func (m *Machine) SendChatMessage(text string) *ChatMessage {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return nil
	}

	msg := ChatMessage{
		Id:        uuid.New(),
		Author:    m.localName,
		Body:      trimmed,
		Timestamp: time.Now(),
		IsSelf:    true,
	}
	m.state.Messages = append(m.state.Messages, msg)
	m.state.Compose = ""
	return &msg
}

// LearnerSession pairs a machine with the key dispatcher feeding it, so
// the transport layer can route keystrokes to the right learner.
type LearnerSession struct {
	Machine *Machine
	Keys    *Dispatcher
}

func NewLearnerSession(n notifier.Notifier, log logger.ILogger, fs FullscreenController, localName string) *LearnerSession {
	keys := NewDispatcher()
	return &LearnerSession{
		Machine: NewMachine(n, log, fs, keys, localName),
		Keys:    keys,
	}
}

// SetRoster replaces the displayed roster with entries from the
// external roster source.
func (m *Machine) SetRoster(roster []Participant) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return
	}
	m.state.Roster = append([]Participant(nil), roster...)
}
