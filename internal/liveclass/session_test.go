package liveclass

import (
	"errors"
	"testing"

	"fikrswap-academy-be/internal/pkg/logger"
	"fikrswap-academy-be/internal/pkg/notifier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	notices []notifier.Notice
}

func (r *recordingNotifier) Notify(n notifier.Notice) { r.notices = append(r.notices, n) }

func (r *recordingNotifier) lastTitle() string {
	if len(r.notices) == 0 {
		return ""
	}
	return r.notices[len(r.notices)-1].Title
}

// denyingFullscreen rejects every request, simulating a platform
// permission denial.
type denyingFullscreen struct{}

func (denyingFullscreen) Request() error { return errors.New("permission denied") }
func (denyingFullscreen) Exit() error    { return errors.New("permission denied") }

func newTestMachine() (*Machine, *recordingNotifier) {
	n := &recordingNotifier{}
	return NewMachine(n, logger.NopLogger{}, NopFullscreen{}, nil, "Ahmed Hassan"), n
}

func TestJoinStartsFromDefaults(t *testing.T) {
	m, n := newTestMachine()
	m.Join("class-1")

	state := m.State()
	require.NotNil(t, state)
	assert.Equal(t, "class-1", state.ClassId)
	assert.False(t, state.Media.Audio)
	assert.False(t, state.Media.Video)
	assert.False(t, state.Media.ScreenShare)
	assert.False(t, state.Media.HandRaised)
	assert.True(t, state.Panels.ChatOpen)
	assert.False(t, state.Panels.ParticipantsOpen)
	assert.False(t, state.Fullscreen)
	assert.Empty(t, state.Messages)
	assert.Equal(t, "Joined class", n.lastTitle())
}

func TestLeaveDiscardsEverything(t *testing.T) {
	m, n := newTestMachine()
	m.Join("class-1")
	m.ToggleVideo()
	m.ToggleHandRaise()
	m.SendChatMessage("hello everyone")

	m.Leave()

	assert.False(t, m.InClass())
	assert.Nil(t, m.State())
	assert.Equal(t, "Left class", n.lastTitle())
}

// Session state never survives a leave. A fresh join starts from
// defaults regardless of what the previous membership toggled.
func TestRejoinResetsToDefaults(t *testing.T) {
	m, _ := newTestMachine()
	m.Join("class-1")
	m.ToggleVideo()
	m.ToggleAudio()
	m.ToggleParticipantsPanel()
	require.True(t, m.State().Media.Video)

	m.Leave()
	m.Join("class-1")

	state := m.State()
	require.NotNil(t, state)
	assert.False(t, state.Media.Video)
	assert.False(t, state.Media.Audio)
	assert.False(t, state.Panels.ParticipantsOpen)
	assert.True(t, state.Panels.ChatOpen)
}

func TestJoinWhileInClassIsNoop(t *testing.T) {
	m, _ := newTestMachine()
	m.Join("class-1")
	m.ToggleVideo()

	m.Join("class-2")

	state := m.State()
	assert.Equal(t, "class-1", state.ClassId)
	assert.True(t, state.Media.Video)
}

// Each toggle applied twice returns its flag to the starting value
// without touching any other flag.
func TestToggleInvolution(t *testing.T) {
	toggles := []struct {
		name   string
		invoke func(*Machine)
		read   func(*SessionState) bool
	}{
		{"audio", (*Machine).ToggleAudio, func(s *SessionState) bool { return s.Media.Audio }},
		{"video", (*Machine).ToggleVideo, func(s *SessionState) bool { return s.Media.Video }},
		{"screen share", (*Machine).ToggleScreenShare, func(s *SessionState) bool { return s.Media.ScreenShare }},
		{"hand raise", (*Machine).ToggleHandRaise, func(s *SessionState) bool { return s.Media.HandRaised }},
		{"participants panel", (*Machine).ToggleParticipantsPanel, func(s *SessionState) bool { return s.Panels.ParticipantsOpen }},
		{"chat panel", (*Machine).ToggleChatPanel, func(s *SessionState) bool { return s.Panels.ChatOpen }},
	}

	for _, tt := range toggles {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestMachine()
			m.Join("class-1")
			before := *m.State()

			tt.invoke(m)
			after := *m.State()
			assert.NotEqual(t, tt.read(&before), tt.read(&after), "first toggle must flip the flag")

			tt.invoke(m)
			restored := *m.State()
			assert.Equal(t, before.Media, restored.Media)
			assert.Equal(t, before.Panels, restored.Panels)
		})
	}
}

func TestTogglesAreNoopsOutsideClass(t *testing.T) {
	m, _ := newTestMachine()

	m.ToggleAudio()
	m.ToggleVideo()
	m.ToggleScreenShare()
	m.ToggleHandRaise()
	m.ToggleParticipantsPanel()
	m.ToggleChatPanel()
	m.ToggleFullscreen()
	m.HandleFullscreenChange(true)
	assert.Nil(t, m.SendChatMessage("hello"))

	assert.Nil(t, m.State())
}

func TestHandRaiseNotices(t *testing.T) {
	m, n := newTestMachine()
	m.Join("class-1")

	m.ToggleHandRaise()
	assert.Equal(t, "Hand raised", n.lastTitle())

	m.ToggleHandRaise()
	assert.Equal(t, "Hand lowered", n.lastTitle())
}

// The fullscreen flag follows the platform's change callbacks, not the
// request itself.
func TestFullscreenMirrorsPlatform(t *testing.T) {
	m, _ := newTestMachine()
	m.Join("class-1")

	m.ToggleFullscreen()
	assert.False(t, m.State().Fullscreen, "flag waits for the platform callback")

	m.HandleFullscreenChange(true)
	assert.True(t, m.State().Fullscreen)

	// Platform-initiated exit, e.g. the user pressed Escape.
	m.HandleFullscreenChange(false)
	assert.False(t, m.State().Fullscreen)
}

func TestFullscreenDenied(t *testing.T) {
	n := &recordingNotifier{}
	m := NewMachine(n, logger.NopLogger{}, denyingFullscreen{}, nil, "Ahmed Hassan")
	m.Join("class-1")

	m.ToggleFullscreen()

	assert.False(t, m.State().Fullscreen)
	require.NotEmpty(t, n.notices)
	last := n.notices[len(n.notices)-1]
	assert.Equal(t, "Fullscreen unavailable", last.Title)
	assert.Equal(t, notifier.SeverityError, last.Severity)
}

func TestSendChatMessage(t *testing.T) {
	m, _ := newTestMachine()
	m.Join("class-1")
	m.SetCompose("  hello  ")

	msg := m.SendChatMessage("  hello  ")

	require.NotNil(t, msg)
	assert.Equal(t, "hello", msg.Body)
	assert.Equal(t, "Ahmed Hassan", msg.Author)
	assert.True(t, msg.IsSelf)

	state := m.State()
	require.Len(t, state.Messages, 1)
	assert.Equal(t, "hello", state.Messages[0].Body)
	assert.Empty(t, state.Compose, "sending clears the compose buffer")
}

func TestSendChatMessageWhitespaceOnly(t *testing.T) {
	m, _ := newTestMachine()
	m.Join("class-1")

	for _, text := range []string{"", "   ", "\n\t "} {
		assert.Nil(t, m.SendChatMessage(text))
	}
	assert.Empty(t, m.State().Messages)
}

func TestStateIsSnapshot(t *testing.T) {
	m, _ := newTestMachine()
	m.Join("class-1")
	m.SendChatMessage("first")

	snapshot := m.State()
	snapshot.Media.Video = true
	snapshot.Messages[0].Body = "tampered"

	state := m.State()
	assert.False(t, state.Media.Video)
	assert.Equal(t, "first", state.Messages[0].Body)
}

func TestSetRoster(t *testing.T) {
	m, _ := newTestMachine()
	m.Join("class-1")

	roster := []Participant{
		{Id: "p1", DisplayName: "Fatima Ali"},
		{Id: "p2", DisplayName: "Mohammad Khan", Media: MediaState{Audio: true}},
	}
	m.SetRoster(roster)

	state := m.State()
	require.Len(t, state.Roster, 2)
	assert.Equal(t, "Fatima Ali", state.Roster[0].DisplayName)
	assert.True(t, state.Roster[1].Media.Audio)
}
