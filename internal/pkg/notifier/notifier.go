package notifier

// Severity mirrors the toast variants of the web client.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notice is a single user-visible notification (toast-equivalent).
type Notice struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Severity    Severity `json:"severity"`
}

// Notifier delivers user-visible notices. Implemented by the websocket hub
// for connected learners and by the console notifier in development.
// Notices are observational only; callers never depend on delivery.
type Notifier interface {
	Notify(notice Notice)
}

// Func adapts a plain function to the Notifier interface.
type Func func(Notice)

func (f Func) Notify(notice Notice) { f(notice) }

// Nop swallows notices. Useful as a default in tests.
type Nop struct{}

func (Nop) Notify(Notice) {}
