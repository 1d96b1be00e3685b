package events

// Event is a marker interface for all event types.
type Event interface{}

// Listener is implemented by any component that wants to react to events.
type Listener interface {
	HandleEvent(e Event)
}

// Manager is a minimal synchronous event bus. Sessions publish on it; the
// CLI renderer and bots subscribe. Dispatch happens on the publisher's
// goroutine, under the session lock, so listeners must not call back into
// the session.
type Manager struct {
	listeners []Listener
}

func NewManager() *Manager { return &Manager{} }

func (m *Manager) Subscribe(l Listener) {
	m.listeners = append(m.listeners, l)
}

func (m *Manager) Publish(e Event) {
	for _, l := range m.listeners {
		l.HandleEvent(e)
	}
}

// --- Session lifecycle events ---

type PlayerJoinedEvent struct {
	PlayerName string
	Character  string
}

type PlayerLeftEvent struct {
	PlayerName string
	Character  string
}

type GameStartedEvent struct {
	TurnOrder []string // character names in rotation order
}

type TurnStartEvent struct {
	PlayerName string
	Character  string
}

// --- Action events ---

type MoveEvent struct {
	PlayerName string
	From       string
	To         string
}

type SuggestionEvent struct {
	PlayerName string
	Suspect    string
	Weapon     string
	Room       string
}

// DisprovalEvent fires when a suggestion is disproved. Cards carries the
// matching card names; only the suggester should be shown them.
type DisprovalEvent struct {
	SuggesterName string
	DisproverName string
	Cards         []string
}

type NoDisprovalEvent struct {
	SuggesterName string
}

type AccusationEvent struct {
	PlayerName string
	Suspect    string
	Weapon     string
	Room       string
	Correct    bool
}

type EliminationEvent struct {
	PlayerName string
}

type GameOverEvent struct {
	Winner   string // empty when the game dies out with no correct accusation
	Solution []string
}
