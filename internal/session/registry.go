package session

import (
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Registry owns every live session, keyed by game ID. It replaces the
// process-wide singleton the game otherwise tends toward: the transport
// layer constructs one Registry and passes session handles into the core.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	log      *logrus.Logger
	rng      *rand.Rand
}

// NewRegistry creates an empty registry. The rng seeds each session's
// private random source.
func NewRegistry(log *logrus.Logger, rng *rand.Rand) *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*Session),
		log:      log,
		rng:      rng,
	}
}

// Create builds a new open session under a fresh game ID.
func (r *Registry) Create() *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New()
	s := New(id, r.log, rand.New(rand.NewSource(r.rng.Int63())))
	r.sessions[id] = s
	r.log.WithField("game", id).Info("session created")
	return s
}

// Get retrieves a session by game ID.
func (r *Registry) Get(id uuid.UUID) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Delete drops a session from the registry.
func (r *Registry) Delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	r.log.WithField("game", id).Info("session deleted")
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
