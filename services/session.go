package services

import (
	"sync"

	"github.com/google/uuid"

	"rent-analyzer/models"
)

// SessionManager holds one SessionState per user session, keyed by the
// session cookie token. The map and every state it holds are guarded
// because the HTTP server handles requests concurrently: a page's marker
// fetch can race a form POST from the same browser. Readers get a copy of
// the state taken under the lock; the live record never leaves the manager.
// Scraped listings are shared between copies, which is safe: a Listing is
// immutable once constructed and transitions only swap the pointer.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*models.SessionState
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*models.SessionState)}
}

// Create starts a fresh session and returns its token plus a copy of the
// initial state.
func (m *SessionManager) Create() (string, *models.SessionState) {
	token := uuid.NewString()
	state := &models.SessionState{Status: models.StatusEmpty}

	m.mu.Lock()
	m.sessions[token] = state
	m.mu.Unlock()

	snapshot := *state
	return token, &snapshot
}

// Get returns a copy of the state for token, or nil for an unknown token.
func (m *SessionManager) Get(token string) *models.SessionState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.sessions[token]
	if !ok {
		return nil
	}
	snapshot := *state
	return &snapshot
}

// ApplyFetch records a successful listing fetch: the URL and scraped record
// replace any previous ones, and any earlier analysis is invalidated.
func (m *SessionManager) ApplyFetch(token, url string, scraped *models.Listing) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.sessions[token]
	if !ok {
		return
	}
	state.URL = url
	state.Scraped = scraped
	state.FetchError = ""
	state.Status = models.StatusAwaitingInput
}

// ApplyFetchError surfaces a fetch failure without touching the rest of the
// state: no partial update, the previous URL and scraped data stay active.
func (m *SessionManager) ApplyFetchError(token, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if state, ok := m.sessions[token]; ok {
		state.FetchError = message
	}
}

// ApplyAnalysis stores the outcome of one analysis run.
func (m *SessionManager) ApplyAnalysis(token string, predicted, actual, latitude, longitude float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.sessions[token]
	if !ok {
		return
	}
	state.Predicted = predicted
	state.Actual = actual
	state.Diff = actual - predicted
	state.Latitude = latitude
	state.Longitude = longitude
	state.FetchError = ""
	state.Status = models.StatusAnalyzed
}

// ClearURL reverts the active listing source to the manual inputs. The
// scraped record is kept but stays inert until a new URL is submitted.
func (m *SessionManager) ClearURL(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if state, ok := m.sessions[token]; ok {
		state.URL = ""
		state.FetchError = ""
	}
}
