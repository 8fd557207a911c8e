package checkout

import (
	"sync"
	"time"

	"github.com/Madhav-Gupta-28/seafood-backend-go/models"
	"github.com/lucsky/cuid"
)

// Host receives the order of a completed checkout or the id of a cancelled one.
type Host interface {
	OnComplete(order models.Order)
	OnCancel(sessionID string)
}

type session struct {
	wizard   *Wizard
	lastSeen time.Time
}

// Manager owns the open checkout sessions. Sessions are independent of each
// other; each gets its own finalizer and redirect simulator.
type Manager struct {
	host   Host
	deps   FinalizerDeps
	delays RedirectDelays
	newID  func() string
	now    func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

func NewManager(host Host, deps FinalizerDeps, delays RedirectDelays) *Manager {
	if deps.Metrics == nil {
		deps.Metrics = nopMetrics{}
	}
	return &Manager{
		host:     host,
		deps:     deps,
		delays:   delays,
		newID:    cuid.New,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Start opens a checkout of product with a snapshot of settings.
func (m *Manager) Start(product models.Product, settings models.SiteSettings) *Wizard {
	id := m.newID()
	w := NewWizard(id,
		Config{Product: product, Settings: settings},
		NewFinalizer(m.deps),
		NewRedirectSimulator(m.delays, m.deps.Metrics),
	)

	m.mu.Lock()
	m.sessions[id] = &session{wizard: w, lastSeen: m.now()}
	m.mu.Unlock()

	m.deps.Metrics.SessionOpened()
	return w
}

func (m *Manager) Get(id string) (*Wizard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.lastSeen = m.now()
	return s.wizard, nil
}

// Close ends the session and tells the host how it ended.
func (m *Manager) Close(id string) (Outcome, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()
	if !ok {
		return Outcome{}, ErrSessionNotFound
	}
	return m.finish(id, s.wizard), nil
}

func (m *Manager) finish(id string, w *Wizard) Outcome {
	out := w.Close()
	m.deps.Metrics.SessionClosed()
	if out.Kind == OutcomeCompleted {
		m.host.OnComplete(*out.Order)
	} else {
		m.host.OnCancel(id)
	}
	return out
}

// Sweep closes sessions not used for idle and returns how many it closed.
// Sessions with a submission in flight are kept.
func (m *Manager) Sweep(idle time.Duration) int {
	cutoff := m.now().Add(-idle)

	m.mu.Lock()
	expired := make(map[string]*Wizard)
	for id, s := range m.sessions {
		if s.lastSeen.Before(cutoff) && !s.wizard.Submitting() {
			expired[id] = s.wizard
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for id, w := range expired {
		m.finish(id, w)
	}
	return len(expired)
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
