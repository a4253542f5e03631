// Package runner hosts live wizard instances for HTTP clients.
package runner

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/justsurfingit/jobboard/internal/session"
	"github.com/justsurfingit/jobboard/internal/wizard"
)

var ErrWizardNotFound = errors.New("wizard not found")

// Builder creates a wizard for a flow name.
type Builder interface {
	Build(flow string, auth wizard.Authenticator) (*wizard.Wizard, error)
}

type entry struct {
	mu      sync.Mutex
	wizard  *wizard.Wizard
	session *session.Context
	sub     session.Subscription
	touched atomic.Int64 // unix nanos; read by cleanup without mu
}

func (e *entry) touch(t time.Time) { e.touched.Store(t.UnixNano()) }

// WizardManager owns every live wizard. Each wizard is driven by one
// command at a time; different wizards run independently.
type WizardManager struct {
	mu      sync.Mutex
	wizards map[string]*entry
	builder Builder
	ttl     time.Duration
	now     func() time.Time
	done    chan struct{}
	once    sync.Once
}

func NewWizardManager(b Builder, ttl time.Duration) *WizardManager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	m := &WizardManager{
		wizards: make(map[string]*entry),
		builder: b,
		ttl:     ttl,
		now:     time.Now,
		done:    make(chan struct{}),
	}

	go m.cleanupLoop()

	return m
}

func (m *WizardManager) Close() {
	m.once.Do(func() { close(m.done) })
}

func (m *WizardManager) cleanupLoop() {
	interval := m.ttl / 4
	if interval > 5*time.Minute {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.cleanupIdle()
		case <-m.done:
			return
		}
	}
}

// cleanupIdle drops wizards nobody touched within the TTL. This is the
// only way an abandoned wizard goes away.
func (m *WizardManager) cleanupIdle() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-m.ttl).UnixNano()
	removed := 0
	for id, e := range m.wizards {
		if e.touched.Load() < cutoff {
			e.session.Unsubscribe(e.sub)
			delete(m.wizards, id)
			removed++
		}
	}
	if removed > 0 {
		log.Printf("🧹 Evicted %d idle wizards", removed)
	}
	return removed
}

// Create starts a new wizard for flow and returns its id.
func (m *WizardManager) Create(flow, token, userID string) (string, wizard.View, error) {
	sess := session.New()
	if token != "" {
		sess.SignIn(token, userID)
	}

	w, err := m.builder.Build(flow, sess)
	if err != nil {
		return "", wizard.View{}, err
	}

	e := &entry{wizard: w, session: sess}
	e.touch(m.now())
	e.sub = sess.Subscribe(func(st session.State) {
		if !w.Definition().RequiresAuth || w.Submitted() {
			return
		}
		if st.Authenticated {
			if w.Banner() == wizard.ErrUnauthenticated.Error() {
				w.SetBanner("")
			}
			return
		}
		w.SetBanner(wizard.ErrUnauthenticated.Error())
	})

	id := uuid.New().String()
	m.mu.Lock()
	m.wizards[id] = e
	m.mu.Unlock()

	log.Printf("[Wizard %s] 🆕 %s started", short(id), flow)
	return id, w.View(), nil
}

func (m *WizardManager) lookup(id string) (*entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.wizards[id]
	if !ok {
		return nil, ErrWizardNotFound
	}
	return e, nil
}

func (m *WizardManager) View(id string) (wizard.View, error) {
	e, err := m.lookup(id)
	if err != nil {
		return wizard.View{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.wizard.View(), nil
}

// Dispatch applies cmds in order and stops at the first error. A
// non-empty token signs the wizard's session in before the commands run.
// The returned view reflects the state after the last applied command.
func (m *WizardManager) Dispatch(ctx context.Context, id, token, userID string, cmds ...wizard.Command) (wizard.View, error) {
	e, err := m.lookup(id)
	if err != nil {
		return wizard.View{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.touch(m.now())
	if token != "" {
		e.session.SignIn(token, userID)
	}
	ctx = session.NewContext(ctx, e.session)

	for _, cmd := range cmds {
		if err := e.wizard.Dispatch(ctx, cmd); err != nil {
			if _, ok := cmd.(wizard.Submit); ok {
				log.Printf("[Wizard %s] ❌ %s submit failed: %v", short(id), e.wizard.Name(), err)
			}
			return e.wizard.View(), err
		}
		if _, ok := cmd.(wizard.Submit); ok {
			log.Printf("[Wizard %s] ✅ %s submitted", short(id), e.wizard.Name())
		}
	}
	return e.wizard.View(), nil
}

// SignOut clears the wizard's session token.
func (m *WizardManager) SignOut(id string) (wizard.View, error) {
	e, err := m.lookup(id)
	if err != nil {
		return wizard.View{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.touch(m.now())
	e.session.SignOut()
	return e.wizard.View(), nil
}

// Discard abandons a wizard and its state.
func (m *WizardManager) Discard(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.wizards[id]
	if !ok {
		return ErrWizardNotFound
	}
	e.session.Unsubscribe(e.sub)
	delete(m.wizards, id)
	return nil
}

func (m *WizardManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.wizards)
}

func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
