package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/emotion-diary/internal/domain"
)

// Store persists the session between runs.
type Store interface {
	Load() (*Session, error)
	Save(s *Session) error
	Clear() error
}

// ErrNoSession is returned by Store.Load when nothing is stored.
var ErrNoSession = errors.New("session: none stored")

// Gatekeeper owns the current session. It is safe for concurrent use.
type Gatekeeper struct {
	store Store

	mu      sync.RWMutex
	current *Session
	subs    map[int]*subscriber
	nextID  int
}

// New creates a Gatekeeper and restores the stored session, if any. A
// stored session that cannot be read is discarded with a warning and the
// Gatekeeper starts signed out, so login still works.
func New(store Store, logger *slog.Logger) *Gatekeeper {
	g := &Gatekeeper{store: store, subs: make(map[int]*subscriber)}

	s, err := store.Load()
	switch {
	case errors.Is(err, ErrNoSession):
	case err != nil:
		logger.Warn("discarding unreadable session", slog.String("error", err.Error()))
		if err := store.Clear(); err != nil {
			logger.Warn("clear session", slog.String("error", err.Error()))
		}
	default:
		g.current = s
	}
	return g
}

// Current returns a copy of the current session.
func (g *Gatekeeper) Current() (*Session, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.current == nil {
		return nil, false
	}
	return g.current.clone(), true
}

// Require returns the current session or domain.ErrUnauthenticated.
func (g *Gatekeeper) Require() (*Session, error) {
	s, ok := g.Current()
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return s, nil
}

// SignIn stores s as the current session and publishes SignedIn.
func (g *Gatekeeper) SignIn(s *Session) error {
	return g.set(s, SignedIn)
}

// Refresh replaces the current session with rotated tokens and publishes
// Refreshed.
func (g *Gatekeeper) Refresh(s *Session) error {
	return g.set(s, Refreshed)
}

// SignOut clears the session and publishes SignedOut. Signing out without a
// session is a no-op.
func (g *Gatekeeper) SignOut() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.current == nil {
		return nil
	}
	if err := g.store.Clear(); err != nil {
		return fmt.Errorf("session: clear: %w", err)
	}
	g.current = nil
	g.publish(Event{Type: SignedOut})
	return nil
}

// Subscribe returns a channel of session events and a cancel func. Events
// are delivered in order and never dropped; the channel is closed after
// cancel returns.
func (g *Gatekeeper) Subscribe() (<-chan Event, func()) {
	sub := newSubscriber()

	g.mu.Lock()
	id := g.nextID
	g.nextID++
	g.subs[id] = sub
	g.mu.Unlock()

	go sub.run()

	cancel := func() {
		g.mu.Lock()
		delete(g.subs, id)
		g.mu.Unlock()
		sub.stop()
	}
	return sub.out, cancel
}

// Close cancels every subscription.
func (g *Gatekeeper) Close() {
	g.mu.Lock()
	subs := g.subs
	g.subs = make(map[int]*subscriber)
	g.mu.Unlock()

	for _, sub := range subs {
		sub.stop()
	}
}

func (g *Gatekeeper) set(s *Session, typ EventType) error {
	if s == nil || s.AccessToken == "" {
		return errors.New("session: access token is required")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.store.Save(s); err != nil {
		return fmt.Errorf("session: save: %w", err)
	}
	g.current = s.clone()
	g.publish(Event{Type: typ, Session: s.clone()})
	return nil
}

// publish must be called with g.mu held.
func (g *Gatekeeper) publish(e Event) {
	for _, sub := range g.subs {
		sub.push(Event{Type: e.Type, Session: e.Session.clone()})
	}
}

// subscriber queues events so a slow reader never blocks the Gatekeeper.
type subscriber struct {
	out     chan Event
	wake    chan struct{}
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once

	mu    sync.Mutex
	queue []Event
}

func newSubscriber() *subscriber {
	return &subscriber{
		out:     make(chan Event),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

func (s *subscriber) push(e Event) {
	s.mu.Lock()
	s.queue = append(s.queue, e)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *subscriber) run() {
	defer close(s.stopped)
	defer close(s.out)

	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.mu.Unlock()
			select {
			case <-s.wake:
				continue
			case <-s.done:
				return
			}
		}
		e := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		select {
		case s.out <- e:
		case <-s.done:
			return
		}
	}
}

func (s *subscriber) stop() {
	s.once.Do(func() { close(s.done) })
	<-s.stopped
}
