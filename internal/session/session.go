// Package session holds the auth state of one client: the bearer token
// the external API expects, plus change notifications for whoever owns
// the wizard that depends on it.
package session

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/oauth2"
)

var ErrNoToken = errors.New("no session token")

// State is what subscribers are told after every change.
type State struct {
	Authenticated bool
	UserID        string
}

// Subscription identifies a listener registered with Subscribe.
type Subscription int

// Context is the session of one client. It doubles as an
// oauth2.TokenSource so API calls pick the token up automatically.
type Context struct {
	mu     sync.RWMutex
	token  string
	userID string

	subMu     sync.Mutex
	listeners map[Subscription]func(State)
	nextSub   Subscription
}

func New() *Context {
	return &Context{listeners: make(map[Subscription]func(State))}
}

// SignIn stores a token. Listeners are only told when something changed.
func (c *Context) SignIn(token, userID string) {
	c.mu.Lock()
	changed := c.token != token || c.userID != userID
	c.token = token
	c.userID = userID
	c.mu.Unlock()

	if changed {
		c.notify()
	}
}

func (c *Context) SignOut() {
	c.mu.Lock()
	changed := c.token != ""
	c.token = ""
	c.userID = ""
	c.mu.Unlock()

	if changed {
		c.notify()
	}
}

func (c *Context) Authenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != ""
}

func (c *Context) UserID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userID
}

func (c *Context) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return State{Authenticated: c.token != "", UserID: c.userID}
}

// Token implements oauth2.TokenSource.
func (c *Context) Token() (*oauth2.Token, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.token == "" {
		return nil, ErrNoToken
	}
	return &oauth2.Token{AccessToken: c.token, TokenType: "Bearer"}, nil
}

// Subscribe registers fn for change notifications until Unsubscribe.
func (c *Context) Subscribe(fn func(State)) Subscription {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	c.nextSub++
	c.listeners[c.nextSub] = fn
	return c.nextSub
}

func (c *Context) Unsubscribe(sub Subscription) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	delete(c.listeners, sub)
}

func (c *Context) notify() {
	st := c.State()

	c.subMu.Lock()
	fns := make([]func(State), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}

type ctxKey struct{}

// NewContext attaches a session to ctx for outbound API calls.
func NewContext(ctx context.Context, s *Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (*Context, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Context)
	return s, ok && s != nil
}
