package session

import (
	"errors"
	"sync"

	"github.com/timothyds/uas-stimp/pkg/log"
)

type State int

const (
	LoggedOut State = iota
	LoggedIn
)

func (s State) String() string {
	if s == LoggedIn {
		return "logged in"
	}
	return "logged out"
}

// Session is the persisted proof of identity: just the username.
type Session struct {
	Username string
}

// ErrBadCredentials is returned when the server rejects a login.
var ErrBadCredentials = errors.New("username atau password salah")

// Authenticator is the remote side of login, satisfied by *api.Client.
type Authenticator interface {
	Login(username, password string) error
}

// Controller owns the login state machine. The only transitions are
// LoggedOut -> LoggedIn through a successful Login, and LoggedIn ->
// LoggedOut through Logout or a failed Resolve. Navigation layers watch
// transitions through Subscribe rather than polling a flag.
type Controller struct {
	store Store
	auth  Authenticator

	mu      sync.Mutex
	state   State
	session Session
	subs    []chan State
}

func NewController(store Store, auth Authenticator) *Controller {
	return &Controller{store: store, auth: auth}
}

// Login verifies credentials remotely, then persists the identity. A failed
// call, remote or transport, leaves no session behind.
func (c *Controller) Login(username, password string) (Session, error) {
	if err := c.auth.Login(username, password); err != nil {
		return Session{}, err
	}
	if err := c.store.Save(username); err != nil {
		return Session{}, err
	}
	s := Session{Username: username}
	c.mu.Lock()
	c.session = s
	c.setStateLocked(LoggedIn)
	c.mu.Unlock()
	return s, nil
}

// Logout always succeeds from the caller's view; a storage clear failure
// must not keep the user logged in.
func (c *Controller) Logout() {
	_ = c.store.Clear()
	c.mu.Lock()
	c.session = Session{}
	c.setStateLocked(LoggedOut)
	c.mu.Unlock()
}

// Resolve reads the persisted identity. Absence and read failures both force
// LoggedOut: a session we cannot prove is a session we do not have.
func (c *Controller) Resolve() (Session, bool) {
	username, err := c.store.Load()
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.session = Session{}
		c.setStateLocked(LoggedOut)
		return Session{}, false
	}
	c.session = Session{Username: username}
	c.setStateLocked(LoggedIn)
	return c.session, true
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Current() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Subscribe returns a channel that receives every state transition. The
// channel is buffered so a slow consumer cannot block login or logout.
func (c *Controller) Subscribe() <-chan State {
	ch := make(chan State, 8)
	c.mu.Lock()
	c.subs = append(c.subs, ch)
	c.mu.Unlock()
	return ch
}

func (c *Controller) setStateLocked(s State) {
	if c.state == s {
		return
	}
	c.state = s
	log.L().Debug("session state changed", "state", s.String())
	for _, ch := range c.subs {
		select {
		case ch <- s:
		default:
		}
	}
}
