// Package session owns the "who is logged in" state. A Store is built once
// at startup, restored from the durable document and passed to every
// component that needs the token or the user id.
package session

import (
	"context"
	"strings"
	"sync"

	"clementus360/ai-helper-client/config"
	"clementus360/ai-helper-client/storage"
	"clementus360/ai-helper-client/types"

	"github.com/sirupsen/logrus"
)

type State string

const (
	Anonymous      State = "ANONYMOUS"
	Authenticating State = "AUTHENTICATING"
	Authenticated  State = "AUTHENTICATED"
)

// Authenticator is the remote side of the session.
type Authenticator interface {
	Login(ctx context.Context, req types.LoginRequest) (types.AuthResponse, error)
	Register(ctx context.Context, req types.RegisterRequest) (types.User, error)
	Logout(ctx context.Context) error
}

type Store struct {
	mu            sync.RWMutex
	auth          Authenticator
	docs          storage.Store
	doc           storage.Document
	state         State
	firstLogin    bool
	defaultUserID int64
	log           *logrus.Entry
}

type Option func(*Store)

// WithDefaultUserID sets the id used when neither the token nor a previous
// registration names the account.
func WithDefaultUserID(id int64) Option {
	return func(s *Store) {
		if id > 0 {
			s.defaultUserID = id
		}
	}
}

func New(auth Authenticator, docs storage.Store, opts ...Option) *Store {
	s := &Store{
		auth:          auth,
		docs:          docs,
		state:         Anonymous,
		defaultUserID: 1,
		log:           config.Component("session"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore loads the persisted session. A pending first-login flag is
// consumed here: IsFirstLogin reports true for this process and the durable
// flag is cleared. A document holding a token without a user, or the
// reverse, is wiped.
func (s *Store) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.docs.Load(ctx)
	if err != nil {
		s.state = Anonymous
		return types.Wrap(types.ErrAuth, "restore", err)
	}

	if !doc.Valid() {
		s.log.Warn("Discarding partial session document")
		doc.ClearSession()
		s.doc = doc
		s.state = Anonymous
		if err := s.docs.Save(ctx, doc); err != nil {
			return types.Wrap(types.ErrAuth, "restore", err)
		}
		return nil
	}

	s.doc = doc
	s.firstLogin = false
	if !doc.Authenticated() {
		s.state = Anonymous
		return nil
	}
	s.state = Authenticated

	if doc.FirstTimeUser {
		s.firstLogin = true
		next := doc.Clone()
		next.FirstTimeUser = false
		if err := s.docs.Save(ctx, next); err != nil {
			s.log.Warn("Failed to clear first-login flag: ", err)
			return nil
		}
		s.doc = next
	}
	return nil
}

// Login authenticates and replaces the current session. On any failure the
// previous state is kept and the error wraps types.ErrAuth.
func (s *Store) Login(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)

	s.mu.Lock()
	if s.state == Authenticating {
		s.mu.Unlock()
		return types.Wrap(types.ErrAuth, "login", types.ErrBusy)
	}
	prev := s.state
	s.state = Authenticating
	s.mu.Unlock()

	resp, err := s.auth.Login(ctx, types.LoginRequest{Username: username, Password: password})
	if err == nil && resp.Token == "" {
		err = errEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = prev
		return types.Wrap(types.ErrAuth, "login", err)
	}

	user, first, known := s.resolveIdentity(resp.Token, username)

	next := s.doc.Clone()
	next.ClearSession()
	next.Token = resp.Token
	next.User = &user
	next.FirstTimeUser = first
	next.MarkSeen(username)
	if known {
		next.RememberAccount(user.Username, user)
	}

	if err := s.docs.Save(ctx, next); err != nil {
		s.state = prev
		return types.Wrap(types.ErrAuth, "login", err)
	}

	s.doc = next
	s.state = Authenticated
	s.firstLogin = first
	s.log.WithFields(logrus.Fields{"user_id": user.ID, "first_login": first}).Info("Logged in")
	return nil
}

// Register creates the account and remembers the returned identity for the
// login that follows. It does not start a session.
func (s *Store) Register(ctx context.Context, username, email, password string) (types.User, error) {
	user, err := s.auth.Register(ctx, types.RegisterRequest{
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
		Password: password,
	})
	if err != nil {
		return types.User{}, types.Wrap(types.ErrAuth, "register", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.doc.Clone()
	registered := user
	next.Registered = &registered
	if err := s.docs.Save(ctx, next); err != nil {
		return types.User{}, types.Wrap(types.ErrAuth, "register", err)
	}
	s.doc = next
	return user, nil
}

// Logout always ends the local session. The remote call is best-effort and
// its failure is only logged; the returned error, if any, comes from
// persisting the cleared document.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.auth.Logout(ctx); err != nil {
		s.log.Warn("Remote logout failed: ", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.ClearSession()
	s.state = Anonymous
	s.firstLogin = false
	if err := s.docs.Save(ctx, s.doc.Clone()); err != nil {
		return types.Wrap(types.ErrMutation, "logout", err)
	}
	return nil
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Token is read by the HTTP client on every request.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != Authenticated {
		return ""
	}
	return s.doc.Token
}

func (s *Store) User() (types.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != Authenticated || s.doc.User == nil {
		return types.User{}, false
	}
	return *s.doc.User, true
}

// UserID returns the logged-in account, or the configured default.
func (s *Store) UserID() int64 {
	if u, ok := s.User(); ok && u.ID > 0 {
		return u.ID
	}
	return s.defaultUserID
}

func (s *Store) IsAuthenticated() bool {
	return s.State() == Authenticated
}

func (s *Store) IsFirstLogin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.firstLogin
}

// ConsumeFirstLogin clears the durable first-login flag. IsFirstLogin keeps
// its value until the process ends.
func (s *Store) ConsumeFirstLogin(ctx context.Context) error {
	return s.update(ctx, "consume first login", func(d *storage.Document) {
		d.FirstTimeUser = false
	})
}

func (s *Store) ConversationID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.ConversationID
}

func (s *Store) SetConversationID(ctx context.Context, id int64) error {
	return s.update(ctx, "set conversation", func(d *storage.Document) {
		d.ConversationID = id
	})
}

// Plan returns the persisted plan id and its week start.
func (s *Store) Plan() (int64, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.PlanID, s.doc.PlanWeekStart
}

func (s *Store) SetPlan(ctx context.Context, id int64, weekStart string) error {
	return s.update(ctx, "set plan", func(d *storage.Document) {
		d.PlanID = id
		d.PlanWeekStart = weekStart
	})
}

// update applies fn to a copy of the document and keeps it only when the
// save succeeds. Session-scoped writes need an authenticated session.
func (s *Store) update(ctx context.Context, op string, fn func(*storage.Document)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Authenticated {
		return &types.OpError{Kind: types.ErrNotAuthenticated, Op: op}
	}
	next := s.doc.Clone()
	fn(&next)
	if err := s.docs.Save(ctx, next); err != nil {
		return types.Wrap(types.ErrMutation, op, err)
	}
	s.doc = next
	return nil
}
