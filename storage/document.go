// Package storage persists the client session as one typed document.
// Every write replaces the whole document, so no field can outlive a
// logout that cleared its siblings.
package storage

import (
	"context"
	"maps"
	"slices"

	"clementus360/ai-helper-client/types"
)

// Document is everything the client keeps between runs.
type Document struct {
	Token          string      `json:"token,omitempty"`
	User           *types.User `json:"user,omitempty"`
	FirstTimeUser  bool        `json:"first_time_user,omitempty"`
	ConversationID int64       `json:"conversation_id,omitempty"`
	PlanID         int64       `json:"plan_id,omitempty"`
	PlanWeekStart  string      `json:"plan_week_start,omitempty"`
	Registered     *types.User `json:"registered,omitempty"`

	// SeenAccounts lists usernames that completed a login on this device.
	// It is device state and survives logout.
	SeenAccounts []string `json:"seen_accounts,omitempty"`

	// Accounts maps a username to the identity last resolved for it, so a
	// token without claims still reaches the same user after a logout.
	Accounts map[string]types.User `json:"accounts,omitempty"`
}

// Store loads and saves the document. A store that has never been written
// loads as the zero Document.
type Store interface {
	Load(ctx context.Context) (Document, error)
	Save(ctx context.Context, doc Document) error
	Close() error
}

// ClearSession resets every session-scoped field.
func (d *Document) ClearSession() {
	d.Token = ""
	d.User = nil
	d.FirstTimeUser = false
	d.ConversationID = 0
	d.PlanID = 0
	d.PlanWeekStart = ""
	d.Registered = nil
}

// Valid reports whether token and user are either both present or both absent.
func (d Document) Valid() bool {
	return (d.Token != "") == (d.User != nil)
}

// Authenticated reports whether the document holds a complete session.
func (d Document) Authenticated() bool {
	return d.Token != "" && d.User != nil
}

func (d Document) HasSeen(username string) bool {
	return slices.Contains(d.SeenAccounts, username)
}

func (d *Document) MarkSeen(username string) {
	if username == "" || d.HasSeen(username) {
		return
	}
	d.SeenAccounts = append(d.SeenAccounts, username)
}

// Account returns the identity remembered for username.
func (d Document) Account(username string) (types.User, bool) {
	u, ok := d.Accounts[username]
	return u, ok
}

func (d *Document) RememberAccount(username string, user types.User) {
	if username == "" || user.ID <= 0 {
		return
	}
	if d.Accounts == nil {
		d.Accounts = make(map[string]types.User)
	}
	user.FirstLogin = false
	d.Accounts[username] = user
}

// Clone returns a copy that shares no pointers with d.
func (d Document) Clone() Document {
	out := d
	if d.User != nil {
		u := *d.User
		out.User = &u
	}
	if d.Registered != nil {
		u := *d.Registered
		out.Registered = &u
	}
	out.SeenAccounts = slices.Clone(d.SeenAccounts)
	out.Accounts = maps.Clone(d.Accounts)
	return out
}
