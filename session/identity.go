package session

import (
	"errors"
	"strconv"

	"clementus360/ai-helper-client/types"

	"github.com/golang-jwt/jwt"
)

var errEmptyToken = errors.New("server returned an empty token")

type claims struct {
	id         int64
	username   string
	email      string
	firstLogin *bool
}

// parseClaims reads the token payload without verifying it. The client has
// no key; it only needs the identity the server put there.
func parseClaims(token string) (claims, bool) {
	var c claims
	mc := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, mc); err != nil {
		return c, false
	}

	for _, key := range []string{"sub", "user_id", "id"} {
		if id, ok := int64Claim(mc[key]); ok {
			c.id = id
			break
		}
	}
	c.username, _ = mc["username"].(string)
	c.email, _ = mc["email"].(string)
	if v, ok := mc["first_login"].(bool); ok {
		c.firstLogin = &v
	}
	return c, true
}

func int64Claim(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), n > 0
	case string:
		id, err := strconv.ParseInt(n, 10, 64)
		return id, err == nil && id > 0
	}
	return 0, false
}

// resolveIdentity builds the user for a fresh token: claims first, then the
// identity returned by a registration of the same username, then the one
// remembered from an earlier login on this device, then the configured
// default id. first is the first-login decision; known reports whether the
// id came from anywhere but the default.
// Callers hold s.mu.
func (s *Store) resolveIdentity(token, username string) (user types.User, first, known bool) {
	user = types.User{Username: username}
	c, ok := parseClaims(token)
	if ok {
		user.ID = c.id
		if c.username != "" {
			user.Username = c.username
		}
		user.Email = c.email
	}

	if reg := s.doc.Registered; reg != nil && reg.Username == user.Username {
		fillIdentity(&user, *reg)
	}
	if prev, ok := s.doc.Account(user.Username); ok {
		fillIdentity(&user, prev)
	}
	known = user.ID != 0
	if !known {
		user.ID = s.defaultUserID
	}

	first = !s.doc.HasSeen(username)
	if c.firstLogin != nil {
		first = *c.firstLogin
	}
	user.FirstLogin = first
	return user, first, known
}

func fillIdentity(user *types.User, from types.User) {
	if user.ID == 0 {
		user.ID = from.ID
	}
	if user.Email == "" {
		user.Email = from.Email
	}
}
