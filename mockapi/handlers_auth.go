package mockapi

import (
	"net/http"
	"strings"
	"time"

	"clementus360/ai-helper-client/types"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeError(w, "username, email and password required", http.StatusBadRequest)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("Failed to hash password:", err)
		writeError(w, "could not hash password", http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acct := range s.accounts {
		if acct.user.Username == req.Username || acct.user.Email == req.Email {
			writeError(w, "username or email already registered", http.StatusConflict)
			return
		}
	}
	acct := &account{
		user: types.User{ID: s.id(), Username: req.Username, Email: req.Email, FirstLogin: true},
		hash: hashed,
	}
	s.accounts[req.Username] = acct
	writeJSON(w, http.StatusCreated, acct.user)
}

func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		writeError(w, "username and password required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.accounts[req.Username]
	if !ok || bcrypt.CompareHashAndPassword(acct.hash, []byte(req.Password)) != nil {
		writeError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	first := acct.logins == 0
	acct.logins++
	acct.user.FirstLogin = false

	token, err := s.issueToken(acct.user, first)
	if err != nil {
		s.log.Error("Failed to sign token:", err)
		writeError(w, "could not issue token", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, types.AuthResponse{Token: token})
}

// LogoutHandler has nothing to revoke; tokens simply expire.
func (s *Server) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// issueToken uses the wall clock, not Options.Now, because token expiry is
// checked against it.
func (s *Server) issueToken(u types.User, first bool) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":         u.ID,
		"username":    u.Username,
		"email":       u.Email,
		"first_login": first,
		"iat":         now.Unix(),
		"exp":         now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// SeedUser registers an account directly.
func (s *Server) SeedUser(username, email, password string) types.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.mu.Lock()
	defer s.mu.Unlock()
	acct := &account{
		user: types.User{ID: s.id(), Username: username, Email: email, FirstLogin: true},
		hash: hashed,
	}
	s.accounts[username] = acct
	return acct.user
}
