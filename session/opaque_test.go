package session_test

import (
	"context"
	"testing"

	"clementus360/ai-helper-client/session"
	"clementus360/ai-helper-client/storage"
	"clementus360/ai-helper-client/types"
)

// opaqueAuth answers logins with a token that carries no claims, so the
// store has to resolve the identity on its own.
type opaqueAuth struct {
	registered types.User
	logins     int
}

func (a *opaqueAuth) Login(ctx context.Context, req types.LoginRequest) (types.AuthResponse, error) {
	a.logins++
	return types.AuthResponse{Token: "opaque-token"}, nil
}

func (a *opaqueAuth) Register(ctx context.Context, req types.RegisterRequest) (types.User, error) {
	u := a.registered
	u.Username = req.Username
	u.Email = req.Email
	return u, nil
}

func (a *opaqueAuth) Logout(ctx context.Context) error { return nil }

func TestOpaqueTokenKeepsRegisteredIdentity(t *testing.T) {
	ctx := context.Background()
	docs := storage.NewMemoryStore()
	auth := &opaqueAuth{registered: types.User{ID: 7}}
	s := session.New(auth, docs, session.WithDefaultUserID(1))

	if _, err := s.Register(ctx, "ana", "ana@x.com", "p"); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	wantFirst := []bool{true, false, false}
	for i, first := range wantFirst {
		if err := s.Login(ctx, "ana", "p"); err != nil {
			t.Fatalf("Login() #%d failed: %v", i+1, err)
		}
		if s.UserID() != 7 {
			t.Errorf("login #%d: UserID() = %d, want 7", i+1, s.UserID())
		}
		if s.IsFirstLogin() != first {
			t.Errorf("login #%d: IsFirstLogin() = %v, want %v", i+1, s.IsFirstLogin(), first)
		}
		if u, _ := s.User(); u.Email != "ana@x.com" {
			t.Errorf("login #%d: User().Email = %q", i+1, u.Email)
		}
		if err := s.Logout(ctx); err != nil {
			t.Fatalf("Logout() failed: %v", err)
		}
	}

	// A new process over the same document resolves the same account.
	restarted := session.New(auth, docs, session.WithDefaultUserID(1))
	if err := restarted.Restore(ctx); err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
	if err := restarted.Login(ctx, "ana", "p"); err != nil {
		t.Fatalf("Login() after restart failed: %v", err)
	}
	if restarted.UserID() != 7 || restarted.IsFirstLogin() {
		t.Errorf("after restart: UserID() = %d, IsFirstLogin() = %v", restarted.UserID(), restarted.IsFirstLogin())
	}
}

func TestOpaqueTokenFallsBackToDefaultUser(t *testing.T) {
	ctx := context.Background()
	docs := storage.NewMemoryStore()
	s := session.New(&opaqueAuth{}, docs, session.WithDefaultUserID(5))

	for i, first := range []bool{true, false} {
		if err := s.Login(ctx, "bob", "p"); err != nil {
			t.Fatalf("Login() #%d failed: %v", i+1, err)
		}
		if s.UserID() != 5 {
			t.Errorf("login #%d: UserID() = %d, want 5", i+1, s.UserID())
		}
		if s.IsFirstLogin() != first {
			t.Errorf("login #%d: IsFirstLogin() = %v, want %v", i+1, s.IsFirstLogin(), first)
		}
		if err := s.Logout(ctx); err != nil {
			t.Fatalf("Logout() failed: %v", err)
		}
	}

	doc, err := docs.Load(ctx)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if _, ok := doc.Account("bob"); ok {
		t.Error("default id should not be remembered as the account's identity")
	}
}
