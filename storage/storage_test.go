package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"clementus360/ai-helper-client/config"
	"clementus360/ai-helper-client/types"
)

func sampleDocument() Document {
	return Document{
		Token:          "tok",
		User:           &types.User{ID: 7, Username: "ana", Email: "ana@x.com"},
		FirstTimeUser:  true,
		ConversationID: 12,
		PlanID:         3,
		PlanWeekStart:  "2025-06-09",
		SeenAccounts:   []string{"ana"},
		Accounts:       map[string]types.User{"ana": {ID: 7, Username: "ana"}},
	}
}

func roundTrip(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	empty, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() on empty store failed: %v", err)
	}
	if empty.Token != "" || empty.User != nil {
		t.Fatalf("empty store loaded %+v", empty)
	}

	want := sampleDocument()
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got.Token != want.Token || got.User == nil || got.User.ID != 7 || got.ConversationID != 12 ||
		got.PlanID != 3 || got.PlanWeekStart != "2025-06-09" || !got.FirstTimeUser || !got.HasSeen("ana") {
		t.Fatalf("Load() = %+v", got)
	}

	got.ClearSession()
	if err := s.Save(ctx, got); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	cleared, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cleared.Authenticated() || cleared.ConversationID != 0 || cleared.PlanID != 0 {
		t.Errorf("cleared document = %+v", cleared)
	}
	if !cleared.HasSeen("ana") {
		t.Error("SeenAccounts should survive ClearSession")
	}
	if u, ok := cleared.Account("ana"); !ok || u.ID != 7 {
		t.Errorf("Account(ana) after ClearSession = %+v, %v", u, ok)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	roundTrip(t, NewFileStore(filepath.Join(t.TempDir(), "nested", "session.json")))
}

func TestFileStorePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewFileStore(path)
	if err := s.Save(context.Background(), sampleDocument()); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("permissions = %o, want 600", perm)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := NewFileStore(path).Load(context.Background()); err == nil {
		t.Fatal("expected error for corrupt document")
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer s.Close()
	roundTrip(t, s)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	roundTrip(t, NewMemoryStore())
}

func TestMemoryStoreSaveErr(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	if err := s.Save(ctx, sampleDocument()); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	s.SaveErr = errors.New("disk full")
	if err := s.Save(ctx, Document{}); err == nil {
		t.Fatal("expected SaveErr")
	}
	doc, _ := s.Load(ctx)
	if doc.Token != "tok" {
		t.Errorf("failed save changed the document: %+v", doc)
	}
	if s.Saves() != 1 {
		t.Errorf("Saves() = %d, want 1", s.Saves())
	}
}

func TestDocumentValid(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want bool
	}{
		{"empty", Document{}, true},
		{"complete", sampleDocument(), true},
		{"token only", Document{Token: "tok"}, false},
		{"user only", Document{User: &types.User{ID: 1}}, false},
	}
	for _, tt := range tests {
		if got := tt.doc.Valid(); got != tt.want {
			t.Errorf("%s: Valid() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCloneSharesNothing(t *testing.T) {
	doc := sampleDocument()
	c := doc.Clone()
	c.User.ID = 99
	c.SeenAccounts[0] = "bob"
	c.RememberAccount("ana", types.User{ID: 99, Username: "ana"})
	if doc.User.ID != 7 || doc.SeenAccounts[0] != "ana" || doc.Accounts["ana"].ID != 7 {
		t.Errorf("Clone() shares state: %+v", doc)
	}
}

func TestRememberAccount(t *testing.T) {
	var doc Document
	doc.RememberAccount("ana", types.User{ID: 0, Username: "ana"})
	doc.RememberAccount("", types.User{ID: 3})
	if len(doc.Accounts) != 0 {
		t.Fatalf("Accounts = %+v, want none", doc.Accounts)
	}
	doc.RememberAccount("ana", types.User{ID: 7, Username: "ana", FirstLogin: true})
	u, ok := doc.Account("ana")
	if !ok || u.ID != 7 || u.FirstLogin {
		t.Errorf("Account(ana) = %+v, %v", u, ok)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	for _, driver := range []string{"", config.StoreFile, config.StoreSQLite, config.StoreMemory} {
		s, err := Open(config.Settings{StoreDriver: driver, StorePath: filepath.Join(dir, "s-"+driver)})
		if err != nil {
			t.Fatalf("Open(%q) failed: %v", driver, err)
		}
		s.Close()
	}
	if _, err := Open(config.Settings{StoreDriver: "redis"}); err == nil {
		t.Error("expected error for unknown driver")
	}
}
