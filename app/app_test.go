package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"clementus360/ai-helper-client/app"
	"clementus360/ai-helper-client/chat"
	"clementus360/ai-helper-client/config"
	"clementus360/ai-helper-client/mockapi"
	"clementus360/ai-helper-client/storage"
	"clementus360/ai-helper-client/types"
)

func TestRegisterLoginWelcome(t *testing.T) {
	srv, url := mockapi.NewTestServer(t, mockapi.Options{BasePath: "/api/v1"})
	settings := config.Settings{
		APIBaseURL:  url,
		StoreDriver: config.StoreSQLite,
		StorePath:   filepath.Join(t.TempDir(), "session.db"),
	}
	ctx := context.Background()

	a, err := app.Open(ctx, settings)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	user, err := a.Session.Register(ctx, "ana", "ana@x.com", "p")
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if err := a.Session.Login(ctx, "ana", "p"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if !a.Session.IsFirstLogin() {
		t.Fatal("IsFirstLogin() = false after the first login")
	}
	if err := a.Chat.Initialize(ctx); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	conv, ok := srv.Conversation(a.Chat.ID())
	if !ok || len(conv.Messages) == 0 || conv.Messages[0].Content != config.WelcomeMessage {
		t.Fatalf("welcome not sent: %+v", conv)
	}

	task, err := a.Tasks.Create(ctx, types.TaskRequest{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if task.UserID != user.ID {
		t.Errorf("task created for user %d, want %d", task.UserID, user.ID)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	// a restart resumes the session without the onboarding
	b, err := app.Open(ctx, settings)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer b.Close()
	if !b.Session.IsAuthenticated() || b.Session.IsFirstLogin() {
		t.Fatalf("restored session: authenticated %v, first login %v", b.Session.IsAuthenticated(), b.Session.IsFirstLogin())
	}
	if err := b.Chat.Initialize(ctx); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	if b.Chat.ID() != conv.ID {
		t.Errorf("resumed conversation %d, want %d", b.Chat.ID(), conv.ID)
	}
	if err := b.Tasks.LoadAll(ctx); err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}
	if b.Tasks.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Tasks.Len())
	}
}

func TestLogoutDropsAccountState(t *testing.T) {
	srv, url := mockapi.NewTestServer(t, mockapi.Options{})
	srv.SeedUser("ana", "ana@x.com", "p")
	srv.SeedUser("bob", "bob@x.com", "p")
	ctx := context.Background()
	a := app.New(ctx, config.Settings{APIBaseURL: url, DefaultUserID: 1}, storage.NewMemoryStore())

	if err := a.Session.Login(ctx, "ana", "p"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if err := a.Chat.Initialize(ctx); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	anaConv := a.Chat.ID()
	if _, err := a.Tasks.Create(ctx, types.TaskRequest{Title: "Buy milk"}); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if _, err := a.Planner.Generate(ctx, ""); err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	if err := a.Logout(ctx); err != nil {
		t.Fatalf("Logout() failed: %v", err)
	}
	if a.Chat.State() != chat.Uninitialized || len(a.Chat.Transcript()) != 0 || a.Chat.ID() != 0 {
		t.Errorf("chat after logout: state %s, %d messages, id %d", a.Chat.State(), len(a.Chat.Transcript()), a.Chat.ID())
	}
	if a.Tasks.Len() != 0 {
		t.Errorf("Tasks.Len() after logout = %d, want 0", a.Tasks.Len())
	}
	if _, ok := a.Planner.Current(); ok {
		t.Error("plan survived logout")
	}

	if err := a.Session.Login(ctx, "bob", "p"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if err := a.Chat.Initialize(ctx); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	if a.Chat.ID() == 0 || a.Chat.ID() == anaConv {
		t.Fatalf("bob got conversation %d, ana had %d", a.Chat.ID(), anaConv)
	}
	if err := a.Chat.SendMessage(ctx, "hello"); err != nil {
		t.Fatalf("SendMessage() failed: %v", err)
	}
	if a.Session.ConversationID() != a.Chat.ID() {
		t.Errorf("persisted conversation %d, active %d", a.Session.ConversationID(), a.Chat.ID())
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := app.Open(context.Background(), config.Settings{StoreDriver: "etcd"}); err == nil {
		t.Fatal("expected error for an unknown store driver")
	}
}

func TestNewWithCorruptStoreStartsAnonymous(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	settings := config.Settings{APIBaseURL: "http://127.0.0.1:0", StoreDriver: config.StoreFile, StorePath: path}
	if err := os.WriteFile(path, []byte("{broken"), 0600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	a, err := app.Open(context.Background(), settings)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if a.Session.IsAuthenticated() {
		t.Error("corrupt document restored as a session")
	}
}
