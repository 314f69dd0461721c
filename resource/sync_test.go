package resource_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"clementus360/ai-helper-client/app"
	"clementus360/ai-helper-client/config"
	"clementus360/ai-helper-client/mockapi"
	"clementus360/ai-helper-client/storage"
	"clementus360/ai-helper-client/types"
)

const taskRoute = "/users/{uid}/tasks/{id}"

// loggedIn returns an app whose session belongs to a freshly seeded account.
func loggedIn(t *testing.T) (*mockapi.Server, *app.App, types.User) {
	t.Helper()
	srv, url := mockapi.NewTestServer(t, mockapi.Options{})
	user := srv.SeedUser("ana", "ana@x.com", "p")

	a := app.New(context.Background(), config.Settings{APIBaseURL: url, DefaultUserID: 1}, storage.NewMemoryStore())
	if err := a.Session.Login(context.Background(), "ana", "p"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	return srv, a, user
}

func TestLoadAll(t *testing.T) {
	srv, a, user := loggedIn(t)
	srv.SeedTask(types.Task{UserID: user.ID, Title: "Buy milk"})
	srv.SeedTask(types.Task{UserID: user.ID, Title: "Call mum", Completed: true})
	srv.SeedTask(types.Task{UserID: user.ID + 100, Title: "not mine"})

	if err := a.Tasks.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}
	if a.Tasks.Len() != 2 || a.Tasks.Completed() != 1 {
		t.Fatalf("Len() = %d, Completed() = %d", a.Tasks.Len(), a.Tasks.Completed())
	}
	if items := a.Tasks.Items(); items[0].Title != "Buy milk" || items[1].Title != "Call mum" {
		t.Errorf("Items() not in server order: %+v", items)
	}
}

func TestLoadAllFailureKeepsCollection(t *testing.T) {
	srv, a, user := loggedIn(t)
	srv.SeedTask(types.Task{UserID: user.ID, Title: "Buy milk"})
	ctx := context.Background()

	if err := a.Tasks.LoadAll(ctx); err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}
	srv.FailNext(http.MethodGet, "/users/{uid}/tasks", http.StatusInternalServerError)

	err := a.Tasks.LoadAll(ctx)
	if !errors.Is(err, types.ErrFetch) {
		t.Fatalf("LoadAll() error = %v, want ErrFetch", err)
	}
	if a.Tasks.Len() != 1 {
		t.Errorf("Len() = %d after a failed reload, want 1", a.Tasks.Len())
	}
}

func TestCreateAddsServerItem(t *testing.T) {
	_, a, user := loggedIn(t)

	task, err := a.Tasks.Create(context.Background(), types.TaskRequest{Title: "Buy milk", DueDate: "2025-06-10"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if task.ID == 0 || task.UserID != user.ID {
		t.Errorf("Create() = %+v", task)
	}
	if got, ok := a.Tasks.Find(task.ID); !ok || got.Title != "Buy milk" {
		t.Errorf("Find(%d) = %+v, %v", task.ID, got, ok)
	}
}

func TestCreateFailureLeavesCollection(t *testing.T) {
	srv, a, _ := loggedIn(t)
	srv.FailNext(http.MethodPost, "/users/{uid}/tasks", http.StatusInternalServerError)

	_, err := a.Tasks.Create(context.Background(), types.TaskRequest{Title: "Buy milk"})
	if !errors.Is(err, types.ErrMutation) {
		t.Fatalf("Create() error = %v, want ErrMutation", err)
	}
	if a.Tasks.Len() != 0 {
		t.Errorf("Len() = %d after a failed create", a.Tasks.Len())
	}
}

func TestToggleCompletedSendsFullTask(t *testing.T) {
	srv, a, user := loggedIn(t)
	seeded := srv.SeedTask(types.Task{UserID: user.ID, Title: "Buy milk", Description: "2L", DueDate: "2025-06-10"})
	ctx := context.Background()
	if err := a.Tasks.LoadAll(ctx); err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}

	updated, err := a.Tasks.ToggleCompleted(ctx, seeded.ID, false)
	if err != nil {
		t.Fatalf("ToggleCompleted() failed: %v", err)
	}
	if !updated.Completed {
		t.Error("ToggleCompleted() returned an incomplete task")
	}

	var sent types.TaskRequest
	if err := json.Unmarshal(srv.LastBody(http.MethodPut, taskRoute), &sent); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	want := types.TaskRequest{Title: "Buy milk", Description: "2L", DueDate: "2025-06-10", Completed: true}
	if sent != want {
		t.Errorf("PUT body = %+v, want %+v", sent, want)
	}
	if stored, _ := srv.Task(seeded.ID); !stored.Completed || stored.Title != "Buy milk" {
		t.Errorf("server task = %+v", stored)
	}
	if local, _ := a.Tasks.Find(seeded.ID); !local.Completed {
		t.Error("local task not updated")
	}
}

func TestUpdateFailureKeepsItem(t *testing.T) {
	srv, a, user := loggedIn(t)
	seeded := srv.SeedTask(types.Task{UserID: user.ID, Title: "Buy milk"})
	ctx := context.Background()
	a.Tasks.LoadAll(ctx)

	srv.FailNext(http.MethodPut, taskRoute, http.StatusInternalServerError)
	if _, err := a.Tasks.ToggleCompleted(ctx, seeded.ID, false); !errors.Is(err, types.ErrMutation) {
		t.Fatalf("ToggleCompleted() error = %v, want ErrMutation", err)
	}
	if local, _ := a.Tasks.Find(seeded.ID); local.Completed {
		t.Error("failed update changed the local task")
	}
	if a.Tasks.Pending(seeded.ID) {
		t.Error("task still pending after the call returned")
	}
}

func TestDelete(t *testing.T) {
	srv, a, user := loggedIn(t)
	keep := srv.SeedTask(types.Task{UserID: user.ID, Title: "keep"})
	drop := srv.SeedTask(types.Task{UserID: user.ID, Title: "drop"})
	ctx := context.Background()
	a.Tasks.LoadAll(ctx)

	srv.FailNext(http.MethodDelete, taskRoute, http.StatusBadGateway)
	if err := a.Tasks.Delete(ctx, drop.ID); !errors.Is(err, types.ErrMutation) {
		t.Fatalf("Delete() error = %v, want ErrMutation", err)
	}
	if a.Tasks.Len() != 2 {
		t.Fatalf("Len() = %d after a failed delete", a.Tasks.Len())
	}

	if err := a.Tasks.Delete(ctx, drop.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok := a.Tasks.Find(drop.ID); ok || a.Tasks.Len() != 1 {
		t.Errorf("Items() = %+v", a.Tasks.Items())
	}
	if _, ok := a.Tasks.Find(keep.ID); !ok {
		t.Error("wrong task removed")
	}
}

func TestConcurrentMutationRejected(t *testing.T) {
	srv, a, user := loggedIn(t)
	seeded := srv.SeedTask(types.Task{UserID: user.ID, Title: "Buy milk"})
	ctx := context.Background()
	a.Tasks.LoadAll(ctx)

	gate := srv.Block(http.MethodPut, taskRoute)
	done := make(chan error, 1)
	go func() {
		_, err := a.Tasks.Update(ctx, seeded.ID, types.TaskRequest{Title: "Buy oat milk"})
		done <- err
	}()

	select {
	case <-gate.Arrived():
	case <-time.After(5 * time.Second):
		t.Fatal("first update never reached the server")
	}
	if !a.Tasks.Pending(seeded.ID) {
		t.Error("Pending() = false while the update is in flight")
	}
	if _, err := a.Tasks.Update(ctx, seeded.ID, types.TaskRequest{Title: "Buy soy milk"}); !errors.Is(err, types.ErrBusy) {
		t.Errorf("second Update() error = %v, want ErrBusy", err)
	}
	if n := srv.Calls(http.MethodPut, taskRoute); n != 1 {
		t.Errorf("PUT calls = %d, want 1", n)
	}

	gate.Release()
	if err := <-done; err != nil {
		t.Fatalf("first Update() failed: %v", err)
	}
	if local, _ := a.Tasks.Find(seeded.ID); local.Title != "Buy oat milk" {
		t.Errorf("local title = %q", local.Title)
	}
}

func TestHabits(t *testing.T) {
	srv, a, user := loggedIn(t)
	habit := srv.SeedHabit(user.ID, types.Habit{Name: "Meditar", Frequency: "DAILY"})
	ctx := context.Background()

	if err := a.Habits.LoadAll(ctx); err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}
	generated, err := a.Habits.Generate(ctx)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if len(generated) == 0 || a.Habits.Len() != 1+len(generated) {
		t.Fatalf("Len() = %d after generating %d", a.Habits.Len(), len(generated))
	}

	if _, err := a.Habits.Log(ctx, habit.ID, types.LogHabitRequest{Date: "2025-06-10", Completed: true}); err != nil {
		t.Fatalf("Log() failed: %v", err)
	}
	if _, err := a.Habits.Log(ctx, habit.ID, types.LogHabitRequest{Date: "2025-06-20", Completed: true}); err != nil {
		t.Fatalf("Log() failed: %v", err)
	}
	logs, err := a.Habits.Logs(ctx, habit.ID, "2025-06-09", "2025-06-15")
	if err != nil {
		t.Fatalf("Logs() failed: %v", err)
	}
	if len(logs) != 1 || logs[0].Date != "2025-06-10" {
		t.Errorf("Logs() = %+v", logs)
	}

	if _, err := a.Habits.Logs(ctx, 9999, "", ""); !errors.Is(err, types.ErrFetch) {
		t.Errorf("Logs(unknown) error = %v, want ErrFetch", err)
	}
}

func TestGoalsAreReadOnly(t *testing.T) {
	srv, a, user := loggedIn(t)
	srv.SeedGoal(user.ID, types.Goal{Title: "Correr 5 km"})
	ctx := context.Background()

	if err := a.Goals.LoadAll(ctx); err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}
	if _, err := a.Goals.Create(ctx, types.GoalRequest{}); !errors.Is(err, types.ErrUnsupported) {
		t.Errorf("Create() error = %v, want ErrUnsupported", err)
	}
	before := srv.TotalCalls()
	if err := a.Goals.Delete(ctx, 1); !errors.Is(err, types.ErrUnsupported) {
		t.Errorf("Delete() error = %v, want ErrUnsupported", err)
	}
	if srv.TotalCalls() != before {
		t.Error("unsupported write reached the server")
	}

	generated, err := a.Goals.Generate(ctx)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if a.Goals.Len() != 1+len(generated) {
		t.Errorf("Len() = %d", a.Goals.Len())
	}
}

func TestJournal(t *testing.T) {
	_, a, _ := loggedIn(t)
	ctx := context.Background()

	entry, err := a.Journal.Create(ctx, types.JournalEntryRequest{Title: "Lunes", Content: "Buen día"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if _, err := a.Journal.Update(ctx, entry.ID, types.JournalEntryRequest{Title: "Lunes", Content: "Muy buen día"}); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if err := a.Journal.LoadAll(ctx); err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}
	if got, _ := a.Journal.Find(entry.ID); got.Content != "Muy buen día" {
		t.Errorf("Find() = %+v", got)
	}
	if err := a.Journal.Delete(ctx, entry.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if a.Journal.Len() != 0 {
		t.Errorf("Len() = %d", a.Journal.Len())
	}
}

func TestMoods(t *testing.T) {
	srv, a, user := loggedIn(t)
	srv.SeedMood(types.MoodEntry{UserID: user.ID, Date: "2025-06-09", Mood: types.MoodHappy})
	srv.SeedMood(types.MoodEntry{UserID: user.ID, Date: "2025-06-10", Mood: types.MoodSad})
	srv.SeedMood(types.MoodEntry{UserID: user.ID, Date: "2025-05-01", Mood: types.MoodVeryHappy})
	ctx := context.Background()

	if err := a.Moods.LoadRange(ctx, "2025-06-09", "2025-06-15"); err != nil {
		t.Fatalf("LoadRange() failed: %v", err)
	}
	if a.Moods.Len() != 2 || a.Moods.Days() != 2 {
		t.Fatalf("Len() = %d, Days() = %d", a.Moods.Len(), a.Moods.Days())
	}
	sum := a.Moods.Summary("2025-06-09", "2025-06-15")
	if sum.TotalEntries != 2 || sum.AverageMood != 3 || sum.MoodCounts[types.MoodHappy] != 1 {
		t.Errorf("Summary() = %+v", sum)
	}

	entry, err := a.Moods.ForDate(ctx, "2025-06-10")
	if err != nil || entry == nil || entry.Mood != types.MoodSad {
		t.Fatalf("ForDate() = %+v, %v", entry, err)
	}
	entry, err = a.Moods.ForDate(ctx, "2025-06-11")
	if err != nil || entry != nil {
		t.Errorf("ForDate(empty day) = %+v, %v; want nil, nil", entry, err)
	}

	if _, err := a.Moods.Create(ctx, types.MoodEntryRequest{Date: "2025-06-10", Mood: types.MoodHappy}); !errors.Is(err, types.ErrMutation) {
		t.Errorf("duplicate Create() error = %v, want ErrMutation", err)
	}
	if a.Moods.Len() != 2 {
		t.Errorf("Len() = %d after a rejected create", a.Moods.Len())
	}
}

func TestNotificationSettings(t *testing.T) {
	srv, a, _ := loggedIn(t)
	ctx := context.Background()

	settings, err := a.NotificationSettings.Load(ctx)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if settings.ReminderTime != "09:00" {
		t.Errorf("default ReminderTime = %q", settings.ReminderTime)
	}

	at := "21:30"
	off := false
	updated, err := a.NotificationSettings.Update(ctx, types.UpdateNotificationSettingsRequest{ReminderTime: &at, EnableWeeklyReport: &off})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if updated.ReminderTime != "21:30" || updated.EnableWeeklyReport || !updated.EnableDailyReminders {
		t.Errorf("Update() = %+v", updated)
	}
	var sent map[string]any
	json.Unmarshal(srv.LastBody(http.MethodPut, "/users/{uid}/notification-settings"), &sent)
	if _, ok := sent["enableMoodReminders"]; ok {
		t.Errorf("unchanged fields were sent: %v", sent)
	}

	bad := "25:00"
	if _, err := a.NotificationSettings.Update(ctx, types.UpdateNotificationSettingsRequest{ReminderTime: &bad}); !errors.Is(err, types.ErrMutation) {
		t.Errorf("Update(bad time) error = %v, want ErrMutation", err)
	}
	if current, _ := a.NotificationSettings.Current(); current.ReminderTime != "21:30" {
		t.Errorf("Current() = %+v after a rejected update", current)
	}
}

func TestNotificationsInbox(t *testing.T) {
	srv, a, user := loggedIn(t)
	first := srv.SeedNotification(user.ID, types.Notification{Type: types.NotificationReminder, Title: "Agua"})
	srv.SeedNotification(user.ID, types.Notification{Type: types.NotificationTaskDue, Title: "Tarea"})
	last := srv.SeedNotification(user.ID, types.Notification{Type: types.NotificationSystem, Title: "Bienvenida"})
	ctx := context.Background()

	if err := a.Notifications.LoadPage(ctx, 0, 2); err != nil {
		t.Fatalf("LoadPage() failed: %v", err)
	}
	items := a.Notifications.Items()
	if len(items) != 2 || a.Notifications.Total() != 3 || items[0].ID != last.ID {
		t.Fatalf("page = %+v, total %d", items, a.Notifications.Total())
	}

	if err := a.Notifications.MarkRead(ctx, last.ID); err != nil {
		t.Fatalf("MarkRead() failed: %v", err)
	}
	if a.Notifications.Unread() != 1 {
		t.Errorf("Unread() = %d, want 1", a.Notifications.Unread())
	}
	if err := a.Notifications.MarkAllRead(ctx); err != nil {
		t.Fatalf("MarkAllRead() failed: %v", err)
	}
	if a.Notifications.Unread() != 0 {
		t.Errorf("Unread() = %d, want 0", a.Notifications.Unread())
	}

	if err := a.Notifications.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if a.Notifications.Total() != 3 {
		t.Errorf("Total() = %d; deleting an item outside the page must not change it", a.Notifications.Total())
	}
	if err := a.Notifications.Delete(ctx, last.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if a.Notifications.Total() != 2 || len(a.Notifications.Items()) != 1 {
		t.Errorf("Total() = %d, Items() = %+v", a.Notifications.Total(), a.Notifications.Items())
	}

	srv.FailNext(http.MethodDelete, "/users/{uid}/notifications/clear-all", http.StatusInternalServerError)
	if err := a.Notifications.ClearAll(ctx); !errors.Is(err, types.ErrMutation) {
		t.Fatalf("ClearAll() error = %v, want ErrMutation", err)
	}
	if len(a.Notifications.Items()) != 1 {
		t.Error("failed ClearAll() emptied the inbox")
	}
	if err := a.Notifications.ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll() failed: %v", err)
	}
	if a.Notifications.Total() != 0 || len(a.Notifications.Items()) != 0 {
		t.Error("inbox not empty after ClearAll()")
	}
}
