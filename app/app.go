// Package app wires every component around one session. It is the only
// place that knows how they fit together; nothing below it reaches for
// global session state.
package app

import (
	"context"
	"fmt"

	"clementus360/ai-helper-client/api"
	"clementus360/ai-helper-client/chat"
	"clementus360/ai-helper-client/client"
	"clementus360/ai-helper-client/config"
	"clementus360/ai-helper-client/dashboard"
	"clementus360/ai-helper-client/planner"
	"clementus360/ai-helper-client/resource"
	"clementus360/ai-helper-client/session"
	"clementus360/ai-helper-client/storage"
)

type App struct {
	Settings config.Settings
	Store    storage.Store
	Client   *client.Client
	Session  *session.Store

	Tasks                *resource.Tasks
	Habits               *resource.Habits
	Goals                *resource.Goals
	Journal              *resource.Journal
	Moods                *resource.Moods
	NotificationSettings *resource.NotificationSettings
	Notifications        *resource.Notifications

	Chat      *chat.Session
	Planner   *planner.Planner
	Dashboard *dashboard.Dashboard
}

// Open opens the store named by settings and builds the app on it.
func Open(ctx context.Context, settings config.Settings, opts ...client.Option) (*App, error) {
	store, err := storage.Open(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}
	return New(ctx, settings, store, opts...), nil
}

// New builds the app on an existing store and restores the session from it.
// A document that cannot be read leaves the session anonymous.
func New(ctx context.Context, settings config.Settings, store storage.Store, opts ...client.Option) *App {
	a := &App{Settings: settings, Store: store}

	opts = append([]client.Option{client.WithTimeout(settings.HTTPTimeout)}, opts...)
	a.Client = client.New(settings.APIBaseURL, client.TokenFunc(func() string {
		return a.Session.Token()
	}), opts...)

	a.Session = session.New(api.NewAuth(a.Client), store, session.WithDefaultUserID(settings.DefaultUserID))
	if err := a.Session.Restore(ctx); err != nil {
		config.Component("app").Warn("Session restore failed, starting anonymous: ", err)
	}

	userID := api.UserID(a.Session.UserID)
	notifications := api.NewNotifications(a.Client, userID)

	a.Tasks = resource.NewTasks(api.NewTasks(a.Client, userID))
	a.Habits = resource.NewHabits(api.NewHabits(a.Client))
	a.Goals = resource.NewGoals(api.NewGoals(a.Client))
	a.Journal = resource.NewJournal(api.NewJournal(a.Client))
	a.Moods = resource.NewMoods(api.NewMoods(a.Client, userID))
	a.NotificationSettings = resource.NewNotificationSettings(notifications)
	a.Notifications = resource.NewNotifications(notifications)

	a.Chat = chat.New(api.NewConversations(a.Client), a.Session, chat.WithOfflineDelay(settings.OfflineReplyDelay))
	a.Planner = planner.New(api.NewPlans(a.Client), a.Session)
	a.Dashboard = &dashboard.Dashboard{Tasks: a.Tasks, Habits: a.Habits, Goals: a.Goals, Moods: a.Moods}
	return a
}

// Logout ends the session and drops everything loaded for it, so the next
// account starts from empty collections and a fresh conversation.
func (a *App) Logout(ctx context.Context) error {
	err := a.Session.Logout(ctx)
	a.Tasks.Reset()
	a.Habits.Reset()
	a.Goals.Reset()
	a.Journal.Reset()
	a.Moods.Reset()
	a.NotificationSettings.Reset()
	a.Notifications.Reset()
	a.Chat.Reset()
	a.Planner.Reset()
	return err
}

func (a *App) Close() error {
	return a.Store.Close()
}
