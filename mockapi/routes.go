package mockapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer, s.corsHandler(), s.LoggingMiddleware)

	if s.opts.BasePath != "" && s.opts.BasePath != "/" {
		r.Route(s.opts.BasePath, s.registerRoutes)
	} else {
		s.registerRoutes(r)
	}
	return r
}

// public registers a route that needs no token.
func (s *Server) public(r chi.Router, method, pattern string, h http.HandlerFunc) {
	r.Method(method, pattern, s.instrument(method, pattern, h))
}

func (s *Server) private(r chi.Router, method, pattern string, h http.HandlerFunc) {
	r.Method(method, pattern, s.instrument(method, pattern, s.AuthMiddleware(h)))
}

func (s *Server) registerRoutes(r chi.Router) {
	s.registerAuthRoutes(r)
	s.registerTaskRoutes(r)
	s.registerHabitRoutes(r)
	s.registerGoalRoutes(r)
	s.registerJournalRoutes(r)
	s.registerMoodRoutes(r)
	s.registerNotificationRoutes(r)
	s.registerChatRoutes(r)
	s.registerPlanRoutes(r)
}

func (s *Server) registerAuthRoutes(r chi.Router) {
	s.public(r, http.MethodPost, "/auth/login", s.LoginHandler)
	s.public(r, http.MethodPost, "/auth/register", s.RegisterHandler)
	s.public(r, http.MethodPost, "/auth/logout", s.LogoutHandler)
}

func (s *Server) registerTaskRoutes(r chi.Router) {
	s.private(r, http.MethodGet, "/users/{uid}/tasks", s.GetTasksHandler)
	s.private(r, http.MethodPost, "/users/{uid}/tasks", s.CreateTaskHandler)
	s.private(r, http.MethodGet, "/users/{uid}/tasks/{id}", s.GetSingleTaskHandler)
	s.private(r, http.MethodPut, "/users/{uid}/tasks/{id}", s.UpdateTaskHandler)
	s.private(r, http.MethodDelete, "/users/{uid}/tasks/{id}", s.DeleteTaskHandler)
}

func (s *Server) registerHabitRoutes(r chi.Router) {
	s.private(r, http.MethodGet, "/habits", s.GetHabitsHandler)
	s.private(r, http.MethodPost, "/habits", s.CreateHabitHandler)
	s.private(r, http.MethodPost, "/habits/generate", s.GenerateHabitsHandler)
	s.private(r, http.MethodGet, "/habits/{id}", s.GetHabitHandler)
	s.private(r, http.MethodPut, "/habits/{id}", s.UpdateHabitHandler)
	s.private(r, http.MethodDelete, "/habits/{id}", s.DeleteHabitHandler)
	s.private(r, http.MethodPost, "/habits/{id}/logs", s.LogHabitHandler)
	s.private(r, http.MethodGet, "/habits/{id}/logs", s.GetHabitLogsHandler)
}

func (s *Server) registerGoalRoutes(r chi.Router) {
	s.private(r, http.MethodGet, "/goals", s.GetGoalsHandler)
	s.private(r, http.MethodPost, "/goals/generate", s.GenerateGoalsHandler)
	s.private(r, http.MethodGet, "/goals/{id}", s.GetGoalHandler)
}

func (s *Server) registerJournalRoutes(r chi.Router) {
	s.private(r, http.MethodGet, "/journal", s.GetJournalHandler)
	s.private(r, http.MethodPost, "/journal", s.CreateJournalHandler)
	s.private(r, http.MethodGet, "/journal/{id}", s.GetJournalEntryHandler)
	s.private(r, http.MethodPut, "/journal/{id}", s.UpdateJournalHandler)
	s.private(r, http.MethodDelete, "/journal/{id}", s.DeleteJournalHandler)
}

func (s *Server) registerMoodRoutes(r chi.Router) {
	s.private(r, http.MethodGet, "/users/{uid}/moods", s.GetMoodsHandler)
	s.private(r, http.MethodPost, "/users/{uid}/moods", s.CreateMoodHandler)
	s.private(r, http.MethodGet, "/users/{uid}/moods/date/{date}", s.GetMoodByDateHandler)
	s.private(r, http.MethodGet, "/users/{uid}/moods/{id}", s.GetMoodHandler)
	s.private(r, http.MethodPut, "/users/{uid}/moods/{id}", s.UpdateMoodHandler)
	s.private(r, http.MethodDelete, "/users/{uid}/moods/{id}", s.DeleteMoodHandler)
}

func (s *Server) registerNotificationRoutes(r chi.Router) {
	s.private(r, http.MethodGet, "/users/{uid}/notification-settings", s.GetNotificationSettingsHandler)
	s.private(r, http.MethodPut, "/users/{uid}/notification-settings", s.UpdateNotificationSettingsHandler)
	s.private(r, http.MethodGet, "/users/{uid}/notifications", s.GetNotificationsHandler)
	s.private(r, http.MethodPut, "/users/{uid}/notifications/read-all", s.MarkAllNotificationsReadHandler)
	s.private(r, http.MethodDelete, "/users/{uid}/notifications/clear-all", s.ClearNotificationsHandler)
	s.private(r, http.MethodPut, "/users/{uid}/notifications/{id}/read", s.MarkNotificationReadHandler)
	s.private(r, http.MethodDelete, "/users/{uid}/notifications/{id}", s.DeleteNotificationHandler)
}

func (s *Server) registerChatRoutes(r chi.Router) {
	s.private(r, http.MethodPost, "/ai/conversations", s.CreateConversationHandler)
	s.private(r, http.MethodGet, "/ai/conversations/{id}", s.GetConversationHandler)
	s.private(r, http.MethodPost, "/ai/conversations/{id}/messages", s.SendMessageHandler)
}

func (s *Server) registerPlanRoutes(r chi.Router) {
	s.private(r, http.MethodPost, "/plans", s.CreatePlanHandler)
	s.private(r, http.MethodGet, "/plans/current", s.GetCurrentPlanHandler)
	s.private(r, http.MethodGet, "/plans/{id}/tasks", s.GetPlanTasksHandler)
	s.private(r, http.MethodPatch, "/plans/{id}/tasks/{taskId}", s.TogglePlanTaskHandler)
}
