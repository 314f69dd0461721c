package mockapi

import (
	"net/http"
	"slices"
	"strings"

	"clementus360/ai-helper-client/types"
)

func (s *Server) GetHabitsHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, nonNil(s.habits[userID(r)]))
}

func (s *Server) GetHabitHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	owner := userID(r)
	i := s.habitIndex(owner, id)
	if i < 0 {
		writeError(w, "Habit not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, s.habits[owner][i])
}

func (s *Server) CreateHabitHandler(w http.ResponseWriter, r *http.Request) {
	var req types.HabitRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, "Missing name", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	owner := userID(r)
	habit := types.Habit{
		ID:          s.id(),
		Name:        req.Name,
		Description: req.Description,
		Frequency:   req.Frequency,
		CreatedAt:   s.stamp(),
	}
	s.habits[owner] = append(s.habits[owner], habit)
	writeJSON(w, http.StatusCreated, habit)
}

func (s *Server) UpdateHabitHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req types.HabitRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, "Missing name", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	owner := userID(r)
	i := s.habitIndex(owner, id)
	if i < 0 {
		writeError(w, "Habit not found", http.StatusNotFound)
		return
	}
	h := &s.habits[owner][i]
	h.Name = req.Name
	h.Description = req.Description
	h.Frequency = req.Frequency
	writeJSON(w, http.StatusOK, *h)
}

func (s *Server) DeleteHabitHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	owner := userID(r)
	i := s.habitIndex(owner, id)
	if i < 0 {
		writeError(w, "Habit not found", http.StatusNotFound)
		return
	}
	s.habits[owner] = slices.Delete(s.habits[owner], i, i+1)
	s.habitLogs = slices.DeleteFunc(s.habitLogs, func(l types.HabitLog) bool { return l.HabitID == id })
	w.WriteHeader(http.StatusNoContent)
}

// GenerateHabitsHandler adds the assistant's suggestions and returns only those.
func (s *Server) GenerateHabitsHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	owner := userID(r)
	created := []types.Habit{}
	for _, h := range suggestedHabits() {
		h.ID = s.id()
		h.CreatedAt = s.stamp()
		created = append(created, h)
	}
	s.habits[owner] = append(s.habits[owner], created...)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) LogHabitHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req types.LogHabitRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Date == "" {
		req.Date = s.today()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.habitIndex(userID(r), id) < 0 {
		writeError(w, "Habit not found", http.StatusNotFound)
		return
	}
	entry := types.HabitLog{
		ID:        s.id(),
		HabitID:   id,
		Date:      req.Date,
		Notes:     req.Notes,
		Completed: req.Completed,
	}
	s.habitLogs = append(s.habitLogs, entry)
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) GetHabitLogsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.habitIndex(userID(r), id) < 0 {
		writeError(w, "Habit not found", http.StatusNotFound)
		return
	}
	logs := []types.HabitLog{}
	for _, l := range s.habitLogs {
		if l.HabitID == id && inRange(l.Date, from, to) {
			logs = append(logs, l)
		}
	}
	writeJSON(w, http.StatusOK, logs)
}

func (s *Server) habitIndex(owner, id int64) int {
	return slices.IndexFunc(s.habits[owner], func(h types.Habit) bool { return h.ID == id })
}

func (s *Server) SeedHabit(owner int64, h types.Habit) types.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	h.ID = s.reserve(h.ID)
	s.habits[owner] = append(s.habits[owner], h)
	return h
}

// inRange compares YYYY-MM-DD dates; empty bounds are open.
func inRange(date, from, to string) bool {
	return (from == "" || date >= from) && (to == "" || date <= to)
}
