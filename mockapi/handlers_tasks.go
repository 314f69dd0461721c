package mockapi

import (
	"net/http"
	"slices"
	"strings"

	"clementus360/ai-helper-client/types"
)

func (s *Server) GetTasksHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := pathID(w, r, "uid")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := []types.Task{}
	for _, t := range s.tasks {
		if t.UserID == uid {
			tasks = append(tasks, t)
		}
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) GetSingleTaskHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := pathID(w, r, "uid")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.taskIndex(uid, id)
	if i < 0 {
		writeError(w, "Task not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, s.tasks[i])
}

func (s *Server) CreateTaskHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := pathID(w, r, "uid")
	if !ok {
		return
	}
	var req types.TaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, "Missing title", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.stamp()
	task := types.Task{
		ID:          s.id(),
		UserID:      uid,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
		DayOfWeek:   req.DayOfWeek,
		Type:        req.Type,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.tasks = append(s.tasks, task)
	writeJSON(w, http.StatusCreated, task)
}

// UpdateTaskHandler replaces every field; missing fields are cleared.
func (s *Server) UpdateTaskHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := pathID(w, r, "uid")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req types.TaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, "Missing title", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.taskIndex(uid, id)
	if i < 0 {
		writeError(w, "Task not found", http.StatusNotFound)
		return
	}
	t := &s.tasks[i]
	t.Title = req.Title
	t.Description = req.Description
	t.DueDate = req.DueDate
	t.Completed = req.Completed
	t.DayOfWeek = req.DayOfWeek
	t.Type = req.Type
	t.UpdatedAt = s.stamp()
	writeJSON(w, http.StatusOK, *t)
}

func (s *Server) DeleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := pathID(w, r, "uid")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.taskIndex(uid, id)
	if i < 0 {
		writeError(w, "Task not found", http.StatusNotFound)
		return
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) taskIndex(uid, id int64) int {
	return slices.IndexFunc(s.tasks, func(t types.Task) bool { return t.ID == id && t.UserID == uid })
}

// SeedTask stores t as is, assigning an id when it has none.
func (s *Server) SeedTask(t types.Task) types.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.reserve(t.ID)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = s.stamp()
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Task returns the stored task with id.
func (s *Server) Task(id int64) (types.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return types.Task{}, false
}
