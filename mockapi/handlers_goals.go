package mockapi

import (
	"net/http"
	"slices"

	"clementus360/ai-helper-client/types"
)

func (s *Server) GetGoalsHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, nonNil(s.goals[userID(r)]))
}

func (s *Server) GetGoalHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	goals := s.goals[userID(r)]
	i := slices.IndexFunc(goals, func(g types.Goal) bool { return g.ID == id })
	if i < 0 {
		writeError(w, "Goal not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, goals[i])
}

func (s *Server) GenerateGoalsHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	owner := userID(r)
	created := []types.Goal{}
	for _, g := range suggestedGoals() {
		g.ID = s.id()
		g.CreatedAt = s.stamp()
		created = append(created, g)
	}
	s.goals[owner] = append(s.goals[owner], created...)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) SeedGoal(owner int64, g types.Goal) types.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	g.ID = s.reserve(g.ID)
	s.goals[owner] = append(s.goals[owner], g)
	return g
}
