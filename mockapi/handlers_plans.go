package mockapi

import (
	"net/http"
	"slices"
	"time"

	"clementus360/ai-helper-client/types"
)

func (s *Server) CreatePlanHandler(w http.ResponseWriter, r *http.Request) {
	var req types.CreatePlanRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	start, err := time.Parse(types.DateLayout, req.WeekStart)
	if err != nil {
		writeError(w, "weekStart must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	// anchor to the Monday of that week
	start = start.AddDate(0, 0, -((int(start.Weekday()) + 6) % 7))

	s.mu.Lock()
	defer s.mu.Unlock()
	owner := userID(r)
	p := &plan{
		owner: owner,
		plan:  types.WeeklyPlan{ID: s.id(), WeekStart: start.Format(types.DateLayout), Tasks: []types.PlanTask{}},
	}
	if !s.opts.EmptyPlans {
		for _, t := range weekTasks() {
			t.ID = s.id()
			p.plan.Tasks = append(p.plan.Tasks, t)
		}
	}
	s.plans[p.plan.ID] = p
	s.currentPlan[owner] = p.plan.ID
	writeJSON(w, http.StatusCreated, p.plan)
}

func (s *Server) GetCurrentPlanHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.currentPlan[userID(r)]
	if !ok {
		writeError(w, "No current plan", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, s.plans[id].plan)
}

func (s *Server) GetPlanTasksHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.plans[id]
	if !ok || p.owner != userID(r) {
		writeError(w, "Plan not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(p.plan.Tasks))
}

// TogglePlanTaskHandler is a partial update: only completed is read.
func (s *Server) TogglePlanTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	taskID, ok := pathID(w, r, "taskId")
	if !ok {
		return
	}
	var patch types.PlanTaskPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.plans[id]
	if !ok || p.owner != userID(r) {
		writeError(w, "Plan not found", http.StatusNotFound)
		return
	}
	i := slices.IndexFunc(p.plan.Tasks, func(t types.PlanTask) bool { return t.ID == taskID })
	if i < 0 {
		writeError(w, "Task not found", http.StatusNotFound)
		return
	}
	p.plan.Tasks[i].Completed = patch.Completed
	writeJSON(w, http.StatusOK, p.plan.Tasks[i])
}

// Plan returns a stored plan.
func (s *Server) Plan(id int64) (types.WeeklyPlan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.plans[id]
	if !ok {
		return types.WeeklyPlan{}, false
	}
	out := p.plan
	out.Tasks = slices.Clone(p.plan.Tasks)
	return out, true
}
