package types

type PlanTask struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	DayOfWeek   string `json:"dayOfWeek"`
	Type        string `json:"type"`
	Completed   bool   `json:"completed"`
}

type WeeklyPlan struct {
	ID        int64      `json:"id"`
	WeekStart string     `json:"weekStart"` // YYYY-MM-DD, a Monday
	Tasks     []PlanTask `json:"tasks"`
}

type CreatePlanRequest struct {
	WeekStart string `json:"weekStart"`
}

// PlanTaskPatch is the partial update accepted by the plan task endpoint.
type PlanTaskPatch struct {
	Completed bool `json:"completed"`
}
