package api

import (
	"context"
	"fmt"

	"clementus360/ai-helper-client/types"
)

type Plans struct {
	r Requester
}

func NewPlans(r Requester) *Plans {
	return &Plans{r: r}
}

func (p *Plans) Create(ctx context.Context, weekStart string) (types.WeeklyPlan, error) {
	var plan types.WeeklyPlan
	err := p.r.Post(ctx, "/plans", types.CreatePlanRequest{WeekStart: weekStart}, &plan)
	return plan, err
}

func (p *Plans) Current(ctx context.Context) (types.WeeklyPlan, error) {
	var plan types.WeeklyPlan
	err := p.r.Get(ctx, "/plans/current", nil, &plan)
	return plan, err
}

func (p *Plans) Tasks(ctx context.Context, planID int64) ([]types.PlanTask, error) {
	var tasks []types.PlanTask
	err := p.r.Get(ctx, fmt.Sprintf("/plans/%d/tasks", planID), nil, &tasks)
	return tasks, err
}

// SetCompleted is the only partial update the backend accepts.
func (p *Plans) SetCompleted(ctx context.Context, planID, taskID int64, completed bool) (types.PlanTask, error) {
	var task types.PlanTask
	err := p.r.Patch(ctx, fmt.Sprintf("/plans/%d/tasks/%d", planID, taskID), types.PlanTaskPatch{Completed: completed}, &task)
	return task, err
}
