package api

import (
	"context"
	"fmt"

	"clementus360/ai-helper-client/types"
)

// Goals can only be listed and generated; the backend offers no goal writes.
type Goals struct {
	r Requester
}

func NewGoals(r Requester) *Goals {
	return &Goals{r: r}
}

func (g *Goals) List(ctx context.Context) ([]types.Goal, error) {
	var goals []types.Goal
	err := g.r.Get(ctx, "/goals", nil, &goals)
	return goals, err
}

func (g *Goals) Get(ctx context.Context, id int64) (types.Goal, error) {
	var goal types.Goal
	err := g.r.Get(ctx, fmt.Sprintf("/goals/%d", id), nil, &goal)
	return goal, err
}

func (g *Goals) Generate(ctx context.Context) ([]types.Goal, error) {
	var goals []types.Goal
	err := g.r.Post(ctx, "/goals/generate", nil, &goals)
	return goals, err
}

func (g *Goals) Create(ctx context.Context, _ types.GoalRequest) (types.Goal, error) {
	return types.Goal{}, types.ErrUnsupported
}

func (g *Goals) Update(ctx context.Context, _ int64, _ types.GoalRequest) (types.Goal, error) {
	return types.Goal{}, types.ErrUnsupported
}

func (g *Goals) Delete(ctx context.Context, _ int64) error {
	return types.ErrUnsupported
}
