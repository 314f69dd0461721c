package resource

import (
	"context"

	"clementus360/ai-helper-client/types"
)

type GoalEndpoint interface {
	Endpoint[types.Goal, types.GoalRequest]
	Generate(ctx context.Context) ([]types.Goal, error)
}

// Goals are read-only apart from generation; the endpoint rejects writes
// with types.ErrUnsupported.
type Goals struct {
	*Sync[types.Goal, types.GoalRequest]
	ep GoalEndpoint
}

func NewGoals(ep GoalEndpoint) *Goals {
	return &Goals{Sync: New("goals", ep), ep: ep}
}

func (g *Goals) Generate(ctx context.Context) ([]types.Goal, error) {
	release, err := g.guard.AcquireCollection()
	if err != nil {
		return nil, types.Wrap(types.ErrMutation, "goals generate", err)
	}
	defer release()

	goals, err := g.ep.Generate(ctx)
	if err != nil {
		return nil, types.Wrap(types.ErrMutation, "goals generate", err)
	}
	g.Merge(goals...)
	return goals, nil
}
