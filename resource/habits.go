package resource

import (
	"context"

	"clementus360/ai-helper-client/types"
)

type HabitEndpoint interface {
	Endpoint[types.Habit, types.HabitRequest]
	Generate(ctx context.Context) ([]types.Habit, error)
	Log(ctx context.Context, id int64, req types.LogHabitRequest) (types.HabitLog, error)
	Logs(ctx context.Context, id int64, from, to string) ([]types.HabitLog, error)
}

type Habits struct {
	*Sync[types.Habit, types.HabitRequest]
	ep HabitEndpoint
}

func NewHabits(ep HabitEndpoint) *Habits {
	return &Habits{Sync: New("habits", ep), ep: ep}
}

// Generate merges the generated habits into the collection.
func (h *Habits) Generate(ctx context.Context) ([]types.Habit, error) {
	release, err := h.guard.AcquireCollection()
	if err != nil {
		return nil, types.Wrap(types.ErrMutation, "habits generate", err)
	}
	defer release()

	habits, err := h.ep.Generate(ctx)
	if err != nil {
		return nil, types.Wrap(types.ErrMutation, "habits generate", err)
	}
	h.Merge(habits...)
	return habits, nil
}

func (h *Habits) Log(ctx context.Context, id int64, req types.LogHabitRequest) (types.HabitLog, error) {
	release, err := h.guard.Acquire(id)
	if err != nil {
		return types.HabitLog{}, types.Wrap(types.ErrMutation, "habits log", err)
	}
	defer release()

	log, err := h.ep.Log(ctx, id, req)
	if err != nil {
		return types.HabitLog{}, types.Wrap(types.ErrMutation, "habits log", err)
	}
	return log, nil
}

func (h *Habits) Logs(ctx context.Context, id int64, from, to string) ([]types.HabitLog, error) {
	logs, err := h.ep.Logs(ctx, id, from, to)
	if err != nil {
		return nil, types.Wrap(types.ErrFetch, "habits logs", err)
	}
	return logs, nil
}
