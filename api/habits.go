package api

import (
	"context"
	"fmt"
	"net/url"

	"clementus360/ai-helper-client/types"
)

type Habits struct {
	r Requester
}

func NewHabits(r Requester) *Habits {
	return &Habits{r: r}
}

func (h *Habits) List(ctx context.Context) ([]types.Habit, error) {
	var habits []types.Habit
	err := h.r.Get(ctx, "/habits", nil, &habits)
	return habits, err
}

func (h *Habits) Get(ctx context.Context, id int64) (types.Habit, error) {
	var habit types.Habit
	err := h.r.Get(ctx, fmt.Sprintf("/habits/%d", id), nil, &habit)
	return habit, err
}

func (h *Habits) Create(ctx context.Context, req types.HabitRequest) (types.Habit, error) {
	var habit types.Habit
	err := h.r.Post(ctx, "/habits", req, &habit)
	return habit, err
}

func (h *Habits) Update(ctx context.Context, id int64, req types.HabitRequest) (types.Habit, error) {
	var habit types.Habit
	err := h.r.Put(ctx, fmt.Sprintf("/habits/%d", id), req, &habit)
	return habit, err
}

func (h *Habits) Delete(ctx context.Context, id int64) error {
	return h.r.Delete(ctx, fmt.Sprintf("/habits/%d", id))
}

// Generate asks the assistant for new habits and returns only the new ones.
func (h *Habits) Generate(ctx context.Context) ([]types.Habit, error) {
	var habits []types.Habit
	err := h.r.Post(ctx, "/habits/generate", nil, &habits)
	return habits, err
}

func (h *Habits) Log(ctx context.Context, id int64, req types.LogHabitRequest) (types.HabitLog, error) {
	var log types.HabitLog
	err := h.r.Post(ctx, fmt.Sprintf("/habits/%d/logs", id), req, &log)
	return log, err
}

// Logs returns the logs of one habit between two YYYY-MM-DD dates, inclusive.
func (h *Habits) Logs(ctx context.Context, id int64, from, to string) ([]types.HabitLog, error) {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	var logs []types.HabitLog
	err := h.r.Get(ctx, fmt.Sprintf("/habits/%d/logs", id), q, &logs)
	return logs, err
}
