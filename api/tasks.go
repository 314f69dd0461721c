package api

import (
	"context"

	"clementus360/ai-helper-client/types"
)

// Tasks is the user-scoped task endpoint. Updates replace the whole task.
type Tasks struct {
	r    Requester
	user UserID
}

func NewTasks(r Requester, user UserID) *Tasks {
	return &Tasks{r: r, user: user}
}

func (t *Tasks) List(ctx context.Context) ([]types.Task, error) {
	var tasks []types.Task
	err := t.r.Get(ctx, userPath(t.user, "/tasks"), nil, &tasks)
	return tasks, err
}

func (t *Tasks) Get(ctx context.Context, id int64) (types.Task, error) {
	var task types.Task
	err := t.r.Get(ctx, userPath(t.user, "/tasks/%d", id), nil, &task)
	return task, err
}

func (t *Tasks) Create(ctx context.Context, req types.TaskRequest) (types.Task, error) {
	var task types.Task
	err := t.r.Post(ctx, userPath(t.user, "/tasks"), req, &task)
	return task, err
}

func (t *Tasks) Update(ctx context.Context, id int64, req types.TaskRequest) (types.Task, error) {
	var task types.Task
	err := t.r.Put(ctx, userPath(t.user, "/tasks/%d", id), req, &task)
	return task, err
}

func (t *Tasks) Delete(ctx context.Context, id int64) error {
	return t.r.Delete(ctx, userPath(t.user, "/tasks/%d", id))
}
