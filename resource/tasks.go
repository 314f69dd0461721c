package resource

import (
	"context"

	"clementus360/ai-helper-client/types"
)

type Tasks struct {
	*Sync[types.Task, types.TaskRequest]
}

func NewTasks(ep Endpoint[types.Task, types.TaskRequest]) *Tasks {
	return &Tasks{Sync: New("tasks", ep)}
}

// ToggleCompleted sends the full task with completed set to !current.
func (t *Tasks) ToggleCompleted(ctx context.Context, id int64, current bool) (types.Task, error) {
	return t.Toggle(ctx, id, func(task types.Task) types.TaskRequest {
		req := task.Request()
		req.Completed = !current
		return req
	})
}

// Completed counts the completed tasks in the collection.
func (t *Tasks) Completed() int {
	n := 0
	for _, task := range t.Items() {
		if task.Completed {
			n++
		}
	}
	return n
}
