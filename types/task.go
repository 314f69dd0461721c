package types

type Task struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId,omitempty"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	DueDate     string    `json:"dueDate,omitempty"` // YYYY-MM-DD
	Completed   bool      `json:"completed"`
	CreatedAt   Timestamp `json:"createdAt"`
	UpdatedAt   Timestamp `json:"updatedAt"`
	DayOfWeek   string    `json:"dayOfWeek,omitempty"`
	Type        string    `json:"type,omitempty"`
}

func (t Task) Key() int64 { return t.ID }

// TaskRequest is the full payload expected by the task update endpoint.
type TaskRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
	Completed   bool   `json:"completed"`
	DayOfWeek   string `json:"dayOfWeek,omitempty"`
	Type        string `json:"type,omitempty"`
}

// Request rebuilds the full update payload from a stored task.
func (t Task) Request() TaskRequest {
	return TaskRequest{
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Completed:   t.Completed,
		DayOfWeek:   t.DayOfWeek,
		Type:        t.Type,
	}
}
