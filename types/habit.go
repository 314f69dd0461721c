package types

type Habit struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Frequency   string    `json:"frequency"`
	CreatedAt   Timestamp `json:"createdAt"`
}

func (h Habit) Key() int64 { return h.ID }

type HabitRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Frequency   string `json:"frequency"`
}

type LogHabitRequest struct {
	Date      string `json:"date"`
	Notes     string `json:"notes,omitempty"`
	Completed bool   `json:"completed"`
}

type HabitLog struct {
	ID        int64  `json:"id"`
	HabitID   int64  `json:"habitId"`
	Date      string `json:"date"`
	Notes     string `json:"notes,omitempty"`
	Completed bool   `json:"completed"`
}
