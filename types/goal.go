package types

// Goal is a SMART goal produced by the backend.
type Goal struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Specific    string    `json:"specific"`
	Measurable  string    `json:"measurable"`
	Achievable  string    `json:"achievable"`
	Relevant    string    `json:"relevant"`
	TimeBound   string    `json:"timeBound"`
	CreatedAt   Timestamp `json:"createdAt"`
}

func (g Goal) Key() int64 { return g.ID }

// GoalRequest is empty: goals are only generated server-side.
type GoalRequest struct{}
