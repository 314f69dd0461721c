package planner

import (
	"slices"
	"time"

	"clementus360/ai-helper-client/config"
	"clementus360/ai-helper-client/types"
)

// Day is one bucket of a plan.
type Day struct {
	Label string
	Date  string
	Tasks []types.PlanTask
}

type Plan struct {
	types.WeeklyPlan
}

// ByDay always returns seven buckets, Monday to Sunday. Tasks with an
// unknown day label are logged and left out.
func (p Plan) ByDay() [7]Day {
	var days [7]Day
	for i, label := range DayLabels {
		days[i] = Day{Label: label, Tasks: []types.PlanTask{}}
		if d, ok := p.DateFor(i); ok {
			days[i].Date = d.Format(types.DateLayout)
		}
	}
	for _, task := range p.Tasks {
		i, ok := ParseDay(task.DayOfWeek)
		if !ok {
			config.Component("planner").WithField("task_id", task.ID).Warn("Unknown plan day: ", task.DayOfWeek)
			continue
		}
		days[i].Tasks = append(days[i].Tasks, task)
	}
	return days
}

// DateFor returns the calendar date of the day at index (0 is Monday).
func (p Plan) DateFor(index int) (time.Time, bool) {
	if index < 0 || index > 6 {
		return time.Time{}, false
	}
	start, err := time.Parse(types.DateLayout, p.WeekStart)
	if err != nil {
		return time.Time{}, false
	}
	return start.AddDate(0, 0, index), true
}

func (p Plan) clone() Plan {
	p.Tasks = slices.Clone(p.Tasks)
	return p
}
