package planner

import (
	"strings"
	"time"

	"clementus360/ai-helper-client/types"
)

// DayLabels are the backend's day names, Monday first.
var DayLabels = [7]string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

var dayAliases = map[string]int{
	"lunes": 0, "martes": 1, "miércoles": 2, "miercoles": 2, "jueves": 3,
	"viernes": 4, "sábado": 5, "sabado": 5, "domingo": 6,
	"monday": 0, "tuesday": 1, "wednesday": 2, "thursday": 3,
	"friday": 4, "saturday": 5, "sunday": 6,
}

// ParseDay returns the Monday-based index of a day label.
func ParseDay(label string) (int, bool) {
	i, ok := dayAliases[strings.ToLower(strings.TrimSpace(label))]
	return i, ok
}

// WeekStart returns the Monday of t's week as YYYY-MM-DD.
func WeekStart(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset).Format(types.DateLayout)
}
