package planner

import (
	"testing"
	"time"

	"clementus360/ai-helper-client/types"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"Lunes", 0, true},
		{"miércoles", 2, true},
		{"MIERCOLES", 2, true},
		{" Sábado ", 5, true},
		{"sabado", 5, true},
		{"Sunday", 6, true},
		{"friday", 4, true},
		{"Someday", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseDay(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseDay(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		day  time.Time
		want string
	}{
		{time.Date(2025, 6, 9, 8, 0, 0, 0, time.UTC), "2025-06-09"},   // Monday
		{time.Date(2025, 6, 12, 23, 0, 0, 0, time.UTC), "2025-06-09"}, // Thursday
		{time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC), "2025-06-09"}, // Sunday
		{time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), "2025-05-26"},  // Sunday across a month
	}
	for _, tt := range tests {
		if got := WeekStart(tt.day); got != tt.want {
			t.Errorf("WeekStart(%s) = %s, want %s", tt.day.Format(time.RFC1123), got, tt.want)
		}
	}
}

func TestByDayAlwaysSevenBuckets(t *testing.T) {
	p := Plan{types.WeeklyPlan{ID: 1, WeekStart: "2025-06-09"}}
	days := p.ByDay()
	for i, d := range days {
		if d.Label != DayLabels[i] || d.Tasks == nil || len(d.Tasks) != 0 {
			t.Errorf("day %d = %+v", i, d)
		}
	}
	if days[0].Date != "2025-06-09" || days[6].Date != "2025-06-15" {
		t.Errorf("dates = %s..%s", days[0].Date, days[6].Date)
	}
}

func TestByDayGroupsTasks(t *testing.T) {
	p := Plan{types.WeeklyPlan{
		ID:        1,
		WeekStart: "2025-06-09",
		Tasks: []types.PlanTask{
			{ID: 1, DayOfWeek: "Lunes"},
			{ID: 2, DayOfWeek: "Miércoles"},
			{ID: 3, DayOfWeek: "lunes"},
			{ID: 4, DayOfWeek: "Feriado"},
		},
	}}
	days := p.ByDay()
	if len(days[0].Tasks) != 2 || len(days[2].Tasks) != 1 {
		t.Errorf("Monday %d tasks, Wednesday %d tasks", len(days[0].Tasks), len(days[2].Tasks))
	}
	total := 0
	for _, d := range days {
		total += len(d.Tasks)
	}
	if total != 3 {
		t.Errorf("bucketed %d tasks, want 3 (unknown day dropped)", total)
	}
}

func TestDateForBounds(t *testing.T) {
	p := Plan{types.WeeklyPlan{WeekStart: "2025-06-09"}}
	if _, ok := p.DateFor(7); ok {
		t.Error("DateFor(7) should fail")
	}
	if _, ok := (Plan{}).DateFor(0); ok {
		t.Error("DateFor() without a week start should fail")
	}
	d, ok := p.DateFor(3)
	if !ok || d.Format(types.DateLayout) != "2025-06-12" {
		t.Errorf("DateFor(3) = %v, %v", d, ok)
	}
}
