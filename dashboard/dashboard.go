// Package dashboard builds the home summary from several collections loaded
// concurrently. Each section fails on its own.
package dashboard

import (
	"context"
	"time"

	"clementus360/ai-helper-client/config"
	"clementus360/ai-helper-client/resource"
	"clementus360/ai-helper-client/types"

	"golang.org/x/sync/errgroup"
)

type Summary struct {
	Greeting       string
	CompletedTasks int
	TotalTasks     int
	ActiveHabits   int
	Goals          int
	MoodDays       int
	AverageMood    float64

	// Per-section load errors; nil when the section loaded.
	TasksErr  error
	HabitsErr error
	GoalsErr  error
	MoodsErr  error
}

// Err returns the first section error, if any.
func (s Summary) Err() error {
	for _, err := range []error{s.TasksErr, s.HabitsErr, s.GoalsErr, s.MoodsErr} {
		if err != nil {
			return err
		}
	}
	return nil
}

type Dashboard struct {
	Tasks  *resource.Tasks
	Habits *resource.Habits
	Goals  *resource.Goals
	Moods  *resource.Moods
}

// Load refreshes the four collections in parallel. The moods section covers
// the seven days ending at now. A failed section keeps whatever its
// collection held before and reports its error in the summary.
func (d *Dashboard) Load(ctx context.Context, now time.Time) Summary {
	var sum Summary
	end := now.Format(types.DateLayout)
	start := now.AddDate(0, 0, -6).Format(types.DateLayout)

	// The closures never return an error: a failed section must not cancel
	// its siblings, so each records its own error in the summary and Wait
	// only joins the goroutines.
	var g errgroup.Group
	g.Go(func() error {
		sum.TasksErr = d.Tasks.LoadAll(ctx)
		return nil
	})
	g.Go(func() error {
		sum.HabitsErr = d.Habits.LoadAll(ctx)
		return nil
	})
	g.Go(func() error {
		sum.GoalsErr = d.Goals.LoadAll(ctx)
		return nil
	})
	g.Go(func() error {
		sum.MoodsErr = d.Moods.LoadRange(ctx, start, end)
		return nil
	})
	_ = g.Wait()

	sum.Greeting = Greeting(now)
	sum.TotalTasks = d.Tasks.Len()
	sum.CompletedTasks = d.Tasks.Completed()
	sum.ActiveHabits = d.Habits.Len()
	sum.Goals = d.Goals.Len()
	sum.MoodDays = d.Moods.Days()
	sum.AverageMood = d.Moods.Summary(start, end).AverageMood

	for name, err := range map[string]error{"tasks": sum.TasksErr, "habits": sum.HabitsErr, "goals": sum.GoalsErr, "moods": sum.MoodsErr} {
		if err != nil {
			config.Component("dashboard").WithField("section", name).Warn("Section failed to load: ", err)
		}
	}
	return sum
}

func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Buenos días"
	case h < 20:
		return "Buenas tardes"
	default:
		return "Buenas noches"
	}
}
