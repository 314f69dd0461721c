package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"clementus360/ai-helper-client/types"

	"github.com/urfave/cli/v2"
)

func (r *runner) tasksCommand() *cli.Command {
	return &cli.Command{
		Name:  "tasks",
		Usage: "manage tasks",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list tasks",
				Action: func(c *cli.Context) error {
					a, err := r.authed(c)
					if err != nil {
						return err
					}
					if err := a.Tasks.LoadAll(c.Context); err != nil {
						return err
					}
					stdoutTable("ID\tDONE\tTITLE\tDUE\tCREATED", func(w io.Writer) {
						for _, t := range a.Tasks.Items() {
							fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", t.ID, check(t.Completed), t.Title, t.DueDate, ago(t.CreatedAt))
						}
					})
					return nil
				},
			},
			{
				Name:  "add",
				Usage: "create a task",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Required: true},
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}},
					&cli.StringFlag{Name: "due", Usage: "due date, YYYY-MM-DD"},
				},
				Action: func(c *cli.Context) error {
					a, err := r.authed(c)
					if err != nil {
						return err
					}
					task, err := a.Tasks.Create(c.Context, types.TaskRequest{
						Title:       c.String("title"),
						Description: c.String("description"),
						DueDate:     c.String("due"),
					})
					if err != nil {
						return err
					}
					fmt.Printf("Created task %d\n", task.ID)
					return nil
				},
			},
			{
				Name:      "done",
				Usage:     "toggle a task's completion",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					a, err := r.authed(c)
					if err != nil {
						return err
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					if err := a.Tasks.LoadAll(c.Context); err != nil {
						return err
					}
					current, ok := a.Tasks.Find(id)
					if !ok {
						return fmt.Errorf("task %d not found", id)
					}
					task, err := a.Tasks.ToggleCompleted(c.Context, id, current.Completed)
					if err != nil {
						return err
					}
					fmt.Printf("%s %s\n", check(task.Completed), task.Title)
					return nil
				},
			},
			{
				Name:      "rm",
				Usage:     "delete a task",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					a, err := r.authed(c)
					if err != nil {
						return err
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					return a.Tasks.Delete(c.Context, id)
				},
			},
		},
	}
}

func (r *runner) habitsCommand() *cli.Command {
	return &cli.Command{
		Name:  "habits",
		Usage: "manage habits",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list habits",
				Action: func(c *cli.Context) error {
					a, err := r.authed(c)
					if err != nil {
						return err
					}
					if err := a.Habits.LoadAll(c.Context); err != nil {
						return err
					}
					printHabits(a.Habits.Items())
					return nil
				},
			},
			{
				Name:  "add",
				Usage: "create a habit",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true},
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}},
					&cli.StringFlag{Name: "frequency", Aliases: []string{"f"}, Value: "DAILY"},
				},
				Action: func(c *cli.Context) error {
					a, err := r.authed(c)
					if err != nil {
						return err
					}
					habit, err := a.Habits.Create(c.Context, types.HabitRequest{
						Name:        c.String("name"),
						Description: c.String("description"),
						Frequency:   strings.ToUpper(c.String("frequency")),
					})
					if err != nil {
						return err
					}
					fmt.Printf("Created habit %d\n", habit.ID)
					return nil
				},
			},
			{
				Name:  "generate",
				Usage: "ask the assistant for habits",
				Action: func(c *cli.Context) error {
					a, err := r.authed(c)
					if err != nil {
						return err
					}
					habits, err := a.Habits.Generate(c.Context)
					if err != nil {
						return err
					}
					printHabits(habits)
					return nil
				},
			},
			{
				Name:      "log",
				Usage:     "record a habit for a day",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "date", Usage: "YYYY-MM-DD, default today"},
					&cli.StringFlag{Name: "notes"},
					&cli.BoolFlag{Name: "missed", Usage: "record the day as not completed"},
				},
				Action: func(c *cli.Context) error {
					a, err := r.authed(c)
					if err != nil {
						return err
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					date := c.String("date")
					if date == "" {
						date = time.Now().Format(types.DateLayout)
					}
					entry, err := a.Habits.Log(c.Context, id, types.LogHabitRequest{
						Date:      date,
						Notes:     c.String("notes"),
						Completed: !c.Bool("missed"),
					})
					if err != nil {
						return err
					}
					fmt.Printf("Logged habit %d for %s %s\n", entry.HabitID, entry.Date, check(entry.Completed))
					return nil
				},
			},
		},
	}
}

func printHabits(habits []types.Habit) {
	stdoutTable("ID\tNAME\tFREQUENCY\tDESCRIPTION", func(w io.Writer) {
		for _, h := range habits {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", h.ID, h.Name, h.Frequency, h.Description)
		}
	})
}

func (r *runner) goalsCommand() *cli.Command {
	return &cli.Command{
		Name:  "goals",
		Usage: "view and generate SMART goals",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list goals",
				Action: func(c *cli.Context) error {
					a, err := r.authed(c)
					if err != nil {
						return err
					}
					if err := a.Goals.LoadAll(c.Context); err != nil {
						return err
					}
					printGoals(a.Goals.Items())
					return nil
				},
			},
			{
				Name:  "generate",
				Usage: "ask the assistant for goals",
				Action: func(c *cli.Context) error {
					a, err := r.authed(c)
					if err != nil {
						return err
					}
					goals, err := a.Goals.Generate(c.Context)
					if err != nil {
						return err
					}
					printGoals(goals)
					return nil
				},
			},
		},
	}
}

func printGoals(goals []types.Goal) {
	for _, g := range goals {
		fmt.Printf("#%d %s\n  %s\n  S: %s\n  M: %s\n  A: %s\n  R: %s\n  T: %s\n",
			g.ID, g.Title, g.Description, g.Specific, g.Measurable, g.Achievable, g.Relevant, g.TimeBound)
	}
}

func (r *runner) journalCommand() *cli.Command {
	return &cli.Command{
		Name:  "journal",
		Usage: "manage journal entries",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list entries",
				Action: func(c *cli.Context) error {
					a, err := r.authed(c)
					if err != nil {
						return err
					}
					if err := a.Journal.LoadAll(c.Context); err != nil {
						return err
					}
					stdoutTable("ID\tTITLE\tMOOD\tWRITTEN", func(w io.Writer) {
						for _, e := range a.Journal.Items() {
							fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, e.Title, e.Mood, ago(e.CreatedAt))
						}
					})
					return nil
				},
			},
			{
				Name:  "add",
				Usage: "write an entry",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Required: true},
					&cli.StringFlag{Name: "content", Aliases: []string{"c"}, Required: true},
					&cli.StringFlag{Name: "mood", Aliases: []string{"m"}},
				},
				Action: func(c *cli.Context) error {
					a, err := r.authed(c)
					if err != nil {
						return err
					}
					entry, err := a.Journal.Create(c.Context, types.JournalEntryRequest{
						Title:   c.String("title"),
						Content: c.String("content"),
						Mood:    c.String("mood"),
					})
					if err != nil {
						return err
					}
					fmt.Printf("Created entry %d\n", entry.ID)
					return nil
				},
			},
			{
				Name:      "rm",
				Usage:     "delete an entry",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					a, err := r.authed(c)
					if err != nil {
						return err
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					return a.Journal.Delete(c.Context, id)
				},
			},
		},
	}
}

func (r *runner) moodsCommand() *cli.Command {
	daysFlag := func() cli.Flag {
		return &cli.IntFlag{Name: "days", Value: 7, Usage: "how many days back, today included"}
	}
	return &cli.Command{
		Name:  "moods",
		Usage: "track your mood",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list recent entries",
				Flags: []cli.Flag{daysFlag()},
				Action: func(c *cli.Context) error {
					a, err := r.authed(c)
					if err != nil {
						return err
					}
					start, end := dayRange(c.Int("days"))
					if err := a.Moods.LoadRange(c.Context, start, end); err != nil {
						return err
					}
					stdoutTable("ID\tDATE\tMOOD\tNOTES", func(w io.Writer) {
						for _, m := range a.Moods.Items() {
							fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", m.ID, m.Date, m.Mood, m.Notes)
						}
					})
					return nil
				},
			},
			{
				Name:  "add",
				Usage: "record a mood",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "mood", Aliases: []string{"m"}, Required: true, Usage: "very-happy, happy, neutral, sad, very-sad"},
					&cli.StringFlag{Name: "notes"},
					&cli.StringFlag{Name: "date", Usage: "YYYY-MM-DD, default today"},
				},
				Action: func(c *cli.Context) error {
					a, err := r.authed(c)
					if err != nil {
						return err
					}
					mood, ok := types.ParseMood(c.String("mood"))
					if !ok {
						return fmt.Errorf("unknown mood %q", c.String("mood"))
					}
					date := c.String("date")
					if date == "" {
						date = time.Now().Format(types.DateLayout)
					}
					entry, err := a.Moods.Create(c.Context, types.MoodEntryRequest{Date: date, Mood: mood, Notes: c.String("notes")})
					if err != nil {
						return err
					}
					fmt.Printf("Recorded %s for %s\n", entry.Mood, entry.Date)
					return nil
				},
			},
			{
				Name:  "summary",
				Usage: "average and counts over recent days",
				Flags: []cli.Flag{daysFlag()},
				Action: func(c *cli.Context) error {
					a, err := r.authed(c)
					if err != nil {
						return err
					}
					start, end := dayRange(c.Int("days"))
					if err := a.Moods.LoadRange(c.Context, start, end); err != nil {
						return err
					}
					sum := a.Moods.Summary(start, end)
					fmt.Printf("%s to %s: %d entries, average %.1f/5\n", sum.StartDate, sum.EndDate, sum.TotalEntries, sum.AverageMood)
					for _, m := range []types.MoodType{types.MoodVeryHappy, types.MoodHappy, types.MoodNeutral, types.MoodSad, types.MoodVerySad} {
						fmt.Printf("  %-10s %d\n", m, sum.MoodCounts[m])
					}
					return nil
				},
			},
		},
	}
}

// dayRange returns the YYYY-MM-DD bounds of the last n days, today included.
func dayRange(n int) (string, string) {
	if n < 1 {
		n = 1
	}
	now := time.Now()
	return now.AddDate(0, 0, -(n - 1)).Format(types.DateLayout), now.Format(types.DateLayout)
}
