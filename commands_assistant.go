package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"clementus360/ai-helper-client/chat"
	"clementus360/ai-helper-client/config"
	"clementus360/ai-helper-client/mockapi"
	"clementus360/ai-helper-client/planner"
	"clementus360/ai-helper-client/types"

	"github.com/urfave/cli/v2"
)

func (r *runner) notificationsCommand() *cli.Command {
	return &cli.Command{
		Name:  "notifications",
		Usage: "notification settings and inbox",
		Subcommands: []*cli.Command{
			{
				Name:  "settings",
				Usage: "show notification settings",
				Action: func(c *cli.Context) error {
					a, err := r.authed(c)
					if err != nil {
						return err
					}
					st, err := a.NotificationSettings.Load(c.Context)
					if err != nil {
						return err
					}
					printSettings(st)
					return nil
				},
			},
			{
				Name:  "set",
				Usage: "change notification settings",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "daily-reminders"},
					&cli.StringFlag{Name: "reminder-time", Usage: "HH:MM"},
					&cli.BoolFlag{Name: "weekly-report"},
					&cli.StringFlag{Name: "weekly-report-day", Usage: "MONDAY..SUNDAY"},
					&cli.BoolFlag{Name: "mood-reminders"},
					&cli.StringFlag{Name: "mood-frequency", Usage: "DAILY, EVERY_OTHER_DAY, TWICE_A_WEEK, WEEKLY"},
				},
				Action: func(c *cli.Context) error {
					a, err := r.authed(c)
					if err != nil {
						return err
					}
					var req types.UpdateNotificationSettingsRequest
					if c.IsSet("daily-reminders") {
						v := c.Bool("daily-reminders")
						req.EnableDailyReminders = &v
					}
					if c.IsSet("reminder-time") {
						v := c.String("reminder-time")
						req.ReminderTime = &v
					}
					if c.IsSet("weekly-report") {
						v := c.Bool("weekly-report")
						req.EnableWeeklyReport = &v
					}
					if c.IsSet("weekly-report-day") {
						v := types.WeekDay(strings.ToUpper(c.String("weekly-report-day")))
						req.WeeklyReportDay = &v
					}
					if c.IsSet("mood-reminders") {
						v := c.Bool("mood-reminders")
						req.EnableMoodReminders = &v
					}
					if c.IsSet("mood-frequency") {
						v := types.MoodReminderFrequency(strings.ToUpper(c.String("mood-frequency")))
						req.MoodReminderFrequency = &v
					}
					st, err := a.NotificationSettings.Update(c.Context, req)
					if err != nil {
						return err
					}
					printSettings(st)
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "show the inbox",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "page", Value: 0},
					&cli.IntFlag{Name: "size", Value: 10},
				},
				Action: func(c *cli.Context) error {
					a, err := r.authed(c)
					if err != nil {
						return err
					}
					if err := a.Notifications.LoadPage(c.Context, c.Int("page"), c.Int("size")); err != nil {
						return err
					}
					stdoutTable("ID\tREAD\tTYPE\tTITLE\tWHEN", func(w io.Writer) {
						for _, n := range a.Notifications.Items() {
							fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", n.ID, check(n.IsRead), n.Type, n.Title, ago(n.CreatedAt))
						}
					})
					fmt.Printf("%d unread on this page, %d total\n", a.Notifications.Unread(), a.Notifications.Total())
					return nil
				},
			},
			{
				Name:      "read",
				Usage:     "mark one notification, or all of them, as read",
				ArgsUsage: "<id>",
				Flags:     []cli.Flag{&cli.BoolFlag{Name: "all"}},
				Action: func(c *cli.Context) error {
					a, err := r.authed(c)
					if err != nil {
						return err
					}
					if c.Bool("all") {
						return a.Notifications.MarkAllRead(c.Context)
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					return a.Notifications.MarkRead(c.Context, id)
				},
			},
		},
	}
}

func printSettings(st types.NotificationSettings) {
	fmt.Printf("Daily reminders: %t at %s\n", st.EnableDailyReminders, st.ReminderTime)
	fmt.Printf("Weekly report:   %t on %s\n", st.EnableWeeklyReport, st.WeeklyReportDay)
	fmt.Printf("Mood reminders:  %t (%s)\n", st.EnableMoodReminders, st.MoodReminderFrequency)
}

func (r *runner) chatCommand() *cli.Command {
	return &cli.Command{
		Name:      "chat",
		Usage:     "talk to the assistant; without a message, reads lines from stdin",
		ArgsUsage: "[message]",
		Action: func(c *cli.Context) error {
			a, err := r.authed(c)
			if err != nil {
				return err
			}
			if err := a.Chat.Initialize(c.Context); err != nil {
				return err
			}
			if a.Chat.Mode() == chat.Degraded {
				fmt.Println("(offline mode: the assistant is not available for this account)")
			}
			shown := printTranscript(a.Chat.Transcript(), 0)

			if c.Args().Present() {
				err := a.Chat.SendMessage(c.Context, strings.Join(c.Args().Slice(), " "))
				printTranscript(a.Chat.Transcript(), shown)
				return err
			}

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					return scanner.Err()
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "exit" || line == "quit" {
					return nil
				}
				if err := a.Chat.SendMessage(c.Context, line); err != nil {
					config.Logger.Warn("Message not delivered: ", err)
				}
				shown = printTranscript(a.Chat.Transcript(), shown)
			}
		},
	}
}

// printTranscript prints messages from index from on and returns the new count.
func printTranscript(msgs []types.Message, from int) int {
	if from > len(msgs) {
		from = 0
	}
	for _, m := range msgs[from:] {
		switch m.Sender {
		case types.SenderUser:
			fmt.Printf("you: %s\n", m.Content)
		case types.SenderSystem:
			fmt.Printf("!! %s\n", m.Content)
		default:
			fmt.Printf("assistant: %s\n", m.Content)
		}
	}
	return len(msgs)
}

func (r *runner) planCommand() *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "weekly planner",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "show the current plan",
				Action: func(c *cli.Context) error {
					a, err := r.authed(c)
					if err != nil {
						return err
					}
					if err := a.Planner.LoadCurrent(c.Context); err != nil {
						return err
					}
					p, _ := a.Planner.Current()
					printPlan(p)
					return nil
				},
			},
			{
				Name:  "generate",
				Usage: "generate a new plan, replacing the current one",
				Flags: []cli.Flag{&cli.StringFlag{Name: "week", Usage: "any date of the week, YYYY-MM-DD; default this week"}},
				Action: func(c *cli.Context) error {
					a, err := r.authed(c)
					if err != nil {
						return err
					}
					p, err := a.Planner.Generate(c.Context, c.String("week"))
					if err != nil {
						return err
					}
					printPlan(p)
					return nil
				},
			},
			{
				Name:      "toggle",
				Usage:     "toggle a plan task's completion",
				ArgsUsage: "<task id>",
				Action: func(c *cli.Context) error {
					a, err := r.authed(c)
					if err != nil {
						return err
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					if err := a.Planner.LoadCurrent(c.Context); err != nil {
						return err
					}
					task, err := a.Planner.ToggleTask(c.Context, id)
					if err != nil {
						return err
					}
					fmt.Printf("%s %s (%s)\n", check(task.Completed), task.Description, task.DayOfWeek)
					return nil
				},
			},
		},
	}
}

func printPlan(p planner.Plan) {
	fmt.Printf("Plan %d, week of %s\n", p.ID, p.WeekStart)
	for _, day := range p.ByDay() {
		fmt.Printf("\n%s %s\n", day.Label, day.Date)
		if len(day.Tasks) == 0 {
			fmt.Println("  (nothing planned)")
		}
		for _, t := range day.Tasks {
			fmt.Printf("  %s #%d %s: %s\n", check(t.Completed), t.ID, t.Type, t.Description)
		}
	}
}

func (r *runner) dashboardCommand() *cli.Command {
	return &cli.Command{
		Name:  "dashboard",
		Usage: "summary of tasks, habits, goals and moods",
		Action: func(c *cli.Context) error {
			a, err := r.authed(c)
			if err != nil {
				return err
			}
			sum := a.Dashboard.Load(c.Context, time.Now())
			user, _ := a.Session.User()
			fmt.Printf("%s, %s\n\n", sum.Greeting, user.Username)
			fmt.Printf("Tasks:  %d/%d completed\n", sum.CompletedTasks, sum.TotalTasks)
			fmt.Printf("Habits: %d active\n", sum.ActiveHabits)
			fmt.Printf("Goals:  %d\n", sum.Goals)
			fmt.Printf("Mood:   %d of the last 7 days recorded, average %.1f/5\n", sum.MoodDays, sum.AverageMood)
			return sum.Err()
		},
	}
}

func mockServerCommand() *cli.Command {
	return &cli.Command{
		Name:  "mock-server",
		Usage: "run the in-memory fake API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: ":8092"},
			&cli.StringFlag{Name: "base-path", Value: "/api/v1"},
			&cli.BoolFlag{Name: "deny-conversations", Usage: "answer 403 to conversation creation"},
			&cli.BoolFlag{Name: "empty-plans", Usage: "generate plans without tasks"},
			&cli.StringSliceFlag{Name: "allow-origin", Usage: "origin a browser front end may call from; default any"},
		},
		Action: func(c *cli.Context) error {
			srv := mockapi.New(mockapi.Options{
				DenyConversations: c.Bool("deny-conversations"),
				EmptyPlans:        c.Bool("empty-plans"),
				Secret:            []byte(os.Getenv("MOCKAPI_SECRET")),
				BasePath:          c.String("base-path"),
				AllowedOrigins:    c.StringSlice("allow-origin"),
			})
			httpServer := &http.Server{Addr: c.String("addr"), Handler: srv}
			go func() {
				<-c.Context.Done()
				httpServer.Close()
			}()
			config.Logger.Info("Mock API is running on ", c.String("addr"), c.String("base-path"))
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
}
