package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"clementus360/ai-helper-client/app"
	"clementus360/ai-helper-client/config"
	"clementus360/ai-helper-client/types"

	"github.com/urfave/cli/v2"
)

// runner carries the resolved settings and the lazily opened app across the
// Before/Action/After hooks of one invocation.
type runner struct {
	settings config.Settings
	app      *app.App
}

func newCLI() *cli.App {
	r := &runner{}
	return &cli.App{
		Name:  "ai-helper-client",
		Usage: "habits, tasks, goals, journal, moods, assistant chat and weekly planner",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "api", Usage: "API base URL (overrides API_BASE_URL)"},
			&cli.StringFlag{Name: "store", Usage: "session store path (overrides STORE_PATH)"},
			&cli.StringFlag{Name: "store-driver", Usage: "file, sqlite or memory (overrides STORE_DRIVER)"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error (overrides LOG_LEVEL)"},
		},
		Before: r.before,
		After:  r.after,
		Commands: []*cli.Command{
			r.registerCommand(),
			r.loginCommand(),
			r.logoutCommand(),
			r.whoamiCommand(),
			r.tasksCommand(),
			r.habitsCommand(),
			r.goalsCommand(),
			r.journalCommand(),
			r.moodsCommand(),
			r.notificationsCommand(),
			r.chatCommand(),
			r.planCommand(),
			r.dashboardCommand(),
			mockServerCommand(),
		},
	}
}

func (r *runner) before(c *cli.Context) error {
	config.LoadEnv()
	s := config.FromEnv()
	if c.IsSet("log-level") {
		s.LogLevel = c.String("log-level")
	}
	config.InitLogger(s.LogLevel)

	if c.IsSet("api") {
		s.APIBaseURL = c.String("api")
	}
	if c.IsSet("store-driver") {
		s.StoreDriver = c.String("store-driver")
		if !c.IsSet("store") && os.Getenv("STORE_PATH") == "" {
			s.StorePath = config.DefaultStorePath(s.StoreDriver)
		}
	}
	if c.IsSet("store") {
		s.StorePath = c.String("store")
	}
	r.settings = s
	return nil
}

func (r *runner) after(c *cli.Context) error {
	if r.app == nil {
		return nil
	}
	return r.app.Close()
}

// open builds the app once per invocation; every run restores the session
// from the store, the way a page load does.
func (r *runner) open(c *cli.Context) (*app.App, error) {
	if r.app != nil {
		return r.app, nil
	}
	a, err := app.Open(c.Context, r.settings)
	if err != nil {
		return nil, err
	}
	r.app = a
	return a, nil
}

// authed opens the app and insists on a logged-in session.
func (r *runner) authed(c *cli.Context) (*app.App, error) {
	a, err := r.open(c)
	if err != nil {
		return nil, err
	}
	if !a.Session.IsAuthenticated() {
		return nil, fmt.Errorf("%w: run `login` first", types.ErrNotAuthenticated)
	}
	return a, nil
}

func argID(c *cli.Context) (int64, error) {
	raw := c.Args().First()
	if raw == "" {
		return 0, errors.New("missing id argument")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
