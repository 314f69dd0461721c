package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func (r *runner) registerCommand() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "create an account",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
			&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Required: true},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			a, err := r.open(c)
			if err != nil {
				return err
			}
			user, err := a.Session.Register(c.Context, c.String("username"), c.String("email"), c.String("password"))
			if err != nil {
				return err
			}
			fmt.Printf("Registered %s <%s> (id %d). Run `login` to start a session.\n", user.Username, user.Email, user.ID)
			return nil
		},
	}
}

func (r *runner) loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "start a session",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			a, err := r.open(c)
			if err != nil {
				return err
			}
			if err := a.Session.Login(c.Context, c.String("username"), c.String("password")); err != nil {
				return err
			}
			user, _ := a.Session.User()
			fmt.Printf("Logged in as %s (id %d)\n", user.Username, user.ID)
			if a.Session.IsFirstLogin() {
				fmt.Println("Welcome! Run `chat` to meet your assistant.")
			}
			return nil
		},
	}
}

func (r *runner) logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "end the session",
		Action: func(c *cli.Context) error {
			a, err := r.open(c)
			if err != nil {
				return err
			}
			if err := a.Logout(c.Context); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func (r *runner) whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "show the current session",
		Action: func(c *cli.Context) error {
			a, err := r.open(c)
			if err != nil {
				return err
			}
			user, ok := a.Session.User()
			if !ok {
				fmt.Println("Not logged in")
				return nil
			}
			planID, week := a.Session.Plan()
			fmt.Printf("User:         %s <%s> (id %d)\n", user.Username, user.Email, user.ID)
			fmt.Printf("State:        %s\n", a.Session.State())
			fmt.Printf("First login:  %t\n", a.Session.IsFirstLogin())
			fmt.Printf("Conversation: %d\n", a.Session.ConversationID())
			fmt.Printf("Plan:         %d (week of %s)\n", planID, week)
			return nil
		},
	}
}
