package main

import (
	"fmt"
	"skydesk/internal/session"
	"skydesk/pkg/model"

	"github.com/urfave/cli/v2"
)

func (e *env) signupCommand() *cli.Command {
	return &cli.Command{
		Name:  "signup",
		Usage: "create a member account",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Required: true, Usage: "full name"},
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
		},
		Action: func(c *cli.Context) error {
			err := e.api.Signup(c.Context, model.SignupRequest{
				FullName: c.String("name"),
				Email:    c.String("email"),
				Password: c.String("password"),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, "Account created. Sign in with `skydesk login`.")
			return nil
		},
	}
}

func (e *env) loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "sign in and persist the session",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
		},
		Action: func(c *cli.Context) error {
			login, err := e.api.Login(c.Context, model.LoginRequest{
				Email:    c.String("email"),
				Password: c.String("password"),
			})
			if err != nil {
				return err
			}

			e.sess = session.FromLogin(login)
			if err := e.store.Save(e.sess); err != nil {
				return err
			}

			role := "member"
			if e.sess.IsAdmin {
				role = "admin"
			}
			fmt.Fprintf(c.App.Writer, "Signed in as %s (%s).\n", e.sess.FullName, role)
			return nil
		},
	}
}

func (e *env) logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "clear the persisted session",
		Action: func(c *cli.Context) error {
			if err := e.store.Clear(); err != nil {
				return err
			}
			e.sess = &session.Session{}
			fmt.Fprintln(c.App.Writer, "Signed out.")
			return nil
		},
	}
}
