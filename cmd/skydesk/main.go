package main

import (
	"fmt"
	"os"
	"skydesk/internal/session"
	"skydesk/pkg/client"
	"skydesk/pkg/config"

	"github.com/urfave/cli/v2"
)

const ServiceName = "skydesk"

// env bundles the long-lived collaborators every command needs: config,
// the persisted session and the API client bound to it.
type env struct {
	cfg   *config.Config
	store *session.Store
	sess  *session.Session
	api   *client.SkyDeskClient
}

func newEnv(cfg *config.Config) (*env, error) {
	store := session.NewStore(cfg.SessionFile, cfg.Log)
	sess, err := store.Load()
	if err != nil {
		return nil, err
	}

	e := &env{
		cfg:   cfg,
		store: store,
		sess:  sess,
	}
	e.api = client.NewSkyDeskClient(cfg.APIBaseURL, cfg.RequestTimeout, func() string {
		return e.sess.Token
	})
	return e, nil
}

func main() {
	cfg := config.Load(ServiceName)
	cfg.LogConfiguration()

	e, err := newEnv(cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize", "error", err)
	}

	app := &cli.App{
		Name:  ServiceName,
		Usage: "book and manage SkyDesk360 coworking spaces",
		Commands: []*cli.Command{
			e.signupCommand(),
			e.loginCommand(),
			e.logoutCommand(),
			e.floorCommand(),
			e.bookCommand(),
			e.myBookingsCommand(),
			e.cancelCommand(),
			e.adminCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
