package main

import (
	"context"
	"io"

	"github.com/Black-And-White-Club/golf-tracker/app"
	"github.com/Black-And-White-Club/golf-tracker/app/shared/results"
	"github.com/Black-And-White-Club/golf-tracker/config"
	"github.com/urfave/cli/v2"
)

func newCLIApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "golf-tracker",
		Usage:     "record golf rounds hole by hole and review player statistics",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to the configuration file", EnvVars: []string{"GOLF_CONFIG"}},
			&cli.StringFlag{Name: "backend", Usage: "storage backend: memory, file, sqlite or postgres"},
			&cli.StringFlag{Name: "data-dir", Usage: "directory for the file and sqlite backends"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		},
		Before: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			c.Context = context.WithValue(c.Context, configKey{}, cfg)
			return nil
		},
		// Errors are reported by main so tests can inspect them.
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			playersCommand(),
			roundsCommand(),
			coursesCommand(),
			statsCommand(),
			importCommand(),
			exportCommand(),
			demoCommand(),
		},
	}
}

type configKey struct{}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if v := c.String("backend"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := c.String("data-dir"); v != "" {
		cfg.Storage.DataDir = v
		cfg.Storage.SQLitePath = ""
	}
	if v := c.String("log-level"); v != "" {
		cfg.Logging.Level = v
	}
	// Re-run defaults so a new data dir moves the sqlite file with it.
	return config.Normalize(cfg)
}

// withApp builds the application for one command and closes it afterwards.
func withApp(c *cli.Context, fn func(ctx context.Context, a *app.App) error) (err error) {
	cfg := c.Context.Value(configKey{}).(*config.Config)
	a, err := app.NewApp(c.Context, cfg, c.App.ErrWriter)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(c.Context, a)
}

// unwrap turns a domain failure into a command error.
func unwrap[S any](res results.OperationResult[S, error], err error) (S, error) {
	var zero S
	if err != nil {
		return zero, err
	}
	if res.IsFailure() {
		return zero, cli.Exit(*res.Failure, 2)
	}
	return *res.Success, nil
}
