package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Black-And-White-Club/golf-tracker/app"
	"github.com/Black-And-White-Club/golf-tracker/app/demo"
	scorecardservice "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/application"
	"github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/courses"
	roundtime "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/time_utils"
	statsservice "github.com/Black-And-White-Club/golf-tracker/app/modules/statistics/application"
	"github.com/Black-And-White-Club/golf-tracker/config"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

func playersCommand() *cli.Command {
	return &cli.Command{
		Name:  "players",
		Usage: "manage players",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "register a player",
				ArgsUsage: "NAME",
				Flags: []cli.Flag{
					&cli.Float64Flag{Name: "handicap", Usage: "handicap index (-10 to 54)"},
				},
				Action: func(c *cli.Context) error {
					name := strings.Join(c.Args().Slice(), " ")
					var handicap *float64
					if c.IsSet("handicap") {
						v := c.Float64("handicap")
						handicap = &v
					}
					return withApp(c, func(ctx context.Context, a *app.App) error {
						player, err := unwrap(a.Scorecards.AddPlayer(ctx, name, handicap))
						if err != nil {
							return err
						}
						fmt.Fprintf(c.App.Writer, "Player created: %s (ID: %s)\n", player.Name, player.ID)
						return nil
					})
				},
			},
			{
				Name:  "list",
				Usage: "list registered players",
				Action: func(c *cli.Context) error {
					return withApp(c, func(ctx context.Context, a *app.App) error {
						players, err := a.Scorecards.ListPlayers(ctx)
						if err != nil {
							return err
						}
						printPlayers(c.App.Writer, players)
						return nil
					})
				},
			},
		},
	}
}

func roundsCommand() *cli.Command {
	return &cli.Command{
		Name:  "rounds",
		Usage: "start, score and review rounds",
		Subcommands: []*cli.Command{
			{
				Name:  "start",
				Usage: "start a new scorecard",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "player", Aliases: []string{"p"}, Required: true, Usage: "player name or ID"},
					&cli.StringFlag{Name: "course", Aliases: []string{"c"}, Usage: "course name; see 'courses list'"},
					&cli.IntFlag{Name: "holes", Usage: "hole count for courses outside the catalog (default 18); must match a catalog course or --pars"},
					&cli.StringFlag{Name: "pars", Usage: "explicit comma separated pars, e.g. 4,4,3"},
					&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "date played: 2024-06-01, yesterday, last saturday"},
				},
				Action: func(c *cli.Context) error {
					pars, err := parseInts(c.String("pars"))
					if err != nil {
						return fmt.Errorf("invalid --pars: %w", err)
					}
					req := scorecardservice.StartRoundRequest{
						Player: c.String("player"),
						Course: c.String("course"),
						Holes:  c.Int("holes"),
						Pars:   pars,
						Date:   c.String("date"),
					}
					return withApp(c, func(ctx context.Context, a *app.App) error {
						view, err := unwrap(a.Scorecards.StartRound(ctx, req))
						if err != nil {
							return err
						}
						fmt.Fprintf(c.App.Writer, "Scorecard created for %s on %s (Round ID: %s)\n",
							view.Player.Name, view.Card.Course, view.Card.RoundID)
						return nil
					})
				},
			},
			{
				Name:      "record",
				Usage:     "record strokes for a hole",
				ArgsUsage: "ROUND_ID HOLE STROKES",
				Action: func(c *cli.Context) error {
					if c.NArg() != 3 {
						return cli.Exit("usage: rounds record ROUND_ID HOLE STROKES", 2)
					}
					roundID, err := parseRoundID(c.Args().Get(0))
					if err != nil {
						return err
					}
					hole, err := parseArgInt("HOLE", c.Args().Get(1))
					if err != nil {
						return err
					}
					strokes, err := parseArgInt("STROKES", c.Args().Get(2))
					if err != nil {
						return err
					}
					return withApp(c, func(ctx context.Context, a *app.App) error {
						view, err := unwrap(a.Scorecards.RecordScore(ctx, roundID, hole, strokes))
						if err != nil {
							return err
						}
						fmt.Fprintf(c.App.Writer, "Hole %d: %d strokes (%d/%d holes, total %d)\n",
							hole, strokes, view.RecordedHoles, len(view.Card.Pars), view.Total)
						return nil
					})
				},
			},
			{
				Name:      "complete",
				Usage:     "lock a fully recorded round",
				ArgsUsage: "ROUND_ID",
				Action: func(c *cli.Context) error {
					roundID, err := parseRoundID(c.Args().First())
					if err != nil {
						return err
					}
					return withApp(c, func(ctx context.Context, a *app.App) error {
						view, err := unwrap(a.Scorecards.CompleteRound(ctx, roundID))
						if err != nil {
							return err
						}
						printScorecard(c.App.Writer, view)
						return nil
					})
				},
			},
			{
				Name:      "show",
				Usage:     "print a scorecard",
				ArgsUsage: "ROUND_ID",
				Action: func(c *cli.Context) error {
					roundID, err := parseRoundID(c.Args().First())
					if err != nil {
						return err
					}
					return withApp(c, func(ctx context.Context, a *app.App) error {
						view, err := unwrap(a.Scorecards.GetScorecard(ctx, roundID))
						if err != nil {
							return err
						}
						printScorecard(c.App.Writer, view)
						return nil
					})
				},
			},
			{
				Name:  "list",
				Usage: "list scorecards",
				Flags: filterFlags(false),
				Action: func(c *cli.Context) error {
					return withApp(c, func(ctx context.Context, a *app.App) error {
						filter, err := buildFilter(ctx, c, a)
						if err != nil {
							return err
						}
						views, err := a.Scorecards.ListScorecards(ctx, filter)
						if err != nil {
							return err
						}
						printScorecardList(c.App.Writer, views)
						return nil
					})
				},
			},
		},
	}
}

func coursesCommand() *cli.Command {
	return &cli.Command{
		Name:  "courses",
		Usage: "show the course catalog",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list known courses and their pars",
				Action: func(c *cli.Context) error {
					printCourses(c.App.Writer, courses.Names())
					return nil
				},
			},
		},
	}
}

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "player statistics",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "summarize a player's completed rounds",
				Flags: append(filterFlags(true),
					&cli.BoolFlag{Name: "strict", Usage: "fail if any selected round has unrecorded holes"},
				),
				Action: func(c *cli.Context) error {
					return withApp(c, func(ctx context.Context, a *app.App) error {
						filter, err := dateCourseFilter(c)
						if err != nil {
							return err
						}
						stats, err := unwrap(a.Scorecards.PlayerStatistics(ctx, scorecardservice.StatisticsRequest{
							Player: c.String("player"),
							Filter: filter,
							Strict: c.Bool("strict"),
						}))
						if err != nil {
							return err
						}
						printStatistics(c.App.Writer, stats)
						return nil
					})
				},
			},
			{
				Name:  "chart",
				Usage: "write a PNG chart of a player's round totals",
				Flags: append(filterFlags(true),
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "rounds.png", Usage: "output file"},
				),
				Action: func(c *cli.Context) error {
					return withApp(c, func(ctx context.Context, a *app.App) error {
						filter, err := dateCourseFilter(c)
						if err != nil {
							return err
						}
						png, err := unwrap(a.Scorecards.PlayerChart(ctx, c.String("player"), filter))
						if err != nil {
							return err
						}
						if err := os.WriteFile(c.String("out"), png, 0o644); err != nil {
							return err
						}
						fmt.Fprintf(c.App.Writer, "Chart written to %s\n", c.String("out"))
						return nil
					})
				},
			},
		},
	}
}

func importCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "import scorecards from a CSV or XLSX grid",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "course", Aliases: []string{"c"}, Usage: "course name; supplies pars when the file has no Par row"},
			&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "date played"},
			&cli.BoolFlag{Name: "create-players", Usage: "register unknown player names"},
		},
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return cli.Exit("usage: import FILE", 2)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			req := scorecardservice.ImportRequest{
				FileName:      filepath.Base(path),
				Data:          data,
				Course:        c.String("course"),
				Date:          c.String("date"),
				CreatePlayers: c.Bool("create-players"),
			}
			return withApp(c, func(ctx context.Context, a *app.App) error {
				summary, err := unwrap(a.Scorecards.ImportScorecards(ctx, req))
				if err != nil {
					return err
				}
				for _, p := range summary.CreatedPlayers {
					fmt.Fprintf(c.App.Writer, "Player created: %s (ID: %s)\n", p.Name, p.ID)
				}
				printScorecardList(c.App.Writer, summary.Scorecards)
				return nil
			})
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "export a scorecard as CSV or XLSX",
		ArgsUsage: "ROUND_ID",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "csv", Usage: "csv or xlsx"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: ".", Usage: "output directory"},
		},
		Action: func(c *cli.Context) error {
			roundID, err := parseRoundID(c.Args().First())
			if err != nil {
				return err
			}
			return withApp(c, func(ctx context.Context, a *app.App) error {
				file, err := unwrap(a.Scorecards.ExportScorecard(ctx, roundID, c.String("format")))
				if err != nil {
					return err
				}
				path, err := writeOutput(c.String("out"), file.FileName, file.Data)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.App.Writer, "Exported %s\n", path)
				return nil
			})
		},
	}
}

func demoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "generate sample players, rounds, charts and exports",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Value: "examples_data", Usage: "directory for the generated data"},
			&cli.IntFlag{Name: "players", Value: 4},
			&cli.IntFlag{Name: "rounds", Value: 6, Usage: "rounds per player"},
			&cli.Int64Flag{Name: "seed", Usage: "random seed; 0 picks one"},
		},
		Action: func(c *cli.Context) error {
			cfg := *c.Context.Value(configKey{}).(*config.Config)
			cfg.Storage.Backend = config.BackendFile
			cfg.Storage.DataDir = c.String("out")
			c.Context = context.WithValue(c.Context, configKey{}, &cfg)

			var gen *demo.Generator
			if seed := c.Int64("seed"); seed != 0 {
				gen = demo.NewGenerator(seed)
			} else {
				gen = demo.NewGenerator()
			}

			return withApp(c, func(ctx context.Context, a *app.App) error {
				out, err := demo.Seed(ctx, a.Scorecards, gen, demo.Options{
					Players:         c.Int("players"),
					RoundsPerPlayer: c.Int("rounds"),
				})
				if err != nil {
					return err
				}
				if err := writeDemoArtifacts(ctx, c, a, out); err != nil {
					return err
				}
				fmt.Fprintf(c.App.Writer, "Generated %d players and %d rounds in %s (seed %d)\n",
					len(out.Players), len(out.Rounds), c.String("out"), gen.Seed())
				return nil
			})
		},
	}
}

func writeDemoArtifacts(ctx context.Context, c *cli.Context, a *app.App, out demo.Result) error {
	dir := filepath.Join(c.String("out"), "reports")
	for _, p := range out.Players {
		png, err := unwrap(a.Scorecards.PlayerChart(ctx, p.ID.String(), statsservice.Filter{}))
		if err != nil {
			return err
		}
		path, err := writeOutput(dir, strings.ReplaceAll(strings.ToLower(p.Name), " ", "-")+".png", png)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "Chart written to %s\n", path)
	}
	if len(out.Rounds) > 0 {
		file, err := unwrap(a.Scorecards.ExportScorecard(ctx, out.Rounds[len(out.Rounds)-1].Card.RoundID, "xlsx"))
		if err != nil {
			return err
		}
		path, err := writeOutput(dir, file.FileName, file.Data)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "Exported %s\n", path)
	}
	return nil
}

func filterFlags(playerRequired bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "player", Aliases: []string{"p"}, Required: playerRequired, Usage: "player name or ID"},
		&cli.StringFlag{Name: "course", Aliases: []string{"c"}},
		&cli.StringFlag{Name: "from", Usage: "earliest date, inclusive"},
		&cli.StringFlag{Name: "to", Usage: "latest date, inclusive"},
	}
}

// buildFilter resolves --player to an ID in addition to the date and course
// flags.
func buildFilter(ctx context.Context, c *cli.Context, a *app.App) (statsservice.Filter, error) {
	filter, err := dateCourseFilter(c)
	if err != nil {
		return filter, err
	}
	if ref := c.String("player"); ref != "" {
		player, err := unwrap(a.Scorecards.ResolvePlayer(ctx, ref))
		if err != nil {
			return filter, err
		}
		filter.PlayerID = player.ID
	}
	return filter, nil
}

func dateCourseFilter(c *cli.Context) (statsservice.Filter, error) {
	filter := statsservice.Filter{Course: c.String("course")}
	dates := roundtime.NewDateParser()
	now := time.Now()
	for _, f := range []struct {
		flag string
		dst  *time.Time
	}{{"from", &filter.From}, {"to", &filter.To}} {
		if v := c.String(f.flag); v != "" {
			t, err := dates.Parse(v, now)
			if err != nil {
				return filter, cli.Exit(fmt.Sprintf("invalid --%s: %v", f.flag, err), 2)
			}
			*f.dst = t
		}
	}
	return filter, nil
}

func parseRoundID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, cli.Exit(fmt.Sprintf("invalid round ID %q", s), 2)
	}
	return id, nil
}

func parseArgInt(name, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, cli.Exit(fmt.Sprintf("%s must be a whole number, got %q", name, s), 2)
	}
	return n, nil
}

func parseInts(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func writeOutput(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
