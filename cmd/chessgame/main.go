// chessgame is a thin CLI wrapping the pgn/movetree/cursor/san library:
// parse validates a PGN stream and reports warnings, format re-emits it
// through pgn.Writer, and render draws the final main-line position of the
// first game as SVG. Configuration flows flags > environment > config file, per
// appconfig; each processed game's log lines carry a run correlation id.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/lgbarn/chessgame/boardsvg"
	"github.com/lgbarn/chessgame/cursor"
	"github.com/lgbarn/chessgame/enginebridge/corentings"
	"github.com/lgbarn/chessgame/enginebridge/dragontooth"
	"github.com/lgbarn/chessgame/internal/appconfig"
	"github.com/lgbarn/chessgame/internal/applog"
	"github.com/lgbarn/chessgame/pgn"
	"github.com/lgbarn/chessgame/pgndb"
	"github.com/lgbarn/chessgame/rules"
)

func main() {
	cmd := &cli.Command{
		Name:  "chessgame",
		Usage: "parse, reformat, and render PGN chess game databases",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a chessgame config file"},
			&cli.StringFlag{Name: "engine", Usage: "rules engine adapter: corentings or dragontooth"},
			&cli.BoolFlag{Name: "verbose", Usage: "enable development-mode logging"},
		},
		Commands: []*cli.Command{
			parseCommand(),
			formatCommand(),
			renderCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "chessgame:", err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cli.Command) (appconfig.Config, error) {
	cfg, err := appconfig.Load(cmd.String("config"))
	if err != nil {
		return appconfig.Config{}, err
	}
	if cmd.String("engine") != "" {
		cfg.Engine = cmd.String("engine")
	}
	if cmd.Bool("verbose") {
		cfg.Verbose = true
	}
	return cfg, nil
}

func resolveEngine(name string) (rules.Engine, error) {
	switch name {
	case "", "corentings":
		return corentings.New(), nil
	case "dragontooth":
		return dragontooth.New(), nil
	default:
		return nil, fmt.Errorf("unknown engine %q", name)
	}
}

func openInput(cmd *cli.Command) (*os.File, error) {
	if path := cmd.Args().First(); path != "" {
		return os.Open(path)
	}
	return os.Stdin, nil
}

func parseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "read every game in a PGN file and report warnings",
		ArgsUsage: "[file]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := applog.New(cfg.Verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			engine, err := resolveEngine(cfg.Engine)
			if err != nil {
				return err
			}

			in, err := openInput(cmd)
			if err != nil {
				return err
			}
			defer in.Close()

			runID := uuid.New().String()
			db := pgndb.NewFromReader(in, engine)
			count := 0
			for game, gerr := range db.Games() {
				if gerr != nil {
					logger.Warn("game failed to parse", zap.String("run_id", runID), zap.Error(gerr))
					continue
				}
				count++
				event, _ := game.Metadata().Get("Event")
				for _, w := range db.Warnings() {
					logger.Info("recovered warning",
						zap.String("run_id", runID), zap.Int("game", count), zap.String("event", event), zap.String("warning", w.String()))
				}
			}
			fmt.Printf("parsed %d games\n", count)
			return nil
		},
	}
}

func formatCommand() *cli.Command {
	return &cli.Command{
		Name:      "format",
		Usage:     "re-emit a PGN stream through the canonical writer",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "width", Usage: "output line width"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			width := cfg.LineWidth
			if w := cmd.Int("width"); w > 0 {
				width = int(w)
			}

			engine, err := resolveEngine(cfg.Engine)
			if err != nil {
				return err
			}

			in, err := openInput(cmd)
			if err != nil {
				return err
			}
			defer in.Close()

			writer := pgn.NewWriter(pgn.WithLineWidth(width))
			db := pgndb.NewFromReader(in, engine)
			for game, gerr := range db.Games() {
				if gerr != nil {
					return gerr
				}
				if err := writer.WriteGame(os.Stdout, game); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "render the final position of the first game as SVG",
		ArgsUsage: "[file]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			engine, err := resolveEngine(cfg.Engine)
			if err != nil {
				return err
			}

			in, err := openInput(cmd)
			if err != nil {
				return err
			}
			defer in.Close()

			db := pgndb.NewFromReader(in, engine)
			game, err := db.Next()
			if err != nil {
				return err
			}
			leaf := cursor.CurrentMainline(game)
			boardsvg.RenderCursor(os.Stdout, leaf)
			return nil
		},
	}
}
