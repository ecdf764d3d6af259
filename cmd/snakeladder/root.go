package main

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/snakeladder/bfs"
	"github.com/katalvlaran/snakeladder/board"
	"github.com/katalvlaran/snakeladder/config"
)

type rootOptions struct {
	configPath string
	strict     bool
	faces      int
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "snakeladder",
		Short: "Find the fewest dice throws to finish a snakes-and-ladders board",
		Long: `snakeladder reads a board definition (TOML, see package config) or uses
the built-in 30-cell demo board, then prints the minimum number of dice
throws from the first to the last cell and one path that achieves it.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "board definition file (default: built-in demo board)")
	flags.BoolVar(&opts.strict, "strict", false, "fail on invalid ladders or snakes instead of ignoring them")
	flags.IntVar(&opts.faces, "faces", bfs.DefaultDieFaces, "number of faces on the die")
	flags.StringVar(&opts.logLevel, "log-level", logrus.InfoLevel.String(), "log level (trace, debug, info, warn, error)")

	return cmd
}

func run(ctx context.Context, stdout, stderr io.Writer, opts *rootOptions) error {
	log := logrus.New()
	log.SetOutput(stderr)
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	cfg := config.Default()
	if opts.configPath != "" {
		if cfg, err = config.Load(opts.configPath); err != nil {
			return err
		}
		log.WithField("file", opts.configPath).Debug("board definition loaded")
	}

	boardOpts := []board.Option{
		board.WithOnIgnored(func(kind board.Kind, start, end int) {
			log.WithFields(logrus.Fields{
				"kind":  kind.String(),
				"start": start,
				"end":   end,
			}).Warn("shortcut ignored")
		}),
	}
	if opts.strict {
		boardOpts = append(boardOpts, board.WithStrict())
	}
	b, err := cfg.Build(boardOpts...)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"size":    b.Size(),
		"ladders": len(b.Ladders()),
		"snakes":  len(b.Snakes()),
	}).Info("board ready")
	for _, s := range b.Shortcuts() {
		log.WithFields(logrus.Fields{
			"kind":  s.Kind.String(),
			"start": s.Start,
			"end":   s.End,
		}).Debug("shortcut")
	}

	res, err := bfs.FindMinDiceThrows(b,
		bfs.WithContext(ctx),
		bfs.WithDieFaces(opts.faces),
		bfs.WithOnVisit(func(cell, depth int) error {
			log.WithFields(logrus.Fields{"cell": cell, "depth": depth}).Trace("visit")
			return nil
		}),
	)
	if err != nil {
		return err
	}

	if !res.Reachable() {
		fmt.Fprintln(stdout, "Destination is unreachable!")
		return nil
	}
	fmt.Fprintf(stdout, "Minimum number of dice throws required: %d\n", res.Throws)
	fmt.Fprintf(stdout, "Path: %v\n", res.Path)

	return nil
}
