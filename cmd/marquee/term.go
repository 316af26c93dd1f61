package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/edward-ap/marquee/internal/logging"
	"github.com/edward-ap/marquee/internal/tui"
)

type termOptions struct {
	logFile string
	status  bool
}

func newTermCmd(flags *rootFlags) *cobra.Command {
	opts := &termOptions{}

	cmd := &cobra.Command{
		Use:   "term",
		Short: "Run the marquee in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTerm(flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file instead of discarding them")
	cmd.Flags().BoolVar(&opts.status, "status", false, "Show the phase and speed below the marquee")

	return cmd
}

func runTerm(flags *rootFlags, opts *termOptions) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	var w io.Writer = io.Discard
	if opts.logFile != "" {
		f, err := logging.OpenFile(opts.logFile)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		w = f
	}
	log, err := newLogger(flags, cfg, w, false)
	if err != nil {
		return err
	}

	mc := tui.CellConfig(cfg.MarqueeConfig())
	log.Info().
		Float32("scrollSpeed", mc.ScrollSpeed).
		Float32("labelSpacing", mc.LabelSpacing).
		Float32("fadeLength", mc.FadeLength).
		Msg("scaled marquee lengths to cells")

	model := tui.New(cfg.Text, tui.Options{Config: mc, ShowStatus: opts.status, Logger: &log})
	if _, err := tea.NewProgram(model, tea.WithReportFocus()).Run(); err != nil {
		return fmt.Errorf("run terminal marquee: %w", err)
	}
	return nil
}
