package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/edward-ap/marquee/internal/demoapp"
)

func newGUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the desktop marquee demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(flags)
		},
	}
}

func runGUI(flags *rootFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	log, err := newLogger(flags, cfg, os.Stderr, true)
	if err != nil {
		return err
	}
	demoapp.New(cfg, log).Run()
	return nil
}
