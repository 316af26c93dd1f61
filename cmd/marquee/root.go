package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/edward-ap/marquee/internal/config"
	"github.com/edward-ap/marquee/internal/logging"
)

type rootFlags struct {
	configPath string
	trace      bool
	text       string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "marquee",
		Short:         "Scroll text that does not fit, on the desktop or in a terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file (JSON or YAML); defaults to the user config dir")
	cmd.PersistentFlags().BoolVar(&flags.trace, "trace", false, "Enable trace logging of marquee phase changes")
	cmd.PersistentFlags().StringVarP(&flags.text, "text", "t", "", "Text to scroll, overriding the config")

	cmd.AddCommand(newGUICmd(flags))
	cmd.AddCommand(newTermCmd(flags))

	return cmd
}

// loadConfig reads the config and applies flag overrides.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if strings.TrimSpace(flags.text) != "" {
		cfg.Text = flags.text
	}
	return cfg, nil
}

func newLogger(flags *rootFlags, cfg *config.Config, w io.Writer, human bool) (zerolog.Logger, error) {
	level := cfg.LogLevel
	if flags.trace {
		level = zerolog.TraceLevel.String()
	}
	log, err := logging.New(logging.Options{Level: level, HumanReadable: human, Writer: w})
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("create logger: %w", err)
	}
	return log, nil
}
