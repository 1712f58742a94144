// Package cli wires the cobra commands: the interactive list by default
// and a one-shot `ls` printer.
package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idilsaglam/tasklist/internal/config"
	"github.com/idilsaglam/tasklist/internal/logging"
	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/store"
	"github.com/idilsaglam/tasklist/internal/store/seedfile"
	"github.com/idilsaglam/tasklist/internal/tui"
	"github.com/idilsaglam/tasklist/internal/ui"
)

// app carries state shared by every subcommand.
type app struct {
	v        *viper.Viper
	cfgFile  string
	cfg      config.Config
	closeLog func() error
}

// Execute runs the root command.
func Execute() error {
	cmd, a, err := newRootCmd()
	if err != nil {
		return err
	}
	defer a.close()
	return cmd.Execute()
}

func newRootCmd() (*cobra.Command, *app, error) {
	a := &app{v: viper.New()}
	config.SetDefaults(a.v)

	root := &cobra.Command{
		Use:           "todo",
		Short:         "todo - a tiny task list for the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.init()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			tasks, err := a.tasks()
			if err != nil {
				return err
			}
			log.Info().Int("tasks", len(tasks)).Str("theme", a.cfg.Theme).Msg("session started")
			return tui.Run(store.New(tasks))
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file path (default ./"+config.DefaultFile+" when present)")
	flags.String("theme", "classic", "color theme: classic, neon or mono")
	flags.String("seed", "", "YAML or JSON file with the starting tasks")
	flags.String("log-file", "", "write logs to this file")
	flags.Bool("debug", false, "enable debug logging")
	for key, flag := range map[string]string{
		"theme":    "theme",
		"seed":     "seed",
		"log_file": "log-file",
		"debug":    "debug",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, nil, fmt.Errorf("bind %s flag: %w", flag, err)
		}
	}

	root.AddCommand(newListCmd(a))
	return root, a, nil
}

func (a *app) init() error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	if err := ui.SetTheme(cfg.Theme); err != nil {
		return err
	}
	closeLog, err := logging.Open(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.closeLog = closeLog
	return nil
}

func (a *app) close() {
	if a.closeLog == nil {
		return
	}
	if err := a.closeLog(); err != nil {
		log.Warn().Err(err).Msg("close log file")
	}
}

// tasks returns the starting list: the seed file when configured,
// otherwise the built-in examples.
func (a *app) tasks() ([]model.Task, error) {
	if a.cfg.Seed == "" {
		return model.Seed(), nil
	}
	tasks, err := seedfile.Load(a.cfg.Seed)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", a.cfg.Seed).Int("tasks", len(tasks)).Msg("seed loaded")
	return tasks, nil
}
