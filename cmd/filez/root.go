package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/filez/internal/app"
	"github.com/kk-code-lab/filez/internal/config"
	"github.com/kk-code-lab/filez/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runner starts the application; tests replace it.
var runner = runApp

func newRootCmd(version string) *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:     "filez [LEFT] [RIGHT]",
		Short:   "A dual-pane terminal file browser",
		Long:    `Browse two directories side by side with a live log panel below them.`,
		Version: version,
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("trace-file") {
				v.Set("trace.enabled", true)
			}
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			left, right := startDirs(args)
			return runner(cfg, left, right)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: $XDG_CONFIG_HOME/filez/config.yaml)")
	cmd.Flags().String("log-level", "info", "minimum log level: trace, debug, info, warn or error")
	cmd.Flags().String("log-file", "", "also append log records to this file")
	cmd.Flags().Bool("show-hidden", false, "show hidden files on start")
	cmd.Flags().String("trace-file", "", "write spans to this file")

	_ = v.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))
	_ = v.BindPFlag("log.file", cmd.Flags().Lookup("log-file"))
	_ = v.BindPFlag("ui.show_hidden", cmd.Flags().Lookup("show-hidden"))
	_ = v.BindPFlag("trace.file", cmd.Flags().Lookup("trace-file"))
	return cmd
}

// startDirs maps positional arguments onto the two panels.
func startDirs(args []string) (string, string) {
	left, right := ".", "."
	if len(args) > 0 {
		left = args[0]
	}
	if len(args) > 1 {
		right = args[1]
	}
	return left, right
}

func runApp(cfg config.Config, left, right string) error {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	var sink io.Writer
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		sink = f
	}
	log := logging.New(logging.Options{Capacity: cfg.Log.Buffer, MinLevel: level, Sink: sink})

	// UTF-8 fallback keeps non-ASCII names readable on odd terminals.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	application, err := app.NewApplication(app.Options{
		Config: cfg,
		Left:   left,
		Right:  right,
		Log:    log,
	})
	if err != nil {
		return fmt.Errorf("initializing application: %w", err)
	}

	application.Run()

	if err := application.Close(); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
