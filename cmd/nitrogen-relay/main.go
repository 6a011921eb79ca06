package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/nitrogen-relay/app"
	"github.com/lixenwraith/nitrogen-relay/audio"
	"github.com/lixenwraith/nitrogen-relay/config"
	"github.com/lixenwraith/nitrogen-relay/constants"
	"github.com/lixenwraith/nitrogen-relay/logging"
	"github.com/lixenwraith/nitrogen-relay/scenario"
	"github.com/lixenwraith/nitrogen-relay/terminal"
)

// rootOptions holds the persistent flags
type rootOptions struct {
	configPath string
	debug      bool
	logDir     string
	color      string
	mute       bool
	skipIntro  bool
	control    int

	logger   *zap.Logger
	flushLog func()
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the session crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			// \r\n for raw mode compatibility
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mNITROGEN-RELAY CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: zap.NewNop(), flushLog: func() {}}

	root := &cobra.Command{
		Use:   "nitrogen-relay",
		Short: "Interactive terminal lab for the ocean nitrogen relay",
		Long: `nitrogen-relay teaches how marine microbes pass nitrogen through a four-step relay:
NO₃⁻ → NO₂⁻ → N₂O → N₂

Move the food slider to see which stations stay active, how particles flow
between them, and when nitrous oxide escapes as a greenhouse gas.

Run without arguments to start the interactive lab.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, flush, err := logging.New(opts.logDir, constants.LogFileName, opts.debug)
			if err != nil {
				return err
			}
			opts.logger, opts.flushLog = logger, flush
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			opts.flushLog()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML settings file, reloaded on change")
	flags.BoolVar(&opts.debug, "debug", false, "Write JSON debug logs and show the stats line")
	flags.StringVar(&opts.logDir, "log-dir", constants.LogDir, "Directory for debug logs")

	root.Flags().StringVar(&opts.color, "color", "auto", "Color mode: auto, truecolor, 256")
	root.Flags().BoolVar(&opts.mute, "mute", false, "Start with sound cues muted")
	root.Flags().BoolVar(&opts.skipIntro, "skip-intro", false, "Start at the orientation bay")
	root.Flags().IntVar(&opts.control, "control", 0, "Initial food slider position (0-100)")

	root.AddCommand(newInspectCmd(), newConfigCmd(opts))
	return root
}

// loadConfig resolves settings and applies flag overrides
// A --config that fails to load is fatal at startup; later bad edits are ignored by the watcher
func loadConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	if f := cmd.Flags().Lookup("control"); f != nil && f.Changed {
		if opts.control < scenario.ControlMin || opts.control > scenario.ControlMax {
			return cfg, fmt.Errorf("--control %d: %w", opts.control, config.ErrControl)
		}
		cfg.UI.InitialControl = opts.control
	}
	return cfg, nil
}

func runInteractive(cmd *cobra.Command, opts *rootOptions) error {
	logger := opts.logger

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	mode, err := terminal.ParseColorMode(opts.color)
	if err != nil {
		return err
	}
	terminal.ApplyColorMode(mode)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var reloads <-chan config.Config
	if opts.configPath != "" {
		watcher, err := config.NewWatcher(opts.configPath, logger)
		if err != nil {
			return err
		}
		if err := watcher.Start(ctx); err != nil {
			return err
		}
		defer watcher.Stop()
		reloads = watcher.Updates()
	}

	// Audio is optional; a missing device leaves the session silent
	// The speaker opens even when audio.enabled is false so a reload can turn sound on
	sounds := audio.NewSoundManager(cfg.Audio.Volume, logger)
	if err := sounds.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
	} else {
		defer sounds.Cleanup()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	logger.Info("session starting",
		zap.String("color", mode.String()),
		zap.Int("control", cfg.UI.InitialControl),
		zap.Bool("config_watch", reloads != nil))

	session := app.New(screen, app.Options{
		Config:    cfg,
		Sounds:    sounds,
		Logger:    logger,
		SkipIntro: opts.skipIntro,
		Muted:     opts.mute,
		ShowStats: opts.debug,
	})
	// Run finalizes the screen on every return path
	return session.Run(ctx, reloads)
}
