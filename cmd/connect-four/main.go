package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/connect-four/audio"
	"github.com/lixenwraith/connect-four/config"
	"github.com/lixenwraith/connect-four/engine"
	"go.uber.org/zap"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to the log directory")
	fpsFlag    = flag.Int("fps", 0, "Frame rate override")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
)

func main() {
	flag.Parse()

	// Exit only after start has run its deferred log flush and close
	if err := start(); err != nil {
		fmt.Fprintf(os.Stderr, "connect-four: %v\n", err)
		os.Exit(1)
	}
}

func start() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *fpsFlag > 0 {
		cfg.Timing.FPS = *fpsFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	logger, logFile := setupLogging(cfg.Log.Dir, cfg.Log.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("exit", zap.Error(err))
		return err
	}
	return nil
}

func run(cfg *config.Config, logger *zap.Logger) error {
	palette, err := cfg.Palette()
	if err != nil {
		return err
	}

	sound := audio.NewSoundManager(audio.NewConfig(cfg.Audio.Enabled, cfg.Audio.MasterVolume, cfg.Audio.SampleRate))
	if err := sound.Initialize(); err != nil && !errors.Is(err, audio.ErrAudioDisabled) {
		logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
	}
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Restore the terminal before printing a crash, otherwise the trace is lost in raw mode
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCONNECT-FOUR CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan tcell.Event, 256)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	a := newApp(screen, cfg, palette, sound, logger, engine.NewPausableClock())
	logger.Info("started", zap.Int("fps", cfg.Timing.FPS), zap.Bool("audio", sound.IsInitialized()))

	err = engine.RunLoop(ctx, engine.FrameInterval(cfg.Timing.FPS), events, a.handle, a.frame)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
