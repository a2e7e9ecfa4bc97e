// Package app wires the display backend and the world together and drives
// the frame loop.
package app

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/diegok/retropong/internal/config"
	"github.com/diegok/retropong/internal/display"
	"github.com/diegok/retropong/internal/game"
)

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg    *config.Config
	logger *log.Logger
	term   *display.Terminal
	world  *game.World

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:  cfg,
		quit: make(chan struct{}),
	}
}

// Run initializes the display, builds the world and drives the frame loop.
// The loop has no terminal state of its own; it runs until a quit key or a
// signal arrives.
func (a *App) Run() error {
	logger, closeLog, err := a.newLogger()
	if err != nil {
		return err
	}
	defer closeLog()
	a.logger = logger

	term, err := display.NewTerminal(a.cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize display: %w", err)
	}
	a.term = term
	defer term.Fini()

	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(a.sigChan)

	go func() {
		<-a.sigChan
		close(a.quit)
	}()

	a.world = game.NewWorld(term)

	a.logger.Info("frame loop started")
	a.loop(term.Input())
	a.logger.Info("frame loop stopped")

	return nil
}

// loop runs one simulation step per display refresh: step the world, wait
// for the vblank tick, present the frame, refresh the input snapshot.
func (a *App) loop(in *display.Controller) {
	for {
		select {
		case <-a.quit:
			return
		default:
		}
		if in.QuitRequested() {
			return
		}

		a.world.Step(in.AxisY())

		a.term.WaitVBlank()
		a.term.Commit()
		in.Update()
	}
}

// newLogger returns the app logger. The tcell session owns the terminal,
// so logs go to a file when --debug is set and are discarded otherwise.
func (a *App) newLogger() (*log.Logger, func(), error) {
	if !a.cfg.Debug {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "retropong",
		Level:           log.DebugLevel,
	})
	return logger, func() { _ = f.Close() }, nil
}
