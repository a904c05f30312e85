// Package term drives the runner directly on a tcell screen with a fixed
// poll, update, render, sleep loop.
package term

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/rex-runner/internal/core"
	"github.com/vovakirdan/rex-runner/internal/games/dino"
	"github.com/vovakirdan/rex-runner/internal/platform"
)

// styles maps core colors to tcell styles.
var styles = map[core.Color]tcell.Style{
	core.ColorDefault: tcell.StyleDefault,
	core.ColorRed:     tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	core.ColorGreen:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorYellow:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
	core.ColorCyan:    tcell.StyleDefault.Foreground(tcell.ColorTeal),
	core.ColorWhite:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
	core.ColorGray:    tcell.StyleDefault.Foreground(tcell.ColorGray),
}

// Driver owns a tcell screen and the game it plays on it.
type Driver struct {
	screen      tcell.Screen
	game        *dino.Game
	logger      *log.Logger
	frame       *core.Screen
	input       core.InputFrame
	state       core.GameState
	pollTimeout time.Duration
	shotDir     string

	events chan tcell.Event
	done   chan struct{}
}

// NewDriver creates a driver for an already initialised screen.
func NewDriver(screen tcell.Screen, game *dino.Game, logger *log.Logger) *Driver {
	cfg := game.Config()
	return &Driver{
		screen:      screen,
		game:        game,
		logger:      logger,
		frame:       core.NewScreen(cfg.Screen.Width, cfg.Screen.Height),
		input:       core.NewInputFrame(),
		state:       game.State(),
		pollTimeout: cfg.Pace.PollTimeout(),
		shotDir:     platform.DefaultScreenshotDir(),
		events:      make(chan tcell.Event, 100),
		done:        make(chan struct{}),
	}
}

// Run takes over the terminal, plays until the player quits, and restores
// the terminal on every exit path, panics included.
func Run(game *dino.Game, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			panic(r)
		}
		screen.Fini()
	}()

	screen.HideCursor()
	screen.Clear()

	return NewDriver(screen, game, logger).Loop()
}

// Loop runs until a quit key arrives or the screen stops delivering events.
func (d *Driver) Loop() error {
	defer close(d.done)
	go d.pump()

	for {
		start := time.Now()

		if d.poll() {
			return nil
		}

		prev := d.state
		result := d.game.Step(d.input)
		d.input.Clear()
		d.state = result.State
		platform.LogStep(d.logger, prev, result)

		d.draw()

		if rest := result.Interval - time.Since(start); rest > 0 {
			time.Sleep(rest)
		}
	}
}

// pump forwards screen events until the screen is finalised or the loop ends.
func (d *Driver) pump() {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			close(d.events)
			return
		}
		select {
		case d.events <- ev:
		case <-d.done:
			return
		}
	}
}

// poll waits up to the poll timeout for one event and applies it.
// Returns true when the loop should stop.
func (d *Driver) poll() bool {
	var ev tcell.Event
	var ok bool

	if d.pollTimeout <= 0 {
		select {
		case ev, ok = <-d.events:
		default:
			return false
		}
	} else {
		timer := time.NewTimer(d.pollTimeout)
		defer timer.Stop()
		select {
		case ev, ok = <-d.events:
		case <-timer.C:
			return false
		}
	}

	if !ok {
		d.logger.Debug("event stream closed")
		return true
	}
	return d.handle(ev)
}

// handle applies a single event. Returns true on quit.
func (d *Driver) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := actionFor(ev, d.state)
		if action != core.ActionNone {
			d.logger.Debug("input", "key", ev.Name(), "action", action)
		}

		switch action {
		case core.ActionQuit:
			return true
		case core.ActionSnapshot:
			d.saveScreenshot()
		case core.ActionJump, core.ActionRestart:
			d.input.Set(action)
		}

	case *tcell.EventResize:
		d.screen.Sync()
	}
	return false
}

// actionFor maps a key to an action, honouring the state each key needs.
func actionFor(ev *tcell.EventKey, state core.GameState) core.Action {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyCtrlS:
		return core.ActionSnapshot
	case tcell.KeyUp:
		if !state.GameOver {
			return core.ActionJump
		}
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			switch r {
			case 'c':
				return core.ActionQuit
			case 's':
				return core.ActionSnapshot
			}
			return core.ActionNone
		}

		switch r {
		case 'q':
			return core.ActionQuit
		case ' ':
			if !state.GameOver {
				return core.ActionJump
			}
		case 'r':
			if state.GameOver {
				return core.ActionRestart
			}
		}
	}
	return core.ActionNone
}

// draw renders the game and copies the frame onto the tcell screen.
func (d *Driver) draw() {
	d.game.Render(d.frame)

	for y := range d.frame.Height() {
		for x := range d.frame.Width() {
			cell := d.frame.GetCell(x, y)
			style, ok := styles[cell.Color]
			if !ok {
				style = tcell.StyleDefault
			}
			d.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	d.screen.Show()
}

// saveScreenshot writes the current frame as plain text. Failures are logged only.
func (d *Driver) saveScreenshot() {
	d.game.Render(d.frame)
	path, err := platform.SaveScreenshot(d.shotDir, d.frame)
	if err != nil {
		d.logger.Warn("screenshot failed", "error", err)
		return
	}
	d.logger.Info("screenshot saved", "path", path)
}
