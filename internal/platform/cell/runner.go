// Package cell runs a game directly on a tcell screen. It is the
// alternative to the Bubble Tea frontend: events are polled in a goroutine
// and the simulation advances on a ticker.
package cell

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/grido/internal/core"
	"github.com/vovakirdan/grido/internal/logging"
	"github.com/vovakirdan/grido/internal/registry"
	"github.com/vovakirdan/grido/internal/storage"
)

// Style returns the tcell style for a cell color.
func Style(c core.Color) tcell.Style {
	if n, ok := c.Palette(); ok {
		return tcell.StyleDefault.Foreground(tcell.PaletteColor(n))
	}
	return tcell.StyleDefault
}

// Runner drives one game on a tcell screen until the player quits.
type Runner struct {
	screen tcell.Screen
	game   registry.Game
	store  *storage.Store
	logger *log.Logger
	cfg    core.RuntimeConfig

	buf   *core.Screen
	frame core.InputFrame
	state core.GameState
	saved bool
}

// NewRunner creates a runner on an initialized screen. store and logger may
// be nil.
func NewRunner(screen tcell.Screen, game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) *Runner {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 50
	}
	if logger == nil {
		logger = logging.Discard()
	}

	w, h := screen.Size()
	cfg.ScreenW, cfg.ScreenH = w, h

	return &Runner{
		screen: screen,
		game:   game,
		store:  store,
		logger: logger,
		cfg:    cfg,
		buf:    core.NewScreen(w, h),
		frame:  core.NewInputFrame(),
	}
}

// Run resets the game and loops until the quit key or ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	r.game.Reset(r.cfg)
	r.state = r.game.State()
	r.screen.HideCursor()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(r.cfg.TickRate))
	defer ticker.Stop()

	r.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if !r.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			r.tick()
			r.draw()
		}
	}
}

// handleEvent records input; it returns false when the player quits.
func (r *Runner) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action, quit := MapKey(ev)
		if quit {
			return false
		}
		if action != core.ActionNone {
			r.frame.Set(action)
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		r.cfg.ScreenW, r.cfg.ScreenH = w, h
		r.buf.Resize(w, h)
		if rz, ok := r.game.(registry.Resizer); ok {
			rz.Resize(w, h)
		} else if !r.state.GameOver {
			r.game.Reset(r.cfg)
		}
		r.screen.Sync()
	}
	return true
}

// tick advances the game by one step.
func (r *Runner) tick() {
	if r.frame.Has(core.ActionRestart) && r.state.GameOver {
		r.cfg.Seed = time.Now().UnixNano()
		r.game.Reset(r.cfg)
		r.state = r.game.State()
		r.saved = false
		r.frame.Clear()
		return
	}

	r.state = r.game.Step(r.frame).State
	if r.state.GameOver && !r.saved {
		r.saveScore()
		r.saved = true
	}
	r.frame.Clear()
}

func (r *Runner) saveScore() {
	if r.store == nil || r.state.Score <= 0 {
		return
	}
	sessionID := ""
	if s, ok := r.game.(registry.Session); ok {
		sessionID = s.SessionID()
	}
	if _, err := r.store.SaveScore(sessionID, r.game.ID(), r.state.Score, r.state.Level); err != nil {
		r.logger.Warn("could not save score", "game", r.game.ID(), "error", err)
	}
}

// draw renders the game into the buffer and copies it to the screen.
func (r *Runner) draw() {
	r.game.Render(r.buf)
	Blit(r.screen, r.buf)
	r.screen.Show()
}

// Blit copies every cell of buf onto screen.
func Blit(screen tcell.Screen, buf *core.Screen) {
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			c := buf.GetCell(x, y)
			screen.SetContent(x, y, c.Rune, nil, Style(c.Color))
		}
	}
}

// MapKey translates a tcell key event to a game action and reports whether
// it is a quit request.
func MapKey(ev *tcell.EventKey) (core.Action, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return core.ActionQuit, true
	case tcell.KeyLeft:
		return core.ActionLeft, false
	case tcell.KeyRight:
		return core.ActionRight, false
	case tcell.KeyUp:
		return core.ActionUp, false
	case tcell.KeyDown:
		return core.ActionDown, false
	case tcell.KeyTab:
		return core.ActionRotate, false
	case tcell.KeyEnter:
		return core.ActionDrop, false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return core.ActionSwap, false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return core.ActionQuit, true
		case 'h':
			return core.ActionLeft, false
		case 'l':
			return core.ActionRight, false
		case 'k':
			return core.ActionUp, false
		case 'j':
			return core.ActionDown, false
		case ' ':
			return core.ActionDrop, false
		case 'p':
			return core.ActionPause, false
		case 'r':
			return core.ActionRestart, false
		}
	}
	return core.ActionNone, false
}

// Run opens the terminal, plays game until the player quits and restores
// the terminal.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("cell: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("cell: cannot init screen: %w", err)
	}
	defer screen.Fini()

	return NewRunner(screen, game, store, logger, cfg).Run(context.Background())
}
