// Package grido implements the falling-block tile chemistry game.
// A piece of tiles is steered over the playfield and dropped; complete
// neighborhoods of compatible tiles explode for score and multiplier.
package grido

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/grido/internal/config"
	"github.com/vovakirdan/grido/internal/core"
	"github.com/vovakirdan/grido/internal/games/grido/block"
	"github.com/vovakirdan/grido/internal/games/grido/random"
	"github.com/vovakirdan/grido/internal/games/grido/tile"
	"github.com/vovakirdan/grido/internal/logging"
	"github.com/vovakirdan/grido/internal/registry"
)

// Variant selects the playfield size. Zero sizes come from the config file.
type Variant struct {
	ID     string
	Title  string
	Width  int
	Height int
}

var (
	Classic = Variant{ID: "grido", Title: "Grido"}
	Small   = Variant{ID: "grido_small", Title: "Grido (Small)", Width: 12, Height: 10}
)

// Piece positions, in tiles. The preview sits in its own small grid.
const (
	spawnX, spawnY     = 2, 2
	previewX, previewY = 1, 1
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives game events; silent unless SetLogger is called.
var logger = logging.Discard()

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger used by every game instance.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	logger = l
}

// Game implements the grido game logic.
type Game struct {
	variant Variant
	cfg     config.GridoConfig
	diff    *config.DifficultyManager
	rng     random.Source
	now     func() time.Time

	sessionID string
	w, h      int // playfield size in tiles

	border  block.Block
	field   block.Block
	falling block.Block
	next    block.Block

	score      int
	multiplier int
	drops      int
	particles  []particle

	lastDrop  time.Time
	lastMult  time.Time
	holdStart time.Time // zero unless paused or squeezed

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
	gameOver bool
}

// New creates a game of the given variant.
func New(v Variant) *Game {
	return &Game{variant: v, now: time.Now}
}

func init() {
	registry.Register(Classic.ID, func() registry.Game {
		return New(Classic)
	})
	registry.Register(Small.ID, func() registry.Game {
		return New(Small)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// SessionID identifies the current run; it changes on every Reset.
func (g *Game) SessionID() string {
	return g.sessionID
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadGrido(configPath)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultGridoConfig()
	}
	if difficultyPreset != "" {
		config.ApplyGridoPreset(&cfg, difficultyPreset)
	}
	if g.variant.Width > 0 && g.variant.Height > 0 {
		cfg.Playfield = config.PlayfieldConfig{Width: g.variant.Width, Height: g.variant.Height}
	}
	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)

	rng, err := random.New(rc.RNG, rc.Seed)
	if err != nil {
		logger.Warn("falling back to math source", "error", err)
		rng = random.NewMath(rc.Seed)
	}
	g.rng = rng
	if g.now == nil {
		g.now = time.Now
	}

	g.sessionID = uuid.NewString()
	g.w, g.h = cfg.Playfield.Width, cfg.Playfield.Height
	g.border = block.NewBorder(g.w, g.h)
	g.field = block.NewAt(0, 0)
	g.score = 0
	g.multiplier = 1
	g.drops = 0
	g.particles = nil
	g.falling = block.NewRandom(g.rng, g.score).MovedTo(spawnX, spawnY)
	g.next = block.NewRandom(g.rng, g.score).MovedTo(previewX, previewY)

	now := g.now()
	g.lastDrop = now
	g.lastMult = now
	g.holdStart = time.Time{}
	g.paused = false
	g.gameOver = false
	g.Resize(rc.ScreenW, rc.ScreenH)

	logger.Info("game started",
		"session", g.sessionID, "variant", g.variant.ID,
		"playfield", [2]int{g.w, g.h}, "rng", rc.RNG, "seed", rc.Seed)
}

// Resize adapts to a new terminal size without restarting. A terminal too
// small for the layout holds the clocks like a pause does.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	lw, lh := g.layoutSize()
	g.tooSmall = w < lw || h < lh
	g.syncHold(g.now())
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	now := g.now()

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.syncHold(now)
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.expireParticles(now)

	for _, mv := range []struct {
		action core.Action
		dx, dy int
	}{
		{core.ActionLeft, -1, 0},
		{core.ActionRight, 1, 0},
		{core.ActionUp, 0, -1},
		{core.ActionDown, 0, 1},
	} {
		if in.Has(mv.action) {
			g.falling = g.tryMove(g.falling.Moved(mv.dx, mv.dy))
		}
	}
	if in.Has(core.ActionRotate) {
		g.falling = g.tryMove(g.falling.Turned())
	}
	if in.Has(core.ActionSwap) {
		g.swap()
	}

	drop := false
	if in.Has(core.ActionDrop) && now.Sub(g.lastDrop) > g.cfg.Timers.DropGrace() {
		drop = true
	}
	if now.Sub(g.lastDrop) >= g.dropInterval() {
		drop = true
	}
	if drop || g.falling.Empty() {
		g.drop(now)
	}

	g.decayMultiplier(now)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    tile.Level(g.score),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Multiplier returns the current score multiplier.
func (g *Game) Multiplier() int {
	return g.multiplier
}

// syncHold starts or ends a hold. Ending one shifts every captured start
// time forward by the held duration, so no clock advances while held.
func (g *Game) syncHold(now time.Time) {
	hold := g.paused || g.tooSmall
	switch {
	case hold && g.holdStart.IsZero():
		g.holdStart = now
	case !hold && !g.holdStart.IsZero():
		d := now.Sub(g.holdStart)
		g.lastDrop = g.lastDrop.Add(d)
		g.lastMult = g.lastMult.Add(d)
		for i := range g.particles {
			g.particles[i].born = g.particles[i].born.Add(d)
		}
		g.holdStart = time.Time{}
	}
}

// dropInterval is the automatic drop period at the current difficulty.
func (g *Game) dropInterval() time.Duration {
	return g.diff.DropInterval(g.cfg.Timers.Drop(), g.score, g.drops)
}
