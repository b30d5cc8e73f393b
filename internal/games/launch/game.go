// Package launch adapts the tile launcher simulation to the platform's
// Game interface: it loads configuration and levels, converts terminal
// input into world coordinates and reports progression events.
package launch

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tile-launcher/internal/config"
	"github.com/vovakirdan/tile-launcher/internal/core"
	"github.com/vovakirdan/tile-launcher/internal/games/launch/levels"
	"github.com/vovakirdan/tile-launcher/internal/games/launch/sim"
	"github.com/vovakirdan/tile-launcher/internal/registry"
)

// Game IDs.
const (
	GameID     = "launch"
	PracticeID = "launch_practice"
)

// Layout
const (
	hudRows    = 2 // status line + separator
	minScreenW = 32
	minScreenH = 12
)

// Mode selects campaign or practice play.
type Mode int

const (
	ModeCampaign Mode = iota // limited lives per level
	ModePractice             // infinite lives
)

// Settings set via CLI before Reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	levelsDir        string
	startLevel       = 1
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLevelsDir makes Reset load levels from dir instead of the embedded pack.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetStartLevel sets the 1-based level new games start at.
func SetStartLevel(level int) {
	startLevel = max(level, 1)
}

// LevelLoader returns the loader Reset uses for levels.
func LevelLoader() *levels.Loader {
	if levelsDir != "" {
		return levels.NewLoader(levelsDir)
	}
	return levels.Default()
}

// Game implements registry.Game for the tile launcher.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.LaunchConfig

	sim       *sim.Game
	paused    bool
	loadErr   error
	configErr error

	// fixed level data; nil means load via LevelLoader on every Reset
	data []sim.LevelData

	screenTooSmall bool
}

// New creates a campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewPractice creates a practice game with infinite lives.
func NewPractice() *Game {
	return &Game{mode: ModePractice}
}

// NewWithLevels creates a game over fixed level data.
func NewWithLevels(mode Mode, data []sim.LevelData) *Game {
	return &Game{mode: mode, data: data}
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          GameID,
		Title:       "Tile Launcher",
		Description: "Fling the ball through the tiles and hit the goal",
	}, func() registry.Game { return New() })
	registry.Register(registry.GameInfo{
		ID:          PracticeID,
		Title:       "Tile Launcher (Practice)",
		Description: "Every level with unlimited lives",
	}, func() registry.Game { return NewPractice() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return PracticeID
	}
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Tile Launcher (Practice)"
	}
	return "Tile Launcher"
}

// Reset loads config and levels and starts from the configured level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	// LoadLaunch falls back to defaults on error
	cfg, err := config.LoadLaunch(configPath)
	g.configErr = err
	if difficultyPreset != "" {
		config.ApplyLaunchPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	data := g.data
	g.loadErr = nil
	if data == nil {
		lvls, err := LevelLoader().LoadAll()
		g.loadErr = err
		data = levels.Data(lvls)
	}

	opts := []sim.Option{sim.WithSeed(runtime.Seed), sim.WithStartLevel(startLevel)}
	if g.mode == ModePractice {
		opts = append(opts, sim.WithInfiniteLives())
	}
	g.sim = sim.New(data, RulesFromConfig(cfg), opts...)
	g.sim.MouseMove(r2.Add(g.sim.StartPoint(), r2.Vec{X: -50, Y: 50}))
	g.paused = false
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.screenTooSmall = w < minScreenW || h < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State(), Events: g.drainEvents()}
	}
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.sim.Finished() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	vp := g.viewport()
	if in.Pointer.Moved || in.Pointer.Pressed {
		x, y := vp.ToWorld(in.Pointer.X, in.Pointer.Y)
		p := r2.Vec{X: x, Y: y}
		g.sim.MouseMove(p)
		if in.Pointer.Pressed {
			g.sim.Click(p)
		}
	}

	g.moveAim(in, vp)
	if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
		g.sim.Click(g.sim.AimPoint())
	}

	g.sim.Update(1 / float64(g.runtime.TickRate))

	return core.StepResult{State: g.State(), Events: g.drainEvents()}
}

// moveAim moves the aim point by one cell per pressed direction.
func (g *Game) moveAim(in core.InputFrame, vp core.Viewport) {
	cw, ch := vp.CellSize()
	aim := g.sim.AimPoint()
	moved := false
	if in.Has(core.ActionLeft) {
		aim.X -= cw
		moved = true
	}
	if in.Has(core.ActionRight) {
		aim.X += cw
		moved = true
	}
	if in.Has(core.ActionUp) {
		aim.Y -= ch
		moved = true
	}
	if in.Has(core.ActionDown) {
		aim.Y += ch
		moved = true
	}
	if moved {
		size := g.sim.Size()
		aim.X = core.ClampF(aim.X, 0, size.X)
		aim.Y = core.ClampF(aim.Y, 0, size.Y)
		g.sim.MouseMove(aim)
	}
}

// viewport maps the arena below the HUD onto the whole level size.
func (g *Game) viewport() core.Viewport {
	size := g.sim.Size()
	return core.Viewport{
		WorldW: size.X,
		WorldH: size.Y,
		Area:   core.NewRect(0, hudRows, g.runtime.ScreenW, g.runtime.ScreenH-hudRows),
	}
}

func (g *Game) drainEvents() []core.GameEvent {
	notices := g.sim.DrainNotices()
	if len(notices) == 0 {
		return nil
	}
	events := make([]core.GameEvent, 0, len(notices))
	for _, n := range notices {
		ev := core.GameEvent{
			Kind:      core.EventKind(n.Kind.String()),
			Level:     n.Level,
			LevelID:   n.LevelID,
			LevelName: n.LevelName,
			Attempt:   n.Attempt,
			Score:     n.Score,
			Lives:     n.Lives,
			Elapsed:   n.Elapsed,
		}
		if g.sim.InfiniteLives() {
			ev.Lives = -1
		}
		events = append(events, ev)
	}
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.Score(),
		Level:    g.sim.Level(),
		GameOver: g.sim.Finished(),
		Paused:   g.paused,
	}
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *sim.Game {
	return g.sim
}

// LoadError returns the config and level loading errors of the last Reset,
// if any. The game still runs on defaults when the config could not be read.
func (g *Game) LoadError() error {
	return errors.Join(g.configErr, g.loadErr)
}
