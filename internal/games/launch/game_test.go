package launch

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tile-launcher/internal/config"
	"github.com/vovakirdan/tile-launcher/internal/core"
	"github.com/vovakirdan/tile-launcher/internal/games/launch/sim"
	"github.com/vovakirdan/tile-launcher/internal/registry"
)

func testLevels() []sim.LevelData {
	return []sim.LevelData{
		{
			ID:   "t1",
			Name: "Test One",
			Tiles: [][]*sim.TileSpec{
				{{Type: sim.TileNormal}, nil, {Type: sim.TileHard, Value: 3}},
				{nil, nil, {Type: sim.TileGoal}},
			},
		},
		{
			ID:    "t2",
			Name:  "Test Two",
			Tiles: [][]*sim.TileSpec{{{Type: sim.TileGoal}}},
		},
	}
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func newTestGame(mode Mode) *Game {
	g := NewWithLevels(mode, testLevels())
	g.Reset(testRuntime())
	return g
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{GameID, PracticeID} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
	}
}

func TestResetStartsFirstLevel(t *testing.T) {
	g := newTestGame(ModeCampaign)

	s := g.Sim()
	if s.Level() != 1 || s.LevelName() != "Test One" {
		t.Errorf("level %d %q, want 1 %q", s.Level(), s.LevelName(), "Test One")
	}
	aim := s.AimPoint()
	if aim.X != 46 || aim.Y != 550 {
		t.Errorf("initial aim = %v, want (46, 550)", aim)
	}

	res := g.Step(core.NewInputFrame())
	if len(res.Events) != 1 || res.Events[0].Kind != core.EventLevelStarted {
		t.Fatalf("first step events = %+v, want one level_started", res.Events)
	}
	if res.Events[0].LevelID != "t1" || res.Events[0].Lives != 10 {
		t.Errorf("event = %+v", res.Events[0])
	}
	if res.State.GameOver || res.State.Level != 1 {
		t.Errorf("state = %+v", res.State)
	}
}

func TestPracticeReportsUnlimitedLives(t *testing.T) {
	g := newTestGame(ModePractice)
	if g.ID() != PracticeID {
		t.Errorf("ID() = %q", g.ID())
	}
	res := g.Step(core.NewInputFrame())
	if len(res.Events) == 0 || res.Events[0].Lives != -1 {
		t.Errorf("events = %+v, want lives -1", res.Events)
	}
}

func TestPointerConvertsToWorld(t *testing.T) {
	g := newTestGame(ModeCampaign)

	// 80x22 arena cells over 800x600 world pixels
	in := core.NewInputFrame()
	in.MovePointer(9, 2)
	g.Step(in)

	aim := g.Sim().AimPoint()
	if !near(aim.X, 95) || !near(aim.Y, 0.5*600.0/22) {
		t.Errorf("aim = %v, want (95, %v)", aim, 0.5*600.0/22)
	}
	if g.Sim().Ball().Active {
		t.Error("moving the pointer must not launch")
	}
}

func TestPointerPressLaunches(t *testing.T) {
	g := newTestGame(ModeCampaign)

	in := core.NewInputFrame()
	in.PressPointer(0, 23)
	g.Step(in)

	ball := g.Sim().Ball()
	if !ball.Active {
		t.Fatal("press should launch the ball")
	}
	if ball.Vel.X <= 0 || ball.Vel.Y >= 0 {
		t.Errorf("velocity = %v, want up and to the right", ball.Vel)
	}
}

func TestKeyboardAim(t *testing.T) {
	g := newTestGame(ModeCampaign)
	_, ch := g.viewport().CellSize()

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.Set(core.ActionUp)
	g.Step(in)

	aim := g.Sim().AimPoint()
	if !near(aim.X, 56) || !near(aim.Y, 550-ch) {
		t.Errorf("aim = %v, want (56, %v)", aim, 550-ch)
	}

	in = core.NewInputFrame()
	in.Set(core.ActionJump)
	g.Step(in)
	if !g.Sim().Ball().Active {
		t.Error("space should launch at the aim point")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(ModeCampaign)

	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	g.Step(in)

	in = core.NewInputFrame()
	in.Set(core.ActionPause)
	res := g.Step(in)
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}
	paused := g.Sim().Ball().Pos
	for range 10 {
		g.Step(core.NewInputFrame())
	}
	if g.Sim().Ball().Pos != paused {
		t.Error("ball moved while paused")
	}

	g.Step(in)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(ModeCampaign)
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	g.Step(in)

	in = core.NewInputFrame()
	in.Set(core.ActionRestart)
	res := g.Step(in)
	if g.Sim().Ball().Active || g.Sim().Attempts() != 1 {
		t.Error("restart should begin a fresh game")
	}
	if len(res.Events) == 0 || res.Events[0].Kind != core.EventLevelStarted {
		t.Errorf("restart events = %+v", res.Events)
	}
}

func TestStartLevelSetting(t *testing.T) {
	SetStartLevel(2)
	t.Cleanup(func() { SetStartLevel(1) })

	g := newTestGame(ModeCampaign)
	if g.Sim().Level() != 2 || g.Sim().LevelID() != "t2" {
		t.Errorf("level = %d %q, want 2 t2", g.Sim().Level(), g.Sim().LevelID())
	}
}

func TestNoLevelsIsGameOver(t *testing.T) {
	g := NewWithLevels(ModeCampaign, []sim.LevelData{})
	g.Reset(testRuntime())
	if !g.State().GameOver {
		t.Error("expected game over without levels")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "No levels found") {
		t.Error("expected a no levels message")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() sim.Snapshot {
		g := newTestGame(ModeCampaign)
		for i := range 400 {
			in := core.NewInputFrame()
			switch {
			case i%90 == 0:
				in.PressPointer(2, 22)
			case i%7 == 0:
				in.Set(core.ActionDown)
			}
			g.Step(in)
		}
		return g.Sim().Snapshot()
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("hashes differ: %d vs %d", a.Hash(), b.Hash())
	}
}

func TestRulesFromConfigMatchesDefaults(t *testing.T) {
	got := RulesFromConfig(config.DefaultLaunchConfig())
	want := sim.DefaultRules()
	if got != want {
		t.Errorf("RulesFromConfig(defaults) = %+v\nwant %+v", got, want)
	}
}

func TestResizeKeepsRun(t *testing.T) {
	g := newTestGame(ModeCampaign)
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	g.Step(in)

	g.Resize(120, 40)
	if !g.Sim().Ball().Active {
		t.Error("resize should not restart the attempt")
	}
	_, ch := g.viewport().CellSize()
	if !near(ch, 600.0/38) {
		t.Errorf("cell height = %v, want %v", ch, 600.0/38)
	}
}

func TestUnreadableConfigIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := newTestGame(ModeCampaign)
	err := g.LoadError()
	if err == nil {
		t.Fatal("LoadError() = nil, want the config read error")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("LoadError() = %q, want it to name %s", err, path)
	}
	if g.Sim().LevelCount() != 2 || g.Sim().Lives() != 10 {
		t.Errorf("game should run on defaults, got %d levels and %d lives", g.Sim().LevelCount(), g.Sim().Lives())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if row := screen.Row(hudRows); !strings.Contains(row, "using default config") {
		t.Errorf("row %d = %q, want a config warning", hudRows, row)
	}

	SetConfigPath("")
	g.Reset(testRuntime())
	if err := g.LoadError(); err != nil {
		t.Errorf("LoadError() after clearing the path = %v", err)
	}
}
