package sim

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

// Tiles sit at (200 + 48*x, 24 + 48*y) with the default offset.
func tileCenter(x, y int) r2.Vec {
	return r2.Vec{X: 224 + 48*float64(x), Y: 48 + 48*float64(y)}
}

// placeBall puts an active, motionless ball at p.
func placeBall(g *Game, p r2.Vec) {
	g.ball = &Ball{Body: Body{Pos: p}, Active: true}
}

func hasNotice(notices []Notice, kind NoticeKind) bool {
	for _, n := range notices {
		if n.Kind == kind {
			return true
		}
	}
	return false
}

func TestNewStartsFirstRound(t *testing.T) {
	g := New([]LevelData{{ID: "one", Name: "One", Tiles: [][]*TileSpec{{spec(TileNormal, 0)}}}}, DefaultRules())

	if g.Level() != 1 || g.Attempts() != 1 || g.Lives() != 10 {
		t.Errorf("level=%d attempts=%d lives=%d, want 1, 1, 10", g.Level(), g.Attempts(), g.Lives())
	}
	if g.Ball() == nil || g.Ball().Active {
		t.Fatal("expected an inactive ball")
	}
	if g.Ball().Pos != (r2.Vec{X: 96, Y: 500}) {
		t.Errorf("ball at %v, want start point", g.Ball().Pos)
	}
	if g.Event() != EventNone || g.LevelName() != "One" {
		t.Errorf("event=%v name=%q", g.Event(), g.LevelName())
	}
	if !hasNotice(g.DrainNotices(), NoticeLevelStarted) {
		t.Error("expected a level started notice")
	}
}

func TestNoLevels(t *testing.T) {
	g := New(nil, DefaultRules())
	if !g.Finished() {
		t.Error("a game without levels is finished")
	}
	g.Click(r2.Vec{})
	g.Update(1.0 / 60)
	if g.Ball() != nil {
		t.Error("no ball expected")
	}
}

func TestClickLaunchesAwayFromPointer(t *testing.T) {
	g := New([]LevelData{{Tiles: [][]*TileSpec{{spec(TileNormal, 0)}}}}, DefaultRules())
	g.MouseMove(r2.Vec{X: 46, Y: 550})
	if !nearVec(g.LaunchVelocity(), r2.Vec{X: 400, Y: -400}) {
		t.Errorf("LaunchVelocity = %v", g.LaunchVelocity())
	}

	g.Click(r2.Vec{X: 46, Y: 550})

	b := g.Ball()
	if !b.Active {
		t.Fatal("ball should be active")
	}
	if b.Vel != (r2.Vec{X: 400, Y: -400}) || b.Acc != (r2.Vec{X: 0, Y: 300}) {
		t.Errorf("vel=%v acc=%v", b.Vel, b.Acc)
	}

	g.Click(r2.Vec{X: 0, Y: 0})
	if b.Vel != (r2.Vec{X: 400, Y: -400}) {
		t.Error("clicking an active ball must not relaunch it")
	}
}

func TestClickIgnoredDuringEvent(t *testing.T) {
	for _, ev := range []Event{EventDie, EventWin, EventWinTransition} {
		g := New([]LevelData{{Tiles: [][]*TileSpec{{spec(TileNormal, 0)}}}}, DefaultRules())
		g.event = ev
		g.Click(r2.Vec{})
		if g.Ball().Active {
			t.Errorf("event %v: click launched the ball", ev)
		}
	}
}

func TestPointsTile(t *testing.T) {
	g := New([]LevelData{{Tiles: [][]*TileSpec{{spec(TilePoints, 50)}}}}, DefaultRules())
	placeBall(g, tileCenter(0, 0))

	g.Update(0.001)

	if g.Score() != 60 {
		t.Errorf("Score = %d, want 50 + tile score", g.Score())
	}
	if !g.Grid().Empty() {
		t.Error("points tile should be removed")
	}
}

func TestLaunchedBallBreaksPointsTile(t *testing.T) {
	// one points tile straight above the start point
	offset := r2.Vec{X: 72, Y: 300}
	g := New([]LevelData{{
		Tiles:      [][]*TileSpec{{spec(TilePoints, 50)}},
		Properties: Properties{TileOffset: &offset},
	}}, DefaultRules())

	g.MouseMove(r2.Vec{X: 96, Y: 550})
	g.Click(r2.Vec{X: 96, Y: 550})
	if !g.Ball().Active || g.Ball().Vel != (r2.Vec{Y: -400}) {
		t.Fatalf("ball = %+v, want launched straight up", g.Ball())
	}

	for i := 0; i < 60 && !g.Grid().Empty(); i++ {
		g.Update(1.0 / 60)
	}

	if !g.Grid().Empty() {
		t.Fatal("points tile should be removed")
	}
	if g.Score() != 50+DefaultRules().TileScore {
		t.Errorf("Score = %d, want 50 + tile score", g.Score())
	}
	if g.Event() != EventNone {
		t.Errorf("event = %v, want none", g.Event())
	}
}

func TestHardTileSurvivesUntilLastHit(t *testing.T) {
	const hits = 3
	g := New([]LevelData{{Tiles: [][]*TileSpec{{spec(TileHard, hits), nil, spec(TileNormal, 0)}}}}, DefaultRules())
	hard := g.Grid().At(GridCoord{})

	for i := 1; i < hits; i++ {
		placeBall(g, tileCenter(0, 0))
		g.Update(0.001)
		if g.Grid().At(GridCoord{}) != hard {
			t.Fatalf("hard tile destroyed after %d hits, want %d", i, hits)
		}
		if hard.Value != hits-i {
			t.Errorf("after %d hits Value = %d, want %d", i, hard.Value, hits-i)
		}
	}
	if g.Score() != 0 {
		t.Errorf("Score = %d, damaging a hard tile scores nothing", g.Score())
	}

	placeBall(g, tileCenter(0, 0))
	g.Update(0.001)
	if g.Grid().At(GridCoord{}) != nil {
		t.Fatal("hard tile should break on the last hit")
	}
	if g.Score() != DefaultRules().TileScore || g.Grid().Count() != 1 {
		t.Errorf("score=%d tiles=%d, want one tile score and the normal tile left", g.Score(), g.Grid().Count())
	}

	// the broken tile is never hit again
	placeBall(g, tileCenter(0, 0))
	g.Update(0.001)
	if hard.Value != 0 || g.Score() != DefaultRules().TileScore {
		t.Errorf("Value=%d score=%d after the tile was gone", hard.Value, g.Score())
	}
}

func TestLifeTile(t *testing.T) {
	g := New([]LevelData{{Tiles: [][]*TileSpec{{spec(TileLife, 2), spec(TileNormal, 0), spec(TileNormal, 0)}}}}, DefaultRules())
	placeBall(g, tileCenter(0, 0))

	g.Update(0.001)

	if g.Lives() != 12 {
		t.Errorf("Lives = %d, want 12", g.Lives())
	}
}

func TestKillTileCostsALife(t *testing.T) {
	g := New([]LevelData{{Tiles: [][]*TileSpec{{spec(TileKill, 0)}}}}, DefaultRules())
	g.DrainNotices()
	placeBall(g, tileCenter(0, 0))

	g.Update(0.001)

	if g.Lives() != 9 || g.Attempts() != 2 {
		t.Errorf("lives=%d attempts=%d, want 9, 2", g.Lives(), g.Attempts())
	}
	if g.Event() != EventNone {
		t.Errorf("event = %v, want none after a new attempt", g.Event())
	}
	if g.Grid().Count() != 1 {
		t.Error("kill tile must survive")
	}
	if g.Ball() == nil || g.Ball().Active {
		t.Error("expected a fresh inactive ball")
	}
	if !hasNotice(g.DrainNotices(), NoticeAttemptFailed) {
		t.Error("expected an attempt failed notice")
	}
}

func TestOutOfBoundsDies(t *testing.T) {
	g := New([]LevelData{{Tiles: [][]*TileSpec{{spec(TileNormal, 0)}}}}, DefaultRules())
	placeBall(g, r2.Vec{X: 800 + 51, Y: 100})

	g.Update(0.001)

	if g.Lives() != 9 {
		t.Errorf("Lives = %d, want 9", g.Lives())
	}
}

func TestLivesExhaustedResetsRound(t *testing.T) {
	g := New([]LevelData{{Tiles: [][]*TileSpec{{spec(TileNormal, 0), nil, nil, spec(TileKill, 0)}}}}, DefaultRules())

	placeBall(g, tileCenter(0, 0))
	g.Update(0.001)
	if g.Score() != 10 || g.Grid().Count() != 1 {
		t.Fatalf("score=%d tiles=%d, want 10, 1", g.Score(), g.Grid().Count())
	}
	g.DrainNotices()

	for i := 0; i < 10; i++ {
		placeBall(g, tileCenter(3, 0))
		g.Update(0.001)
	}

	if g.Score() != 0 {
		t.Errorf("Score = %d, want the round start score", g.Score())
	}
	if g.Level() != 1 || g.Attempts() != 1 || g.Lives() != 10 {
		t.Errorf("level=%d attempts=%d lives=%d, want 1, 1, 10", g.Level(), g.Attempts(), g.Lives())
	}
	if g.Grid().Count() != 2 {
		t.Errorf("tiles = %d, want the level reloaded", g.Grid().Count())
	}
	if !hasNotice(g.DrainNotices(), NoticeRoundReset) {
		t.Error("expected a round reset notice")
	}
}

func TestPracticeModeKeepsLives(t *testing.T) {
	g := New([]LevelData{{Tiles: [][]*TileSpec{{spec(TileKill, 0)}}}}, DefaultRules(), WithInfiniteLives())
	for i := 0; i < 20; i++ {
		placeBall(g, tileCenter(0, 0))
		g.Update(0.001)
	}
	if g.Lives() != math.MaxInt || !g.InfiniteLives() {
		t.Errorf("Lives = %d", g.Lives())
	}
	if g.Attempts() != 21 {
		t.Errorf("Attempts = %d, want 21", g.Attempts())
	}
}

func TestWinAdvancesToNextLevel(t *testing.T) {
	levels := []LevelData{
		{ID: "a", Tiles: [][]*TileSpec{{spec(TileGoal, 0), spec(TileNormal, 0)}}},
		{ID: "b", Tiles: [][]*TileSpec{{spec(TileNormal, 0)}}},
	}
	g := New(levels, DefaultRules())
	g.DrainNotices()
	placeBall(g, tileCenter(0, 0))

	g.Update(0.1)
	if g.Event() != EventWin {
		t.Fatalf("event = %v, want win", g.Event())
	}
	if g.Ball().Active {
		t.Error("ball should stop during the win animation")
	}
	if g.Score() != 0 {
		t.Errorf("Score = %d, tiles destroyed during an event score nothing", g.Score())
	}

	g.Update(0.1)
	if g.Event() != EventWinTransition {
		t.Fatalf("event = %v, want win transition", g.Event())
	}
	if g.Score() != 1000 || g.StartScore() != 1000 {
		t.Errorf("score=%d startScore=%d, want 1000", g.Score(), g.StartScore())
	}

	elapsed := 0.0
	for i := 0; i < 100 && g.Level() == 1; i++ {
		g.Update(0.1)
		elapsed += 0.1
	}
	if g.Level() != 2 {
		t.Fatal("expected level 2")
	}
	if elapsed < 1.5 {
		t.Errorf("advanced after %.1fs, want at least 1.5s", elapsed)
	}
	if g.StartScore() != 1000 || g.Attempts() != 1 || g.Event() != EventNone || g.LevelID() != "b" {
		t.Errorf("startScore=%d attempts=%d event=%v id=%s", g.StartScore(), g.Attempts(), g.Event(), g.LevelID())
	}

	notices := g.DrainNotices()
	if !hasNotice(notices, NoticeLevelCleared) || hasNotice(notices, NoticeCampaignComplete) {
		t.Errorf("unexpected notices %+v", notices)
	}
}

func TestWinAnimationTimesOut(t *testing.T) {
	row := []*TileSpec{spec(TileGoal, 0)}
	for i := 0; i < 70; i++ {
		row = append(row, nil)
	}
	row = append(row, spec(TileSolid, 0))
	g := New([]LevelData{{Tiles: [][]*TileSpec{row}}, {Tiles: [][]*TileSpec{{spec(TileNormal, 0)}}}}, DefaultRules())
	placeBall(g, tileCenter(0, 0))

	g.Update(0.5)
	for i := 0; i < 7; i++ {
		g.Update(0.5)
		if g.Event() != EventWin {
			t.Fatalf("step %d: event = %v, the far tile is out of reach until the time limit", i, g.Event())
		}
	}
	g.Update(0.5)
	if g.Event() != EventWinTransition || !g.Grid().Empty() {
		t.Errorf("event=%v tiles=%d, want every tile destroyed", g.Event(), g.Grid().Count())
	}
}

func TestCampaignFinishes(t *testing.T) {
	g := New([]LevelData{{Tiles: [][]*TileSpec{{spec(TileGoal, 0)}}}}, DefaultRules())
	g.DrainNotices()
	placeBall(g, tileCenter(0, 0))

	g.Update(0.1)
	if !g.Finished() {
		t.Fatalf("event = %v, want finished", g.Event())
	}
	for i := 0; i < 100; i++ {
		g.Update(0.1)
	}
	if !g.Finished() || g.Level() != 1 {
		t.Error("the last level should stay finished")
	}
	if !hasNotice(g.DrainNotices(), NoticeCampaignComplete) {
		t.Error("expected a campaign complete notice")
	}
}

func TestExplodingTileDestroysNeighbours(t *testing.T) {
	g := New([]LevelData{{Tiles: [][]*TileSpec{
		{spec(TileExploding, 2), spec(TileNormal, 0), spec(TileNormal, 0), spec(TileNormal, 0)},
		{spec(TileNormal, 0)},
	}}}, DefaultRules())

	// touches the exploding tile and its right neighbour
	placeBall(g, r2.Vec{X: 246, Y: 48})
	g.Update(0.0001)

	// self, (1,0) and (0,1); the neighbour is never hit a second time
	if g.Score() != 30 {
		t.Errorf("Score = %d, want 30", g.Score())
	}
	if g.Grid().Count() != 2 {
		t.Errorf("tiles = %d, want 2", g.Grid().Count())
	}
	for _, c := range []GridCoord{{X: 2}, {X: 3}} {
		if g.Grid().At(c) == nil {
			t.Errorf("tile %v should survive", c)
		}
	}
}

func TestDestroyTileOnce(t *testing.T) {
	g := New([]LevelData{{Tiles: [][]*TileSpec{{spec(TileNormal, 0), spec(TileNormal, 0)}}}}, DefaultRules())
	tile := g.Grid().At(GridCoord{})

	g.destroyTile(tile)
	g.destroyTile(tile)

	if g.Score() != 10 {
		t.Errorf("Score = %d, want 10", g.Score())
	}
}

func TestParticlesExpire(t *testing.T) {
	g := New([]LevelData{{Tiles: [][]*TileSpec{{spec(TileNormal, 0), spec(TileNormal, 0)}}}}, DefaultRules())
	g.destroyTile(g.Grid().At(GridCoord{}))

	n := len(g.Particles())
	if n < 16 || n >= 32 {
		t.Fatalf("spawned %d particles, want [16, 32)", n)
	}
	for _, p := range g.Particles() {
		if p.Vel != (r2.Vec{}) || p.Lifetime < 0.5 || p.Lifetime >= 1.5 {
			t.Errorf("unexpected particle %+v", p)
		}
	}

	g.Update(2)
	if len(g.Particles()) != 0 {
		t.Errorf("%d particles left, want 0", len(g.Particles()))
	}
}

func TestBoostFlagMultipliesParticles(t *testing.T) {
	g := New([]LevelData{{
		Flags: []string{"10xParticles"},
		Tiles: [][]*TileSpec{{spec(TileNormal, 0), spec(TileNormal, 0)}},
	}}, DefaultRules())
	g.destroyTile(g.Grid().At(GridCoord{}))

	if n := len(g.Particles()); n < 160 {
		t.Errorf("spawned %d particles, want at least 160", n)
	}
}

func TestLevelPropertiesFallBack(t *testing.T) {
	size := r2.Vec{X: 400, Y: 300}
	gravity := r2.Vec{X: 10, Y: 0}
	levels := []LevelData{
		{Tiles: [][]*TileSpec{{spec(TileNormal, 0)}}, Properties: Properties{Size: &size, Gravity: &gravity}},
		{Tiles: [][]*TileSpec{{spec(TileNormal, 0)}}},
	}
	g := New(levels, DefaultRules())

	if g.Size() != size || g.Rules().Gravity != gravity {
		t.Errorf("size=%v gravity=%v", g.Size(), g.Rules().Gravity)
	}
	if g.StartPoint() != DefaultRules().StartPoint {
		t.Errorf("StartPoint = %v, want default", g.StartPoint())
	}

	g.NextRound()
	if g.Size() != DefaultRules().Size || g.Rules().Gravity != DefaultRules().Gravity {
		t.Errorf("unset properties must fall back to defaults, got size=%v gravity=%v", g.Size(), g.Rules().Gravity)
	}
}

func TestStartLevelOption(t *testing.T) {
	levels := []LevelData{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	tests := []struct {
		start int
		want  string
	}{
		{2, "b"},
		{0, "a"},
		{9, "c"},
	}
	for _, tt := range tests {
		g := New(levels, DefaultRules(), WithStartLevel(tt.start))
		if g.LevelID() != tt.want {
			t.Errorf("WithStartLevel(%d): level %q, want %q", tt.start, g.LevelID(), tt.want)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	levels := []LevelData{{
		Tiles: [][]*TileSpec{
			{nil, spec(TileNormal, 1), spec(TileHard, 2), spec(TileNormal, 3)},
			{spec(TileSpring, 1), spec(TileExploding, 2), spec(TilePoints, 20), spec(TileNormal, 4)},
			{spec(TileNormal, 5), spec(TileSolid, 0), spec(TileGoal, 0)},
		},
	}}

	run := func(seed int64) uint64 {
		g := New(levels, DefaultRules(), WithSeed(seed))
		for i := 0; i < 600; i++ {
			if i%120 == 0 {
				g.Click(r2.Vec{X: 40, Y: 560})
			}
			g.Update(1.0 / 60)
		}
		snap := g.Snapshot()
		return snap.Hash()
	}

	if run(7) != run(7) {
		t.Error("same seed produced different states")
	}
}
