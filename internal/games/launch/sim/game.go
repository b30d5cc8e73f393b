package sim

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Game is the round controller: it owns the ball, the tile grid and the
// particles, and drives attempts, deaths and level transitions.
type Game struct {
	base    Rules
	rules   Rules // base with the current level's properties applied
	levels  []LevelData
	rng     *RNG
	current *LevelData

	infiniteLives bool
	firstLevel    int

	grid      *Grid
	ball      *Ball
	particles []Particle
	aim       r2.Vec

	score      int
	startScore int
	lives      int
	attempts   int
	level      int

	event       Event
	eventTime   float64
	eventOrigin GridCoord
	attemptTime float64
	tick        uint64

	notices []Notice
}

// Option configures a Game.
type Option func(*Game)

// WithSeed seeds the particle RNG.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = NewRNG(seed)
	}
}

// WithInfiniteLives enables practice mode: deaths never cost a life.
func WithInfiniteLives() Option {
	return func(g *Game) {
		g.infiniteLives = true
	}
}

// WithStartLevel starts the game at the given 1-based level.
func WithStartLevel(level int) Option {
	return func(g *Game) {
		g.firstLevel = level
	}
}

// New creates a game over levels and starts the first round.
// With no levels the game is finished from the start.
func New(levels []LevelData, rules Rules, opts ...Option) *Game {
	g := &Game{
		base:       rules,
		rules:      rules,
		levels:     levels,
		rng:        NewRNG(1),
		firstLevel: 1,
		grid:       &Grid{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if len(levels) == 0 {
		g.event = EventWinTransition
		return g
	}
	g.level = min(max(g.firstLevel, 1), len(levels)) - 1
	g.NextRound()
	return g
}

// NextRound loads the next level and starts its first attempt.
func (g *Game) NextRound() {
	if g.level >= len(g.levels) {
		return
	}
	g.level++
	g.lives = g.defaultLives()
	g.attempts = 0

	g.current = &g.levels[g.level-1]
	g.rules = g.current.Properties.apply(g.base)
	g.grid = NewGrid(g.current.Tiles, g.rules.TileOffset)
	g.particles = g.particles[:0]
	g.startScore = g.score

	g.notify(NoticeLevelStarted)
	g.StartAttempt()
}

// StartAttempt places a fresh ball at the start point.
func (g *Game) StartAttempt() {
	g.attempts++
	g.event = EventNone
	g.eventTime = 0
	g.attemptTime = 0
	g.ball = NewBall(g.rules.StartPoint)
}

func (g *Game) defaultLives() int {
	if g.infiniteLives {
		return math.MaxInt
	}
	return g.base.DefaultLives
}

// MouseMove stores the aim point.
func (g *Game) MouseMove(p r2.Vec) {
	g.aim = p
}

// Click launches the waiting ball away from p. It does nothing while the
// ball is in flight or an event is running.
func (g *Game) Click(p r2.Vec) {
	if g.ball == nil || g.ball.Active || g.event != EventNone {
		return
	}
	vel := r2.Scale(g.rules.MouseMultiplier, r2.Sub(g.rules.StartPoint, p))
	g.ball.Launch(vel, g.rules.Gravity)
}

// LaunchVelocity returns the velocity a click at the aim point would give.
func (g *Game) LaunchVelocity() r2.Vec {
	return r2.Scale(g.rules.MouseMultiplier, r2.Sub(g.rules.StartPoint, g.aim))
}

// Update advances the round by dt seconds.
func (g *Game) Update(dt float64) {
	g.tick++

	if g.ball != nil && g.ball.Active {
		g.attemptTime += dt
		g.ball.Step(dt, g.grid, &g.rules, g.resolve)
		if g.ball.OutOfBounds(g.rules.Size, g.rules.DeathThreshold) {
			g.event = EventDie
		}
	}

	if g.event != EventNone {
		g.eventTime += dt
	}

	if g.event == EventDie {
		g.die()
	}
	if g.event == EventWin {
		g.animateWin()
	}
	if g.event == EventWinTransition && g.level < len(g.levels) && g.eventTime > g.base.WinTransitionTime {
		g.NextRound()
	}

	alive := g.particles[:0]
	for i := range g.particles {
		if g.particles[i].Update(dt) {
			alive = append(alive, g.particles[i])
		}
	}
	g.particles = alive
}

func (g *Game) die() {
	g.ball = nil
	if !g.infiniteLives {
		g.lives--
	}
	g.notify(NoticeAttemptFailed)

	if g.lives <= 0 {
		g.score = g.startScore
		g.notify(NoticeRoundReset)
		g.level--
		g.NextRound()
		return
	}
	g.StartAttempt()
}

func (g *Game) animateWin() {
	if g.ball != nil {
		g.ball.Active = false
	}

	completed := g.eventTime > g.base.WinAnimationTime || g.grid.Empty()
	reach := g.eventTime * g.base.WinAnimationSpeed
	g.grid.Each(func(t *Tile) {
		if completed || float64(t.Location.Manhattan(g.eventOrigin)) < reach {
			g.destroyTile(t)
		}
	})

	if !completed {
		return
	}
	g.score += g.base.WinScore
	g.startScore = g.score
	g.event = EventWinTransition
	g.eventTime = 0
	g.notify(NoticeLevelCleared)
	if g.level >= len(g.levels) {
		g.notify(NoticeCampaignComplete)
	}
}

// resolve applies the outcome of a hit on t.
func (g *Game) resolve(t *Tile, out Outcome) {
	g.score += out.Score
	if !g.infiniteLives {
		g.lives += out.Lives
	}
	if out.Event != EventNone {
		g.event = out.Event
		g.eventOrigin = out.Origin
	}
	if out.Burst > 0 {
		g.spawnParticles(t, out.Burst)
	}
	if out.Blast > 0 {
		g.grid.Each(func(other *Tile) {
			if other != t && other.Location.Distance(t.Location) < out.Blast {
				g.destroyTile(other)
			}
		})
	}
	if out.Destroy {
		g.destroyTile(t)
	}
}

// destroyTile removes t from the grid. Removing a stale tile is a no-op.
func (g *Game) destroyTile(t *Tile) {
	if !g.grid.Remove(t) {
		return
	}
	if g.event == EventNone {
		g.score += g.base.TileScore
	}
	m := 1.0
	if g.current != nil && g.current.HasFlag(g.base.Particles.BoostFlag) {
		m = 10
	}
	g.spawnParticles(t, m)
}

func (g *Game) spawnParticles(t *Tile, m float64) {
	pr := g.base.Particles
	count := int(math.Floor(g.rng.Range(pr.MinCount, pr.MaxCount) * m))
	color := t.Color()
	for range count {
		lifetime := g.rng.Range(pr.MinTime, pr.MaxTime)
		g.particles = append(g.particles, Particle{
			Body: Body{Pos: r2.Vec{
				X: g.rng.Range(t.Pos.X, t.Pos.X+TileSize),
				Y: g.rng.Range(t.Pos.Y, t.Pos.Y+TileSize),
			}},
			Color:    color,
			Size:     g.rng.Range(pr.MinSize, pr.MaxSize),
			Lifetime: lifetime,
			TimeLeft: lifetime,
		})
	}
}

func (g *Game) notify(kind NoticeKind) {
	n := Notice{
		Kind:    kind,
		Level:   g.level,
		Attempt: g.attempts,
		Score:   g.score,
		Lives:   g.lives,
		Elapsed: g.attemptTime,
	}
	if g.current != nil {
		n.LevelID = g.current.ID
		n.LevelName = g.current.Name
	}
	g.notices = append(g.notices, n)
}

// DrainNotices returns and clears the pending notices.
func (g *Game) DrainNotices() []Notice {
	out := g.notices
	g.notices = nil
	return out
}

// Tiles returns the live tiles in row-major order.
func (g *Game) Tiles() []*Tile { return g.grid.Tiles() }

// Grid returns the tile grid.
func (g *Game) Grid() *Grid { return g.grid }

// Ball returns the ball, or nil between attempts.
func (g *Game) Ball() *Ball { return g.ball }

// Particles returns the live particles.
func (g *Game) Particles() []Particle { return g.particles }

func (g *Game) Score() int      { return g.score }
func (g *Game) StartScore() int { return g.startScore }
func (g *Game) Lives() int      { return g.lives }
func (g *Game) Attempts() int   { return g.attempts }
func (g *Game) Level() int      { return g.level }
func (g *Game) LevelCount() int { return len(g.levels) }
func (g *Game) Event() Event    { return g.event }

// EventTime returns the seconds spent in the current event.
func (g *Game) EventTime() float64 { return g.eventTime }

// LevelName returns the name of the current level.
func (g *Game) LevelName() string {
	if g.current == nil {
		return ""
	}
	return g.current.Name
}

// LevelID returns the id of the current level.
func (g *Game) LevelID() string {
	if g.current == nil {
		return ""
	}
	return g.current.ID
}

func (g *Game) AimPoint() r2.Vec   { return g.aim }
func (g *Game) StartPoint() r2.Vec { return g.rules.StartPoint }
func (g *Game) Size() r2.Vec       { return g.rules.Size }

// Rules returns the rules in effect for the current level.
func (g *Game) Rules() Rules { return g.rules }

// Appearance returns the current level's fills.
func (g *Game) Appearance() Appearance {
	if g.current == nil {
		return Appearance{}
	}
	return g.current.Appearance
}

// InfiniteLives reports practice mode.
func (g *Game) InfiniteLives() bool { return g.infiniteLives }

// Finished reports that the last level has been cleared.
func (g *Game) Finished() bool {
	return g.event == EventWinTransition && g.level >= len(g.levels)
}
