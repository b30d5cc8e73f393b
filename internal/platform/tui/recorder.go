package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-launcher/internal/core"
	"github.com/vovakirdan/tile-launcher/internal/storage"
	"github.com/vovakirdan/tile-launcher/internal/telemetry"
)

// Services are the optional sinks a running game reports to.
// Any of them may be nil.
type Services struct {
	Store     *storage.Store
	Telemetry *telemetry.Writer
	Logger    *log.Logger
}

func (s Services) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.New(io.Discard)
}

// recorder forwards game events to logging, storage and telemetry.
// Storage and telemetry failures are logged and otherwise ignored.
type recorder struct {
	store     *storage.Store
	telemetry *telemetry.Writer
	logger    *log.Logger
	session   string
	gameID    string
	now       func() time.Time
}

func newRecorder(svc Services, session, gameID string) *recorder {
	return &recorder{
		store:     svc.Store,
		telemetry: svc.Telemetry,
		logger:    svc.logger().With("game", gameID),
		session:   session,
		gameID:    gameID,
		now:       time.Now,
	}
}

func (r *recorder) record(ev core.GameEvent) {
	kv := []any{"level", ev.Level, "id", ev.LevelID, "attempt", ev.Attempt, "score", ev.Score}

	switch ev.Kind {
	case core.EventLevelStarted:
		r.logger.Info("level started", append(kv, "name", ev.LevelName)...)
		return
	case core.EventAttemptFailed:
		r.logger.Debug("attempt failed", append(kv, "lives", ev.Lives)...)
	case core.EventRoundReset:
		r.logger.Info("out of lives, round reset", kv...)
	case core.EventLevelCleared:
		r.logger.Info("level cleared", append(kv, "elapsed", ev.Elapsed)...)
		if r.store != nil {
			_, err := r.store.SaveLevelClear(storage.LevelClear{
				GameID:   r.gameID,
				LevelID:  ev.LevelID,
				Attempts: ev.Attempt,
				Score:    ev.Score,
			})
			if err != nil {
				r.logger.Error("could not save level clear", "err", err)
			}
		}
	case core.EventCampaignComplete:
		r.logger.Info("campaign complete", "score", ev.Score)
		return
	default:
		return
	}

	err := r.telemetry.Write(telemetry.AttemptRecord{
		Session:    r.session,
		GameID:     r.gameID,
		Level:      ev.Level,
		LevelID:    ev.LevelID,
		Attempt:    ev.Attempt,
		Outcome:    string(ev.Kind),
		Score:      ev.Score,
		Lives:      ev.Lives,
		ElapsedSec: ev.Elapsed,
		RecordedAt: r.now().UTC(),
	})
	if err != nil {
		r.logger.Error("could not write telemetry", "err", err)
	}
}

// saveScore stores a finished or abandoned run.
func (r *recorder) saveScore(state core.GameState) {
	if r.store == nil || state.Score <= 0 {
		return
	}
	if _, err := r.store.SaveScore(r.gameID, state.Score, state.Level); err != nil {
		r.logger.Error("could not save score", "err", err)
		return
	}
	r.logger.Info("score saved", "score", state.Score, "level", state.Level)
}
