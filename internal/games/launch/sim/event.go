package sim

// Event is the macro state of a round.
type Event int

const (
	EventNone Event = iota
	EventDie
	EventWin
	EventWinTransition
)

func (e Event) String() string {
	switch e {
	case EventDie:
		return "die"
	case EventWin:
		return "win"
	case EventWinTransition:
		return "win_transition"
	}
	return "none"
}

// NoticeKind identifies a progression milestone.
type NoticeKind int

const (
	NoticeLevelStarted NoticeKind = iota
	NoticeAttemptFailed
	NoticeRoundReset
	NoticeLevelCleared
	NoticeCampaignComplete
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeLevelStarted:
		return "level_started"
	case NoticeAttemptFailed:
		return "attempt_failed"
	case NoticeRoundReset:
		return "round_reset"
	case NoticeLevelCleared:
		return "level_cleared"
	case NoticeCampaignComplete:
		return "campaign_complete"
	}
	return "unknown"
}

// Notice records a milestone for the platform (logging, storage,
// telemetry). Notices never feed back into the simulation.
type Notice struct {
	Kind      NoticeKind
	Level     int
	LevelID   string
	LevelName string
	Attempt   int
	Score     int
	Lives     int
	// Elapsed is the simulated time of the attempt, in seconds.
	Elapsed float64
}
