package schedule

type Status string

const (
	StatusPlanned Status = "planned"
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
	StatusDone    Status = "done"
	// StatusBlocked means production on the slot stopped because parts are
	// missing. Distinct from the blocker kind: a blocker slot reserves time
	// without an order and never enters the run lifecycle at all.
	StatusBlocked Status = "blocked"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPlanned, StatusRunning, StatusPaused, StatusDone, StatusBlocked:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further lifecycle event is accepted.
func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusBlocked
}
