package schedule

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var ErrEmptyProblemNote = errors.New("problem report requires a note")

// InvalidTransitionError rejects a lifecycle event that is not legal from
// the slot's current status. Transitions are never partially applied.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

// Start begins or resumes work. Resuming from paused keeps the original
// startedAt so the actual duration spans the whole run.
func (s *Slot) Start(now time.Time) error {
	if s.blocked || (s.status != StatusPlanned && s.status != StatusPaused) {
		return &InvalidTransitionError{From: s.status, To: StatusRunning}
	}
	if s.startedAt == nil {
		t := now
		s.startedAt = &t
	}
	s.status = StatusRunning
	return nil
}

func (s *Slot) Pause() error {
	if s.status != StatusRunning {
		return &InvalidTransitionError{From: s.status, To: StatusPaused}
	}
	s.status = StatusPaused
	return nil
}

// Stop finishes the slot and stamps the actual duration of record, measured
// wall-clock from startedAt and independent of the planned length.
func (s *Slot) Stop(now time.Time) error {
	if s.status != StatusRunning && s.status != StatusPaused {
		return &InvalidTransitionError{From: s.status, To: StatusDone}
	}
	t := now
	s.stoppedAt = &t
	if s.startedAt != nil {
		mins := int(math.Round(t.Sub(*s.startedAt).Minutes()))
		s.actualDuration = &mins
	}
	s.status = StatusDone
	return nil
}

// ReportMissingParts blocks the slot and records the note. Escalating the
// referenced order to a waiting state is the caller's concern; the slot
// transition never depends on it.
func (s *Slot) ReportMissingParts(note string) error {
	if s.status != StatusRunning {
		return &InvalidTransitionError{From: s.status, To: StatusBlocked}
	}
	if strings.TrimSpace(note) == "" {
		return ErrEmptyProblemNote
	}
	n := note
	s.missingPartsNote = &n
	s.status = StatusBlocked
	return nil
}

// ReportQuality records a quality note on a running slot without touching
// its status. The asymmetry with missing parts is intentional business
// behavior, not a gap.
func (s *Slot) ReportQuality(note string) error {
	if s.status != StatusRunning {
		return &InvalidTransitionError{From: s.status, To: StatusRunning}
	}
	if strings.TrimSpace(note) == "" {
		return ErrEmptyProblemNote
	}
	if s.qualityNote != nil && *s.qualityNote != "" {
		joined := *s.qualityNote + "; " + note
		s.qualityNote = &joined
	} else {
		n := note
		s.qualityNote = &n
	}
	return nil
}

// ElapsedMin is the read-side recomputation behind the "running for N
// minutes" display. It owns no timer: callers pass their own now.
func (s *Slot) ElapsedMin(now time.Time) int {
	return ElapsedMinutes(s.startedAt, s.stoppedAt, now)
}

// ElapsedMinutes measures whole minutes between start and either stop or
// now, clamped at zero. The read models share it so the rounding rules
// cannot drift from the entity.
func ElapsedMinutes(startedAt, stoppedAt *time.Time, now time.Time) int {
	if startedAt == nil {
		return 0
	}
	end := now
	if stoppedAt != nil {
		end = *stoppedAt
	}
	mins := int(math.Round(end.Sub(*startedAt).Minutes()))
	if mins < 0 {
		return 0
	}
	return mins
}
