package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Slot is a scheduled interval of work on a work center: either real work
// referencing an order, or a blocker reserving time for non-production use.
type Slot struct {
	id               uuid.UUID
	workCenterID     uuid.UUID
	date             time.Time // calendar date, midnight UTC
	interval         Interval
	orderID          *uuid.UUID
	blocked          bool
	note             string
	status           Status
	startedAt        *time.Time
	stoppedAt        *time.Time
	actualDuration   *int // minutes, computed at stop
	missingPartsNote *string
	qualityNote      *string
	version          int64
}

// NewSlot builds a freshly planned slot after running the placement rules.
func NewSlot(
	rules PlacementRules,
	workCenterID uuid.UUID,
	date time.Time,
	iv Interval,
	orderID *uuid.UUID,
	blocked bool,
	note string,
) (*Slot, error) {
	if err := rules.ValidatePlacement(iv, orderID != nil, blocked); err != nil {
		return nil, err
	}

	return &Slot{
		id:           uuid.New(),
		workCenterID: workCenterID,
		date:         normalizeDate(date),
		interval:     iv,
		orderID:      orderID,
		blocked:      blocked,
		note:         note,
		status:       StatusPlanned,
		version:      1,
	}, nil
}

// ReconstructSlot rebuilds a slot from persistence without re-validating
// placement; historical slots stay loadable even if the rules change.
func ReconstructSlot(
	id, workCenterID uuid.UUID,
	date time.Time,
	iv Interval,
	orderID *uuid.UUID,
	blocked bool,
	note string,
	status Status,
	startedAt, stoppedAt *time.Time,
	actualDurationMin *int,
	missingPartsNote, qualityNote *string,
	version int64,
) *Slot {
	return &Slot{
		id:               id,
		workCenterID:     workCenterID,
		date:             normalizeDate(date),
		interval:         iv,
		orderID:          orderID,
		blocked:          blocked,
		note:             note,
		status:           status,
		startedAt:        startedAt,
		stoppedAt:        stoppedAt,
		actualDuration:   actualDurationMin,
		missingPartsNote: missingPartsNote,
		qualityNote:      qualityNote,
		version:          version,
	}
}

// Move re-places the slot on a new date and start offset. Length and work
// center are untouched; the same placement rules apply as on creation.
func (s *Slot) Move(rules PlacementRules, newDate time.Time, newStartMin int) error {
	candidate := Interval{StartMin: newStartMin, LengthMin: s.interval.LengthMin}
	if err := rules.ValidatePlacement(candidate, s.orderID != nil, s.blocked); err != nil {
		return err
	}
	s.date = normalizeDate(newDate)
	s.interval = candidate
	return nil
}

// CanDelete reports whether the slot may be removed. Slots that entered the
// run lifecycle keep their audit trail and must not be deleted.
func (s *Slot) CanDelete() bool {
	return s.status == StatusPlanned
}

// CanMove reports whether the slot may be re-placed. Work that entered the
// run lifecycle stays where it ran.
func (s *Slot) CanMove() bool {
	return s.status == StatusPlanned
}

func (s *Slot) ID() uuid.UUID             { return s.id }
func (s *Slot) WorkCenterID() uuid.UUID   { return s.workCenterID }
func (s *Slot) Date() time.Time           { return s.date }
func (s *Slot) Interval() Interval        { return s.interval }
func (s *Slot) OrderID() *uuid.UUID       { return s.orderID }
func (s *Slot) Blocked() bool             { return s.blocked }
func (s *Slot) Note() string              { return s.note }
func (s *Slot) Status() Status            { return s.status }
func (s *Slot) StartedAt() *time.Time     { return s.startedAt }
func (s *Slot) StoppedAt() *time.Time     { return s.stoppedAt }
func (s *Slot) ActualDurationMin() *int   { return s.actualDuration }
func (s *Slot) MissingPartsNote() *string { return s.missingPartsNote }
func (s *Slot) QualityNote() *string      { return s.qualityNote }
func (s *Slot) Version() int64            { return s.version }

func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
