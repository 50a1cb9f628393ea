package schedule

import "errors"

var (
	ErrMisalignedGrid      = errors.New("start and length must align to the scheduling grid")
	ErrOutsideWorkingHours = errors.New("slot must lie within the working day")
	ErrConflictingKind     = errors.New("slot must reference an order or be a blocker, never both or neither")
	ErrNonPositiveLength   = errors.New("slot length must be positive")
)

// PlacementRules are the hard constraints every committed slot satisfies.
// Overlap is deliberately not among them: overlapping slots are legal and
// modeled through lanes and concurrent capacity.
type PlacementRules struct {
	WorkdayStartMin int
	WorkdayEndMin   int
	GridMin         int
}

// DefaultPlacementRules is the 07:00-18:00 working day on a 5 minute grid.
func DefaultPlacementRules() PlacementRules {
	return PlacementRules{
		WorkdayStartMin: 7 * 60,
		WorkdayEndMin:   18 * 60,
		GridMin:         5,
	}
}

// ValidatePlacement checks a candidate placement. Checks run in a fixed
// order so a candidate violating several rules always reports the same kind.
func (r PlacementRules) ValidatePlacement(iv Interval, hasOrder, blocked bool) error {
	if iv.StartMin%r.GridMin != 0 || iv.LengthMin%r.GridMin != 0 {
		return ErrMisalignedGrid
	}
	if iv.StartMin < r.WorkdayStartMin || iv.EndMin() > r.WorkdayEndMin {
		return ErrOutsideWorkingHours
	}
	if hasOrder == blocked {
		return ErrConflictingKind
	}
	if iv.LengthMin <= 0 {
		return ErrNonPositiveLength
	}
	return nil
}
