package schedule

// Interval is a half-open window [StartMin, StartMin+LengthMin) expressed in
// minutes from midnight of the slot's calendar date.
type Interval struct {
	StartMin  int
	LengthMin int
}

func NewInterval(startMin, lengthMin int) Interval {
	return Interval{StartMin: startMin, LengthMin: lengthMin}
}

func (iv Interval) EndMin() int {
	return iv.StartMin + iv.LengthMin
}

// Overlaps reports whether two half-open intervals share at least one minute.
// Back-to-back intervals (a ends where b starts) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.StartMin < other.EndMin() && other.StartMin < iv.EndMin()
}
