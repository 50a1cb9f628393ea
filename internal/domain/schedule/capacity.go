package schedule

// Usage is the capacity picture for one work center on one day. Two
// independent overflow signals are exposed: the raw minute sum against daily
// capacity, and the widest overlap cluster against concurrent capacity.
// Overlapping slots count additively into UsedMin.
type Usage struct {
	UsedMin         int
	CapacityMin     int
	OverflowRatio   float64
	PeakLanes       int
	MinutesExceeded bool
	LanesExceeded   bool
}

func ComputeUsage(capacityMin, concurrentCapacity int, spans []Span) Usage {
	used := 0
	for _, sp := range spans {
		used += sp.Interval.LengthMin
	}

	u := Usage{
		UsedMin:     used,
		CapacityMin: capacityMin,
		PeakLanes:   PeakLanes(spans),
	}
	if capacityMin > 0 {
		u.OverflowRatio = float64(used) / float64(capacityMin)
	}
	u.MinutesExceeded = used > capacityMin
	if concurrentCapacity < 1 {
		concurrentCapacity = 1
	}
	u.LanesExceeded = u.PeakLanes > concurrentCapacity
	return u
}
