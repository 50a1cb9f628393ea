package schedule

import (
	"sort"

	"github.com/google/uuid"
)

// Span is the minimal shape the layout engine needs: an identity plus an
// interval. Both entities and read models project into it.
type Span struct {
	ID       uuid.UUID
	Interval Interval
}

// LaneSpan carries the display lane assigned to a span and the lane count of
// its overlap cluster.
type LaneSpan struct {
	Span
	Lane       int
	TotalLanes int
}

// AssignLanes packs spans into non-overlapping lanes, cluster by cluster.
//
// Spans are walked in start order; a cluster grows while the next span
// starts at or before the running maximum end, and closes otherwise. The
// boundary is inclusive so a span reusing a lane the moment it frees up
// still reports the cluster's full width.
// Within a cluster each span takes the lowest lane whose previous occupant
// ended at or before the span's start, opening a new lane only when none can
// be reused. Ties at identical starts keep input order, so repeated runs
// over the same input produce identical assignments.
func AssignLanes(spans []Span) []LaneSpan {
	if len(spans) == 0 {
		return []LaneSpan{}
	}

	ordered := make([]Span, len(spans))
	copy(ordered, spans)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Interval.StartMin < ordered[j].Interval.StartMin
	})

	out := make([]LaneSpan, 0, len(ordered))
	clusterStart := 0
	maxEnd := ordered[0].Interval.EndMin()

	for i := 1; i <= len(ordered); i++ {
		if i < len(ordered) && ordered[i].Interval.StartMin <= maxEnd {
			if end := ordered[i].Interval.EndMin(); end > maxEnd {
				maxEnd = end
			}
			continue
		}
		out = append(out, packCluster(ordered[clusterStart:i])...)
		if i < len(ordered) {
			clusterStart = i
			maxEnd = ordered[i].Interval.EndMin()
		}
	}

	return out
}

// packCluster greedily assigns lanes within one overlap cluster and stamps
// every member with the cluster's lane count.
func packCluster(cluster []Span) []LaneSpan {
	laneEnds := make([]int, 0, len(cluster))
	packed := make([]LaneSpan, len(cluster))

	for i, sp := range cluster {
		lane := -1
		for l, end := range laneEnds {
			if end <= sp.Interval.StartMin {
				lane = l
				break
			}
		}
		if lane == -1 {
			lane = len(laneEnds)
			laneEnds = append(laneEnds, 0)
		}
		laneEnds[lane] = sp.Interval.EndMin()
		packed[i] = LaneSpan{Span: sp, Lane: lane}
	}

	for i := range packed {
		packed[i].TotalLanes = len(laneEnds)
	}
	return packed
}

// PeakLanes is the widest overlap cluster in the set, the lane-based signal
// the capacity accountant compares against concurrent capacity.
func PeakLanes(spans []Span) int {
	peak := 0
	for _, ls := range AssignLanes(spans) {
		if ls.TotalLanes > peak {
			peak = ls.TotalLanes
		}
	}
	return peak
}
