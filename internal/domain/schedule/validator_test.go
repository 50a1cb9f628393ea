//go:build unit

package schedule_test

import (
	"testing"

	"planboard/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePlacement(t *testing.T) {
	rules := schedule.DefaultPlacementRules()

	cases := []struct {
		name     string
		startMin int
		length   int
		hasOrder bool
		blocked  bool
		errIs    error
	}{
		{name: "aligned slot inside working day", startMin: 480, length: 60, hasOrder: true},
		{name: "start on workday boundary", startMin: 420, length: 60, hasOrder: true},
		{name: "end on workday boundary", startMin: 1020, length: 60, hasOrder: true},
		{name: "start off grid", startMin: 483, length: 60, hasOrder: true, errIs: schedule.ErrMisalignedGrid},
		{name: "length off grid", startMin: 480, length: 61, hasOrder: true, errIs: schedule.ErrMisalignedGrid},
		{name: "starts before working day", startMin: 415, length: 60, hasOrder: true, errIs: schedule.ErrOutsideWorkingHours},
		{name: "ends after working day", startMin: 1050, length: 60, hasOrder: true, errIs: schedule.ErrOutsideWorkingHours},
		{name: "order and blocker at once", startMin: 480, length: 60, hasOrder: true, blocked: true, errIs: schedule.ErrConflictingKind},
		{name: "neither order nor blocker", startMin: 480, length: 60, errIs: schedule.ErrConflictingKind},
		{name: "zero length", startMin: 480, length: 0, hasOrder: true, errIs: schedule.ErrNonPositiveLength},
		{name: "blocker without order passes", startMin: 600, length: 120, blocked: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			iv := schedule.NewInterval(tc.startMin, tc.length)
			err := rules.ValidatePlacement(iv, tc.hasOrder, tc.blocked)

			if tc.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.errIs)
			}
		})
	}

	t.Run("check order is fixed when several rules are violated", func(t *testing.T) {
		// off grid, outside hours, and kind-conflicting at once
		iv := schedule.NewInterval(3, 61)
		err := rules.ValidatePlacement(iv, false, false)
		require.ErrorIs(t, err, schedule.ErrMisalignedGrid)

		// aligned but outside hours and kind-conflicting
		iv = schedule.NewInterval(0, 60)
		err = rules.ValidatePlacement(iv, false, false)
		require.ErrorIs(t, err, schedule.ErrOutsideWorkingHours)

		// aligned, inside hours, kind conflict wins over zero length
		iv = schedule.NewInterval(480, 0)
		err = rules.ValidatePlacement(iv, true, true)
		require.ErrorIs(t, err, schedule.ErrConflictingKind)
	})
}

func TestIntervalOverlaps(t *testing.T) {
	base := schedule.NewInterval(480, 60)

	cases := []struct {
		name     string
		other    schedule.Interval
		overlaps bool
	}{
		{name: "identical", other: schedule.NewInterval(480, 60), overlaps: true},
		{name: "partial from the right", other: schedule.NewInterval(500, 60), overlaps: true},
		{name: "partial from the left", other: schedule.NewInterval(440, 60), overlaps: true},
		{name: "fully nested", other: schedule.NewInterval(490, 20), overlaps: true},
		{name: "back to back after", other: schedule.NewInterval(540, 60), overlaps: false},
		{name: "back to back before", other: schedule.NewInterval(420, 60), overlaps: false},
		{name: "disjoint", other: schedule.NewInterval(600, 60), overlaps: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, base.Overlaps(tc.other))
			assert.Equal(t, tc.overlaps, tc.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}
