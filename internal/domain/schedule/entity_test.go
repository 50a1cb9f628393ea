//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"planboard/internal/domain/schedule"
	"planboard/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlot(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, schedule.StatusPlanned, actual.Status())
		assert.Equal(t, int64(1), actual.Version())
		assert.Nil(t, actual.StartedAt())
		assert.Nil(t, actual.ActualDurationMin())
		assert.True(t, actual.CanDelete())
	})

	t.Run("date is normalized to midnight UTC", func(t *testing.T) {
		actual, err := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
			b.Date = time.Date(2026, 3, 2, 14, 27, 9, 0, time.FixedZone("JST", 9*3600))
		}).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), actual.Date())
	})

	t.Run("placement rules are enforced on creation", func(t *testing.T) {
		actual, err := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
			b.StartMin = 483
		}).BuildDomain()

		require.Nil(t, actual)
		require.ErrorIs(t, err, schedule.ErrMisalignedGrid)
	})

	t.Run("blocker carries no order", func(t *testing.T) {
		actual, err := builder.NewSlotBuilder().AsBlocker().BuildDomain()
		require.NoError(t, err)

		assert.True(t, actual.Blocked())
		assert.Nil(t, actual.OrderID())
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		slot1, err1 := builder.NewSlotBuilder().BuildDomain()
		slot2, err2 := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err1)
		require.NoError(t, err2)

		assert.NotEqual(t, slot1.ID(), slot2.ID())
	})
}

func TestSlotMove(t *testing.T) {
	rules := schedule.DefaultPlacementRules()

	t.Run("moves date and start, keeps length", func(t *testing.T) {
		slot, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)

		newDate := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
		require.NoError(t, slot.Move(rules, newDate, 600))

		assert.Equal(t, newDate, slot.Date())
		assert.Equal(t, 600, slot.Interval().StartMin)
		assert.Equal(t, 60, slot.Interval().LengthMin)
	})

	t.Run("rejects a target violating placement rules", func(t *testing.T) {
		slot, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)
		before := slot.Interval()

		err = slot.Move(rules, slot.Date(), 1050)
		require.ErrorIs(t, err, schedule.ErrOutsideWorkingHours)

		assert.Equal(t, before, slot.Interval(), "failed move must not change the slot")
	})
}

func TestSlotCanDelete(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	slot, err := builder.NewSlotBuilder().BuildDomain()
	require.NoError(t, err)
	assert.True(t, slot.CanDelete())

	require.NoError(t, slot.Start(now))
	assert.False(t, slot.CanDelete(), "slot with lifecycle history must not be deletable")

	require.NoError(t, slot.Stop(now.Add(30*time.Minute)))
	assert.False(t, slot.CanDelete())
}

func TestSlotCanMove(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	slot, err := builder.NewSlotBuilder().BuildDomain()
	require.NoError(t, err)
	assert.True(t, slot.CanMove())

	require.NoError(t, slot.Start(now))
	assert.False(t, slot.CanMove(), "started work stays where it ran")

	require.NoError(t, slot.Stop(now.Add(30*time.Minute)))
	assert.False(t, slot.CanMove())
}
