//go:build unit

package workcenter_test

import (
	"testing"

	"planboard/internal/domain/workcenter"
	"planboard/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkCenter(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewWorkCenterBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "CNC Mill 3", actual.Name())
		assert.Equal(t, workcenter.DepartmentMachining, actual.Department())
		assert.True(t, actual.IsActive())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.WorkCenterBuilder)
			errIs  error
		}{
			{
				name:   "empty name",
				mutate: func(b *builder.WorkCenterBuilder) { b.Name = "   " },
				errIs:  workcenter.ErrEmptyName,
			},
			{
				name:   "unknown department",
				mutate: func(b *builder.WorkCenterBuilder) { b.Department = "painting" },
				errIs:  workcenter.ErrInvalidDepartment,
			},
			{
				name:   "zero daily capacity",
				mutate: func(b *builder.WorkCenterBuilder) { b.DailyCapacityMin = 0 },
				errIs:  workcenter.ErrInvalidCapacity,
			},
			{
				name:   "negative concurrent capacity",
				mutate: func(b *builder.WorkCenterBuilder) { b.ConcurrentCapacity = -1 },
				errIs:  workcenter.ErrInvalidConcurrency,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				actual, err := builder.NewWorkCenterBuilder().With(tc.mutate).BuildDomain()
				require.Nil(t, actual)
				require.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestNewDepartment(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		d, err := workcenter.NewDepartment("  Machining ")
		require.NoError(t, err)
		assert.Equal(t, workcenter.DepartmentMachining, d)
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := workcenter.NewDepartment("warehouse")
		require.ErrorIs(t, err, workcenter.ErrInvalidDepartment)
	})
}

func TestWorkCenterMutations(t *testing.T) {
	newCenter := func(t *testing.T) *workcenter.WorkCenter {
		t.Helper()
		wc, err := builder.NewWorkCenterBuilder().BuildDomain()
		require.NoError(t, err)
		return wc
	}

	t.Run("rename trims and validates", func(t *testing.T) {
		wc := newCenter(t)

		require.NoError(t, wc.Rename("  Lathe 1  "))
		assert.Equal(t, "Lathe 1", wc.Name())

		require.ErrorIs(t, wc.Rename(""), workcenter.ErrEmptyName)
		assert.Equal(t, "Lathe 1", wc.Name())
	})

	t.Run("change capacity validates both values", func(t *testing.T) {
		wc := newCenter(t)

		require.NoError(t, wc.ChangeCapacity(480, 3))
		assert.Equal(t, 480, wc.DailyCapacityMin())
		assert.Equal(t, 3, wc.ConcurrentCapacity())

		require.ErrorIs(t, wc.ChangeCapacity(480, 0), workcenter.ErrInvalidConcurrency)
		assert.Equal(t, 3, wc.ConcurrentCapacity())
	})

	t.Run("deactivate and reactivate", func(t *testing.T) {
		wc := newCenter(t)

		wc.Deactivate()
		assert.False(t, wc.IsActive())

		wc.Reactivate()
		assert.True(t, wc.IsActive())
	})
}
