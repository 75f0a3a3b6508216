package scheduling

import (
	"testing"
	"time"

	"smt_scheduler/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSlot(t *testing.T) {
	cal := mustCalendar(t, fiveDayLine("l1"))
	opts := DefaultSlotOptions()

	t.Run("spans three days", func(t *testing.T) {
		slot, err := cal.FindSlot(20, 3, nil, at(0, 6), opts)
		require.NoError(t, err)
		assert.Equal(t, Slot{Start: at(0, 7), End: at(2, 11), Days: 3}, slot)
	})

	t.Run("skips the weekend", func(t *testing.T) {
		slot, err := cal.FindSlot(20, 3, nil, at(3, 6), opts)
		require.NoError(t, err)
		assert.Equal(t, Slot{Start: at(3, 7), End: at(7, 11), Days: 3}, slot)
	})

	t.Run("starts after shift start moves to next day", func(t *testing.T) {
		slot, err := cal.FindSlot(4, 1, nil, at(0, 9), opts)
		require.NoError(t, err)
		assert.Equal(t, at(1, 7), slot.Start)
	})

	t.Run("full day is skipped", func(t *testing.T) {
		committed := []entities.Interval{{WorkOrderID: "x", Start: at(0, 7), End: at(0, 15)}}
		slot, err := cal.FindSlot(8, 1, committed, at(0, 6), opts)
		require.NoError(t, err)
		assert.Equal(t, Slot{Start: at(1, 7), End: at(1, 15), Days: 1}, slot)
	})

	t.Run("residual capacity is shared", func(t *testing.T) {
		committed := []entities.Interval{{WorkOrderID: "x", Start: at(0, 7), End: at(0, 11)}}

		slot, err := cal.FindSlot(4, 1, committed, at(0, 6), opts)
		require.NoError(t, err)
		assert.Equal(t, Slot{Start: at(0, 7), End: at(0, 11), Days: 1}, slot)

		slot, err = cal.FindSlot(6, 1, committed, at(0, 6), opts)
		require.NoError(t, err)
		assert.Equal(t, Slot{Start: at(1, 7), End: at(1, 13), Days: 1}, slot)
	})

	t.Run("every day of the span must fit", func(t *testing.T) {
		committed := []entities.Interval{{WorkOrderID: "x", Start: at(1, 7), End: at(1, 15)}}
		slot, err := cal.FindSlot(12, 2, committed, at(0, 6), opts)
		require.NoError(t, err)
		assert.Equal(t, Slot{Start: at(2, 7), End: at(3, 11), Days: 2}, slot)
	})

	t.Run("zero hours", func(t *testing.T) {
		_, err := cal.FindSlot(0, 0, nil, at(0, 6), opts)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})
}

func TestFindSlot_Lookahead(t *testing.T) {
	cal := mustCalendar(t, fiveDayLine("l1"))
	booked := []entities.Interval{{WorkOrderID: "x", Start: at(0, 7), End: at(2, 15)}}

	_, err := cal.FindSlot(20, 3, booked, at(0, 6), SlotOptions{LookaheadDays: 3})
	assert.ErrorIs(t, err, ErrNoSlot)

	// Jobs longer than LongJobDays search the extended window.
	slot, err := cal.FindSlot(20, 3, booked, at(0, 6), SlotOptions{LookaheadDays: 3, ExtendedLookaheadDays: 10, LongJobDays: 1})
	require.NoError(t, err)
	assert.Equal(t, Slot{Start: at(3, 7), End: at(7, 11), Days: 3}, slot)
}

func TestFindDueDateAwareSlot(t *testing.T) {
	cal := mustCalendar(t, fiveDayLine("l1"))
	opts := DefaultSlotOptions()

	t.Run("far ship date defers the start", func(t *testing.T) {
		ship := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
		slot, err := cal.FindDueDateAwareSlot(8, 1, nil, at(0, 6), ship, opts)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 7, 7, 0, 0, 0, time.UTC), slot.Start)
		assert.Equal(t, time.Date(2024, 3, 7, 15, 0, 0, 0, time.UTC), slot.End)
	})

	t.Run("near ship date keeps the earliest slot", func(t *testing.T) {
		ship := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
		slot, err := cal.FindDueDateAwareSlot(8, 1, nil, at(0, 6), ship, opts)
		require.NoError(t, err)
		assert.Equal(t, at(0, 7), slot.Start)
	})

	t.Run("no slot at all", func(t *testing.T) {
		booked := []entities.Interval{{WorkOrderID: "x", Start: at(0, 7), End: at(0, 15)}}
		_, err := cal.FindDueDateAwareSlot(8, 1, booked, at(0, 6), day(60), SlotOptions{LookaheadDays: 1})
		assert.ErrorIs(t, err, ErrNoSlot)
	})
}
