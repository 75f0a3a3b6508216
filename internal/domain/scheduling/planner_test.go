package scheduling

import (
	"testing"
	"time"

	"smt_scheduler/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLane(t *testing.T, line entities.ProductionLine) Lane {
	t.Helper()
	lane, err := NewLane(line, time.UTC)
	require.NoError(t, err)
	return lane
}

func TestNewLane(t *testing.T) {
	line := fiveDayLine("l1")
	line.TimeMultiplier = 0
	_, err := NewLane(line, time.UTC)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "time_multiplier", cfgErr.Field)
	assert.ErrorIs(t, err, ErrNonPositiveMultiplier)

	line = fiveDayLine("l1")
	line.ShiftStart = "07h00"
	_, err = NewLane(line, time.UTC)
	assert.ErrorIs(t, err, ErrMalformedClock)
}

func TestEngaged(t *testing.T) {
	line := fiveDayLine("l1")
	assert.True(t, Engaged(line))

	line.Status = entities.LineStatusIdle
	assert.True(t, Engaged(line))

	line.Status = entities.LineStatusMaintenance
	assert.False(t, Engaged(line))

	line.Status = entities.LineStatusDown
	assert.False(t, Engaged(line))

	line = fiveDayLine("l1")
	line.AutoScheduleEnabled = false
	assert.False(t, Engaged(line))
}

func TestPlanner_Place(t *testing.T) {
	now := at(0, 6)
	job := entities.WorkOrder{ID: "wo-1", ProductionHours: 4}

	t.Run("no lanes", func(t *testing.T) {
		_, err := NewPlanner(PlannerOptions{}).Place(job, nil, NewRunContext("r", now), now)
		assert.ErrorIs(t, err, ErrNoEligibleLane)
	})

	t.Run("no duration", func(t *testing.T) {
		lanes := []Lane{mustLane(t, fiveDayLine("l1"))}
		_, err := NewPlanner(PlannerOptions{}).Place(entities.WorkOrder{ID: "wo-0"}, lanes, NewRunContext("r", now), now)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("picks the lane that finishes first", func(t *testing.T) {
		lanes := []Lane{mustLane(t, fiveDayLine("l1")), mustLane(t, fiveDayLine("l2"))}
		rc := NewRunContext("r", now)
		rc.Seed("l1", entities.Interval{WorkOrderID: "busy", Start: at(0, 7), End: at(4, 15)})

		got, err := NewPlanner(PlannerOptions{}).Place(job, lanes, rc, now)
		require.NoError(t, err)
		assert.Equal(t, Placement{
			LineID:    "l2",
			Slot:      Slot{Start: at(0, 7), End: at(0, 11), Days: 1},
			Projected: at(0, 11),
		}, got)
	})

	t.Run("ties keep the first lane", func(t *testing.T) {
		lanes := []Lane{mustLane(t, fiveDayLine("l1")), mustLane(t, fiveDayLine("l2"))}
		got, err := NewPlanner(PlannerOptions{}).Place(job, lanes, NewRunContext("r", now), now)
		require.NoError(t, err)
		assert.Equal(t, "l1", got.LineID)
	})

	t.Run("multiplier slows a lane", func(t *testing.T) {
		slow := fiveDayLine("l1")
		slow.TimeMultiplier = 2
		lanes := []Lane{mustLane(t, slow), mustLane(t, fiveDayLine("l2"))}
		eight := entities.WorkOrder{ID: "wo-8", ProductionHours: 8}

		got, err := NewPlanner(PlannerOptions{}).Place(eight, lanes, NewRunContext("r", now), now)
		require.NoError(t, err)
		assert.Equal(t, "l2", got.LineID)
		assert.Equal(t, at(0, 15), got.Projected)
	})

	t.Run("missed ship date", func(t *testing.T) {
		lanes := []Lane{mustLane(t, fiveDayLine("l1"))}
		late := entities.WorkOrder{ID: "wo-late", ProductionHours: 4, ShipDate: ptr(day(-1))}

		_, err := NewPlanner(PlannerOptions{}).Place(late, lanes, NewRunContext("r", now), now)
		assert.ErrorIs(t, err, ErrDueDateUnreachable)

		got, err := NewPlanner(PlannerOptions{ScheduleLateJobs: true}).Place(late, lanes, NewRunContext("r", now), now)
		require.NoError(t, err)
		assert.True(t, got.Late)
		assert.Equal(t, "l1", got.LineID)
	})

	t.Run("lane with a non-positive multiplier is skipped", func(t *testing.T) {
		broken := fiveDayLine("l1")
		broken.TimeMultiplier = 0
		lanes := []Lane{{Line: broken, Calendar: mustCalendar(t, broken)}, mustLane(t, fiveDayLine("l2"))}

		got, err := NewPlanner(PlannerOptions{}).Place(job, lanes, NewRunContext("r", now), now)
		require.NoError(t, err)
		assert.Equal(t, "l2", got.LineID)

		_, err = NewPlanner(PlannerOptions{}).Place(job, lanes[:1], NewRunContext("r", now), now)
		assert.ErrorIs(t, err, ErrNoSlot)
	})

	t.Run("no slot in look-ahead", func(t *testing.T) {
		lanes := []Lane{mustLane(t, fiveDayLine("l1"))}
		rc := NewRunContext("r", now)
		rc.Seed("l1", entities.Interval{WorkOrderID: "busy", Start: at(0, 7), End: at(0, 15)})

		_, err := NewPlanner(PlannerOptions{Slot: SlotOptions{LookaheadDays: 1}}).Place(job, lanes, rc, now)
		assert.ErrorIs(t, err, ErrNoSlot)
	})

	t.Run("due-date aware defers", func(t *testing.T) {
		lanes := []Lane{mustLane(t, fiveDayLine("l1"))}
		flexible := entities.WorkOrder{ID: "wo-flex", ProductionHours: 8, ShipDate: ptr(time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC))}

		got, err := NewPlanner(PlannerOptions{DueDateAware: true}).Place(flexible, lanes, NewRunContext("r", now), now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 7, 7, 0, 0, 0, time.UTC), got.Slot.Start)
		assert.False(t, got.Late)
	})
}

func TestBetter(t *testing.T) {
	onTime := Placement{LineID: "a", Projected: at(3, 0)}
	late := Placement{LineID: "b", Projected: at(1, 0), Late: true}
	earlier := Placement{LineID: "c", Projected: at(2, 0)}

	assert.True(t, better(onTime, late))
	assert.False(t, better(late, onTime))
	assert.True(t, better(earlier, onTime))
	assert.False(t, better(onTime, onTime))
}
