package entities

// LineStatus is the operational status of a production line.
type LineStatus string

const (
	LineStatusActive      LineStatus = "active"
	LineStatusIdle        LineStatus = "idle"
	LineStatusMaintenance LineStatus = "maintenance"
	LineStatusDown        LineStatus = "down"
)

// IsOperational is false for lines under maintenance or down.
func (s LineStatus) IsOperational() bool {
	return s != LineStatusMaintenance && s != LineStatusDown
}

// ProductionLine is a resource lane with its own working calendar.
//
// Times of day are "HH:MM" strings in the plant time zone.
type ProductionLine struct {
	ID                  string     `json:"id" yaml:"id" validate:"required"`
	Name                string     `json:"name" yaml:"name" validate:"required"`
	Status              LineStatus `json:"status" yaml:"status" validate:"omitempty,oneof=active idle maintenance down"`
	ShiftsPerDay        int        `json:"shifts_per_day" yaml:"shifts_per_day" validate:"gte=0"`
	HoursPerShift       float64    `json:"hours_per_shift" yaml:"hours_per_shift" validate:"gte=0"`
	DaysPerWeek         int        `json:"days_per_week" yaml:"days_per_week" validate:"oneof=5 6 7"`
	ShiftStart          string     `json:"shift_start" yaml:"shift_start"`
	ShiftEnd            string     `json:"shift_end" yaml:"shift_end"`
	LunchBreakStart     string     `json:"lunch_break_start,omitempty" yaml:"lunch_break_start"`
	LunchBreakMinutes   int        `json:"lunch_break_minutes" yaml:"lunch_break_minutes" validate:"gte=0"`
	BreakMinutes        int        `json:"break_minutes" yaml:"break_minutes" validate:"gte=0"`
	TimeMultiplier      float64    `json:"time_multiplier" yaml:"-"`
	AutoScheduleEnabled bool       `json:"auto_schedule_enabled" yaml:"-"`
}

// DailyCapacity is shifts per day times hours per shift.
func (l ProductionLine) DailyCapacity() float64 {
	return float64(l.ShiftsPerDay) * l.HoursPerShift
}
