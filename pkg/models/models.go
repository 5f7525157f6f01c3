package models

import "time"

// DateLayout is the fixed, locale-independent form used for all date keys.
const DateLayout = "2006-01-02"

// Status is the presence status of a person on a single day.
type Status string

const (
	StatusBase        Status = "base"
	StatusHome        Status = "home"
	StatusUnavailable Status = "unavailable"
)

// OverrideSource tags where a manual day override came from. Overrides
// written back by a previous generation run are ignored by the constraint
// compiler so they do not self-perpetuate across regenerations.
type OverrideSource string

const (
	SourceManual    OverrideSource = "manual"
	SourceAlgorithm OverrideSource = "algorithm"
)

// DayOverride is a manual per-day availability override on a person.
type DayOverride struct {
	Status Status         `json:"status"`
	Source OverrideSource `json:"source"`
}

// Person represents a roster member.
type Person struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	TeamID    string                 `json:"team_id,omitempty"`
	Overrides map[string]DayOverride `json:"overrides,omitempty"` // date (YYYY-MM-DD) -> override
}

// ConstraintKind distinguishes hard-forbid constraints from exemptions.
type ConstraintKind string

const (
	ConstraintNeverAssign  ConstraintKind = "never_assign"
	ConstraintAlwaysAssign ConstraintKind = "always_assign"
)

// SchedulingConstraint is a time-ranged rule tied to a person. Only
// never_assign constraints feed the hard-constraint set.
type SchedulingConstraint struct {
	PersonID string         `json:"person_id"`
	Start    time.Time      `json:"start"`
	End      time.Time      `json:"end"`
	Kind     ConstraintKind `json:"kind"`
}

// Absence is a time range on which a person can never be assigned to base.
type Absence struct {
	PersonID string    `json:"person_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// TeamRotation is a team-level rotation policy.
type TeamRotation struct {
	TeamID     string `json:"team_id"`
	DaysOnBase int    `json:"days_on_base"`
	DaysAtHome int    `json:"days_at_home"`
}

// RotationConfig is the resolved base/home cycle for one person. Cycle
// length is DaysBase + DaysHome.
type RotationConfig struct {
	DaysBase int `json:"days_base"`
	DaysHome int `json:"days_home"`
}

// PersonHistory seeds phase alignment: the status and run length
// immediately preceding the horizon start.
type PersonHistory struct {
	LastStatus      Status `json:"last_status"`
	ConsecutiveDays int    `json:"consecutive_days"`
}

// SegmentFrequency classifies how often a task segment recurs. Only daily
// and continuous segments impose a rotation-wide headcount floor.
type SegmentFrequency string

const (
	FrequencyDaily      SegmentFrequency = "daily"
	FrequencyContinuous SegmentFrequency = "continuous"
	FrequencyOneOff     SegmentFrequency = "one_off"
)

// TaskSegment is a single staffed duty block within a task template.
type TaskSegment struct {
	Frequency      SegmentFrequency `json:"frequency"`
	DurationHours  float64          `json:"duration_hours"`
	RestHours      float64          `json:"rest_hours"`
	RequiredPeople int              `json:"required_people"`
}

// TaskTemplate describes a recurring task whose coverage requirements can
// derive a minimum daily headcount.
type TaskTemplate struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Segments []TaskSegment `json:"segments"`
}

// Mode selects the optimization strategy.
type Mode string

const (
	ModeRatio     Mode = "ratio"
	ModeMinStaff  Mode = "min_staff"
	ModeTasks     Mode = "tasks"
	ModeAnnealing Mode = "annealing" // alternate cost-minimizer, non-deterministic
)

// RosterInput is the data structure for the roster generation endpoint.
// Dates are calendar days in YYYY-MM-DD form; callers normalize to a
// consistent local calendar before invocation.
type RosterInput struct {
	StartDate        string                   `json:"start_date" binding:"required"`
	EndDate          string                   `json:"end_date" binding:"required"`
	People           []Person                 `json:"people" binding:"required"`
	RotationPolicies []TeamRotation           `json:"rotation_policies,omitempty"`
	Constraints      []SchedulingConstraint   `json:"constraints,omitempty"`
	Absences         []Absence                `json:"absences,omitempty"`
	Mode             Mode                     `json:"mode" binding:"required"`
	CustomMinStaff   int                      `json:"custom_min_staff,omitempty"`
	CustomRotation   *RotationConfig          `json:"custom_rotation,omitempty"`
	HistorySeed      map[string]PersonHistory `json:"history_seed,omitempty"`
	Tasks            []TaskTemplate           `json:"tasks,omitempty"`
}

// RosterEntry is one (date, person, status) cell of the generated roster.
type RosterEntry struct {
	Date     string `json:"date"`
	PersonID string `json:"person_id"`
	Status   Status `json:"status"`
}

// ConstraintStats counts how many hard constraints the result honored.
type ConstraintStats struct {
	Total      int     `json:"total"`
	Met        int     `json:"met"`
	Percentage float64 `json:"percentage"`
}

// RosterStats aggregates the generated roster.
type RosterStats struct {
	TotalDays       int             `json:"total_days"`
	AvgStaffPerDay  float64         `json:"avg_staff_per_day"`
	ConstraintStats ConstraintStats `json:"constraint_stats"`
}

// UnfulfilledConstraint records a hard constraint the result violates.
type UnfulfilledConstraint struct {
	PersonID   string `json:"person_id"`
	PersonName string `json:"person_name"`
	Date       string `json:"date"`
	Reason     string `json:"reason"`
}

// RosterResult is the full output of one generation run. A non-empty
// Warnings or UnfulfilledConstraints list means "succeeded with caveats",
// not failure.
type RosterResult struct {
	Roster                 []RosterEntry                `json:"roster"`
	PersonStatuses         map[string]map[string]Status `json:"person_statuses"` // date -> person -> status
	Stats                  RosterStats                  `json:"stats"`
	Warnings               []string                     `json:"warnings"`
	UnfulfilledConstraints []UnfulfilledConstraint      `json:"unfulfilled_constraints"`
}
