package roster

import (
	"time"

	"github.com/arnavshah/roster-api-go/pkg/models"
)

// Default rotation applied when neither a per-run override nor a team
// policy resolves: 11 days on base, 3 at home.
const (
	defaultDaysBase = 11
	defaultDaysHome = 3
)

// Context is the read-only scheduling state for a single run. It is built
// once from the caller's snapshot and shared by every strategy.
type Context struct {
	Start     time.Time
	Days      int
	People    []models.Person
	Blocked   map[string]map[int]bool // person -> day indices on which base is forbidden
	Rotations map[string]models.RotationConfig
	MinStaff  int
	History   map[string]models.PersonHistory
}

// DateOf returns the calendar date key for a day index.
func (c *Context) DateOf(day int) string {
	return c.Start.AddDate(0, 0, day).Format(models.DateLayout)
}

// PersonByID looks a person up by ID; ok is false for unknown IDs.
func (c *Context) PersonByID(id string) (models.Person, bool) {
	for _, p := range c.People {
		if p.ID == id {
			return p, true
		}
	}
	return models.Person{}, false
}

// dayIndex converts a timestamp into a day offset from the horizon start.
// Negative and past-horizon values are returned as-is; callers clamp.
func dayIndex(start, t time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(s).Hours() / 24)
}

// compileBlockedDays builds the hard-constraint set: person -> set of day
// indices on which base assignment is forbidden. Sources are never_assign
// constraints, absences, and manual unavailable overrides whose source is
// not a previous algorithm run. Ranges are clamped to the horizon;
// out-of-range contributions are dropped silently.
func compileBlockedDays(start time.Time, days int, people []models.Person, constraints []models.SchedulingConstraint, absences []models.Absence) map[string]map[int]bool {
	blocked := make(map[string]map[int]bool, len(people))
	for _, p := range people {
		blocked[p.ID] = make(map[int]bool)
	}

	addRange := func(personID string, from, to time.Time) {
		set, ok := blocked[personID]
		if !ok {
			return // constraint for someone outside this run
		}
		lo := dayIndex(start, from)
		hi := dayIndex(start, to)
		if lo < 0 {
			lo = 0
		}
		if hi > days-1 {
			hi = days - 1
		}
		for d := lo; d <= hi; d++ {
			set[d] = true
		}
	}

	for _, c := range constraints {
		if c.Kind != models.ConstraintNeverAssign {
			continue // always_assign is exempt from forbid logic
		}
		addRange(c.PersonID, c.Start, c.End)
	}
	for _, a := range absences {
		addRange(a.PersonID, a.Start, a.End)
	}

	for _, p := range people {
		for date, ov := range p.Overrides {
			if ov.Status != models.StatusUnavailable || ov.Source == models.SourceAlgorithm {
				continue
			}
			t, err := time.Parse(models.DateLayout, date)
			if err != nil {
				continue
			}
			d := dayIndex(start, t)
			if d >= 0 && d < days {
				blocked[p.ID][d] = true
			}
		}
	}

	return blocked
}

// resolveRotation picks a person's cycle: explicit per-run override first,
// then the team rotation policy, then the system default.
func resolveRotation(p models.Person, custom *models.RotationConfig, policies map[string]models.RotationConfig) models.RotationConfig {
	if custom != nil {
		return *custom
	}
	if p.TeamID != "" {
		if r, ok := policies[p.TeamID]; ok && r.DaysBase+r.DaysHome > 0 {
			return r
		}
	}
	return models.RotationConfig{DaysBase: defaultDaysBase, DaysHome: defaultDaysHome}
}

// buildContext compiles the caller's snapshot into a run context.
func buildContext(start time.Time, days int, in *models.RosterInput, minStaff int) *Context {
	policies := make(map[string]models.RotationConfig, len(in.RotationPolicies))
	for _, tr := range in.RotationPolicies {
		policies[tr.TeamID] = models.RotationConfig{DaysBase: tr.DaysOnBase, DaysHome: tr.DaysAtHome}
	}

	rotations := make(map[string]models.RotationConfig, len(in.People))
	for _, p := range in.People {
		rotations[p.ID] = resolveRotation(p, in.CustomRotation, policies)
	}

	return &Context{
		Start:     start,
		Days:      days,
		People:    in.People,
		Blocked:   compileBlockedDays(start, days, in.People, in.Constraints, in.Absences),
		Rotations: rotations,
		MinStaff:  minStaff,
		History:   in.HistorySeed,
	}
}
