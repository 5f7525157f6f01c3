package roster

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavshah/roster-api-go/pkg/models"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, s)
	require.NoError(t, err)
	return d
}

func makePeople(n int) []models.Person {
	out := make([]models.Person, n)
	for i := range out {
		out[i] = models.Person{ID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("Person %d", i)}
	}
	return out
}

func TestCompileBlockedDaysClampsRanges(t *testing.T) {
	start := mustDate(t, "2026-03-02")
	people := makePeople(2)

	constraints := []models.SchedulingConstraint{
		// Starts before the horizon: contribution clamped to days 0..2.
		{PersonID: "p0", Start: mustDate(t, "2026-02-25"), End: mustDate(t, "2026-03-04"), Kind: models.ConstraintNeverAssign},
		// Entirely past the horizon: dropped.
		{PersonID: "p0", Start: mustDate(t, "2026-04-01"), End: mustDate(t, "2026-04-05"), Kind: models.ConstraintNeverAssign},
		// always_assign never feeds the hard-constraint set.
		{PersonID: "p1", Start: mustDate(t, "2026-03-02"), End: mustDate(t, "2026-03-05"), Kind: models.ConstraintAlwaysAssign},
	}
	absences := []models.Absence{
		// Runs past the horizon end: clamped to days 8..9.
		{PersonID: "p1", Start: mustDate(t, "2026-03-10"), End: mustDate(t, "2026-03-20")},
	}

	blocked := compileBlockedDays(start, 10, people, constraints, absences)

	assert.Equal(t, map[int]bool{0: true, 1: true, 2: true}, blocked["p0"])
	assert.Equal(t, map[int]bool{8: true, 9: true}, blocked["p1"])
}

func TestCompileBlockedDaysManualOverrides(t *testing.T) {
	start := mustDate(t, "2026-03-02")
	people := makePeople(1)
	people[0].Overrides = map[string]models.DayOverride{
		"2026-03-05": {Status: models.StatusUnavailable, Source: models.SourceManual},
		// Written by a previous run: must not self-perpetuate.
		"2026-03-06": {Status: models.StatusUnavailable, Source: models.SourceAlgorithm},
		// Not an unavailability: ignored.
		"2026-03-07": {Status: models.StatusHome, Source: models.SourceManual},
		// Out of range: dropped.
		"2026-04-01": {Status: models.StatusUnavailable, Source: models.SourceManual},
	}

	blocked := compileBlockedDays(start, 10, people, nil, nil)

	assert.Equal(t, map[int]bool{3: true}, blocked["p0"])
}

func TestCompileBlockedDaysIgnoresUnknownPeople(t *testing.T) {
	start := mustDate(t, "2026-03-02")
	constraints := []models.SchedulingConstraint{
		{PersonID: "ghost", Start: start, End: start, Kind: models.ConstraintNeverAssign},
	}

	blocked := compileBlockedDays(start, 5, makePeople(1), constraints, nil)

	assert.NotContains(t, blocked, "ghost")
	assert.Empty(t, blocked["p0"])
}

func TestResolveRotationPrecedence(t *testing.T) {
	policies := map[string]models.RotationConfig{
		"alpha": {DaysBase: 7, DaysHome: 7},
	}
	inTeam := models.Person{ID: "p0", TeamID: "alpha"}
	noTeam := models.Person{ID: "p1"}

	custom := &models.RotationConfig{DaysBase: 4, DaysHome: 2}
	assert.Equal(t, *custom, resolveRotation(inTeam, custom, policies), "explicit override wins")

	assert.Equal(t, models.RotationConfig{DaysBase: 7, DaysHome: 7}, resolveRotation(inTeam, nil, policies), "team policy next")

	assert.Equal(t, models.RotationConfig{DaysBase: 11, DaysHome: 3}, resolveRotation(noTeam, nil, policies), "system default last")
}

func TestDayIndexIgnoresTimeOfDay(t *testing.T) {
	start := mustDate(t, "2026-03-02")
	noon := time.Date(2026, 3, 4, 12, 30, 0, 0, time.UTC)

	assert.Equal(t, 2, dayIndex(start, noon))
	assert.Equal(t, -2, dayIndex(start, mustDate(t, "2026-02-28")))
}
