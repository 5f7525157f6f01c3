package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavshah/roster-api-go/pkg/models"
)

func ratioContext(t *testing.T, in *models.RosterInput, days int) *Context {
	t.Helper()
	return buildContext(mustDate(t, "2026-03-02"), days, in, 0)
}

func TestRatioCycleFidelity(t *testing.T) {
	// One person on a (3,1) rotation over 8 days. The effective split
	// converts one base day into the guaranteed exit day, giving a 4-day
	// cycle of 2 base / 2 home starting at phase 0.
	ctx := ratioContext(t, &models.RosterInput{
		People:         makePeople(1),
		CustomRotation: &models.RotationConfig{DaysBase: 3, DaysHome: 1},
	}, 8)

	grid, warnings := ratioStrategy{}.Plan(ctx)

	assert.Empty(t, warnings)
	require.Len(t, grid["p0"], 8)
	assert.Equal(t, []bool{true, true, false, false, true, true, false, false}, grid["p0"])
}

func TestRatioHonorsConstraints(t *testing.T) {
	in := &models.RosterInput{
		People:         makePeople(5),
		CustomRotation: &models.RotationConfig{DaysBase: 4, DaysHome: 3},
		Constraints: []models.SchedulingConstraint{
			{PersonID: "p0", Start: mustDate(t, "2026-03-02"), End: mustDate(t, "2026-03-08"), Kind: models.ConstraintNeverAssign},
			{PersonID: "p1", Start: mustDate(t, "2026-03-05"), End: mustDate(t, "2026-03-06"), Kind: models.ConstraintNeverAssign},
			{PersonID: "p2", Start: mustDate(t, "2026-03-10"), End: mustDate(t, "2026-03-15"), Kind: models.ConstraintNeverAssign},
		},
		Absences: []models.Absence{
			{PersonID: "p3", Start: mustDate(t, "2026-03-02"), End: mustDate(t, "2026-03-15")},
		},
	}
	ctx := ratioContext(t, in, 14)

	grid, _ := ratioStrategy{}.Plan(ctx)

	for _, p := range ctx.People {
		for d := 0; d < ctx.Days; d++ {
			if ctx.Blocked[p.ID][d] {
				assert.Falsef(t, grid[p.ID][d], "%s assigned to base on blocked day %d", p.ID, d)
			}
		}
	}
}

func TestRatioHistoryContinuation(t *testing.T) {
	// The person finished yesterday with 1 consecutive base day on an
	// effective 2/2 cycle, so day 0 continues the base block and days 1-2
	// are the home block.
	ctx := ratioContext(t, &models.RosterInput{
		People:         makePeople(1),
		CustomRotation: &models.RotationConfig{DaysBase: 3, DaysHome: 1},
		HistorySeed: map[string]models.PersonHistory{
			"p0": {LastStatus: models.StatusBase, ConsecutiveDays: 1},
		},
	}, 8)

	grid, _ := ratioStrategy{}.Plan(ctx)

	assert.Equal(t, []bool{true, false, false, true, true, false, false, true}, grid["p0"])
}

func TestRatioLoadBalancing(t *testing.T) {
	// Two identical (3,1) rotations: the quadratic headcount penalty
	// should push the second person onto the opposite phase, flattening
	// daily headcount to exactly one.
	ctx := ratioContext(t, &models.RosterInput{
		People:         makePeople(2),
		CustomRotation: &models.RotationConfig{DaysBase: 3, DaysHome: 1},
	}, 8)

	grid, _ := ratioStrategy{}.Plan(ctx)

	for d := 0; d < ctx.Days; d++ {
		count := 0
		for _, p := range ctx.People {
			if grid[p.ID][d] {
				count++
			}
		}
		assert.Equalf(t, 1, count, "day %d headcount", d)
	}
}

func TestRatioMostConstrainedCommitsFirst(t *testing.T) {
	// p1 carries constraints, p0 does not: p1 must get first pick of
	// offsets and keep all blocked days on home.
	in := &models.RosterInput{
		People:         makePeople(2),
		CustomRotation: &models.RotationConfig{DaysBase: 3, DaysHome: 1},
		Constraints: []models.SchedulingConstraint{
			{PersonID: "p1", Start: mustDate(t, "2026-03-02"), End: mustDate(t, "2026-03-03"), Kind: models.ConstraintNeverAssign},
		},
	}
	ctx := ratioContext(t, in, 8)

	grid, _ := ratioStrategy{}.Plan(ctx)

	assert.False(t, grid["p1"][0])
	assert.False(t, grid["p1"][1])
}

func TestRatioDeterminism(t *testing.T) {
	in := &models.RosterInput{
		People:         makePeople(6),
		CustomRotation: &models.RotationConfig{DaysBase: 5, DaysHome: 2},
		Constraints: []models.SchedulingConstraint{
			{PersonID: "p2", Start: mustDate(t, "2026-03-04"), End: mustDate(t, "2026-03-07"), Kind: models.ConstraintNeverAssign},
		},
	}

	first, _ := ratioStrategy{}.Plan(ratioContext(t, in, 21))
	second, _ := ratioStrategy{}.Plan(ratioContext(t, in, 21))

	assert.Equal(t, first, second)
}

func TestRatioZeroHomeDaysMeansAlwaysOnBase(t *testing.T) {
	in := &models.RosterInput{
		People:         makePeople(1),
		CustomRotation: &models.RotationConfig{DaysBase: 5, DaysHome: 0},
		Absences: []models.Absence{
			{PersonID: "p0", Start: mustDate(t, "2026-03-03"), End: mustDate(t, "2026-03-03")},
		},
	}
	ctx := ratioContext(t, in, 5)

	grid, _ := ratioStrategy{}.Plan(ctx)

	assert.Equal(t, []bool{true, false, true, true, true}, grid["p0"])
}
