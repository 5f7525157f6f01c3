package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavshah/roster-api-go/pkg/models"
)

func formatterFixture(t *testing.T) (*Context, Grid) {
	t.Helper()
	ctx := &Context{
		Start:  mustDate(t, "2026-03-02"),
		Days:   3,
		People: makePeople(2),
		Blocked: map[string]map[int]bool{
			"p0": {1: true},
			"p1": {2: true},
		},
	}
	grid := Grid{
		"p0": {true, false, true},
		"p1": {false, true, true}, // day 2 violates p1's constraint
	}
	return ctx, grid
}

func TestFormatStatusLabels(t *testing.T) {
	ctx, grid := formatterFixture(t)

	result := formatResult(ctx, grid, nil)

	// Home on a blocked day is surfaced as unavailable.
	assert.Equal(t, models.StatusUnavailable, result.PersonStatuses["2026-03-03"]["p0"])
	// Base on a blocked day stays base so consumers can see the violation.
	assert.Equal(t, models.StatusBase, result.PersonStatuses["2026-03-04"]["p1"])
	assert.Equal(t, models.StatusHome, result.PersonStatuses["2026-03-02"]["p1"])
}

func TestFormatUnfulfilledConstraints(t *testing.T) {
	ctx, grid := formatterFixture(t)

	result := formatResult(ctx, grid, nil)

	require.Len(t, result.UnfulfilledConstraints, 1)
	violation := result.UnfulfilledConstraints[0]
	assert.Equal(t, "p1", violation.PersonID)
	assert.Equal(t, "Person 1", violation.PersonName)
	assert.Equal(t, "2026-03-04", violation.Date)
	assert.NotEmpty(t, violation.Reason)
}

func TestFormatStats(t *testing.T) {
	ctx, grid := formatterFixture(t)

	result := formatResult(ctx, grid, []string{"advisory"})

	assert.Equal(t, 3, result.Stats.TotalDays)
	// 4 base assignments over 3 days.
	assert.InDelta(t, 4.0/3.0, result.Stats.AvgStaffPerDay, 1e-9)
	assert.Equal(t, 2, result.Stats.ConstraintStats.Total)
	assert.Equal(t, 1, result.Stats.ConstraintStats.Met)
	assert.InDelta(t, 50.0, result.Stats.ConstraintStats.Percentage, 1e-9)
	assert.Equal(t, []string{"advisory"}, result.Warnings)
}

func TestFormatNoConstraintsIsFullyCompliant(t *testing.T) {
	ctx := &Context{
		Start:   mustDate(t, "2026-03-02"),
		Days:    2,
		People:  makePeople(1),
		Blocked: map[string]map[int]bool{"p0": {}},
	}
	grid := Grid{"p0": {true, false}}

	result := formatResult(ctx, grid, nil)

	assert.Equal(t, 0, result.Stats.ConstraintStats.Total)
	assert.InDelta(t, 100.0, result.Stats.ConstraintStats.Percentage, 1e-9)
	assert.Empty(t, result.UnfulfilledConstraints)
}

func TestFormatIdempotent(t *testing.T) {
	ctx, grid := formatterFixture(t)

	first := formatResult(ctx, grid, []string{"w"})
	second := formatResult(ctx, grid, []string{"w"})

	assert.Equal(t, first, second)
}

func TestFormatRosterEntriesMatchLookupMap(t *testing.T) {
	ctx, grid := formatterFixture(t)

	result := formatResult(ctx, grid, nil)

	require.Len(t, result.Roster, ctx.Days*len(ctx.People))
	for _, entry := range result.Roster {
		assert.Equal(t, result.PersonStatuses[entry.Date][entry.PersonID], entry.Status)
	}
}
