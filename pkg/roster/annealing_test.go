package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavshah/roster-api-go/pkg/models"
)

func TestVariance(t *testing.T) {
	assert.Equal(t, 0.0, variance(nil))
	assert.Equal(t, 0.0, variance([]int{3, 3, 3}))
	assert.Equal(t, 4.0, variance([]int{0, 4}))
}

func TestCloneGridIsIndependent(t *testing.T) {
	original := Grid{"p0": {true, false}}
	clone := cloneGrid(original)

	clone["p0"][0] = false

	assert.True(t, original["p0"][0])
}

func TestAnnealingCostPenalizesConstraintBreaks(t *testing.T) {
	ctx := buildContext(mustDate(t, "2026-03-02"), 4, &models.RosterInput{
		People: makePeople(1),
		Absences: []models.Absence{
			{PersonID: "p0", Start: mustDate(t, "2026-03-03"), End: mustDate(t, "2026-03-03")},
		},
	}, 0)

	honoring := Grid{"p0": {true, false, true, true}}
	breaking := Grid{"p0": {true, true, true, true}}

	s := annealingStrategy{}
	assert.Greater(t, s.cost(ctx, breaking), s.cost(ctx, honoring))
}

func TestAnnealingCostPenalizesFragmentation(t *testing.T) {
	// Rotation (2,2): a one-day home break is fragmented, a two-day break
	// is not. Compare otherwise similar grids.
	ctx := buildContext(mustDate(t, "2026-03-02"), 6, &models.RosterInput{
		People:         makePeople(1),
		CustomRotation: &models.RotationConfig{DaysBase: 2, DaysHome: 2},
	}, 0)

	fragmented := Grid{"p0": {true, true, false, true, true, false}}
	clean := Grid{"p0": {true, true, false, false, true, true}}

	s := annealingStrategy{}
	assert.Greater(t, s.cost(ctx, fragmented), s.cost(ctx, clean))
}

func TestAnnealingPlanCoversEveryone(t *testing.T) {
	ctx := buildContext(mustDate(t, "2026-03-02"), 10, &models.RosterInput{
		People: makePeople(5),
	}, 0)

	grid, warnings := annealingStrategy{}.Plan(ctx)

	assert.Empty(t, warnings)
	require.Len(t, grid, 5)
	for _, p := range ctx.People {
		assert.Len(t, grid[p.ID], 10)
	}
}
