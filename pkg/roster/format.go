package roster

import (
	"github.com/arnavshah/roster-api-go/pkg/models"
)

// reasonConstraintBroken is the fixed reason attached to every violated
// hard constraint in the unfulfilled list.
const reasonConstraintBroken = "scheduled on base despite a blocking constraint"

// formatResult merges a strategy grid with the compiled constraint sets
// into the final roster. A home day under a hard constraint is labeled
// unavailable; a base day under a hard constraint is left as base on
// purpose, so consumers can see the violation, and is reported in the
// unfulfilled list. The function is pure: formatting the same grid twice
// yields identical results.
func formatResult(ctx *Context, grid Grid, warnings []string) *models.RosterResult {
	result := &models.RosterResult{
		Roster:                 make([]models.RosterEntry, 0, ctx.Days*len(ctx.People)),
		PersonStatuses:         make(map[string]map[string]models.Status, ctx.Days),
		Warnings:               append([]string(nil), warnings...),
		UnfulfilledConstraints: []models.UnfulfilledConstraint{},
	}

	totalConstraints := 0
	metConstraints := 0
	totalBaseDays := 0

	for d := 0; d < ctx.Days; d++ {
		date := ctx.DateOf(d)
		byPerson := make(map[string]models.Status, len(ctx.People))

		for _, p := range ctx.People {
			onBase := len(grid[p.ID]) > d && grid[p.ID][d]
			blocked := ctx.Blocked[p.ID][d]

			status := models.StatusHome
			switch {
			case onBase:
				status = models.StatusBase
				totalBaseDays++
			case blocked:
				status = models.StatusUnavailable
			}

			if blocked {
				totalConstraints++
				if onBase {
					result.UnfulfilledConstraints = append(result.UnfulfilledConstraints, models.UnfulfilledConstraint{
						PersonID:   p.ID,
						PersonName: p.Name,
						Date:       date,
						Reason:     reasonConstraintBroken,
					})
				} else {
					metConstraints++
				}
			}

			byPerson[p.ID] = status
			result.Roster = append(result.Roster, models.RosterEntry{
				Date:     date,
				PersonID: p.ID,
				Status:   status,
			})
		}
		result.PersonStatuses[date] = byPerson
	}

	percentage := 100.0
	if totalConstraints > 0 {
		percentage = float64(metConstraints) / float64(totalConstraints) * 100.0
	}
	avgStaff := 0.0
	if ctx.Days > 0 {
		avgStaff = float64(totalBaseDays) / float64(ctx.Days)
	}

	result.Stats = models.RosterStats{
		TotalDays:      ctx.Days,
		AvgStaffPerDay: avgStaff,
		ConstraintStats: models.ConstraintStats{
			Total:      totalConstraints,
			Met:        metConstraints,
			Percentage: percentage,
		},
	}
	if result.Warnings == nil {
		result.Warnings = []string{}
	}
	return result
}
