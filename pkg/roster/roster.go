// Package roster generates presence rosters: for every person and every
// day in a planning horizon it assigns base, home, or unavailable,
// honoring hard constraints and a configurable optimization objective.
// The package performs no I/O; a run is a pure function of its input.
package roster

import (
	"errors"
	"fmt"
	"time"

	"github.com/arnavshah/roster-api-go/pkg/models"
)

var (
	// ErrNoTasks is returned for tasks mode without any task templates.
	ErrNoTasks = errors.New("tasks mode requires at least one task template")
	// ErrBadHorizon is returned when the end date precedes the start date.
	ErrBadHorizon = errors.New("end date precedes start date")
	// ErrBadRotation is returned for a custom rotation with a non-positive cycle.
	ErrBadRotation = errors.New("custom rotation must have a positive cycle length")
	// ErrUnknownMode is returned for an unrecognized optimization mode.
	ErrUnknownMode = errors.New("unknown optimization mode")
)

// Grid is a strategy's raw output: person -> per-day base flags
// (true = on base).
type Grid map[string][]bool

// Strategy plans a base/home grid for a run. Implementations are
// side-effect-free: warnings are returned, never written into the context.
type Strategy interface {
	Name() string
	Plan(ctx *Context) (Grid, []string)
}

// Generate runs the full pipeline: compile constraints, resolve rotations,
// select and run a strategy, and format the result. Start and end are
// inclusive calendar days.
func Generate(start, end time.Time, in *models.RosterInput) (*models.RosterResult, error) {
	days := dayIndex(start, end) + 1
	if days < 1 {
		return nil, ErrBadHorizon
	}
	if in.CustomRotation != nil && in.CustomRotation.DaysBase+in.CustomRotation.DaysHome <= 0 {
		return nil, ErrBadRotation
	}

	var warnings []string

	minStaff := in.CustomMinStaff
	var strat Strategy
	switch in.Mode {
	case models.ModeRatio:
		strat = ratioStrategy{}
	case models.ModeMinStaff:
		strat = minStaffStrategy{Floor: minStaff}
	case models.ModeTasks:
		if len(in.Tasks) == 0 {
			return nil, ErrNoTasks
		}
		floor := taskDemandFloor(in.Tasks)
		if floor > minStaff {
			minStaff = floor
		}
		strat = minStaffStrategy{Floor: minStaff}
	case models.ModeAnnealing:
		strat = annealingStrategy{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, in.Mode)
	}

	ctx := buildContext(start, days, in, minStaff)

	if minStaff > 0 {
		if capacity := ratioCapacity(ctx); capacity < float64(minStaff) {
			warnings = append(warnings, fmt.Sprintf(
				"configured rotations support on average %.1f people on base per day, below the minimum staffing of %d; generating best-effort roster",
				capacity, minStaff))
		}
	}

	grid, stratWarnings := strat.Plan(ctx)
	warnings = append(warnings, stratWarnings...)

	return formatResult(ctx, grid, warnings), nil
}

// ratioCapacity is the theoretical average daily headcount under the
// resolved rotations, used for the infeasibility advisory.
func ratioCapacity(ctx *Context) float64 {
	var total float64
	for _, p := range ctx.People {
		rot := ctx.Rotations[p.ID]
		cycle := rot.DaysBase + rot.DaysHome
		if cycle <= 0 {
			continue
		}
		total += float64(rot.DaysBase) / float64(cycle)
	}
	return total
}
