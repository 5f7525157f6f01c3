package roster

import (
	"fmt"
)

const (
	seedDaysBase   = 8  // staggered seed cycle: 8 on base,
	seedDaysHome   = 6  // 6 at home, spread across phase
	maxRepairPass  = 200
	releaseHeadway = 2 // shed constrained people only above floor+2
)

// minStaffStrategy guarantees a minimum daily headcount. It seeds a
// spread rotation, repairs under- and over-staffed days iteratively, and
// finishes with an unconditional iron-floor pass that meets the floor
// even if hard constraints must be broken; every break is warned about.
type minStaffStrategy struct {
	Floor int
}

func (minStaffStrategy) Name() string { return "min_staff" }

func (s minStaffStrategy) Plan(ctx *Context) (Grid, []string) {
	grid := s.seed(ctx)

	// The seed starts out constraint-honoring; only the iron floor may
	// put someone on a blocked day, and it warns when it does.
	for _, p := range ctx.People {
		for d := 0; d < ctx.Days; d++ {
			if grid[p.ID][d] && ctx.Blocked[p.ID][d] {
				grid[p.ID][d] = false
			}
		}
	}

	s.repair(ctx, grid)
	warnings := s.ironFloor(ctx, grid)
	return grid, warnings
}

// seed staggers everyone on an 8-on/6-off cycle with phases spread evenly,
// so roughly half the roster is present on any given day.
func (minStaffStrategy) seed(ctx *Context) Grid {
	cycle := seedDaysBase + seedDaysHome
	n := len(ctx.People)
	grid := make(Grid, n)
	for i, p := range ctx.People {
		offset := 0
		if n > 0 {
			offset = (i * cycle) / n
		}
		days := make([]bool, ctx.Days)
		for d := 0; d < ctx.Days; d++ {
			days[d] = (d+offset)%cycle < seedDaysBase
		}
		grid[p.ID] = days
	}
	return grid
}

// repair runs up to maxRepairPass local-repair sweeps, stopping early on a
// pass with zero changes. Under-staffed days pull in the least-burdened
// person without a constraint that day; days above floor+headway release
// a constrained base person.
func (s minStaffStrategy) repair(ctx *Context, grid Grid) {
	for pass := 0; pass < maxRepairPass; pass++ {
		changed := false
		for d := 0; d < ctx.Days; d++ {
			count := dayHeadcount(ctx, grid, d)

			for count < s.Floor {
				id := s.pickPullIn(ctx, grid, d)
				if id == "" {
					break // only constrained people left; iron floor handles it
				}
				grid[id][d] = true
				count++
				changed = true
			}

			if count > s.Floor+releaseHeadway {
				for _, p := range ctx.People {
					if grid[p.ID][d] && ctx.Blocked[p.ID][d] {
						grid[p.ID][d] = false
						changed = true
						break
					}
				}
			}
		}
		if !changed {
			break
		}
	}
}

// pickPullIn finds the home person with the fewest assigned days who has
// no hard constraint on day d. Empty string when nobody qualifies.
func (minStaffStrategy) pickPullIn(ctx *Context, grid Grid, d int) string {
	best := ""
	bestLoad := 0
	for _, p := range ctx.People {
		if grid[p.ID][d] || ctx.Blocked[p.ID][d] {
			continue
		}
		load := totalAssigned(grid[p.ID])
		if best == "" || load < bestLoad {
			best, bestLoad = p.ID, load
		}
	}
	return best
}

// ironFloor unconditionally enforces the headcount floor. People are
// forced on lowest-cumulative-load first; forcing someone onto a blocked
// day records a warning naming the person, day, and reason.
func (s minStaffStrategy) ironFloor(ctx *Context, grid Grid) []string {
	var warnings []string
	for d := 0; d < ctx.Days; d++ {
		for dayHeadcount(ctx, grid, d) < s.Floor {
			best := ""
			bestLoad := 0
			for _, p := range ctx.People {
				if grid[p.ID][d] {
					continue
				}
				load := totalAssigned(grid[p.ID])
				if best == "" || load < bestLoad {
					best, bestLoad = p.ID, load
				}
			}
			if best == "" {
				warnings = append(warnings, fmt.Sprintf(
					"day %s cannot reach minimum staffing of %d: all %d people already on base",
					ctx.DateOf(d), s.Floor, len(ctx.People)))
				break
			}
			grid[best][d] = true
			if ctx.Blocked[best][d] {
				p, _ := ctx.PersonByID(best)
				warnings = append(warnings, fmt.Sprintf(
					"minimum staffing forced %s onto base on %s despite a blocking constraint",
					p.Name, ctx.DateOf(d)))
			}
		}
	}
	return warnings
}

func dayHeadcount(ctx *Context, grid Grid, d int) int {
	count := 0
	for _, p := range ctx.People {
		if grid[p.ID][d] {
			count++
		}
	}
	return count
}

func totalAssigned(days []bool) int {
	total := 0
	for _, on := range days {
		if on {
			total++
		}
	}
	return total
}
