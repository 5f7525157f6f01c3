package roster

import (
	"math"
	"math/rand"
	"time"
)

// Annealing weights. Constraint breaks dominate; the soft terms trade
// fatigue, fragmentation, uneven daily capacity, and equity against each
// other.
const (
	annealConstraintPenalty = 5000.0
	annealFatiguePenalty    = 40.0 // per base day beyond the rotation's base segment
	annealFragmentPenalty   = 60.0 // per home block shorter than the rotation's home segment
	annealVariancePenalty   = 8.0  // daily headcount variance
	annealEquityPenalty     = 12.0 // spread of total base days across people

	annealIterations = 20000
	annealStartTemp  = 400.0
	annealCooling    = 0.9995
)

// annealingStrategy is the alternate cost-minimizer: simulated annealing
// over single-cell flips. Output is valid but not deterministic; it is
// selectable as its own mode and documented to differ from the canonical
// offset-search strategy.
type annealingStrategy struct{}

func (annealingStrategy) Name() string { return "annealing" }

func (s annealingStrategy) Plan(ctx *Context) (Grid, []string) {
	if len(ctx.People) == 0 || ctx.Days == 0 {
		return make(Grid), nil
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Start from the spread seed so the search begins near a sane roster.
	grid := minStaffStrategy{}.seed(ctx)

	cost := s.cost(ctx, grid)
	best := cloneGrid(grid)
	bestCost := cost

	temp := annealStartTemp
	for i := 0; i < annealIterations; i++ {
		p := ctx.People[r.Intn(len(ctx.People))]
		d := r.Intn(ctx.Days)

		grid[p.ID][d] = !grid[p.ID][d]
		next := s.cost(ctx, grid)
		delta := next - cost

		if delta <= 0 || r.Float64() < math.Exp(-delta/temp) {
			cost = next
			if cost < bestCost {
				bestCost = cost
				best = cloneGrid(grid)
			}
		} else {
			grid[p.ID][d] = !grid[p.ID][d] // revert
		}
		temp *= annealCooling
	}

	return best, nil
}

func (s annealingStrategy) cost(ctx *Context, grid Grid) float64 {
	total := 0.0
	headcount := make([]int, ctx.Days)

	loads := make([]int, 0, len(ctx.People))
	for _, p := range ctx.People {
		days := grid[p.ID]
		rot := ctx.Rotations[p.ID]
		blocked := ctx.Blocked[p.ID]

		baseRun, homeRun := 0, 0
		load := 0
		for d := 0; d < ctx.Days; d++ {
			if days[d] {
				headcount[d]++
				load++
				if blocked[d] {
					total += annealConstraintPenalty
				}
				if homeRun > 0 && rot.DaysHome > 0 && homeRun < rot.DaysHome {
					total += annealFragmentPenalty // home block ended short
				}
				homeRun = 0
				baseRun++
				if rot.DaysBase > 0 && baseRun > rot.DaysBase {
					total += annealFatiguePenalty
				}
			} else {
				baseRun = 0
				homeRun++
			}
		}
		loads = append(loads, load)
	}

	total += annealVariancePenalty * variance(headcount)
	total += annealEquityPenalty * variance(loads)
	if ctx.MinStaff > 0 {
		for _, c := range headcount {
			if c < ctx.MinStaff {
				total += annealConstraintPenalty * float64(ctx.MinStaff-c)
			}
		}
	}
	return total
}

func variance(xs []int) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}
	mean := sum / float64(len(xs))
	var v float64
	for _, x := range xs {
		diff := float64(x) - mean
		v += diff * diff
	}
	return v / float64(len(xs))
}

func cloneGrid(grid Grid) Grid {
	out := make(Grid, len(grid))
	for id, days := range grid {
		out[id] = append([]bool(nil), days...)
	}
	return out
}
