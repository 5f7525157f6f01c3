package roster

import (
	"sort"

	"github.com/arnavshah/roster-api-go/pkg/models"
)

// Scoring weights for the phase-offset search.
const (
	scoreHistoryMatch  = 500   // offset continues the person's recent streak
	scoreBlockedOnHome = 1000  // a blocked day lands on home
	scoreBlockedOnBase = -5000 // a blocked day lands on base
)

// ratioStrategy searches, per person, every phase offset of their rotation
// cycle and commits the best-scoring one. People are processed in
// constraint-count-descending order so the most-constrained commit first;
// a shared running headcount tally provides quadratic load balancing.
type ratioStrategy struct{}

func (ratioStrategy) Name() string { return "ratio" }

func (ratioStrategy) Plan(ctx *Context) (Grid, []string) {
	// Most-constrained people commit first. Stable sort keeps input order
	// as the tiebreak, which makes the strategy deterministic.
	order := make([]models.Person, len(ctx.People))
	copy(order, ctx.People)
	sort.SliceStable(order, func(i, j int) bool {
		return len(ctx.Blocked[order[i].ID]) > len(ctx.Blocked[order[j].ID])
	})

	grid := make(Grid, len(ctx.People))
	headcount := make([]int, ctx.Days)

	for _, p := range order {
		rot := ctx.Rotations[p.ID]
		effBase, effHome := effectiveSplit(rot)
		cycle := effBase + effHome
		blocked := ctx.Blocked[p.ID]

		if cycle <= 0 || effHome == 0 {
			// Degenerate rotation: base every day, minus blocked days.
			days := make([]bool, ctx.Days)
			for d := 0; d < ctx.Days; d++ {
				if !blocked[d] {
					days[d] = true
					headcount[d]++
				}
			}
			grid[p.ID] = days
			continue
		}

		histOffset := historyOffset(ctx.History, p.ID, effBase, cycle)

		bestOffset, bestScore := 0, 0
		for offset := 0; offset < cycle; offset++ {
			score := scoreOffset(ctx.Days, offset, effBase, cycle, histOffset, blocked, headcount)
			if offset == 0 || score > bestScore {
				bestOffset, bestScore = offset, score
			}
		}

		days := make([]bool, ctx.Days)
		for d := 0; d < ctx.Days; d++ {
			if (d+bestOffset)%cycle < effBase {
				days[d] = true
				headcount[d]++
			}
		}
		// Constraints always win over the cycle pattern.
		for d := 0; d < ctx.Days; d++ {
			if days[d] && blocked[d] {
				days[d] = false
				headcount[d]--
			}
		}
		grid[p.ID] = days
	}

	return grid, nil
}

// effectiveSplit converts one base day into a home day when the home
// segment is non-zero, modeling a guaranteed transition day out.
func effectiveSplit(rot models.RotationConfig) (base, home int) {
	base, home = rot.DaysBase, rot.DaysHome
	if home > 0 && base > 0 {
		base--
		home++
	}
	return base, home
}

// historyOffset derives the phase offset that makes day 0 continue the
// person's recorded streak. Returns -1 without history.
func historyOffset(history map[string]models.PersonHistory, personID string, effBase, cycle int) int {
	h, ok := history[personID]
	if !ok || h.ConsecutiveDays <= 0 {
		return -1
	}
	switch h.LastStatus {
	case models.StatusBase:
		return h.ConsecutiveDays % cycle
	case models.StatusHome:
		return (effBase + h.ConsecutiveDays) % cycle
	}
	return -1
}

// scoreOffset is the pure scoring function for one candidate phase offset.
// The running headcount is read, never written.
func scoreOffset(days, offset, effBase, cycle, histOffset int, blocked map[int]bool, headcount []int) int {
	score := 0
	if offset == histOffset {
		score += scoreHistoryMatch
	}
	for d := 0; d < days; d++ {
		onBase := (d+offset)%cycle < effBase
		if blocked[d] {
			if onBase {
				score += scoreBlockedOnBase
			} else {
				score += scoreBlockedOnHome
			}
		}
		if onBase {
			score -= headcount[d] * headcount[d]
		}
	}
	return score
}
