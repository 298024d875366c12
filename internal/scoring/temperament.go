// Package scoring derives a temperament classification from quiz answers.
package scoring

import (
	"math"
	"sort"

	"github.com/kamau/career-compass/internal/types"
)

// ComputeTemperament aggregates answer codes into a percentage breakdown and
// the primary/secondary temperament labels. totalQuestions is the number of
// questions presented, not the number answered; percentages are taken over
// max(1, totalQuestions), so incomplete answer sets (or codes outside A-D,
// which are ignored) leave the four percentages summing to less than 100.
// That under-counting is intentional and must not be renormalized away.
//
// Pure function: deterministic for identical inputs, no side effects.
func ComputeTemperament(answers types.AnswerMap, totalQuestions int) *types.TemperamentResult {
	counts := make(map[types.Temperament]int, len(types.Temperaments))
	for _, code := range answers {
		if t := types.TemperamentForCode(code); t != "" {
			counts[t]++
		}
	}

	total := totalQuestions
	if total < 1 {
		total = 1
	}

	percents := make(map[types.Temperament]int, len(types.Temperaments))
	for _, t := range types.Temperaments {
		percents[t] = int(math.Round(float64(counts[t]) / float64(total) * 100))
	}

	// Sort descending by percent. The stable sort keeps the declaration
	// order Sanguine, Choleric, Melancholic, Phlegmatic as the tie-break.
	ranked := make([]types.Temperament, len(types.Temperaments))
	copy(ranked, types.Temperaments)
	sort.SliceStable(ranked, func(i, j int) bool {
		return percents[ranked[i]] > percents[ranked[j]]
	})

	result := &types.TemperamentResult{
		Percents: percents,
		Primary:  ranked[0],
	}
	if percents[ranked[1]] > 0 {
		result.Secondary = ranked[1]
	}
	return result
}
