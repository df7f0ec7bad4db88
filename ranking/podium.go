package ranking

import (
	"sargalayam/repository"
)

// Podium is the top three of a single program. A nil entry means no winner
// was recorded for that position, which is distinct from a winner with empty
// fields; poster templates rely on that distinction to render placeholders.
type Podium struct {
	First  *repository.Result
	Second *repository.Result
	Third  *repository.Result
}

// PodiumOf extracts the podium from results already scoped to one
// (event, category, year) group. For each position the first match in input
// order wins; duplicate positions are tolerated data-quality noise, and
// entries at positions outside 1-3 are ignored.
func PodiumOf(results []*repository.Result) Podium {
	return Podium{
		First:  winnerAt(results, 1),
		Second: winnerAt(results, 2),
		Third:  winnerAt(results, 3),
	}
}

func winnerAt(results []*repository.Result, position int) *repository.Result {
	for _, r := range results {
		if r.Position == position {
			return r
		}
	}
	return nil
}

// At returns the winner for positions 1-3, nil otherwise.
func (p Podium) At(position int) *repository.Result {
	switch position {
	case 1:
		return p.First
	case 2:
		return p.Second
	case 3:
		return p.Third
	}
	return nil
}
