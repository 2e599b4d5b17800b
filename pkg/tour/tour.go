package tour

import (
	"fmt"
	"strings"
)

// Tour is an ordered sequence of visited cities with its accumulated cost.
//
// Tours behave as immutable values: Extend and Close never modify the
// receiver's backing array, so a parent tour can back any number of pushed
// children at once. The visited prefix never repeats a city.
type Tour struct {
	cities []int
	cost   int
}

// Start returns a tour containing only the given home city. The backing
// array is sized for a complete closed tour over n cities (n+1 entries), so
// descendants never reallocate beyond the final capacity.
func Start(home, n int) Tour {
	cities := make([]int, 1, n+1)
	cities[0] = home
	return Tour{cities: cities}
}

// Extend returns a new tour equal to t plus city appended and cost
// incremented by edgeCost. The receiver is left untouched.
func (t Tour) Extend(city, edgeCost int) Tour {
	cities := make([]int, len(t.cities)+1, cap(t.cities))
	copy(cities, t.cities)
	cities[len(t.cities)] = city
	return Tour{cities: cities, cost: t.cost + edgeCost}
}

// Close returns the complete closed tour: t plus the home city appended and
// the closing edge cost added. Call only on a tour that has visited every
// city.
func (t Tour) Close(home, closingCost int) Tour {
	return t.Extend(home, closingCost)
}

// Contains reports whether city appears in the visited prefix.
// Linear scan; tours are short-lived and at most n+1 long.
func (t Tour) Contains(city int) bool {
	for _, c := range t.cities {
		if c == city {
			return true
		}
	}
	return false
}

// Complete reports whether the tour has visited all n cities
// (the closing edge back home is not yet part of the sequence).
func (t Tour) Complete(n int) bool { return len(t.cities) == n }

// Len returns the number of cities visited so far.
func (t Tour) Len() int { return len(t.cities) }

// Cost returns the accumulated cost of the edges traversed so far.
func (t Tour) Cost() int { return t.cost }

// Last returns the most recently visited city.
func (t Tour) Last() int { return t.cities[len(t.cities)-1] }

// Cities returns a copy of the visited city sequence.
func (t Tour) Cities() []int {
	out := make([]int, len(t.cities))
	copy(out, t.cities)
	return out
}

// String renders the visited sequence as space-separated city indices,
// e.g. "0 1 3 2 0".
func (t Tour) String() string {
	var b strings.Builder
	for i, c := range t.cities {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", c)
	}
	return b.String()
}
