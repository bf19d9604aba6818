package rules

import "fmt"

// Rank is a character advancement tier. Ranks are ordered: Novice < Seasoned
// < Veteran < Heroic < Legendary. The zero value is Novice.
type Rank int

const (
	Novice Rank = iota
	Seasoned
	Veteran
	Heroic
	Legendary
)

var rankNames = [...]string{"Novice", "Seasoned", "Veteran", "Heroic", "Legendary"}

// String returns the display name of the rank. Out-of-range values format as
// "Rank(n)".
func (r Rank) String() string {
	if r < Novice || int(r) >= len(rankNames) {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// ParseRank converts a rank display name to its ordinal value.
// The comparison is exact — catalogue and record data use canonical casing.
func ParseRank(s string) (Rank, error) {
	for i, name := range rankNames {
		if s == name {
			return Rank(i), nil
		}
	}
	return Novice, fmt.Errorf("rules: invalid rank %q", s)
}
