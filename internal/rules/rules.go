// Package rules implements the Savage Worlds prerequisite rule engine used by
// the edge audit.
//
// An edge's prerequisites are modelled as an ordered [Expression] of tagged
// clauses (minimum rank, attribute minimums, skill minimums, disjunctive
// skill groups, required edges). [Catalog.Validate] evaluates a [Build]
// against the expression attached to a named edge and reports every unmet
// clause — it never stops at the first failure, so an audit report can show
// the complete set of missing requirements.
//
// Catalogue requirement text ("AB (Miracles), Spirit d8+, Fighting d6+") is
// converted into an [Expression] by [ParseRequirements].
//
// The engine is pure: it holds no state, performs no I/O, and is safe to call
// concurrently on independent inputs.
package rules

import (
	"fmt"
	"strconv"
	"strings"
)

// DieRanks is the ordered set of legal trait die sizes. A trait value of N
// satisfies a required minimum M iff N >= M. Zero means the trait is absent
// and fails any positive minimum.
var DieRanks = []int{4, 6, 8, 10, 12}

// DieString formats a die value for display: 8 -> "d8". Zero or negative
// values render as "—", matching the stat-block convention for absent traits.
func DieString(die int) string {
	if die > 0 {
		return "d" + strconv.Itoa(die)
	}
	return "—"
}

// ParseDie converts a die notation string to its integer value: "d8" -> 8,
// "8" -> 8. Case-insensitive; a trailing "+" is ignored ("d6+" -> 6).
func ParseDie(s string) (int, error) {
	t := strings.TrimSuffix(strings.TrimSpace(strings.ToLower(s)), "+")
	t = strings.TrimPrefix(t, "d")
	n, err := strconv.Atoi(t)
	if err != nil {
		return 0, fmt.Errorf("rules: invalid die %q", s)
	}
	return n, nil
}

// Attribute names one of the five character attributes.
type Attribute string

const (
	Agility  Attribute = "Agility"
	Smarts   Attribute = "Smarts"
	Spirit   Attribute = "Spirit"
	Strength Attribute = "Strength"
	Vigor    Attribute = "Vigor"
)

// Attributes lists the five attributes in stat-block order.
var Attributes = []Attribute{Agility, Smarts, Spirit, Strength, Vigor}

// IsAttribute reports whether name (case-insensitive) is one of the five
// attribute names.
func IsAttribute(name string) (Attribute, bool) {
	for _, a := range Attributes {
		if strings.EqualFold(name, string(a)) {
			return a, true
		}
	}
	return "", false
}

// Build is the character data evaluated against an edge's prerequisites. It
// is constructed per validation call from externally supplied record data and
// is never mutated by the engine.
type Build struct {
	// Rank is the character's current advancement tier.
	Rank Rank

	// Attributes maps attribute to die value. A missing attribute counts
	// as zero.
	Attributes map[Attribute]int

	// Skills maps skill name (case-sensitive) to die value. A missing
	// skill counts as zero.
	Skills map[string]int

	// Edges lists the edges the character already holds.
	Edges []string
}

// traitScore resolves a trait name to its die value, checking attributes
// first and then skills. Disjunctive groups in catalogue text mix the two
// ("Smarts d6+ or Agility d6+"), so group members resolve against both.
func (b Build) traitScore(name string) int {
	if attr, ok := IsAttribute(name); ok {
		return b.Attributes[attr]
	}
	return b.Skills[name]
}

// hasEdge reports whether the build already holds the named edge
// (case-sensitive, matching catalogue identity).
func (b Build) hasEdge(name string) bool {
	for _, e := range b.Edges {
		if e == name {
			return true
		}
	}
	return false
}
