package rules

import (
	"fmt"
	"strings"
)

// ClauseKind tags the legal prerequisite clause kinds.
type ClauseKind string

const (
	KindRank       ClauseKind = "rank"
	KindAttribute  ClauseKind = "attribute"
	KindSkill      ClauseKind = "skill"
	KindSkillOneOf ClauseKind = "skill_one_of"
	KindEdge       ClauseKind = "edge"
)

// Clause is one prerequisite condition. The concrete types are [RankAtLeast],
// [AttributeAtLeast], [SkillAtLeast], [SkillOneOfAtLeast], and [RequiresEdge];
// the set is sealed so the evaluator can dispatch exhaustively.
type Clause interface {
	// Kind returns the clause's tag.
	Kind() ClauseKind

	// sealed prevents clause kinds being defined outside this package.
	sealed()
}

// RankAtLeast requires the build's rank to be at or above Min.
type RankAtLeast struct {
	Min Rank
}

func (RankAtLeast) Kind() ClauseKind { return KindRank }
func (RankAtLeast) sealed()          {}

// AttributeAtLeast requires one attribute to meet a minimum die.
type AttributeAtLeast struct {
	Attribute Attribute
	Min       int
}

func (AttributeAtLeast) Kind() ClauseKind { return KindAttribute }
func (AttributeAtLeast) sealed()          {}

// SkillAtLeast requires one skill to meet a minimum die. A build without the
// skill scores zero and fails any positive minimum.
type SkillAtLeast struct {
	Skill string
	Min   int
}

func (SkillAtLeast) Kind() ClauseKind { return KindSkill }
func (SkillAtLeast) sealed()          {}

// TraitMin is one alternative inside a [SkillOneOfAtLeast] group. Name may be
// a skill or an attribute — catalogue text mixes both in disjunctive groups.
type TraitMin struct {
	Name string
	Min  int
}

// String formats the alternative in catalogue notation: "Fighting d6+".
func (t TraitMin) String() string {
	return fmt.Sprintf("%s d%d+", t.Name, t.Min)
}

// SkillOneOfAtLeast is a disjunctive group: it is satisfied when at least one
// alternative meets its minimum. A failed group produces exactly one failure
// naming the whole group, never one per member.
type SkillOneOfAtLeast struct {
	Alternatives []TraitMin
}

func (SkillOneOfAtLeast) Kind() ClauseKind { return KindSkillOneOf }
func (SkillOneOfAtLeast) sealed()          {}

// String formats the group in catalogue notation: "Fighting d6+ or Shooting d6+".
func (c SkillOneOfAtLeast) String() string {
	parts := make([]string, len(c.Alternatives))
	for i, alt := range c.Alternatives {
		parts[i] = alt.String()
	}
	return strings.Join(parts, " or ")
}

// RequiresEdge requires the build to already hold a named edge. Arcane
// background markers ("AB", "AB (Magic)") are kept verbatim as edge names.
type RequiresEdge struct {
	Edge string
}

func (RequiresEdge) Kind() ClauseKind { return KindEdge }
func (RequiresEdge) sealed()          {}

// Expression is the full prerequisite expression for one edge: an ordered
// sequence of clauses, all of which must hold. Disjunction exists only inside
// a [SkillOneOfAtLeast] group.
type Expression struct {
	Clauses []Clause
}

// Empty reports whether the expression has no clauses. Every build satisfies
// an empty expression.
func (e Expression) Empty() bool { return len(e.Clauses) == 0 }
