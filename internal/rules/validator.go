package rules

import (
	"errors"
	"fmt"
)

// ErrUnknownEdge is returned by [Catalog.Validate] when the candidate edge is
// not in the catalogue. A catalogue miss is a data error, distinct from a
// failed validation — it must never be reported as pass or fail.
var ErrUnknownEdge = errors.New("rules: unknown edge")

// Catalog maps edge name to its prerequisite expression. The engine treats it
// as immutable; callers build it once (see internal/catalog) and share it
// freely across goroutines.
type Catalog map[string]Expression

// Failure describes one unmet prerequisite clause.
type Failure struct {
	// Kind identifies which clause kind failed.
	Kind ClauseKind

	// Reason is the human-readable description, suitable for surfacing
	// verbatim in an audit report.
	Reason string

	// Expected and Actual carry the clause's requirement and the build's
	// value, for callers that want structured assertions instead of
	// string matching.
	Expected string
	Actual   string
}

// Result is the outcome of validating one build against one edge's
// prerequisites. Failures is ordered by clause position and is empty iff the
// build passes.
type Result struct {
	Failures []Failure
}

// Passed reports whether every clause was satisfied.
func (r Result) Passed() bool { return len(r.Failures) == 0 }

// Validate evaluates build against the prerequisite expression of the named
// edge. It returns [ErrUnknownEdge] (wrapped with the edge name) when the
// edge is not in the catalogue.
//
// Every clause is evaluated — the result carries one failure per unmet
// conjunctive clause and exactly one per unmet disjunctive group. Trait
// values are compared numerically as-is; enforcing the die-rank domain is the
// data source's responsibility.
func (c Catalog) Validate(build Build, edgeName string) (Result, error) {
	expr, ok := c[edgeName]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownEdge, edgeName)
	}
	return Evaluate(build, expr), nil
}

// Evaluate checks build against an expression directly, without a catalogue
// lookup. [Catalog.Validate] is the usual entry point; Evaluate exists for
// callers that already hold a parsed expression.
func Evaluate(build Build, expr Expression) Result {
	var res Result
	for _, clause := range expr.Clauses {
		switch cl := clause.(type) {
		case RankAtLeast:
			if build.Rank < cl.Min {
				res.Failures = append(res.Failures, Failure{
					Kind:     KindRank,
					Reason:   fmt.Sprintf("requires %s rank, character is %s", cl.Min, build.Rank),
					Expected: cl.Min.String(),
					Actual:   build.Rank.String(),
				})
			}
		case AttributeAtLeast:
			have := build.Attributes[cl.Attribute]
			if have < cl.Min {
				res.Failures = append(res.Failures, Failure{
					Kind:     KindAttribute,
					Reason:   fmt.Sprintf("requires %s d%d+, has %s", cl.Attribute, cl.Min, DieString(have)),
					Expected: fmt.Sprintf("%s d%d+", cl.Attribute, cl.Min),
					Actual:   DieString(have),
				})
			}
		case SkillAtLeast:
			have := build.Skills[cl.Skill]
			if have < cl.Min {
				res.Failures = append(res.Failures, Failure{
					Kind:     KindSkill,
					Reason:   fmt.Sprintf("requires %s d%d+, has %s", cl.Skill, cl.Min, DieString(have)),
					Expected: fmt.Sprintf("%s d%d+", cl.Skill, cl.Min),
					Actual:   DieString(have),
				})
			}
		case SkillOneOfAtLeast:
			if !anyAlternative(build, cl) {
				res.Failures = append(res.Failures, Failure{
					Kind:     KindSkillOneOf,
					Reason:   "requires one of: " + cl.String(),
					Expected: cl.String(),
					Actual:   groupActual(build, cl),
				})
			}
		case RequiresEdge:
			if !build.hasEdge(cl.Edge) {
				res.Failures = append(res.Failures, Failure{
					Kind:     KindEdge,
					Reason:   fmt.Sprintf("requires edge %q", cl.Edge),
					Expected: cl.Edge,
					Actual:   "not held",
				})
			}
		}
	}
	return res
}

// anyAlternative reports whether at least one group member meets its minimum.
func anyAlternative(build Build, group SkillOneOfAtLeast) bool {
	for _, alt := range group.Alternatives {
		if build.traitScore(alt.Name) >= alt.Min {
			return true
		}
	}
	return false
}

// groupActual formats the build's actual values for every group member, in
// group order, e.g. "Fighting d4, Shooting d4".
func groupActual(build Build, group SkillOneOfAtLeast) string {
	s := ""
	for i, alt := range group.Alternatives {
		if i > 0 {
			s += ", "
		}
		s += alt.Name + " " + DieString(build.traitScore(alt.Name))
	}
	return s
}
