package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// traitPattern matches one trait requirement in catalogue notation:
// "Fighting d6+", "arcane skill d8+", "Riding d8+ (flying mount)".
// A trailing parenthetical qualifier is accepted and discarded.
var traitPattern = regexp.MustCompile(`^(.+?)\s+d(\d+)\+?(?:\s*\(.*\))?$`)

// ParseRequirements converts a catalogue entry's minimum rank and free-text
// requirement string into an [Expression].
//
// The grammar follows the catalogue conventions:
//
//   - commas separate conjunctive clauses;
//   - " or " inside one clause forms a disjunctive group;
//   - "<Name> d<N>+" is an attribute minimum when Name is one of the five
//     attributes, otherwise a skill minimum;
//   - a clause with no die notation is a required edge, kept verbatim
//     (this covers arcane backgrounds: "AB", "AB (Miracles)").
//
// A clause that cannot be parsed degrades to a required edge on its raw text
// rather than being dropped — the validator then reports it as unmet, which
// surfaces the malformed entry in the audit instead of hiding it.
//
// rank may be empty; otherwise it must be a valid rank name.
func ParseRequirements(rank, text string) (Expression, error) {
	var expr Expression

	if rank != "" {
		min, err := ParseRank(rank)
		if err != nil {
			return Expression{}, fmt.Errorf("rules: parse requirements: %w", err)
		}
		expr.Clauses = append(expr.Clauses, RankAtLeast{Min: min})
	}

	for _, raw := range strings.Split(text, ",") {
		frag := strings.TrimSpace(raw)
		if frag == "" {
			continue
		}

		if strings.Contains(frag, " or ") {
			if group, ok := parseGroup(frag); ok {
				expr.Clauses = append(expr.Clauses, group)
				continue
			}
			// Mixed trait/edge alternatives ("Spirit d6+ or Beast
			// Bond") cannot be expressed as a trait group; keep the
			// raw text as a required edge so the audit flags it.
			expr.Clauses = append(expr.Clauses, RequiresEdge{Edge: frag})
			continue
		}

		if tm, ok := parseTrait(frag); ok {
			if attr, isAttr := IsAttribute(tm.Name); isAttr {
				expr.Clauses = append(expr.Clauses, AttributeAtLeast{Attribute: attr, Min: tm.Min})
			} else {
				expr.Clauses = append(expr.Clauses, SkillAtLeast{Skill: tm.Name, Min: tm.Min})
			}
			continue
		}

		expr.Clauses = append(expr.Clauses, RequiresEdge{Edge: frag})
	}

	return expr, nil
}

// parseGroup parses a disjunctive clause ("Fighting d6+ or Shooting d6+").
// Every alternative must parse as a trait minimum.
func parseGroup(frag string) (SkillOneOfAtLeast, bool) {
	parts := strings.Split(frag, " or ")
	group := SkillOneOfAtLeast{Alternatives: make([]TraitMin, 0, len(parts))}
	for _, p := range parts {
		tm, ok := parseTrait(strings.TrimSpace(p))
		if !ok {
			return SkillOneOfAtLeast{}, false
		}
		group.Alternatives = append(group.Alternatives, tm)
	}
	return group, true
}

// parseTrait parses "<Name> d<N>+" into a [TraitMin].
func parseTrait(frag string) (TraitMin, bool) {
	m := traitPattern.FindStringSubmatch(frag)
	if m == nil {
		return TraitMin{}, false
	}
	min, err := strconv.Atoi(m[2])
	if err != nil {
		return TraitMin{}, false
	}
	return TraitMin{Name: strings.TrimSpace(m[1]), Min: min}, true
}
