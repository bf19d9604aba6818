package rules_test

import (
	"reflect"
	"testing"

	"github.com/diceforge/npcdb/internal/rules"
)

func TestParseRequirements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rank string
		text string
		want []rules.Clause
	}{
		{
			name: "empty requirements",
			text: "",
			want: nil,
		},
		{
			name: "rank only",
			rank: "Seasoned",
			want: []rules.Clause{rules.RankAtLeast{Min: rules.Seasoned}},
		},
		{
			name: "single skill",
			text: "Fighting d6+",
			want: []rules.Clause{rules.SkillAtLeast{Skill: "Fighting", Min: 6}},
		},
		{
			name: "attribute and skill conjunction",
			rank: "Novice",
			text: "AB (Miracles), Spirit d8+, Fighting d6+",
			want: []rules.Clause{
				rules.RankAtLeast{Min: rules.Novice},
				rules.RequiresEdge{Edge: "AB (Miracles)"},
				rules.AttributeAtLeast{Attribute: rules.Spirit, Min: 8},
				rules.SkillAtLeast{Skill: "Fighting", Min: 6},
			},
		},
		{
			name: "disjunctive skill group",
			text: "Fighting d6+ or Shooting d6+",
			want: []rules.Clause{
				rules.SkillOneOfAtLeast{Alternatives: []rules.TraitMin{
					{Name: "Fighting", Min: 6},
					{Name: "Shooting", Min: 6},
				}},
			},
		},
		{
			name: "disjunctive group mixing attributes and skills",
			text: "Smarts d6+ or Agility d6+, trade skill d6+",
			want: []rules.Clause{
				rules.SkillOneOfAtLeast{Alternatives: []rules.TraitMin{
					{Name: "Smarts", Min: 6},
					{Name: "Agility", Min: 6},
				}},
				rules.SkillAtLeast{Skill: "trade skill", Min: 6},
			},
		},
		{
			name: "parenthetical qualifier after die is discarded",
			text: "Piloting d8+ or Riding d8+ (flying mount)",
			want: []rules.Clause{
				rules.SkillOneOfAtLeast{Alternatives: []rules.TraitMin{
					{Name: "Piloting", Min: 8},
					{Name: "Riding", Min: 8},
				}},
			},
		},
		{
			name: "required edge by name",
			text: "Dirty Fighter",
			want: []rules.Clause{rules.RequiresEdge{Edge: "Dirty Fighter"}},
		},
		{
			name: "lowercase skill names",
			text: "AB, arcane skill d8+",
			want: []rules.Clause{
				rules.RequiresEdge{Edge: "AB"},
				rules.SkillAtLeast{Skill: "arcane skill", Min: 8},
			},
		},
		{
			name: "group with edge alternative degrades to raw edge clause",
			text: "AB, Spirit d6+ or Beast Bond",
			want: []rules.Clause{
				rules.RequiresEdge{Edge: "AB"},
				rules.RequiresEdge{Edge: "Spirit d6+ or Beast Bond"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			expr, err := rules.ParseRequirements(tc.rank, tc.text)
			if err != nil {
				t.Fatalf("ParseRequirements(%q, %q): unexpected error: %v", tc.rank, tc.text, err)
			}
			if !reflect.DeepEqual(expr.Clauses, tc.want) {
				t.Fatalf("ParseRequirements(%q, %q):\n got %#v\nwant %#v", tc.rank, tc.text, expr.Clauses, tc.want)
			}
		})
	}

	t.Run("invalid rank is an error", func(t *testing.T) {
		t.Parallel()
		if _, err := rules.ParseRequirements("Epic", ""); err == nil {
			t.Fatal("ParseRequirements: expected error for invalid rank")
		}
	})
}

func TestParseDie(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
	}{
		{"d8", 8},
		{"8", 8},
		{"D12", 12},
		{"d6+", 6},
		{" d4 ", 4},
	}
	for _, tc := range tests {
		got, err := rules.ParseDie(tc.in)
		if err != nil {
			t.Fatalf("ParseDie(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseDie(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}

	if _, err := rules.ParseDie("eight"); err == nil {
		t.Fatal("ParseDie: expected error for non-numeric die")
	}
}

func TestRankOrdering(t *testing.T) {
	t.Parallel()

	order := []rules.Rank{rules.Novice, rules.Seasoned, rules.Veteran, rules.Heroic, rules.Legendary}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Fatalf("rank ordering broken: %s >= %s", order[i-1], order[i])
		}
	}

	r, err := rules.ParseRank("Veteran")
	if err != nil {
		t.Fatalf("ParseRank: unexpected error: %v", err)
	}
	if r != rules.Veteran {
		t.Fatalf("ParseRank(Veteran) = %v", r)
	}
}
