package catalog_test

import (
	"testing"

	"github.com/diceforge/npcdb/internal/catalog"
	"github.com/diceforge/npcdb/internal/rules"
)

func TestCompile(t *testing.T) {
	t.Parallel()

	cat, err := catalog.Compile()
	if err != nil {
		t.Fatalf("Compile: unexpected error: %v", err)
	}
	if len(cat) == 0 {
		t.Fatal("Compile: empty catalogue")
	}

	// Every embedded edge must have an expression.
	for _, e := range catalog.Edges(catalog.EdgeFilter{}) {
		if _, ok := cat[e.Name]; !ok {
			t.Errorf("Compile: edge %q missing from compiled catalogue", e.Name)
		}
	}
}

func TestCompileDisjunctiveGroups(t *testing.T) {
	t.Parallel()

	cat, err := catalog.Compile()
	if err != nil {
		t.Fatalf("Compile: unexpected error: %v", err)
	}

	// Caravan Guard is the canonical "Fighting d6+ or Shooting d6+" entry.
	// A character with only Shooting d6 must qualify.
	build := rules.Build{
		Skills: map[string]int{"Shooting": 6},
	}
	res, err := cat.Validate(build, "Caravan Guard")
	if err != nil {
		t.Fatalf("Validate: unexpected error: %v", err)
	}
	if !res.Passed() {
		t.Fatalf("Validate: Shooting d6 alone must satisfy Caravan Guard, got %+v", res.Failures)
	}

	// Neither skill: exactly one group failure plus nothing else (rank
	// Novice always passes).
	res, err = cat.Validate(rules.Build{}, "Caravan Guard")
	if err != nil {
		t.Fatalf("Validate: unexpected error: %v", err)
	}
	if len(res.Failures) != 1 || res.Failures[0].Kind != rules.KindSkillOneOf {
		t.Fatalf("Validate: expected one group failure, got %+v", res.Failures)
	}
}

func TestEdgesFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter catalog.EdgeFilter
		check  func(t *testing.T, got []catalog.Edge)
	}{
		{
			name:   "by source",
			filter: catalog.EdgeFilter{Source: catalog.SourceAmmaria},
			check: func(t *testing.T, got []catalog.Edge) {
				if len(got) == 0 {
					t.Fatal("no Ammaria edges")
				}
				for _, e := range got {
					if e.Source != catalog.SourceAmmaria {
						t.Fatalf("edge %q has source %q", e.Name, e.Source)
					}
				}
			},
		},
		{
			name:   "by rank and type",
			filter: catalog.EdgeFilter{Rank: "Seasoned", Type: "Combat"},
			check: func(t *testing.T, got []catalog.Edge) {
				for _, e := range got {
					if e.Rank != "Seasoned" || e.Type != "Combat" {
						t.Fatalf("edge %q is %s/%s", e.Name, e.Rank, e.Type)
					}
				}
			},
		},
		{
			name:   "empty filter returns everything",
			filter: catalog.EdgeFilter{},
			check: func(t *testing.T, got []catalog.Edge) {
				if len(got) < 50 {
					t.Fatalf("expected full catalogue, got %d entries", len(got))
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tc.check(t, catalog.Edges(tc.filter))
		})
	}
}

func TestLookupEdge(t *testing.T) {
	t.Parallel()

	e, ok := catalog.LookupEdge("Wind Rider")
	if !ok {
		t.Fatal("LookupEdge: Wind Rider not found")
	}
	if e.Source != catalog.SourceConcordium {
		t.Fatalf("LookupEdge: Wind Rider source = %q", e.Source)
	}

	if _, ok := catalog.LookupEdge("Nonexistent Edge"); ok {
		t.Fatal("LookupEdge: expected miss for unknown edge")
	}
}

func TestHindrancesAndPowersFilters(t *testing.T) {
	t.Parallel()

	for _, h := range catalog.Hindrances("", "Major") {
		if h.Severity != "Major" {
			t.Fatalf("hindrance %q severity = %q", h.Name, h.Severity)
		}
	}

	novice := catalog.Powers(catalog.SourceCore, "Novice")
	if len(novice) == 0 {
		t.Fatal("no Novice core powers")
	}
	for _, p := range novice {
		if p.Rank != "Novice" || p.Source != catalog.SourceCore {
			t.Fatalf("power %q is %s/%s", p.Name, p.Source, p.Rank)
		}
	}
}
