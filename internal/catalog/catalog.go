// Package catalog holds the embedded character-option catalogues for the
// Tribute Lands setting: edges, hindrances, powers, and equipment, each
// tagged with the sourcebook it was published in.
//
// The catalogues are append-only reference data maintained alongside the
// regional supplements. [Edges], [Hindrances], [Powers], [Weapons], [Armor],
// and [Gear] return filtered views; [Compile] parses every edge's
// requirement text into a [rules.Catalog] for the prerequisite validator.
package catalog

import (
	"fmt"

	"github.com/diceforge/npcdb/internal/rules"
)

// Known sourcebooks, in publication order.
const (
	SourceCore             = "Core"
	SourceFantasyCompanion = "Fantasy Companion"
	SourceAmmaria          = "Ammaria"
	SourceSaltlands        = "Saltlands"
	SourceVinlands         = "Vinlands"
	SourceConcordium       = "Concordium"
)

// Sources lists the sourcebooks contributing catalogue entries.
var Sources = []string{
	SourceCore,
	SourceFantasyCompanion,
	SourceAmmaria,
	SourceSaltlands,
	SourceVinlands,
	SourceConcordium,
}

// Edge is one catalogue edge entry.
type Edge struct {
	// Name is the edge's display name and identity.
	Name string

	// Rank is the minimum rank required ("Novice" … "Legendary").
	Rank string

	// Type classifies the edge (Background, Combat, Professional, Social,
	// Power, Leadership, Weird).
	Type string

	// Requirements is the prerequisite text in catalogue notation, parsed
	// by [rules.ParseRequirements]. Empty means no prerequisites beyond
	// rank.
	Requirements string

	// Summary is the one-line rules effect.
	Summary string

	// Source is the sourcebook the entry was published in.
	Source string
}

// Hindrance is one catalogue hindrance entry.
type Hindrance struct {
	Name     string
	Severity string // "Major" or "Minor"
	Summary  string
	Source   string
}

// Power is one catalogue power entry.
type Power struct {
	Name     string
	Rank     string
	Points   string // power point cost, free text ("2", "1/lb")
	Range    string
	Duration string
	Summary  string
	Source   string
}

// EdgeFilter narrows the result of [Edges]. Empty fields match everything.
type EdgeFilter struct {
	Source string
	Rank   string
	Type   string
}

// Edges returns catalogue edges matching the filter, in catalogue order.
func Edges(f EdgeFilter) []Edge {
	var out []Edge
	for _, e := range allEdges {
		if f.Source != "" && e.Source != f.Source {
			continue
		}
		if f.Rank != "" && e.Rank != f.Rank {
			continue
		}
		if f.Type != "" && e.Type != f.Type {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Hindrances returns hindrances, optionally filtered by source and severity.
func Hindrances(source, severity string) []Hindrance {
	var out []Hindrance
	for _, h := range allHindrances {
		if source != "" && h.Source != source {
			continue
		}
		if severity != "" && h.Severity != severity {
			continue
		}
		out = append(out, h)
	}
	return out
}

// Powers returns powers, optionally filtered by source and rank.
func Powers(source, rank string) []Power {
	var out []Power
	for _, p := range allPowers {
		if source != "" && p.Source != source {
			continue
		}
		if rank != "" && p.Rank != rank {
			continue
		}
		out = append(out, p)
	}
	return out
}

// LookupEdge returns the catalogue entry for an edge name, if present. When
// the same name appears in multiple sources the earliest publication wins.
func LookupEdge(name string) (Edge, bool) {
	for _, e := range allEdges {
		if e.Name == name {
			return e, true
		}
	}
	return Edge{}, false
}

// Compile parses every edge's requirement text into a [rules.Catalog]. A
// requirement string that fails to parse (an invalid rank name in the entry)
// is reported; the remaining entries still compile.
func Compile() (rules.Catalog, error) {
	cat := make(rules.Catalog, len(allEdges))
	for _, e := range allEdges {
		if _, ok := cat[e.Name]; ok {
			// Duplicate across sources — earliest publication wins.
			continue
		}
		expr, err := rules.ParseRequirements(e.Rank, e.Requirements)
		if err != nil {
			return nil, fmt.Errorf("catalog: edge %q (%s): %w", e.Name, e.Source, err)
		}
		cat[e.Name] = expr
	}
	return cat, nil
}
