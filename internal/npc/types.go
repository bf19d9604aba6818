// Package npc provides the NPC record model and storage for the Tribute
// Lands regional supplements.
//
// A [Record] is the parent row: identity, stat block, narrative text, and
// tracking flags. Skills, weapons, armor, organisation memberships, NPC
// connections, and product appearances are child rows keyed by NPC ID; flat
// text lists (edges, hindrances, gear, powers, special abilities) live on the
// record itself and are stored as JSON.
//
// The primary abstraction is the [Store] interface. [PostgresStore] is the
// production implementation; [MemStore] backs tests and dry runs.
package npc

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/diceforge/npcdb/internal/rules"
)

// Regions covered by the published supplements. "Global" marks NPCs that
// appear across products.
var Regions = []string{"Ammaria", "Saltlands", "Vinlands", "Concordium", "Glasrya", "Global"}

// Tiers classify how much table-time an NPC gets. Wild Cards get bennies and
// full stat blocks; Walk-Ons may never need stats at all.
var Tiers = []string{"Wild Card", "Extra", "Walk-On"}

// dieValues is the legal set for attribute and skill dice. Zero means unset.
var dieValues = []int{0, 4, 6, 8, 10, 12}

// Record is one NPC's parent row.
type Record struct {
	ID int64

	// Identity
	Name      string
	Title     string
	Region    string
	Tier      string
	Archetype string

	// RankGuideline is the advancement tier the stat block was built to
	// ("Novice" … "Legendary"), or empty when not set.
	RankGuideline string

	Quote       string
	Description string
	Background  string

	// Attributes (die values, 0 = unset)
	Agility  int
	Smarts   int
	Spirit   int
	Strength int
	Vigor    int

	// Derived stats
	Pace           int
	Parry          int
	Toughness      int
	ToughnessArmor int
	Size           int
	Bennies        int
	PowerPoints    int

	// Flat text lists, stored as JSON
	Edges            []string
	Hindrances       []string
	Gear             []string
	Powers           []string
	SpecialAbilities []string

	// Narrative
	Motivation    string
	Secret        string
	Tactics       string
	Services      string
	AdventureHook string
	Notes         string

	// Tracking
	StatBlockComplete bool
	NarrativeComplete bool
	FGExportReady     bool
	SourceDocument    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the record for required fields and legal domain values.
// It returns a joined error describing every violation found, or nil.
//
// Die values are enforced here, at the data boundary — the rules engine
// compares whatever it is given numerically.
func (r *Record) Validate() error {
	var errs []error

	if r.Name == "" {
		errs = append(errs, errors.New("npc: name must not be empty"))
	}
	if !slices.Contains(Regions, r.Region) {
		errs = append(errs, fmt.Errorf("npc: region %q is not one of %s", r.Region, strings.Join(Regions, ", ")))
	}
	if !slices.Contains(Tiers, r.Tier) {
		errs = append(errs, fmt.Errorf("npc: tier %q is not one of %s", r.Tier, strings.Join(Tiers, ", ")))
	}
	if r.RankGuideline != "" {
		if _, err := rules.ParseRank(r.RankGuideline); err != nil {
			errs = append(errs, fmt.Errorf("npc: rank guideline: %w", err))
		}
	}
	for _, a := range []struct {
		name string
		die  int
	}{
		{"agility", r.Agility},
		{"smarts", r.Smarts},
		{"spirit", r.Spirit},
		{"strength", r.Strength},
		{"vigor", r.Vigor},
	} {
		if !slices.Contains(dieValues, a.die) {
			errs = append(errs, fmt.Errorf("npc: %s die %d is not in {4,6,8,10,12}", a.name, a.die))
		}
	}

	return errors.Join(errs...)
}

// Attribute returns the record's die value for one of the five attributes.
func (r *Record) Attribute(a rules.Attribute) int {
	switch a {
	case rules.Agility:
		return r.Agility
	case rules.Smarts:
		return r.Smarts
	case rules.Spirit:
		return r.Spirit
	case rules.Strength:
		return r.Strength
	case rules.Vigor:
		return r.Vigor
	}
	return 0
}

// Attributes returns the record's attribute dice keyed by attribute.
func (r *Record) Attributes() map[rules.Attribute]int {
	m := make(map[rules.Attribute]int, len(rules.Attributes))
	for _, a := range rules.Attributes {
		m[a] = r.Attribute(a)
	}
	return m
}

// Rank resolves the record's rank guideline to an ordinal rank. An empty or
// unparseable guideline counts as Novice.
func (r *Record) Rank() rules.Rank {
	if r.RankGuideline == "" {
		return rules.Novice
	}
	rank, err := rules.ParseRank(r.RankGuideline)
	if err != nil {
		return rules.Novice
	}
	return rank
}

// Skill is one trained skill row. Name is unique per NPC.
type Skill struct {
	Name     string
	Die      int
	Modifier int
}

// Weapon is one weapon row, carrying both the human-readable damage
// expression ("Str+d8") and the resolved dice string the VTT needs ("d6+d8").
type Weapon struct {
	Name          string
	DamageStr     string
	DamageDice    string
	DamageBonus   int
	ArmorPiercing int
	TraitType     string // Melee, Ranged, Thrown
	Range         string
	Reach         int
	Notes         string
}

// ResolveDamage substitutes the wielder's Strength die into a damage
// expression: "Str+d8" with Strength d6 becomes "d6+d8". Expressions without
// a Str term are returned unchanged, as is any expression when strength is
// unset.
func ResolveDamage(damage string, strength int) string {
	if strength <= 0 || !strings.Contains(damage, "Str") {
		return damage
	}
	return strings.ReplaceAll(damage, "Str", fmt.Sprintf("d%d", strength))
}

// Armor is one worn-armor row.
type Armor struct {
	Name          string
	Protection    int
	AreaProtected string
	MinStrength   string
	Notes         string
}

// Organisation is a faction, guild, or other group NPCs belong to.
type Organisation struct {
	ID     int64
	Name   string
	Region string
	Type   string
}

// Membership links an NPC to an organisation with an optional role.
type Membership struct {
	Organisation string
	Role         string
}

// Connection is a relationship between two NPCs, viewed from one side.
type Connection struct {
	OtherID      int64
	OtherName    string
	Relationship string
	Notes        string
}

// Appearance records which published product an NPC appears in.
type Appearance struct {
	Product string
	Role    string
}

// Detail is a record together with all of its child rows, as needed by show,
// export, and the edge audit.
type Detail struct {
	Record        Record
	Skills        []Skill
	Weapons       []Weapon
	Armor         []Armor
	Organisations []Membership
	Connections   []Connection
	Appearances   []Appearance
}

// Build assembles the rules-engine view of this NPC: rank, attribute dice,
// skill dice, and held edges.
func (d *Detail) Build() rules.Build {
	skills := make(map[string]int, len(d.Skills))
	for _, s := range d.Skills {
		skills[s.Name] = s.Die
	}
	return rules.Build{
		Rank:       d.Record.Rank(),
		Attributes: d.Record.Attributes(),
		Skills:     skills,
		Edges:      d.Record.Edges,
	}
}

// Overview is the compact listing row used by list and search output.
type Overview struct {
	ID                int64
	Name              string
	Title             string
	Region            string
	Tier              string
	Archetype         string
	StatBlockComplete bool
	NarrativeComplete bool
	FGExportReady     bool
	Organisations     string // comma-joined organisation names
}

// StatusRow is one line of the per-region completion report.
type StatusRow struct {
	Region        string
	Tier          string
	Total         int
	StatsDone     int
	NarrativeDone int
	FGReady       int
}
