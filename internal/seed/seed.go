// Package seed loads NPC roster YAML files and imports them into a store.
// Seed files carry whole regions at a time: the parent record plus nested
// skills, weapons, armor, organisation memberships, and product
// appearances.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/diceforge/npcdb/internal/npc"
)

// File is the top-level structure of a roster YAML file.
//
// Example:
//
//	document: "Gazetteer of Ammaria"
//	organisations:
//	  - name: "Road Wardens"
//	    region: Ammaria
//	    type: "Military order"
//	npcs:
//	  - name: "Kaelen Voss"
//	    region: Ammaria
//	    tier: "Wild Card"
//	    attributes: {agility: 8, smarts: 6, spirit: 6, strength: 6, vigor: 8}
//	    skills:
//	      - {name: Shooting, die: 8}
type File struct {
	// Document names the source product; it is stamped on every record
	// that does not set its own.
	Document      string         `yaml:"document"`
	Organisations []Organisation `yaml:"organisations"`
	NPCs          []Entry        `yaml:"npcs"`
}

// Organisation declares a faction up front so memberships can reference it
// with region and type attached.
type Organisation struct {
	Name   string `yaml:"name"`
	Region string `yaml:"region"`
	Type   string `yaml:"type"`
}

// Entry is one NPC in the roster file.
type Entry struct {
	Name          string `yaml:"name"`
	Title         string `yaml:"title"`
	Region        string `yaml:"region"`
	Tier          string `yaml:"tier"`
	Archetype     string `yaml:"archetype"`
	RankGuideline string `yaml:"rank"`
	Quote         string `yaml:"quote"`
	Description   string `yaml:"description"`
	Background    string `yaml:"background"`

	Attributes Attributes `yaml:"attributes"`

	Pace           int `yaml:"pace"`
	Parry          int `yaml:"parry"`
	Toughness      int `yaml:"toughness"`
	ToughnessArmor int `yaml:"toughness_armor"`
	Size           int `yaml:"size"`
	Bennies        int `yaml:"bennies"`
	PowerPoints    int `yaml:"power_points"`

	Edges            []string `yaml:"edges"`
	Hindrances       []string `yaml:"hindrances"`
	Gear             []string `yaml:"gear"`
	Powers           []string `yaml:"powers"`
	SpecialAbilities []string `yaml:"special_abilities"`

	Motivation    string `yaml:"motivation"`
	Secret        string `yaml:"secret"`
	Tactics       string `yaml:"tactics"`
	Services      string `yaml:"services"`
	AdventureHook string `yaml:"adventure_hook"`
	Notes         string `yaml:"notes"`

	StatBlockComplete bool   `yaml:"stat_block_complete"`
	NarrativeComplete bool   `yaml:"narrative_complete"`
	FGExportReady     bool   `yaml:"fg_export_ready"`
	SourceDocument    string `yaml:"source_document"`

	Skills      []Skill      `yaml:"skills"`
	Weapons     []Weapon     `yaml:"weapons"`
	Armor       []Armor      `yaml:"armor"`
	Memberships []Membership `yaml:"organisations"`
	Appearances []Appearance `yaml:"appearances"`
}

// Attributes holds the five trait dice.
type Attributes struct {
	Agility  int `yaml:"agility"`
	Smarts   int `yaml:"smarts"`
	Spirit   int `yaml:"spirit"`
	Strength int `yaml:"strength"`
	Vigor    int `yaml:"vigor"`
}

// Skill is one trained skill line.
type Skill struct {
	Name     string `yaml:"name"`
	Die      int    `yaml:"die"`
	Modifier int    `yaml:"modifier"`
}

// Weapon is one weapon line.
type Weapon struct {
	Name          string `yaml:"name"`
	Damage        string `yaml:"damage"`
	DamageBonus   int    `yaml:"damage_bonus"`
	ArmorPiercing int    `yaml:"ap"`
	TraitType     string `yaml:"trait_type"`
	Range         string `yaml:"range"`
	Reach         int    `yaml:"reach"`
	Notes         string `yaml:"notes"`
}

// Armor is one worn-armor line.
type Armor struct {
	Name        string `yaml:"name"`
	Protection  int    `yaml:"protection"`
	Area        string `yaml:"area"`
	MinStrength string `yaml:"min_strength"`
	Notes       string `yaml:"notes"`
}

// Membership links the NPC to an organisation by name.
type Membership struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

// Appearance records the NPC featuring in a published product.
type Appearance struct {
	Product string `yaml:"product"`
	Role    string `yaml:"role"`
}

// Load reads and parses a roster YAML file from disk.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seed: open roster file %q: %w", path, err)
	}
	defer f.Close()

	sf, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("seed: parse roster file %q: %w", path, err)
	}
	return sf, nil
}

// LoadFromReader parses roster YAML from an [io.Reader]. The reader is
// consumed entirely; the caller is responsible for closing it.
func LoadFromReader(r io.Reader) (*File, error) {
	var sf File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true) // reject unknown keys to catch typos
	if err := dec.Decode(&sf); err != nil {
		return nil, fmt.Errorf("seed: decode roster yaml: %w", err)
	}
	return &sf, nil
}

// Validate checks every entry in the file and returns a joined error
// covering all invalid records, or nil.
func (f *File) Validate() error {
	var errs []error
	for i := range f.NPCs {
		rec := f.NPCs[i].record(f.Document)
		if err := rec.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("seed: npc %d (%q): %w", i, f.NPCs[i].Name, err))
		}
	}
	return errors.Join(errs...)
}

// Import validates the file and bulk-imports it into the store: declared
// organisations first, then every NPC with its child rows. Returns the
// number of NPCs created.
func Import(ctx context.Context, store npc.Store, f *File) (int, error) {
	if f == nil {
		return 0, fmt.Errorf("seed: roster must not be nil")
	}
	if err := f.Validate(); err != nil {
		return 0, err
	}

	for _, org := range f.Organisations {
		err := store.CreateOrganisation(ctx, &npc.Organisation{
			Name:   org.Name,
			Region: org.Region,
			Type:   org.Type,
		})
		if err != nil && !errors.Is(err, npc.ErrDuplicate) {
			return 0, fmt.Errorf("seed: organisation %q: %w", org.Name, err)
		}
	}

	bundles := make([]npc.Bundle, len(f.NPCs))
	for i := range f.NPCs {
		bundles[i] = f.NPCs[i].bundle(f.Document)
	}
	n, err := store.Import(ctx, bundles)
	if err != nil {
		return n, fmt.Errorf("seed: import roster %q: %w", f.Document, err)
	}
	return n, nil
}

// record maps the entry onto a store record.
func (e *Entry) record(document string) npc.Record {
	source := e.SourceDocument
	if source == "" {
		source = document
	}
	return npc.Record{
		Name:              e.Name,
		Title:             e.Title,
		Region:            e.Region,
		Tier:              e.Tier,
		Archetype:         e.Archetype,
		RankGuideline:     e.RankGuideline,
		Quote:             e.Quote,
		Description:       e.Description,
		Background:        e.Background,
		Agility:           e.Attributes.Agility,
		Smarts:            e.Attributes.Smarts,
		Spirit:            e.Attributes.Spirit,
		Strength:          e.Attributes.Strength,
		Vigor:             e.Attributes.Vigor,
		Pace:              e.Pace,
		Parry:             e.Parry,
		Toughness:         e.Toughness,
		ToughnessArmor:    e.ToughnessArmor,
		Size:              e.Size,
		Bennies:           e.Bennies,
		PowerPoints:       e.PowerPoints,
		Edges:             e.Edges,
		Hindrances:        e.Hindrances,
		Gear:              e.Gear,
		Powers:            e.Powers,
		SpecialAbilities:  e.SpecialAbilities,
		Motivation:        e.Motivation,
		Secret:            e.Secret,
		Tactics:           e.Tactics,
		Services:          e.Services,
		AdventureHook:     e.AdventureHook,
		Notes:             e.Notes,
		StatBlockComplete: e.StatBlockComplete,
		NarrativeComplete: e.NarrativeComplete,
		FGExportReady:     e.FGExportReady,
		SourceDocument:    source,
	}
}

// bundle maps the entry and its nested lists onto a store import bundle.
// Weapon damage expressions are resolved against the entry's Strength so
// the VTT dice string is available at insert time.
func (e *Entry) bundle(document string) npc.Bundle {
	b := npc.Bundle{Record: e.record(document)}

	for _, s := range e.Skills {
		b.Skills = append(b.Skills, npc.Skill{Name: s.Name, Die: s.Die, Modifier: s.Modifier})
	}
	for _, w := range e.Weapons {
		traitType := w.TraitType
		if traitType == "" {
			traitType = "Melee"
		}
		b.Weapons = append(b.Weapons, npc.Weapon{
			Name:          w.Name,
			DamageStr:     w.Damage,
			DamageDice:    npc.ResolveDamage(w.Damage, e.Attributes.Strength),
			DamageBonus:   w.DamageBonus,
			ArmorPiercing: w.ArmorPiercing,
			TraitType:     traitType,
			Range:         w.Range,
			Reach:         w.Reach,
			Notes:         w.Notes,
		})
	}
	for _, a := range e.Armor {
		b.Armor = append(b.Armor, npc.Armor{
			Name:          a.Name,
			Protection:    a.Protection,
			AreaProtected: a.Area,
			MinStrength:   a.MinStrength,
			Notes:         a.Notes,
		})
	}
	for _, m := range e.Memberships {
		b.Memberships = append(b.Memberships, npc.Membership{Organisation: m.Name, Role: m.Role})
	}
	for _, a := range e.Appearances {
		b.Appearances = append(b.Appearances, npc.Appearance{Product: a.Product, Role: a.Role})
	}
	return b
}
