package npc

import (
	"context"
	"errors"
)

// Sentinel errors returned by [Store] implementations. Callers match them
// with [errors.Is].
var (
	// ErrNotFound is returned when no NPC, organisation, or child row
	// matches the given identifier.
	ErrNotFound = errors.New("npc: not found")

	// ErrDuplicate is returned when an insert collides with an existing
	// unique row, such as an organisation name or a skill already on the
	// NPC.
	ErrDuplicate = errors.New("npc: duplicate")

	// ErrAmbiguous is returned by name resolution when several NPCs match
	// equally well and the caller must disambiguate by ID.
	ErrAmbiguous = errors.New("npc: ambiguous name")
)

// ListOptions filters the NPC listing. Zero values match everything.
type ListOptions struct {
	Region       string
	Tier         string
	Organisation string

	// Incomplete restricts the listing to NPCs missing a stat block or
	// narrative.
	Incomplete bool
}

// Bundle is a record with child rows attached, as produced by the seed
// loader for bulk import. Organisation memberships reference organisations
// by name; missing organisations are created on the fly.
type Bundle struct {
	Record      Record
	Skills      []Skill
	Weapons     []Weapon
	Armor       []Armor
	Memberships []Membership
	Appearances []Appearance
}

// Store is the persistence interface for NPC records and their child rows.
//
// Create and Import assign IDs and timestamps on the passed records. All
// write methods validate nothing beyond referential integrity; callers run
// [Record.Validate] before handing a record over.
type Store interface {
	// Create inserts a new record and sets its ID and timestamps.
	Create(ctx context.Context, rec *Record) error

	// Get returns the record with the given ID, or ErrNotFound.
	Get(ctx context.Context, id int64) (*Record, error)

	// GetDetail returns the record plus all child rows, or ErrNotFound.
	GetDetail(ctx context.Context, id int64) (*Detail, error)

	// Update rewrites every mutable field of the record and bumps its
	// UpdatedAt. Returns ErrNotFound when the ID does not exist.
	Update(ctx context.Context, rec *Record) error

	// Delete removes the record and all child rows, or returns
	// ErrNotFound.
	Delete(ctx context.Context, id int64) error

	// List returns overview rows matching opts, ordered by region then
	// name.
	List(ctx context.Context, opts ListOptions) ([]Overview, error)

	// Search returns overviews whose name, title, archetype, description,
	// or notes contain the query, case-insensitively.
	Search(ctx context.Context, query string) ([]Overview, error)

	// PutSkill inserts or updates a skill row for the NPC.
	PutSkill(ctx context.Context, npcID int64, s Skill) error

	// AddWeapon appends a weapon row to the NPC.
	AddWeapon(ctx context.Context, npcID int64, w Weapon) error

	// AddArmor appends an armor row to the NPC.
	AddArmor(ctx context.Context, npcID int64, a Armor) error

	// CreateOrganisation inserts an organisation. Names are unique;
	// collisions return ErrDuplicate.
	CreateOrganisation(ctx context.Context, org *Organisation) error

	// Organisations lists every organisation, ordered by name.
	Organisations(ctx context.Context) ([]Organisation, error)

	// LinkOrganisation adds the NPC to the named organisation, creating
	// the organisation if it does not exist yet.
	LinkOrganisation(ctx context.Context, npcID int64, orgName, role string) error

	// Connect records a relationship between two NPCs. The link is stored
	// once and surfaced from both sides.
	Connect(ctx context.Context, aID, bID int64, relationship, notes string) error

	// AddAppearance records that the NPC appears in a published product.
	AddAppearance(ctx context.Context, npcID int64, a Appearance) error

	// Status aggregates completion counts per region and tier. An empty
	// region covers all regions.
	Status(ctx context.Context, region string) ([]StatusRow, error)

	// Import bulk-inserts bundles inside one transaction where the
	// backend supports it, returning the number of NPCs created.
	Import(ctx context.Context, bundles []Bundle) (int, error)
}
