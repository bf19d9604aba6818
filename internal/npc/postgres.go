package npc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Schema is the SQL DDL for the NPC tables. Execute it via
// [PostgresStore.Migrate] or apply it manually during deployment.
const Schema = `
CREATE TABLE IF NOT EXISTS npcs (
    id                  BIGSERIAL PRIMARY KEY,
    name                TEXT NOT NULL,
    title               TEXT NOT NULL DEFAULT '',
    region              TEXT NOT NULL,
    tier                TEXT NOT NULL,
    archetype           TEXT NOT NULL DEFAULT '',
    rank_guideline      TEXT NOT NULL DEFAULT '',
    quote               TEXT NOT NULL DEFAULT '',
    description         TEXT NOT NULL DEFAULT '',
    background          TEXT NOT NULL DEFAULT '',
    agility             INT NOT NULL DEFAULT 0,
    smarts              INT NOT NULL DEFAULT 0,
    spirit              INT NOT NULL DEFAULT 0,
    strength            INT NOT NULL DEFAULT 0,
    vigor               INT NOT NULL DEFAULT 0,
    pace                INT NOT NULL DEFAULT 0,
    parry               INT NOT NULL DEFAULT 0,
    toughness           INT NOT NULL DEFAULT 0,
    toughness_armor     INT NOT NULL DEFAULT 0,
    size                INT NOT NULL DEFAULT 0,
    bennies             INT NOT NULL DEFAULT 0,
    power_points        INT NOT NULL DEFAULT 0,
    edges               JSONB NOT NULL DEFAULT '[]',
    hindrances          JSONB NOT NULL DEFAULT '[]',
    gear                JSONB NOT NULL DEFAULT '[]',
    powers              JSONB NOT NULL DEFAULT '[]',
    special_abilities   JSONB NOT NULL DEFAULT '[]',
    motivation          TEXT NOT NULL DEFAULT '',
    secret              TEXT NOT NULL DEFAULT '',
    tactics             TEXT NOT NULL DEFAULT '',
    services            TEXT NOT NULL DEFAULT '',
    adventure_hook      TEXT NOT NULL DEFAULT '',
    notes               TEXT NOT NULL DEFAULT '',
    stat_block_complete BOOLEAN NOT NULL DEFAULT FALSE,
    narrative_complete  BOOLEAN NOT NULL DEFAULT FALSE,
    fg_export_ready     BOOLEAN NOT NULL DEFAULT FALSE,
    source_document     TEXT NOT NULL DEFAULT '',
    created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_npcs_region ON npcs(region);
CREATE INDEX IF NOT EXISTS idx_npcs_name ON npcs(name);

CREATE TABLE IF NOT EXISTS npc_skills (
    npc_id   BIGINT NOT NULL REFERENCES npcs(id) ON DELETE CASCADE,
    name     TEXT NOT NULL,
    die      INT NOT NULL,
    modifier INT NOT NULL DEFAULT 0,
    PRIMARY KEY (npc_id, name)
);

CREATE TABLE IF NOT EXISTS npc_weapons (
    id             BIGSERIAL PRIMARY KEY,
    npc_id         BIGINT NOT NULL REFERENCES npcs(id) ON DELETE CASCADE,
    name           TEXT NOT NULL,
    damage_str     TEXT NOT NULL DEFAULT '',
    damage_dice    TEXT NOT NULL DEFAULT '',
    damage_bonus   INT NOT NULL DEFAULT 0,
    armor_piercing INT NOT NULL DEFAULT 0,
    trait_type     TEXT NOT NULL DEFAULT 'Melee',
    range          TEXT NOT NULL DEFAULT '',
    reach          INT NOT NULL DEFAULT 0,
    notes          TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_npc_weapons_npc ON npc_weapons(npc_id);

CREATE TABLE IF NOT EXISTS npc_armor (
    id             BIGSERIAL PRIMARY KEY,
    npc_id         BIGINT NOT NULL REFERENCES npcs(id) ON DELETE CASCADE,
    name           TEXT NOT NULL,
    protection     INT NOT NULL DEFAULT 0,
    area_protected TEXT NOT NULL DEFAULT '',
    min_strength   TEXT NOT NULL DEFAULT '',
    notes          TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_npc_armor_npc ON npc_armor(npc_id);

CREATE TABLE IF NOT EXISTS organisations (
    id     BIGSERIAL PRIMARY KEY,
    name   TEXT NOT NULL UNIQUE,
    region TEXT NOT NULL DEFAULT '',
    type   TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS npc_organisations (
    npc_id BIGINT NOT NULL REFERENCES npcs(id) ON DELETE CASCADE,
    org_id BIGINT NOT NULL REFERENCES organisations(id) ON DELETE CASCADE,
    role   TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (npc_id, org_id)
);

CREATE TABLE IF NOT EXISTS npc_connections (
    npc_a        BIGINT NOT NULL REFERENCES npcs(id) ON DELETE CASCADE,
    npc_b        BIGINT NOT NULL REFERENCES npcs(id) ON DELETE CASCADE,
    relationship TEXT NOT NULL DEFAULT '',
    notes        TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (npc_a, npc_b)
);

CREATE TABLE IF NOT EXISTS npc_appearances (
    npc_id  BIGINT NOT NULL REFERENCES npcs(id) ON DELETE CASCADE,
    product TEXT NOT NULL,
    role    TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (npc_id, product)
);
`

// DB is the database interface used by [PostgresStore]. Both *pgxpool.Pool
// and *pgx.Conn satisfy this interface.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// beginner is satisfied by pools and connections that can open transactions.
// [PostgresStore.Import] uses it when available.
type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// PostgresStore is a [Store] backed by a PostgreSQL database. Flat text
// lists on the record are serialised as JSONB; child rows get their own
// tables.
type PostgresStore struct {
	db DB
}

// Compile-time interface check.
var _ Store = (*PostgresStore)(nil)

// NewPostgresStore creates a new [PostgresStore] that uses the given
// database connection or pool. The caller is responsible for calling
// [PostgresStore.Migrate] to ensure the schema exists before issuing
// queries.
func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate executes the [Schema] DDL against the database, creating the NPC
// tables and indexes if they do not already exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.db.Exec(ctx, Schema)
	if err != nil {
		return fmt.Errorf("npc: migrate: %w", err)
	}
	return nil
}

// recordColumns is the column list for npcs selects, in scan order.
const recordColumns = `
	id, name, title, region, tier, archetype, rank_guideline,
	quote, description, background,
	agility, smarts, spirit, strength, vigor,
	pace, parry, toughness, toughness_armor, size, bennies, power_points,
	edges, hindrances, gear, powers, special_abilities,
	motivation, secret, tactics, services, adventure_hook, notes,
	stat_block_complete, narrative_complete, fg_export_ready,
	source_document, created_at, updated_at`

// Create implements [Store.Create].
func (s *PostgresStore) Create(ctx context.Context, rec *Record) error {
	lists, err := marshalLists(rec)
	if err != nil {
		return err
	}

	const query = `
		INSERT INTO npcs (
			name, title, region, tier, archetype, rank_guideline,
			quote, description, background,
			agility, smarts, spirit, strength, vigor,
			pace, parry, toughness, toughness_armor, size, bennies, power_points,
			edges, hindrances, gear, powers, special_abilities,
			motivation, secret, tactics, services, adventure_hook, notes,
			stat_block_complete, narrative_complete, fg_export_ready, source_document
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,
			$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,
			$22,$23,$24,$25,$26,$27,$28,$29,$30,$31,$32,$33,$34,$35,$36
		)
		RETURNING id, created_at, updated_at`

	err = s.db.QueryRow(ctx, query, recordArgs(rec, lists)...).
		Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("npc: create: %w", err)
	}
	return nil
}

// Get implements [Store.Get].
func (s *PostgresStore) Get(ctx context.Context, id int64) (*Record, error) {
	query := `SELECT ` + recordColumns + ` FROM npcs WHERE id = $1`

	rec, err := scanRecord(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("npc: get %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("npc: get %d: %w", id, err)
	}
	return rec, nil
}

// GetDetail implements [Store.GetDetail].
func (s *PostgresStore) GetDetail(ctx context.Context, id int64) (*Detail, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	d := &Detail{Record: *rec}

	if d.Skills, err = s.skills(ctx, id); err != nil {
		return nil, err
	}
	if d.Weapons, err = s.weapons(ctx, id); err != nil {
		return nil, err
	}
	if d.Armor, err = s.armorRows(ctx, id); err != nil {
		return nil, err
	}
	if d.Organisations, err = s.memberships(ctx, id); err != nil {
		return nil, err
	}
	if d.Connections, err = s.connections(ctx, id); err != nil {
		return nil, err
	}
	if d.Appearances, err = s.appearances(ctx, id); err != nil {
		return nil, err
	}
	return d, nil
}

// Update implements [Store.Update].
func (s *PostgresStore) Update(ctx context.Context, rec *Record) error {
	lists, err := marshalLists(rec)
	if err != nil {
		return err
	}

	const query = `
		UPDATE npcs SET
			name = $2, title = $3, region = $4, tier = $5, archetype = $6,
			rank_guideline = $7, quote = $8, description = $9, background = $10,
			agility = $11, smarts = $12, spirit = $13, strength = $14, vigor = $15,
			pace = $16, parry = $17, toughness = $18, toughness_armor = $19,
			size = $20, bennies = $21, power_points = $22,
			edges = $23, hindrances = $24, gear = $25, powers = $26,
			special_abilities = $27,
			motivation = $28, secret = $29, tactics = $30, services = $31,
			adventure_hook = $32, notes = $33,
			stat_block_complete = $34, narrative_complete = $35,
			fg_export_ready = $36, source_document = $37,
			updated_at = now()
		WHERE id = $1
		RETURNING updated_at`

	args := append([]any{rec.ID}, recordArgs(rec, lists)...)
	err = s.db.QueryRow(ctx, query, args...).Scan(&rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("npc: update %d: %w", rec.ID, ErrNotFound)
		}
		return fmt.Errorf("npc: update: %w", err)
	}
	return nil
}

// Delete implements [Store.Delete]. Child rows cascade.
func (s *PostgresStore) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM npcs WHERE id = $1`
	tag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("npc: delete %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("npc: delete %d: %w", id, ErrNotFound)
	}
	return nil
}

// overviewQuery joins organisation names onto the listing row.
const overviewQuery = `
	SELECT n.id, n.name, n.title, n.region, n.tier, n.archetype,
	       n.stat_block_complete, n.narrative_complete, n.fg_export_ready,
	       COALESCE(string_agg(o.name, ', ' ORDER BY o.name), '')
	FROM npcs n
	LEFT JOIN npc_organisations m ON m.npc_id = n.id
	LEFT JOIN organisations o ON o.id = m.org_id`

// List implements [Store.List].
func (s *PostgresStore) List(ctx context.Context, opts ListOptions) ([]Overview, error) {
	var (
		conds []string
		args  []any
	)
	if opts.Region != "" {
		args = append(args, opts.Region)
		conds = append(conds, fmt.Sprintf("n.region = $%d", len(args)))
	}
	if opts.Tier != "" {
		args = append(args, opts.Tier)
		conds = append(conds, fmt.Sprintf("n.tier = $%d", len(args)))
	}
	if opts.Incomplete {
		conds = append(conds, "NOT (n.stat_block_complete AND n.narrative_complete)")
	}

	query := overviewQuery
	if len(conds) > 0 {
		query += "\n\tWHERE " + strings.Join(conds, " AND ")
	}
	query += "\n\tGROUP BY n.id"
	if opts.Organisation != "" {
		args = append(args, opts.Organisation)
		query += fmt.Sprintf("\n\tHAVING bool_or(lower(o.name) = lower($%d))", len(args))
	}
	query += "\n\tORDER BY n.region, n.name"

	return s.queryOverviews(ctx, query, args...)
}

// Search implements [Store.Search].
func (s *PostgresStore) Search(ctx context.Context, query string) ([]Overview, error) {
	q := overviewQuery + `
	WHERE n.name ILIKE $1 OR n.title ILIKE $1 OR n.archetype ILIKE $1
	   OR n.description ILIKE $1 OR n.background ILIKE $1
	   OR n.motivation ILIKE $1 OR n.quote ILIKE $1 OR n.notes ILIKE $1
	GROUP BY n.id
	ORDER BY n.region, n.name`
	return s.queryOverviews(ctx, q, "%"+query+"%")
}

// PutSkill implements [Store.PutSkill].
func (s *PostgresStore) PutSkill(ctx context.Context, npcID int64, sk Skill) error {
	const query = `
		INSERT INTO npc_skills (npc_id, name, die, modifier)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (npc_id, name) DO UPDATE SET
			die = EXCLUDED.die, modifier = EXCLUDED.modifier`
	_, err := s.db.Exec(ctx, query, npcID, sk.Name, sk.Die, sk.Modifier)
	if err != nil {
		if isForeignKeyError(err) {
			return fmt.Errorf("npc: put skill for %d: %w", npcID, ErrNotFound)
		}
		return fmt.Errorf("npc: put skill: %w", err)
	}
	return nil
}

// AddWeapon implements [Store.AddWeapon].
func (s *PostgresStore) AddWeapon(ctx context.Context, npcID int64, w Weapon) error {
	const query = `
		INSERT INTO npc_weapons (
			npc_id, name, damage_str, damage_dice, damage_bonus,
			armor_piercing, trait_type, range, reach, notes
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`
	_, err := s.db.Exec(ctx, query,
		npcID, w.Name, w.DamageStr, w.DamageDice, w.DamageBonus,
		w.ArmorPiercing, w.TraitType, w.Range, w.Reach, w.Notes,
	)
	if err != nil {
		if isForeignKeyError(err) {
			return fmt.Errorf("npc: add weapon for %d: %w", npcID, ErrNotFound)
		}
		return fmt.Errorf("npc: add weapon: %w", err)
	}
	return nil
}

// AddArmor implements [Store.AddArmor].
func (s *PostgresStore) AddArmor(ctx context.Context, npcID int64, a Armor) error {
	const query = `
		INSERT INTO npc_armor (npc_id, name, protection, area_protected, min_strength, notes)
		VALUES ($1,$2,$3,$4,$5,$6)`
	_, err := s.db.Exec(ctx, query, npcID, a.Name, a.Protection, a.AreaProtected, a.MinStrength, a.Notes)
	if err != nil {
		if isForeignKeyError(err) {
			return fmt.Errorf("npc: add armor for %d: %w", npcID, ErrNotFound)
		}
		return fmt.Errorf("npc: add armor: %w", err)
	}
	return nil
}

// CreateOrganisation implements [Store.CreateOrganisation].
func (s *PostgresStore) CreateOrganisation(ctx context.Context, org *Organisation) error {
	const query = `
		INSERT INTO organisations (name, region, type)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := s.db.QueryRow(ctx, query, org.Name, org.Region, org.Type).Scan(&org.ID)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("npc: organisation %q: %w", org.Name, ErrDuplicate)
		}
		return fmt.Errorf("npc: create organisation: %w", err)
	}
	return nil
}

// Organisations implements [Store.Organisations].
func (s *PostgresStore) Organisations(ctx context.Context) ([]Organisation, error) {
	const query = `SELECT id, name, region, type FROM organisations ORDER BY name`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("npc: organisations: %w", err)
	}
	defer rows.Close()

	var orgs []Organisation
	for rows.Next() {
		var o Organisation
		if err := rows.Scan(&o.ID, &o.Name, &o.Region, &o.Type); err != nil {
			return nil, fmt.Errorf("npc: organisations scan: %w", err)
		}
		orgs = append(orgs, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("npc: organisations: %w", err)
	}
	return orgs, nil
}

// LinkOrganisation implements [Store.LinkOrganisation].
func (s *PostgresStore) LinkOrganisation(ctx context.Context, npcID int64, orgName, role string) error {
	// Upsert the organisation by name, then link. Two statements; the link
	// insert is what detects duplicates.
	const orgQuery = `
		INSERT INTO organisations (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`
	var orgID int64
	if err := s.db.QueryRow(ctx, orgQuery, orgName).Scan(&orgID); err != nil {
		return fmt.Errorf("npc: link organisation %q: %w", orgName, err)
	}

	const linkQuery = `
		INSERT INTO npc_organisations (npc_id, org_id, role)
		VALUES ($1, $2, $3)`
	_, err := s.db.Exec(ctx, linkQuery, npcID, orgID, role)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("npc: %d already in %q: %w", npcID, orgName, ErrDuplicate)
		}
		if isForeignKeyError(err) {
			return fmt.Errorf("npc: link organisation for %d: %w", npcID, ErrNotFound)
		}
		return fmt.Errorf("npc: link organisation: %w", err)
	}
	return nil
}

// Connect implements [Store.Connect]. Links are stored with the lower ID
// first so each pair appears once.
func (s *PostgresStore) Connect(ctx context.Context, aID, bID int64, relationship, notes string) error {
	if aID > bID {
		aID, bID = bID, aID
	}
	const query = `
		INSERT INTO npc_connections (npc_a, npc_b, relationship, notes)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (npc_a, npc_b) DO UPDATE SET
			relationship = EXCLUDED.relationship, notes = EXCLUDED.notes`
	_, err := s.db.Exec(ctx, query, aID, bID, relationship, notes)
	if err != nil {
		if isForeignKeyError(err) {
			return fmt.Errorf("npc: connect %d and %d: %w", aID, bID, ErrNotFound)
		}
		return fmt.Errorf("npc: connect: %w", err)
	}
	return nil
}

// AddAppearance implements [Store.AddAppearance].
func (s *PostgresStore) AddAppearance(ctx context.Context, npcID int64, a Appearance) error {
	const query = `
		INSERT INTO npc_appearances (npc_id, product, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (npc_id, product) DO UPDATE SET role = EXCLUDED.role`
	_, err := s.db.Exec(ctx, query, npcID, a.Product, a.Role)
	if err != nil {
		if isForeignKeyError(err) {
			return fmt.Errorf("npc: add appearance for %d: %w", npcID, ErrNotFound)
		}
		return fmt.Errorf("npc: add appearance: %w", err)
	}
	return nil
}

// Status implements [Store.Status].
func (s *PostgresStore) Status(ctx context.Context, region string) ([]StatusRow, error) {
	query := `
		SELECT region, tier, count(*),
		       count(*) FILTER (WHERE stat_block_complete),
		       count(*) FILTER (WHERE narrative_complete),
		       count(*) FILTER (WHERE fg_export_ready)
		FROM npcs`
	var args []any
	if region != "" {
		query += ` WHERE region = $1`
		args = append(args, region)
	}
	query += ` GROUP BY region, tier ORDER BY region, tier`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("npc: status: %w", err)
	}
	defer rows.Close()

	var out []StatusRow
	for rows.Next() {
		var r StatusRow
		if err := rows.Scan(&r.Region, &r.Tier, &r.Total, &r.StatsDone, &r.NarrativeDone, &r.FGReady); err != nil {
			return nil, fmt.Errorf("npc: status scan: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("npc: status: %w", err)
	}
	return out, nil
}

// Import implements [Store.Import]. When the underlying DB can open
// transactions the whole import commits or rolls back as one unit;
// otherwise bundles are inserted sequentially.
func (s *PostgresStore) Import(ctx context.Context, bundles []Bundle) (int, error) {
	if b, ok := s.db.(beginner); ok {
		tx, err := b.Begin(ctx)
		if err != nil {
			return 0, fmt.Errorf("npc: import: begin: %w", err)
		}
		defer tx.Rollback(ctx)

		txStore := NewPostgresStore(tx)
		count, err := txStore.importAll(ctx, bundles)
		if err != nil {
			return 0, err
		}
		if err := tx.Commit(ctx); err != nil {
			return 0, fmt.Errorf("npc: import: commit: %w", err)
		}
		return count, nil
	}
	return s.importAll(ctx, bundles)
}

// importAll inserts bundles one at a time against the store's current DB.
func (s *PostgresStore) importAll(ctx context.Context, bundles []Bundle) (int, error) {
	count := 0
	for i := range bundles {
		b := &bundles[i]
		if err := s.Create(ctx, &b.Record); err != nil {
			return count, fmt.Errorf("npc: import %q: %w", b.Record.Name, err)
		}
		id := b.Record.ID
		for _, sk := range b.Skills {
			if err := s.PutSkill(ctx, id, sk); err != nil {
				return count, fmt.Errorf("npc: import %q: %w", b.Record.Name, err)
			}
		}
		for _, w := range b.Weapons {
			if err := s.AddWeapon(ctx, id, w); err != nil {
				return count, fmt.Errorf("npc: import %q: %w", b.Record.Name, err)
			}
		}
		for _, a := range b.Armor {
			if err := s.AddArmor(ctx, id, a); err != nil {
				return count, fmt.Errorf("npc: import %q: %w", b.Record.Name, err)
			}
		}
		for _, m := range b.Memberships {
			if err := s.LinkOrganisation(ctx, id, m.Organisation, m.Role); err != nil {
				return count, fmt.Errorf("npc: import %q: %w", b.Record.Name, err)
			}
		}
		for _, ap := range b.Appearances {
			if err := s.AddAppearance(ctx, id, ap); err != nil {
				return count, fmt.Errorf("npc: import %q: %w", b.Record.Name, err)
			}
		}
		count++
	}
	return count, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Child-row queries
// ─────────────────────────────────────────────────────────────────────────────

func (s *PostgresStore) skills(ctx context.Context, npcID int64) ([]Skill, error) {
	const query = `SELECT name, die, modifier FROM npc_skills WHERE npc_id = $1 ORDER BY name`
	rows, err := s.db.Query(ctx, query, npcID)
	if err != nil {
		return nil, fmt.Errorf("npc: skills: %w", err)
	}
	defer rows.Close()

	var out []Skill
	for rows.Next() {
		var sk Skill
		if err := rows.Scan(&sk.Name, &sk.Die, &sk.Modifier); err != nil {
			return nil, fmt.Errorf("npc: skills scan: %w", err)
		}
		out = append(out, sk)
	}
	return out, rows.Err()
}

func (s *PostgresStore) weapons(ctx context.Context, npcID int64) ([]Weapon, error) {
	const query = `
		SELECT name, damage_str, damage_dice, damage_bonus, armor_piercing,
		       trait_type, range, reach, notes
		FROM npc_weapons WHERE npc_id = $1 ORDER BY id`
	rows, err := s.db.Query(ctx, query, npcID)
	if err != nil {
		return nil, fmt.Errorf("npc: weapons: %w", err)
	}
	defer rows.Close()

	var out []Weapon
	for rows.Next() {
		var w Weapon
		if err := rows.Scan(&w.Name, &w.DamageStr, &w.DamageDice, &w.DamageBonus,
			&w.ArmorPiercing, &w.TraitType, &w.Range, &w.Reach, &w.Notes); err != nil {
			return nil, fmt.Errorf("npc: weapons scan: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (s *PostgresStore) armorRows(ctx context.Context, npcID int64) ([]Armor, error) {
	const query = `
		SELECT name, protection, area_protected, min_strength, notes
		FROM npc_armor WHERE npc_id = $1 ORDER BY id`
	rows, err := s.db.Query(ctx, query, npcID)
	if err != nil {
		return nil, fmt.Errorf("npc: armor: %w", err)
	}
	defer rows.Close()

	var out []Armor
	for rows.Next() {
		var a Armor
		if err := rows.Scan(&a.Name, &a.Protection, &a.AreaProtected, &a.MinStrength, &a.Notes); err != nil {
			return nil, fmt.Errorf("npc: armor scan: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *PostgresStore) memberships(ctx context.Context, npcID int64) ([]Membership, error) {
	const query = `
		SELECT o.name, m.role
		FROM npc_organisations m
		JOIN organisations o ON o.id = m.org_id
		WHERE m.npc_id = $1
		ORDER BY o.name`
	rows, err := s.db.Query(ctx, query, npcID)
	if err != nil {
		return nil, fmt.Errorf("npc: memberships: %w", err)
	}
	defer rows.Close()

	var out []Membership
	for rows.Next() {
		var m Membership
		if err := rows.Scan(&m.Organisation, &m.Role); err != nil {
			return nil, fmt.Errorf("npc: memberships scan: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *PostgresStore) connections(ctx context.Context, npcID int64) ([]Connection, error) {
	const query = `
		SELECT CASE WHEN c.npc_a = $1 THEN c.npc_b ELSE c.npc_a END,
		       n.name, c.relationship, c.notes
		FROM npc_connections c
		JOIN npcs n ON n.id = CASE WHEN c.npc_a = $1 THEN c.npc_b ELSE c.npc_a END
		WHERE c.npc_a = $1 OR c.npc_b = $1
		ORDER BY n.name`
	rows, err := s.db.Query(ctx, query, npcID)
	if err != nil {
		return nil, fmt.Errorf("npc: connections: %w", err)
	}
	defer rows.Close()

	var out []Connection
	for rows.Next() {
		var c Connection
		if err := rows.Scan(&c.OtherID, &c.OtherName, &c.Relationship, &c.Notes); err != nil {
			return nil, fmt.Errorf("npc: connections scan: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PostgresStore) appearances(ctx context.Context, npcID int64) ([]Appearance, error) {
	const query = `SELECT product, role FROM npc_appearances WHERE npc_id = $1 ORDER BY product`
	rows, err := s.db.Query(ctx, query, npcID)
	if err != nil {
		return nil, fmt.Errorf("npc: appearances: %w", err)
	}
	defer rows.Close()

	var out []Appearance
	for rows.Next() {
		var a Appearance
		if err := rows.Scan(&a.Product, &a.Role); err != nil {
			return nil, fmt.Errorf("npc: appearances scan: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// queryOverviews runs an overview query and scans the rows.
func (s *PostgresStore) queryOverviews(ctx context.Context, query string, args ...any) ([]Overview, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("npc: list: %w", err)
	}
	defer rows.Close()

	var out []Overview
	for rows.Next() {
		var o Overview
		if err := rows.Scan(
			&o.ID, &o.Name, &o.Title, &o.Region, &o.Tier, &o.Archetype,
			&o.StatBlockComplete, &o.NarrativeComplete, &o.FGExportReady,
			&o.Organisations,
		); err != nil {
			return nil, fmt.Errorf("npc: list scan: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("npc: list: %w", err)
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

// listFields holds the JSONB column payloads for one record.
type listFields struct {
	edges, hindrances, gear, powers, abilities []byte
}

// marshalLists serialises the record's flat text lists for the JSONB
// columns. Nil slices become "[]" rather than "null".
func marshalLists(rec *Record) (listFields, error) {
	var lf listFields
	var err error
	for _, f := range []struct {
		name string
		src  []string
		dst  *[]byte
	}{
		{"edges", rec.Edges, &lf.edges},
		{"hindrances", rec.Hindrances, &lf.hindrances},
		{"gear", rec.Gear, &lf.gear},
		{"powers", rec.Powers, &lf.powers},
		{"special_abilities", rec.SpecialAbilities, &lf.abilities},
	} {
		if *f.dst, err = json.Marshal(emptySlice(f.src)); err != nil {
			return lf, fmt.Errorf("npc: marshal %s: %w", f.name, err)
		}
	}
	return lf, nil
}

// recordArgs orders the record's mutable fields for insert and update
// statements.
func recordArgs(rec *Record, lf listFields) []any {
	return []any{
		rec.Name, rec.Title, rec.Region, rec.Tier, rec.Archetype, rec.RankGuideline,
		rec.Quote, rec.Description, rec.Background,
		rec.Agility, rec.Smarts, rec.Spirit, rec.Strength, rec.Vigor,
		rec.Pace, rec.Parry, rec.Toughness, rec.ToughnessArmor, rec.Size,
		rec.Bennies, rec.PowerPoints,
		lf.edges, lf.hindrances, lf.gear, lf.powers, lf.abilities,
		rec.Motivation, rec.Secret, rec.Tactics, rec.Services, rec.AdventureHook, rec.Notes,
		rec.StatBlockComplete, rec.NarrativeComplete, rec.FGExportReady,
		rec.SourceDocument,
	}
}

// scanRecord scans one npcs row in [recordColumns] order.
func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	var edges, hindrances, gear, powers, abilities []byte

	err := row.Scan(
		&rec.ID, &rec.Name, &rec.Title, &rec.Region, &rec.Tier, &rec.Archetype,
		&rec.RankGuideline, &rec.Quote, &rec.Description, &rec.Background,
		&rec.Agility, &rec.Smarts, &rec.Spirit, &rec.Strength, &rec.Vigor,
		&rec.Pace, &rec.Parry, &rec.Toughness, &rec.ToughnessArmor, &rec.Size,
		&rec.Bennies, &rec.PowerPoints,
		&edges, &hindrances, &gear, &powers, &abilities,
		&rec.Motivation, &rec.Secret, &rec.Tactics, &rec.Services,
		&rec.AdventureHook, &rec.Notes,
		&rec.StatBlockComplete, &rec.NarrativeComplete, &rec.FGExportReady,
		&rec.SourceDocument, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	for _, f := range []struct {
		name string
		src  []byte
		dst  *[]string
	}{
		{"edges", edges, &rec.Edges},
		{"hindrances", hindrances, &rec.Hindrances},
		{"gear", gear, &rec.Gear},
		{"powers", powers, &rec.Powers},
		{"special_abilities", abilities, &rec.SpecialAbilities},
	} {
		if err := json.Unmarshal(f.src, f.dst); err != nil {
			return nil, fmt.Errorf("npc: unmarshal %s: %w", f.name, err)
		}
	}
	return &rec, nil
}

// emptySlice returns s if non-nil, otherwise an empty non-nil slice. This
// ensures JSON marshalling produces "[]" instead of "null".
func emptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// isDuplicateKeyError checks whether a PostgreSQL error is a
// unique-violation (SQLSTATE 23505).
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// isForeignKeyError checks whether a PostgreSQL error is a
// foreign-key-violation (SQLSTATE 23503).
func isForeignKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
