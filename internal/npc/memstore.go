package npc

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// Compile-time assertion that MemStore satisfies the Store interface.
var _ Store = (*MemStore)(nil)

// MemStore is a thread-safe, in-memory implementation of [Store]. It backs
// tests and dry-run imports.
type MemStore struct {
	mu     sync.RWMutex
	nextID int64

	records map[int64]*Record
	skills  map[int64][]Skill
	weapons map[int64][]Weapon
	armor   map[int64][]Armor
	orgs    map[int64]*Organisation
	members map[int64][]memberRow // npcID -> memberships
	links   []linkRow
	appears map[int64][]Appearance

	// now is overridable in tests.
	now func() time.Time
}

type memberRow struct {
	orgID int64
	role  string
}

type linkRow struct {
	a, b         int64
	relationship string
	notes        string
}

// NewMemStore returns an initialised [MemStore].
func NewMemStore() *MemStore {
	return &MemStore{
		nextID:  1,
		records: make(map[int64]*Record),
		skills:  make(map[int64][]Skill),
		weapons: make(map[int64][]Weapon),
		armor:   make(map[int64][]Armor),
		orgs:    make(map[int64]*Organisation),
		members: make(map[int64][]memberRow),
		appears: make(map[int64][]Appearance),
		now:     time.Now,
	}
}

// Create implements [Store.Create].
func (s *MemStore) Create(ctx context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ID = s.nextID
	s.nextID++
	rec.CreatedAt = s.now()
	rec.UpdatedAt = rec.CreatedAt

	cp := *rec
	s.records[rec.ID] = &cp
	return nil
}

// Get implements [Store.Get].
func (s *MemStore) Get(ctx context.Context, id int64) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

// GetDetail implements [Store.GetDetail].
func (s *MemStore) GetDetail(ctx context.Context, id int64) (*Detail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}

	d := &Detail{
		Record:      *rec,
		Skills:      append([]Skill(nil), s.skills[id]...),
		Weapons:     append([]Weapon(nil), s.weapons[id]...),
		Armor:       append([]Armor(nil), s.armor[id]...),
		Appearances: append([]Appearance(nil), s.appears[id]...),
	}
	sort.Slice(d.Skills, func(i, j int) bool { return d.Skills[i].Name < d.Skills[j].Name })

	for _, m := range s.members[id] {
		if org, ok := s.orgs[m.orgID]; ok {
			d.Organisations = append(d.Organisations, Membership{Organisation: org.Name, Role: m.role})
		}
	}
	for _, l := range s.links {
		var otherID int64
		switch id {
		case l.a:
			otherID = l.b
		case l.b:
			otherID = l.a
		default:
			continue
		}
		if other, ok := s.records[otherID]; ok {
			d.Connections = append(d.Connections, Connection{
				OtherID:      otherID,
				OtherName:    other.Name,
				Relationship: l.relationship,
				Notes:        l.notes,
			})
		}
	}
	return d, nil
}

// Update implements [Store.Update].
func (s *MemStore) Update(ctx context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.records[rec.ID]
	if !ok {
		return ErrNotFound
	}
	rec.CreatedAt = old.CreatedAt
	rec.UpdatedAt = s.now()

	cp := *rec
	s.records[rec.ID] = &cp
	return nil
}

// Delete implements [Store.Delete].
func (s *MemStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	delete(s.records, id)
	delete(s.skills, id)
	delete(s.weapons, id)
	delete(s.armor, id)
	delete(s.members, id)
	delete(s.appears, id)

	kept := s.links[:0]
	for _, l := range s.links {
		if l.a != id && l.b != id {
			kept = append(kept, l)
		}
	}
	s.links = kept
	return nil
}

// List implements [Store.List].
func (s *MemStore) List(ctx context.Context, opts ListOptions) ([]Overview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Overview
	for id, rec := range s.records {
		if !s.matchesOpts(id, rec, opts) {
			continue
		}
		out = append(out, s.overview(id, rec))
	}
	sortOverviews(out)
	return out, nil
}

// Search implements [Store.Search].
func (s *MemStore) Search(ctx context.Context, query string) ([]Overview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	var out []Overview
	for id, rec := range s.records {
		haystack := strings.ToLower(strings.Join([]string{
			rec.Name, rec.Title, rec.Archetype, rec.Description,
			rec.Background, rec.Motivation, rec.Quote, rec.Notes,
		}, "\n"))
		if strings.Contains(haystack, q) {
			out = append(out, s.overview(id, rec))
		}
	}
	sortOverviews(out)
	return out, nil
}

// PutSkill implements [Store.PutSkill].
func (s *MemStore) PutSkill(ctx context.Context, npcID int64, sk Skill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[npcID]; !ok {
		return ErrNotFound
	}
	rows := s.skills[npcID]
	for i, existing := range rows {
		if strings.EqualFold(existing.Name, sk.Name) {
			rows[i] = sk
			return nil
		}
	}
	s.skills[npcID] = append(rows, sk)
	return nil
}

// AddWeapon implements [Store.AddWeapon].
func (s *MemStore) AddWeapon(ctx context.Context, npcID int64, w Weapon) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[npcID]; !ok {
		return ErrNotFound
	}
	s.weapons[npcID] = append(s.weapons[npcID], w)
	return nil
}

// AddArmor implements [Store.AddArmor].
func (s *MemStore) AddArmor(ctx context.Context, npcID int64, a Armor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[npcID]; !ok {
		return ErrNotFound
	}
	s.armor[npcID] = append(s.armor[npcID], a)
	return nil
}

// CreateOrganisation implements [Store.CreateOrganisation].
func (s *MemStore) CreateOrganisation(ctx context.Context, org *Organisation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findOrg(org.Name); ok {
		return ErrDuplicate
	}
	org.ID = s.nextID
	s.nextID++
	cp := *org
	s.orgs[org.ID] = &cp
	return nil
}

// Organisations implements [Store.Organisations].
func (s *MemStore) Organisations(ctx context.Context) ([]Organisation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Organisation, 0, len(s.orgs))
	for _, org := range s.orgs {
		out = append(out, *org)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// LinkOrganisation implements [Store.LinkOrganisation].
func (s *MemStore) LinkOrganisation(ctx context.Context, npcID int64, orgName, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[npcID]; !ok {
		return ErrNotFound
	}
	org, ok := s.findOrg(orgName)
	if !ok {
		org = &Organisation{ID: s.nextID, Name: orgName}
		s.nextID++
		s.orgs[org.ID] = org
	}
	for _, m := range s.members[npcID] {
		if m.orgID == org.ID {
			return ErrDuplicate
		}
	}
	s.members[npcID] = append(s.members[npcID], memberRow{orgID: org.ID, role: role})
	return nil
}

// Connect implements [Store.Connect].
func (s *MemStore) Connect(ctx context.Context, aID, bID int64, relationship, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[aID]; !ok {
		return ErrNotFound
	}
	if _, ok := s.records[bID]; !ok {
		return ErrNotFound
	}
	s.links = append(s.links, linkRow{a: aID, b: bID, relationship: relationship, notes: notes})
	return nil
}

// AddAppearance implements [Store.AddAppearance].
func (s *MemStore) AddAppearance(ctx context.Context, npcID int64, a Appearance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[npcID]; !ok {
		return ErrNotFound
	}
	s.appears[npcID] = append(s.appears[npcID], a)
	return nil
}

// Status implements [Store.Status].
func (s *MemStore) Status(ctx context.Context, region string) ([]StatusRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type key struct{ region, tier string }
	agg := make(map[key]*StatusRow)
	for _, rec := range s.records {
		if region != "" && rec.Region != region {
			continue
		}
		k := key{rec.Region, rec.Tier}
		row, ok := agg[k]
		if !ok {
			row = &StatusRow{Region: rec.Region, Tier: rec.Tier}
			agg[k] = row
		}
		row.Total++
		if rec.StatBlockComplete {
			row.StatsDone++
		}
		if rec.NarrativeComplete {
			row.NarrativeDone++
		}
		if rec.FGExportReady {
			row.FGReady++
		}
	}

	out := make([]StatusRow, 0, len(agg))
	for _, row := range agg {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Region != out[j].Region {
			return out[i].Region < out[j].Region
		}
		return out[i].Tier < out[j].Tier
	})
	return out, nil
}

// Import implements [Store.Import]. The import is best-effort: bundles are
// added one at a time and the count of NPCs created is returned along with
// the first error encountered.
func (s *MemStore) Import(ctx context.Context, bundles []Bundle) (int, error) {
	count := 0
	for i := range bundles {
		b := &bundles[i]
		if err := s.Create(ctx, &b.Record); err != nil {
			return count, err
		}
		id := b.Record.ID
		for _, sk := range b.Skills {
			if err := s.PutSkill(ctx, id, sk); err != nil {
				return count, err
			}
		}
		for _, w := range b.Weapons {
			if err := s.AddWeapon(ctx, id, w); err != nil {
				return count, err
			}
		}
		for _, a := range b.Armor {
			if err := s.AddArmor(ctx, id, a); err != nil {
				return count, err
			}
		}
		for _, m := range b.Memberships {
			if err := s.LinkOrganisation(ctx, id, m.Organisation, m.Role); err != nil {
				return count, err
			}
		}
		for _, ap := range b.Appearances {
			if err := s.AddAppearance(ctx, id, ap); err != nil {
				return count, err
			}
		}
		count++
	}
	return count, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

// findOrg looks up an organisation by name, case-insensitively. Callers hold
// the lock.
func (s *MemStore) findOrg(name string) (*Organisation, bool) {
	for _, org := range s.orgs {
		if strings.EqualFold(org.Name, name) {
			return org, true
		}
	}
	return nil, false
}

// matchesOpts reports whether the record satisfies all conditions in opts.
// Callers hold the lock.
func (s *MemStore) matchesOpts(id int64, rec *Record, opts ListOptions) bool {
	if opts.Region != "" && rec.Region != opts.Region {
		return false
	}
	if opts.Tier != "" && rec.Tier != opts.Tier {
		return false
	}
	if opts.Incomplete && rec.StatBlockComplete && rec.NarrativeComplete {
		return false
	}
	if opts.Organisation != "" {
		found := false
		for _, m := range s.members[id] {
			if org, ok := s.orgs[m.orgID]; ok && strings.EqualFold(org.Name, opts.Organisation) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// overview builds the listing row for a record. Callers hold the lock.
func (s *MemStore) overview(id int64, rec *Record) Overview {
	var names []string
	for _, m := range s.members[id] {
		if org, ok := s.orgs[m.orgID]; ok {
			names = append(names, org.Name)
		}
	}
	sort.Strings(names)
	return Overview{
		ID:                rec.ID,
		Name:              rec.Name,
		Title:             rec.Title,
		Region:            rec.Region,
		Tier:              rec.Tier,
		Archetype:         rec.Archetype,
		StatBlockComplete: rec.StatBlockComplete,
		NarrativeComplete: rec.NarrativeComplete,
		FGExportReady:     rec.FGExportReady,
		Organisations:     strings.Join(names, ", "),
	}
}

// sortOverviews orders rows by region then name.
func sortOverviews(rows []Overview) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Region != rows[j].Region {
			return rows[i].Region < rows[j].Region
		}
		return rows[i].Name < rows[j].Name
	})
}
