package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/diceforge/npcdb/internal/catalog"
	"github.com/diceforge/npcdb/internal/npc"
)

// ─── add ─────────────────────────────────────────────────────────────────────

func cmdAdd(ctx context.Context, store npc.Store, args []string) int {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	var rec npc.Record
	fs.StringVar(&rec.Name, "name", "", "NPC name (required)")
	fs.StringVar(&rec.Title, "title", "", "title or epithet")
	fs.StringVar(&rec.Region, "region", "Global", "region: "+strings.Join(npc.Regions, ", "))
	fs.StringVar(&rec.Tier, "tier", "Extra", "tier: "+strings.Join(npc.Tiers, ", "))
	fs.StringVar(&rec.Archetype, "archetype", "", "archetype (e.g. Soldier, Priest)")
	fs.StringVar(&rec.RankGuideline, "rank", "", "rank guideline (Novice … Legendary)")
	fs.StringVar(&rec.Quote, "quote", "", "signature quote")
	fs.StringVar(&rec.Description, "description", "", "physical description")
	fs.IntVar(&rec.Agility, "agility", 0, "Agility die")
	fs.IntVar(&rec.Smarts, "smarts", 0, "Smarts die")
	fs.IntVar(&rec.Spirit, "spirit", 0, "Spirit die")
	fs.IntVar(&rec.Strength, "strength", 0, "Strength die")
	fs.IntVar(&rec.Vigor, "vigor", 0, "Vigor die")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := rec.Validate(); err != nil {
		return fail(err)
	}
	if err := store.Create(ctx, &rec); err != nil {
		return fail(err)
	}
	fmt.Printf("added %q (#%d)\n", rec.Name, rec.ID)
	return 0
}

// ─── list / search ───────────────────────────────────────────────────────────

func cmdList(ctx context.Context, store npc.Store, args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	var opts npc.ListOptions
	fs.StringVar(&opts.Region, "region", "", "filter by region")
	fs.StringVar(&opts.Tier, "tier", "", "filter by tier")
	fs.StringVar(&opts.Organisation, "org", "", "filter by organisation")
	fs.BoolVar(&opts.Incomplete, "incomplete", false, "only NPCs missing a stat block or narrative")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	rows, err := store.List(ctx, opts)
	if err != nil {
		return fail(err)
	}
	printOverviews(rows)
	return 0
}

func cmdSearch(ctx context.Context, store npc.Store, args []string) int {
	if len(args) == 0 {
		return fail(fmt.Errorf("search needs a query"))
	}
	rows, err := store.Search(ctx, strings.Join(args, " "))
	if err != nil {
		return fail(err)
	}
	printOverviews(rows)
	return 0
}

func printOverviews(rows []npc.Overview) {
	if len(rows) == 0 {
		fmt.Println("no NPCs found")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tREGION\tTIER\tARCHETYPE\tORGS\tFLAGS")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Name, r.Region, r.Tier, r.Archetype, r.Organisations, flags(r))
	}
	w.Flush()
}

// flags renders the completion markers: S = stat block, N = narrative,
// F = export-ready.
func flags(r npc.Overview) string {
	var b strings.Builder
	if r.StatBlockComplete {
		b.WriteByte('S')
	}
	if r.NarrativeComplete {
		b.WriteByte('N')
	}
	if r.FGExportReady {
		b.WriteByte('F')
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}

// ─── show / statblock ────────────────────────────────────────────────────────

func cmdShow(ctx context.Context, store npc.Store, args []string) int {
	if len(args) == 0 {
		return fail(fmt.Errorf("show needs a name or ID"))
	}
	id, err := resolveArg(ctx, store, strings.Join(args, " "))
	if err != nil {
		return fail(err)
	}
	d, err := store.GetDetail(ctx, id)
	if err != nil {
		return fail(err)
	}
	printDetail(d)
	return 0
}

func printDetail(d *npc.Detail) {
	r := &d.Record
	fmt.Printf("#%d %s", r.ID, r.Name)
	if r.Title != "" {
		fmt.Printf(", %s", r.Title)
	}
	fmt.Printf("  [%s / %s]\n", r.Region, r.Tier)
	if r.Archetype != "" || r.RankGuideline != "" {
		fmt.Printf("%s %s\n", r.Archetype, r.RankGuideline)
	}
	fmt.Println()
	fmt.Print(npc.Statblock(d))

	if len(d.Organisations) > 0 {
		fmt.Println("\nOrganisations:")
		for _, m := range d.Organisations {
			if m.Role != "" {
				fmt.Printf("  %s (%s)\n", m.Organisation, m.Role)
			} else {
				fmt.Printf("  %s\n", m.Organisation)
			}
		}
	}
	if len(d.Connections) > 0 {
		fmt.Println("\nConnections:")
		for _, c := range d.Connections {
			line := fmt.Sprintf("  %s — %s", c.OtherName, c.Relationship)
			if c.Notes != "" {
				line += " (" + c.Notes + ")"
			}
			fmt.Println(line)
		}
	}
	if len(d.Appearances) > 0 {
		fmt.Println("\nAppears in:")
		for _, a := range d.Appearances {
			if a.Role != "" {
				fmt.Printf("  %s — %s\n", a.Product, a.Role)
			} else {
				fmt.Printf("  %s\n", a.Product)
			}
		}
	}

	narrative := []struct{ label, text string }{
		{"Motivation", r.Motivation},
		{"Secret", r.Secret},
		{"Tactics", r.Tactics},
		{"Services", r.Services},
		{"Adventure Hook", r.AdventureHook},
		{"Notes", r.Notes},
	}
	for _, n := range narrative {
		if n.text != "" {
			fmt.Printf("\n%s: %s\n", n.label, n.text)
		}
	}
}

func cmdStatblock(ctx context.Context, store npc.Store, args []string) int {
	if len(args) == 0 {
		return fail(fmt.Errorf("statblock needs a name or ID"))
	}
	id, err := resolveArg(ctx, store, strings.Join(args, " "))
	if err != nil {
		return fail(err)
	}
	d, err := store.GetDetail(ctx, id)
	if err != nil {
		return fail(err)
	}
	fmt.Print(npc.Statblock(d))
	return 0
}

// ─── edit ────────────────────────────────────────────────────────────────────

func cmdEdit(ctx context.Context, store npc.Store, args []string) int {
	if len(args) < 3 {
		return fail(fmt.Errorf("usage: edit ID FIELD VALUE"))
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fail(fmt.Errorf("invalid id %q", args[0]))
	}
	field := args[1]
	value := strings.Join(args[2:], " ")

	rec, err := store.Get(ctx, id)
	if err != nil {
		return fail(err)
	}
	if err := setField(rec, field, value); err != nil {
		return fail(err)
	}
	if err := rec.Validate(); err != nil {
		return fail(err)
	}
	if err := store.Update(ctx, rec); err != nil {
		return fail(err)
	}
	fmt.Printf("updated %s on #%d\n", field, id)
	return 0
}

// setField assigns one named field on the record. List fields take
// comma-separated values; boolean flags take true/false.
func setField(rec *npc.Record, field, value string) error {
	switch field {
	case "name":
		rec.Name = value
	case "title":
		rec.Title = value
	case "region":
		rec.Region = value
	case "tier":
		rec.Tier = value
	case "archetype":
		rec.Archetype = value
	case "rank":
		rec.RankGuideline = value
	case "quote":
		rec.Quote = value
	case "description":
		rec.Description = value
	case "background":
		rec.Background = value
	case "motivation":
		rec.Motivation = value
	case "secret":
		rec.Secret = value
	case "tactics":
		rec.Tactics = value
	case "services":
		rec.Services = value
	case "hook":
		rec.AdventureHook = value
	case "notes":
		rec.Notes = value
	case "source":
		rec.SourceDocument = value
	case "agility", "smarts", "spirit", "strength", "vigor",
		"pace", "parry", "toughness", "armor", "size", "bennies", "power-points":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s needs a number, got %q", field, value)
		}
		setIntField(rec, field, n)
	case "edges":
		rec.Edges = splitList(value)
	case "hindrances":
		rec.Hindrances = splitList(value)
	case "gear":
		rec.Gear = splitList(value)
	case "powers":
		rec.Powers = splitList(value)
	case "abilities":
		rec.SpecialAbilities = splitList(value)
	case "stats-done", "narrative-done", "fg-ready":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s needs true or false, got %q", field, value)
		}
		switch field {
		case "stats-done":
			rec.StatBlockComplete = b
		case "narrative-done":
			rec.NarrativeComplete = b
		case "fg-ready":
			rec.FGExportReady = b
		}
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

func setIntField(rec *npc.Record, field string, n int) {
	switch field {
	case "agility":
		rec.Agility = n
	case "smarts":
		rec.Smarts = n
	case "spirit":
		rec.Spirit = n
	case "strength":
		rec.Strength = n
	case "vigor":
		rec.Vigor = n
	case "pace":
		rec.Pace = n
	case "parry":
		rec.Parry = n
	case "toughness":
		rec.Toughness = n
	case "armor":
		rec.ToughnessArmor = n
	case "size":
		rec.Size = n
	case "bennies":
		rec.Bennies = n
	case "power-points":
		rec.PowerPoints = n
	}
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ─── child rows ──────────────────────────────────────────────────────────────

func cmdAddSkill(ctx context.Context, store npc.Store, args []string) int {
	if len(args) < 3 {
		return fail(fmt.Errorf("usage: add-skill ID NAME DIE [MODIFIER]"))
	}
	id, err := resolveArg(ctx, store, args[0])
	if err != nil {
		return fail(err)
	}
	die, err := strconv.Atoi(args[2])
	if err != nil {
		return fail(fmt.Errorf("invalid die %q", args[2]))
	}
	s := npc.Skill{Name: args[1], Die: die}
	if len(args) > 3 {
		if s.Modifier, err = strconv.Atoi(args[3]); err != nil {
			return fail(fmt.Errorf("invalid modifier %q", args[3]))
		}
	}
	if err := store.PutSkill(ctx, id, s); err != nil {
		return fail(err)
	}
	fmt.Printf("set %s d%d on #%d\n", s.Name, s.Die, id)
	return 0
}

func cmdAddWeapon(ctx context.Context, store npc.Store, args []string) int {
	if len(args) == 0 {
		return fail(fmt.Errorf("usage: add-weapon ID -name N -damage D [flags]"))
	}
	id, err := resolveArg(ctx, store, args[0])
	if err != nil {
		return fail(err)
	}

	fs := flag.NewFlagSet("add-weapon", flag.ContinueOnError)
	var w npc.Weapon
	var fromCatalog bool
	fs.StringVar(&w.Name, "name", "", "weapon name (required)")
	fs.StringVar(&w.DamageStr, "damage", "", `damage expression, e.g. "Str+d8" or "2d6"`)
	fs.IntVar(&w.DamageBonus, "bonus", 0, "flat damage bonus")
	fs.IntVar(&w.ArmorPiercing, "ap", 0, "armor piercing")
	fs.StringVar(&w.TraitType, "trait", "Melee", "trait type: Melee, Ranged, Thrown")
	fs.StringVar(&w.Range, "range", "", `range increments, e.g. "12/24/48"`)
	fs.IntVar(&w.Reach, "reach", 0, "reach")
	fs.StringVar(&w.Notes, "notes", "", "notes")
	fs.BoolVar(&fromCatalog, "catalog", false, "fill damage/AP/range from the equipment catalogue entry named by -name")
	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}
	if fromCatalog {
		entry, ok := catalog.LookupWeapon(w.Name)
		if !ok {
			return fail(fmt.Errorf("no catalogue weapon named %q", w.Name))
		}
		w.DamageStr = entry.DamageStr
		w.ArmorPiercing = entry.AP
		w.TraitType = entry.TraitType
		w.Range = entry.Range
		w.Reach = entry.Reach
		if w.Notes == "" {
			w.Notes = entry.Notes
		}
	}
	if w.Name == "" || w.DamageStr == "" {
		return fail(fmt.Errorf("add-weapon needs -name and -damage"))
	}

	// Resolve Str-relative damage against the wielder now so exports don't
	// have to.
	rec, err := store.Get(ctx, id)
	if err != nil {
		return fail(err)
	}
	w.DamageDice = npc.ResolveDamage(w.DamageStr, rec.Strength)

	if err := store.AddWeapon(ctx, id, w); err != nil {
		return fail(err)
	}
	fmt.Printf("added %s (%s) to #%d\n", w.Name, w.DamageStr, id)
	return 0
}

func cmdAddOrg(ctx context.Context, store npc.Store, args []string) int {
	fs := flag.NewFlagSet("add-org", flag.ContinueOnError)
	var org npc.Organisation
	fs.StringVar(&org.Name, "name", "", "organisation name (required)")
	fs.StringVar(&org.Region, "region", "", "home region")
	fs.StringVar(&org.Type, "type", "", "organisation type (Guild, Temple, …)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if org.Name == "" {
		return fail(fmt.Errorf("add-org needs -name"))
	}
	if err := store.CreateOrganisation(ctx, &org); err != nil {
		return fail(err)
	}
	fmt.Printf("added organisation %q (#%d)\n", org.Name, org.ID)
	return 0
}

func cmdLinkOrg(ctx context.Context, store npc.Store, args []string) int {
	if len(args) < 2 {
		return fail(fmt.Errorf("usage: link-org NAME_OR_ID ORG [ROLE]"))
	}
	id, err := resolveArg(ctx, store, args[0])
	if err != nil {
		return fail(err)
	}
	role := ""
	if len(args) > 2 {
		role = strings.Join(args[2:], " ")
	}
	if err := store.LinkOrganisation(ctx, id, args[1], role); err != nil {
		return fail(err)
	}
	fmt.Printf("linked #%d to %s\n", id, args[1])
	return 0
}

func cmdLinkNPC(ctx context.Context, store npc.Store, args []string) int {
	if len(args) < 3 {
		return fail(fmt.Errorf("usage: link-npc A_ID B_ID RELATIONSHIP [NOTES]"))
	}
	aID, err := resolveArg(ctx, store, args[0])
	if err != nil {
		return fail(err)
	}
	bID, err := resolveArg(ctx, store, args[1])
	if err != nil {
		return fail(err)
	}
	notes := ""
	if len(args) > 3 {
		notes = strings.Join(args[3:], " ")
	}
	if err := store.Connect(ctx, aID, bID, args[2], notes); err != nil {
		return fail(err)
	}
	fmt.Printf("connected #%d and #%d: %s\n", aID, bID, args[2])
	return 0
}

func cmdAppear(ctx context.Context, store npc.Store, args []string) int {
	if len(args) < 2 {
		return fail(fmt.Errorf("usage: appear NAME_OR_ID PRODUCT [ROLE]"))
	}
	id, err := resolveArg(ctx, store, args[0])
	if err != nil {
		return fail(err)
	}
	a := npc.Appearance{Product: args[1]}
	if len(args) > 2 {
		a.Role = strings.Join(args[2:], " ")
	}
	if err := store.AddAppearance(ctx, id, a); err != nil {
		return fail(err)
	}
	fmt.Printf("recorded appearance of #%d in %s\n", id, a.Product)
	return 0
}

// ─── status ──────────────────────────────────────────────────────────────────

func cmdStatus(ctx context.Context, store npc.Store, args []string) int {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	region := fs.String("region", "", "restrict to one region")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	rows, err := store.Status(ctx, *region)
	if err != nil {
		return fail(err)
	}
	if len(rows) == 0 {
		fmt.Println("no NPCs found")
		return 0
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "REGION\tTIER\tTOTAL\tSTATS\tNARRATIVE\tFG-READY")
	var total, stats, narrative, ready int
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\n",
			r.Region, r.Tier, r.Total, r.StatsDone, r.NarrativeDone, r.FGReady)
		total += r.Total
		stats += r.StatsDone
		narrative += r.NarrativeDone
		ready += r.FGReady
	}
	fmt.Fprintf(w, "ALL\t\t%d\t%d\t%d\t%d\n", total, stats, narrative, ready)
	w.Flush()
	return 0
}
