// Package fgexport renders NPC records as Fantasy Grounds Unity module XML.
//
// The FG db.xml dialect names each record after the NPC itself: "Lyssa
// Thorne" becomes the element <lyssa_thorne>. Child collections (skills,
// weapons) use synthetic <id-00001> style children. Because element names
// are data, the writer drives [xml.Encoder] at the token level rather than
// marshalling structs.
//
// Two shapes are produced: the bare <npc> section for pasting into an
// existing module, and a complete db.xml with the <library> wrapper when
// [Options.FullModule] is set.
package fgexport

import (
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/diceforge/npcdb/internal/npc"
	"github.com/diceforge/npcdb/internal/rules"
)

// Fantasy Grounds Unity format markers. The release string pins the ruleset
// build the export was verified against.
const (
	rootVersion  = "4.8"
	rulesRelease = "5.14|CoreRPG:7"
	categoryName = "Arr'ath"
)

// Options controls the export shape.
type Options struct {
	// ModuleName names the library entry in full-module output. Empty
	// defaults to "Tribute Lands".
	ModuleName string

	// FullModule wraps the <npc> section in a complete db.xml root with
	// the library index.
	FullModule bool

	// DataVersion is the yyyymmdd stamp on the root element. Empty uses
	// the current date.
	DataVersion string
}

var idPattern = regexp.MustCompile(`[^a-z0-9_]+`)

// ElementID converts an NPC or module name into a valid FG element name:
// lowercased, with runs of other characters collapsed to single
// underscores.
func ElementID(name string) string {
	clean := idPattern.ReplaceAllString(strings.ToLower(name), "_")
	clean = strings.Trim(clean, "_")
	if clean == "" {
		return "unnamed"
	}
	return clean
}

// Write renders the NPCs to w per opts. Records are written in the order
// given; callers sort.
func Write(w io.Writer, details []*npc.Detail, opts Options) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "    ")

	if opts.FullModule {
		if err := writeModule(enc, details, opts); err != nil {
			return err
		}
	} else {
		if err := writeNPCSection(enc, details); err != nil {
			return err
		}
	}
	if err := enc.Flush(); err != nil {
		return fmt.Errorf("fgexport: flush: %w", err)
	}
	return nil
}

// writeModule emits the full db.xml document: declaration, library index,
// and the npc section.
func writeModule(enc *xml.Encoder, details []*npc.Detail, opts Options) error {
	if err := enc.EncodeToken(xml.ProcInst{
		Target: "xml",
		Inst:   []byte(`version="1.0" encoding="utf-8"`),
	}); err != nil {
		return fmt.Errorf("fgexport: xml declaration: %w", err)
	}

	dataVersion := opts.DataVersion
	if dataVersion == "" {
		dataVersion = time.Now().Format("20060102")
	}
	moduleName := opts.ModuleName
	if moduleName == "" {
		moduleName = "Tribute Lands"
	}

	root := start("root",
		attr("version", rootVersion),
		attr("dataversion", dataVersion),
		attr("release", rulesRelease),
	)
	if err := enc.EncodeToken(root); err != nil {
		return fmt.Errorf("fgexport: root: %w", err)
	}

	if err := writeLibrary(enc, moduleName); err != nil {
		return err
	}
	if err := writeNPCSection(enc, details); err != nil {
		return err
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return fmt.Errorf("fgexport: root: %w", err)
	}
	return nil
}

// writeLibrary emits the <library> index FG uses to surface the module in
// its sidebar.
func writeLibrary(enc *xml.Encoder, moduleName string) error {
	lib := start("library")
	module := start(ElementID(moduleName), attr("static", "true"))

	err := tokens(enc,
		lib, module,
	)
	if err != nil {
		return err
	}
	if err := typedString(enc, "categoryname", categoryName); err != nil {
		return err
	}
	if err := typedString(enc, "name", moduleName); err != nil {
		return err
	}

	entries := start("entries")
	entryNPC := start("npc")
	link := start("librarylink", attr("type", "windowreference"))
	if err := tokens(enc, entries, entryNPC, link); err != nil {
		return err
	}
	if err := simple(enc, "class", "reference_list"); err != nil {
		return err
	}
	if err := simple(enc, "recordname", "npc"); err != nil {
		return err
	}
	if err := tokens(enc, link.End()); err != nil {
		return err
	}
	if err := typedString(enc, "name", "NPCs & Creatures"); err != nil {
		return err
	}
	if err := typedString(enc, "recordtype", "npc"); err != nil {
		return err
	}
	return tokens(enc, entryNPC.End(), entries.End(), module.End(), lib.End())
}

// writeNPCSection emits <npc static="true"> with one child per record.
func writeNPCSection(enc *xml.Encoder, details []*npc.Detail) error {
	section := start("npc", attr("static", "true"))
	if err := tokens(enc, section); err != nil {
		return err
	}
	for _, d := range details {
		if err := writeNPC(enc, d); err != nil {
			return fmt.Errorf("fgexport: npc %q: %w", d.Record.Name, err)
		}
	}
	return tokens(enc, section.End())
}

// writeNPC emits one NPC record element.
func writeNPC(enc *xml.Encoder, d *npc.Detail) error {
	rec := &d.Record
	el := start(ElementID(rec.Name))
	if err := tokens(enc, el); err != nil {
		return err
	}

	if err := typedString(enc, "name", rec.Name); err != nil {
		return err
	}

	if rec.Tier == "Wild Card" {
		if err := typedNumber(enc, "wildcard", 1); err != nil {
			return err
		}
		bennies := rec.Bennies
		if bennies == 0 {
			bennies = 3
		}
		if err := typedNumber(enc, "bennies", bennies); err != nil {
			return err
		}
	}

	for _, a := range rules.Attributes {
		if die := rec.Attribute(a); die > 0 {
			name := strings.ToLower(string(a))
			if err := typedDice(enc, name, die); err != nil {
				return err
			}
		}
	}

	if err := typedNumber(enc, "pace", defaultInt(rec.Pace, 6)); err != nil {
		return err
	}
	if err := typedNumber(enc, "parry", defaultInt(rec.Parry, 2)); err != nil {
		return err
	}
	if err := typedNumber(enc, "toughness", defaultInt(rec.Toughness, 5)); err != nil {
		return err
	}
	if rec.ToughnessArmor > 0 {
		if err := typedNumber(enc, "toughnessarmor", rec.ToughnessArmor); err != nil {
			return err
		}
	}
	if rec.Size != 0 {
		if err := typedNumber(enc, "size", rec.Size); err != nil {
			return err
		}
	}

	if err := writeSkills(enc, d.Skills); err != nil {
		return err
	}

	if len(rec.Edges) > 0 {
		if err := typedString(enc, "edges", strings.Join(rec.Edges, ", ")); err != nil {
			return err
		}
	}
	if len(rec.Hindrances) > 0 {
		if err := typedString(enc, "hindrances", strings.Join(rec.Hindrances, ", ")); err != nil {
			return err
		}
	}
	if len(rec.Gear) > 0 {
		if err := typedString(enc, "gear", strings.Join(rec.Gear, ", ")); err != nil {
			return err
		}
	}

	if err := writeWeapons(enc, d.Weapons, rec.Strength); err != nil {
		return err
	}

	if rec.PowerPoints > 0 {
		if err := typedNumber(enc, "powerpoints", rec.PowerPoints); err != nil {
			return err
		}
		if len(rec.Powers) > 0 {
			if err := typedString(enc, "powers", strings.Join(rec.Powers, ", ")); err != nil {
				return err
			}
		}
	}
	if len(rec.SpecialAbilities) > 0 {
		if err := typedString(enc, "specialabilities", strings.Join(rec.SpecialAbilities, "; ")); err != nil {
			return err
		}
	}

	if err := writeDescription(enc, rec); err != nil {
		return err
	}

	if err := typedElement(enc, "token", "token", "tokens/"+ElementID(rec.Name)+".png"); err != nil {
		return err
	}

	return tokens(enc, el.End())
}

// writeSkills emits the <skills> collection with id-%05d children.
func writeSkills(enc *xml.Encoder, skills []npc.Skill) error {
	if len(skills) == 0 {
		return nil
	}
	section := start("skills")
	if err := tokens(enc, section); err != nil {
		return err
	}
	for i, s := range skills {
		el := start(fmt.Sprintf("id-%05d", i+1))
		if err := tokens(enc, el); err != nil {
			return err
		}
		if err := typedString(enc, "name", s.Name); err != nil {
			return err
		}
		if err := typedDice(enc, "skill", s.Die); err != nil {
			return err
		}
		if err := typedNumber(enc, "adjustment", s.Modifier); err != nil {
			return err
		}
		if err := typedNumber(enc, "skillmod", s.Modifier); err != nil {
			return err
		}
		if err := tokens(enc, el.End()); err != nil {
			return err
		}
	}
	return tokens(enc, section.End())
}

// writeWeapons emits the <weaponlist> collection for the FG combat tab.
// Symbolic Str damage is resolved against the wielder's Strength for the
// damagedice field; the readable expression is kept in damage.
func writeWeapons(enc *xml.Encoder, weapons []npc.Weapon, strength int) error {
	if len(weapons) == 0 {
		return nil
	}
	section := start("weaponlist")
	if err := tokens(enc, section); err != nil {
		return err
	}
	for i, w := range weapons {
		el := start(fmt.Sprintf("id-%05d", i+1))
		if err := tokens(enc, el); err != nil {
			return err
		}
		if err := typedString(enc, "name", w.Name); err != nil {
			return err
		}
		if err := typedString(enc, "damage", w.DamageStr); err != nil {
			return err
		}
		dice := w.DamageDice
		if dice == "" {
			dice = npc.ResolveDamage(w.DamageStr, strength)
		}
		if err := typedElement(enc, "damagedice", "dice", dice); err != nil {
			return err
		}
		if err := typedNumber(enc, "damagebonus", w.DamageBonus); err != nil {
			return err
		}
		if w.ArmorPiercing > 0 {
			if err := typedNumber(enc, "armorpiercing", w.ArmorPiercing); err != nil {
				return err
			}
		}
		if err := typedString(enc, "traittype", w.TraitType); err != nil {
			return err
		}
		if err := typedNumber(enc, "traitcount", 0); err != nil {
			return err
		}
		if err := typedNumber(enc, "fumble", 1); err != nil {
			return err
		}
		if w.Range != "" {
			if err := typedString(enc, "range", w.Range); err != nil {
				return err
			}
		}
		if err := typedNumber(enc, "reach", w.Reach); err != nil {
			return err
		}
		if w.Notes != "" {
			if err := typedString(enc, "notes", w.Notes); err != nil {
				return err
			}
		}

		bonus := start("bonuslist")
		if err := tokens(enc, bonus, bonus.End()); err != nil {
			return err
		}
		link := start("link", attr("type", "windowreference"))
		if err := tokens(enc, link); err != nil {
			return err
		}
		if err := simple(enc, "class", "weapon"); err != nil {
			return err
		}
		recordname := start("recordname")
		if err := tokens(enc, recordname, recordname.End(), link.End()); err != nil {
			return err
		}

		if err := tokens(enc, el.End()); err != nil {
			return err
		}
	}
	return tokens(enc, section.End())
}

// writeDescription emits the formattedtext block FG shows on the record's
// main tab: quote, description, background, then the labelled narrative
// paragraphs.
func writeDescription(enc *xml.Encoder, rec *npc.Record) error {
	type paragraph struct {
		label  string // bold prefix, empty for plain paragraphs
		text   string
		italic bool
	}
	paras := []paragraph{
		{text: quoted(rec.Quote), italic: true},
		{text: rec.Description},
		{text: rec.Background},
		{label: "What They Want:", text: rec.Motivation},
		{label: "Their Secret:", text: rec.Secret},
		{label: "Tactics:", text: rec.Tactics},
		{label: "Services:", text: rec.Services},
	}

	nonEmpty := false
	for _, p := range paras {
		if p.text != "" {
			nonEmpty = true
			break
		}
	}
	if !nonEmpty {
		return nil
	}

	text := start("text", attr("type", "formattedtext"))
	if err := tokens(enc, text); err != nil {
		return err
	}
	for _, para := range paras {
		if para.text == "" {
			continue
		}
		p := start("p")
		if err := tokens(enc, p); err != nil {
			return err
		}
		if para.label != "" {
			b := start("b")
			if err := tokens(enc, b, xml.CharData(para.label), b.End(), xml.CharData(" "+para.text)); err != nil {
				return err
			}
		} else if para.italic {
			i := start("i")
			if err := tokens(enc, i, xml.CharData(para.text), i.End()); err != nil {
				return err
			}
		} else {
			if err := tokens(enc, xml.CharData(para.text)); err != nil {
				return err
			}
		}
		if err := tokens(enc, p.End()); err != nil {
			return err
		}
	}
	return tokens(enc, text.End())
}

// ─────────────────────────────────────────────────────────────────────────────
// Token helpers
// ─────────────────────────────────────────────────────────────────────────────

func start(name string, attrs ...xml.Attr) xml.StartElement {
	return xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs}
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

// tokens encodes each token in order, stopping at the first error.
func tokens(enc *xml.Encoder, toks ...xml.Token) error {
	for _, tok := range toks {
		if err := enc.EncodeToken(tok); err != nil {
			return fmt.Errorf("fgexport: encode: %w", err)
		}
	}
	return nil
}

// typedElement writes <name type="typ">value</name>.
func typedElement(enc *xml.Encoder, name, typ, value string) error {
	el := start(name, attr("type", typ))
	return tokens(enc, el, xml.CharData(value), el.End())
}

func typedString(enc *xml.Encoder, name, value string) error {
	return typedElement(enc, name, "string", value)
}

func typedNumber(enc *xml.Encoder, name string, value int) error {
	return typedElement(enc, name, "number", fmt.Sprintf("%d", value))
}

func typedDice(enc *xml.Encoder, name string, die int) error {
	return typedElement(enc, name, "dice", fmt.Sprintf("d%d", die))
}

// simple writes <name>value</name> with no type attribute.
func simple(enc *xml.Encoder, name, value string) error {
	el := start(name)
	return tokens(enc, el, xml.CharData(value), el.End())
}

func defaultInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// quoted wraps a quote in typographic marks, or returns "" unchanged.
func quoted(q string) string {
	if q == "" {
		return ""
	}
	return `"` + q + `"`
}
