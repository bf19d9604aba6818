package npc

import (
	"fmt"
	"strings"

	"github.com/diceforge/npcdb/internal/rules"
)

// Statblock renders the NPC as a Savage Worlds stat block in the layout the
// published supplements use. Wild Cards are marked with the usual ♦ glyph.
func Statblock(d *Detail) string {
	rec := &d.Record
	var b strings.Builder

	header := rec.Name
	if rec.Tier == "Wild Card" {
		header = "♦ " + header
	}
	b.WriteString(header + "\n")

	var sub []string
	if rec.Title != "" {
		sub = append(sub, rec.Title)
	}
	if rec.Archetype != "" {
		sub = append(sub, rec.Archetype)
	}
	if rec.Region != "" {
		sub = append(sub, rec.Region)
	}
	if len(sub) > 0 {
		b.WriteString(strings.Join(sub, ", ") + "\n")
	}
	if rec.Quote != "" {
		fmt.Fprintf(&b, "%q\n", rec.Quote)
	}
	b.WriteString("\n")

	attrs := make([]string, 0, len(rules.Attributes))
	for _, a := range rules.Attributes {
		attrs = append(attrs, fmt.Sprintf("%s %s", a, rules.DieString(rec.Attribute(a))))
	}
	b.WriteString("Attributes: " + strings.Join(attrs, ", ") + "\n")

	if len(d.Skills) > 0 {
		parts := make([]string, 0, len(d.Skills))
		for _, sk := range d.Skills {
			s := fmt.Sprintf("%s %s", sk.Name, rules.DieString(sk.Die))
			if sk.Modifier != 0 {
				s += fmt.Sprintf("%+d", sk.Modifier)
			}
			parts = append(parts, s)
		}
		b.WriteString("Skills: " + strings.Join(parts, ", ") + "\n")
	}

	toughness := fmt.Sprintf("%d", rec.Toughness)
	if rec.ToughnessArmor > 0 {
		toughness = fmt.Sprintf("%d (%d)", rec.Toughness, rec.ToughnessArmor)
	}
	fmt.Fprintf(&b, "Pace: %d; Parry: %d; Toughness: %s\n", rec.Pace, rec.Parry, toughness)

	writeList(&b, "Hindrances", rec.Hindrances)
	writeList(&b, "Edges", rec.Edges)
	writeList(&b, "Gear", rec.Gear)

	if len(d.Weapons) > 0 {
		parts := make([]string, 0, len(d.Weapons))
		for _, w := range d.Weapons {
			parts = append(parts, weaponLine(w))
		}
		b.WriteString("Weapons: " + strings.Join(parts, "; ") + "\n")
	}
	if len(d.Armor) > 0 {
		parts := make([]string, 0, len(d.Armor))
		for _, a := range d.Armor {
			parts = append(parts, fmt.Sprintf("%s (+%d, %s)", a.Name, a.Protection, a.AreaProtected))
		}
		b.WriteString("Armor: " + strings.Join(parts, "; ") + "\n")
	}

	if len(rec.Powers) > 0 {
		writeList(&b, "Powers", rec.Powers)
		fmt.Fprintf(&b, "Power Points: %d\n", rec.PowerPoints)
	}
	if len(rec.SpecialAbilities) > 0 {
		b.WriteString("Special Abilities:\n")
		for _, sa := range rec.SpecialAbilities {
			b.WriteString("  • " + sa + "\n")
		}
	}
	return b.String()
}

// weaponLine formats one weapon entry: "Longsword (Str+d8, AP 1)".
func weaponLine(w Weapon) string {
	damage := w.DamageStr
	if damage == "" {
		damage = w.DamageDice
	}
	if w.DamageBonus != 0 {
		damage += fmt.Sprintf("%+d", w.DamageBonus)
	}

	extras := []string{damage}
	if w.ArmorPiercing > 0 {
		extras = append(extras, fmt.Sprintf("AP %d", w.ArmorPiercing))
	}
	if w.Range != "" {
		extras = append(extras, "Range "+w.Range)
	}
	if w.Reach > 0 {
		extras = append(extras, fmt.Sprintf("Reach %d", w.Reach))
	}
	return fmt.Sprintf("%s (%s)", w.Name, strings.Join(extras, ", "))
}

// writeList writes "Label: a, b, c" when items is non-empty.
func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(label + ": " + strings.Join(items, ", ") + "\n")
}
