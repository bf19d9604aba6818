package catalog

// WeaponEntry is one catalogue weapon entry. DamageStr keeps the display
// notation ("Str+d8"); the Strength substitution happens when the weapon is
// assigned to an NPC, not here.
type WeaponEntry struct {
	Name      string
	DamageStr string
	AP        int
	TraitType string // Melee, Ranged, Thrown
	Range     string
	Reach     int
	Weight    float64
	Cost      string
	Notes     string
	Source    string
}

// ArmorEntry is one catalogue armor entry.
type ArmorEntry struct {
	Name          string
	Protection    int
	AreaProtected string
	MinStrength   string
	Weight        float64
	Cost          string
	Notes         string
	Source        string
}

// GearEntry is one catalogue mundane-gear entry.
type GearEntry struct {
	Name   string
	Weight float64
	Cost   string
	Notes  string
	Source string
}

// Weapons returns catalogue weapons, optionally filtered by source.
func Weapons(source string) []WeaponEntry {
	var out []WeaponEntry
	for _, w := range allWeapons {
		if source != "" && w.Source != source {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Armor returns catalogue armor, optionally filtered by source.
func Armor(source string) []ArmorEntry {
	var out []ArmorEntry
	for _, a := range allArmor {
		if source != "" && a.Source != source {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Gear returns catalogue gear, optionally filtered by source.
func Gear(source string) []GearEntry {
	var out []GearEntry
	for _, g := range allGear {
		if source != "" && g.Source != source {
			continue
		}
		out = append(out, g)
	}
	return out
}

// LookupWeapon returns the catalogue entry for a weapon name, if present.
func LookupWeapon(name string) (WeaponEntry, bool) {
	for _, w := range allWeapons {
		if w.Name == name {
			return w, true
		}
	}
	return WeaponEntry{}, false
}

// LookupArmor returns the catalogue entry for an armor name, if present.
func LookupArmor(name string) (ArmorEntry, bool) {
	for _, a := range allArmor {
		if a.Name == name {
			return a, true
		}
	}
	return ArmorEntry{}, false
}

// allWeapons is the combined weapon catalogue across all sourcebooks.
var allWeapons = []WeaponEntry{
	// ─────────────────────────────────────────────────────────────────────────
	// Core
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Unarmed", DamageStr: "Str", TraitType: "Melee", Cost: "0", Source: SourceCore},
	{Name: "Dagger/Knife", DamageStr: "Str+d4", TraitType: "Melee", Range: "3/6/12",
		Weight: 1, Cost: "25", Notes: "Can be thrown", Source: SourceCore},
	{Name: "Short Sword", DamageStr: "Str+d6", TraitType: "Melee",
		Weight: 2, Cost: "100", Source: SourceCore},
	{Name: "Long Sword", DamageStr: "Str+d8", TraitType: "Melee",
		Weight: 3, Cost: "300", Source: SourceCore},
	{Name: "Great Sword", DamageStr: "Str+d10", TraitType: "Melee",
		Weight: 6, Cost: "400", Notes: "Two hands", Source: SourceCore},
	{Name: "Rapier", DamageStr: "Str+d4", TraitType: "Melee",
		Weight: 2, Cost: "150", Notes: "Parry +1", Source: SourceCore},
	{Name: "Axe", DamageStr: "Str+d6", TraitType: "Melee", Range: "3/6/12",
		Weight: 2, Cost: "100", Notes: "Can be thrown", Source: SourceCore},
	{Name: "Battle Axe", DamageStr: "Str+d8", TraitType: "Melee",
		Weight: 4, Cost: "300", Source: SourceCore},
	{Name: "Mace", DamageStr: "Str+d6", TraitType: "Melee",
		Weight: 4, Cost: "100", Source: SourceCore},
	{Name: "Maul", DamageStr: "Str+d10", AP: 2, TraitType: "Melee",
		Weight: 10, Cost: "400", Notes: "AP 2, Two hands", Source: SourceCore},
	{Name: "Warhammer", DamageStr: "Str+d6", AP: 1, TraitType: "Melee",
		Weight: 3, Cost: "200", Notes: "AP 1", Source: SourceCore},
	{Name: "Spear", DamageStr: "Str+d6", TraitType: "Melee", Range: "3/6/12", Reach: 1,
		Weight: 3, Cost: "100", Notes: "Reach 1, Parry +1 (two hands), can be thrown", Source: SourceCore},
	{Name: "Pike", DamageStr: "Str+d8", TraitType: "Melee", Reach: 2,
		Weight: 8, Cost: "200", Notes: "Reach 2, Two hands", Source: SourceCore},
	{Name: "Halberd", DamageStr: "Str+d8", TraitType: "Melee", Reach: 1,
		Weight: 6, Cost: "250", Notes: "Reach 1, Two hands", Source: SourceCore},
	{Name: "Staff", DamageStr: "Str+d4", TraitType: "Melee", Reach: 1,
		Weight: 4, Cost: "10", Notes: "Reach 1, Parry +1, Two hands", Source: SourceCore},
	{Name: "Lance", DamageStr: "Str+d8", AP: 2, TraitType: "Melee", Reach: 2,
		Weight: 6, Cost: "300", Notes: "AP 2, Reach 2, requires mount", Source: SourceCore},
	{Name: "Club", DamageStr: "Str+d4", TraitType: "Melee",
		Weight: 2, Cost: "5", Source: SourceCore},
	{Name: "Bow", DamageStr: "2d6", TraitType: "Ranged", Range: "12/24/48",
		Weight: 2, Cost: "250", Source: SourceCore},
	{Name: "Longbow", DamageStr: "2d6", AP: 1, TraitType: "Ranged", Range: "15/30/60",
		Weight: 3, Cost: "300", Notes: "AP 1", Source: SourceCore},
	{Name: "Crossbow", DamageStr: "2d6", AP: 2, TraitType: "Ranged", Range: "15/30/60",
		Weight: 5, Cost: "250", Notes: "AP 2, Reload 1", Source: SourceCore},
	{Name: "Sling", DamageStr: "Str+d4", TraitType: "Ranged", Range: "4/8/16",
		Weight: 0.5, Cost: "10", Source: SourceCore},
	{Name: "Net (Weighted)", DamageStr: "-", TraitType: "Thrown", Range: "3/6/12",
		Weight: 4, Cost: "50", Notes: "Entangle, -2 Pace, Bound on Raise", Source: SourceCore},

	// ─────────────────────────────────────────────────────────────────────────
	// Fantasy Companion
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Bastard Sword", DamageStr: "Str+d8", TraitType: "Melee",
		Weight: 4, Cost: "350", Notes: "Two hands for Str+d10", Source: SourceFantasyCompanion},
	{Name: "Scimitar", DamageStr: "Str+d8", TraitType: "Melee",
		Weight: 3, Cost: "300", Source: SourceFantasyCompanion},
	{Name: "Morningstar", DamageStr: "Str+d6", TraitType: "Melee",
		Weight: 4, Cost: "200", Source: SourceFantasyCompanion},
	{Name: "War Flail", DamageStr: "Str+d8", TraitType: "Melee",
		Weight: 5, Cost: "300", Notes: "Ignores Shield bonus, Two hands", Source: SourceFantasyCompanion},
	{Name: "Trident", DamageStr: "Str+d6", TraitType: "Melee", Range: "3/6/12", Reach: 1,
		Weight: 4, Cost: "150", Notes: "Reach 1, can be thrown", Source: SourceFantasyCompanion},
	{Name: "Whip", DamageStr: "Str+d4", TraitType: "Melee", Reach: 2,
		Weight: 1, Cost: "50", Notes: "Reach 2, can Entangle", Source: SourceFantasyCompanion},
	{Name: "Short Bow", DamageStr: "2d6", TraitType: "Ranged", Range: "10/20/40",
		Weight: 2, Cost: "200", Source: SourceFantasyCompanion},
	{Name: "Composite Bow", DamageStr: "2d6", AP: 1, TraitType: "Ranged", Range: "15/30/60",
		Weight: 3, Cost: "400", Notes: "AP 1", Source: SourceFantasyCompanion},
	{Name: "Hand Crossbow", DamageStr: "2d4", TraitType: "Ranged", Range: "5/10/20",
		Weight: 1, Cost: "200", Notes: "One hand", Source: SourceFantasyCompanion},
	{Name: "Heavy Crossbow", DamageStr: "2d8", AP: 2, TraitType: "Ranged", Range: "15/30/60",
		Weight: 8, Cost: "400", Notes: "AP 2, Reload 2", Source: SourceFantasyCompanion},
	{Name: "Javelin", DamageStr: "Str+d6", TraitType: "Thrown", Range: "3/6/12",
		Weight: 2, Cost: "50", Source: SourceFantasyCompanion},
	{Name: "Throwing Knife", DamageStr: "Str+d4", TraitType: "Thrown", Range: "3/6/12",
		Weight: 0.5, Cost: "25", Source: SourceFantasyCompanion},

	// ─────────────────────────────────────────────────────────────────────────
	// Ammaria
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Repeating Crossbow", DamageStr: "2d6", AP: 3, TraitType: "Ranged", Range: "15/30/60",
		Weight: 12, Cost: "600", Notes: "AP 3, Magazine 6, ROF 2 w/Training edge, Jam on crit fail", Source: SourceAmmaria},
	{Name: "Hand Crossbow (Ammarian)", DamageStr: "2d4", TraitType: "Ranged", Range: "5/10/20",
		Weight: 2, Cost: "150", Notes: "Concealable (-2 to spot)", Source: SourceAmmaria},
	{Name: "Dock Bow", DamageStr: "2d6", AP: 1, TraitType: "Ranged", Range: "10/20/40",
		Weight: 4, Cost: "60", Notes: "AP 1, Marine standard", Source: SourceAmmaria},
	{Name: "Guild Halberd", DamageStr: "Str+d8", AP: 1, TraitType: "Melee", Reach: 1,
		Weight: 12, Cost: "100", Notes: "AP 1, Reach 1, Two hands", Source: SourceAmmaria},
	{Name: "Guild Knife", DamageStr: "Str+d4", TraitType: "Melee",
		Weight: 1, Cost: "25", Notes: "+1 Stealth to conceal", Source: SourceAmmaria},
	{Name: "Sap", DamageStr: "Str+d4", TraitType: "Melee",
		Weight: 1, Cost: "10", Notes: "Non-lethal, +2 Stealth to conceal", Source: SourceAmmaria},
	{Name: "Boat Hook", DamageStr: "Str+d6", TraitType: "Melee", Reach: 1,
		Weight: 4, Cost: "20", Notes: "Reach 1", Source: SourceAmmaria},

	// ─────────────────────────────────────────────────────────────────────────
	// Saltlands
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Cutlass", DamageStr: "Str+d6", TraitType: "Melee",
		Weight: 3, Cost: "200", Source: SourceSaltlands},
	{Name: "Boarding Axe", DamageStr: "Str+d6", AP: 1, TraitType: "Melee",
		Weight: 3, Cost: "150", Notes: "AP 1", Source: SourceSaltlands},
	{Name: "Hook Hand", DamageStr: "Str+d4", TraitType: "Melee",
		Weight: 1, Cost: "75", Notes: "Cannot be disarmed", Source: SourceSaltlands},
	{Name: "Obsidian Blade", DamageStr: "Str+d6", AP: 2, TraitType: "Melee",
		Weight: 3, Cost: "350", Notes: "AP 2", Source: SourceSaltlands},
	{Name: "Harpoon", DamageStr: "Str+d6", TraitType: "Thrown", Range: "3/6/12",
		Weight: 4, Cost: "100", Source: SourceSaltlands},
	{Name: "Wheellock Pistol", DamageStr: "2d6+1", TraitType: "Ranged", Range: "5/10/20",
		Weight: 3, Cost: "350", Notes: "2 actions to reload", Source: SourceSaltlands},
	{Name: "Blunderbuss", DamageStr: "1-3d6", TraitType: "Ranged", Range: "5/10/20",
		Weight: 6, Cost: "400", Notes: "Cone Template", Source: SourceSaltlands},

	// ─────────────────────────────────────────────────────────────────────────
	// Vinlands
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Bearded Axe", DamageStr: "Str+d6", TraitType: "Melee",
		Weight: 4, Cost: "100", Notes: "See Bearded Axe special rules", Source: SourceVinlands},
	{Name: "Northern Battle Axe", DamageStr: "Str+d8", TraitType: "Melee",
		Weight: 8, Cost: "150", Notes: "Two hands, AP 1 vs rigid armour", Source: SourceVinlands},
	{Name: "Throwing Axe (Vinlander)", DamageStr: "Str+d6", TraitType: "Thrown", Range: "3/6/12",
		Weight: 2, Cost: "25", Source: SourceVinlands},
	{Name: "Seax", DamageStr: "Str+d4", TraitType: "Melee",
		Weight: 1, Cost: "25", Notes: "+1 Survival as tool", Source: SourceVinlands},
	{Name: "Valdmork Longbow", DamageStr: "2d6", AP: 1, TraitType: "Ranged", Range: "12/24/48",
		Weight: 3, Cost: "200", Notes: "AP 1, Min Str d6", Source: SourceVinlands},
	{Name: "Felsgard Crossbow", DamageStr: "2d6", AP: 2, TraitType: "Ranged", Range: "15/30/60",
		Weight: 8, Cost: "300", Notes: "AP 2, 2 actions to reload", Source: SourceVinlands},
	{Name: "War-Pick", DamageStr: "Str+d6", AP: 2, TraitType: "Melee",
		Weight: 4, Cost: "100", Notes: "AP 2", Source: SourceVinlands},
	{Name: "Mammoth Lance", DamageStr: "Str+d8", TraitType: "Melee", Reach: 2,
		Weight: 10, Cost: "150", Notes: "Reach 2, +4 damage on charge, requires Large+ mount", Source: SourceVinlands},

	// ─────────────────────────────────────────────────────────────────────────
	// Concordium
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Boarding Pike", DamageStr: "Str+d6", TraitType: "Melee", Reach: 1,
		Weight: 5, Cost: "75", Notes: "Reach 1, +1 to resist Disarm", Source: SourceConcordium},
	{Name: "Sky-Knife", DamageStr: "Str+d4", TraitType: "Thrown", Range: "3/6/12",
		Weight: 0.5, Cost: "25", Notes: "Balanced for throwing", Source: SourceConcordium},
	{Name: "Rigging Axe", DamageStr: "Str+d6", TraitType: "Melee",
		Weight: 2, Cost: "40", Notes: "Sever ropes as free action on Raise", Source: SourceConcordium},
	{Name: "Grapple-Sword", DamageStr: "Str+d6", TraitType: "Melee",
		Weight: 3, Cost: "100", Notes: "+2 Athletics when swinging on lines", Source: SourceConcordium},
	{Name: "Boarding Crossbow", DamageStr: "2d6", TraitType: "Ranged", Range: "10/20/40",
		Weight: 4, Cost: "150", Notes: "Compact, one-handed, -1 Shooting", Source: SourceConcordium},
	{Name: "Hunting Bow", DamageStr: "2d6", TraitType: "Ranged", Range: "12/24/48",
		Weight: 2, Cost: "200", Notes: "Light draw, mount-back use", Source: SourceConcordium},
	{Name: "Wind Rifle", DamageStr: "2d6", AP: 1, TraitType: "Ranged", Range: "15/30/60",
		Weight: 8, Cost: "500", Notes: "AP 1, air-compressed, no gunpowder", Source: SourceConcordium},
	{Name: "Grapple Bow", DamageStr: "-", TraitType: "Ranged", Range: "15/30/60",
		Weight: 5, Cost: "250", Notes: "Fires grappling hooks, 50' line", Source: SourceConcordium},
}

// allArmor is the combined armor catalogue across all sourcebooks.
var allArmor = []ArmorEntry{
	// ─────────────────────────────────────────────────────────────────────────
	// Core
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Leather", Protection: 2, AreaProtected: "Torso, arms, legs", MinStrength: "d6",
		Weight: 10, Cost: "50", Source: SourceCore},
	{Name: "Chain Mail", Protection: 3, AreaProtected: "Torso, arms, legs", MinStrength: "d8",
		Weight: 25, Cost: "300", Source: SourceCore},
	{Name: "Plate Mail", Protection: 4, AreaProtected: "Torso, arms, legs", MinStrength: "d10",
		Weight: 35, Cost: "500", Source: SourceCore},
	{Name: "Pot Helm", Protection: 3, AreaProtected: "Head",
		Weight: 3, Cost: "75", Notes: "50% vs head shot", Source: SourceCore},
	{Name: "Full Helm", Protection: 3, AreaProtected: "Head",
		Weight: 4, Cost: "150", Source: SourceCore},
	{Name: "Small Shield", Protection: 0, AreaProtected: "Shield",
		Weight: 4, Cost: "25", Notes: "Parry +1", Source: SourceCore},
	{Name: "Medium Shield", Protection: 2, AreaProtected: "Shield",
		Weight: 8, Cost: "50", Notes: "Parry +2, +2 Armor vs ranged", Source: SourceCore},
	{Name: "Large Shield", Protection: 2, AreaProtected: "Shield",
		Weight: 12, Cost: "75", Notes: "Parry +3, +2 Armor vs ranged, -1 to attack", Source: SourceCore},

	// ─────────────────────────────────────────────────────────────────────────
	// Fantasy Companion
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Hide Armour", Protection: 1, AreaProtected: "Torso, arms, legs", MinStrength: "d6",
		Weight: 12, Cost: "30", Source: SourceFantasyCompanion},
	{Name: "Ring Mail", Protection: 2, AreaProtected: "Torso, arms, legs", MinStrength: "d6",
		Weight: 15, Cost: "100", Source: SourceFantasyCompanion},
	{Name: "Scale Mail", Protection: 3, AreaProtected: "Torso, arms, legs", MinStrength: "d8",
		Weight: 20, Cost: "200", Source: SourceFantasyCompanion},
	{Name: "Breastplate", Protection: 3, AreaProtected: "Torso", MinStrength: "d8",
		Weight: 15, Cost: "200", Notes: "Torso only", Source: SourceFantasyCompanion},
	{Name: "Full Plate", Protection: 4, AreaProtected: "Torso, arms, legs", MinStrength: "d10",
		Weight: 40, Cost: "750", Notes: "Heavy Armour", Source: SourceFantasyCompanion},
	{Name: "Chain Coif", Protection: 3, AreaProtected: "Head",
		Weight: 3, Cost: "100", Source: SourceFantasyCompanion},

	// ─────────────────────────────────────────────────────────────────────────
	// Ammaria
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Padded Jacket", Protection: 1, AreaProtected: "Torso",
		Weight: 4, Cost: "25", Notes: "Worn under clothing", Source: SourceAmmaria},
	{Name: "Guild Leathers", Protection: 2, AreaProtected: "Torso, arms, legs", MinStrength: "d6",
		Weight: 8, Cost: "100", Notes: "Standard militia issue", Source: SourceAmmaria},
	{Name: "Sailor's Coat", Protection: 1, AreaProtected: "Torso, arms",
		Weight: 5, Cost: "75", Notes: "Water-resistant, -1 swim penalty", Source: SourceAmmaria},
	{Name: "Ammarian Breastplate", Protection: 4, AreaProtected: "Torso", MinStrength: "d8",
		Weight: 15, Cost: "900", Notes: "-1 run penalty, +1 Intimidation", Source: SourceAmmaria},
	{Name: "Guild Champion Plate", Protection: 5, AreaProtected: "Torso, arms, legs", MinStrength: "d10",
		Weight: 25, Cost: "2500", Notes: "Full plate, guild elite only", Source: SourceAmmaria},

	// ─────────────────────────────────────────────────────────────────────────
	// Saltlands
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Hardened Leather (Saltlands)", Protection: 1, AreaProtected: "Torso, arms", MinStrength: "d4",
		Weight: 8, Cost: "75", Notes: "No swim penalty", Source: SourceSaltlands},
	{Name: "Sharkskin Vest", Protection: 2, AreaProtected: "Torso", MinStrength: "d6",
		Weight: 6, Cost: "200", Notes: "No swim penalty", Source: SourceSaltlands},
	{Name: "Shell Armour", Protection: 2, AreaProtected: "Torso, arms", MinStrength: "d6",
		Weight: 10, Cost: "250", Notes: "No swim penalty", Source: SourceSaltlands},
	{Name: "Captain's Coat", Protection: 1, AreaProtected: "Torso, arms", MinStrength: "d4",
		Weight: 5, Cost: "150", Notes: "Reinforced, no swim penalty", Source: SourceSaltlands},

	// ─────────────────────────────────────────────────────────────────────────
	// Vinlands
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Furs", Protection: 1, AreaProtected: "Torso, arms, legs",
		Weight: 8, Cost: "30", Notes: "+4 vs Cold environmental effects", Source: SourceVinlands},
	{Name: "Fur Armour", Protection: 2, AreaProtected: "Torso, arms, legs", MinStrength: "d6",
		Weight: 12, Cost: "50", Notes: "+4 vs Cold environmental effects", Source: SourceVinlands},
	{Name: "Greenbark", Protection: 2, AreaProtected: "Torso, arms", MinStrength: "d6",
		Weight: 10, Cost: "100", Notes: "+2 Stealth in forests", Source: SourceVinlands},
	{Name: "Warden's Coat", Protection: 3, AreaProtected: "Torso, arms", MinStrength: "d8",
		Weight: 18, Cost: "175", Notes: "Reinforced leather with iron rings", Source: SourceVinlands},
	{Name: "Felsgard Chain", Protection: 3, AreaProtected: "Torso, arms, legs", MinStrength: "d8",
		Weight: 25, Cost: "200", Notes: "+2 vs Cold environmental effects", Source: SourceVinlands},
	{Name: "Felsgard Plate", Protection: 4, AreaProtected: "Torso, arms, legs", MinStrength: "d10",
		Weight: 40, Cost: "500", Notes: "+2 vs Cold environmental effects", Source: SourceVinlands},
	{Name: "Mammoth-Scale", Protection: 4, AreaProtected: "Torso, arms, legs", MinStrength: "d8",
		Weight: 30, Cost: "600", Notes: "Rare, status symbol", Source: SourceVinlands},
	{Name: "Vinlander Round Shield (Medium)", Protection: 2, AreaProtected: "Shield",
		Weight: 8, Cost: "50", Notes: "Parry +2, +2 Armour vs ranged", Source: SourceVinlands},

	// ─────────────────────────────────────────────────────────────────────────
	// Concordium
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Flight Leathers", Protection: 1, AreaProtected: "Torso, arms, legs",
		Weight: 8, Cost: "100", Notes: "No swim/climbing penalty", Source: SourceConcordium},
	{Name: "Cloudsilk Vest", Protection: 1, AreaProtected: "Torso",
		Weight: 2, Cost: "300", Notes: "Near-weightless, concealed under clothing", Source: SourceConcordium},
	{Name: "Boarding Coat", Protection: 2, AreaProtected: "Torso, arms", MinStrength: "d6",
		Weight: 12, Cost: "200", Notes: "-1 Athletics for climbing", Source: SourceConcordium},
}

// allGear is the combined mundane-gear catalogue across all sourcebooks.
var allGear = []GearEntry{
	// ─────────────────────────────────────────────────────────────────────────
	// Core
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Backpack", Weight: 2, Cost: "50", Source: SourceCore},
	{Name: "Bedroll", Weight: 4, Cost: "25", Source: SourceCore},
	{Name: "Crowbar", Weight: 2, Cost: "10", Source: SourceCore},
	{Name: "Flint & Steel", Weight: 0.5, Cost: "3", Source: SourceCore},
	{Name: "Grappling Hook", Weight: 2, Cost: "100", Source: SourceCore},
	{Name: "Lantern", Weight: 2, Cost: "25", Source: SourceCore},
	{Name: "Lockpicks", Weight: 0.5, Cost: "200", Source: SourceCore},
	{Name: "Manacles", Weight: 1, Cost: "15", Source: SourceCore},
	{Name: "Rope (50')", Weight: 7, Cost: "10", Source: SourceCore},
	{Name: "Spyglass", Weight: 1, Cost: "500", Source: SourceCore},
	{Name: "Torch (6)", Weight: 3, Cost: "5", Source: SourceCore},
	{Name: "Waterskin", Weight: 1, Cost: "5", Source: SourceCore},
	{Name: "Winter Clothing", Weight: 4, Cost: "50", Source: SourceCore},
	{Name: "Rations (1 week)", Weight: 5, Cost: "10", Source: SourceCore},
	{Name: "Healers Kit", Weight: 2, Cost: "25", Notes: "+1 Healing, 5 uses", Source: SourceCore},

	// ─────────────────────────────────────────────────────────────────────────
	// Fantasy Companion
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Holy Symbol", Weight: 0.5, Cost: "25", Notes: "Required for Miracles (Faith)", Source: SourceFantasyCompanion},
	{Name: "Thieves' Tools", Weight: 1, Cost: "250", Notes: "+1 Thievery for locks/traps", Source: SourceFantasyCompanion},
	{Name: "Climber's Kit", Weight: 3, Cost: "100", Notes: "+1 Athletics (climbing)", Source: SourceFantasyCompanion},
	{Name: "Disguise Kit", Weight: 2, Cost: "100", Notes: "+1 Performance (disguise)", Source: SourceFantasyCompanion},
	{Name: "Potion of Healing", Weight: 0.5, Cost: "150", Notes: "Heal one Wound", Source: SourceFantasyCompanion},

	// ─────────────────────────────────────────────────────────────────────────
	// Ammaria
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Ammarian Steel Tools", Weight: 3, Cost: "100", Notes: "+1 Repair", Source: SourceAmmaria},
	{Name: "Merchant's Ledger", Weight: 1, Cost: "25", Notes: "+1 Common Knowledge (trade)", Source: SourceAmmaria},
	{Name: "Guild Credentials", Cost: "Varies", Notes: "Required for guild privileges", Source: SourceAmmaria},
	{Name: "Bribery Purse", Weight: 1, Cost: "100+", Notes: "Pre-counted denominations for quick bribes", Source: SourceAmmaria},

	// ─────────────────────────────────────────────────────────────────────────
	// Saltlands
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Navigator's Charts (Sound)", Weight: 1, Cost: "500", Notes: "+1 Boating in charted waters", Source: SourceSaltlands},
	{Name: "Storm Glass", Weight: 1, Cost: "150", Notes: "Weather prediction, +1 Survival", Source: SourceSaltlands},
	{Name: "Diving Lung", Weight: 2, Cost: "500", Notes: "30 minutes underwater", Source: SourceSaltlands},
	{Name: "Ship Repair Kit", Weight: 10, Cost: "100", Notes: "+1 Repair (ships)", Source: SourceSaltlands},

	// ─────────────────────────────────────────────────────────────────────────
	// Vinlands
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Canopy Harness", Weight: 5, Cost: "50", Notes: "Negates fall damage under 30' when anchored", Source: SourceVinlands},
	{Name: "Waldl Cloak", Weight: 4, Cost: "75", Notes: "+2 Stealth in forests, +2 vs Cold/wet", Source: SourceVinlands},
	{Name: "Goblin-Smoke Pots (3)", Weight: 3, Cost: "25", Notes: "MBT for 3 rds, goblinoids Vigor or flee", Source: SourceVinlands},
	{Name: "Tree-Spikes", Weight: 2, Cost: "15", Notes: "+2 Athletics (climbing trees)", Source: SourceVinlands},

	// ─────────────────────────────────────────────────────────────────────────
	// Concordium
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Barometric Charm", Cost: "100", Notes: "Glows on sudden altitude drop", Source: SourceConcordium},
	{Name: "Pressure Flask", Weight: 2, Cost: "75", Notes: "Sealed, maintains surface pressure", Source: SourceConcordium},
	{Name: "Signal Mirror", Cost: "15", Notes: "Long-distance visual comms", Source: SourceConcordium},
	{Name: "Emergency Parachute", Weight: 5, Cost: "200", Notes: "Single use, deploy as free action", Source: SourceConcordium},
}
