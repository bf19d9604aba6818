package catalog_test

import (
	"testing"

	"github.com/diceforge/npcdb/internal/catalog"
)

func TestWeaponsFilter(t *testing.T) {
	t.Parallel()

	all := catalog.Weapons("")
	if len(all) == 0 {
		t.Fatal("Weapons: empty catalogue")
	}

	for _, src := range catalog.Sources {
		for _, w := range catalog.Weapons(src) {
			if w.Source != src {
				t.Errorf("Weapons(%q) returned %q from %q", src, w.Name, w.Source)
			}
		}
	}

	// Every source contributes at least one weapon.
	for _, src := range catalog.Sources {
		if len(catalog.Weapons(src)) == 0 {
			t.Errorf("Weapons(%q) is empty", src)
		}
	}
}

func TestArmorAndGearFilters(t *testing.T) {
	t.Parallel()

	for _, src := range catalog.Sources {
		if len(catalog.Armor(src)) == 0 {
			t.Errorf("Armor(%q) is empty", src)
		}
		if len(catalog.Gear(src)) == 0 {
			t.Errorf("Gear(%q) is empty", src)
		}
	}
	for _, a := range catalog.Armor(catalog.SourceCore) {
		if a.Source != catalog.SourceCore {
			t.Errorf("Armor(Core) returned %q from %q", a.Name, a.Source)
		}
	}
}

func TestLookupWeapon(t *testing.T) {
	t.Parallel()

	w, ok := catalog.LookupWeapon("Long Sword")
	if !ok {
		t.Fatal("LookupWeapon: Long Sword missing")
	}
	if w.DamageStr != "Str+d8" || w.TraitType != "Melee" {
		t.Errorf("Long Sword = %+v", w)
	}

	if _, ok := catalog.LookupWeapon("Chair Leg"); ok {
		t.Error("LookupWeapon: unexpected hit for Chair Leg")
	}

	a, ok := catalog.LookupArmor("Chain Mail")
	if !ok {
		t.Fatal("LookupArmor: Chain Mail missing")
	}
	if a.Protection != 3 || a.MinStrength != "d8" {
		t.Errorf("Chain Mail = %+v", a)
	}
}

func TestWeaponEntriesCarryAssignableFields(t *testing.T) {
	t.Parallel()

	// Ranged and thrown entries need range increments; reach weapons need a
	// reach value. Spot-check across sources so field drift is caught.
	for _, name := range []string{"Crossbow", "Harpoon", "Wind Rifle"} {
		w, ok := catalog.LookupWeapon(name)
		if !ok {
			t.Fatalf("LookupWeapon: %s missing", name)
		}
		if w.Range == "" {
			t.Errorf("%s has no range increments", name)
		}
	}
	for _, name := range []string{"Pike", "Mammoth Lance"} {
		w, ok := catalog.LookupWeapon(name)
		if !ok {
			t.Fatalf("LookupWeapon: %s missing", name)
		}
		if w.Reach == 0 {
			t.Errorf("%s has no reach", name)
		}
	}
}
