package main

import (
	"context"
	"slices"
	"strconv"
	"testing"

	"github.com/diceforge/npcdb/internal/npc"
)

func TestSetField(t *testing.T) {
	t.Parallel()

	rec := &npc.Record{Name: "Kaelen", Region: "Ammaria", Tier: "Extra"}

	if err := setField(rec, "vigor", "8"); err != nil {
		t.Fatalf("vigor: %v", err)
	}
	if rec.Vigor != 8 {
		t.Errorf("vigor = %d, want 8", rec.Vigor)
	}

	if err := setField(rec, "edges", "Quick, Luck,"); err != nil {
		t.Fatalf("edges: %v", err)
	}
	if !slices.Equal(rec.Edges, []string{"Quick", "Luck"}) {
		t.Errorf("edges = %v, want [Quick Luck]", rec.Edges)
	}

	if err := setField(rec, "fg-ready", "true"); err != nil {
		t.Fatalf("fg-ready: %v", err)
	}
	if !rec.FGExportReady {
		t.Error("fg-ready not set")
	}

	if err := setField(rec, "agility", "banana"); err == nil {
		t.Error("non-numeric die accepted")
	}
	if err := setField(rec, "haircut", "bald"); err == nil {
		t.Error("unknown field accepted")
	}
}

func TestFlags(t *testing.T) {
	t.Parallel()

	if got := flags(npc.Overview{}); got != "-" {
		t.Errorf("empty flags = %q, want -", got)
	}
	full := npc.Overview{StatBlockComplete: true, NarrativeComplete: true, FGExportReady: true}
	if got := flags(full); got != "SNF" {
		t.Errorf("flags = %q, want SNF", got)
	}
}

func TestAddWeaponFromCatalogue(t *testing.T) {
	store := npc.NewMemStore()
	ctx := context.Background()

	rec := &npc.Record{Name: "Brann Helt", Region: "Vinlands", Tier: "Extra", Strength: 8}
	if err := store.Create(ctx, rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	args := []string{strconv.FormatInt(rec.ID, 10), "-name", "Long Sword", "-catalog"}
	if code := cmdAddWeapon(ctx, store, args); code != 0 {
		t.Fatalf("cmdAddWeapon exit = %d, want 0", code)
	}

	detail, err := store.GetDetail(ctx, rec.ID)
	if err != nil {
		t.Fatalf("GetDetail: %v", err)
	}
	if len(detail.Weapons) != 1 {
		t.Fatalf("weapons = %d, want 1", len(detail.Weapons))
	}
	w := detail.Weapons[0]
	if w.DamageStr != "Str+d8" || w.TraitType != "Melee" {
		t.Errorf("catalogue fields not applied: %+v", w)
	}
	// Strength d8 wielding Str+d8.
	if w.DamageDice != "d8+d8" {
		t.Errorf("DamageDice = %q, want d8+d8", w.DamageDice)
	}

	if code := cmdAddWeapon(ctx, store, []string{strconv.FormatInt(rec.ID, 10), "-name", "Chair Leg", "-catalog"}); code == 0 {
		t.Error("unknown catalogue weapon accepted")
	}
}
