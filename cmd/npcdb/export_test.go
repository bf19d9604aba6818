package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diceforge/npcdb/internal/config"
	"github.com/diceforge/npcdb/internal/npc"
)

func TestExportRegionNamesModule(t *testing.T) {
	store := npc.NewMemStore()
	ctx := context.Background()

	rec := &npc.Record{
		Name:              "Szara of Brinemark",
		Region:            "Saltlands",
		Tier:              "Extra",
		StatBlockComplete: true,
	}
	if err := store.Create(ctx, rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	out := filepath.Join(t.TempDir(), "db.xml")
	args := []string{"-region", "Saltlands", "-full-module", "-output", out}
	if code := cmdExport(ctx, config.Default(), store, args); code != 0 {
		t.Fatalf("cmdExport exit = %d, want 0", code)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	body := string(data)
	if !strings.Contains(body, `<name type="string">Saltlands</name>`) {
		t.Error("region export not titled after the region")
	}
	if strings.Contains(body, "Tribute Lands") {
		t.Error("region export still carries the default module name")
	}
}

func TestExportExplicitModuleNameWins(t *testing.T) {
	store := npc.NewMemStore()
	ctx := context.Background()

	rec := &npc.Record{
		Name:              "Kaelen Voss",
		Region:            "Ammaria",
		Tier:              "Wild Card",
		StatBlockComplete: true,
	}
	if err := store.Create(ctx, rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	cfg := config.Default()
	cfg.Export.ModuleName = "Road to Ammaria"

	out := filepath.Join(t.TempDir(), "db.xml")
	args := []string{"-region", "Ammaria", "-full-module", "-output", out}
	if code := cmdExport(ctx, cfg, store, args); code != 0 {
		t.Fatalf("cmdExport exit = %d, want 0", code)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), `<name type="string">Road to Ammaria</name>`) {
		t.Error("configured module name not kept for a region export")
	}
}
