package web_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/diceforge/npcdb/internal/audit"
	"github.com/diceforge/npcdb/internal/catalog"
	"github.com/diceforge/npcdb/internal/npc"
)

func TestAuditReport(t *testing.T) {
	t.Parallel()

	h, store := newTestServer(t)
	// Agility d8 satisfies Quick.
	seedRecord(t, store, "Kaelen Voss", "Ammaria", "Wild Card")

	// Agility d6 does not.
	failing := &npc.Record{
		Name:    "Brann",
		Region:  "Saltlands",
		Tier:    "Extra",
		Agility: 6,
		Edges:   []string{"Quick"},
	}
	if err := store.Create(context.Background(), failing); err != nil {
		t.Fatalf("Create: %v", err)
	}

	rec := doJSON(t, h, "GET", "/api/audit", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body)
	}

	var report audit.Report
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.NPCsChecked != 2 {
		t.Errorf("NPCsChecked = %d, want 2", report.NPCsChecked)
	}
	if len(report.Findings) != 1 || report.Findings[0].NPCName != "Brann" {
		t.Errorf("findings = %+v, want one for Brann", report.Findings)
	}

	// Region filter skips the failing NPC entirely.
	rec = doJSON(t, h, "GET", "/api/audit?region=Ammaria", "")
	report = audit.Report{}
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(report.Findings) != 0 {
		t.Errorf("Ammaria findings = %+v, want none", report.Findings)
	}
}

func TestExportSection(t *testing.T) {
	t.Parallel()

	h, store := newTestServer(t)
	seedRecord(t, store, "Kaelen Voss", "Ammaria", "Wild Card")

	rec := doJSON(t, h, "GET", "/api/export", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/xml") {
		t.Errorf("Content-Type = %q, want application/xml", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "npcs.xml") {
		t.Errorf("Content-Disposition = %q, want npcs.xml", cd)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "<kaelen_voss>") {
		t.Errorf("export missing NPC element; body: %s", body)
	}
	if strings.Contains(body, "<library>") {
		t.Error("section export should not contain the library index")
	}
}

func TestExportFullModule(t *testing.T) {
	t.Parallel()

	h, store := newTestServer(t)
	seedRecord(t, store, "Kaelen Voss", "Ammaria", "Wild Card")

	rec := doJSON(t, h, "GET", "/api/export?full=true", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "db.xml") {
		t.Errorf("Content-Disposition = %q, want db.xml", cd)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "<library>") {
		t.Error("full module export missing the library index")
	}
	if !strings.Contains(body, `<?xml version="1.0" encoding="utf-8"?>`) {
		t.Error("full module export missing the XML declaration")
	}
}

func TestExportRegionNamesModule(t *testing.T) {
	t.Parallel()

	h, store := newTestServer(t)
	seedRecord(t, store, "Kaelen Voss", "Ammaria", "Wild Card")
	seedRecord(t, store, "Szara of Brinemark", "Saltlands", "Extra")

	// A single-region module takes the region's name.
	rec := doJSON(t, h, "GET", "/api/export?full=true&region=Saltlands", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `<name type="string">Saltlands</name>`) {
		t.Error("region export not titled after the region")
	}
	if strings.Contains(body, "Tribute Lands") {
		t.Error("region export still carries the default module name")
	}

	// An unfiltered module keeps the configured name.
	rec = doJSON(t, h, "GET", "/api/export?full=true", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `<name type="string">Tribute Lands</name>`) {
		t.Error("unfiltered export lost the configured module name")
	}
}

func TestExportSkipsIncompleteStatBlocks(t *testing.T) {
	t.Parallel()

	h, store := newTestServer(t)
	seedRecord(t, store, "Kaelen Voss", "Ammaria", "Wild Card")

	draft := &npc.Record{Name: "Draft Dodger", Region: "Ammaria", Tier: "Extra"}
	if err := store.Create(context.Background(), draft); err != nil {
		t.Fatalf("Create: %v", err)
	}

	rec := doJSON(t, h, "GET", "/api/export", "")
	body := rec.Body.String()
	if strings.Contains(body, "draft_dodger") {
		t.Error("export included an NPC without a finished stat block")
	}
}

func TestExportSingleNPCByName(t *testing.T) {
	t.Parallel()

	h, store := newTestServer(t)
	seedRecord(t, store, "Kaelen Voss", "Ammaria", "Wild Card")
	seedRecord(t, store, "Szara", "Saltlands", "Extra")

	rec := doJSON(t, h, "GET", "/api/export?npc=kaelen", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<kaelen_voss>") {
		t.Error("export missing the named NPC")
	}
	if strings.Contains(body, "<szara>") {
		t.Error("named export included other NPCs")
	}
}

func TestStatblockEndpoint(t *testing.T) {
	t.Parallel()

	h, store := newTestServer(t)
	seedRecord(t, store, "Kaelen Voss", "Ammaria", "Wild Card")

	rec := doJSON(t, h, "GET", "/api/npcs/1/statblock", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}
	if !strings.Contains(rec.Body.String(), "Kaelen Voss") {
		t.Errorf("stat block missing NPC name; body: %s", rec.Body)
	}
}

func TestCatalogEndpoints(t *testing.T) {
	t.Parallel()

	h, _ := newTestServer(t)

	rec := doJSON(t, h, "GET", "/api/catalog/edges?source=Core", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var edges []catalog.Edge
	if err := json.NewDecoder(rec.Body).Decode(&edges); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(edges) == 0 {
		t.Error("no Core edges returned")
	}
	for _, e := range edges {
		if e.Source != catalog.SourceCore {
			t.Errorf("edge %q has source %q, want Core", e.Name, e.Source)
		}
	}

	rec = doJSON(t, h, "GET", "/api/catalog/hindrances?severity=Major", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("hindrances status = %d, want 200", rec.Code)
	}
	var hindrances []catalog.Hindrance
	if err := json.NewDecoder(rec.Body).Decode(&hindrances); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, hd := range hindrances {
		if hd.Severity != "Major" {
			t.Errorf("hindrance %q severity = %q, want Major", hd.Name, hd.Severity)
		}
	}

	rec = doJSON(t, h, "GET", "/api/catalog/powers", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("powers status = %d, want 200", rec.Code)
	}
	var powers []catalog.Power
	if err := json.NewDecoder(rec.Body).Decode(&powers); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(powers) == 0 {
		t.Error("no powers returned")
	}
}

func TestCatalogEquipmentEndpoints(t *testing.T) {
	t.Parallel()

	h, _ := newTestServer(t)

	rec := doJSON(t, h, "GET", "/api/catalog/weapons?source=Saltlands", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("weapons status = %d, want 200", rec.Code)
	}
	var weapons []catalog.WeaponEntry
	if err := json.NewDecoder(rec.Body).Decode(&weapons); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(weapons) == 0 {
		t.Error("no Saltlands weapons returned")
	}
	for _, w := range weapons {
		if w.Source != catalog.SourceSaltlands {
			t.Errorf("weapon %q has source %q, want Saltlands", w.Name, w.Source)
		}
	}

	rec = doJSON(t, h, "GET", "/api/catalog/armor", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("armor status = %d, want 200", rec.Code)
	}
	var armor []catalog.ArmorEntry
	if err := json.NewDecoder(rec.Body).Decode(&armor); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(armor) == 0 {
		t.Error("no armor returned")
	}

	rec = doJSON(t, h, "GET", "/api/catalog/gear?source=Concordium", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("gear status = %d, want 200", rec.Code)
	}
	var gear []catalog.GearEntry
	if err := json.NewDecoder(rec.Body).Decode(&gear); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, g := range gear {
		if g.Source != catalog.SourceConcordium {
			t.Errorf("gear %q has source %q, want Concordium", g.Name, g.Source)
		}
	}
}

func TestOrganisationsEndpoint(t *testing.T) {
	t.Parallel()

	h, store := newTestServer(t)
	org := &npc.Organisation{Name: "Salt Compact", Region: "Saltlands", Type: "Guild"}
	if err := store.CreateOrganisation(context.Background(), org); err != nil {
		t.Fatalf("CreateOrganisation: %v", err)
	}

	rec := doJSON(t, h, "GET", "/api/organisations", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var orgs []npc.Organisation
	if err := json.NewDecoder(rec.Body).Decode(&orgs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(orgs) != 1 || orgs[0].Name != "Salt Compact" {
		t.Errorf("orgs = %+v, want Salt Compact", orgs)
	}
}
