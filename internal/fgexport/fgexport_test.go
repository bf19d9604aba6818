package fgexport

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/diceforge/npcdb/internal/npc"
)

func exportFixture() *npc.Detail {
	return &npc.Detail{
		Record: npc.Record{
			Name: "Lyssa Thorne", Region: "Ammaria", Tier: "Wild Card",
			Quote:   "Everything is for sale.",
			Agility: 8, Smarts: 10, Spirit: 8, Strength: 6, Vigor: 6,
			Pace: 6, Parry: 5, Toughness: 6, ToughnessArmor: 1,
			Bennies:     3,
			Edges:       []string{"Connections", "Rich"},
			Hindrances:  []string{"Greedy (Minor)"},
			Gear:        []string{"Ledger", "Signet ring"},
			Powers:      []string{"Detect Arcana"},
			PowerPoints: 10,
			Motivation:  "Control the river trade.",
		},
		Skills: []npc.Skill{
			{Name: "Notice", Die: 8},
			{Name: "Persuasion", Die: 10, Modifier: 1},
		},
		Weapons: []npc.Weapon{
			{Name: "Dagger", DamageStr: "Str+d4", TraitType: "Melee"},
		},
	}
}

func TestElementID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"Lyssa Thorne", "lyssa_thorne"},
		{"Szara of Brinemark", "szara_of_brinemark"},
		{"D'Arvo (the Grey)", "d_arvo_the_grey"},
		{"__edge__case__", "edge_case"},
		{"!!!", "unnamed"},
	}
	for _, tt := range tests {
		if got := ElementID(tt.in); got != tt.want {
			t.Errorf("ElementID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWrite_Section(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, []*npc.Detail{exportFixture()}, Options{}); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}
	out := buf.String()

	wants := []string{
		`<npc static="true">`,
		"<lyssa_thorne>",
		`<name type="string">Lyssa Thorne</name>`,
		`<wildcard type="number">1</wildcard>`,
		`<bennies type="number">3</bennies>`,
		`<agility type="dice">d8</agility>`,
		`<smarts type="dice">d10</smarts>`,
		`<pace type="number">6</pace>`,
		`<toughnessarmor type="number">1</toughnessarmor>`,
		"<id-00001>",
		"<id-00002>",
		`<skill type="dice">d8</skill>`,
		`<skillmod type="number">1</skillmod>`,
		`<edges type="string">Connections, Rich</edges>`,
		`<damage type="string">Str+d4</damage>`,
		`<damagedice type="dice">d6+d4</damagedice>`,
		`<traittype type="string">Melee</traittype>`,
		`<fumble type="number">1</fumble>`,
		`<powerpoints type="number">10</powerpoints>`,
		`<token type="token">tokens/lyssa_thorne.png</token>`,
		"</lyssa_thorne>",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}

	// Section output must not carry the module wrapper.
	for _, reject := range []string{"<?xml", "<root", "<library>"} {
		if strings.Contains(out, reject) {
			t.Errorf("section output should not contain %q", reject)
		}
	}
}

func TestWrite_FullModule(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := Options{
		ModuleName:  "Gazetteer of Ammaria",
		FullModule:  true,
		DataVersion: "20260301",
	}
	if err := Write(&buf, []*npc.Detail{exportFixture()}, opts); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}
	out := buf.String()

	wants := []string{
		`<?xml version="1.0" encoding="utf-8"?>`,
		`<root version="4.8" dataversion="20260301" release="5.14|CoreRPG:7">`,
		`<gazetteer_of_ammaria static="true">`,
		`<categoryname type="string">Arr&#39;ath</categoryname>`,
		`<name type="string">Gazetteer of Ammaria</name>`,
		"<class>reference_list</class>",
		`<recordtype type="string">npc</recordtype>`,
		"<lyssa_thorne>",
		"</root>",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestWrite_WellFormed(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := Options{FullModule: true, DataVersion: "20260301"}
	if err := Write(&buf, []*npc.Detail{exportFixture()}, opts); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}

	dec := xml.NewDecoder(bytes.NewReader(buf.Bytes()))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("output is not well-formed XML: %v", err)
		}
	}
}

func TestWrite_EscapesMarkup(t *testing.T) {
	t.Parallel()

	d := exportFixture()
	d.Record.Name = "Vex & Co."
	d.Record.Gear = []string{`Sign reading "Open <late>"`}

	var buf bytes.Buffer
	if err := Write(&buf, []*npc.Detail{d}, Options{}); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `<name type="string">Vex &amp; Co.</name>`) {
		t.Errorf("ampersand not escaped:\n%s", out)
	}
	if !strings.Contains(out, "&lt;late&gt;") {
		t.Errorf("angle brackets not escaped:\n%s", out)
	}
	if !strings.Contains(out, "<vex_co>") {
		t.Errorf("element name not sanitised:\n%s", out)
	}
}

func TestWrite_DescriptionParagraphs(t *testing.T) {
	t.Parallel()

	d := exportFixture()
	d.Record.Secret = "She owes the Combine."

	var buf bytes.Buffer
	if err := Write(&buf, []*npc.Detail{d}, Options{}); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`<text type="formattedtext">`,
		"<i>&#34;Everything is for sale.&#34;</i>",
		"<b>What They Want:</b>",
		"<b>Their Secret:</b>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestWrite_MinimalRecordOmitsOptionalBlocks(t *testing.T) {
	t.Parallel()

	d := &npc.Detail{Record: npc.Record{Name: "Walk On", Tier: "Walk-On"}}
	var buf bytes.Buffer
	if err := Write(&buf, []*npc.Detail{d}, Options{}); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}
	out := buf.String()

	for _, reject := range []string{"<wildcard", "<skills>", "<weaponlist>", "<edges", "<text"} {
		if strings.Contains(out, reject) {
			t.Errorf("minimal record should omit %q\n%s", reject, out)
		}
	}
	// Derived stat defaults still apply.
	if !strings.Contains(out, `<pace type="number">6</pace>`) {
		t.Errorf("default pace missing\n%s", out)
	}
}
