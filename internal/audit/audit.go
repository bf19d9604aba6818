// Package audit checks stored NPCs against the edge catalogue: every edge
// an NPC holds is validated against its prerequisites using the NPC's rank,
// attributes, skills, and other edges.
//
// The audit is advisory. Published NPCs sometimes break the character
// creation rules on purpose, so findings are reported rather than enforced;
// the editor decides which ones are errata.
package audit

import (
	"context"
	"errors"
	"fmt"

	"github.com/diceforge/npcdb/internal/npc"
	"github.com/diceforge/npcdb/internal/rules"
)

// Finding is one edge on one NPC that did not check out.
type Finding struct {
	NPCID   int64
	NPCName string
	Region  string
	Edge    string

	// Unknown marks edges missing from the catalogue entirely, which
	// usually means a typo in the NPC's edge list.
	Unknown bool

	// Failures itemises the unmet prerequisites when the edge is known.
	Failures []rules.Failure
}

// Report is the outcome of one audit run.
type Report struct {
	NPCsChecked  int
	EdgesChecked int
	Findings     []Finding
}

// Clean reports whether the audit found nothing to flag.
func (r *Report) Clean() bool { return len(r.Findings) == 0 }

// Run audits every NPC in the store, optionally restricted to one region.
// The whole roster is checked even when findings pile up; a run only fails
// on storage errors.
func Run(ctx context.Context, store npc.Store, cat rules.Catalog, region string) (*Report, error) {
	rows, err := store.List(ctx, npc.ListOptions{Region: region})
	if err != nil {
		return nil, fmt.Errorf("audit: list npcs: %w", err)
	}

	report := &Report{}
	for _, row := range rows {
		detail, err := store.GetDetail(ctx, row.ID)
		if err != nil {
			return nil, fmt.Errorf("audit: load %q: %w", row.Name, err)
		}
		auditNPC(report, detail, cat)
		report.NPCsChecked++
	}
	return report, nil
}

// One audits a single NPC by ID.
func One(ctx context.Context, store npc.Store, cat rules.Catalog, id int64) (*Report, error) {
	detail, err := store.GetDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("audit: load npc %d: %w", id, err)
	}

	report := &Report{NPCsChecked: 1}
	auditNPC(report, detail, cat)
	return report, nil
}

// auditNPC validates each edge the NPC holds and appends findings.
func auditNPC(report *Report, d *npc.Detail, cat rules.Catalog) {
	build := d.Build()
	for _, edge := range d.Record.Edges {
		report.EdgesChecked++

		result, err := cat.Validate(build, edge)
		if err != nil {
			if errors.Is(err, rules.ErrUnknownEdge) {
				report.Findings = append(report.Findings, Finding{
					NPCID:   d.Record.ID,
					NPCName: d.Record.Name,
					Region:  d.Record.Region,
					Edge:    edge,
					Unknown: true,
				})
			}
			continue
		}
		if !result.Passed() {
			report.Findings = append(report.Findings, Finding{
				NPCID:    d.Record.ID,
				NPCName:  d.Record.Name,
				Region:   d.Record.Region,
				Edge:     edge,
				Failures: result.Failures,
			})
		}
	}
}
