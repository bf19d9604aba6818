package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/diceforge/npcdb/internal/audit"
	"github.com/diceforge/npcdb/internal/catalog"
	"github.com/diceforge/npcdb/internal/config"
	"github.com/diceforge/npcdb/internal/fgexport"
	"github.com/diceforge/npcdb/internal/npc"
)

// apiError is the JSON error envelope.
type apiError struct {
	Error string `json:"error"`
}

// writeJSON encodes v with the given status code. On encoding failure it
// falls back to a plain 500; the header is already written by then so the
// client sees a truncated body, which is the best we can do.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("web: encode response", "err", err)
	}
}

// writeError maps store sentinel errors to HTTP status codes and writes the
// JSON error envelope.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, npc.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, npc.ErrDuplicate):
		status = http.StatusConflict
	case errors.Is(err, npc.ErrAmbiguous):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		slog.Error("web: request failed", "err", err)
	}
	writeJSON(w, status, apiError{Error: err.Error()})
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", r.PathValue("id"))
	}
	return id, nil
}

// ─── Roster ──────────────────────────────────────────────────────────────────

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := npc.ListOptions{
		Region:       q.Get("region"),
		Tier:         q.Get("tier"),
		Organisation: q.Get("org"),
		Incomplete:   q.Get("incomplete") == "true",
	}

	start := time.Now()
	rows, err := s.store.List(r.Context(), opts)
	s.metrics.RecordStoreQuery(r.Context(), "list", time.Since(start), err)
	if err != nil {
		writeError(w, err)
		return
	}
	if rows == nil {
		rows = []npc.Overview{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var rec npc.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid JSON: " + err.Error()})
		return
	}
	if err := rec.Validate(); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, apiError{Error: err.Error()})
		return
	}

	start := time.Now()
	err := s.store.Create(r.Context(), &rec)
	s.metrics.RecordStoreQuery(r.Context(), "create", time.Since(start), err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}

	start := time.Now()
	detail, err := s.store.GetDetail(r.Context(), id)
	s.metrics.RecordStoreQuery(r.Context(), "get", time.Since(start), err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}

	var rec npc.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid JSON: " + err.Error()})
		return
	}
	rec.ID = id
	if err := rec.Validate(); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, apiError{Error: err.Error()})
		return
	}

	start := time.Now()
	err = s.store.Update(r.Context(), &rec)
	s.metrics.RecordStoreQuery(r.Context(), "update", time.Since(start), err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}

	start := time.Now()
	err = s.store.Delete(r.Context(), id)
	s.metrics.RecordStoreQuery(r.Context(), "delete", time.Since(start), err)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleStatblock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}

	detail, err := s.store.GetDetail(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, npc.Statblock(detail))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "missing q parameter"})
		return
	}

	start := time.Now()
	rows, err := s.store.Search(r.Context(), query)
	s.metrics.RecordStoreQuery(r.Context(), "search", time.Since(start), err)
	if err != nil {
		writeError(w, err)
		return
	}
	if rows == nil {
		rows = []npc.Overview{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "missing name parameter"})
		return
	}

	row, err := s.resolver.Resolve(r.Context(), s.store, name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.Status(r.Context(), r.URL.Query().Get("region"))
	if err != nil {
		writeError(w, err)
		return
	}
	if rows == nil {
		rows = []npc.StatusRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleOrganisations(w http.ResponseWriter, r *http.Request) {
	orgs, err := s.store.Organisations(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if orgs == nil {
		orgs = []npc.Organisation{}
	}
	writeJSON(w, http.StatusOK, orgs)
}

// ─── Reports and exports ─────────────────────────────────────────────────────

func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")

	report, err := audit.Run(r.Context(), s.store, s.catalog, region)
	if err != nil {
		writeError(w, err)
		return
	}
	s.metrics.RecordAudit(r.Context(), region, len(report.Findings))
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	full := q.Get("full") == "true"

	details, err := s.exportDetails(r, q.Get("npc"), q.Get("region"))
	if err != nil {
		writeError(w, err)
		return
	}

	// Single-region exports of an unnamed module are titled after the
	// region, matching the CLI.
	moduleName := s.moduleName
	if region := q.Get("region"); region != "" && (moduleName == "" || moduleName == config.DefaultModuleName) {
		moduleName = region
	}

	opts := fgexport.Options{
		ModuleName: moduleName,
		FullModule: full,
	}

	// Render to a buffer first so encoding errors become a clean 500
	// instead of a half-written download.
	start := time.Now()
	var buf bytes.Buffer
	if err := fgexport.Write(&buf, details, opts); err != nil {
		writeError(w, err)
		return
	}
	scope := "section"
	if full {
		scope = "module"
	}
	s.metrics.RecordExport(r.Context(), scope, time.Since(start))

	filename := "npcs.xml"
	if full {
		filename = "db.xml"
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("web: export write", "err", err)
	}
}

// exportDetails selects the NPCs to export: one by fuzzy name, or the
// stat-block-complete roster of a region (empty region means everything).
func (s *Server) exportDetails(r *http.Request, name, region string) ([]*npc.Detail, error) {
	ctx := r.Context()

	if name != "" {
		row, err := s.resolver.Resolve(ctx, s.store, name)
		if err != nil {
			return nil, err
		}
		detail, err := s.store.GetDetail(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		if !detail.Record.FGExportReady {
			slog.Warn("exporting NPC not marked export-ready", "npc", detail.Record.Name)
		}
		return []*npc.Detail{detail}, nil
	}

	rows, err := s.store.List(ctx, npc.ListOptions{Region: region})
	if err != nil {
		return nil, err
	}

	var details []*npc.Detail
	for _, row := range rows {
		detail, err := s.store.GetDetail(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		if !detail.Record.StatBlockComplete {
			continue
		}
		details = append(details, detail)
	}
	return details, nil
}

// ─── Catalogue ───────────────────────────────────────────────────────────────

func (s *Server) handleCatalogEdges(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	edges := catalog.Edges(catalog.EdgeFilter{
		Source: q.Get("source"),
		Rank:   q.Get("rank"),
		Type:   q.Get("type"),
	})
	if edges == nil {
		edges = []catalog.Edge{}
	}
	writeJSON(w, http.StatusOK, edges)
}

func (s *Server) handleCatalogHindrances(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	hindrances := catalog.Hindrances(q.Get("source"), q.Get("severity"))
	if hindrances == nil {
		hindrances = []catalog.Hindrance{}
	}
	writeJSON(w, http.StatusOK, hindrances)
}

func (s *Server) handleCatalogPowers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	powers := catalog.Powers(q.Get("source"), q.Get("rank"))
	if powers == nil {
		powers = []catalog.Power{}
	}
	writeJSON(w, http.StatusOK, powers)
}

func (s *Server) handleCatalogWeapons(w http.ResponseWriter, r *http.Request) {
	weapons := catalog.Weapons(r.URL.Query().Get("source"))
	if weapons == nil {
		weapons = []catalog.WeaponEntry{}
	}
	writeJSON(w, http.StatusOK, weapons)
}

func (s *Server) handleCatalogArmor(w http.ResponseWriter, r *http.Request) {
	armor := catalog.Armor(r.URL.Query().Get("source"))
	if armor == nil {
		armor = []catalog.ArmorEntry{}
	}
	writeJSON(w, http.StatusOK, armor)
}

func (s *Server) handleCatalogGear(w http.ResponseWriter, r *http.Request) {
	gear := catalog.Gear(r.URL.Query().Get("source"))
	if gear == nil {
		gear = []catalog.GearEntry{}
	}
	writeJSON(w, http.StatusOK, gear)
}
