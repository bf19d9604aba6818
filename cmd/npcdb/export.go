package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/diceforge/npcdb/internal/audit"
	"github.com/diceforge/npcdb/internal/catalog"
	"github.com/diceforge/npcdb/internal/config"
	"github.com/diceforge/npcdb/internal/fgexport"
	"github.com/diceforge/npcdb/internal/health"
	"github.com/diceforge/npcdb/internal/npc"
	"github.com/diceforge/npcdb/internal/observe"
	"github.com/diceforge/npcdb/internal/seed"
	"github.com/diceforge/npcdb/internal/web"
)

// ─── export ──────────────────────────────────────────────────────────────────

func cmdExport(ctx context.Context, cfg *config.Config, store npc.Store, args []string) int {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	region := fs.String("region", "", "export one region's finished NPCs")
	name := fs.String("npc", "", "export one NPC by name")
	all := fs.Bool("all", false, "export every finished NPC")
	fullModule := fs.Bool("full-module", false, "wrap the NPC section in a complete db.xml")
	output := fs.String("output", "", "output file (default: export output dir, or stdout)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *region == "" && *name == "" && !*all {
		return fail(fmt.Errorf("export needs -region, -npc, or -all"))
	}

	details, err := exportDetails(ctx, store, *name, *region)
	if err != nil {
		return fail(err)
	}
	if len(details) == 0 {
		return fail(fmt.Errorf("nothing to export"))
	}

	// A single-region export of an unnamed module is titled after the
	// region, the way operators expect the library entry to read.
	moduleName := cfg.Export.ModuleName
	if *region != "" && (moduleName == "" || moduleName == config.DefaultModuleName) {
		moduleName = *region
	}

	opts := fgexport.Options{
		ModuleName: moduleName,
		FullModule: *fullModule,
	}

	var w io.Writer = os.Stdout
	dest := *output
	if dest == "" && cfg.Export.OutputDir != "" {
		filename := "npcs.xml"
		if *fullModule {
			filename = "db.xml"
		}
		dest = filepath.Join(cfg.Export.OutputDir, filename)
	}
	if dest != "" {
		f, err := os.Create(dest)
		if err != nil {
			return fail(err)
		}
		defer f.Close()
		w = f
	}

	if err := fgexport.Write(w, details, opts); err != nil {
		return fail(err)
	}
	if dest != "" {
		fmt.Printf("exported %d NPCs to %s\n", len(details), dest)
	}
	return 0
}

// exportDetails selects NPCs to export: one by fuzzy name, or the finished
// stat blocks of a region (empty region means the whole roster).
func exportDetails(ctx context.Context, store npc.Store, name, region string) ([]*npc.Detail, error) {
	if name != "" {
		row, err := npc.NewResolver().Resolve(ctx, store, name)
		if err != nil {
			return nil, err
		}
		detail, err := store.GetDetail(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		if !detail.Record.FGExportReady {
			slog.Warn("NPC is not marked export-ready", "npc", detail.Record.Name)
		}
		return []*npc.Detail{detail}, nil
	}

	rows, err := store.List(ctx, npc.ListOptions{Region: region})
	if err != nil {
		return nil, err
	}
	var details []*npc.Detail
	for _, row := range rows {
		detail, err := store.GetDetail(ctx, row.ID)
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

// ─── audit ───────────────────────────────────────────────────────────────────

func cmdAudit(ctx context.Context, store npc.Store, args []string) int {
	fs := flag.NewFlagSet("audit", flag.ContinueOnError)
	region := fs.String("region", "", "restrict to one region")
	name := fs.String("npc", "", "audit one NPC by name")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cat, err := catalog.Compile()
	if err != nil {
		return fail(err)
	}

	var report *audit.Report
	if *name != "" {
		id, err := resolveArg(ctx, store, *name)
		if err != nil {
			return fail(err)
		}
		report, err = audit.One(ctx, store, cat, id)
		if err != nil {
			return fail(err)
		}
	} else {
		report, err = audit.Run(ctx, store, cat, *region)
		if err != nil {
			return fail(err)
		}
	}

	printAuditReport(report)
	if !report.Clean() {
		return 1
	}
	return 0
}

func printAuditReport(report *audit.Report) {
	for _, f := range report.Findings {
		if f.Unknown {
			fmt.Printf("%s (#%d, %s): edge %q is not in the catalogue\n",
				f.NPCName, f.NPCID, f.Region, f.Edge)
			continue
		}
		fmt.Printf("%s (#%d, %s): %q prerequisites not met:\n",
			f.NPCName, f.NPCID, f.Region, f.Edge)
		for _, failure := range f.Failures {
			fmt.Printf("  - %s\n", failure.Reason)
		}
	}
	fmt.Printf("checked %d NPCs, %d edges: %d findings\n",
		report.NPCsChecked, report.EdgesChecked, len(report.Findings))
}

// ─── seed ────────────────────────────────────────────────────────────────────

func cmdSeed(ctx context.Context, store npc.Store, args []string) int {
	if len(args) != 1 {
		return fail(fmt.Errorf("usage: seed FILE"))
	}

	f, err := seed.Load(args[0])
	if err != nil {
		return fail(err)
	}
	n, err := seed.Import(ctx, store, f)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("imported %d NPCs from %s\n", n, args[0])
	return 0
}

// ─── serve ───────────────────────────────────────────────────────────────────

func cmdServe(ctx context.Context, cfg *config.Config, store npc.Store, dbCheck health.Checker, configPath string, levelVar *slog.LevelVar) int {
	// OTel providers with the Prometheus bridge behind /metrics.
	shutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{ServiceName: "npcdb"})
	if err != nil {
		return fail(err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			slog.Warn("telemetry shutdown error", "err", err)
		}
	}()

	cat, err := catalog.Compile()
	if err != nil {
		return fail(err)
	}

	// Hot-reload the log level on config file changes. Other changes need a
	// restart; say so instead of applying them halfway.
	watcher, err := config.NewWatcher(configPath, func(_ *config.Config, d config.ConfigDiff) {
		if d.LogLevelChanged {
			levelVar.Set(slogLevel(d.NewLogLevel))
			slog.Info("log level updated", "level", d.NewLogLevel)
		}
		if d.ExportChanged {
			slog.Warn("export settings changed — restart serve to apply")
		}
	})
	if err != nil {
		slog.Warn("config watcher disabled", "err", err)
	} else {
		defer watcher.Stop()
	}

	srv := web.New(cfg, store, cat, web.WithCheckers(dbCheck))

	slog.Info("server ready — press Ctrl+C to shut down", "listen_addr", cfg.Server.ListenAddr)
	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("server error", "err", err)
		return 1
	}
	slog.Info("goodbye")
	return 0
}
