// Command npcdb manages the Tribute Lands NPC roster: relational records
// with stat blocks, narrative hooks, organisations, and connections, plus
// Fantasy Grounds Unity export, a prerequisite audit against the edge
// catalogue, and an HTTP API server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/diceforge/npcdb/internal/config"
	"github.com/diceforge/npcdb/internal/health"
	"github.com/diceforge/npcdb/internal/npc"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		return 2
	}
	command := flag.Arg(0)
	args := flag.Args()[1:]

	// ── Load configuration ────────────────────────────────────────────────
	cfg, err := config.Load(*configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Roster commands work fine on defaults; only serve really
			// wants a config file.
			cfg = config.Default()
		} else {
			fmt.Fprintf(os.Stderr, "npcdb: %v\n", err)
			return 1
		}
	}

	// ── Logger ────────────────────────────────────────────────────────────
	// The level lives in a LevelVar so serve can hot-reload it when the
	// config file changes.
	levelVar := new(slog.LevelVar)
	levelVar.Set(slogLevel(cfg.Server.LogLevel))
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: levelVar})))

	// ── Signal context ────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Store ─────────────────────────────────────────────────────────────
	store, closeStore, dbCheck, err := openStore(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "npcdb: %v\n", err)
		return 1
	}
	defer closeStore()

	// ── Dispatch ──────────────────────────────────────────────────────────
	switch command {
	case "init":
		return cmdInit(ctx, store)
	case "add":
		return cmdAdd(ctx, store, args)
	case "list":
		return cmdList(ctx, store, args)
	case "show":
		return cmdShow(ctx, store, args)
	case "search":
		return cmdSearch(ctx, store, args)
	case "edit":
		return cmdEdit(ctx, store, args)
	case "add-skill":
		return cmdAddSkill(ctx, store, args)
	case "add-weapon":
		return cmdAddWeapon(ctx, store, args)
	case "add-org":
		return cmdAddOrg(ctx, store, args)
	case "link-org":
		return cmdLinkOrg(ctx, store, args)
	case "link-npc":
		return cmdLinkNPC(ctx, store, args)
	case "appear":
		return cmdAppear(ctx, store, args)
	case "status":
		return cmdStatus(ctx, store, args)
	case "statblock":
		return cmdStatblock(ctx, store, args)
	case "export":
		return cmdExport(ctx, cfg, store, args)
	case "audit":
		return cmdAudit(ctx, store, args)
	case "seed":
		return cmdSeed(ctx, store, args)
	case "serve":
		return cmdServe(ctx, cfg, store, dbCheck, *configPath, levelVar)
	default:
		fmt.Fprintf(os.Stderr, "npcdb: unknown command %q\n\n", command)
		usage()
		return 2
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: npcdb [-config FILE] COMMAND [ARGS]

Roster:
  init                          create the database schema
  add -name N -region R ...     add an NPC
  list [-region R] [-tier T] [-org O] [-incomplete]
  show NAME_OR_ID               full record with child rows
  search QUERY                  substring search across text fields
  edit ID FIELD VALUE           set one field
  add-skill ID NAME DIE [MOD]   upsert a skill
  add-weapon ID -name N [-damage D | -catalog] ...
  add-org -name N [-region R] [-type T]
  link-org NAME_OR_ID ORG [ROLE]
  link-npc A_ID B_ID RELATIONSHIP [NOTES]
  appear NAME_OR_ID PRODUCT [ROLE]
  status [-region R]            completion report

Output:
  statblock NAME_OR_ID          markdown stat block
  export [-region R | -npc N | -all] [-full-module] [-output FILE]
  audit [-region R] [-npc N]    check edge prerequisites
  seed FILE                     bulk-import a YAML seed file
  serve                         run the HTTP API server
`)
}

// openStore returns the configured store: Postgres when a DSN is set, the
// in-memory store otherwise. The returned checker feeds /readyz in serve.
func openStore(ctx context.Context, cfg *config.Config) (npc.Store, func(), health.Checker, error) {
	if cfg.Database.PostgresDSN == "" {
		slog.Warn("no database configured — using the in-memory store; data will not persist")
		return npc.NewMemStore(), func() {}, health.Static("database"), nil
	}

	pool, err := pgxpool.New(ctx, cfg.Database.PostgresDSN)
	if err != nil {
		return nil, nil, health.Checker{}, fmt.Errorf("connect database: %w", err)
	}
	return npc.NewPostgresStore(pool), pool.Close, health.Database(pool), nil
}

// cmdInit creates the schema. A no-op on the in-memory store.
func cmdInit(ctx context.Context, store npc.Store) int {
	pg, ok := store.(*npc.PostgresStore)
	if !ok {
		fmt.Println("in-memory store needs no schema")
		return 0
	}
	if err := pg.Migrate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "npcdb: %v\n", err)
		return 1
	}
	fmt.Println("schema created")
	return 0
}

// resolveArg turns a NAME_OR_ID argument into an NPC ID: numeric arguments
// are IDs, anything else goes through the fuzzy name resolver.
func resolveArg(ctx context.Context, store npc.Store, arg string) (int64, error) {
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return id, nil
	}
	row, err := npc.NewResolver().Resolve(ctx, store, arg)
	if err != nil {
		return 0, err
	}
	return row.ID, nil
}

// fail prints the error the way every subcommand reports failures.
func fail(err error) int {
	fmt.Fprintf(os.Stderr, "npcdb: %v\n", err)
	return 1
}

func slogLevel(level config.LogLevel) slog.Level {
	switch level {
	case config.LogDebug:
		return slog.LevelDebug
	case config.LogWarn:
		return slog.LevelWarn
	case config.LogError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
