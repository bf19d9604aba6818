package npc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ---------------------------------------------------------------------------
// Test helpers — mock DB types
// ---------------------------------------------------------------------------

// mockRow implements pgx.Row for testing.
type mockRow struct {
	scanFunc func(dest ...any) error
}

func (r *mockRow) Scan(dest ...any) error { return r.scanFunc(dest...) }

// mockRows implements pgx.Rows for testing.
type mockRows struct {
	data   [][]any
	idx    int
	err    error
	closed bool
}

func (r *mockRows) Close()                                       { r.closed = true }
func (r *mockRows) Err() error                                   { return r.err }
func (r *mockRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *mockRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *mockRows) RawValues() [][]byte                          { return nil }
func (r *mockRows) Conn() *pgx.Conn                              { return nil }
func (r *mockRows) Values() ([]any, error)                       { return nil, nil }

func (r *mockRows) Next() bool {
	if r.idx >= len(r.data) {
		return false
	}
	r.idx++
	return true
}

func (r *mockRows) Scan(dest ...any) error {
	row := r.data[r.idx-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: expected %d columns, got %d destinations", len(row), len(dest))
	}
	for i, v := range row {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *int:
			*d = v.(int)
		case *int64:
			*d = v.(int64)
		case *bool:
			*d = v.(bool)
		case *[]byte:
			*d = v.([]byte)
		case *time.Time:
			*d = v.(time.Time)
		default:
			return fmt.Errorf("scan: unsupported type at index %d: %T", i, dest[i])
		}
	}
	return nil
}

// mockDB implements the DB interface for testing.
type mockDB struct {
	queryRowFunc func(ctx context.Context, sql string, args ...any) pgx.Row
	queryFunc    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	execFunc     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (m *mockDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if m.queryRowFunc != nil {
		return m.queryRowFunc(ctx, sql, args...)
	}
	return &mockRow{scanFunc: func(dest ...any) error { return pgx.ErrNoRows }}
}

func (m *mockDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if m.queryFunc != nil {
		return m.queryFunc(ctx, sql, args...)
	}
	return &mockRows{}, nil
}

func (m *mockDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if m.execFunc != nil {
		return m.execFunc(ctx, sql, args...)
	}
	return pgconn.CommandTag{}, nil
}

// ---------------------------------------------------------------------------
// PostgresStore tests
// ---------------------------------------------------------------------------

func TestPostgresStore_Migrate(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		db := &mockDB{
			execFunc: func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
				for _, table := range []string{"npcs", "npc_skills", "npc_weapons", "organisations", "npc_connections"} {
					if !strings.Contains(sql, table) {
						t.Errorf("Schema missing table %q", table)
					}
				}
				return pgconn.CommandTag{}, nil
			},
		}
		store := NewPostgresStore(db)
		if err := store.Migrate(context.Background()); err != nil {
			t.Fatalf("Migrate() unexpected error: %v", err)
		}
	})

	t.Run("error", func(t *testing.T) {
		t.Parallel()
		db := &mockDB{
			execFunc: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("connection refused")
			},
		}
		store := NewPostgresStore(db)
		if err := store.Migrate(context.Background()); err == nil {
			t.Fatal("Migrate() expected error, got nil")
		}
	})
}

func TestPostgresStore_Create(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		var capturedSQL string
		var capturedArgs []any
		db := &mockDB{
			queryRowFunc: func(_ context.Context, sql string, args ...any) pgx.Row {
				capturedSQL = sql
				capturedArgs = args
				return &mockRow{
					scanFunc: func(dest ...any) error {
						*(dest[0].(*int64)) = 7
						*(dest[1].(*time.Time)) = fixedTime
						*(dest[2].(*time.Time)) = fixedTime
						return nil
					},
				}
			},
		}

		store := NewPostgresStore(db)
		rec := &Record{
			Name:   "Kaelen Voss",
			Region: "Ammaria",
			Tier:   "Wild Card",
			Edges:  []string{"Quick"},
		}
		if err := store.Create(context.Background(), rec); err != nil {
			t.Fatalf("Create() unexpected error: %v", err)
		}

		if !strings.Contains(capturedSQL, "INSERT INTO npcs") {
			t.Errorf("SQL should contain INSERT INTO npcs, got: %s", capturedSQL)
		}
		if len(capturedArgs) != 36 {
			t.Errorf("expected 36 args, got %d", len(capturedArgs))
		}
		if capturedArgs[0] != "Kaelen Voss" {
			t.Errorf("first arg = %v, want 'Kaelen Voss'", capturedArgs[0])
		}
		if rec.ID != 7 {
			t.Errorf("ID = %d, want 7", rec.ID)
		}
		if rec.CreatedAt != fixedTime {
			t.Errorf("CreatedAt = %v, want %v", rec.CreatedAt, fixedTime)
		}
	})

	t.Run("nil lists marshal as empty arrays", func(t *testing.T) {
		t.Parallel()

		var capturedArgs []any
		db := &mockDB{
			queryRowFunc: func(_ context.Context, _ string, args ...any) pgx.Row {
				capturedArgs = args
				return &mockRow{
					scanFunc: func(dest ...any) error {
						*(dest[0].(*int64)) = 1
						*(dest[1].(*time.Time)) = fixedTime
						*(dest[2].(*time.Time)) = fixedTime
						return nil
					},
				}
			},
		}

		store := NewPostgresStore(db)
		if err := store.Create(context.Background(), &Record{Name: "X", Region: "Global", Tier: "Extra"}); err != nil {
			t.Fatalf("Create() unexpected error: %v", err)
		}
		// edges is the first JSONB arg, index 21.
		if got := string(capturedArgs[21].([]byte)); got != "[]" {
			t.Errorf("edges arg = %q, want \"[]\"", got)
		}
	})

	t.Run("db error", func(t *testing.T) {
		t.Parallel()
		db := &mockDB{
			queryRowFunc: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &mockRow{scanFunc: func(_ ...any) error { return errors.New("connection lost") }}
			},
		}
		store := NewPostgresStore(db)
		err := store.Create(context.Background(), &Record{Name: "X"})
		if err == nil {
			t.Fatal("Create() expected error, got nil")
		}
		if !strings.Contains(err.Error(), "npc: create:") {
			t.Errorf("error = %q, want prefix 'npc: create:'", err.Error())
		}
	})
}

// recordRowValues builds one npcs row in recordColumns order.
func recordRowValues(id int64, name, region string, ts time.Time) []any {
	return []any{
		id, name, "", region, "Extra", "", "",
		"", "", "",
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0,
		[]byte(`["Quick"]`), []byte(`[]`), []byte(`[]`), []byte(`[]`), []byte(`[]`),
		"", "", "", "", "", "",
		false, false, false,
		"", ts, ts,
	}
}

func TestPostgresStore_Get(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		row := recordRowValues(3, "Szara", "Saltlands", fixedTime)
		db := &mockDB{
			queryRowFunc: func(_ context.Context, _ string, args ...any) pgx.Row {
				if args[0] != int64(3) {
					t.Errorf("Get() id = %v, want 3", args[0])
				}
				return &mockRow{
					scanFunc: func(dest ...any) error {
						rows := &mockRows{data: [][]any{row}, idx: 1}
						return rows.Scan(dest...)
					},
				}
			},
		}

		store := NewPostgresStore(db)
		rec, err := store.Get(context.Background(), 3)
		if err != nil {
			t.Fatalf("Get() unexpected error: %v", err)
		}
		if rec.Name != "Szara" || rec.Region != "Saltlands" {
			t.Errorf("record = %+v", rec)
		}
		if len(rec.Edges) != 1 || rec.Edges[0] != "Quick" {
			t.Errorf("Edges = %v, want [Quick]", rec.Edges)
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		store := NewPostgresStore(&mockDB{})
		_, err := store.Get(context.Background(), 42)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("Get() error = %v, want ErrNotFound", err)
		}
	})
}

func TestPostgresStore_Delete(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		db := &mockDB{
			execFunc: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
				if !strings.Contains(sql, "DELETE FROM npcs") {
					t.Errorf("SQL = %q, want DELETE statement", sql)
				}
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		store := NewPostgresStore(db)
		if err := store.Delete(context.Background(), 1); err != nil {
			t.Fatalf("Delete() unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		db := &mockDB{
			execFunc: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}
		store := NewPostgresStore(db)
		if err := store.Delete(context.Background(), 42); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Delete() error = %v, want ErrNotFound", err)
		}
	})
}

func TestPostgresStore_List(t *testing.T) {
	t.Parallel()

	overviewRow := func(id int64, name, region string) []any {
		return []any{id, name, "", region, "Extra", "", false, false, false, ""}
	}

	t.Run("no filters", func(t *testing.T) {
		t.Parallel()
		db := &mockDB{
			queryFunc: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				if strings.Contains(sql, "WHERE") {
					t.Errorf("unfiltered List should not contain WHERE, got: %s", sql)
				}
				if len(args) != 0 {
					t.Errorf("unfiltered List should have 0 args, got %d", len(args))
				}
				return &mockRows{data: [][]any{
					overviewRow(1, "Mirel", "Ammaria"),
					overviewRow(2, "Zeth", "Vinlands"),
				}}, nil
			},
		}
		store := NewPostgresStore(db)
		rows, err := store.List(context.Background(), ListOptions{})
		if err != nil {
			t.Fatalf("List() unexpected error: %v", err)
		}
		if len(rows) != 2 || rows[0].Name != "Mirel" {
			t.Errorf("rows = %+v", rows)
		}
	})

	t.Run("region and tier filters", func(t *testing.T) {
		t.Parallel()
		db := &mockDB{
			queryFunc: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				if !strings.Contains(sql, "n.region = $1") || !strings.Contains(sql, "n.tier = $2") {
					t.Errorf("SQL missing filters: %s", sql)
				}
				if len(args) != 2 || args[0] != "Saltlands" || args[1] != "Wild Card" {
					t.Errorf("args = %v", args)
				}
				return &mockRows{}, nil
			},
		}
		store := NewPostgresStore(db)
		if _, err := store.List(context.Background(), ListOptions{Region: "Saltlands", Tier: "Wild Card"}); err != nil {
			t.Fatalf("List() unexpected error: %v", err)
		}
	})

	t.Run("organisation filter uses HAVING", func(t *testing.T) {
		t.Parallel()
		db := &mockDB{
			queryFunc: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				if !strings.Contains(sql, "HAVING") {
					t.Errorf("SQL missing HAVING: %s", sql)
				}
				if len(args) != 1 || args[0] != "Brine Combine" {
					t.Errorf("args = %v", args)
				}
				return &mockRows{}, nil
			},
		}
		store := NewPostgresStore(db)
		if _, err := store.List(context.Background(), ListOptions{Organisation: "Brine Combine"}); err != nil {
			t.Fatalf("List() unexpected error: %v", err)
		}
	})

	t.Run("rows error after iteration", func(t *testing.T) {
		t.Parallel()
		db := &mockDB{
			queryFunc: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &mockRows{err: errors.New("stream interrupted")}, nil
			},
		}
		store := NewPostgresStore(db)
		if _, err := store.List(context.Background(), ListOptions{}); err == nil {
			t.Fatal("List() expected error from rows.Err()")
		}
	})
}

func TestPostgresStore_Search(t *testing.T) {
	t.Parallel()

	db := &mockDB{
		queryFunc: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			for _, col := range []string{
				"n.name", "n.title", "n.archetype", "n.description",
				"n.background", "n.motivation", "n.quote", "n.notes",
			} {
				if !strings.Contains(sql, col+" ILIKE $1") {
					t.Errorf("SQL missing %s match: %s", col, sql)
				}
			}
			if len(args) != 1 || args[0] != "%quartermaster%" {
				t.Errorf("args = %v, want wrapped pattern", args)
			}
			return &mockRows{}, nil
		},
	}
	store := NewPostgresStore(db)
	if _, err := store.Search(context.Background(), "quartermaster"); err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}
}

func TestPostgresStore_PutSkill(t *testing.T) {
	t.Parallel()

	t.Run("upsert sql", func(t *testing.T) {
		t.Parallel()
		db := &mockDB{
			execFunc: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
				if !strings.Contains(sql, "ON CONFLICT (npc_id, name)") {
					t.Errorf("SQL should upsert on (npc_id, name), got: %s", sql)
				}
				if args[1] != "Fighting" || args[2] != 8 {
					t.Errorf("args = %v", args)
				}
				return pgconn.CommandTag{}, nil
			},
		}
		store := NewPostgresStore(db)
		if err := store.PutSkill(context.Background(), 1, Skill{Name: "Fighting", Die: 8}); err != nil {
			t.Fatalf("PutSkill() unexpected error: %v", err)
		}
	})

	t.Run("missing npc maps FK violation", func(t *testing.T) {
		t.Parallel()
		db := &mockDB{
			execFunc: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, &pgconn.PgError{Code: "23503"}
			},
		}
		store := NewPostgresStore(db)
		if err := store.PutSkill(context.Background(), 42, Skill{Name: "Fighting", Die: 6}); !errors.Is(err, ErrNotFound) {
			t.Fatalf("PutSkill() error = %v, want ErrNotFound", err)
		}
	})
}

func TestPostgresStore_CreateOrganisation(t *testing.T) {
	t.Parallel()

	t.Run("duplicate name", func(t *testing.T) {
		t.Parallel()
		db := &mockDB{
			queryRowFunc: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &mockRow{scanFunc: func(_ ...any) error {
					return &pgconn.PgError{Code: "23505"}
				}}
			},
		}
		store := NewPostgresStore(db)
		err := store.CreateOrganisation(context.Background(), &Organisation{Name: "Brine Combine"})
		if !errors.Is(err, ErrDuplicate) {
			t.Fatalf("CreateOrganisation() error = %v, want ErrDuplicate", err)
		}
	})

	t.Run("assigns id", func(t *testing.T) {
		t.Parallel()
		db := &mockDB{
			queryRowFunc: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &mockRow{scanFunc: func(dest ...any) error {
					*(dest[0].(*int64)) = 11
					return nil
				}}
			},
		}
		store := NewPostgresStore(db)
		org := Organisation{Name: "Salt Wardens"}
		if err := store.CreateOrganisation(context.Background(), &org); err != nil {
			t.Fatalf("CreateOrganisation() unexpected error: %v", err)
		}
		if org.ID != 11 {
			t.Errorf("ID = %d, want 11", org.ID)
		}
	})
}

func TestPostgresStore_Connect(t *testing.T) {
	t.Parallel()

	var capturedArgs []any
	db := &mockDB{
		execFunc: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
			capturedArgs = args
			return pgconn.CommandTag{}, nil
		},
	}
	store := NewPostgresStore(db)
	if err := store.Connect(context.Background(), 9, 2, "rivals", ""); err != nil {
		t.Fatalf("Connect() unexpected error: %v", err)
	}
	// IDs are normalised so the lower one comes first.
	if capturedArgs[0] != int64(2) || capturedArgs[1] != int64(9) {
		t.Errorf("args = %v, want IDs ordered low/high", capturedArgs)
	}
}

func TestPostgresStore_Status(t *testing.T) {
	t.Parallel()

	db := &mockDB{
		queryFunc: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			if !strings.Contains(sql, "WHERE region = $1") {
				t.Errorf("SQL missing region filter: %s", sql)
			}
			if len(args) != 1 || args[0] != "Saltlands" {
				t.Errorf("args = %v", args)
			}
			return &mockRows{data: [][]any{
				{"Saltlands", "Wild Card", 4, 2, 1, 1},
			}}, nil
		},
	}
	store := NewPostgresStore(db)
	rows, err := store.Status(context.Background(), "Saltlands")
	if err != nil {
		t.Fatalf("Status() unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Status() returned %d rows, want 1", len(rows))
	}
	if rows[0].Total != 4 || rows[0].StatsDone != 2 {
		t.Errorf("row = %+v", rows[0])
	}
}
