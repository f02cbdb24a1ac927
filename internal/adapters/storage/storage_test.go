package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-task-tracker/internal/domain/model"
	"github.com/jsamuelsen11/go-task-tracker/internal/platform/config"
)

// testClock hands out timestamps in the past so the "not in the future"
// rules hold, and moves only when told to.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Now().UTC().Add(-time.Hour).Truncate(time.Microsecond)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

type testEnv struct {
	db       *Database
	tasks    *TaskStore
	statuses *StatusStore
	clock    *testClock
}

// newTestDB opens a private in-memory SQLite database with the schema
// applied.
func newTestDB(t *testing.T) *Database {
	t.Helper()

	db, err := Open(context.Background(), config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		DSN:          ":memory:",
		ConnectRetry: config.RetryConfig{MaxAttempts: 1},
	}, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return db
}

// newTestEnv returns stores over a seeded database.
func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	db := newTestDB(t)
	clock := newTestClock()
	lc := model.NewLifecycle(model.NewValidator(NewReferences(db)), model.WithClock(clock.Now))

	env := testEnv{
		db:       db,
		tasks:    NewTaskStore(db, lc, nil),
		statuses: NewStatusStore(db, lc, nil),
		clock:    clock,
	}

	n, err := Seed(context.Background(), env.statuses, nil)
	if err != nil || n != 3 {
		t.Fatalf("Seed() = %d, %v; want 3, nil", n, err)
	}
	return env
}

func TestSQLiteDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: ":memory:", want: ":memory:?_foreign_keys=on"},
		{dsn: "file:tasks.db", want: "file:tasks.db?_foreign_keys=on"},
		{dsn: "file:tasks.db?cache=shared", want: "file:tasks.db?cache=shared&_foreign_keys=on"},
		{dsn: "file:tasks.db?_foreign_keys=on", want: "file:tasks.db?_foreign_keys=on"},
		{dsn: "file:tasks.db?_fk=off", want: "file:tasks.db?_fk=off"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			t.Parallel()

			if got := sqliteDSN(tt.dsn); got != tt.want {
				t.Errorf("sqliteDSN(%q) = %q, want %q", tt.dsn, got, tt.want)
			}
		})
	}
}

func TestOpen_SQLiteEnforcesForeignKeysOnNewConnections(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	sqlDB, err := db.Gorm().DB()
	if err != nil {
		t.Fatalf("DB() error = %v", err)
	}
	// Force the pool to replace its connection.
	sqlDB.SetMaxIdleConns(0)
	sqlDB.SetMaxIdleConns(1)

	var enabled int
	if err := db.Gorm().Raw("PRAGMA foreign_keys").Scan(&enabled).Error; err != nil {
		t.Fatalf("PRAGMA foreign_keys error = %v", err)
	}
	if enabled != 1 {
		t.Errorf("foreign_keys = %d, want 1", enabled)
	}
}
