// Package dbtest opens throwaway migrated databases for tests.
package dbtest

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Dosada05/club-records/db"
)

// OpenSQLite returns a fresh in-memory database with every migration applied.
// It is closed when the test ends.
func OpenSQLite(t testing.TB) *sql.DB {
	t.Helper()

	conn, err := db.Connect(db.DriverSQLite, ":memory:", 5*time.Second)
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() {
		_ = conn.Close()
	})

	if err := db.Migrate(context.Background(), conn, db.DriverSQLite); err != nil {
		t.Fatalf("migrate in-memory db: %v", err)
	}
	return conn
}
