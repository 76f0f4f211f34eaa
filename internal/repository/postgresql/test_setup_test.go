package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/cmlabs-hris/hris-attendance-core/internal/pkg/database"
	"github.com/cmlabs-hris/hris-attendance-core/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

// newTestDB connects to TEST_DATABASE_URL, applies the schema and empties every table.
// Tests are skipped when the variable is unset.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, postgresql.Migrate(ctx, db))
	truncateAllTables(t, db)
	return db
}

func truncateAllTables(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	tx, err := db.BeginTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	for _, table := range []string{"attendance_events", "records", "employees"} {
		_, err := tx.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err, table)
	}

	require.NoError(t, tx.Commit(ctx))
}

func seedEmployee(t *testing.T, db *database.DB, id, name, department string, active bool) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		`INSERT INTO employees (id, full_name, department, active) VALUES ($1, $2, $3, $4)`,
		id, name, department, active)
	require.NoError(t, err)
}
