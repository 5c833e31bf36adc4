//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"log/slog"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/phrazzld/metadesc-api/internal/platform/postgres"
	"github.com/stretchr/testify/require"
)

// URLEnvVars lists the environment variables consulted for the test database
// URL, in priority order.
var URLEnvVars = []string{"METADESC_TEST_DATABASE_URL", "DATABASE_URL"}

// TestTimeout bounds connection and migration work during setup.
const TestTimeout = 30 * time.Second

// GetTestDatabaseURL returns the first configured test database URL, or an
// empty string.
func GetTestDatabaseURL() string {
	for _, name := range URLEnvVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// ShouldSkipDatabaseTest reports whether no test database is configured.
func ShouldSkipDatabaseTest() bool {
	return GetTestDatabaseURL() == ""
}

// GetTestDBWithT opens the test database, applies all migrations and
// truncates the content tables. The connection is closed when the test
// finishes. The test is skipped if no database is configured.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("no test database configured; set METADESC_TEST_DATABASE_URL")
	}

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := postgres.Open(ctx, dbURL)
	require.NoError(t, err, "failed to connect to %s", maskDatabaseURL(dbURL))
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, postgres.Migrate(ctx, db, "up", slog.Default()), "failed to apply migrations")
	ResetContent(t, db)

	return db
}

// ResetContent removes all content items and bundles.
func ResetContent(t *testing.T, db *sql.DB) {
	t.Helper()
	_, err := db.ExecContext(context.Background(), "TRUNCATE content_items, bundles")
	require.NoError(t, err, "failed to truncate content tables")
}

// maskDatabaseURL hides the password of a database URL for log output.
func maskDatabaseURL(dbURL string) string {
	u, err := url.Parse(dbURL)
	if err != nil || u.User == nil {
		return "[unparseable database url]"
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}
