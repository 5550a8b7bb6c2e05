package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(Files(), ".")
	require.NoError(t, err)

	ups, downs := map[string]bool{}, map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}
	require.NotEmpty(t, ups)
	assert.Equal(t, ups, downs)
}

func TestSchemaCoversCatalogTables(t *testing.T) {
	data, err := fs.ReadFile(Files(), "000001_catalog.up.sql")
	require.NoError(t, err)

	for _, table := range []string{"categories", "attributes", "attribute_categories", "products", "attribute_values"} {
		assert.Contains(t, string(data), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}

func TestRunMigrationsClosesDBWhenDriverSetupFails(t *testing.T) {
	for name, run := range map[string]func(*sql.DB) error{
		"up":   RunMigrationsUp,
		"down": RunMigrationsDown,
	} {
		t.Run(name, func(t *testing.T) {
			db, _, err := sqlmock.New()
			require.NoError(t, err)

			// No expectations: the driver's first query fails.
			require.Error(t, run(db))
			assert.ErrorContains(t, db.Ping(), "database is closed")
		})
	}
}
