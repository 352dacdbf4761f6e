package pgsql

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initSchema(t *testing.T) string {
	t.Helper()
	raw, err := os.ReadFile("../../../../migrations/000001_init.up.sql")
	require.NoError(t, err)
	return string(raw)
}

func tableDDL(t *testing.T, schema, table string) string {
	t.Helper()
	marker := "CREATE TABLE IF NOT EXISTS " + table + " ("
	start := strings.Index(schema, marker)
	require.NotEqual(t, -1, start, "table %s missing from schema", table)
	length := strings.Index(schema[start:], ");")
	require.NotEqual(t, -1, length)
	return schema[start : start+length]
}

// Deleting an account must leave the financial history intact: purchases,
// bookings and the wallet ledger carry no foreign key back to users, so the
// rows survive the user row.
func TestOrderAndLedgerRowsSurviveAccountDeletion(t *testing.T) {
	schema := initSchema(t)

	for _, table := range []string{"purchases", "bookings", "wallet_transactions"} {
		t.Run(table, func(t *testing.T) {
			ddl := tableDDL(t, schema, table)
			assert.NotContains(t, ddl, "REFERENCES users")
			assert.NotContains(t, ddl, "CASCADE")
		})
	}
}

// Blogs outlive their author: author_id is nullable and unlinks on account
// deletion instead of blocking it or dropping the post.
func TestBlogAuthorUnlinksOnAccountDeletion(t *testing.T) {
	schema := initSchema(t)
	ddl := tableDDL(t, schema, "blogs")

	assert.Contains(t, ddl, "author_id       VARCHAR(36) REFERENCES users (user_id) ON DELETE SET NULL")
	assert.NotContains(t, ddl, "author_id       VARCHAR(36) NOT NULL")
}
