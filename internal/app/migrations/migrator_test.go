package migrations

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionOf(t *testing.T) {
	assert.Equal(t, "001", versionOf("001_init.sql"))
	assert.Equal(t, "002", versionOf("migrations/002_sessions.sql"))
	assert.Equal(t, "003", versionOf("003_add_index_on_x.sql"))
}

func TestRepositoryMigrationsAreOrderedAndUnique(t *testing.T) {
	dir := filepath.Join("..", "..", "..", "migrations")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	seen := map[string]bool{}
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		v := versionOf(e.Name())
		assert.False(t, seen[v], "duplicate migration version %s", v)
		seen[v] = true
		names = append(names, e.Name())
	}

	require.NotEmpty(t, names)
	assert.True(t, sort.StringsAreSorted(names))

	initSQL, err := os.ReadFile(filepath.Join(dir, "001_init.sql"))
	require.NoError(t, err)
	for _, constraint := range []string{"accounts_email_key", "registrations_account_internship_key", "profiles_cgpa_check"} {
		assert.Contains(t, string(initSQL), constraint)
	}
	assert.Regexp(t, regexp.MustCompile(`(?m)^\s*cgpa\s+DOUBLE PRECISION,`), string(initSQL))
}
