package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptionFromFilename(t *testing.T) {
	assert.Equal(t, "create weight log", descriptionFromFilename("2026-09-28-004-create-weight-log.sql"))
	assert.Equal(t, "adhoc fix", descriptionFromFilename("adhoc-fix.sql"))
}

func TestPending(t *testing.T) {
	files := []string{
		"db/2026-09-28-003-create-profiles.sql",
		"db/2026-09-28-001-create-migrations.sql",
		"db/2026-09-28-002-create-users.sql",
	}
	applied := map[string]bool{"2026-09-28-001-create-migrations.sql": true}

	assert.Equal(t, []string{
		"db/2026-09-28-002-create-users.sql",
		"db/2026-09-28-003-create-profiles.sql",
	}, pending(files, applied))
	assert.Len(t, files, 3)
	assert.Equal(t, "db/2026-09-28-003-create-profiles.sql", files[0], "input is not reordered")
}
