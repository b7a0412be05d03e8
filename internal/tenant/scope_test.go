package tenant_test

import (
	"testing"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/tenant"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func TestScope(t *testing.T) {
	db := dryRunDB(t)
	var rows []map[string]any

	stmt := db.Table("announcements").Scopes(tenant.Scope("c-1")).Find(&rows).Statement

	assert.Contains(t, stmt.SQL.String(), "WHERE company_id = $1")
	assert.Equal(t, []any{"c-1"}, stmt.Vars)
}

func TestScopeAs(t *testing.T) {
	db := dryRunDB(t)
	var rows []map[string]any

	stmt := db.Table("clock_records AS cr").
		Joins("JOIN employees e ON e.id = cr.employee_id").
		Scopes(tenant.ScopeAs("cr", "c-1")).
		Where("cr.status = ?", "clocked-in").
		Find(&rows).Statement

	assert.Contains(t, stmt.SQL.String(), "WHERE cr.company_id = $1 AND cr.status = $2")
	assert.Equal(t, []any{"c-1", "clocked-in"}, stmt.Vars)
}
