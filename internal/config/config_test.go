package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("TENANT_TOKEN_TTL", "")
	t.Setenv("EMPLOYEE_TOKEN_TTL", "")
	t.Setenv("PORT", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, time.Hour, cfg.TenantTokenTTL)
	assert.Equal(t, 24*time.Hour, cfg.EmployeeTokenTTL)
	assert.ErrorIs(t, cfg.Validate(), ErrMissingJWTSecret)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TENANT_TOKEN_TTL", "30m")
	t.Setenv("EMPLOYEE_TOKEN_TTL", "not-a-duration")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "hr")

	cfg := Load()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 30*time.Minute, cfg.TenantTokenTTL)
	assert.Equal(t, 24*time.Hour, cfg.EmployeeTokenTTL)
	assert.True(t, cfg.DBAutoMigrate)
	assert.Contains(t, cfg.DSN(), "host=db")
	assert.Contains(t, cfg.DSN(), "dbname=hr")
	assert.Contains(t, cfg.DSN(), "TimeZone=UTC")
}
