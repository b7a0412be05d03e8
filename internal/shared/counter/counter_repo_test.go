package counter

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)
	return db, mock
}

func TestGetNextValue(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`INSERT INTO company_counters`).
		WithArgs("comp-1", TypeEmployeeNumber).
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(7)))

	got, err := repo.GetNextValue(context.Background(), "comp-1", TypeEmployeeNumber)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), got)
	assert.Equal(t, "EMP-000007", FormatEmployeeNumber(got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNextValue_Error(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`INSERT INTO company_counters`).WillReturnError(errors.New("db down"))

	_, err := repo.GetNextValue(context.Background(), "comp-1", TypeEmployeeNumber)

	assert.Error(t, err)
}
