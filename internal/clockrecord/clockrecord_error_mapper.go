package clockrecord

import (
	"errors"

	clockrecorderrors "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/clockrecord/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return clockrecorderrors.ErrClockRecordNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_clock_records_active_employee" {
		return clockrecorderrors.ErrAlreadyClockedIn
	}

	return err
}
