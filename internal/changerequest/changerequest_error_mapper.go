package changerequest

import (
	"errors"

	changerequesterrors "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/changerequest/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return changerequesterrors.ErrChangeRequestNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_change_requests_pending_record" {
		return changerequesterrors.ErrPendingRequestExists
	}

	return err
}
