package timeoff

import (
	"context"
	"errors"
	"time"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/events"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/messaging/kafka"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/contextutil"
	timeofferrors "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/timeoff/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/timeoff_service_mock.go -package=mock . Service
type Service interface {
	Create(ctx context.Context, companyID, employeeID string, req CreateTimeOffRequest) (TimeOffResponse, error)
	ListMine(ctx context.Context, companyID, employeeID string) ([]TimeOffResponse, error)
	ListPending(ctx context.Context, companyID string) ([]TimeOffResponse, error)
	UpdateStatus(ctx context.Context, companyID, decidedBy, id string, req UpdateStatusRequest) (TimeOffResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("timeoff.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timeoff.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) Create(ctx context.Context, companyID, employeeID string, req CreateTimeOffRequest) (TimeOffResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return TimeOffResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return TimeOffResponse{}, err
	}
	if startDate.After(endDate) {
		return TimeOffResponse{}, timeofferrors.ErrInvalidDateRange
	}

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return TimeOffResponse{}, err
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return TimeOffResponse{}, err
	}

	t := &TimeOff{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		EmployeeID: employeeUUID,
		Policy:     req.Policy,
		StartDate:  startDate,
		EndDate:    endDate,
		TotalDays:  int(endDate.Sub(startDate).Hours()/24) + 1,
		Reason:     req.Reason,
		Status:     StatusPending,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		overlap, err := qtx.HasOverlappingPeriod(ctx, companyID, employeeID, startDate, endDate)
		if err != nil {
			return err
		}
		if overlap {
			log.Warn("time off overlap detected",
				zap.String("employee_id", employeeID),
				zap.String("start_date", req.StartDate),
				zap.String("end_date", req.EndDate),
			)
			return timeofferrors.ErrTimeOffOverlap
		}
		return qtx.Create(ctx, t)
	})
	if err != nil {
		return TimeOffResponse{}, err
	}

	log.Info("time off requested",
		zap.String("time_off_id", t.ID.String()),
		zap.String("employee_id", employeeID),
	)
	return mapToResponse(ListRow{TimeOff: *t}), nil
}

func (s *service) ListMine(ctx context.Context, companyID, employeeID string) ([]TimeOffResponse, error) {
	rows, err := s.repo.ListByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}
	resp := make([]TimeOffResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, mapToResponse(ListRow{TimeOff: r}))
	}
	return resp, nil
}

func (s *service) ListPending(ctx context.Context, companyID string) ([]TimeOffResponse, error) {
	rows, err := s.repo.ListPending(ctx, companyID)
	if err != nil {
		return nil, err
	}
	resp := make([]TimeOffResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, mapToResponse(r))
	}
	return resp, nil
}

// UpdateStatus moves a PENDING request to a terminal status.
func (s *service) UpdateStatus(ctx context.Context, companyID, decidedBy, id string, req UpdateStatusRequest) (TimeOffResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return TimeOffResponse{}, timeofferrors.ErrInvalidTimeOffID
	}

	var updated *TimeOff
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		t, err := qtx.FindForUpdate(ctx, companyID, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return timeofferrors.ErrTimeOffNotFound
			}
			return err
		}
		if !isAllowedStatusTransition(t.Status, req.Status) {
			log.Warn("time off status transition invalid",
				zap.String("time_off_id", id),
				zap.String("from_status", t.Status),
				zap.String("to_status", req.Status),
			)
			return timeofferrors.ErrInvalidStatusTransition
		}

		now := time.Now().UTC()
		t.Status = req.Status
		t.DecidedAt = &now
		if uid, err := uuid.Parse(decidedBy); err == nil {
			t.DecidedBy = &uid
		}
		if err := qtx.Update(ctx, t); err != nil {
			return err
		}

		if s.outbox != nil {
			event, err := kafka.NewPendingEvent(rid, "time_off", t.ID.String(),
				events.EventTypeTimeOffDecided, events.TimeOffDecidedTopic,
				events.TimeOffDecidedEvent{
					EventType:  events.EventTypeTimeOffDecided,
					RequestID:  rid,
					TimeOffID:  t.ID.String(),
					CompanyID:  t.CompanyID.String(),
					EmployeeID: t.EmployeeID.String(),
					Policy:     t.Policy,
					StartDate:  t.StartDate.Format("2006-01-02"),
					EndDate:    t.EndDate.Format("2006-01-02"),
					Status:     t.Status,
					DecidedBy:  decidedBy,
					OccurredAt: now,
				})
			if err != nil {
				return err
			}
			if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
				return err
			}
		}

		updated = t
		return nil
	})
	if err != nil {
		return TimeOffResponse{}, err
	}

	log.Info("time off status updated",
		zap.String("request_id", rid),
		zap.String("time_off_id", id),
		zap.String("status", updated.Status),
	)
	return mapToResponse(ListRow{TimeOff: *updated}), nil
}

func isAllowedStatusTransition(currentStatus, targetStatus string) bool {
	if currentStatus != StatusPending {
		return false
	}
	switch targetStatus {
	case StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, timeofferrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(r ListRow) TimeOffResponse {
	resp := TimeOffResponse{
		ID:               r.ID.String(),
		EmployeeID:       r.EmployeeID.String(),
		EmployeeName:     r.EmployeeName,
		EmployeePosition: r.EmployeePosition,
		Policy:           r.Policy,
		StartDate:        r.StartDate.Format("2006-01-02"),
		EndDate:          r.EndDate.Format("2006-01-02"),
		TotalDays:        r.TotalDays,
		Reason:           r.Reason,
		Status:           r.Status,
	}
	if r.DecidedAt != nil {
		v := r.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}
