package changerequest

import (
	"context"
	"errors"
	"time"

	changerequesterrors "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/changerequest/errors"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/clockrecord"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/events"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/messaging/kafka"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/changerequest_service_mock.go -package=mock . Service
type Service interface {
	Create(ctx context.Context, companyID, employeeID string, req CreateChangeRequestRequest) (ChangeRequestResponse, error)
	List(ctx context.Context, companyID, status string) ([]ChangeRequestResponse, error)
	Decide(ctx context.Context, companyID, decidedBy, id string, req DecideChangeRequestRequest) (ChangeRequestResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	clocks clockrecord.Repository
	outbox kafka.OutboxRepository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	clocks clockrecord.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("changerequest.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("changerequest.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		clocks: clocks,
		outbox: outboxRepo,
		now:    func() time.Time { return time.Now().UTC() },
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, companyID, employeeID string, req CreateChangeRequestRequest) (ChangeRequestResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	rec, err := s.clocks.FindByIDAndCompany(ctx, companyID, req.ClockRecordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ChangeRequestResponse{}, changerequesterrors.ErrTimecardNotFound
		}
		return ChangeRequestResponse{}, err
	}
	if rec.EmployeeID.String() != employeeID {
		return ChangeRequestResponse{}, changerequesterrors.ErrTimecardNotFound
	}

	in := rec.ClockInTime
	if req.ClockInTime != nil {
		in = req.ClockInTime.UTC()
	}
	var out time.Time
	switch {
	case req.ClockOutTime != nil:
		out = req.ClockOutTime.UTC()
	case rec.ClockOutTime != nil:
		out = *rec.ClockOutTime
	default:
		return ChangeRequestResponse{}, changerequesterrors.ErrClockOutRequired
	}
	if !out.After(in) {
		return ChangeRequestResponse{}, changerequesterrors.ErrInvalidTimeRange
	}

	pending, err := s.repo.HasPending(ctx, req.ClockRecordID)
	if err != nil {
		return ChangeRequestResponse{}, err
	}
	if pending {
		return ChangeRequestResponse{}, changerequesterrors.ErrPendingRequestExists
	}

	cr := &ChangeRequest{
		ID:            uuid.New(),
		CompanyID:     rec.CompanyID,
		EmployeeID:    rec.EmployeeID,
		ClockRecordID: rec.ID,
		Note:          req.Note,
		ClockInTime:   in,
		ClockOutTime:  out,
		Status:        StatusPending,
	}
	if err := s.repo.Create(ctx, cr); err != nil {
		return ChangeRequestResponse{}, mapRepositoryError(err)
	}

	log.Info("change request submitted",
		zap.String("change_request_id", cr.ID.String()),
		zap.String("clock_record_id", rec.ID.String()),
		zap.String("employee_id", employeeID),
	)
	return mapToResponse(ListRow{ChangeRequest: *cr}), nil
}

func (s *service) List(ctx context.Context, companyID, status string) ([]ChangeRequestResponse, error) {
	switch status {
	case "", StatusPending, StatusApproved, StatusRejected:
	default:
		return nil, changerequesterrors.ErrInvalidStatusFilter
	}

	rows, err := s.repo.List(ctx, companyID, status)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]ChangeRequestResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, mapToResponse(r))
	}
	return resp, nil
}

// Decide approves or rejects a pending request. Approval rewrites the
// timecard with the admin's times, falling back to the proposed ones.
func (s *service) Decide(ctx context.Context, companyID, decidedBy, id string, req DecideChangeRequestRequest) (ChangeRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return ChangeRequestResponse{}, changerequesterrors.ErrInvalidChangeRequestID
	}

	var decided *ChangeRequest
	var amended *clockrecord.ClockRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		cr, err := qtx.FindForUpdate(ctx, companyID, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if cr.Status != StatusPending {
			return changerequesterrors.ErrAlreadyDecided
		}

		if req.Status == StatusApproved {
			in, out := cr.ClockInTime, cr.ClockOutTime
			if req.NewClockInTime != nil {
				in = req.NewClockInTime.UTC()
			}
			if req.NewClockOutTime != nil {
				out = req.NewClockOutTime.UTC()
			}
			if !out.After(in) {
				return changerequesterrors.ErrInvalidTimeRange
			}

			clocks := s.clocks.WithTx(tx)
			rec, err := clocks.FindByIDAndCompany(ctx, companyID, cr.ClockRecordID.String())
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return changerequesterrors.ErrTimecardNotFound
				}
				return err
			}
			rec.Amend(in, out)
			if err := clocks.Update(ctx, rec); err != nil {
				return err
			}
			cr.ClockInTime, cr.ClockOutTime = in, out
			amended = rec
		}

		now := s.now()
		cr.Status = req.Status
		cr.DecidedAt = &now
		if uid, err := uuid.Parse(decidedBy); err == nil {
			cr.DecidedBy = &uid
		}
		if err := qtx.Update(ctx, cr); err != nil {
			return mapRepositoryError(err)
		}

		if s.outbox != nil {
			event := events.ChangeRequestDecidedEvent{
				EventType:       events.EventTypeChangeRequestDecided,
				RequestID:       rid,
				ChangeRequestID: cr.ID.String(),
				ClockRecordID:   cr.ClockRecordID.String(),
				CompanyID:       cr.CompanyID.String(),
				EmployeeID:      cr.EmployeeID.String(),
				Status:          cr.Status,
				DecidedBy:       decidedBy,
				OccurredAt:      now,
			}
			if amended != nil {
				event.ClockInTime = &amended.ClockInTime
				event.ClockOutTime = amended.ClockOutTime
			}
			outboxEvent, err := kafka.NewPendingEvent(rid, "change_request", cr.ID.String(),
				events.EventTypeChangeRequestDecided, events.ChangeRequestDecidedTopic, event)
			if err != nil {
				return err
			}
			if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
				return err
			}
		}

		decided = cr
		return nil
	})
	if err != nil {
		return ChangeRequestResponse{}, err
	}

	log.Info("change request decided",
		zap.String("request_id", rid),
		zap.String("change_request_id", id),
		zap.String("status", decided.Status),
	)
	return mapToResponse(ListRow{ChangeRequest: *decided}), nil
}

func mapToResponse(r ListRow) ChangeRequestResponse {
	return ChangeRequestResponse{
		ID:            r.ID.String(),
		ClockRecordID: r.ClockRecordID.String(),
		EmployeeID:    r.EmployeeID.String(),
		EmployeeName:  r.EmployeeName,
		PhoneNumber:   r.EmployeePhone,
		Email:         r.EmployeeEmail,
		RequestedAt:   r.CreatedAt,
		ClockInTime:   r.ClockInTime,
		ClockOutTime:  r.ClockOutTime,
		Note:          r.Note,
		Status:        r.Status,
		DecidedAt:     r.DecidedAt,
	}
}
