package announcement

import (
	"context"
	"time"

	announcementerrors "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/announcement/errors"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/payweek"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock/announcement_service_mock.go -package=mock . Service
type Service interface {
	Create(ctx context.Context, companyID, createdBy string, req CreateAnnouncementRequest) (AnnouncementResponse, error)
	List(ctx context.Context, companyID string, upcoming bool) ([]AnnouncementResponse, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("announcement.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("announcement.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

func (s *service) Create(ctx context.Context, companyID, createdBy string, req CreateAnnouncementRequest) (AnnouncementResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return AnnouncementResponse{}, announcementerrors.ErrInvalidCompanyID
	}
	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return AnnouncementResponse{}, announcementerrors.ErrInvalidEventDate
	}

	a := &Announcement{
		ID:          uuid.New(),
		CompanyID:   companyUUID,
		Title:       req.Title,
		Description: req.Description,
		EventDate:   eventDate,
		CreatedAt:   s.now().UTC(),
	}
	if by, err := uuid.Parse(createdBy); err == nil {
		a.CreatedBy = by
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return AnnouncementResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("announcement created",
		zap.String("announcement_id", a.ID.String()),
		zap.String("event_date", req.EventDate),
	)
	return mapToResponse(*a), nil
}

func (s *service) List(ctx context.Context, companyID string, upcoming bool) ([]AnnouncementResponse, error) {
	var from *time.Time
	if upcoming {
		today := payweek.StartOfDay(s.now())
		from = &today
	}

	rows, err := s.repo.List(ctx, companyID, from)
	if err != nil {
		return nil, err
	}

	resp := make([]AnnouncementResponse, 0, len(rows))
	for _, a := range rows {
		resp = append(resp, mapToResponse(a))
	}
	return resp, nil
}

func mapToResponse(a Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:          a.ID.String(),
		Title:       a.Title,
		Description: a.Description,
		EventDate:   a.EventDate.Format("2006-01-02"),
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
}
