package report

import (
	"context"
	"time"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/payweek"
	reporterrors "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/report/errors"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/contextutil"

	"go.uber.org/zap"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

//go:generate mockgen -destination=mock/report_service_mock.go -package=mock . Service
type Service interface {
	ChangeRequests(ctx context.Context, companyID string, q Query) ([]ChangeRequestRow, error)
	Attendance(ctx context.Context, companyID string, q Query) ([]AttendanceRow, error)
	TimeOff(ctx context.Context, companyID string, q Query) ([]TimeOffRow, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) ChangeRequests(ctx context.Context, companyID string, q Query) ([]ChangeRequestRow, error) {
	rng, err := parseRange(q)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.ChangeRequests(ctx, companyID, rng)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("change request report failed", zap.Error(err))
		return nil, err
	}

	rows := make([]ChangeRequestRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, ChangeRequestRow{
			EmployeeName: r.EmployeeName,
			Email:        r.EmployeeEmail,
			RequestedAt:  formatTime(r.CreatedAt),
			ClockInTime:  formatTime(r.ClockInTime),
			ClockOutTime: formatTime(r.ClockOutTime),
			Note:         r.Note,
			Status:       r.Status,
		})
	}
	return rows, nil
}

func (s *service) Attendance(ctx context.Context, companyID string, q Query) ([]AttendanceRow, error) {
	rng, err := parseRange(q)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.Attendance(ctx, companyID, rng)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("attendance report failed", zap.Error(err))
		return nil, err
	}

	rows := make([]AttendanceRow, 0, len(records))
	for _, r := range records {
		row := AttendanceRow{
			EmployeeName:  r.EmployeeName,
			ClockInTime:   formatTime(r.ClockInTime),
			DurationHours: "0.00",
			Status:        r.Status,
		}
		// in-progress records keep an empty clock-out
		if r.ClockOutTime != nil {
			row.ClockOutTime = formatTime(*r.ClockOutTime)
		}
		if r.DurationSeconds != nil {
			row.DurationHours = payweek.Hours(*r.DurationSeconds).StringFixed(payweek.OutputPlaces)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *service) TimeOff(ctx context.Context, companyID string, q Query) ([]TimeOffRow, error) {
	rng, err := parseRange(q)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.TimeOff(ctx, companyID, rng)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("time off report failed", zap.Error(err))
		return nil, err
	}

	rows := make([]TimeOffRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, TimeOffRow{
			EmployeeName: r.EmployeeName,
			Policy:       r.Policy,
			StartDate:    r.StartDate.Format(dateLayout),
			EndDate:      r.EndDate.Format(dateLayout),
			Reason:       r.Reason,
			Status:       r.Status,
		})
	}
	return rows, nil
}

// parseRange turns inclusive from/to days into a half-open UTC range.
func parseRange(q Query) (Range, error) {
	var rng Range
	if q.From != "" {
		t, err := time.Parse(dateLayout, q.From)
		if err != nil {
			return Range{}, reporterrors.ErrInvalidDateFormat
		}
		rng.From = t
	}
	if q.To != "" {
		t, err := time.Parse(dateLayout, q.To)
		if err != nil {
			return Range{}, reporterrors.ErrInvalidDateFormat
		}
		rng.To = t.AddDate(0, 0, 1)
	}
	if !rng.From.IsZero() && !rng.To.IsZero() && !rng.From.Before(rng.To) {
		return Range{}, reporterrors.ErrInvalidDateRange
	}
	return rng, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateTimeLayout)
}
