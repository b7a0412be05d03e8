package clockrecord

import (
	"context"
	"errors"
	"time"

	clockrecorderrors "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/clockrecord/errors"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/company"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/employee"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/payweek"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmployeeLookup is satisfied by employee.Repository.
type EmployeeLookup interface {
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*employee.Employee, error)
}

// CompanyLookup is satisfied by company.Repository.
type CompanyLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*company.Company, error)
}

//go:generate mockgen -destination=mock/clockrecord_service_mock.go -package=mock . Service
type Service interface {
	ClockIn(ctx context.Context, companyID string, req PunchRequest) (ClockRecordResponse, error)
	ClockOut(ctx context.Context, companyID string, req PunchRequest) (ClockRecordResponse, error)
	ListActive(ctx context.Context, companyID string) ([]ActiveClockResponse, error)
	CurrentWeekSummary(ctx context.Context, companyID, employeeID string) (CurrentWeekResponse, error)
	PayRecords(ctx context.Context, companyID, employeeID string) ([]PayWeekResponse, error)
	Payslip(ctx context.Context, companyID, employeeID, week string) ([]byte, string, error)
}

type service struct {
	db        *gorm.DB
	repo      Repository
	employees EmployeeLookup
	companies CompanyLookup
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, employees EmployeeLookup, companies CompanyLookup, logger ...*zap.Logger) Service {
	l := zap.L().Named("clockrecord.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("clockrecord.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		companies: companies,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    l,
	}
}

// authenticate resolves the kiosk punch to an employee of the company.
// Unknown IDs and wrong PINs are reported identically.
func (s *service) authenticate(ctx context.Context, companyID string, req PunchRequest) (*employee.Employee, error) {
	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return nil, clockrecorderrors.ErrInvalidEmployeeOrPIN
	}

	empl, err := s.employees.FindByIDAndCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, clockrecorderrors.ErrInvalidEmployeeOrPIN
		}
		return nil, err
	}

	if !employee.MatchPIN(empl, req.PIN) {
		return nil, clockrecorderrors.ErrInvalidEmployeeOrPIN
	}
	return empl, nil
}

func (s *service) ClockIn(ctx context.Context, companyID string, req PunchRequest) (ClockRecordResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	empl, err := s.authenticate(ctx, companyID, req)
	if err != nil {
		return ClockRecordResponse{}, err
	}

	rec := &ClockRecord{
		ID:          uuid.New(),
		CompanyID:   empl.CompanyID,
		EmployeeID:  empl.ID,
		ClockInTime: s.now(),
		Status:      StatusClockedIn,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		active, err := qtx.FindActive(ctx, companyID, empl.ID.String())
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if active != nil {
			return clockrecorderrors.ErrAlreadyClockedIn
		}

		return mapRepositoryError(qtx.Create(ctx, rec))
	})
	if err != nil {
		if !errors.Is(err, clockrecorderrors.ErrAlreadyClockedIn) {
			log.Error("clock in failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		}
		return ClockRecordResponse{}, err
	}

	log.Info("employee clocked in",
		zap.String("employee_id", empl.ID.String()),
		zap.String("clock_record_id", rec.ID.String()),
	)
	return mapToResponse(rec), nil
}

func (s *service) ClockOut(ctx context.Context, companyID string, req PunchRequest) (ClockRecordResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	empl, err := s.authenticate(ctx, companyID, req)
	if err != nil {
		return ClockRecordResponse{}, err
	}

	var rec *ClockRecord
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		active, err := qtx.FindActive(ctx, companyID, empl.ID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return clockrecorderrors.ErrNotClockedIn
			}
			return err
		}

		active.Close(s.now())
		rec = active
		return qtx.Update(ctx, active)
	})
	if err != nil {
		if !errors.Is(err, clockrecorderrors.ErrNotClockedIn) {
			log.Error("clock out failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		}
		return ClockRecordResponse{}, err
	}

	log.Info("employee clocked out",
		zap.String("employee_id", empl.ID.String()),
		zap.String("clock_record_id", rec.ID.String()),
		zap.Int64p("duration_seconds", rec.DurationSeconds),
	)
	return mapToResponse(rec), nil
}

func (s *service) ListActive(ctx context.Context, companyID string) ([]ActiveClockResponse, error) {
	rows, err := s.repo.ListActive(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]ActiveClockResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, ActiveClockResponse{
			ID:          r.ID.String(),
			EmployeeID:  r.EmployeeID.String(),
			Name:        r.Name,
			Position:    r.Position,
			ClockInTime: r.ClockInTime,
		})
	}
	return resp, nil
}

func (s *service) loadEmployee(ctx context.Context, companyID, employeeID string) (*employee.Employee, error) {
	empl, err := s.employees.FindByIDAndCompany(ctx, companyID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, clockrecorderrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return empl, nil
}

func (s *service) CurrentWeekSummary(ctx context.Context, companyID, employeeID string) (CurrentWeekResponse, error) {
	empl, err := s.loadEmployee(ctx, companyID, employeeID)
	if err != nil {
		return CurrentWeekResponse{}, err
	}

	now := s.now()
	start := payweek.WeekStart(now)
	rows, err := s.repo.ListByEmployeeBetween(ctx, companyID, employeeID, start, start.AddDate(0, 0, 7))
	if err != nil {
		return CurrentWeekResponse{}, mapRepositoryError(err)
	}

	week, err := payweek.SummarizeCurrentWeek(toEngineRecords(rows), empl.PayRate, now)
	if err != nil {
		return CurrentWeekResponse{}, err
	}
	return mapCurrentWeek(week), nil
}

func (s *service) PayRecords(ctx context.Context, companyID, employeeID string) ([]PayWeekResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, clockrecorderrors.ErrEmployeeNotFound
	}

	empl, err := s.loadEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	weeks, err := payweek.Summarize(toEngineRecords(rows), empl.PayRate)
	if err != nil {
		return nil, err
	}

	resp := make([]PayWeekResponse, 0, len(weeks))
	for _, w := range weeks {
		resp = append(resp, PayWeekResponse{
			WeekStart:  w.Start.Format("2006-01-02"),
			Period:     w.Period(),
			TotalHours: w.HoursString(),
			TotalPay:   w.PayString(),
		})
	}
	return resp, nil
}

func (s *service) Payslip(ctx context.Context, companyID, employeeID, week string) ([]byte, string, error) {
	start, err := time.ParseInLocation("2006-01-02", week, time.UTC)
	if err != nil || start.Weekday() != time.Monday {
		return nil, "", clockrecorderrors.ErrInvalidWeek
	}

	empl, err := s.loadEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, "", err
	}

	rows, err := s.repo.ListByEmployeeBetween(ctx, companyID, employeeID, start, start.AddDate(0, 0, 7))
	if err != nil {
		return nil, "", mapRepositoryError(err)
	}
	if len(rows) == 0 {
		return nil, "", clockrecorderrors.ErrNoTimecardsForWeek
	}

	weeks, err := payweek.Summarize(toEngineRecords(rows), empl.PayRate)
	if err != nil {
		return nil, "", err
	}

	companyName := ""
	if comp, err := s.companies.GetByID(ctx, empl.CompanyID); err == nil {
		companyName = comp.Name
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	pdf, err := renderPayslip(payslip{
		CompanyName:    companyName,
		EmployeeName:   empl.Name,
		EmployeeNumber: empl.EmployeeNumber,
		Position:       empl.Position,
		PayRate:        empl.PayRate.StringFixed(2),
		Week:           weeks[0],
		Records:        rows,
	})
	if err != nil {
		return nil, "", err
	}

	filename := "payslip-" + empl.EmployeeNumber + "-" + week + ".pdf"
	return pdf, filename, nil
}

func mapToResponse(rec *ClockRecord) ClockRecordResponse {
	resp := ClockRecordResponse{
		ID:           rec.ID.String(),
		EmployeeID:   rec.EmployeeID.String(),
		ClockInTime:  rec.ClockInTime,
		ClockOutTime: rec.ClockOutTime,
		Status:       rec.Status,
	}
	if rec.DurationSeconds != nil {
		resp.DurationMinutes = payweek.Minutes(*rec.DurationSeconds).StringFixed(payweek.OutputPlaces)
	}
	return resp
}

func mapCurrentWeek(week payweek.CurrentWeek) CurrentWeekResponse {
	resp := CurrentWeekResponse{
		WeekStart:          week.Start.Format("2006-01-02"),
		WeekEnd:            week.End.Format("2006-01-02"),
		TotalHoursThisWeek: week.HoursString(),
		TotalPayThisWeek:   week.PayString(),
		Days:               make([]DayResponse, 0, len(week.Days)),
	}
	for _, d := range week.Days {
		day := DayResponse{
			Date:       d.Date.Format("2006-01-02"),
			TotalHours: d.HoursString(),
			Timecards:  make([]TimecardResponse, 0, len(d.Timecards)),
		}
		for _, tc := range d.Timecards {
			day.Timecards = append(day.Timecards, TimecardResponse{
				ID:           tc.ID,
				ClockInTime:  tc.ClockIn,
				ClockOutTime: tc.ClockOut,
				Hours:        tc.HoursString(),
			})
		}
		resp.Days = append(resp.Days, day)
	}
	return resp
}
