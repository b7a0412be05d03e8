package changerequest_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/changerequest"
	changerequesterrors "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/changerequest/errors"
	changeMock "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/changerequest/mock"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/clockrecord"
	clockMock "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/clockrecord/mock"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/events"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/messaging/kafka"
	outboxMock "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/messaging/kafka/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fixture struct {
	service changerequest.Service
	repo    *changeMock.MockRepository
	clocks  *clockMock.MockRepository
	outbox  *outboxMock.MockOutboxRepository
	sql     sqlmock.Sqlmock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	f := &fixture{
		repo:   changeMock.NewMockRepository(ctrl),
		clocks: clockMock.NewMockRepository(ctrl),
		outbox: outboxMock.NewMockOutboxRepository(ctrl),
		sql:    mock,
	}
	f.service = changerequest.NewService(db, f.repo, f.clocks, f.outbox)
	return f
}

func at(h, m int) time.Time {
	return time.Date(2024, 1, 2, h, m, 0, 0, time.UTC)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	employeeID := uuid.New()
	out := at(17, 0)
	rec := &clockrecord.ClockRecord{
		ID:           uuid.New(),
		CompanyID:    companyID,
		EmployeeID:   employeeID,
		ClockInTime:  at(9, 0),
		ClockOutTime: &out,
		Status:       clockrecord.StatusClockedOut,
	}

	t.Run("Defaults missing times to the record", func(t *testing.T) {
		f := newFixture(t)
		newIn := at(8, 30)

		f.clocks.EXPECT().FindByIDAndCompany(ctx, companyID.String(), rec.ID.String()).Return(rec, nil)
		f.repo.EXPECT().HasPending(ctx, rec.ID.String()).Return(false, nil)
		f.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, cr *changerequest.ChangeRequest) error {
			assert.Equal(t, newIn, cr.ClockInTime)
			assert.Equal(t, out, cr.ClockOutTime)
			assert.Equal(t, changerequest.StatusPending, cr.Status)
			return nil
		})

		res, err := f.service.Create(ctx, companyID.String(), employeeID.String(), changerequest.CreateChangeRequestRequest{
			ClockRecordID: rec.ID.String(),
			Note:          "forgot to clock in",
			ClockInTime:   &newIn,
		})

		assert.NoError(t, err)
		assert.Equal(t, "pending", res.Status)
	})

	t.Run("Record of another employee", func(t *testing.T) {
		f := newFixture(t)
		f.clocks.EXPECT().FindByIDAndCompany(ctx, companyID.String(), rec.ID.String()).Return(rec, nil)

		_, err := f.service.Create(ctx, companyID.String(), uuid.NewString(), changerequest.CreateChangeRequestRequest{
			ClockRecordID: rec.ID.String(),
			Note:          "x",
		})

		assert.ErrorIs(t, err, changerequesterrors.ErrTimecardNotFound)
	})

	t.Run("Pending request exists", func(t *testing.T) {
		f := newFixture(t)
		f.clocks.EXPECT().FindByIDAndCompany(ctx, companyID.String(), rec.ID.String()).Return(rec, nil)
		f.repo.EXPECT().HasPending(ctx, rec.ID.String()).Return(true, nil)

		_, err := f.service.Create(ctx, companyID.String(), employeeID.String(), changerequest.CreateChangeRequestRequest{
			ClockRecordID: rec.ID.String(),
			Note:          "x",
		})

		assert.ErrorIs(t, err, changerequesterrors.ErrPendingRequestExists)
	})

	t.Run("Open record needs a clock-out", func(t *testing.T) {
		f := newFixture(t)
		open := *rec
		open.ClockOutTime = nil
		open.Status = clockrecord.StatusClockedIn
		f.clocks.EXPECT().FindByIDAndCompany(ctx, companyID.String(), rec.ID.String()).Return(&open, nil)

		_, err := f.service.Create(ctx, companyID.String(), employeeID.String(), changerequest.CreateChangeRequestRequest{
			ClockRecordID: rec.ID.String(),
			Note:          "x",
		})

		assert.ErrorIs(t, err, changerequesterrors.ErrClockOutRequired)
	})

	t.Run("Clock-out before clock-in", func(t *testing.T) {
		f := newFixture(t)
		early := at(8, 0)
		f.clocks.EXPECT().FindByIDAndCompany(ctx, companyID.String(), rec.ID.String()).Return(rec, nil)

		_, err := f.service.Create(ctx, companyID.String(), employeeID.String(), changerequest.CreateChangeRequestRequest{
			ClockRecordID: rec.ID.String(),
			Note:          "x",
			ClockOutTime:  &early,
		})

		assert.ErrorIs(t, err, changerequesterrors.ErrInvalidTimeRange)
	})
}

func TestService_Decide(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	pending := func() *changerequest.ChangeRequest {
		return &changerequest.ChangeRequest{
			ID:            uuid.New(),
			CompanyID:     companyID,
			EmployeeID:    uuid.New(),
			ClockRecordID: uuid.New(),
			ClockInTime:   at(9, 0),
			ClockOutTime:  at(17, 0),
			Status:        changerequest.StatusPending,
		}
	}

	t.Run("Approve with admin times", func(t *testing.T) {
		f := newFixture(t)
		cr := pending()
		rec := &clockrecord.ClockRecord{ID: cr.ClockRecordID, ClockInTime: at(9, 5), Status: clockrecord.StatusClockedIn}
		newOut := at(17, 30)

		f.sql.ExpectBegin()
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().FindForUpdate(ctx, companyID.String(), cr.ID.String()).Return(cr, nil)
		f.clocks.EXPECT().WithTx(gomock.Any()).Return(f.clocks)
		f.clocks.EXPECT().FindByIDAndCompany(ctx, companyID.String(), cr.ClockRecordID.String()).Return(rec, nil)
		f.clocks.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *clockrecord.ClockRecord) error {
			assert.Equal(t, at(9, 0), r.ClockInTime)
			assert.Equal(t, newOut, *r.ClockOutTime)
			if assert.NotNil(t, r.DurationSeconds) {
				assert.Equal(t, int64(510*60), *r.DurationSeconds)
			}
			assert.Equal(t, clockrecord.StatusClockedOut, r.Status)
			return nil
		})
		f.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		f.outbox.EXPECT().WithTx(gomock.Any()).Return(f.outbox)
		f.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
			assert.Equal(t, events.ChangeRequestDecidedTopic, ev.Topic)
			var payload events.ChangeRequestDecidedEvent
			require.NoError(t, json.Unmarshal(ev.Payload, &payload))
			assert.Equal(t, "approved", payload.Status)
			assert.Equal(t, cr.EmployeeID.String(), payload.EmployeeID)
			return nil
		})
		f.sql.ExpectCommit()

		res, err := f.service.Decide(ctx, companyID.String(), companyID.String(), cr.ID.String(), changerequest.DecideChangeRequestRequest{
			Status:          "approved",
			NewClockOutTime: &newOut,
		})

		require.NoError(t, err)
		assert.Equal(t, "approved", res.Status)
		assert.NotNil(t, res.DecidedAt)
		assert.Equal(t, newOut, res.ClockOutTime)
		assert.NoError(t, f.sql.ExpectationsWereMet())
	})

	t.Run("Reject leaves timecard untouched", func(t *testing.T) {
		f := newFixture(t)
		cr := pending()

		f.sql.ExpectBegin()
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().FindForUpdate(ctx, companyID.String(), cr.ID.String()).Return(cr, nil)
		f.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		f.outbox.EXPECT().WithTx(gomock.Any()).Return(f.outbox)
		f.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		f.sql.ExpectCommit()

		res, err := f.service.Decide(ctx, companyID.String(), companyID.String(), cr.ID.String(), changerequest.DecideChangeRequestRequest{Status: "rejected"})

		require.NoError(t, err)
		assert.Equal(t, "rejected", res.Status)
	})

	t.Run("Already decided", func(t *testing.T) {
		f := newFixture(t)
		cr := pending()
		cr.Status = changerequest.StatusApproved

		f.sql.ExpectBegin()
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().FindForUpdate(ctx, companyID.String(), cr.ID.String()).Return(cr, nil)
		f.sql.ExpectRollback()

		_, err := f.service.Decide(ctx, companyID.String(), companyID.String(), cr.ID.String(), changerequest.DecideChangeRequestRequest{Status: "rejected"})

		assert.ErrorIs(t, err, changerequesterrors.ErrAlreadyDecided)
	})

	t.Run("Approval with inverted times", func(t *testing.T) {
		f := newFixture(t)
		cr := pending()
		badOut := at(8, 0)

		f.sql.ExpectBegin()
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().FindForUpdate(ctx, companyID.String(), cr.ID.String()).Return(cr, nil)
		f.sql.ExpectRollback()

		_, err := f.service.Decide(ctx, companyID.String(), companyID.String(), cr.ID.String(), changerequest.DecideChangeRequestRequest{
			Status:          "approved",
			NewClockOutTime: &badOut,
		})

		assert.ErrorIs(t, err, changerequesterrors.ErrInvalidTimeRange)
	})

	t.Run("Invalid id", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Decide(ctx, companyID.String(), companyID.String(), "nope", changerequest.DecideChangeRequestRequest{Status: "rejected"})

		assert.ErrorIs(t, err, changerequesterrors.ErrInvalidChangeRequestID)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	t.Run("Bad status filter", func(t *testing.T) {
		_, err := f.service.List(ctx, "c-1", "open")
		assert.ErrorIs(t, err, changerequesterrors.ErrInvalidStatusFilter)
	})

	t.Run("Maps requester details", func(t *testing.T) {
		row := changerequest.ListRow{
			ChangeRequest: changerequest.ChangeRequest{ID: uuid.New(), Status: "pending", Note: "late bus"},
			EmployeeName:  "Ana Silva",
			EmployeePhone: "4165550111",
			EmployeeEmail: "ana@example.com",
		}
		f.repo.EXPECT().List(ctx, "c-1", "pending").Return([]changerequest.ListRow{row}, nil)

		res, err := f.service.List(ctx, "c-1", "pending")

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "Ana Silva", res[0].EmployeeName)
		assert.Equal(t, "late bus", res[0].Note)
	})
}
