package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/report"
	reporterrors "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/report/errors"
	reportMock "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/report/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Attendance(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := reportMock.NewMockRepository(ctrl)
	svc := report.NewService(repo)

	in := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	out := time.Date(2024, 1, 2, 17, 30, 0, 0, time.UTC)
	seconds := int64(510 * 60)

	t.Run("Formats closed and open records", func(t *testing.T) {
		repo.EXPECT().Attendance(ctx, "c-1", report.Range{
			From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		}).Return([]report.AttendanceRecord{
			{EmployeeName: "Jane", ClockInTime: in, ClockOutTime: &out, DurationSeconds: &seconds, Status: "clocked-out"},
			{EmployeeName: "Joe", ClockInTime: in, Status: "clocked-in"},
		}, nil)

		rows, err := svc.Attendance(ctx, "c-1", report.Query{From: "2024-01-01", To: "2024-01-07"})

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "2024-01-02 09:00", rows[0].ClockInTime)
		assert.Equal(t, "2024-01-02 17:30", rows[0].ClockOutTime)
		assert.Equal(t, "8.50", rows[0].DurationHours)
		assert.Equal(t, "", rows[1].ClockOutTime)
		assert.Equal(t, "0.00", rows[1].DurationHours)
	})

	t.Run("Invalid from", func(t *testing.T) {
		_, err := svc.Attendance(ctx, "c-1", report.Query{From: "01/01/2024"})
		assert.ErrorIs(t, err, reporterrors.ErrInvalidDateFormat)
	})

	t.Run("From after to", func(t *testing.T) {
		_, err := svc.Attendance(ctx, "c-1", report.Query{From: "2024-01-09", To: "2024-01-07"})
		assert.ErrorIs(t, err, reporterrors.ErrInvalidDateRange)
	})

	t.Run("Same day range", func(t *testing.T) {
		repo.EXPECT().Attendance(ctx, "c-1", report.Range{
			From: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		}).Return(nil, nil)

		rows, err := svc.Attendance(ctx, "c-1", report.Query{From: "2024-01-02", To: "2024-01-02"})

		assert.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestService_ChangeRequestsAndTimeOff(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := reportMock.NewMockRepository(ctrl)
	svc := report.NewService(repo)

	repo.EXPECT().ChangeRequests(ctx, "c-1", report.Range{}).Return([]report.ChangeRequestRecord{{
		EmployeeName:  "Jane",
		EmployeeEmail: "jane@example.com",
		CreatedAt:     time.Date(2024, 1, 3, 8, 5, 0, 0, time.UTC),
		ClockInTime:   time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
		ClockOutTime:  time.Date(2024, 1, 2, 17, 0, 0, 0, time.UTC),
		Note:          "late",
		Status:        "pending",
	}}, nil)
	repo.EXPECT().TimeOff(ctx, "c-1", report.Range{}).Return([]report.TimeOffRecord{{
		EmployeeName: "Jane",
		Policy:       "vacation",
		StartDate:    time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
		Status:       "APPROVED",
	}}, nil)

	crs, err := svc.ChangeRequests(ctx, "c-1", report.Query{})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-03 08:05", crs[0].RequestedAt)
	assert.Equal(t, "jane@example.com", crs[0].Email)

	offs, err := svc.TimeOff(ctx, "c-1", report.Query{})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04", offs[0].StartDate)
	assert.Equal(t, "2024-03-06", offs[0].EndDate)
}
