package announcement_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/announcement"
	announcementerrors "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/announcement/errors"
	announcementMock "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/announcement/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := announcementMock.NewMockRepository(ctrl)
	svc := announcement.NewService(repo)
	companyID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *announcement.Announcement) error {
			assert.Equal(t, companyID, a.CompanyID)
			assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), a.EventDate)
			return nil
		})

		res, err := svc.Create(ctx, companyID.String(), companyID.String(), announcement.CreateAnnouncementRequest{
			Title: "Staff BBQ", Description: "Bring a friend", EventDate: "2024-05-01",
		})

		assert.NoError(t, err)
		assert.Equal(t, "2024-05-01", res.EventDate)
		assert.Equal(t, "Staff BBQ", res.Title)
	})

	t.Run("Bad date", func(t *testing.T) {
		_, err := svc.Create(ctx, companyID.String(), "", announcement.CreateAnnouncementRequest{
			Title: "x", Description: "y", EventDate: "May 1",
		})
		assert.ErrorIs(t, err, announcementerrors.ErrInvalidEventDate)
	})

	t.Run("Repo error", func(t *testing.T) {
		repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db down"))

		_, err := svc.Create(ctx, companyID.String(), "", announcement.CreateAnnouncementRequest{
			Title: "x", Description: "y", EventDate: "2024-05-01",
		})
		assert.Error(t, err)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := announcementMock.NewMockRepository(ctrl)
	svc := announcement.NewService(repo)

	t.Run("Upcoming filters from today", func(t *testing.T) {
		repo.EXPECT().List(ctx, "c-1", gomock.Not(gomock.Nil())).DoAndReturn(
			func(_ context.Context, _ string, from *time.Time) ([]announcement.Announcement, error) {
				require.NotNil(t, from)
				assert.Equal(t, 0, from.Hour())
				assert.Equal(t, time.UTC, from.Location())
				return []announcement.Announcement{
					{ID: uuid.New(), Title: "A", EventDate: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)},
					{ID: uuid.New(), Title: "B", EventDate: time.Date(2030, 2, 1, 0, 0, 0, 0, time.UTC)},
				}, nil
			})

		res, err := svc.List(ctx, "c-1", true)

		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, "A", res[0].Title)
	})

	t.Run("All", func(t *testing.T) {
		repo.EXPECT().List(ctx, "c-1", gomock.Nil()).Return(nil, nil)

		res, err := svc.List(ctx, "c-1", false)

		assert.NoError(t, err)
		assert.Empty(t, res)
	})
}
