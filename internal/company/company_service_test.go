package company_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/auth"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/company"
	companyerrors "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/company/errors"
	companyMock "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/company/mock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour, 24*time.Hour)
}

func validRegisterRequest() company.RegisterCompanyRequest {
	return company.RegisterCompanyRequest{
		CompanyName:    "Maple Bakery",
		CompanyAddress: "12 King St, Toronto",
		CompanyPhone:   "4165550100",
		CompanyEmail:   "hello@maple.test",
		AdminName:      "Sam Lee",
		AdminPosition:  "Owner",
		AdminEmail:     "sam@maple.test",
		AdminPhone:     "4165550101",
		Username:       " maple ",
		Password:       "secret123",
		BusinessType:   "Restaurant",
		Plan:           "basic",
	}
}

func hashed(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := companyMock.NewMockRepository(ctrl)
	service := company.NewService(mockRepo, newTokens())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().GetByUsername(ctx, "maple").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *company.Company) error {
			assert.Equal(t, "maple", c.Username)
			assert.False(t, c.Verified)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(c.Password), []byte("secret123")))
			return nil
		})

		res, err := service.Register(ctx, validRegisterRequest())

		assert.NoError(t, err)
		assert.Equal(t, "Maple Bakery", res.CompanyName)
		assert.Equal(t, auth.RoleAdmin, res.Role)
		assert.False(t, res.Verified)
	})

	t.Run("Username taken", func(t *testing.T) {
		mockRepo.EXPECT().GetByUsername(ctx, "maple").Return(&company.Company{ID: uuid.New()}, nil)

		_, err := service.Register(ctx, validRegisterRequest())

		assert.ErrorIs(t, err, companyerrors.ErrUsernameTaken)
	})

	t.Run("Unique violation on insert", func(t *testing.T) {
		mockRepo.EXPECT().GetByUsername(ctx, "maple").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_companies_username"})

		_, err := service.Register(ctx, validRegisterRequest())

		assert.ErrorIs(t, err, companyerrors.ErrUsernameTaken)
	})

	t.Run("Lookup failure", func(t *testing.T) {
		mockRepo.EXPECT().GetByUsername(ctx, "maple").Return(nil, errors.New("db down"))

		_, err := service.Register(ctx, validRegisterRequest())

		assert.EqualError(t, err, "db down")
	})
}

func TestService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := companyMock.NewMockRepository(ctrl)
	tokens := newTokens()
	service := company.NewService(mockRepo, tokens)
	ctx := context.Background()

	stored := &company.Company{ID: uuid.New(), Username: "maple", Password: hashed(t, "secret123")}

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().GetByUsername(ctx, "maple").Return(stored, nil)

		res, err := service.Login(ctx, company.LoginRequest{Username: "maple", Password: "secret123"})

		assert.NoError(t, err)
		claims, err := tokens.Parse(res.Token.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, auth.KindTenant, claims.Kind)
		assert.Equal(t, stored.ID.String(), claims.CompanyID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		mockRepo.EXPECT().GetByUsername(ctx, "maple").Return(stored, nil)

		_, err := service.Login(ctx, company.LoginRequest{Username: "maple", Password: "nope"})

		assert.ErrorIs(t, err, companyerrors.ErrInvalidCredentials)
	})

	t.Run("Unknown username", func(t *testing.T) {
		mockRepo.EXPECT().GetByUsername(ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Login(ctx, company.LoginRequest{Username: "ghost", Password: "x"})

		assert.ErrorIs(t, err, companyerrors.ErrInvalidCredentials)
	})
}

func TestService_Verify(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := companyMock.NewMockRepository(ctrl)
	service := company.NewService(mockRepo, newTokens())
	ctx := context.Background()

	t.Run("Marks unverified company", func(t *testing.T) {
		id := uuid.New()
		mockRepo.EXPECT().GetByID(ctx, id).Return(&company.Company{ID: id}, nil)
		mockRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *company.Company) error {
			assert.True(t, c.Verified)
			return nil
		})

		res, err := service.Verify(ctx, id.String())

		assert.NoError(t, err)
		assert.True(t, res.Verified)
	})

	t.Run("Already verified is a no-op", func(t *testing.T) {
		id := uuid.New()
		mockRepo.EXPECT().GetByID(ctx, id).Return(&company.Company{ID: id, Verified: true}, nil)

		res, err := service.Verify(ctx, id.String())

		assert.NoError(t, err)
		assert.True(t, res.Verified)
	})

	t.Run("Invalid id", func(t *testing.T) {
		_, err := service.Verify(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, companyerrors.ErrInvalidCompanyID)
	})

	t.Run("Not found", func(t *testing.T) {
		id := uuid.New()
		mockRepo.EXPECT().GetByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Verify(ctx, id.String())

		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})
}

func TestService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := companyMock.NewMockRepository(ctrl)
	service := company.NewService(mockRepo, newTokens())
	ctx := context.Background()
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(ctx, id).Return(&company.Company{ID: id, Password: hashed(t, "old-pass")}, nil)
		mockRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *company.Company) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(c.Password), []byte("new-pass")))
			return nil
		})

		err := service.ChangePassword(ctx, id.String(), company.ChangePasswordRequest{OldPassword: "old-pass", NewPassword: "new-pass"})

		assert.NoError(t, err)
	})

	t.Run("Wrong old password", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(ctx, id).Return(&company.Company{ID: id, Password: hashed(t, "old-pass")}, nil)

		err := service.ChangePassword(ctx, id.String(), company.ChangePasswordRequest{OldPassword: "guess", NewPassword: "new-pass"})

		assert.ErrorIs(t, err, companyerrors.ErrWrongOldPassword)
	})
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := companyMock.NewMockRepository(ctrl)
	service := company.NewService(mockRepo, newTokens())
	ctx := context.Background()
	id := uuid.New()

	mockRepo.EXPECT().GetByID(ctx, id).Return(&company.Company{ID: id, Address: "old", Phone: "111"}, nil)
	mockRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	res, err := service.Update(ctx, id.String(), company.UpdateCompanyRequest{CompanyAddress: "new address"})

	assert.NoError(t, err)
	assert.Equal(t, "new address", res.CompanyAddress)
	assert.Equal(t, "111", res.CompanyPhone)
}
