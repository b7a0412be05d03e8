package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/auth"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/company"
	companyMock "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/company/mock"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/employee"
	employeeerrors "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/employee/errors"
	employeeMock "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/employee/mock"
	fileMock "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/filestore/mock"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/messaging/kafka"
	outboxMock "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/messaging/kafka/mock"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/apperror"
	counterMock "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fixture struct {
	service   employee.Service
	repo      *employeeMock.MockRepository
	companies *companyMock.MockRepository
	counter   *counterMock.MockRepository
	outbox    *outboxMock.MockOutboxRepository
	files     *fileMock.MockStore
	sql       sqlmock.Sqlmock
	redis     redismock.ClientMock
	tokens    *auth.TokenManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	rdb, redisMock := redismock.NewClientMock()

	f := &fixture{
		repo:      employeeMock.NewMockRepository(ctrl),
		companies: companyMock.NewMockRepository(ctrl),
		counter:   counterMock.NewMockRepository(ctrl),
		outbox:    outboxMock.NewMockOutboxRepository(ctrl),
		files:     fileMock.NewMockStore(ctrl),
		sql:       sqlMock,
		redis:     redisMock,
		tokens:    auth.NewTokenManager("test-secret", time.Hour, 24*time.Hour),
	}
	f.service = employee.NewService(db, f.repo, f.companies, f.counter, f.outbox, f.files, rdb, f.tokens)
	return f
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:           "Ana Silva",
		Address:        "5 Queen St",
		Email:          "Ana@Example.com",
		PhoneNumber:    "4165550111",
		Sex:            "female",
		DOB:            "1995-04-12",
		PermitType:     "work",
		SINNumber:      "123456789",
		PassportNumber: "P1234567",
		PIN:            "1234",
		Position:       "Cook",
		Password:       "secret123",
		PayRate:        "20",
	}
}

func allDocuments() []employee.DocumentUpload {
	docs := make([]employee.DocumentUpload, 0, len(employee.DocumentKinds))
	for _, kind := range employee.DocumentKinds {
		docs = append(docs, employee.DocumentUpload{Kind: kind, Filename: kind + ".PNG", Content: strings.NewReader("bytes")})
	}
	return docs
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	verified := &company.Company{ID: companyID, Verified: true}

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)

		f.companies.EXPECT().GetByID(ctx, companyID).Return(verified, nil)
		f.repo.EXPECT().FindDuplicate(ctx, "ana@example.com", "4165550111", "123456789", "P1234567").Return(nil, gorm.ErrRecordNotFound)
		f.files.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).Times(4).DoAndReturn(func(_ context.Context, key string, _ io.Reader) error {
			assert.True(t, strings.HasPrefix(key, companyID.String()+"/"))
			assert.True(t, strings.HasSuffix(key, ".png"))
			return nil
		})

		f.sql.ExpectBegin()
		f.counter.EXPECT().WithTx(gomock.Any()).Return(f.counter)
		f.counter.EXPECT().GetNextValue(ctx, companyID.String(), "employee_number").Return(int64(7), nil)
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *employee.Employee) error {
			assert.Equal(t, "EMP-000007", e.EmployeeNumber)
			assert.True(t, e.PayRate.Equal(decimal.NewFromInt(20)))
			assert.True(t, employee.MatchPIN(e, "1234"))
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(e.Password), []byte("secret123")))
			assert.NotEmpty(t, e.PassportFront)
			return nil
		})
		f.outbox.EXPECT().WithTx(gomock.Any()).Return(f.outbox)
		f.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
			assert.Equal(t, "employee_created", ev.EventType)
			assert.Equal(t, "employee", ev.AggregateType)
			return nil
		})
		f.sql.ExpectCommit()
		f.redis.ExpectDel(employee.GetDirectoryKey(companyID.String())).SetVal(1)

		res, err := f.service.Create(ctx, companyID.String(), validCreateRequest(), allDocuments())

		assert.NoError(t, err)
		assert.Equal(t, "EMP-000007", res.EmployeeNumber)
		assert.Equal(t, "ana@example.com", res.Email)
		assert.Equal(t, "20.00", res.PayRate)
		assert.NoError(t, f.sql.ExpectationsWereMet())
		assert.NoError(t, f.redis.ExpectationsWereMet())
	})

	t.Run("Company not verified", func(t *testing.T) {
		f := newFixture(t)
		f.companies.EXPECT().GetByID(ctx, companyID).Return(&company.Company{ID: companyID}, nil)

		_, err := f.service.Create(ctx, companyID.String(), validCreateRequest(), allDocuments())

		assert.ErrorIs(t, err, employeeerrors.ErrCompanyNotVerified)
	})

	t.Run("Missing documents", func(t *testing.T) {
		f := newFixture(t)
		f.companies.EXPECT().GetByID(ctx, companyID).Return(verified, nil)

		_, err := f.service.Create(ctx, companyID.String(), validCreateRequest(), allDocuments()[:2])

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "Missing files: direct_deposit_form, study_or_work_permit", appErr.Message)
	})

	t.Run("Negative pay rate", func(t *testing.T) {
		f := newFixture(t)
		f.companies.EXPECT().GetByID(ctx, companyID).Return(verified, nil)
		req := validCreateRequest()
		req.PayRate = "-1"

		_, err := f.service.Create(ctx, companyID.String(), req, allDocuments())

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidPayRate)
	})

	t.Run("Pay rate finer than cents", func(t *testing.T) {
		for _, rate := range []string{"18.555", "0.001"} {
			f := newFixture(t)
			f.companies.EXPECT().GetByID(ctx, companyID).Return(verified, nil)
			req := validCreateRequest()
			req.PayRate = rate

			_, err := f.service.Create(ctx, companyID.String(), req, allDocuments())

			assert.ErrorIs(t, err, employeeerrors.ErrInvalidPayRate, rate)
		}
	})

	t.Run("Duplicate employee", func(t *testing.T) {
		f := newFixture(t)
		existing := &employee.Employee{ID: uuid.New(), Name: "Ana Silva", Email: "ana@example.com"}
		f.companies.EXPECT().GetByID(ctx, companyID).Return(verified, nil)
		f.repo.EXPECT().FindDuplicate(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(existing, nil)

		_, err := f.service.Create(ctx, companyID.String(), validCreateRequest(), allDocuments())

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 409, appErr.HTTPStatus)
		details, ok := appErr.Details.(employee.DuplicateDetails)
		require.True(t, ok)
		assert.Equal(t, existing.ID.String(), details.ID)
	})

	t.Run("Persist failure removes stored files", func(t *testing.T) {
		f := newFixture(t)
		f.companies.EXPECT().GetByID(ctx, companyID).Return(verified, nil)
		f.repo.EXPECT().FindDuplicate(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
		f.files.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).Times(4).Return(nil)

		f.sql.ExpectBegin()
		f.counter.EXPECT().WithTx(gomock.Any()).Return(f.counter)
		f.counter.EXPECT().GetNextValue(ctx, gomock.Any(), gomock.Any()).Return(int64(1), nil)
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("insert failed"))
		f.sql.ExpectRollback()
		f.files.EXPECT().Delete(ctx, gomock.Any()).Times(4).Return(nil)

		_, err := f.service.Create(ctx, companyID.String(), validCreateRequest(), allDocuments())

		assert.EqualError(t, err, "insert failed")
		assert.NoError(t, f.sql.ExpectationsWereMet())
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &employee.Employee{
		ID:        uuid.New(),
		CompanyID: uuid.New(),
		Email:     "ana@example.com",
		Password:  string(hashed),
		PayRate:   decimal.RequireFromString("18.5"),
	}

	t.Run("Success", func(t *testing.T) {
		f.repo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(stored, nil)
		f.companies.EXPECT().GetByID(ctx, stored.CompanyID).Return(&company.Company{Name: "Maple Bakery", Address: "12 King St"}, nil)

		res, err := f.service.Login(ctx, employee.LoginRequest{Email: " ANA@example.com", Password: "secret123"})

		require.NoError(t, err)
		claims, err := f.tokens.Parse(res.Token.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, auth.KindEmployee, claims.Kind)
		assert.Equal(t, stored.ID.String(), claims.EmployeeID)
		assert.Equal(t, "Maple Bakery", res.Employee.CompanyName)
		assert.Equal(t, "18.50", res.Employee.PayRate)
	})

	t.Run("Wrong password", func(t *testing.T) {
		f.repo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(stored, nil)

		_, err := f.service.Login(ctx, employee.LoginRequest{Email: "ana@example.com", Password: "nope"})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidCredentials)
	})

	t.Run("Unknown email", func(t *testing.T) {
		f.repo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := f.service.Login(ctx, employee.LoginRequest{Email: "ghost@example.com", Password: "secret123"})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidCredentials)
	})
}

func TestService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	companyID := uuid.New()
	id := uuid.New()

	stored := &employee.Employee{ID: id, CompanyID: companyID, Address: "old", PhoneNumber: "111", Position: "Cook"}
	f.repo.EXPECT().FindByIDAndCompany(ctx, companyID.String(), id.String()).Return(stored, nil)
	f.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *employee.Employee) error {
		assert.Equal(t, "new address", e.Address)
		assert.Equal(t, "111", e.PhoneNumber)
		assert.Equal(t, "player-1", e.PushPlayerID)
		return nil
	})
	f.redis.ExpectDel(employee.GetDirectoryKey(companyID.String())).SetVal(1)
	f.companies.EXPECT().GetByID(ctx, companyID).Return(nil, gorm.ErrRecordNotFound)

	res, err := f.service.UpdateProfile(ctx, companyID.String(), id.String(), employee.UpdateProfileRequest{
		Address:      "new address",
		PushPlayerID: "player-1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "new address", res.Address)
	assert.NoError(t, f.redis.ExpectationsWereMet())
}

func TestService_GetDirectory(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	key := employee.GetDirectoryKey(companyID)
	entries := []employee.DirectoryEntry{{Name: "Ana Silva", Position: "Cook", PhoneNumber: "4165550111"}}

	t.Run("Cache hit", func(t *testing.T) {
		f := newFixture(t)
		cached, _ := json.Marshal(entries)
		f.redis.ExpectGet(key).SetVal(string(cached))

		res, err := f.service.GetDirectory(ctx, companyID)

		assert.NoError(t, err)
		assert.Equal(t, entries, res)
	})

	t.Run("Cache miss loads and stores", func(t *testing.T) {
		f := newFixture(t)
		f.redis.ExpectGet(key).SetErr(redis.Nil)
		f.repo.EXPECT().FindDirectory(ctx, companyID).Return(entries, nil)
		payload, _ := json.Marshal(entries)
		f.redis.ExpectSet(key, payload, 10*time.Minute).SetVal("OK")

		res, err := f.service.GetDirectory(ctx, companyID)

		assert.NoError(t, err)
		assert.Equal(t, entries, res)
		assert.NoError(t, f.redis.ExpectationsWereMet())
	})
}

func TestService_OpenDocument(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	id := uuid.New()

	t.Run("Unknown kind", func(t *testing.T) {
		f := newFixture(t)

		_, _, err := f.service.OpenDocument(ctx, companyID, id.String(), "selfie")

		assert.ErrorIs(t, err, employeeerrors.ErrUnknownDocument)
	})

	t.Run("Streams stored file", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id.String()).
			Return(&employee.Employee{ID: id, PassportFront: "c/e/passport_front.png"}, nil)
		f.files.EXPECT().Open(ctx, "c/e/passport_front.png").Return(io.NopCloser(strings.NewReader("img")), nil)

		rc, name, err := f.service.OpenDocument(ctx, companyID, id.String(), employee.DocPassportFront)

		require.NoError(t, err)
		defer rc.Close()
		assert.Equal(t, "passport_front.png", name)
	})

	t.Run("Not uploaded", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id.String()).Return(&employee.Employee{ID: id}, nil)

		_, _, err := f.service.OpenDocument(ctx, companyID, id.String(), employee.DocPassportBack)

		assert.ErrorIs(t, err, employeeerrors.ErrDocumentNotFound)
	})
}
