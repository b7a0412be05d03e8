package employee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/auth"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/company"
	employeeerrors "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/employee/errors"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/events"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/filestore"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/messaging/kafka"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/contextutil"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// payRatePlaces matches the pay_rate column scale.
const payRatePlaces = 2

const (
	DirectoryKeyPrefix = "employees:directory:"
	directoryTTL       = 10 * time.Minute
)

func GetDirectoryKey(companyID string) string {
	return DirectoryKeyPrefix + companyID
}

type TokenIssuer interface {
	IssueEmployee(companyID, employeeID string) (auth.Token, error)
}

// CompanyLookup is satisfied by company.Repository.
type CompanyLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*company.Company, error)
}

//go:generate mockgen -destination=mock/employee_service_mock.go -package=mock . Service
type Service interface {
	Create(ctx context.Context, companyID string, req CreateEmployeeRequest, docs []DocumentUpload) (EmployeeResponse, error)
	GetAll(ctx context.Context, companyID string) ([]EmployeeResponse, error)
	OpenDocument(ctx context.Context, companyID, id, kind string) (io.ReadCloser, string, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	GetProfile(ctx context.Context, companyID, id string) (ProfileResponse, error)
	UpdateProfile(ctx context.Context, companyID, id string, req UpdateProfileRequest) (ProfileResponse, error)
	GetDirectory(ctx context.Context, companyID string) ([]DirectoryEntry, error)
}

type service struct {
	db        *gorm.DB
	repo      Repository
	companies CompanyLookup
	counter   counter.Repository
	outbox    kafka.OutboxRepository
	files     filestore.Store
	rdb       *redis.Client
	tokens    TokenIssuer
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	companies CompanyLookup,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	files filestore.Store,
	rdb *redis.Client,
	tokens TokenIssuer,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		companies: companies,
		counter:   counter,
		outbox:    outboxRepo,
		files:     files,
		rdb:       rdb,
		tokens:    tokens,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

// MatchPIN reports whether pin matches the employee's stored PIN hash.
func MatchPIN(empl *Employee, pin string) bool {
	return bcrypt.CompareHashAndPassword([]byte(empl.PIN), []byte(pin)) == nil
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateEmployeeRequest,
	docs []DocumentUpload,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("email", req.Email),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidCompanyID
	}

	comp, err := s.companies.GetByID(ctx, companyUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrInvalidCompanyID
		}
		return EmployeeResponse{}, err
	}
	if !comp.Verified {
		log.Warn("create employee rejected, company not verified", zap.String("company_id", companyID))
		return EmployeeResponse{}, employeeerrors.ErrCompanyNotVerified
	}

	byKind, err := indexDocuments(docs)
	if err != nil {
		return EmployeeResponse{}, err
	}

	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDOB
	}

	payRate, err := decimal.NewFromString(strings.TrimSpace(req.PayRate))
	if err != nil || payRate.IsNegative() || !payRate.Equal(payRate.Truncate(payRatePlaces)) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidPayRate
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	dup, err := s.repo.FindDuplicate(ctx, email, req.PhoneNumber, req.SINNumber, req.PassportNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("create employee duplicate check failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if dup != nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists.WithDetails(DuplicateDetails{
			ID:             dup.ID.String(),
			Name:           dup.Name,
			Email:          dup.Email,
			PhoneNumber:    dup.PhoneNumber,
			SINNumber:      dup.SINNumber,
			PassportNumber: dup.PassportNumber,
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return EmployeeResponse{}, err
	}
	hashedPIN, err := bcrypt.GenerateFromPassword([]byte(req.PIN), bcrypt.DefaultCost)
	if err != nil {
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:             uuid.New(),
		CompanyID:      companyUUID,
		Name:           strings.TrimSpace(req.Name),
		Address:        strings.TrimSpace(req.Address),
		Email:          email,
		PhoneNumber:    strings.TrimSpace(req.PhoneNumber),
		Sex:            req.Sex,
		DOB:            dob,
		PermitType:     req.PermitType,
		SINNumber:      strings.TrimSpace(req.SINNumber),
		PassportNumber: strings.TrimSpace(req.PassportNumber),
		PIN:            string(hashedPIN),
		Position:       strings.TrimSpace(req.Position),
		Password:       string(hashedPassword),
		PayRate:        payRate,
	}

	saved, err := s.saveDocuments(ctx, empl, byKind)
	if err != nil {
		s.removeFiles(ctx, saved)
		log.Error("create employee store documents failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		nextVal, err := s.counter.WithTx(tx).GetNextValue(ctx, companyID, counter.TypeEmployeeNumber)
		if err != nil {
			return err
		}
		empl.EmployeeNumber = counter.FormatEmployeeNumber(nextVal)

		if err := s.repo.WithTx(tx).Create(ctx, empl); err != nil {
			return mapRepositoryError(err)
		}

		if s.outbox == nil {
			return nil
		}
		event, err := kafka.NewPendingEvent(rid, "employee", empl.ID.String(),
			events.EventTypeEmployeeCreated, events.EmployeeCreatedTopic,
			events.EmployeeCreatedEvent{
				EventType:      events.EventTypeEmployeeCreated,
				RequestID:      rid,
				EmployeeID:     empl.ID.String(),
				CompanyID:      companyID,
				EmployeeNumber: empl.EmployeeNumber,
				Position:       empl.Position,
				OccurredAt:     time.Now().UTC(),
			})
		if err != nil {
			return err
		}
		return s.outbox.WithTx(tx).Create(ctx, event)
	})
	if err != nil {
		s.removeFiles(ctx, saved)
		log.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateDirectory(ctx, companyID)

	log.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_number", empl.EmployeeNumber),
	)
	return mapToResponse(*empl), nil
}

func indexDocuments(docs []DocumentUpload) (map[string]DocumentUpload, error) {
	byKind := make(map[string]DocumentUpload, len(docs))
	for _, d := range docs {
		if d.Content != nil {
			byKind[d.Kind] = d
		}
	}

	var missing []string
	for _, kind := range DocumentKinds {
		if _, ok := byKind[kind]; !ok {
			missing = append(missing, kind)
		}
	}
	if len(missing) > 0 {
		return nil, employeeerrors.MissingDocuments(missing)
	}
	return byKind, nil
}

func (s *service) saveDocuments(ctx context.Context, empl *Employee, docs map[string]DocumentUpload) ([]string, error) {
	saved := make([]string, 0, len(DocumentKinds))
	for _, kind := range DocumentKinds {
		doc := docs[kind]
		key := path.Join(empl.CompanyID.String(), empl.ID.String(), kind+strings.ToLower(filepath.Ext(doc.Filename)))
		if err := s.files.Save(ctx, key, doc.Content); err != nil {
			return saved, fmt.Errorf("save %s: %w", kind, err)
		}
		saved = append(saved, key)
		empl.setDocumentKey(kind, key)
	}
	return saved, nil
}

func (s *service) removeFiles(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.files.Delete(ctx, key); err != nil {
			s.logger.Warn("remove orphaned document failed", zap.String("key", key), zap.Error(err))
		}
	}
}

func (s *service) invalidateDirectory(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetDirectoryKey(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee directory cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.String("company_id", companyID))
	empls, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]EmployeeResponse, 0, len(empls))
	for _, e := range empls {
		resp = append(resp, mapToResponse(e))
	}
	return resp, nil
}

func (s *service) OpenDocument(ctx context.Context, companyID, id, kind string) (io.ReadCloser, string, error) {
	if !isDocumentKind(kind) {
		return nil, "", employeeerrors.ErrUnknownDocument
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, "", employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return nil, "", mapRepositoryError(err)
	}

	key := empl.documentKey(kind)
	if key == "" {
		return nil, "", employeeerrors.ErrDocumentNotFound
	}

	rc, err := s.files.Open(ctx, key)
	if err != nil {
		if errors.Is(err, filestore.ErrFileNotFound) {
			return nil, "", employeeerrors.ErrDocumentNotFound
		}
		return nil, "", err
	}
	return rc, path.Base(key), nil
}

func isDocumentKind(kind string) bool {
	for _, k := range DocumentKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	empl, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResponse{}, employeeerrors.ErrInvalidCredentials
		}
		return LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(empl.Password), []byte(req.Password)); err != nil {
		return LoginResponse{}, employeeerrors.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueEmployee(empl.CompanyID.String(), empl.ID.String())
	if err != nil {
		return LoginResponse{}, err
	}

	profile, err := s.profile(ctx, empl)
	if err != nil {
		return LoginResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("employee logged in", zap.String("employee_id", empl.ID.String()))
	return LoginResponse{Token: token, Employee: profile}, nil
}

func (s *service) GetProfile(ctx context.Context, companyID, id string) (ProfileResponse, error) {
	empl, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return ProfileResponse{}, mapRepositoryError(err)
	}
	return s.profile(ctx, empl)
}

func (s *service) UpdateProfile(ctx context.Context, companyID, id string, req UpdateProfileRequest) (ProfileResponse, error) {
	empl, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return ProfileResponse{}, mapRepositoryError(err)
	}

	setIfNotEmpty(&empl.Address, req.Address)
	setIfNotEmpty(&empl.PhoneNumber, req.PhoneNumber)
	setIfNotEmpty(&empl.Position, req.Position)
	setIfNotEmpty(&empl.PushPlayerID, req.PushPlayerID)

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("update employee profile failed", zap.String("employee_id", id), zap.Error(err))
		return ProfileResponse{}, mapRepositoryError(err)
	}

	s.invalidateDirectory(ctx, companyID)
	return s.profile(ctx, empl)
}

func (s *service) GetDirectory(ctx context.Context, companyID string) ([]DirectoryEntry, error) {
	cacheKey := GetDirectoryKey(companyID)

	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []DirectoryEntry
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight supaya cache miss tidak membanjiri database
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		entries, err := s.repo.FindDirectory(ctx, companyID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		if entries == nil {
			entries = []DirectoryEntry{}
		}

		// 3. Simpan ke Redis
		if s.rdb != nil {
			if jsonData, err := json.Marshal(entries); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, directoryTTL)
			}
		}

		return entries, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]DirectoryEntry), nil
}

func (s *service) profile(ctx context.Context, empl *Employee) (ProfileResponse, error) {
	resp := ProfileResponse{
		ID:             empl.ID.String(),
		EmployeeNumber: empl.EmployeeNumber,
		Name:           empl.Name,
		Email:          empl.Email,
		PhoneNumber:    empl.PhoneNumber,
		Address:        empl.Address,
		Sex:            empl.Sex,
		DOB:            empl.DOB.Format("2006-01-02"),
		PermitType:     empl.PermitType,
		Position:       empl.Position,
		PayRate:        empl.PayRate.StringFixed(2),
		PushPlayerID:   empl.PushPlayerID,
		CompanyID:      empl.CompanyID.String(),
	}

	comp, err := s.companies.GetByID(ctx, empl.CompanyID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return ProfileResponse{}, err
	}
	if comp != nil {
		resp.CompanyName = comp.Name
		resp.CompanyAddress = comp.Address
	}
	return resp, nil
}

func setIfNotEmpty(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             empl.ID.String(),
		CompanyID:      empl.CompanyID.String(),
		EmployeeNumber: empl.EmployeeNumber,
		Name:           empl.Name,
		Email:          empl.Email,
		PhoneNumber:    empl.PhoneNumber,
		Address:        empl.Address,
		Position:       empl.Position,
		PayRate:        empl.PayRate.StringFixed(2),
		CreatedAt:      empl.CreatedAt,
	}
}
