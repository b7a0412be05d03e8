package company

import (
	"context"
	"errors"
	"strings"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/auth"
	companyerrors "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/company/errors"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type TokenIssuer interface {
	IssueTenant(companyID string) (auth.Token, error)
}

//go:generate mockgen -destination=mock/company_service_mock.go -package=mock . Service
type Service interface {
	Register(ctx context.Context, req RegisterCompanyRequest) (CompanyResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Verify(ctx context.Context, id string) (CompanyResponse, error)
	GetByID(ctx context.Context, id string) (CompanyResponse, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) (CompanyResponse, error)
	ChangePassword(ctx context.Context, id string, req ChangePasswordRequest) error
}

type service struct {
	repo   Repository
	tokens TokenIssuer
	logger *zap.Logger
}

func NewService(repo Repository, tokens TokenIssuer, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, tokens: tokens, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterCompanyRequest) (CompanyResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	username := strings.TrimSpace(req.Username)

	existing, err := s.repo.GetByUsername(ctx, username)
	if err != nil && !errors.Is(mapRepositoryError(err), companyerrors.ErrCompanyNotFound) {
		return CompanyResponse{}, err
	}
	if existing != nil {
		return CompanyResponse{}, companyerrors.ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return CompanyResponse{}, err
	}

	comp := &Company{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(req.CompanyName),
		Address:       strings.TrimSpace(req.CompanyAddress),
		Phone:         strings.TrimSpace(req.CompanyPhone),
		Email:         strings.TrimSpace(req.CompanyEmail),
		AdminName:     strings.TrimSpace(req.AdminName),
		AdminPosition: strings.TrimSpace(req.AdminPosition),
		AdminEmail:    strings.TrimSpace(req.AdminEmail),
		AdminPhone:    strings.TrimSpace(req.AdminPhone),
		Username:      username,
		Password:      string(hashed),
		BusinessType:  strings.TrimSpace(req.BusinessType),
		Plan:          strings.TrimSpace(req.Plan),
		Verified:      false,
	}

	if err := s.repo.Create(ctx, comp); err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}

	log.Info("company registered", zap.String("company_id", comp.ID.String()), zap.String("username", comp.Username))
	return mapToResponse(comp), nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	comp, err := s.repo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(mapRepositoryError(err), companyerrors.ErrCompanyNotFound) {
			return LoginResponse{}, companyerrors.ErrInvalidCredentials
		}
		return LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(comp.Password), []byte(req.Password)); err != nil {
		return LoginResponse{}, companyerrors.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueTenant(comp.ID.String())
	if err != nil {
		return LoginResponse{}, err
	}

	return LoginResponse{Token: token, Company: mapToResponse(comp)}, nil
}

func (s *service) Verify(ctx context.Context, id string) (CompanyResponse, error) {
	comp, err := s.load(ctx, id)
	if err != nil {
		return CompanyResponse{}, err
	}

	if !comp.Verified {
		comp.Verified = true
		if err := s.repo.Update(ctx, comp); err != nil {
			return CompanyResponse{}, mapRepositoryError(err)
		}
		contextutil.GetLogger(ctx, s.logger).Info("company verified", zap.String("company_id", id))
	}

	return mapToResponse(comp), nil
}

func (s *service) GetByID(ctx context.Context, id string) (CompanyResponse, error) {
	comp, err := s.load(ctx, id)
	if err != nil {
		return CompanyResponse{}, err
	}
	return mapToResponse(comp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCompanyRequest) (CompanyResponse, error) {
	comp, err := s.load(ctx, id)
	if err != nil {
		return CompanyResponse{}, err
	}

	setIfNotEmpty(&comp.Address, req.CompanyAddress)
	setIfNotEmpty(&comp.Phone, req.CompanyPhone)
	setIfNotEmpty(&comp.Email, req.CompanyEmail)
	setIfNotEmpty(&comp.AdminName, req.AdminName)
	setIfNotEmpty(&comp.AdminPosition, req.AdminPosition)
	setIfNotEmpty(&comp.AdminEmail, req.AdminEmail)
	setIfNotEmpty(&comp.AdminPhone, req.AdminPhone)

	if err := s.repo.Update(ctx, comp); err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(comp), nil
}

func (s *service) ChangePassword(ctx context.Context, id string, req ChangePasswordRequest) error {
	comp, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(comp.Password), []byte(req.OldPassword)); err != nil {
		return companyerrors.ErrWrongOldPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	comp.Password = string(hashed)

	if err := s.repo.Update(ctx, comp); err != nil {
		return mapRepositoryError(err)
	}

	contextutil.GetLogger(ctx, s.logger).Info("company password changed", zap.String("company_id", id))
	return nil
}

func (s *service) load(ctx context.Context, id string) (*Company, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return comp, nil
}

func setIfNotEmpty(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func mapToResponse(c *Company) CompanyResponse {
	return CompanyResponse{
		ID:             c.ID.String(),
		CompanyName:    c.Name,
		CompanyAddress: c.Address,
		CompanyPhone:   c.Phone,
		CompanyEmail:   c.Email,
		AdminName:      c.AdminName,
		AdminPosition:  c.AdminPosition,
		AdminEmail:     c.AdminEmail,
		AdminPhone:     c.AdminPhone,
		Username:       c.Username,
		BusinessType:   c.BusinessType,
		Plan:           c.Plan,
		Role:           auth.RoleAdmin,
		Verified:       c.Verified,
		CreatedAt:      c.CreatedAt,
	}
}
