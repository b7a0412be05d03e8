// Package auth issues and parses the two kinds of access tokens the API
// accepts: tenant tokens held by a company admin (and its clock kiosk) and
// employee tokens for self-service endpoints.
package auth

import (
	"errors"
	"time"

	autherrors "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
)

type Kind string

const (
	KindTenant   Kind = "tenant"
	KindEmployee Kind = "employee"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

type Claims struct {
	Kind       Kind   `json:"kind"`
	CompanyID  string `json:"company_id"`
	EmployeeID string `json:"employee_id,omitempty"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// Token is what login endpoints hand back to the client.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type TokenManager struct {
	secret      []byte
	tenantTTL   time.Duration
	employeeTTL time.Duration
	now         func() time.Time
}

func NewTokenManager(secret string, tenantTTL, employeeTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:      []byte(secret),
		tenantTTL:   tenantTTL,
		employeeTTL: employeeTTL,
		now:         time.Now,
	}
}

func (m *TokenManager) IssueTenant(companyID string) (Token, error) {
	return m.issue(Claims{
		Kind:      KindTenant,
		CompanyID: companyID,
		Role:      RoleAdmin,
	}, companyID, m.tenantTTL)
}

func (m *TokenManager) IssueEmployee(companyID, employeeID string) (Token, error) {
	return m.issue(Claims{
		Kind:       KindEmployee,
		CompanyID:  companyID,
		EmployeeID: employeeID,
		Role:       RoleEmployee,
	}, employeeID, m.employeeTTL)
}

func (m *TokenManager) issue(claims Claims, subject string, ttl time.Duration) (Token, error) {
	now := m.now()
	expiresAt := now.Add(ttl)

	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return Token{}, autherrors.ErrTokenGenerationFailed.WithCause(err)
	}

	return Token{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt.UTC(),
	}, nil
}

func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(*jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherrors.ErrTokenExpired
		}
		return nil, autherrors.ErrInvalidToken.WithCause(err)
	}
	if !token.Valid || claims.CompanyID == "" || claims.Subject == "" {
		return nil, autherrors.ErrInvalidToken
	}

	switch claims.Kind {
	case KindTenant:
	case KindEmployee:
		if claims.EmployeeID == "" {
			return nil, autherrors.ErrInvalidToken
		}
	default:
		return nil, autherrors.ErrInvalidToken
	}

	return claims, nil
}
