package auth

import (
	"testing"
	"time"

	autherrors "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour, 24*time.Hour)

	t.Run("tenant", func(t *testing.T) {
		tok, err := m.IssueTenant("comp-1")
		assert.NoError(t, err)
		assert.Equal(t, "Bearer", tok.TokenType)

		claims, err := m.Parse(tok.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, KindTenant, claims.Kind)
		assert.Equal(t, "comp-1", claims.CompanyID)
		assert.Equal(t, "comp-1", claims.Subject)
		assert.Equal(t, RoleAdmin, claims.Role)
		assert.Empty(t, claims.EmployeeID)
	})

	t.Run("employee", func(t *testing.T) {
		tok, err := m.IssueEmployee("comp-1", "emp-9")
		assert.NoError(t, err)

		claims, err := m.Parse(tok.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, KindEmployee, claims.Kind)
		assert.Equal(t, "emp-9", claims.EmployeeID)
		assert.Equal(t, RoleEmployee, claims.Role)
	})
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("secret", time.Hour, time.Hour)
	issuedAt := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issuedAt }

	tok, err := m.IssueTenant("comp-1")
	assert.NoError(t, err)

	m.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = m.Parse(tok.AccessToken)

	assert.ErrorIs(t, err, autherrors.ErrTokenExpired)
}

func TestTokenManager_RejectsForeignTokens(t *testing.T) {
	m := NewTokenManager("secret", time.Hour, time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenManager("other", time.Hour, time.Hour)
		tok, _ := other.IssueTenant("comp-1")

		_, err := m.Parse(tok.AccessToken)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("unknown kind", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			Kind:             "robot",
			CompanyID:        "comp-1",
			RegisteredClaims: jwt.RegisteredClaims{Subject: "x", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		})
		signed, _ := raw.SignedString([]byte("secret"))

		_, err := m.Parse(signed)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Kind: KindTenant, CompanyID: "c"})
		signed, _ := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)

		_, err := m.Parse(signed)
		assert.Error(t, err)
	})
}
