package middleware

import (
	"errors"
	"strings"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/auth"
	autherrors "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/auth/errors"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/apperror"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/contextutil"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID     = "user_id"
	ContextCompanyID  = "company_id"
	ContextEmployeeID = "employee_id"
	ContextRole       = "role"
	ContextTokenKind  = "token_kind"
)

type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, nil)
	c.Abort()
}

// AuthMiddleware validates the bearer token (or access_token cookie) and,
// when kinds are given, only lets those token kinds through.
func AuthMiddleware(parser TokenParser, kinds ...auth.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, autherrors.ErrTokenNotFound)
			return
		}

		claims, err := parser.Parse(tokenString)
		if err != nil {
			errObj := autherrors.ErrInvalidToken
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				errObj = appErr
			}
			abortWith(c, errObj)
			return
		}

		if len(kinds) > 0 && !kindAllowed(claims.Kind, kinds) {
			abortWith(c, autherrors.ErrWrongTokenKind)
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextCompanyID, claims.CompanyID)
		c.Set(ContextEmployeeID, claims.EmployeeID)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextTokenKind, string(claims.Kind))

		ctx := contextutil.WithUserID(c.Request.Context(), claims.Subject)
		ctx = contextutil.WithCompanyID(ctx, claims.CompanyID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func kindAllowed(kind auth.Kind, allowed []auth.Kind) bool {
	for _, k := range allowed {
		if k == kind {
			return true
		}
	}
	return false
}

// OperatorKey guards back-office endpoints (company verification) with a
// static key from configuration. An empty key disables the endpoint.
func OperatorKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" || c.GetHeader("X-Operator-Key") != key {
			abortWith(c, autherrors.ErrInvalidOperatorKey)
			return
		}
		c.Next()
	}
}
