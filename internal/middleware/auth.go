package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/medicore/hospital-api/internal/handler"
	"github.com/medicore/hospital-api/internal/model"
)

const (
	// Context keys set for authenticated requests.
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"

	errAdminRequired = "Unauthorized - Admin login required"
	errInvalidToken  = "Unauthorized - Invalid token"

	verdictTTL     = 30 * time.Second
	verdictCleanup = 5 * time.Minute
)

// TokenValidator is the slice of the auth service the middleware needs.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*model.TokenClaims, error)
}

// AuthMiddleware gates admin-only routes. The public anonymous key is a
// valid bearer credential for public routes only; here it is rejected the
// same as a missing token.
type AuthMiddleware struct {
	validator TokenValidator
	anonKey   string
	verdicts  *cache.Cache
}

func NewAuthMiddleware(validator TokenValidator, anonKey string) *AuthMiddleware {
	return &AuthMiddleware{
		validator: validator,
		anonKey:   anonKey,
		verdicts:  cache.New(verdictTTL, verdictCleanup),
	}
}

// RequireAdmin validates the bearer token and attaches the caller identity
// to the context. Validation verdicts are memoized briefly so a console
// session does not hit the session store on every request.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" || token == m.anonKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse(errAdminRequired))
			return
		}

		claims, err := m.validate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse(errInvalidToken))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)
		c.Next()
	}
}

func (m *AuthMiddleware) validate(ctx context.Context, token string) (*model.TokenClaims, error) {
	if cached, ok := m.verdicts.Get(token); ok {
		return cached.(*model.TokenClaims), nil
	}

	claims, err := m.validator.ValidateToken(ctx, token)
	if err != nil {
		return nil, err
	}

	// Only positive verdicts are cached; a failed token gets re-checked so
	// a fresh login is never shadowed.
	m.verdicts.SetDefault(token, claims)
	return claims, nil
}

// Invalidate drops the cached verdict for a token. Logout calls this so
// revocation takes effect immediately instead of after the cache TTL.
func (m *AuthMiddleware) Invalidate(token string) {
	m.verdicts.Delete(token)
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
