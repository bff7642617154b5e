package middleware

import (
	"net/http"
	"strings"

	"iriscan/config"
	"iriscan/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const identityContextKey = "identity"

// IdentityMiddleware resolves the request principal. A valid Bearer token
// yields an authenticated identity; otherwise the X-Device-ID header yields an
// anonymous one. Requests carrying neither are rejected before any handler runs.
type IdentityMiddleware struct {
	cfg *config.Config
}

// NewIdentityMiddleware is the constructor for IdentityMiddleware.
func NewIdentityMiddleware(cfg *config.Config) *IdentityMiddleware {
	return &IdentityMiddleware{cfg: cfg}
}

// Resolve is the core middleware function that attaches the identity to the context.
func (m *IdentityMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader != "" {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
			}

			identity, err := m.parseToken(tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
			}

			c.Set(identityContextKey, identity)

			return next(c)
		}

		deviceID := c.Request().Header.Get("X-Device-ID")
		if deviceID == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing identity: provide a Bearer token or X-Device-ID header"})
		}

		c.Set(identityContextKey, entity.NewAnonymousIdentity(deviceID))

		return next(c)
	}
}

// RequireAuthenticated rejects anonymous principals. It must be used AFTER Resolve.
func (m *IdentityMiddleware) RequireAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := GetIdentity(c)
		if !ok || !identity.IsAuthenticated() {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: sign-in required"})
		}

		return next(c)
	}
}

func (m *IdentityMiddleware) parseToken(tokenString string) (entity.Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(m.cfg.SecretKey.Access), nil
	})
	if err != nil || !token.Valid {
		return entity.Identity{}, jwt.ErrTokenUnverifiable
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return entity.Identity{}, jwt.ErrTokenInvalidSubject
	}

	return entity.NewAuthenticatedIdentity(sub), nil
}

// GetIdentity retrieves the resolved identity from the Echo context.
func GetIdentity(c echo.Context) (entity.Identity, bool) {
	identity, ok := c.Get(identityContextKey).(entity.Identity)

	return identity, ok
}
