package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Revoker reports whether a token ID has been revoked (logout).
type Revoker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Auth validates the bearer JWT and injects claims into context. Revoked and
// non-access tokens are rejected like any other invalid credential.
func Auth(jwtSecret string, revoker Revoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if typ, _ := claims["typ"].(string); typ != "access" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if revoker != nil {
				jti, _ := claims["jti"].(string)
				revoked, err := revoker.IsRevoked(c.Request().Context(), jti)
				if err != nil || revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
			}

			c.Set("user_id", claims["sub"])
			c.Set("role", claims["role"])
			c.Set("warehouse_id", claims["warehouse_id"])
			c.Set("token", parts[1])

			return next(c)
		}
	}
}
