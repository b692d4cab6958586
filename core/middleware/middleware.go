package middleware

import (
	"net/http"
	"strings"

	"amparo-api/core/cache"
	"amparo-api/core/constants"
	"amparo-api/core/controller"
	"amparo-api/core/errors"
	"amparo-api/core/utils"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Middleware struct {
	cache cache.Cache
}

func New(c cache.Cache) *Middleware {
	return &Middleware{cache: c}
}

// Setup attaches the global middleware chain.
func (m *Middleware) Setup(e *echo.Echo) {
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORS())
}

// AuthMiddleware gates routes behind a valid, non-blacklisted session token.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get("Authorization")
			if header == "" {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrMissingAuthorizationHeader, "Missing authorization header")
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrInvalidTokenFormat, "Authorization header must be a Bearer token")
			}

			blacklisted, err := m.cache.IsTokenBlacklisted(ctx.Request().Context(), token)
			if err != nil {
				return controller.NewErrorResponse(http.StatusInternalServerError, errors.ErrInternalServer, "Failed to check session")
			}
			if blacklisted {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "Session has been signed out")
			}

			claims, appErr := utils.ValidateAndParseToken(token)
			if appErr != nil {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "Invalid or expired session token")
			}

			ctx.Set(constants.ContextTokenData, claims)
			return next(ctx)
		}
	}
}
