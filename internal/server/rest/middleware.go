package rest

import (
	"net/http"

	"github.com/dmitrijs2005/carstorage/internal/common"
	"github.com/dmitrijs2005/carstorage/internal/server/auth"
	"github.com/dmitrijs2005/carstorage/internal/server/services"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const claimsKey = "claims"

// tokenLookup prefers the bearer scheme and falls back to a bare token in
// the header, which older clients send.
var tokenLookup = "header:" + echo.HeaderAuthorization + ":" + common.BearerPrefix +
	",header:" + echo.HeaderAuthorization

var errInvalidToken = echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")

func (s *Server) jwtConfig() echojwt.Config {
	return echojwt.Config{
		ContextKey:  claimsKey,
		TokenLookup: tokenLookup,
		ParseTokenFunc: func(c echo.Context, token string) (any, error) {
			return auth.ParseToken(token, s.jwtSecret)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errInvalidToken
		},
	}
}

func (s *Server) requireAuth() echo.MiddlewareFunc {
	return echojwt.WithConfig(s.jwtConfig())
}

// optionalAuth sets the caller when a valid token is present and lets
// anonymous requests through.
func (s *Server) optionalAuth() echo.MiddlewareFunc {
	cfg := s.jwtConfig()
	cfg.ContinueOnIgnoredError = true
	cfg.ErrorHandler = func(c echo.Context, err error) error { return nil }
	return echojwt.WithConfig(cfg)
}

// caller returns the identity set by the auth middleware, or the zero
// Caller for anonymous requests.
func caller(c echo.Context) services.Caller {
	claims, ok := c.Get(claimsKey).(*auth.Claims)
	if !ok {
		return services.Caller{}
	}
	return services.Caller{UserID: claims.ID, IsAdmin: claims.IsAdmin}
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info(c.Request().Context(), "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			)
			if v.Error != nil {
				s.logger.Debug(c.Request().Context(), "request error", "error", v.Error)
			}
			return nil
		},
	})
}
