package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	pkgctx "github.com/piresc/transferflow/internal/pkg/context"
	jwtpkg "github.com/piresc/transferflow/internal/pkg/jwt"
	"github.com/piresc/transferflow/internal/pkg/logger"
	"github.com/piresc/transferflow/internal/pkg/models"
	"github.com/piresc/transferflow/internal/utils"
)

const (
	tokenContextKey = "jwt_token"
	// AuthUserKey is the echo context key holding the authenticated models.AuthUser
	AuthUserKey = "auth_user"
)

// JWTAuth validates the bearer token and stores the caller as models.AuthUser
func JWTAuth(config models.JWTConfig) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(config.Secret),
		SigningMethod: jwt.SigningMethodHS256.Alg(),
		ContextKey:    tokenContextKey,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(jwtpkg.Claims)
		},
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get(tokenContextKey).(*jwt.Token)
			if !ok {
				return
			}
			claims, ok := token.Claims.(*jwtpkg.Claims)
			if !ok || claims.UserID == "" {
				return
			}
			c.Set(AuthUserKey, claims.User())
			c.Set(logger.UserIDKey, claims.UserID)
			pkgctx.SetUserID(c, claims.UserID)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid or missing token")
		},
	})
}

// AuthUser returns the user stored by JWTAuth
func AuthUser(c echo.Context) (models.AuthUser, bool) {
	user, ok := c.Get(AuthUserKey).(models.AuthUser)
	return user, ok && user.ID != ""
}
