package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/kylespence97/stock-api-back-end/internal/api/handler/v1/response"
)

const ctxKeyRole = "role"

// StaffClaims are the claims issued by the staff identity service.
// Tokens are minted elsewhere; this service only verifies them.
type StaffClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Authenticator struct {
	signingKey string
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: signingKey,
	}
}

func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			response.RenderErr(ctx, response.ErrUnauthorized("missing Authorization header"))
			return
		}

		tokenStr, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			response.RenderErr(ctx, response.ErrUnauthorized("malformed Authorization header"))
			return
		}

		claims := &StaffClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(_ *jwt.Token) (interface{}, error) {
			return []byte(a.signingKey), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			response.RenderErr(ctx, response.ErrUnauthorized("invalid token"))
			return
		}

		ctx.Set(ctxKeyRole, claims.Role)
		ctx.Next()
	}
}

// RequireRoles lets a request through only when the verified token carries
// one of the listed roles.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role := ctx.GetString(ctxKeyRole)
		for _, allowed := range roles {
			if role == allowed {
				ctx.Next()
				return
			}
		}

		response.RenderErr(ctx, response.ErrPermissionDenied(
			fmt.Errorf("role %q is not allowed to access this resource", role),
		))
	}
}
