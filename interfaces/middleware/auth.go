package middleware

import (
	"errors"
	"net/http"
	"strings"

	"finflix/domain/dto"
	"finflix/domain/repository"
	"finflix/infrastructure/logger"
	"finflix/infrastructure/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

const (
	KeyUserID   = "user_id"
	KeyUserName = "username"
)

const (
	msgMissingToken  = "Unauthorized - Missing token"
	msgInvalidToken  = "Unauthorized - Invalid token"
	msgAdminMissing  = "Unauthorized - Admin access missing"
	msgAdminRequired = "Unauthorized - Admin access required"
)

func unauthorized(ctx *gin.Context, msg string) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.Res{ResponseCode: "401", ResponseMessage: msg})
}

// Auth verifies the bearer token and stores the caller's id and username on
// the gin context. Both "Bearer <token>" and a bare token are accepted.
func Auth(secretKey string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authorization := strings.TrimSpace(ctx.GetHeader("Authorization"))
		if authorization == "" {
			unauthorized(ctx, msgMissingToken)
			return
		}
		token := authorization
		if scheme, rest, ok := strings.Cut(authorization, " "); ok && strings.EqualFold(scheme, "Bearer") {
			token = strings.TrimSpace(rest)
		}

		claims, err := utils.ParseToken(token, secretKey)
		if err != nil {
			logger.FromContext(ctx.Request.Context()).WithField("reason", tokenFailure(err)).Warn("Rejected bearer token")
			unauthorized(ctx, msgInvalidToken)
			return
		}
		ctx.Set(KeyUserID, claims.UserID)
		ctx.Set(KeyUserName, claims.UserName)
		ctx.Next()
	}
}

// AdminAuth lets the request through only when the authenticated caller is
// an admin. It must run after Auth.
func AdminAuth(userRepository repository.IUser) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userName := ctx.GetString(KeyUserName)
		if userName == "" {
			unauthorized(ctx, msgAdminMissing)
			return
		}
		user, err := userRepository.GetByUserName(ctx.Request.Context(), userName)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				unauthorized(ctx, msgAdminRequired)
				return
			}
			logger.FromContext(ctx.Request.Context()).WithField("error", err).Error("Error while checking admin access")
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, dto.Res{ResponseCode: "500", ResponseMessage: "Internal Server Error"})
			return
		}
		if !user.IsAdmin {
			unauthorized(ctx, msgAdminRequired)
			return
		}
		ctx.Next()
	}
}

func tokenFailure(err error) string {
	var ve *jwt.ValidationError
	if errors.As(err, &ve) {
		switch {
		case ve.Errors&jwt.ValidationErrorMalformed != 0:
			return "malformed"
		case ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0:
			return "expired or not yet valid"
		case ve.Errors&jwt.ValidationErrorSignatureInvalid != 0:
			return "bad signature"
		}
	}
	return err.Error()
}
