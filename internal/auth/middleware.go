package auth

import (
	"log/slog"
	"net/http"
	"strings"

	dErrors "velos/pkg/domain-errors"
	"velos/pkg/platform/httputil"
	"velos/pkg/requestcontext"
)

// TokenValidator validates an access token and returns its claims.
type TokenValidator interface {
	ValidateToken(tokenString string) (*Claims, error)
}

// RequireOperator guards operator-only endpoints. It validates the bearer
// token and injects the operator subject into the request context.
func RequireOperator(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const bearerPrefix = "Bearer "
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), bearerPrefix)
			if !ok {
				logger.WarnContext(r.Context(), "unauthorized access, missing bearer token",
					"path", r.URL.Path)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing or invalid Authorization header"))
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(r.Context(), "unauthorized access, invalid token",
					"path", r.URL.Path, "error", err)
				httputil.WriteError(w, err)
				return
			}
			if claims.Role != RoleOperator {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "operator role required"))
				return
			}

			ctx := requestcontext.WithOperator(r.Context(), claims.OperatorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
