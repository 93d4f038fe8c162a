package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/teleka/teleka-taxi/internal/domain/models"
	"github.com/teleka/teleka-taxi/internal/domain/types"
	wrap "github.com/teleka/teleka-taxi/pkg/logger/wrapper"
)

// --- base auth middleware ---

// Auth validates the Bearer token and injects the operator into the context.
// Requests without a header pass through as anonymous; protected endpoints
// reject those via RequireOperator.
func (h *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		header := r.Header.Get("Authorization")
		if header == "" {
			r = r.WithContext(models.WithOperator(ctx, models.AnonymousOperator()))
			next.ServeHTTP(w, r)
			return
		}

		token, err := extractBearerToken(header)
		if err != nil {
			errorResponse(w, http.StatusUnauthorized, err.Error())
			return
		}

		operator, err := h.auth.VerifyToken(ctx, token)
		if err != nil || operator == nil {
			h.log.Error(wrap.ErrorCtx(ctx, err), "failed to authenticate operator", err)
			errorResponse(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		next.ServeHTTP(w, r.WithContext(models.WithOperator(ctx, operator)))
	})
}

// RequireOperator allows only an authenticated operator through.
func (h *Middleware) RequireOperator(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		operator := models.OperatorFromContext(r.Context())
		if operator.IsAnonymous() {
			errorResponse(w, http.StatusUnauthorized, "authorization required")
			return
		}
		if operator.Role != types.RoleOperator {
			errorResponse(w, http.StatusForbidden, "forbidden: insufficient role")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// --- header parser ---
func extractBearerToken(header string) (string, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", fmt.Errorf("invalid Authorization header format")
	}
	return parts[1], nil
}
