package middleware

import (
	"net/http"
	"strings"

	"musclelog-backend/pkg/auth"
	"musclelog-backend/pkg/common"

	"go.uber.org/zap"
)

// Authenticate verifies the Cognito ID token on each request and stores
// the username in the request context. Clients send the raw ID token in
// Authorization; a Bearer prefix is tolerated.
func Authenticate(verifier auth.Verifier, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				header = r.Header.Get("authorization")
			}
			token := strings.TrimPrefix(header, "Bearer ")
			if token == "" {
				common.RespondError(w, http.StatusForbidden, "Access is Denied")
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				logger.Warn("token verification failed", zap.Error(err))
				common.RespondError(w, http.StatusForbidden, "Access is Denied")
				return
			}

			logger.Debug("request authenticated", zap.String("user_name", claims.Username))
			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), claims.Username)))
		})
	}
}
