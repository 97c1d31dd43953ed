package devserver

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/utils"
)

type contextKey string

// usernameCtxKey carries the authenticated username through the request
// context after the bearer token has been validated.
const usernameCtxKey contextKey = "username"

// withLogger attaches a request-scoped child logger to the context and logs
// each handled request.
func (s *Server) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLog := s.log.With().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", r.Header.Get("X-Request-Id")).
			Logger()

		ctx := reqLog.WithContext(r.Context())
		reqLog.Debug().Msg("request received")

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAuth validates the bearer token and stores its subject in the
// request context. Missing, malformed, expired, or forged tokens all produce
// 401 — the client reacts by resetting its session.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawToken, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			logger.FromRequest(r).Warn().Err(err).Msg("missing or malformed authorization header")
			writeError(w, r, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token, err := utils.ValidateAndParseJWTToken(rawToken, s.cfg.TokenSignKey, s.cfg.TokenIssuer)
		if err != nil {
			logger.FromRequest(r).Warn().Err(err).Msg("token validation failed")
			writeError(w, r, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), usernameCtxKey, token.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// usernameFromContext returns the authenticated username stored by
// requireAuth.
func usernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(usernameCtxKey).(string)
	return username
}
