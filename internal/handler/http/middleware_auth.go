package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/ddanshin/staffdir/internal/logger"
	"github.com/ddanshin/staffdir/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and — on success — stores
// the authenticated principal in the request context under [utils.UserIDCtxKey]
// before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrMissingToken]).
//   - The token has expired ([service.ErrTokenIsExpired]), reported
//     distinctly from a tampered token.
//   - The token is otherwise invalid or cannot be parsed
//     ([service.ErrTokenIsInvalid]).
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrMissingToken).Send()
			writeError(w, ErrMissingToken)
			return
		}

		tokenString := getTokenFromAuthHeader(authHeader)

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token rejected")
			writeError(w, err)
			return
		}

		// Store the authenticated principal in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token string from a raw
// "Authorization" HTTP header value.
//
// The header may carry the standard bearer format:
//
//	Authorization: Bearer <token>
//
// or the raw token alone:
//
//	Authorization: <token>
//
// Both forms are accepted; the "Bearer " prefix is stripped when present.
func getTokenFromAuthHeader(authHeader string) string {
	token := strings.TrimSpace(authHeader)
	if rest, found := strings.CutPrefix(token, "Bearer "); found {
		return rest
	}

	return token
}
