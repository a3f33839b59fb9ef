package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "tiershowcase/internal/delivery/http/helpers"
	"tiershowcase/internal/domain"
)

type contextKey string

const userIDKey contextKey = "userID"

// SetUserID returns a context with the user ID set. Used by auth middleware.
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user ID from the context, if present.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the user ID in the request context.
// If the token is missing or invalid, browsers (Accept: text/html) are redirected to entryURL when it is set;
// every other client gets a 401 JSON error. next is not called in either case.
func RequireAuth(verifier domain.TokenVerifier, entryURL string, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			reject := func(message string) {
				if entryURL != "" && wantsHTML(r) {
					http.Redirect(w, r, entryURL, http.StatusSeeOther)
					return
				}
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, message)
			}

			auth := r.Header.Get("Authorization")
			if auth == "" {
				reject("missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				reject("invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				reject("missing token")
				return
			}
			userID, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
				reject("invalid or expired token")
				return
			}
			r = r.WithContext(SetUserID(r.Context(), userID))
			next(w, r)
		}
	}
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
