// Package authmw provides HTTP middleware authenticating webhook senders.
package authmw

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// Token returns middleware that validates the shared webhook token. Senders
// present it either as `Authorization: Bearer <token>` or, for feeds that
// cannot set an Authorization header, as `X-API-Key: <token>`. Comparison
// uses constant-time equality to prevent timing side channels.
func Token(token string) func(http.Handler) http.Handler {
	expected := []byte(token)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := presentedToken(r)
			if got == "" {
				http.Error(w, `{"error":"missing credentials"}`, http.StatusUnauthorized)
				return
			}

			if subtle.ConstantTimeCompare([]byte(got), expected) != 1 {
				http.Error(w, `{"error":"invalid token"}`, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func presentedToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return auth[len("Bearer "):]
	}
	return r.Header.Get("X-API-Key")
}
