// Package requestid provides middleware that assigns each request a unique
// ID, honoring an X-Request-ID header from upstream proxies when present.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"mailcheck/pkg/requestcontext"
)

// Header is the request ID header read from and echoed to clients.
const Header = "X-Request-ID"

// Middleware injects a request ID into the context and response headers.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		ctx := requestcontext.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
