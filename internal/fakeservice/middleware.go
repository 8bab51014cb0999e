package fakeservice

import (
	"bytes"
	"io"
	"net/http"
	"runtime/debug"
	"strings"
	"time"
)

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// logging logs request method, path, status, and duration.
func (s *Service) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		s.log.Infow("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.statusCode,
			"duration", time.Since(start),
		)
	})
}

// recovery catches panics and returns a 500 error.
func (s *Service) recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				s.log.Errorw("panic recovered", "error", err, "stack", string(debug.Stack()))
				writeError(w, http.StatusInternalServerError, "Internal error", "SERVER_000")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// recorder appends every request to the request log. The body is buffered
// and restored for the handlers.
func (s *Service) recorder(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(body))
		}
		s.record(Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			RawQuery:      r.URL.RawQuery,
			Authorization: r.Header.Get("Authorization"),
			Body:          string(body),
		})
		next.ServeHTTP(w, r)
	})
}

// requireAPIKey guards legacy routes: the Authorization header must be the
// raw API key.
func (s *Service) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != s.creds.APIKey {
			writeError(w, http.StatusUnauthorized, "Token invalid", "OAUTH_025")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireBearer guards current routes: the Authorization header must carry a
// token issued by login.
func (s *Service) requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || !s.validToken(tok) {
			writeError(w, http.StatusUnauthorized, "Authorization header required", "OAUTH_017")
			return
		}
		next.ServeHTTP(w, r)
	})
}
