package middleware

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/yanizio/userform/internal/logger"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

func TestForceHTTPS(t *testing.T) {
	tests := []struct {
		name   string
		host   string
		tls    bool
		proto  string
		status int
	}{
		{"plain remote redirects", "example.com", false, "", http.StatusPermanentRedirect},
		{"tls passes", "example.com", true, "", http.StatusOK},
		{"proxy https passes", "example.com", false, "https", http.StatusOK},
		{"localhost passes", "localhost:8080", false, "", http.StatusOK},
		{"loopback ip passes", "127.0.0.1:8080", false, "", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://"+tt.host+"/x?y=1", nil)
			req.Host = tt.host
			if tt.tls {
				req.TLS = &tls.ConnectionState{}
			}
			if tt.proto != "" {
				req.Header.Set("X-Forwarded-Proto", tt.proto)
			}
			rr := httptest.NewRecorder()

			ForceHTTPS(ok).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			if tt.status == http.StatusPermanentRedirect {
				assert.Equal(t, "https://example.com/x?y=1", rr.Header().Get("Location"))
			}
		})
	}
}

func TestSecurity_HeadersPresent(t *testing.T) {
	rr := httptest.NewRecorder()
	Security(ok).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, rr.Header().Get("Content-Security-Policy"), "frame-ancestors 'none'")
}

func TestRequestLog_AttachesLoggerAndID(t *testing.T) {
	base := zap.NewNop().Sugar()
	var sawLogger bool
	h := RequestLog(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawLogger = logger.FromContext(r.Context()) != zap.S()
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.True(t, sawLogger)
	assert.Equal(t, "abc", rr.Header().Get(RequestIDHeader))
	assert.Equal(t, http.StatusTeapot, rr.Code)
}
