package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	h := SecurityHeadersMiddleware()(okHandler())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, HeaderValueNoSniff, w.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, w.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, w.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, w.Header().Get(HeaderReferrerPolicy))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	h := RequestSizeLimitMiddleware(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		_, err := r.Body.Read(buf)
		if err != nil && err.Error() == "http: request body too large" {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/", strings.NewReader(strings.Repeat("x", 64)))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestRateMonitor(t *testing.T) {
	monitor := NewRateMonitor()

	for i := 0; i < 1000; i++ {
		assert.True(t, monitor.RecordRequest("10.0.0.1"))
	}
	assert.False(t, monitor.RecordRequest("10.0.0.1"), "1001st request in the window is blocked")
	assert.True(t, monitor.RecordRequest("10.0.0.2"), "limits are per IP")
}

func TestRateLimitMiddleware(t *testing.T) {
	monitor := NewRateMonitor()
	h := RateLimitMiddleware(nil, monitor)(okHandler())

	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	for i := 0; i < 1000; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name           string
		remoteAddr     string
		forwardedFor   string
		trustedProxies []string
		want           string
	}{
		{
			name:       "direct connection",
			remoteAddr: "203.0.113.5:4321",
			want:       "203.0.113.5",
		},
		{
			name:         "forwarded header ignored from untrusted source",
			remoteAddr:   "203.0.113.5:4321",
			forwardedFor: "198.51.100.7",
			want:         "203.0.113.5",
		},
		{
			name:           "forwarded header honored from trusted proxy",
			remoteAddr:     "10.0.0.1:4321",
			forwardedFor:   "198.51.100.7",
			trustedProxies: []string{"10.0.0.1"},
			want:           "198.51.100.7",
		},
		{
			name:           "rightmost hop wins in a chain",
			remoteAddr:     "10.0.0.1:4321",
			forwardedFor:   "198.51.100.7, 192.0.2.9",
			trustedProxies: []string{"10.0.0.1"},
			want:           "192.0.2.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwardedFor != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwardedFor)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trustedProxies))
		})
	}
}
