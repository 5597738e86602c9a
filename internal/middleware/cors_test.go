package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorsMiddleware(t *testing.T) {
	allowed := []string{"https://fitdash.app", "http://localhost:5173/"}

	testCases := []struct {
		name             string
		origin           string
		userAgent        string
		path             string
		expectAllowed    bool
		expectAllowValue string
	}{
		{
			name:             "AllowedOrigin",
			origin:           "https://fitdash.app",
			path:             "/dashboard",
			expectAllowed:    true,
			expectAllowValue: "https://fitdash.app",
		},
		{
			name:             "AllowedOriginTrailingSlashConfigured",
			origin:           "http://localhost:5173",
			path:             "/dashboard",
			expectAllowed:    true,
			expectAllowValue: "http://localhost:5173",
		},
		{
			name:          "NotAllowedOrigin",
			origin:        "https://www.notallowed.com",
			path:          "/dashboard",
			expectAllowed: false,
		},
		{
			name:          "CurlUserAgent",
			userAgent:     "curl/8.4.0",
			path:          "/dashboard/stats",
			expectAllowed: true,
		},
		{
			name:          "UnknownUserAgent",
			userAgent:     "UnknownAgent/1.0",
			path:          "/dashboard/stats",
			expectAllowed: false,
		},
		{
			name:             "McpWithoutOrigin",
			path:             "/mcp",
			expectAllowed:    true,
			expectAllowValue: "*",
		},
		{
			name:          "HealthWithoutOrigin",
			path:          "/health",
			expectAllowed: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req, err := http.NewRequest("GET", tc.path, nil)
			require.NoError(t, err)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			req.Header.Set("User-Agent", tc.userAgent)

			called := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
			Cors(allowed)(nextHandler).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectAllowed, called)
			if !tc.expectAllowed {
				assert.Equal(t, http.StatusForbidden, rr.Code, "Unexpected status code")
				return
			}
			assert.Equal(t, http.StatusOK, rr.Code)
			if tc.expectAllowValue != "" {
				assert.Equal(t, tc.expectAllowValue, rr.Header().Get("Access-Control-Allow-Origin"))
				assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "Authorization")
			}
		})
	}
}
