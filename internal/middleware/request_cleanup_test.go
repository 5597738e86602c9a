package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrainAndCloseRequest_BodyLimit(t *testing.T) {
	var readErr error
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	})

	req := httptest.NewRequest(http.MethodPost, "/workouts", strings.NewReader(strings.Repeat("x", 64)))
	DrainAndCloseRequest(16)(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.Error(t, readErr)

	req = httptest.NewRequest(http.MethodPost, "/workouts", strings.NewReader("small"))
	DrainAndCloseRequest(16)(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.NoError(t, readErr)
}
