package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"huddle/internal/domain/models"
	"huddle/internal/httputil"
	"huddle/internal/state"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) *state.Store {
	t.Helper()
	return state.New(state.Options{
		ActingUser: models.Member{
			ID:        "user-acting",
			Email:     "john.doe@example.com",
			FirstName: "John",
			LastName:  "Doe",
			Role:      models.RoleOwner,
			Status:    models.StatusOnline,
		},
		Logger: testLogger(),
	})
}

// jsonRequest builds an authenticated request the way the middleware
// would hand it to a handler.
func jsonRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return httputil.WithIdentity(req, httputil.Identity{
		UserID: "user-acting",
		Email:  "john.doe@example.com",
	})
}

// serve routes the request through a mux using the production patterns
// so path values resolve.
func serve(pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, h)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}
