package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ragul-Ragavendran-R/user-management-app/internal/service"
)

// fakeAuthService implements AuthService for testing.
type fakeAuthService struct {
	token string
	err   error
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return f.token, f.err
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		service        *fakeAuthService
		expectedCode   int
		expectedSubstr string
	}{
		{
			name:           "invalid JSON",
			body:           `not a json`,
			service:        &fakeAuthService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid request",
		},
		{
			name:           "empty email",
			body:           `{"email":"","password":"x"}`,
			service:        &fakeAuthService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "missing email",
		},
		{
			name:           "empty password",
			body:           `{"email":"eve.holt@reqres.in"}`,
			service:        &fakeAuthService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "missing password",
		},
		{
			name:           "rejected credentials",
			body:           `{"email":"eve.holt@reqres.in","password":"wrong"}`,
			service:        &fakeAuthService{err: service.ErrInvalidCredentials},
			expectedCode:   http.StatusUnauthorized,
			expectedSubstr: "invalid email or password",
		},
		{
			name:           "service error",
			body:           `{"email":"eve.holt@reqres.in","password":"x"}`,
			service:        &fakeAuthService{err: errors.New("db down")},
			expectedCode:   http.StatusInternalServerError,
			expectedSubstr: "internal error",
		},
		{
			name:           "success",
			body:           `{"email":"eve.holt@reqres.in","password":"cityslicka"}`,
			service:        &fakeAuthService{token: "QpwL5tke4Pnpja7X4"},
			expectedCode:   http.StatusOK,
			expectedSubstr: `"token":"QpwL5tke4Pnpja7X4"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/login", bytes.NewBufferString(tt.body))
			h := &AuthHandler{AuthService: tt.service}
			h.Login(rec, req)
			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, res.StatusCode)
			}

			buf := new(bytes.Buffer)
			if _, err := buf.ReadFrom(res.Body); err != nil {
				t.Fatalf("failed to read body: %v", err)
			}
			if !bytes.Contains(buf.Bytes(), []byte(tt.expectedSubstr)) {
				t.Errorf("expected body to contain %q, got %q", tt.expectedSubstr, buf.String())
			}
		})
	}
}
