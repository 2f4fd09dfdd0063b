package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeValidator struct {
	sessionID uuid.UUID
	err       error
}

type fakeClaims struct{ id uuid.UUID }

func (f fakeClaims) GetSessionID() uuid.UUID { return f.id }

func (f *fakeValidator) ValidateToken(string) (SessionIDGetter, error) {
	if f.err != nil {
		return nil, f.err
	}
	return fakeClaims{id: f.sessionID}, nil
}

func runAuth(t *testing.T, validator TokenValidator, authHeader string) (*httptest.ResponseRecorder, uuid.UUID, error) {
	t.Helper()

	var gotID uuid.UUID
	var gotErr error
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotErr = GetSessionID(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("POST", "/interviews/x/answers", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	AuthMiddleware(validator)(next).ServeHTTP(rec, req)
	return rec, gotID, gotErr
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	sessionID := uuid.New()
	rec, gotID, err := runAuth(t, &fakeValidator{sessionID: sessionID}, "Bearer sometoken")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, err)
	assert.Equal(t, sessionID, gotID)
}

func TestAuthMiddlewareCaseInsensitiveBearer(t *testing.T) {
	rec, _, _ := runAuth(t, &fakeValidator{sessionID: uuid.New()}, "bearer sometoken")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	rec, _, _ := runAuth(t, &fakeValidator{sessionID: uuid.New()}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareBadScheme(t *testing.T) {
	rec, _, _ := runAuth(t, &fakeValidator{sessionID: uuid.New()}, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	rec, _, _ := runAuth(t, &fakeValidator{err: errors.New("expired")}, "Bearer sometoken")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetSessionIDWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	_, err := GetSessionID(req)
	assert.Error(t, err)
}
