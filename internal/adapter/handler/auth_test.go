package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zenohq/zeno-server/internal/domain/entities"
	"github.com/zenohq/zeno-server/internal/domain/repositories"
	"github.com/zenohq/zeno-server/internal/usecase/auth"
	pkgvalidator "github.com/zenohq/zeno-server/pkg/validator"
)

type stubIdentity struct {
	session *repositories.Session
	err     error
	meta    entities.UserMetadata
	metaErr error
}

func (s *stubIdentity) SignIn(ctx context.Context, email, password string) (*repositories.Session, error) {
	return s.session, s.err
}

func (s *stubIdentity) SignUp(ctx context.Context, email, password, firstName, lastName string) (*repositories.Session, error) {
	return s.session, s.err
}

func (s *stubIdentity) UserMetadata(ctx context.Context, userID string) (entities.UserMetadata, error) {
	return s.meta, s.metaErr
}

func (s *stubIdentity) UpdateUserMetadata(ctx context.Context, userID string, meta entities.UserMetadata) error {
	return errors.New("not implemented")
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = pkgvalidator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestLogin_Success(t *testing.T) {
	identity := &stubIdentity{session: &repositories.Session{
		AccessToken: "jwt-abc",
		User:        entities.User{ID: "user-123", Email: "a@b.com"},
	}}
	h := NewAuth(auth.NewService(identity), zap.NewNop())

	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/login",
		`{"email":"a@b.com","password":"secret"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "jwt-abc", body["access_token"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "user-123", user["id"])
	assert.Equal(t, "a@b.com", user["email"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	identity := &stubIdentity{err: entities.ErrInvalidCredentials}
	h := NewAuth(auth.NewService(identity), zap.NewNop())

	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/login",
		`{"email":"a@b.com","password":"wrong"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid email or password", body["message"])
}

func TestLogin_MissingFields(t *testing.T) {
	h := NewAuth(auth.NewService(&stubIdentity{}), zap.NewNop())

	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/login",
		`{"email":"not-an-email"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignup_Success(t *testing.T) {
	identity := &stubIdentity{session: &repositories.Session{
		AccessToken: "jwt-new",
		User:        entities.User{ID: "user-456", Email: "new@b.com"},
	}}
	h := NewAuth(auth.NewService(identity), zap.NewNop())

	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/signup",
		`{"email":"new@b.com","password":"secret123","first_name":"Ada","last_name":"Lovelace"}`)
	require.NoError(t, h.Signup(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "jwt-new", body["access_token"])
}

func TestSignup_EmailAlreadyRegistered(t *testing.T) {
	identity := &stubIdentity{err: entities.ErrEmailAlreadyUsed}
	h := NewAuth(auth.NewService(identity), zap.NewNop())

	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/signup",
		`{"email":"dup@b.com","password":"secret123","first_name":"Ada","last_name":"Lovelace"}`)
	require.NoError(t, h.Signup(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Email already registered", body["message"])
}

func TestSignup_WeakPassword(t *testing.T) {
	identity := &stubIdentity{err: entities.ErrWeakPassword}
	h := NewAuth(auth.NewService(identity), zap.NewNop())

	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/signup",
		`{"email":"new@b.com","password":"123","first_name":"Ada","last_name":"Lovelace"}`)
	require.NoError(t, h.Signup(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
