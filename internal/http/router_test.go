package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/leasedesk/internal/api"
	"github.com/MrJamesThe3rd/leasedesk/internal/auth"
	"github.com/MrJamesThe3rd/leasedesk/internal/contract"
	"github.com/MrJamesThe3rd/leasedesk/internal/contract/fixture"
	leasehttp "github.com/MrJamesThe3rd/leasedesk/internal/http"
	authHandler "github.com/MrJamesThe3rd/leasedesk/internal/http/auth"
	contractHandler "github.com/MrJamesThe3rd/leasedesk/internal/http/contract"
)

type singleRepo struct {
	repo contract.Repository
}

func (s singleRepo) ForUser(int64) contract.Repository {
	return s.repo
}

func newBackend(t *testing.T) (http.Handler, *auth.MockRepository) {
	t.Helper()

	users := auth.NewMockRepository(gomock.NewController(t))
	svc := auth.NewService(users, "secret", time.Hour)

	router := leasehttp.New(
		authHandler.NewHandler(svc),
		contractHandler.NewHandler(singleRepo{fixture.New(time.Now())}, nil),
		[]string{"*"},
	)

	return router, users
}

func do(router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestRouter_RegisterThenUseToken(t *testing.T) {
	router, users := newBackend(t)

	var stored *auth.User

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *auth.User) error {
		u.ID = 5
		stored = u

		return nil
	})

	rec := do(router, http.MethodPost, "/auth/register", "",
		`{"firstName":"Ana","lastName":"Gómez","email":"ana@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var res api.AuthResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	require.NotEmpty(t, res.Token)
	require.NotNil(t, res.User)
	assert.Equal(t, int64(5), res.User.ID)

	users.EXPECT().GetUser(gomock.Any(), int64(5)).Return(stored, nil)

	rec = do(router, http.MethodGet, "/me", res.Token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ana@example.com")

	rec = do(router, http.MethodGet, "/contracts", res.Token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []api.ContractJSON
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	assert.Len(t, list, 3)
}

func TestRouter_ProtectedRoutesNeedToken(t *testing.T) {
	router, _ := newBackend(t)

	for _, path := range []string{"/me", "/contracts"} {
		rec := do(router, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)

		rec = do(router, http.MethodGet, path, "not-a-jwt", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	rec := do(router, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Login(t *testing.T) {
	router, users := newBackend(t)

	users.EXPECT().GetUserByEmail(gomock.Any(), "nobody@example.com").Return(nil, auth.ErrNotFound)

	rec := do(router, http.MethodPost, "/auth/login", "", `{"email":"Nobody@example.com","password":"whatever1"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body api.ErrorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Invalid credentials", body.Error)
}

func TestRouter_RegisterErrors(t *testing.T) {
	router, users := newBackend(t)

	rec := do(router, http.MethodPost, "/auth/register", "", `{"firstName":"A","lastName":"B","email":"bad","password":"secret123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid email")

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(auth.ErrEmailTaken)

	rec = do(router, http.MethodPost, "/auth/register", "", `{"firstName":"A","lastName":"B","email":"a@b.co","password":"secret123"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already registered")
}
