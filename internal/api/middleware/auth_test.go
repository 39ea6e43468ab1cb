package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"casthub/internal/common/security"
	"casthub/internal/domain/model"
	"casthub/internal/testsupport/memrepo"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedRouter(t *testing.T, users *memrepo.UserStore) http.Handler {
	t.Helper()
	security.TokenAuth = jwtauth.New("HS256", []byte("test-secret"), nil)

	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(security.TokenAuth))
	r.Use(Identity(users))

	r.Get("/public", func(w http.ResponseWriter, r *http.Request) {
		if id, ok := GetUserIDFromContext(r.Context()); ok {
			w.Write([]byte("hello " + id))
			return
		}
		w.Write([]byte("hello anonymous"))
	})

	r.Group(func(pr chi.Router) {
		pr.Use(RequireUser)
		pr.Get("/private", func(w http.ResponseWriter, r *http.Request) {
			id, _ := GetUserIDFromContext(r.Context())
			role, _ := GetUserRoleFromContext(r.Context())
			w.Write([]byte(id + ":" + role))
		})
	})

	return r
}

func do(t *testing.T, h http.Handler, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGuardPublicOperations(t *testing.T) {
	users := memrepo.NewUserStore()
	router := newGuardedRouter(t, users)

	t.Run("absent token proceeds anonymously", func(t *testing.T) {
		rec := do(t, router, "/public", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "hello anonymous", rec.Body.String())
	})

	t.Run("garbage token proceeds anonymously", func(t *testing.T) {
		rec := do(t, router, "/public", "garbage")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "hello anonymous", rec.Body.String())
	})
}

func TestGuardPrivateOperations(t *testing.T) {
	users := memrepo.NewUserStore()
	require.NoError(t, users.Create(context.Background(),
		&model.User{ID: "u-1", Email: "a@b.c", Role: model.RoleHost}))
	router := newGuardedRouter(t, users)

	t.Run("absent token is forbidden", func(t *testing.T) {
		rec := do(t, router, "/private", "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"ok":false,"error":"Forbidden resource"}`, rec.Body.String())
	})

	t.Run("malformed token is forbidden, never a business error", func(t *testing.T) {
		rec := do(t, router, "/private", "not.a.token")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"ok":false,"error":"Forbidden resource"}`, rec.Body.String())
	})

	t.Run("verifiable token for a vanished user is forbidden", func(t *testing.T) {
		stale, err := security.GenerateToken("deleted-user")
		require.NoError(t, err)
		rec := do(t, router, "/private", stale)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"ok":false,"error":"Forbidden resource"}`, rec.Body.String())
	})

	t.Run("resolved identity reaches the handler", func(t *testing.T) {
		token, err := security.GenerateToken("u-1")
		require.NoError(t, err)
		rec := do(t, router, "/private", token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "u-1:host", rec.Body.String())
	})
}
