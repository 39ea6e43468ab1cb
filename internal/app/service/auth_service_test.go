package service

import (
	"context"
	"testing"

	"casthub/internal/common"
	"casthub/internal/common/security"
	"casthub/internal/domain/model"
	"casthub/internal/testsupport/memrepo"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*AuthService, *memrepo.UserStore) {
	t.Helper()
	security.TokenAuth = jwtauth.New("HS256", []byte("test-secret"), nil)
	users := memrepo.NewUserStore()
	return NewAuthService(users), users
}

func TestCreateAccount(t *testing.T) {
	s, users := newAuthFixture(t)
	ctx := context.Background()

	user, err := s.CreateAccount(ctx, CreateAccountRequest{Email: "Host@Example.com", Password: "pw", Role: model.RoleHost})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "host@example.com", user.Email, "email is case-normalized")
	assert.Equal(t, model.RoleHost, user.Role)
	assert.Empty(t, user.HashedPassword, "hash never exposed")

	stored, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.HashedPassword)
	assert.NotEqual(t, "pw", stored.HashedPassword)
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	s, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := s.CreateAccount(ctx, CreateAccountRequest{Email: "a@b.c", Password: "pw", Role: model.RoleListener})
	require.NoError(t, err)

	_, err = s.CreateAccount(ctx, CreateAccountRequest{Email: "A@B.C", Password: "other", Role: model.RoleHost})
	require.Error(t, err)
	assert.Equal(t, "There is a user with that email already", err.Error())
}

func TestCreateAccountValidation(t *testing.T) {
	s, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := s.CreateAccount(ctx, CreateAccountRequest{Email: "", Password: "pw"})
	assert.ErrorIs(t, err, common.ErrBadRequest)

	_, err = s.CreateAccount(ctx, CreateAccountRequest{Email: "a@b.c", Password: "pw", Role: "admin"})
	assert.ErrorIs(t, err, common.ErrBadRequest)

	user, err := s.CreateAccount(ctx, CreateAccountRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleListener, user.Role, "role defaults to listener")
}

func TestLogin(t *testing.T) {
	s, _ := newAuthFixture(t)
	ctx := context.Background()

	user, err := s.CreateAccount(ctx, CreateAccountRequest{Email: "a@b.c", Password: "pw", Role: model.RoleHost})
	require.NoError(t, err)

	t.Run("unknown account", func(t *testing.T) {
		_, err := s.Login(ctx, LoginRequest{Email: "ghost@b.c", Password: "pw"})
		require.Error(t, err)
		assert.Equal(t, "User not found", err.Error())
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.Login(ctx, LoginRequest{Email: "a@b.c", Password: "nope"})
		require.Error(t, err)
		assert.Equal(t, "Wrong password", err.Error())
	})

	t.Run("success issues a token for the user", func(t *testing.T) {
		tokenString, err := s.Login(ctx, LoginRequest{Email: "A@b.C", Password: "pw"})
		require.NoError(t, err)

		token, err := jwtauth.VerifyToken(security.TokenAuth, tokenString)
		require.NoError(t, err)
		claims, err := token.AsMap(ctx)
		require.NoError(t, err)
		userID, err := security.UserIDFromClaims(claims)
		require.NoError(t, err)
		assert.Equal(t, user.ID, userID)
	})
}

func TestProfile(t *testing.T) {
	s, _ := newAuthFixture(t)
	ctx := context.Background()

	user, err := s.CreateAccount(ctx, CreateAccountRequest{Email: "a@b.c", Password: "pw", Role: model.RoleHost})
	require.NoError(t, err)

	got, err := s.Profile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Empty(t, got.HashedPassword)

	_, err = s.Profile(ctx, "missing")
	require.Error(t, err)
	assert.Equal(t, "User not found", err.Error())
}

func TestEditProfile(t *testing.T) {
	s, users := newAuthFixture(t)
	ctx := context.Background()

	user, err := s.CreateAccount(ctx, CreateAccountRequest{Email: "a@b.c", Password: "pw", Role: model.RoleHost})
	require.NoError(t, err)
	_, err = s.CreateAccount(ctx, CreateAccountRequest{Email: "taken@b.c", Password: "pw", Role: model.RoleListener})
	require.NoError(t, err)

	t.Run("email change", func(t *testing.T) {
		email := "New@B.C"
		require.NoError(t, s.EditProfile(ctx, user.ID, EditProfileRequest{Email: &email}))
		stored, err := users.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "new@b.c", stored.Email)
	})

	t.Run("email already registered", func(t *testing.T) {
		email := "taken@b.c"
		err := s.EditProfile(ctx, user.ID, EditProfileRequest{Email: &email})
		require.Error(t, err)
		assert.Equal(t, "There is a user with that email already", err.Error())
	})

	t.Run("password change is re-hashed", func(t *testing.T) {
		before, err := users.FindByID(ctx, user.ID)
		require.NoError(t, err)

		password := "new-pw"
		require.NoError(t, s.EditProfile(ctx, user.ID, EditProfileRequest{Password: &password}))

		after, err := users.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.NotEqual(t, before.HashedPassword, after.HashedPassword)
		assert.True(t, security.CheckPasswordHash("new-pw", after.HashedPassword))
	})

	t.Run("empty edit rejected", func(t *testing.T) {
		assert.ErrorIs(t, s.EditProfile(ctx, user.ID, EditProfileRequest{}), common.ErrBadRequest)
	})
}
