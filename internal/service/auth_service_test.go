package service

import (
	"context"
	"testing"
	"time"

	"github.com/lshigami/studyaid/internal/auth"
	"github.com/lshigami/studyaid/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) (AuthService, *fakeUserRepo, *auth.TokenIssuer) {
	t.Helper()
	issuer, err := auth.NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	users := newFakeUserRepo()
	return NewAuthService(users, issuer), users, issuer
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, users, issuer := newTestAuthService(t)

	resp, err := svc.Register(ctx, dto.RegisterRequest{Name: " Ana ", Phone: " 0901 ", Password: "secret1", Grade: "7"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", resp.User.Name)
	assert.Equal(t, "0901", resp.User.Phone)
	assert.NotZero(t, resp.User.ID)

	id, err := issuer.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, id)

	stored, err := users.FindByID(ctx, id)
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.PasswordHash)

	login, err := svc.Login(ctx, dto.LoginRequest{Phone: "0901", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestAuthService_RegisterDuplicatePhone(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Register(ctx, dto.RegisterRequest{Name: "Ana", Phone: "0901", Password: "secret1"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, dto.RegisterRequest{Name: "Bo", Phone: "0901", Password: "secret2"})
	assert.ErrorIs(t, err, ErrPhoneTaken)
}

func TestAuthService_LoginFailures(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newTestAuthService(t)

	_, err := svc.Register(ctx, dto.RegisterRequest{Name: "Ana", Phone: "0901", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Phone: "0901", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, dto.LoginRequest{Phone: "0000", Password: "secret1"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	users.findErr = errStoreDown
	_, err = svc.Login(ctx, dto.LoginRequest{Phone: "0901", Password: "secret1"})
	var se *StorageError
	assert.ErrorAs(t, err, &se)
}
