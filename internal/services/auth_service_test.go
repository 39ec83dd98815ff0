package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/venture-studio/engine/internal/migrations"
	"github.com/venture-studio/engine/internal/repository"
	appErr "github.com/venture-studio/engine/pkg/errors"
)

func setupAuth(t *testing.T, ttl time.Duration) AuthService {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Up(context.Background(), db))

	repos := repository.New(db, 5*time.Second)
	return NewAuthService(repos.Users, []byte("test-secret"), ttl)
}

func TestRegisterLoginVerify_Roundtrip(t *testing.T) {
	svc := setupAuth(t, 24*time.Hour)
	ctx := context.Background()

	u, token, err := svc.Register(ctx, "alice@x.com", "pw123456", "Alice", "A")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "alice@x.com", u.Email)
	assert.Equal(t, "founder", u.Role)
	assert.NotEqual(t, "pw123456", u.PasswordHash)

	u2, token2, err := svc.Login(ctx, "alice@x.com", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, u.ID, u2.ID)

	claims, err := svc.Verify(token2)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.ID)
	assert.Equal(t, "alice@x.com", claims.Email)
	assert.Equal(t, "Alice", claims.FirstName)
	assert.Equal(t, "A", claims.LastName)
}

func TestRegister_MissingFields(t *testing.T) {
	svc := setupAuth(t, 24*time.Hour)

	_, _, err := svc.Register(context.Background(), "alice@x.com", "", "Alice", "A")
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	svc := setupAuth(t, 24*time.Hour)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice@x.com", "pw123456", "Alice", "A")
	require.NoError(t, err)

	// conflict regardless of the password supplied
	_, _, err = svc.Register(ctx, "alice@x.com", "other-password", "Mallory", "M")
	require.True(t, appErr.IsCode(err, appErr.CodeConflict))
}

func TestLogin_AntiEnumeration(t *testing.T) {
	svc := setupAuth(t, 24*time.Hour)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice@x.com", "pw123456", "Alice", "A")
	require.NoError(t, err)

	_, _, wrongPW := svc.Login(ctx, "alice@x.com", "not-the-password")
	_, _, noUser := svc.Login(ctx, "nobody@x.com", "pw123456")

	require.True(t, appErr.IsCode(wrongPW, appErr.CodeUnauthorized))
	require.True(t, appErr.IsCode(noUser, appErr.CodeUnauthorized))
	// identical message for both failure modes
	assert.Equal(t, wrongPW.Error(), noUser.Error())
}

func TestVerify_ExpiredToken(t *testing.T) {
	svc := setupAuth(t, -time.Minute)
	ctx := context.Background()

	_, token, err := svc.Register(ctx, "alice@x.com", "pw123456", "Alice", "A")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.True(t, appErr.IsCode(err, appErr.CodeUnauthorized))
}

func TestVerify_Garbage(t *testing.T) {
	svc := setupAuth(t, 24*time.Hour)

	_, err := svc.Verify("not.a.token")
	require.True(t, appErr.IsCode(err, appErr.CodeUnauthorized))
}
