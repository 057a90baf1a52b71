package repository

import (
	"context"
	"testing"
	"time"

	"github.com/akinalpfdn/kimlik/models"
	"github.com/akinalpfdn/kimlik/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionTestEnv, session repo testleri için user + session repo çifti kurar.
// sessions.user_id foreign key'i yüzünden önce gerçek bir user gerekli.
func sessionTestEnv(t *testing.T) (SessionRepository, *models.User) {
	t.Helper()

	db := newTestDB(t)
	userRepo := NewSQLiteUserRepo(db.Conn)

	user := newTestUser()
	require.NoError(t, userRepo.Create(context.Background(), user))

	return NewSQLiteSessionRepo(db.Conn), user
}

func TestSQLiteSessionRepo_CreateAndGet(t *testing.T) {
	t.Parallel()

	repo, user := sessionTestEnv(t)

	session := &models.Session{
		UserID:       user.ID,
		RefreshToken: "refresh-token-1",
		ExpiresAt:    time.Now().Add(time.Hour).UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), session))
	assert.NotEmpty(t, session.ID)

	found, err := repo.GetByRefreshToken(context.Background(), "refresh-token-1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, found.ID)
	assert.Equal(t, user.ID, found.UserID)

	_, err = repo.GetByRefreshToken(context.Background(), "never-issued")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestSQLiteSessionRepo_DeleteByRefreshTokenIsIdempotent(t *testing.T) {
	t.Parallel()

	repo, user := sessionTestEnv(t)

	session := &models.Session{
		UserID:       user.ID,
		RefreshToken: "refresh-token-1",
		ExpiresAt:    time.Now().Add(time.Hour).UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), session))

	require.NoError(t, repo.DeleteByRefreshToken(context.Background(), "refresh-token-1"))

	_, err := repo.GetByRefreshToken(context.Background(), "refresh-token-1")
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	// Aynı silme tekrar çağrılırsa da hata dönmez
	assert.NoError(t, repo.DeleteByRefreshToken(context.Background(), "refresh-token-1"))
}

func TestSQLiteSessionRepo_DeleteByUserID(t *testing.T) {
	t.Parallel()

	repo, user := sessionTestEnv(t)

	for _, token := range []string{"token-a", "token-b", "token-c"} {
		require.NoError(t, repo.Create(context.Background(), &models.Session{
			UserID:       user.ID,
			RefreshToken: token,
			ExpiresAt:    time.Now().Add(time.Hour).UTC(),
		}))
	}

	require.NoError(t, repo.DeleteByUserID(context.Background(), user.ID))

	for _, token := range []string{"token-a", "token-b", "token-c"} {
		_, err := repo.GetByRefreshToken(context.Background(), token)
		assert.ErrorIs(t, err, pkg.ErrNotFound)
	}
}

func TestSQLiteSessionRepo_DeleteExpired(t *testing.T) {
	t.Parallel()

	repo, user := sessionTestEnv(t)

	require.NoError(t, repo.Create(context.Background(), &models.Session{
		UserID:       user.ID,
		RefreshToken: "stale",
		ExpiresAt:    time.Now().Add(-48 * time.Hour).UTC(),
	}))
	require.NoError(t, repo.Create(context.Background(), &models.Session{
		UserID:       user.ID,
		RefreshToken: "live",
		ExpiresAt:    time.Now().Add(48 * time.Hour).UTC(),
	}))

	require.NoError(t, repo.DeleteExpired(context.Background()))

	_, err := repo.GetByRefreshToken(context.Background(), "stale")
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	_, err = repo.GetByRefreshToken(context.Background(), "live")
	assert.NoError(t, err)
}
