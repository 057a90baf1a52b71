package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/akinalpfdn/kimlik/database"
	"github.com/akinalpfdn/kimlik/models"
	"github.com/akinalpfdn/kimlik/pkg"
	"github.com/akinalpfdn/kimlik/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newTestDB, her test için izole bir SQLite dosyası açar.
// t.TempDir() test bitince otomatik silinir.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"), database.Migrations())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// newTestAuthService, gerçek SQLite repo'ları ile service stack'i kurar.
// bcrypt.MinCost testlerde yeterli — work factor davranışı değiştirmez.
func newTestAuthService(t *testing.T) (AuthService, repository.SessionRepository, repository.UserRepository) {
	t.Helper()

	db := newTestDB(t)
	userRepo := repository.NewSQLiteUserRepo(db.Conn)
	sessionRepo := repository.NewSQLiteSessionRepo(db.Conn)
	tokens := NewTokenService(testAccessSecret, testRefreshSecret, 5*time.Minute, time.Hour)

	return NewAuthService(userRepo, sessionRepo, tokens, bcrypt.MinCost), sessionRepo, userRepo
}

func registerReq() *models.RegisterRequest {
	return &models.RegisterRequest{
		Name:     "Alice",
		Email:    "a@x.com",
		Password: "longpassword",
	}
}

func TestAuthService_RegisterHashesPassword(t *testing.T) {
	t.Parallel()

	svc, _, userRepo := newTestAuthService(t)

	user, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)

	// Dönen kayıtta hash OLMAMALI
	assert.Empty(t, user.PasswordHash)

	// Store'daki hash orijinal şifreyi doğrulamalı ama plaintext'e eşit olmamalı
	stored, err := userRepo.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "longpassword", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("longpassword")))
}

func TestAuthService_RegisterValidation(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAuthService(t)

	tests := []struct {
		name string
		req  *models.RegisterRequest
	}{
		{"empty name", &models.RegisterRequest{Name: "", Email: "a@x.com", Password: "longpassword"}},
		{"empty email", &models.RegisterRequest{Name: "Alice", Email: "", Password: "longpassword"}},
		{"bad email shape", &models.RegisterRequest{Name: "Alice", Email: "not-an-email", Password: "longpassword"}},
		{"short password", &models.RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, pkg.ErrBadRequest)
		})
	}
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerReq())
	assert.ErrorIs(t, err, pkg.ErrAlreadyExists)
}

func TestAuthService_LoginCreatesExactlyOneSession(t *testing.T) {
	t.Parallel()

	svc, sessionRepo, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), &models.LoginRequest{Email: "a@x.com", Password: "longpassword"})
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)
	require.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "Alice", result.Identity.Name)

	// Refresh token'ın store'da karşılığı olmalı
	session, err := sessionRepo.GetByRefreshToken(context.Background(), result.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, result.Identity.ID, session.UserID)
}

func TestAuthService_LoginErrors(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "b@x.com", Password: "longpassword"})
		assert.ErrorIs(t, err, pkg.ErrNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "a@x.com", Password: "wrongpassword"})
		assert.ErrorIs(t, err, pkg.ErrInvalidCredentials)
	})

	t.Run("short password is validation error", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "a@x.com", Password: "pw"})
		assert.ErrorIs(t, err, pkg.ErrBadRequest)
	})
}

// Her login bağımsız bir session ekler — ikinci login birincinin refresh
// token'ını geçersiz kılmaz (eşzamanlı oturumlar).
func TestAuthService_ConcurrentSessionsAllowed(t *testing.T) {
	t.Parallel()

	svc, sessionRepo, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	first, err := svc.Login(context.Background(), &models.LoginRequest{Email: "a@x.com", Password: "longpassword"})
	require.NoError(t, err)

	second, err := svc.Login(context.Background(), &models.LoginRequest{Email: "a@x.com", Password: "longpassword"})
	require.NoError(t, err)

	_, err = sessionRepo.GetByRefreshToken(context.Background(), first.RefreshToken)
	assert.NoError(t, err)
	_, err = sessionRepo.GetByRefreshToken(context.Background(), second.RefreshToken)
	assert.NoError(t, err)
}

func TestAuthService_LogoutIsIdempotent(t *testing.T) {
	t.Parallel()

	svc, sessionRepo, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), &models.LoginRequest{Email: "a@x.com", Password: "longpassword"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), result.RefreshToken))

	_, err = sessionRepo.GetByRefreshToken(context.Background(), result.RefreshToken)
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	// İkinci çağrı da aynı gözlemlenebilir sonucu vermeli: hata yok
	assert.NoError(t, svc.Logout(context.Background(), result.RefreshToken))

	// Boş token da no-op başarı
	assert.NoError(t, svc.Logout(context.Background(), ""))
}

func TestAuthService_LogoutAllRevokesEverySession(t *testing.T) {
	t.Parallel()

	svc, sessionRepo, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	first, err := svc.Login(context.Background(), &models.LoginRequest{Email: "a@x.com", Password: "longpassword"})
	require.NoError(t, err)
	second, err := svc.Login(context.Background(), &models.LoginRequest{Email: "a@x.com", Password: "longpassword"})
	require.NoError(t, err)

	require.NoError(t, svc.LogoutAll(context.Background(), first.Identity.ID))

	_, err = sessionRepo.GetByRefreshToken(context.Background(), first.RefreshToken)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
	_, err = sessionRepo.GetByRefreshToken(context.Background(), second.RefreshToken)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}
