package repository

import (
	"context"

	"github.com/akinalpfdn/kimlik/models"
)

// SessionRepository, refresh token oturumları için interface.
//
// Invariant: bir refresh token ancak buradaki kaydı yaşadığı sürece yeni
// access token üretebilir. DeleteByRefreshToken idempotent'tır — eşleşen
// kayıt yoksa sessizce başarılı olur (logout iki kez çağrılabilmeli).
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByRefreshToken(ctx context.Context, token string) (*models.Session, error)
	DeleteByRefreshToken(ctx context.Context, token string) error
	DeleteByUserID(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context) error
}
