// Package services, business logic katmanını barındırır.
//
// Handler (HTTP) ile Repository (DB) arasında oturan katmandır. Token üretimi,
// doğrulama, bcrypt, oturum yaşam döngüsü — tüm iş kuralları burada yaşar.
// Service ASLA http.Request/Response bilmez, ASLA doğrudan SQL çalıştırmaz.
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/akinalpfdn/kimlik/models"
	"github.com/akinalpfdn/kimlik/pkg"
	"github.com/golang-jwt/jwt/v5"
)

// TokenService, token üretme ve doğrulama API'si.
//
// Access ve refresh token'lar farklı secret ile imzalanır — VerifyAccessToken
// ile geçerli bir refresh token doğrulanamaz (ve tersi). Bu ayrım sayesinde
// secret'lardan birinin sızması diğer token sınıfını taklit etmeye yetmez.
type TokenService interface {
	IssueAccessToken(identity models.Identity) (string, error)
	IssueRefreshToken(identity models.Identity) (string, error)

	// VerifyAccessToken / VerifyRefreshToken imza + expiry doğrular.
	// Dönen hata pkg.ErrTokenExpired veya pkg.ErrTokenInvalid sarmalıdır —
	// orchestrator ikisine FARKLI tepki verir, bu yüzden exception-style
	// tek bir "geçersiz" durumuna indirgenmez.
	VerifyAccessToken(tokenString string) (*models.TokenClaims, error)
	VerifyRefreshToken(tokenString string) (*models.TokenClaims, error)

	// Decode, imza ve expiry DOĞRULAMADAN payload'daki kimliği çıkarır.
	// Tek kullanım yeri: zaten doğrulanmış bir refresh token'ın claims'ini
	// yeni access token'a taşımak. Tek başına yetkilendirme kontrolü DEĞİLDİR.
	// Zorunlu claim'lerden biri eksikse hata döner (fail closed) — eksik id
	// asla sessizce boş string olarak yeni token'a sızmaz.
	Decode(tokenString string) (models.Identity, error)

	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}

// tokenService, TokenService implementasyonu. HS256 imzalar.
type tokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewTokenService, constructor.
func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) TokenService {
	return &tokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (s *tokenService) IssueAccessToken(identity models.Identity) (string, error) {
	return s.issue(identity, s.accessSecret, s.accessTTL)
}

func (s *tokenService) IssueRefreshToken(identity models.Identity) (string, error) {
	return s.issue(identity, s.refreshSecret, s.refreshTTL)
}

func (s *tokenService) VerifyAccessToken(tokenString string) (*models.TokenClaims, error) {
	return s.verify(tokenString, s.accessSecret)
}

func (s *tokenService) VerifyRefreshToken(tokenString string) (*models.TokenClaims, error) {
	return s.verify(tokenString, s.refreshSecret)
}

func (s *tokenService) AccessTTL() time.Duration  { return s.accessTTL }
func (s *tokenService) RefreshTTL() time.Duration { return s.refreshTTL }

func (s *tokenService) issue(identity models.Identity, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &models.TokenClaims{
		UserID: identity.ID,
		Name:   identity.Name,
		Email:  identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    "kimlik",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// verify, imza ve expiry kontrolü yapar, iki hata türünü ayırır.
//
// jwt/v5 hataları errors.Join ile zincirlenir — errors.Is(err,
// jwt.ErrTokenExpired) wrap edilmiş expired hatasını da yakalar. Süresi dolmuş
// ama imzası geçerli token ErrTokenExpired, diğer her şey (bozuk imza, yanlış
// secret, yanlış algoritma, çöp string) ErrTokenInvalid olur.
func (s *tokenService) verify(tokenString string, secret []byte) (*models.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.TokenClaims{}, func(token *jwt.Token) (any, error) {
		// alg header'ına güvenme — HMAC dışı bir metod görülürse reddet.
		// ("none" veya RS256 downgrade saldırılarına karşı)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %s", pkg.ErrTokenExpired, err.Error())
		}
		return nil, fmt.Errorf("%w: %s", pkg.ErrTokenInvalid, err.Error())
	}

	claims, ok := token.Claims.(*models.TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: unexpected claims type", pkg.ErrTokenInvalid)
	}

	return claims, nil
}

func (s *tokenService) Decode(tokenString string) (models.Identity, error) {
	claims := &models.TokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return models.Identity{}, fmt.Errorf("%w: %s", pkg.ErrTokenInvalid, err.Error())
	}

	// Fail closed: zorunlu kimlik claim'lerinden biri eksikse token'ı reddet.
	if claims.UserID == "" || claims.Name == "" || claims.Email == "" {
		return models.Identity{}, fmt.Errorf("%w: missing identity claims", pkg.ErrTokenInvalid)
	}

	return claims.Identity(), nil
}
