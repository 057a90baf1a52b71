package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akinalpfdn/kimlik/models"
	"github.com/akinalpfdn/kimlik/pkg"
	"github.com/akinalpfdn/kimlik/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthService interface'i — kimlik doğrulama iş mantığı.
// Handler bu interface'e bağımlıdır, concrete struct'a değil.
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, refreshToken string) error
	LogoutAll(ctx context.Context, userID string) error
}

// LoginResult, başarılı login sonrası dönen token çifti ve kimlik.
type LoginResult struct {
	Identity     models.Identity
	AccessToken  string
	RefreshToken string
}

// authService, AuthService implementasyonu.
type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	tokens      TokenService
	bcryptCost  int
}

// NewAuthService, constructor.
func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	tokens TokenService,
	bcryptCost int,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokens:      tokens,
		bcryptCost:  bcryptCost,
	}
}

// Register, yeni kullanıcı kaydı oluşturur.
//
// Akış: validation → bcrypt hash → user store'a yaz.
// Dönen User'ın PasswordHash'i temizlenir — hash bu fonksiyondan yukarı
// hiçbir katmana sızmaz (json:"-" zaten serialize etmez, çift emniyet).
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err // ErrAlreadyExists olabilir
	}

	user.PasswordHash = ""
	return user, nil
}

// Login, kullanıcı girişi yapar ve token çiftini üretir.
//
// Sıralama garantisi: session kaydı DB'ye yazılmadan LoginResult dönmez —
// client'ın eline geçen her refresh token'ın store'da karşılığı vardır.
// Önceki oturumlar İPTAL EDİLMEZ: her login bağımsız yeni bir session ekler,
// aynı kullanıcının eşzamanlı cihazları birbirini düşürmez.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*LoginResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", pkg.ErrNotFound)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid password", pkg.ErrInvalidCredentials)
	}

	identity := models.IdentityOf(user)

	accessToken, err := s.tokens.IssueAccessToken(identity)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokens.IssueRefreshToken(identity)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		UserID:       user.ID,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(s.tokens.RefreshTTL()),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &LoginResult{
		Identity:     identity,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout, refresh token'ın session kaydını siler (revoke).
//
// Idempotent: kayıt zaten silinmişse veya token boşsa no-op başarıdır.
// İkinci logout çağrısı birincisiyle aynı gözlemlenebilir sonucu verir.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.sessionRepo.DeleteByRefreshToken(ctx, refreshToken)
}

// LogoutAll, kullanıcının TÜM oturumlarını iptal eder.
// Çalınan refresh token şüphesinde "her yerden çıkış" için.
func (s *authService) LogoutAll(ctx context.Context, userID string) error {
	return s.sessionRepo.DeleteByUserID(ctx, userID)
}
