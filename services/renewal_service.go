package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/akinalpfdn/kimlik/models"
	"github.com/akinalpfdn/kimlik/pkg"
	"github.com/akinalpfdn/kimlik/repository"
)

// RenewalService, korumalı kaynak erişim kararını veren state machine.
//
// Her request için karar BİR KEZ verilir, retry yoktur. Olası durumlar:
//
//	access var, doğrulanıyor        → ACCEPT
//	access var, imza bozuk          → REJECT (yenileme DENENMEZ — sahte token
//	                                  sahibine refresh yolu açılmaz)
//	access yok veya süresi dolmuş   → RENEW:
//	    refresh yok                 → REJECT
//	    refresh doğrulanamıyor      → REJECT
//	    session kaydı silinmiş      → REJECT (revoked)
//	    hepsi tamam                 → yeni access token üret, ACCEPT
//
// REJECT her durumda pkg.ErrUnauthorized sarmalı döner; handler sınırında tek
// tip "please re-login" yanıtına çevrilir. Revoked/expired/forged ayrımı
// dışarı SIZMAZ — iç neden sadece log'a yazılır.
type RenewalService interface {
	// Authorize, cookie'lerden gelen token çiftini değerlendirir.
	// Başarıda kimliği ve — yenileme yapıldıysa — yeni access token'ı döner.
	Authorize(ctx context.Context, accessToken, refreshToken string) (*AccessDecision, error)
}

// AccessDecision, kabul edilen bir request'in sonucu.
// NewAccessToken boş değilse orchestrator silent renewal yapmıştır ve
// handler'ın token'ı cookie olarak client'a geri yazması gerekir.
type AccessDecision struct {
	Identity       models.Identity
	NewAccessToken string
}

// renewalService, RenewalService implementasyonu.
type renewalService struct {
	tokens      TokenService
	sessionRepo repository.SessionRepository
}

// NewRenewalService, constructor.
func NewRenewalService(tokens TokenService, sessionRepo repository.SessionRepository) RenewalService {
	return &renewalService{
		tokens:      tokens,
		sessionRepo: sessionRepo,
	}
}

func (s *renewalService) Authorize(ctx context.Context, accessToken, refreshToken string) (*AccessDecision, error) {
	if accessToken != "" {
		claims, err := s.tokens.VerifyAccessToken(accessToken)
		if err == nil {
			// Access token geçerli — kaynak servis edilir, yenileme yok.
			return &AccessDecision{Identity: claims.Identity()}, nil
		}

		// İmzası bozuk token ile renewal path'ine GİRİLMEZ. Süresi dolmuş
		// token ise meşru bir durumdur — client'ın suçu yok, renewal dene.
		if !errors.Is(err, pkg.ErrTokenExpired) {
			log.Printf("[renewal] access token rejected: %v", err)
			return nil, fmt.Errorf("%w: access token invalid", pkg.ErrUnauthorized)
		}
	}

	// RENEW: access token yok veya süresi dolmuş.
	return s.renew(ctx, refreshToken)
}

// renew, geçerli ve iptal edilmemiş bir refresh token'dan yeni access token üretir.
func (s *renewalService) renew(ctx context.Context, refreshToken string) (*AccessDecision, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("%w: no refresh token", pkg.ErrUnauthorized)
	}

	// 1. Kriptografik doğrulama — imza + expiry.
	if _, err := s.tokens.VerifyRefreshToken(refreshToken); err != nil {
		log.Printf("[renewal] refresh token rejected: %v", err)
		return nil, fmt.Errorf("%w: refresh token invalid", pkg.ErrUnauthorized)
	}

	// 2. Store doğrulaması — kayıt silinmişse token revoked demektir.
	// İmza geçerli olsa bile kabul EDİLMEZ; logout'un anlamı budur.
	if _, err := s.sessionRepo.GetByRefreshToken(ctx, refreshToken); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			log.Printf("[renewal] refresh token revoked (no session record)")
			return nil, fmt.Errorf("%w: %s", pkg.ErrUnauthorized, pkg.ErrSessionRevoked.Error())
		}
		// Store hatası yetkilendirme kararı DEĞİLDİR — 5xx olarak yüzeye çıkar.
		return nil, err
	}

	// 3. Doğrulanmış token'ın payload'ını yeni access token'a taşı.
	// Decode eksik claim'de fail closed çalışır.
	identity, err := s.tokens.Decode(refreshToken)
	if err != nil {
		log.Printf("[renewal] refresh token payload unusable: %v", err)
		return nil, fmt.Errorf("%w: refresh token invalid", pkg.ErrUnauthorized)
	}

	newAccessToken, err := s.tokens.IssueAccessToken(identity)
	if err != nil {
		return nil, fmt.Errorf("failed to issue renewed access token: %w", err)
	}

	return &AccessDecision{
		Identity:       identity,
		NewAccessToken: newAccessToken,
	}, nil
}
