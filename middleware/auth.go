// Package middleware, HTTP request pipeline'ına eklenen ara katmanları barındırır.
//
// Middleware bir fonksiyondur: func(next http.Handler) http.Handler.
// Kendi işini yapar (token değerlendir), sonra next'i çağırır.
// Reddedilen request'te next ÇAĞRILMAZ — request burada durur.
package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/akinalpfdn/kimlik/handlers"
	"github.com/akinalpfdn/kimlik/pkg"
	"github.com/akinalpfdn/kimlik/services"
)

// reloginMessage, her reddin tek tip mesajı.
//
// Revoked / expired / forged ayrımı BİLEREK yapılmaz — farklı mesajlar
// saldırgana hangi aşamada yakalandığını söyler. Debugging için iç neden
// renewal service tarafından log'lanır, response'a yazılmaz.
const reloginMessage = "please re-login"

// AuthMiddleware, cookie tabanlı token değerlendirme middleware'ı.
// Kararı RenewalService verir; middleware cookie okuma/yazma köprüsüdür.
type AuthMiddleware struct {
	renewal services.RenewalService
	tokens  services.TokenService
}

// NewAuthMiddleware, constructor.
func NewAuthMiddleware(renewal services.RenewalService, tokens services.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		renewal: renewal,
		tokens:  tokens,
	}
}

// Require, korumalı route'ları saran middleware.
//
// Akış:
// 1. accessToken ve refreshToken cookie'lerini oku (yoksa boş string)
// 2. RenewalService.Authorize ile karar al
// 3. Ret → tek tip 401; store hatası → 500 (detay sızdırmadan)
// 4. Silent renewal yapıldıysa yeni access token'ı cookie olarak geri yaz
// 5. Kimliği context'e ekle, next handler'ı çağır
//
// Hiç cookie gelmemesi de aynı 401'dir — kaynak davranıştaki "make sure you
// logged in" düz metin yolu bilinçli olarak buraya katlandı: cookie'siz
// erişim unauthenticated erişimdir, nokta.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accessToken := handlers.CookieValue(r, handlers.AccessTokenCookie)
		refreshToken := handlers.CookieValue(r, handlers.RefreshTokenCookie)

		decision, err := m.renewal.Authorize(r.Context(), accessToken, refreshToken)
		if err != nil {
			if errors.Is(err, pkg.ErrUnauthorized) {
				pkg.ErrorWithMessage(w, http.StatusUnauthorized, reloginMessage)
				return
			}
			// Store/IO hatası — yetkilendirme kararı değil, server hatası.
			pkg.ErrorWithMessage(w, http.StatusInternalServerError, "internal error")
			return
		}

		// Silent renewal: orchestrator yeni access token ürettiyse client'a
		// cookie olarak geri yaz — client bir sonraki request'te taze token taşır.
		if decision.NewAccessToken != "" {
			handlers.SetTokenCookie(w, handlers.AccessTokenCookie, decision.NewAccessToken, m.tokens.AccessTTL())
		}

		ctx := context.WithValue(r.Context(), handlers.IdentityContextKey, decision.Identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
