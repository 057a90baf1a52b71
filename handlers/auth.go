// Package handlers, HTTP request/response işlemlerini yönetir.
//
// Handler'ın görevi ince (thin) olmalı:
// 1. Request body'yi / cookie'leri parse et
// 2. Service katmanını çağır
// 3. Sonucu HTTP response olarak döndür
//
// Handler ASLA iş mantığı içermez, ASLA doğrudan DB'ye erişmez.
// Tüm akıl service'de, handler sadece köprü.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akinalpfdn/kimlik/models"
	"github.com/akinalpfdn/kimlik/pkg"
	"github.com/akinalpfdn/kimlik/services"
)

// AuthHandler, auth endpoint'lerini yöneten struct.
type AuthHandler struct {
	authService services.AuthService
	tokens      services.TokenService
}

// NewAuthHandler, constructor.
// TokenService sadece cookie TTL'leri için gerekli — token üretimi service'te kalır.
func NewAuthHandler(authService services.AuthService, tokens services.TokenService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokens:      tokens,
	}
}

// Register godoc
// POST /register
// Body: { "name": "...", "email": "...", "password": "..." }
//
// Başarıda 201 + oluşturulan kullanıcı döner. PasswordHash response'ta
// YOKTUR — service katmanı temizler, json:"-" serialize etmez.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, pkg.APIResponse{
		Message: "user register success",
		Data:    user,
	})
}

// Login godoc
// POST /login
// Body: { "email": "...", "password": "..." }
//
// Başarıda access ve refresh token httpOnly cookie olarak set edilir,
// body sadece mesaj taşır — token'lar JSON'a yazılmaz.
//
// Kaynak davranış uyumluluğu: validation hatası (boş email / kısa şifre)
// hata status'u DEĞİL, 200 + açıklayıcı mesaj döner. Bilinçli olarak
// korunan bir tutarsızlık — mevcut client'lar bu yanıtı bekliyor.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, pkg.ErrBadRequest) {
			pkg.Message(w, http.StatusOK, "email should be valid and password should have minimum 8 characters")
			return
		}
		pkg.Error(w, err)
		return
	}

	SetTokenCookie(w, AccessTokenCookie, result.AccessToken, h.tokens.AccessTTL())
	SetTokenCookie(w, RefreshTokenCookie, result.RefreshToken, h.tokens.RefreshTTL())

	pkg.Message(w, http.StatusOK, "login success")
}

// Logout godoc
// POST /logout
// Cookie: refreshToken
//
// Session kaydını siler, iki cookie'yi de temizler. Idempotent:
// cookie yoksa veya kayıt zaten silinmişse yine 200 döner.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	refreshToken := CookieValue(r, RefreshTokenCookie)

	if err := h.authService.Logout(r.Context(), refreshToken); err != nil {
		pkg.Error(w, err)
		return
	}

	ClearTokenCookie(w, AccessTokenCookie)
	ClearTokenCookie(w, RefreshTokenCookie)

	pkg.Message(w, http.StatusOK, "logout success")
}

// LogoutAll godoc
// POST /logout-all
// Auth middleware gerektirir — kullanıcının TÜM oturumlarını iptal eder.
func (h *AuthHandler) LogoutAll(w http.ResponseWriter, r *http.Request) {
	identity, ok := r.Context().Value(IdentityContextKey).(models.Identity)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "please re-login")
		return
	}

	if err := h.authService.LogoutAll(r.Context(), identity.ID); err != nil {
		pkg.Error(w, err)
		return
	}

	ClearTokenCookie(w, AccessTokenCookie)
	ClearTokenCookie(w, RefreshTokenCookie)

	pkg.Message(w, http.StatusOK, "all sessions revoked")
}

// Me godoc
// GET /users/me
// Auth middleware gerektirir — token'daki kimlik snapshot'ını döner.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := r.Context().Value(IdentityContextKey).(models.Identity)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "please re-login")
		return
	}

	pkg.Data(w, http.StatusOK, identity)
}

// contextKey, context'te değer taşımak için kullanılan key tipi.
// String key kullanmak paketler arası çakışmaya neden olabilir —
// özel tip namespace collision'ı önler.
type contextKey string

// IdentityContextKey, auth middleware'ın doğruladığı kimliği taşır.
// Handler'lar r.Context().Value(IdentityContextKey).(models.Identity) ile erişir.
const IdentityContextKey contextKey = "identity"
