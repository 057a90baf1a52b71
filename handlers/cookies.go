package handlers

import (
	"net/http"
	"time"
)

// Cookie isimleri — client ile sözleşme.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// SetTokenCookie, token'ı httpOnly cookie olarak yazar.
//
// HttpOnly: JavaScript cookie'yi OKUYAMAZ — XSS ile token çalınamaz.
// SameSite=Lax: cross-site POST'larda cookie gönderilmez (CSRF azaltımı).
// MaxAge token TTL'ini aynalar — cookie, token'dan uzun yaşamaz.
func SetTokenCookie(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearTokenCookie, cookie'yi siler (MaxAge=-1 → tarayıcı hemen düşürür).
func ClearTokenCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// CookieValue, request'ten cookie değerini okur; yoksa boş string döner.
// http.ErrNoCookie burada hata değildir — orchestrator "token yok" durumunu
// kendisi değerlendirir.
func CookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
