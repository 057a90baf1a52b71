package models

import "time"

// Session, bir refresh token'ın sunucu tarafındaki kaydıdır.
//
// Neden refresh token DB'de tutulur?
// Access token stateless'tır — geçerliliği yalnızca imza + expiry belirler.
// Refresh token ise ÇİFT doğrulanır: imza/expiry VE bu tablodaki satırın
// varlığı. Satırı silmek token'ı anında iptal eder (revoke) — kriptografik
// ömrü kalmış olsa bile. Logout tam olarak bunu yapar.
//
// Aynı kullanıcının birden fazla canlı Session kaydı olabilir — her login
// yeni bir satır ekler, eskileri geçersiz kılmaz (eşzamanlı oturumlar).
type Session struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	RefreshToken string    `json:"-"` // API'ye gönderilmez
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}
