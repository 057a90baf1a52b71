// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Go'da error'lar basit değerlerdir. errors.New() ile sabit error değişkenleri
// tanımlarız; böylece karşılaştırma string yerine referans ile yapılır:
//
//	if errors.Is(err, pkg.ErrNotFound) { ... }
//
// Service katmanı bu sentinel'ları fmt.Errorf("%w: detay") ile sarar,
// handler katmanı errors.Is ile yakalayıp HTTP status'a çevirir.
package pkg

import "errors"

// Domain-level error'lar.
var (
	ErrNotFound           = errors.New("not found")
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternal           = errors.New("internal error")
)

// Token doğrulama error'ları.
//
// ErrTokenExpired ve ErrTokenInvalid AYRI tutulur çünkü renewal orchestrator
// ikisine farklı tepki verir: süresi dolmuş access token yenileme denemesini
// tetikler, imzası bozuk (sahte) token ise yenileme DENENMEDEN reddedilir.
// ErrSessionRevoked, kriptografik olarak geçerli ama DB kaydı silinmiş
// refresh token'ı işaretler.
//
// Üçü de dışarıya aynı tek tip "please re-login" yanıtı olarak yansır —
// saldırgana hangi durumda olduğunu söylemeyiz.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrSessionRevoked = errors.New("session revoked")
)
