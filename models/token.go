package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims, JWT token'ın içindeki veriler (payload).
//
// Hem access hem refresh token aynı claims şeklini taşır: {id, name, email}
// kimlik snapshot'ı + standart iat/exp alanları. İkisini ayıran şey imzalayan
// secret'tır — access secret ile imzalanmış bir token refresh olarak
// doğrulanamaz (ve tersi).
//
// Bu struct models paketinde tanımlanır çünkü birden fazla katman
// (services, middleware, handlers) tarafından kullanılır — her katman
// models'e bağımlı olabilir, circular dependency oluşmaz.
type TokenClaims struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Identity, claims içindeki kimlik snapshot'ını döner.
func (c *TokenClaims) Identity() Identity {
	return Identity{
		ID:    c.UserID,
		Name:  c.Name,
		Email: c.Email,
	}
}
