// Package models, uygulamanın domain modellerini tanımlar.
//
// Model, veritabanındaki bir tablonun Go karşılığıdır; aynı zamanda API'den
// gelen/giden verilerin şeklini de belirler. `json:"..."` tag'leri struct
// field'larının JSON'a nasıl serialize/deserialize edileceğini söyler.
package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// User, kayıtlı bir kullanıcıyı temsil eder.
//
// PasswordHash `json:"-"` ile işaretlidir — hash hiçbir API response'una
// DAHİL EDİLMEZ (güvenlik!). Serialize etmeden önce ayrıca sıfırlanır,
// çift emniyet.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity, her token payload'ına gömülen değişmez kimlik fotoğrafıdır.
//
// Login anında user kaydından BİR KEZ alınır, token ömrü boyunca implicit
// olarak tekrar okunmaz. Kullanıcı adını değiştirirse yeni token'a kadar
// eski snapshot taşınır — bilinçli bir tasarım.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// IdentityOf, user kaydından token'lara gömülecek snapshot'ı çıkarır.
func IdentityOf(u *User) Identity {
	return Identity{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// emailRegex, basit bir email şekil kontrolü. RFC 5322'nin tamamını kovalamak
// yerine "bir şey @ bir şey . bir şey" yeterli — asıl doğrulama kullanıcının
// login olabilmesidir.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegisterRequest, kayıt olurken gelen veri.
// PasswordHash yerine Password alırız — hash'leme service katmanında yapılır.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate, RegisterRequest'in geçerli olup olmadığını kontrol eder.
// Kurallar:
//   - Name: boş olamaz, max 100 karakter
//   - Email: boş olamaz, email şeklinde olmalı
//   - Password: minimum 8 karakter
func (r *RegisterRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if utf8.RuneCountInString(r.Name) > 100 {
		return fmt.Errorf("name must be at most 100 characters")
	}

	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(r.Email) {
		return fmt.Errorf("email must be valid")
	}

	if utf8.RuneCountInString(r.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	return nil
}

// LoginRequest, giriş yaparken gelen veri.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate, LoginRequest'in geçerli olup olmadığını kontrol eder.
//
// Kural kaynak davranışla birebir: email boşsa veya password 8 karakterden
// kısaysa geçersizdir. Login'de email şekil kontrolü YAPILMAZ — eşleşmeyen
// email zaten "user not found" olarak döner.
func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" || utf8.RuneCountInString(r.Password) < 8 {
		return fmt.Errorf("email should be valid and password should have minimum 8 characters")
	}
	return nil
}
