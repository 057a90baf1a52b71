// Package repository, veri erişim katmanını barındırır.
//
// Her tablo için bir interface + bir SQLite implementasyonu vardır.
// Service katmanı interface'e bağımlıdır, concrete struct'a değil —
// testlerde in-memory SQLite veya fake geçilebilir.
package repository

import (
	"context"

	"github.com/akinalpfdn/kimlik/models"
)

// UserRepository, kullanıcı kayıtları için interface.
// Bu gateway user store'a yalnızca kayıt anında yazar, login anında okur;
// var olan bir kaydı asla mutate etmez.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
