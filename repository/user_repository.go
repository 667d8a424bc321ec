// Package repository, veritabanı erişim katmanını tanımlar.
//
// Repository Pattern: veritabanı işlemlerini (CRUD) soyutlayan tasarım
// kalıbıdır. Service katmanı doğrudan SQL yazmaz — repository interface'i
// üzerinden çalışır.
//
// Neden interface?
//  1. Test: fake repository yazarak DB olmadan test edebilirsin
//  2. Esneklik: SQLite'tan PostgreSQL'e geçiş sadece yeni implementasyon ister
//  3. Dependency Inversion: service, concrete struct'a değil interface'e bağımlı
//
// Go'da interface implicit'tir — struct, method set'i karşılıyorsa otomatik
// olarak interface'i sağlar; "implements" keyword'üne gerek yok.
package repository

import (
	"context"

	"github.com/baran/kimlik/models"
)

// UserRepository, kullanıcı veritabanı işlemleri için interface.
//
// Her method context.Context alır — client bağlantıyı koparırsa devam eden
// DB sorgusu da iptal olur, connection pool boşa meşgul edilmez.
type UserRepository interface {
	// Create, kullanıcıyı ekler; DB'nin atadığı ID ve CreatedAt değerlerini
	// user üzerine yazar. Username çakışmasında pkg.ErrAlreadyExists döner.
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// Delete, kullanıcıyı siler. Kayıt yoksa pkg.ErrNotFound döner.
	Delete(ctx context.Context, id int64) error
}
