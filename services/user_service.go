package services

import (
	"context"

	"github.com/baran/kimlik/models"
	"github.com/baran/kimlik/repository"
)

// UserService, kullanıcı kayıtları üzerindeki CRUD işlemlerini sunar.
// İnce bir katman — iş kuralı yok, repository'ye delege eder.
// Yine de interface olarak var: handler'ı repository'den izole eder ve
// ileride eklenecek kurallar (ör: soft delete) için yer bırakır.
type UserService interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService, constructor.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetByID, kullanıcıyı döner. Kayıt yoksa pkg.ErrNotFound (→ 404).
func (s *userService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// Delete, kullanıcıyı siler. Kayıt yoksa pkg.ErrNotFound (→ 404).
func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}
