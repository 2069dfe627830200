package repository

import (
	"context"
	"errors"

	"github.com/lojinha/catalog-api/internal/domain/entity"
)

// Sentinel errors shared by every repository implementation. Callers
// discriminate with errors.Is and translate to a transport status at the
// HTTP boundary.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

// ProductRepository defines the interface for product-related database
// operations. Update applies only the given columns and returns the row as
// stored afterwards.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	GetByID(ctx context.Context, id uint) (*entity.Product, error)
	Create(ctx context.Context, p *entity.Product) error
	Update(ctx context.Context, id uint, fields map[string]any) (*entity.Product, error)
	Delete(ctx context.Context, id uint) error
}
