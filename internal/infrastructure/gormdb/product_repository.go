package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lojinha/catalog-api/internal/domain/entity"
	"github.com/lojinha/catalog-api/internal/domain/repository"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	products := make([]entity.Product, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*entity.Product, error) {
	p := &entity.Product{}
	if err := r.db.WithContext(ctx).First(p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Update applies the given columns to an existing product. A missing target
// row is reported as ErrNotFound, never silently upserted.
func (r *ProductRepository) Update(ctx context.Context, id uint, fields map[string]any) (*entity.Product, error) {
	p := &entity.Product{}
	if err := r.db.WithContext(ctx).First(p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(p).Updates(fields).Error; err != nil {
			return nil, err
		}
		// Re-read so the caller gets exactly what is stored.
		if err := r.db.WithContext(ctx).First(p, id).Error; err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
