package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/lojinha/catalog-api/internal/domain/entity"
	"github.com/lojinha/catalog-api/internal/domain/repository"
)

type CreateProductInput struct {
	Title       string
	Description string
	Price       float64
	ImageURL    string
	IsFeatured  bool
}

// UpdateProductInput carries a partial update; nil fields are left untouched.
type UpdateProductInput struct {
	Title       *string
	Description *string
	Price       *float64
	ImageURL    *string
	IsFeatured  *bool
}

type ProductService struct {
	products repository.ProductRepository
	logger   *logrus.Logger
}

func NewProductService(products repository.ProductRepository, logger *logrus.Logger) *ProductService {
	return &ProductService{products: products, logger: logger}
}

func (s *ProductService) List(ctx context.Context) ([]entity.Product, error) {
	return s.products.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id uint) (*entity.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, in CreateProductInput) (*entity.Product, error) {
	p := &entity.Product{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		IsFeatured:  in.IsFeatured,
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{"product_id": p.ID}).Info("product created")
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, id uint, in UpdateProductInput) (*entity.Product, error) {
	fields := map[string]any{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.ImageURL != nil {
		fields["image_url"] = *in.ImageURL
	}
	if in.IsFeatured != nil {
		fields["is_featured"] = *in.IsFeatured
	}
	return s.products.Update(ctx, id, fields)
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	return s.products.Delete(ctx, id)
}
