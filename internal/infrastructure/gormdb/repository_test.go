package gormdb

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lojinha/catalog-api/internal/domain/entity"
	"github.com/lojinha/catalog-api/internal/domain/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	if err := repo.Create(ctx, &entity.User{Email: "a@b.com", Password: "hash"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	err := repo.Create(ctx, &entity.User{Email: "a@b.com", Password: "hash2"})
	if !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestUserRepositoryGetByEmailNotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	_, err := repo.GetByEmail(context.Background(), "nobody@b.com")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProductRepositoryUpdatePartial(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))

	p := &entity.Product{Title: "Chair", Description: "A wooden chair", Price: 49.99, ImageURL: "x.png"}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := repo.Update(ctx, p.ID, map[string]any{"price": 39.5, "is_featured": true})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Price != 39.5 || !updated.IsFeatured {
		t.Fatalf("fields not applied: %+v", updated)
	}
	if updated.Title != "Chair" || updated.Description != "A wooden chair" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestProductRepositoryUpdateEmptyFieldSet(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))

	p := &entity.Product{Title: "Chair", Description: "A wooden chair", Price: 49.99, ImageURL: "x.png"}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repo.Update(ctx, p.ID, map[string]any{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Title != p.Title || got.Price != p.Price {
		t.Fatalf("row changed without fields: %+v", got)
	}
}

func TestProductRepositoryUpdateMissing(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	_, err := repo.Update(context.Background(), 999, map[string]any{"price": 1.0})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProductRepositoryDeleteMissing(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	err := repo.Delete(context.Background(), 999)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProductRepositoryListOrdered(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))

	for _, title := range []string{"First", "Second", "Third"} {
		p := &entity.Product{Title: title, Description: "desc desc desc", Price: 1, ImageURL: "x.png"}
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}
	products, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 3 || products[0].Title != "First" || products[2].Title != "Third" {
		t.Fatalf("unexpected listing: %+v", products)
	}
}
