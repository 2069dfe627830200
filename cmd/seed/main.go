package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lojinha/catalog-api/config"
	"github.com/lojinha/catalog-api/internal/domain/entity"
	"github.com/lojinha/catalog-api/internal/infrastructure/gormdb"
)

type seedProduct struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	IsFeatured  bool    `json:"isFeatured"`
}

// Seeds the product table from the bundled JSON fixture: clears existing
// rows, bulk-inserts, skips rows that would violate uniqueness.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := gormdb.Open(cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBIdleConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer func() { _ = gormdb.Close(db) }()

	raw, err := os.ReadFile(cfg.SeedFile)
	if err != nil {
		log.Fatalf("failed to read fixture %s: %v", cfg.SeedFile, err)
	}
	var fixture []seedProduct
	if err := json.Unmarshal(raw, &fixture); err != nil {
		log.Fatalf("failed to parse fixture: %v", err)
	}

	rows := make([]entity.Product, 0, len(fixture))
	for _, p := range fixture {
		rows = append(rows, entity.Product{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Price:       p.Price,
			ImageURL:    p.ImageURL,
			IsFeatured:  p.IsFeatured,
		})
	}

	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.Product{}).Error; err != nil {
		log.Fatalf("failed to clear products: %v", err)
	}

	res := db.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(rows, 100)
	if res.Error != nil {
		log.Fatalf("failed to insert products: %v", res.Error)
	}

	// Fixture rows carry explicit ids, so realign the sequence for
	// store-assigned ids on future inserts.
	if len(rows) > 0 {
		if err := db.Exec(`SELECT setval(pg_get_serial_sequence('products', 'id'), (SELECT MAX(id) FROM products))`).Error; err != nil {
			log.Fatalf("failed to realign products id sequence: %v", err)
		}
	}

	log.Printf("seeded %d products from %s", res.RowsAffected, cfg.SeedFile)
}
