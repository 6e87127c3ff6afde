package database

import (
	"log"

	"menu-backend/internal/config"
	"menu-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open, Postgres bağlantısını açar ve şemayı migrate eder.
func Open(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
		// Unique index ihlalleri gorm.ErrDuplicatedKey olarak dönsün
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Menu{},
		&models.Submenu{},
		&models.Dish{},
	)
}
