package database

import (
	"log"

	"kiosk-backend/internal/config"
	"kiosk-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	err = DB.AutoMigrate(
		// Referans hiyerarşisi önce (FK sırası için)
		&models.Region{},
		&models.Area{},
		&models.FC{},
		&models.Corporation{},
		&models.Branch{},
		&models.Partner{},
		&models.LeaseCompany{},
		&models.User{},
		// Varlıklar ve süreçler
		&models.Kiosk{},
		&models.LocationHistory{},
		&models.OrderProcess{},
		&models.DeliveryProcess{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}
