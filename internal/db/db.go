package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/centurialsign/sgpg-api/internal/config"
	"github.com/centurialsign/sgpg-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	// A sequência existe antes do migrate porque os_number usa
	// nextval() como default de coluna.
	db.Exec(`CREATE SEQUENCE IF NOT EXISTS os_number_seq START 1`)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.ServiceOrder{},
		&models.OsStatusHistory{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE service_orders
        SET status = 'orcamento'
        WHERE status IS NULL OR status = ''
    `)

	return db
}
