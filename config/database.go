package config

import (
	"fmt"
	"log"
	"os"

	"payroll/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func buildDSN() string {
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		return dsn
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		GetEnvDefault("DB_HOST", "localhost"),
		GetEnvDefault("DB_USER", "postgres"),
		GetEnvDefault("DB_PASSWORD", "postgres"),
		GetEnvDefault("DB_NAME", "payroll"),
		GetEnvDefault("DB_PORT", "5432"),
		GetEnvDefault("DB_SSLMODE", "disable"),
	)
}

func ConnectDB() {
	var err error

	DB, err = gorm.Open(postgres.Open(buildDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to db: %v", err)
	}

	if err := DB.AutoMigrate(
		&models.Employee{},
		&models.User{},
		&models.Payroll{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	log.Println("Successfully connected to db")
}
