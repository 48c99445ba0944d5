package main

import (
	"log"
	"os"

	staff "fasol.store/staffapp/staff/core"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// One-shot schema creation and seeding against the DSN from the
// environment.
func main() {
	dsn := os.Getenv("DSN")
	if dsn == "" {
		log.Fatal("DSN not set")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}

	if err := staff.Bootstrap(db); err != nil {
		log.Fatal(err)
	}
	log.Println("Done.")
}
