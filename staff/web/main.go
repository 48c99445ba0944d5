package main

import (
	"context"
	"log"

	"fasol.store/staffapp/core"
	"fasol.store/staffapp/infrastructure/devops"
	staff "fasol.store/staffapp/staff/core"
	"fasol.store/staffapp/staff/web/handlers"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg, err := devops.LoadConfig("")
	if err != nil {
		log.Fatal(err)
	}

	dm, err := core.New(cfg.DSN, cfg.MaxConnections)
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()
	dm.LogLevel = core.LogLevel(cfg.LogLevel)

	// First run against an empty database creates the schema, the task
	// catalog and the demo accounts.
	if err := dm.Exec(context.Background(), func(db *gorm.DB) error {
		return staff.Bootstrap(db)
	}); err != nil {
		log.Fatal(err)
	}

	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	if err := handlers.Register(r, dm, cfg.SigningSecret); err != nil {
		log.Fatal("failed to register routes: ", err)
	}

	log.Printf("staff service listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
