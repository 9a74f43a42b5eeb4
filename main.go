// @title KidsLearn API
// @version 1.0
// @description Backend for the KidsLearn family learning platform: parents
// @description assign math and reading exercises, kids answer them and earn
// @description coins and collectibles.

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"kidslearn_backend/internal/app"
	"kidslearn_backend/internal/config"
	"kidslearn_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	migrate := flag.Bool("migrate", false, "force migrations on startup, even in release mode")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("migrations complete, exiting")
		return
	}

	application.Run()
}
