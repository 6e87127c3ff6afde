package main

import (
	"log"

	"menu-backend/internal/app"
	"menu-backend/internal/config"
	"menu-backend/internal/database"
)

func main() {
	cfg := config.Load()
	db := database.Open(cfg)

	srv := app.New(cfg, db)

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := srv.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
