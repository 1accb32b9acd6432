package main

import (
	"log"

	"github.com/zenott/boilerplate-project-exercisetracker/config"
	"github.com/zenott/boilerplate-project-exercisetracker/routes"
)

func main() {
	cfg := config.Load()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	r := routes.SetupRouter(db)

	log.Printf("Your app is listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
