package main

import (
	"log"

	"github.com/ShubhamJagtap-29/gamersden/config"
	_ "github.com/ShubhamJagtap-29/gamersden/docs"
	"github.com/ShubhamJagtap-29/gamersden/internal/jobs"
	"github.com/ShubhamJagtap-29/gamersden/internal/shop"
	"github.com/ShubhamJagtap-29/gamersden/internal/team"
	"github.com/ShubhamJagtap-29/gamersden/internal/tournament"
	"github.com/ShubhamJagtap-29/gamersden/internal/user"
	"github.com/ShubhamJagtap-29/gamersden/routes"
)

// @title GamersDen REST API
// @version 1.0
// @description Community platform server for esports teams, tournaments and merch.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{},
		&team.Team{}, &team.TeamMember{}, &team.TeamApplication{},
		&tournament.Tournament{}, &tournament.Registration{},
		&shop.Product{}, &shop.Order{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	jobs.StartScheduler(config.DB)

	r := routes.SetupRoutes(config.DB, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
