package main

import (
	"log"

	"github.com/khavyaindhu/farmersupportapp/config"
	"github.com/khavyaindhu/farmersupportapp/routes"
	"github.com/khavyaindhu/farmersupportapp/services"
)

func main() {
	cfg := config.Load()
	store := config.MustOpenStore(cfg)

	session := services.NewSessionService(store)
	users := services.NewUserService(store, session)
	svc := routes.Services{
		Users:    users,
		Session:  session,
		Schemes:  services.NewSchemeService(store),
		Crops:    services.NewCropService(store),
		Visits:   services.NewVisitService(store),
		Advisory: services.NewAdvisoryService(cfg.DetectDelay),
	}

	// First-run seed data: demo accounts and the sample visit series.
	if res := users.SeedDemoUsers(); !res.Success {
		log.Printf("Seeding users: %s", res.Message)
	}
	if res := svc.Visits.SeedDemoVisits(); !res.Success {
		log.Printf("Seeding visits: %s", res.Message)
	}

	r := routes.SetupRouter(cfg, svc)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
