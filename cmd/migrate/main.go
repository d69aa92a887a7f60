// Applies database migrations and seeds the achievement catalog.
// Run before the first api start and after every deploy that adds
// migrations or catalog entries.
package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"

	"github.com/grebnev/fitmate/internal/repository"
	"github.com/grebnev/fitmate/internal/service"
	"github.com/grebnev/fitmate/pkg/config"
)

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	conn, err := sql.Open("postgres", dbCfg.ConnString()+"?sslmode=disable")
	if err != nil {
		log.Fatal("opening db connection error: " + err.Error())
	}
	migrationsDir := cfg.GetStringDefault("MIGRATIONS_DIR", "./migrations")
	if err = goose.Up(conn, migrationsDir); err != nil {
		log.Fatal("applying migrations error: " + err.Error())
	}
	conn.Close()

	achievementsRepo := repository.NewAchievementsRepo(&dbCfg)
	resultsRepo := repository.NewResultsRepo(&dbCfg)
	achievementsService := service.NewAchievementsService(achievementsRepo, resultsRepo)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	if err = achievementsService.SeedCatalog(ctx); err != nil {
		log.Fatal("seeding achievement catalog error: " + err.Error())
	}
	log.Println("migrations applied, catalog seeded")
}
