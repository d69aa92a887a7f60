// @title Fitmate API
// @description API for fitness tracking app "Fitmate"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/grebnev/fitmate/internal/api"
	"github.com/grebnev/fitmate/internal/repository"
	"github.com/grebnev/fitmate/internal/service"
	"github.com/grebnev/fitmate/pkg/cleanup"
	"github.com/grebnev/fitmate/pkg/config"
	jwtservice "github.com/grebnev/fitmate/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	resultsRepo := repository.NewResultsRepo(&dbCfg)
	userService := service.NewUserService(repository.NewUsersRepo(&dbCfg))
	resultsService := service.NewResultsService(resultsRepo)
	stepsService := service.NewStepsService(repository.NewStepsRepo(&dbCfg))
	achievementsService := service.NewAchievementsService(repository.NewAchievementsRepo(&dbCfg), resultsRepo)
	serv := api.New(&api.ServicesList{
		UserService:         userService,
		ResultsService:      resultsService,
		StepsService:        stepsService,
		AchievementsService: achievementsService,
		JwtService:          jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
