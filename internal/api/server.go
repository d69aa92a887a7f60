package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grebnev/fitmate/internal/service"
)

type Server struct {
	mx                  *chi.Mux
	userService         service.UserServiceI
	resultsService      service.ResultsServiceI
	stepsService        service.StepsServiceI
	achievementsService service.AchievementsServiceI
	jwtService          JWTServiceI
}

type ServicesList struct {
	UserService         service.UserServiceI
	ResultsService      service.ResultsServiceI
	StepsService        service.StepsServiceI
	AchievementsService service.AchievementsServiceI
	JwtService          JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                  chi.NewMux(),
		userService:         servicesOptions.UserService,
		resultsService:      servicesOptions.ResultsService,
		stepsService:        servicesOptions.StepsService,
		achievementsService: servicesOptions.AchievementsService,
		jwtService:          servicesOptions.JwtService,
	}
}

func (s *Server) Run(addr string) error {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)
			r.Get("/auth/me", s.GetProfile)
			r.Get("/referral", s.GetReferralInfo)
			r.Post("/exercise-results", s.SaveResult)
			r.Get("/exercise-results", s.GetResults)
			r.Get("/exercise-results/stats", s.GetStats)
			r.Post("/steps", s.SaveSteps)
			r.Get("/steps", s.GetStepsLog)
			r.Get("/achievements", s.GetAchievements)
			r.Post("/achievements/check", s.CheckAchievements)
			r.Patch("/achievements/{id}/push-notified", s.MarkAchievementNotified)
		})
	})
	return http.ListenAndServe(addr, s.mx)
}
