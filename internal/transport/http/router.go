package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/wibes/draw-api/internal/application/participant"
	"github.com/wibes/draw-api/internal/card"
	"github.com/wibes/draw-api/internal/config"
	"github.com/wibes/draw-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/wibes/draw-api/internal/infrastructure/jwt"
	"github.com/wibes/draw-api/internal/infrastructure/sns"
	"github.com/wibes/draw-api/internal/prize"
	"github.com/wibes/draw-api/internal/transport/http/handler"
	appmiddleware "github.com/wibes/draw-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	ParticipantRepo  *dynamo.ParticipantRepo
	RegistrationRepo *dynamo.RegistrationRepo
	Cards            *card.Generator
	JWTProvider      *jwtinfra.Provider
	PrizeTable       *prize.Table
	SMSSender        sns.SMSSender
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"x-auth-token"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10, applied to the public registration endpoint.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	svc := participant.NewService(participant.ServiceDeps{
		ParticipantRepo:  deps.ParticipantRepo,
		RegistrationRepo: deps.RegistrationRepo,
		Tokens:           deps.JWTProvider,
		Cards:            deps.Cards,
		Prizes:           deps.PrizeTable,
		SMSSender:        deps.SMSSender,
	})

	participantH := handler.NewParticipantHandler(svc)
	healthH := handler.NewHealthHandler()

	// ── Public routes (no auth) ──────────────────────────────────────────
	r.Get("/health-check/{action}", healthH.Ping)
	r.With(sensitiveRL.Limit).Post("/user", participantH.Register)

	// POST /number validates its token in the handler so token failures keep
	// the path's observed 500 contract rather than the middleware's 401.
	r.Post("/number", participantH.SubmitNumber)

	// ── Authenticated routes ─────────────────────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.Auth(deps.JWTProvider))

		r.Get("/users", participantH.List)
		r.Get("/card", participantH.Card)
	})

	return r
}
