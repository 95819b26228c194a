package router

import (
	"net/http"

	mem "penguin-api/internal/adapters/storage/memory"
	_ "penguin-api/internal/docs"
	"penguin-api/internal/domain/penguins"
	"penguin-api/internal/middleware"
	"penguin-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => Nop

	// Opcional: el store abierto por el comando serve. Si no viene, in-memory.
	Penguins penguins.Repository
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	repo := opts.Penguins
	if repo == nil {
		repo = mem.NewPenguinRepo()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	penguinsSvc := penguins.NewService(repo)
	penguins.RegisterRoutes(r, penguinsSvc, log.With(map[string]any{"component": "penguins"}))

	return r
}
