package router

import (
	"net/http"

	_ "pet-care-info/docs"
	"pet-care-info/internal/adapters/datasource"
	imgadapter "pet-care-info/internal/adapters/images"
	"pet-care-info/internal/domain/care"
	"pet-care-info/internal/domain/dataset"
	"pet-care-info/internal/domain/facts"
	"pet-care-info/internal/middleware"
	"pet-care-info/internal/page"
	"pet-care-info/internal/platform/config"
	"pet-care-info/internal/platform/httpclient"
	"pet-care-info/internal/platform/logger"
	"pet-care-info/internal/ports/images"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Config config.Config
	Logger logger.Logger // nil => Discard

	// Opcionales (tests). Si no vienen se arman desde Config.
	Loader dataset.Loader
	Images images.Resolver
}

func NewRouter(opts Options) http.Handler {
	cfg := opts.Config

	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	loader := opts.Loader
	if loader == nil {
		loader = datasource.New(datasource.Options{
			HTTP:    httpclient.New(cfg.DatasetTimeout),
			Timeout: cfg.DatasetTimeout,
			Logger:  log,
		})
	}

	resolver := opts.Images
	if resolver == nil {
		resolver = imgadapter.NewResolver(httpclient.New(cfg.ImageTimeout), cfg.ImageTimeout)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Services por dataset
	careSvc := care.NewService(loader, cfg.CareData)
	factsSvc := facts.NewService(loader, cfg.FactsData)

	// Rutas
	page.RegisterRoutes(r, page.NewHandler(page.Options{
		Care:           careSvc,
		Facts:          factsSvc,
		Resolver:       resolver,
		AllowPathInput: cfg.AllowPathInput,
		Redact:         datasource.Redact,
		Logger:         log,
	}))
	care.RegisterRoutes(r, careSvc, resolver)
	facts.RegisterRoutes(r, factsSvc, resolver)

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
