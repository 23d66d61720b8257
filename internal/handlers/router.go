package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"winestudy/internal/middleware"
	"winestudy/internal/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Services はルーターが使うサービス一式です。
type Services struct {
	Auth     service.AuthService
	Catalog  service.CatalogService
	Study    service.StudyService
	Quiz     service.QuizService
	Progress service.ProgressService
	Tasting  service.TastingService
	Seed     service.SeedService
}

// RouterConfig はルーターの組み立てに必要な設定です。
type RouterConfig struct {
	Logger         *slog.Logger
	DB             *gorm.DB // /health の ping 用。nil なら ping しない
	Tokens         middleware.TokenVerifier
	TokenTTL       time.Duration
	AllowedOrigins []string
	CORSMaxAge     int
	AdminSeedToken string // 空なら POST /api/seed を登録しない
	Registry       *prometheus.Registry
	RequestTimeout time.Duration
}

// NewRouter はすべてのルートを明示的なテーブルとして登録します。
// パスの一部に一致するような曖昧なルートは作らず、該当しないものは 404 JSON になります。
func NewRouter(cfg RouterConfig, svc Services) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	authHandler := NewAuthHandler(svc.Auth, cfg.TokenTTL)
	catalogHandler := NewCatalogHandler(svc.Catalog)
	studyHandler := NewStudyHandler(svc.Study, svc.Quiz, svc.Progress)
	tastingHandler := NewTastingHandler(svc.Tasting)

	r := chi.NewRouter()
	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))
	if cfg.Registry != nil {
		r.Use(middleware.NewHTTPMetrics(cfg.Registry).Middleware)
	}
	r.Use(middleware.CORS(cfg.AllowedOrigins, cfg.CORSMaxAge))
	r.Use(middleware.Recoverer)
	r.Use(chimiddleware.Timeout(timeout))

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Identity(cfg.Tokens))

		r.Get("/", catalogHandler.Root)

		// --- Public routes ---
		r.Route("/countries", func(r chi.Router) {
			r.Get("/", catalogHandler.ListCountries)
			r.Get("/{country_id}", catalogHandler.GetCountry)
		})
		r.Route("/regions", func(r chi.Router) {
			r.Get("/", catalogHandler.ListRegions)
			r.Get("/{region_id}", catalogHandler.GetRegion)
		})
		r.Route("/grapes", func(r chi.Router) {
			r.Get("/", catalogHandler.ListGrapes)
			r.Get("/{grape_id}", catalogHandler.GetGrape)
		})
		r.Route("/aromas", func(r chi.Router) {
			r.Get("/", catalogHandler.ListAromaTags)
			r.Get("/{tag_id}", catalogHandler.GetAromaTag)
			r.Get("/{tag_id}/grapes", catalogHandler.GrapesByAroma)
		})
		r.Get("/search", catalogHandler.Search)

		r.Route("/study", func(r chi.Router) {
			r.Get("/tracks", studyHandler.ListTracks)
			r.Get("/tracks/{track_id}", studyHandler.GetTrack)
			r.Get("/tracks/{track_id}/lessons", studyHandler.ListLessons)
			r.Get("/lessons/{lesson_id}", studyHandler.GetLesson)
			r.With(middleware.RequireIdentity).Post("/lessons/{lesson_id}/complete", studyHandler.CompleteLesson)
		})

		r.Route("/quiz", func(r chi.Router) {
			r.Get("/tracks/{track_id}/questions", studyHandler.Questions)
			r.Post("/submit", studyHandler.SubmitAnswer) // 認証は任意
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/session", authHandler.Session)
			r.Post("/logout", authHandler.Logout)
			r.With(middleware.RequireIdentity).Get("/me", authHandler.Me)
			r.With(middleware.RequireIdentity).Put("/language", authHandler.UpdateLanguage)
		})

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireIdentity)

			r.Get("/progress", studyHandler.GetProgress)
			r.Route("/tastings", func(r chi.Router) {
				r.Get("/", tastingHandler.ListTastings)
				r.Post("/", tastingHandler.CreateTasting)
				r.Get("/{tasting_id}", tastingHandler.GetTasting)
				r.Delete("/{tasting_id}", tastingHandler.DeleteTasting)
			})
		})

		if cfg.AdminSeedToken != "" && svc.Seed != nil {
			seedHandler := NewSeedHandler(svc.Seed)
			r.With(middleware.AdminToken(cfg.AdminSeedToken)).Post("/seed", seedHandler.Seed)
		}
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if cfg.DB != nil {
			sqlDB, err := cfg.DB.DB()
			if err != nil {
				middleware.GetLogger(ctx).Error("Health check failed: could not get DB object", "error", err)
				http.Error(w, "Health check failed", http.StatusInternalServerError)
				return
			}
			if err := sqlDB.PingContext(ctx); err != nil {
				middleware.GetLogger(ctx).Error("Health check failed: could not ping DB", "error", err)
				http.Error(w, "Health check failed", http.StatusInternalServerError)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if cfg.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{}))
	}

	return r
}
