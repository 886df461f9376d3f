package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mydahanu/directory/internal/api/handlers"
	"mydahanu/directory/internal/api/middleware"
)

// Catalog is the full surface the API serves from.
type Catalog interface {
	handlers.CategoryStore
	handlers.ServiceStore
	handlers.BannerStore
	handlers.SnapshotStore
}

// Session is the signed-in user the API authenticates against.
type Session interface {
	handlers.SessionStore
	middleware.AdminChecker
}

// NewRouter wires the HTTP routes. Mutations sit behind RequireAdmin.
func NewRouter(catalog Catalog, session Session, fetcher handlers.SnapshotFetcher) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	r.Method(http.MethodGet, "/health", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	categoryHandler := handlers.NewCategoryHandler(catalog)
	serviceHandler := handlers.NewServiceHandler(catalog)
	bannerHandler := handlers.NewBannerHandler(catalog)
	snapshotHandler := handlers.NewSnapshotHandler(catalog, fetcher)
	authHandler := handlers.NewAuthHandler(session)

	admin := middleware.RequireAdmin(session)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categoryHandler.ListCategories)
			r.With(admin).Post("/", categoryHandler.CreateCategory)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", categoryHandler.GetCategory)
				r.With(admin).Patch("/", categoryHandler.UpdateCategory)
				r.With(admin).Delete("/", categoryHandler.DeleteCategory)

				r.With(admin).Post("/subcategories", categoryHandler.CreateSubcategory)
				r.With(admin).Patch("/subcategories/{subId}", categoryHandler.UpdateSubcategory)
				r.With(admin).Delete("/subcategories/{subId}", categoryHandler.DeleteSubcategory)
			})
		})

		r.Get("/subcategories/{id}", categoryHandler.GetSubcategory)
		r.Get("/subcategories/{id}/services", categoryHandler.ListSubcategoryServices)

		r.Route("/services", func(r chi.Router) {
			r.Get("/", serviceHandler.ListServices)
			r.Get("/featured", serviceHandler.ListFeatured)
			r.With(admin).Post("/", serviceHandler.CreateService)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", serviceHandler.GetService)
				r.With(admin).Patch("/", serviceHandler.UpdateService)
				r.With(admin).Delete("/", serviceHandler.DeleteService)
			})
		})

		r.Route("/banners", func(r chi.Router) {
			r.Get("/", bannerHandler.ListBanners)
			r.With(admin).Post("/", bannerHandler.CreateBanner)
			r.With(admin).Delete("/{id}", bannerHandler.DeleteBanner)
		})

		r.Get("/stats", snapshotHandler.Stats)
		r.With(admin).Get("/export", snapshotHandler.Export)
		r.With(admin).Post("/import", snapshotHandler.Import)
		r.With(admin).Post("/reset", snapshotHandler.Reset)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/register", authHandler.Register)
			r.Post("/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)
		})
	})

	return r
}
