// Package api sets up and starts the API
// server with routing, middleware, and Swagger documentation.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/matt-dz/recipefinder/docs"
	"github.com/matt-dz/recipefinder/internal/api/middleware"
	"github.com/matt-dz/recipefinder/internal/api/routes/favorites"
	"github.com/matt-dz/recipefinder/internal/api/routes/history"
	"github.com/matt-dz/recipefinder/internal/api/routes/ping"
	"github.com/matt-dz/recipefinder/internal/api/routes/profiles"
	"github.com/matt-dz/recipefinder/internal/api/routes/recipes"
	"github.com/matt-dz/recipefinder/internal/env"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

func addDocs(r *chi.Mux) {
	swagger := httpSwagger.Handler(
		httpSwagger.URL("/api/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	)

	r.Mount("/api/swagger", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		// Handle preflight
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		// Allow GET to serve Swagger
		if req.Method == http.MethodGet {
			swagger.ServeHTTP(w, req)
			return
		}

		// Block anything else
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}))
}

func addRoutes(router *chi.Mux) {
	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", ping.HandlePing)
		r.Post("/profiles", profiles.HandleCreateProfile)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireProfile)

			r.Route("/recipes", func(r chi.Router) {
				r.Get("/search", recipes.HandleSearch)
				r.Post("/filters", recipes.HandleApplyFilters)
				r.Get("/state", recipes.HandleGetState)
				r.Get("/suggestions", recipes.HandleSuggestions)
				r.Get("/{id}", recipes.HandleGetRecipe)
			})

			r.Get("/favorites", favorites.HandleListFavorites)
			r.Put("/favorites/{id}", favorites.HandleToggleFavorite)

			r.Get("/history", history.HandleGetSearchHistory)
			r.Delete("/history", history.HandleClearSearchHistory)
			r.Get("/recently-viewed", history.HandleRecentlyViewed)
		})
	})
}

// NewRouter builds the HTTP handler for env.
func NewRouter(env *env.Env) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.AddRequestID)
	router.Use(middleware.LogRequest(env.Logger))
	router.Use(middleware.InjectEnv(env))
	router.Use(middleware.AddCors)

	addRoutes(router)
	addDocs(router)
	router.Handle("/metrics", promhttp.HandlerFor(env.Registry, promhttp.HandlerOpts{}))
	return router
}

// Start godoc
//
//	@title						Recipe Finder API
//	@version					1.0
//	@description				Recipe search, filters, favorites and history.
//
//	@securityDefinitions.apikey	ProfileToken
//	@in							header
//	@name						Authorization
//
//	@host						localhost:8080
//	@BasePath					/api
func Start(ctx context.Context, env *env.Env) error {
	addr := fmt.Sprintf(":%d", env.Config.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(env),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		env.Logger.Info(fmt.Sprintf("Listening at 0.0.0.0%s", addr))
		env.Logger.Info(fmt.Sprintf("Swagger UI available at http://0.0.0.0%s/api/swagger/index.html", addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	env.Logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
