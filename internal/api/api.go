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
	_ "github.com/mign0n/foodgram-project/docs"
	"github.com/mign0n/foodgram-project/internal/api/middleware"
	"github.com/mign0n/foodgram-project/internal/api/routes/auth"
	"github.com/mign0n/foodgram-project/internal/api/routes/ingredients"
	"github.com/mign0n/foodgram-project/internal/api/routes/ping"
	"github.com/mign0n/foodgram-project/internal/api/routes/recipes"
	"github.com/mign0n/foodgram-project/internal/api/routes/users"
	"github.com/mign0n/foodgram-project/internal/env"
	"github.com/mign0n/foodgram-project/internal/role"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"
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
	r.Get("/api/swagger/*", swagger.ServeHTTP)
}

func addRoutes(router *chi.Mux, e *env.Env) {
	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", ping.HandlePing)
		r.Post("/auth/login", auth.HandleLogin)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AuthorizeRequest(role.RoleAdmin))
			r.Post("/users", users.HandleCreateUser)
		})

		r.Route("/ingredients", func(r chi.Router) {
			r.Get("/", ingredients.ListIngredients)
			r.Get("/{ingredientID}", ingredients.GetIngredient)
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Use(middleware.AuthorizeRequest(role.RoleUser))

			r.Post("/", recipes.CreateRecipe)
			r.With(middleware.RateLimit(e.Config.RateLimit)).
				Get("/download_shopping_cart", recipes.DownloadShoppingCart)

			r.Route("/{recipeID}", func(r chi.Router) {
				r.Get("/", recipes.GetRecipe)
				r.Delete("/", recipes.DeleteRecipe)
				r.Post("/shopping_cart", recipes.AddToShoppingCart)
				r.Delete("/shopping_cart", recipes.RemoveFromShoppingCart)
				r.Post("/favorite", recipes.AddToFavorites)
				r.Delete("/favorite", recipes.RemoveFromFavorites)
			})
		})
	})
}

// NewRouter builds the full handler tree for e.
func NewRouter(e *env.Env) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.AddRequestID)
	router.Use(middleware.LogRequest(e.Logger))
	router.Use(middleware.InjectEnv(e))
	router.Use(middleware.Cors(e.Config))

	addRoutes(router, e)
	addDocs(router)
	router.Handle("/metrics", promhttp.Handler())
	return router
}

// Start godoc
//
//	@title						Foodgram API
//	@version					1.0
//	@description				Recipes, favorites and shopping lists.
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//
//	@BasePath					/api
func Start(ctx context.Context, e *env.Env) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", e.Config.Server.Port),
		Handler:           NewRouter(e),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		e.Logger.InfoContext(gctx, fmt.Sprintf("listening at 0.0.0.0:%d", e.Config.Server.Port))
		e.Logger.InfoContext(gctx, fmt.Sprintf("swagger UI available at %s/api/swagger/index.html", e.Config.HostOrigin))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		e.Logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
