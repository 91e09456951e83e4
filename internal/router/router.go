package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/cardapio-pos/web/internal/backend"
	"github.com/cardapio-pos/web/internal/cart"
	"github.com/cardapio-pos/web/internal/config"
	"github.com/cardapio-pos/web/internal/enum"
	"github.com/cardapio-pos/web/internal/handler"
	mw "github.com/cardapio-pos/web/internal/middleware"
	"github.com/cardapio-pos/web/internal/session"
	"github.com/cardapio-pos/web/internal/ws"
)

// New wires every handler into a Chi router. Authentication and role
// gating happen here, once; handlers stay pure functions of
// (session, data).
func New(cfg *config.Config, api *backend.Client, sessions *session.Manager, carts *cart.Manager) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.PublicURL, "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Public: login, register, session hydrate, logout.
	authHandler := handler.NewAuthHandler(api.Auth, sessions)
	authHandler.RegisterRoutes(r)

	// Live kitchen board (authenticates via session cookie internally).
	board := ws.NewBoard(api.Orders, sessions, ws.DefaultPollInterval)
	r.Get("/ws/cozinha", board.ServeHTTP)

	// Everything else needs a live session.
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(sessions))

		// Views shared by every role.
		menuHandler := handler.NewMenuHandler(api.Menu, sessions)
		menuHandler.RegisterViewRoutes(r)

		handler.NewOrdersHandler(api.Orders, sessions).RegisterRoutes(r)
		handler.NewDashboardHandler(api.Orders, api.Menu, sessions).RegisterRoutes(r)

		// Customer: cart and checkout.
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireRole(enum.RoleCustomer))
			handler.NewCartHandler(carts, api.Orders, sessions).RegisterRoutes(r)
		})

		// Kitchen board and status advances.
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireRole(enum.RoleKitchen, enum.RoleAdmin))
			handler.NewKitchenHandler(api.Orders, sessions).RegisterRoutes(r)
		})

		// Waitstaff board, assignment and table QR codes.
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireRole(enum.RoleWaiter, enum.RoleAdmin))
			handler.NewWaiterHandler(api.Orders, sessions, cfg.PublicURL).RegisterRoutes(r)
		})

		// Admin: menu mutations and user management.
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireRole(enum.RoleAdmin))
			menuHandler.RegisterAdminRoutes(r)
			handler.NewUsersHandler(api.Users, sessions).RegisterRoutes(r)
		})
	})

	return r
}
