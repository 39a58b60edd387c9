package main

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/nuradoo/go-oferta/internal/config"
	"github.com/nuradoo/go-oferta/internal/handlers"
	"github.com/nuradoo/go-oferta/internal/httpx"
	"github.com/nuradoo/go-oferta/internal/pdf"
	"github.com/nuradoo/go-oferta/internal/services"
	"github.com/nuradoo/go-oferta/internal/storage"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux *http.ServeMux
}

// NewApp creates a new application with all routes configured.
func NewApp(db *gorm.DB, cfg *config.Config) *App {
	offers := handlers.NewOfferHandler(
		storage.NewStore(db),
		services.NewOfferService(),
		pdf.NewGenerator(cfg.App.LogoPath),
	)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("GET /api/offers", offers.List)
	mux.HandleFunc("POST /api/offers", offers.Create)
	mux.HandleFunc("GET /api/offers/{id}", offers.Get)
	mux.HandleFunc("PUT /api/offers/{id}", offers.Update)
	mux.HandleFunc("DELETE /api/offers/{id}", offers.Delete)
	mux.HandleFunc("GET /api/offers/{id}/pdf", offers.PDF)
	mux.HandleFunc("GET /api/catalog", offers.Catalog)

	return &App{mux: mux}
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}
