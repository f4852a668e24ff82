package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-count-api/internal/application/auth"
	"github.com/jhoicas/stock-count-api/internal/application/catalog"
	"github.com/jhoicas/stock-count-api/internal/application/counts"
	"github.com/jhoicas/stock-count-api/internal/application/listing"
	"github.com/jhoicas/stock-count-api/internal/application/ports"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	ListingUC  *listing.UseCase
	CountsUC   *counts.UseCase
	SyncUC     *catalog.SyncUseCase
	CountSheet ports.CountSheetGenerator
	APIKey     string
	Log        zerolog.Logger
}

// Router registra las rutas de la app.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.AuthUC)
	app.All("/", HeadOK(), authHandler.Root)
	app.All(LoginPath, HeadOK(), authHandler.Login)

	// App embebida (requiere session token)
	embedded := app.Group("/app", HeadOK(), SessionGate(deps.AuthUC, deps.Log))

	appHandler := NewAppHandler(deps.APIKey)
	embedded.Get("/", appHandler.Shell)

	listingHandler := NewListingHandler(deps.ListingUC, deps.CountSheet)
	embedded.Get("/counts", listingHandler.Staff)
	embedded.Get("/admin", listingHandler.Admin)
	embedded.Get("/admin/export.csv", listingHandler.ExportCSV)
	embedded.Get("/admin/export.pdf", listingHandler.ExportPDF)

	countHandler := NewCountHandler(deps.CountsUC)
	embedded.Post("/counts/add", countHandler.Add)
	embedded.Post("/counts/clear", countHandler.Clear)
	embedded.Get("/counts/:variantId/history", countHandler.History)

	syncHandler := NewSyncHandler(deps.SyncUC)
	embedded.Post("/sync/products", syncHandler.Products)
}
