package http

import (
	nethttp "net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Khatabook-api/internal/application/dto"
	"github.com/jhoicas/Khatabook-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC *usecase.LedgerUseCase
	ReportUC *usecase.ReportUseCase
	// SnapshotUC opcional: si es nil no se registra /api/snapshots.
	SnapshotUC *usecase.SnapshotUseCase
	// Metrics opcional: si es nil no se exponen /metrics ni contadores HTTP.
	Metrics interface {
		requestObserver
		Handler() nethttp.Handler
	}
}

// NewApp crea la aplicación Fiber con recover, /health, /metrics y las rutas de la API.
func NewApp(name string, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return c.Status(code).JSON(dto.ErrorResponse{Code: nethttp.StatusText(code), Message: err.Error()})
		},
	})
	app.Use(recover.New())
	if deps.Metrics != nil {
		app.Use(RequestMetrics(deps.Metrics))
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": name})
	})

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	customerHandler := NewCustomerHandler(deps.LedgerUC)
	reportHandler := NewReportHandler(deps.ReportUC)

	// Customers
	customers := api.Group("/customers")
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Patch("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
	customers.Get("/:id/export", reportHandler.ExportCustomer)
	customers.Get("/:id/statement", reportHandler.Statement)

	// Transactions
	customers.Post("/:id/transactions", customerHandler.CreateTransaction)
	customers.Delete("/:id/transactions/:txId", customerHandler.DeleteTransaction)

	// Reportes
	api.Get("/dashboard", reportHandler.Dashboard)
	api.Get("/feed", reportHandler.Feed)
	exports := api.Group("/export")
	exports.Get("/all", reportHandler.ExportAll)
	exports.Get("/summary", reportHandler.ExportSummary)

	// Historial de snapshots
	if deps.SnapshotUC != nil {
		api.Get("/snapshots", NewSnapshotHandler(deps.SnapshotUC).History)
	}
}
