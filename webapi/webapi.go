// Package webapi wires the Fiber application: middleware, routes and the
// problem-details error envelope.
package webapi

import (
	countrysvc "github.com/amirasaad/countrypulse/pkg/service/country"
	refreshsvc "github.com/amirasaad/countrypulse/pkg/service/refresh"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Deps collects everything the HTTP layer needs. The dependencies are built
// once at startup and injected; handlers never reach for globals.
type Deps struct {
	CountrySvc *countrysvc.Service
	RefreshSvc *refreshsvc.Service
	ImagePath  string
}

// New builds the Fiber app with all routes and middleware registered.
func New(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return ErrorResponseJSON(c, fiber.StatusInternalServerError, "Internal server error", "")
		},
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())

	Routes(app, deps.CountrySvc, deps.RefreshSvc, deps.ImagePath)
	return app
}
