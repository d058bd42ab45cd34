package webapi

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/amirasaad/countrypulse/pkg/domain"
	"github.com/amirasaad/countrypulse/pkg/dto"
	"github.com/amirasaad/countrypulse/pkg/provider"
	countrysvc "github.com/amirasaad/countrypulse/pkg/service/country"
	refreshsvc "github.com/amirasaad/countrypulse/pkg/service/refresh"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Routes registers HTTP routes for country data operations.
func Routes(app *fiber.App, countrySvc *countrysvc.Service, refreshSvc *refreshsvc.Service, imagePath string) {
	countries := app.Group("/countries")

	countries.Post("/refresh", RefreshCountries(refreshSvc))
	// Static segments must register before the :name parameter.
	countries.Get("/image", SummaryImage(imagePath))
	countries.Get("/", ListCountries(countrySvc))
	countries.Get("/:name", GetCountry(countrySvc))
	countries.Delete("/:name", DeleteCountry(countrySvc))

	app.Get("/status", Status(countrySvc))
}

// RefreshCountries triggers one refresh run.
// @Summary Refresh country data
// @Description Fetch countries and exchange rates, recompute estimates and persist the batch
// @Tags countries
// @Produce json
// @Success 200 {object} fiber.Map
// @Failure 500 {object} ProblemDetails
// @Failure 503 {object} ProblemDetails
// @Router /countries/refresh [post]
func RefreshCountries(refreshSvc *refreshsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := refreshSvc.Run(c.Context())
		var srcErr *provider.SourceError
		switch {
		case errors.As(err, &srcErr):
			return ErrorResponseJSON(c, fiber.StatusServiceUnavailable,
				"External data source unavailable",
				fmt.Sprintf("Could not fetch data from %s", srcErr.Source))
		case err != nil:
			// Storage detail is withheld from callers.
			return ErrorResponseJSON(c, fiber.StatusInternalServerError,
				"Internal server error", "")
		}
		return c.JSON(fiber.Map{
			"status":       "success",
			"refreshed_at": res.RefreshedAt.Format(time.RFC3339),
		})
	}
}

type listQuery struct {
	Region   string `query:"region"`
	Currency string `query:"currency"`
	Sort     string `query:"sort" validate:"omitempty,oneof=gdp_desc gdp_asc"`
}

// ListCountries lists persisted countries with optional filters.
// @Summary List countries
// @Description Filter by region or currency code, sort by estimated GDP
// @Tags countries
// @Produce json
// @Param region query string false "Region filter"
// @Param currency query string false "Currency code filter"
// @Param sort query string false "gdp_desc or gdp_asc"
// @Success 200 {array} dto.CountryRead
// @Failure 400 {object} ProblemDetails
// @Failure 500 {object} ProblemDetails
// @Router /countries [get]
func ListCountries(countrySvc *countrysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var q listQuery
		if err := c.QueryParser(&q); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error())
		}
		validate := validator.New()
		if err := validate.Struct(q); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error())
		}

		countries, err := countrySvc.List(c.Context(), dto.ListFilter{
			Region:   strings.TrimSpace(q.Region),
			Currency: strings.TrimSpace(q.Currency),
			Sort:     q.Sort,
		})
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusInternalServerError, "Internal server error", "")
		}
		return c.JSON(countries)
	}
}

// GetCountry fetches one country by case-insensitive name.
// @Summary Get country by name
// @Tags countries
// @Produce json
// @Param name path string true "Country name (case-insensitive)"
// @Success 200 {object} dto.CountryRead
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /countries/{name} [get]
func GetCountry(countrySvc *countrysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := strings.TrimSpace(c.Params("name"))
		if name == "" {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", "name is required")
		}

		country, err := countrySvc.Get(c.Context(), name)
		switch {
		case errors.Is(err, domain.ErrCountryNotFound):
			return ErrorResponseJSON(c, fiber.StatusNotFound, "Country not found", "")
		case err != nil:
			return ErrorResponseJSON(c, fiber.StatusInternalServerError, "Internal server error", "")
		}
		return c.JSON(country)
	}
}

// DeleteCountry removes one country by case-insensitive name.
// @Summary Delete country by name
// @Tags countries
// @Produce json
// @Param name path string true "Country name (case-insensitive)"
// @Success 200
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /countries/{name} [delete]
func DeleteCountry(countrySvc *countrysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := strings.TrimSpace(c.Params("name"))
		if name == "" {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", "name is required")
		}

		err := countrySvc.Delete(c.Context(), name)
		switch {
		case errors.Is(err, domain.ErrCountryNotFound):
			return ErrorResponseJSON(c, fiber.StatusNotFound, "Country not found", "")
		case err != nil:
			return ErrorResponseJSON(c, fiber.StatusInternalServerError, "Internal server error", "")
		}
		return c.SendStatus(fiber.StatusOK)
	}
}

// SummaryImage serves the last rendered summary artifact.
// @Summary Serve the summary image
// @Tags countries
// @Produce png
// @Success 200
// @Failure 404 {object} ProblemDetails
// @Router /countries/image [get]
func SummaryImage(imagePath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := os.Stat(imagePath); err != nil {
			return ErrorResponseJSON(c, fiber.StatusNotFound, "Summary image not found", "")
		}
		c.Set(fiber.HeaderContentType, "image/png")
		return c.SendFile(imagePath)
	}
}

// Status reports the total row count and latest refresh timestamp.
// @Summary Data set status
// @Tags countries
// @Produce json
// @Success 200 {object} dto.Stats
// @Failure 500 {object} ProblemDetails
// @Router /status [get]
func Status(countrySvc *countrysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := countrySvc.Status(c.Context())
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusInternalServerError, "Internal server error", "")
		}
		return c.JSON(stats)
	}
}
