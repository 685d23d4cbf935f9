package retailer

import (
	"broodradar/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for retailer metadata.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the retailer routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/retailers", h.HandleListRetailers)
}

// HandleListRetailers lists the supported retailers with snapshot stats.
// @Summary List retailers
// @Description List the supported retailers with their latest snapshot and snapshot count.
// @Tags retailers
// @Produce json
// @Success 200 {array} Stats
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /retailers [get]
func (h *Handler) HandleListRetailers(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	stats, err := h.service.Stats(c.Context())
	if err != nil {
		l.Error("Listing retailer stats failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(stats)
}
