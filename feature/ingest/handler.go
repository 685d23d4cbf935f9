package ingest

import (
	"broodradar/core/logger"
	"broodradar/feature/retailer"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests that trigger ingestion runs.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the ingest routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/retailers/:slug/snapshots", h.HandleIngest)
}

type ingestRequest struct {
	Label string `json:"label"`
}

// HandleIngest fetches a retailer's products and stores a new snapshot.
// @Summary Ingest a snapshot
// @Description Fetch the retailer's current product range and store it as a new snapshot.
// @Tags ingest
// @Accept json
// @Produce json
// @Param slug path string true "Retailer slug"
// @Param request body ingestRequest false "Optional snapshot label"
// @Success 201 {object} Result
// @Failure 400 {object} map[string]string "Unknown retailer"
// @Failure 502 {object} map[string]string "Fetch failed"
// @Router /retailers/{slug}/snapshots [post]
func (h *Handler) HandleIngest(c *fiber.Ctx) error {
	slug := c.Params("slug")
	l := logger.WithRayID(h.logger, c)

	var req ingestRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	if retailer.Lookup(slug) == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unknown retailer",
		})
	}

	result, err := h.service.RunRetailer(c.Context(), slug, req.Label)
	if err != nil {
		l.Error("Ingestion failed", zap.Error(err), zap.String("retailer", slug))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}
