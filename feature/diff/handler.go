package diff

import (
	"broodradar/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for snapshot comparisons.
type Handler struct {
	engine *Engine
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(engine *Engine, logger *zap.Logger) *Handler {
	return &Handler{engine: engine, logger: logger}
}

// RegisterRoutes registers the compare route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/compare", h.HandleCompare)
}

// HandleCompare diffs two snapshots.
// @Summary Compare snapshots
// @Description Diff two snapshots by product: new, removed, price changes and bonus changes.
// @Tags diff
// @Produce json
// @Param old query string true "Older snapshot ID"
// @Param new query string true "Newer snapshot ID"
// @Success 200 {object} Result
// @Failure 400 {object} map[string]string "Missing snapshot id"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /compare [get]
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	oldID := c.Query("old")
	newID := c.Query("new")
	if oldID == "" || newID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "both old and new snapshot ids are required",
		})
	}

	result, err := h.engine.Compare(c.Context(), oldID, newID)
	if err != nil {
		l.Error("Comparing snapshots failed", zap.Error(err),
			zap.String("old", oldID), zap.String("new", newID))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}
