package timeline

import (
	"strconv"

	"broodradar/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the timeline feed.
type Handler struct {
	store  *Store
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(store *Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// RegisterRoutes registers the timeline routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/timeline", h.HandleListEvents)
}

// HandleListEvents lists timeline events, newest first.
// @Summary List timeline events
// @Description List timeline events, newest first, optionally filtered by retailer and event type.
// @Tags timeline
// @Produce json
// @Param limit query int false "Maximum number of events, defaults to 50"
// @Param retailer query string false "Retailer slug"
// @Param event_type query string false "Event type filter"
// @Success 200 {array} models.TimelineEvent
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /timeline [get]
func (h *Handler) HandleListEvents(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	events, err := h.store.Events(c.Context(), limit, c.Query("retailer"), c.Query("event_type"))
	if err != nil {
		l.Error("Listing timeline events failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(events)
}
