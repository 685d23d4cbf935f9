package archive

import (
	"broodradar/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for archived snapshot payloads.
type Handler struct {
	archiver *Archiver
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(archiver *Archiver, logger *zap.Logger) *Handler {
	return &Handler{archiver: archiver, logger: logger}
}

// RegisterRoutes registers the archive routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/archive")
	group.Get("/:retailer", h.HandleListArchives)
	group.Get("/:retailer/:snapshot_id", h.HandleGetArchive)
}

// HandleListArchives lists the archived snapshot ids for one retailer.
// @Summary List archived snapshots
// @Description List the snapshot ids that have a raw payload in object storage.
// @Tags archive
// @Produce json
// @Param retailer path string true "Retailer slug"
// @Success 200 {array} string
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /archive/{retailer} [get]
func (h *Handler) HandleListArchives(c *fiber.Ctx) error {
	retailer := c.Params("retailer")
	l := logger.WithRayID(h.logger, c)

	ids, err := h.archiver.List(c.Context(), retailer)
	if err != nil {
		l.Error("Listing archives failed", zap.Error(err), zap.String("retailer", retailer))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if ids == nil {
		ids = []string{}
	}

	return c.JSON(ids)
}

// HandleGetArchive streams one archived payload back.
// @Summary Get archived snapshot
// @Description Return the raw payload archived for one snapshot.
// @Tags archive
// @Produce json
// @Param retailer path string true "Retailer slug"
// @Param snapshot_id path string true "Snapshot ID"
// @Success 200 {object} map[string]any
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /archive/{retailer}/{snapshot_id} [get]
func (h *Handler) HandleGetArchive(c *fiber.Ctx) error {
	retailer := c.Params("retailer")
	snapshotID := c.Params("snapshot_id")
	l := logger.WithRayID(h.logger, c)

	data, err := h.archiver.Raw(c.Context(), retailer, snapshotID)
	if err != nil {
		l.Error("Reading archive failed", zap.Error(err),
			zap.String("retailer", retailer), zap.String("snapshot_id", snapshotID))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}
