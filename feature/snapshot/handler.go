package snapshot

import (
	"broodradar/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for snapshots.
type Handler struct {
	store  *Store
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(store *Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// RegisterRoutes registers the snapshot routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/snapshots")
	group.Get("/", h.HandleListSnapshots)
	group.Get("/:id/products", h.HandleSnapshotProducts)
}

// HandleListSnapshots lists snapshots, newest first.
// @Summary List snapshots
// @Description List all snapshots, newest first, optionally filtered by retailer.
// @Tags snapshots
// @Produce json
// @Param retailer query string false "Retailer slug"
// @Success 200 {array} models.Snapshot
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshots [get]
func (h *Handler) HandleListSnapshots(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	snaps, err := h.store.Snapshots(c.Context(), c.Query("retailer"))
	if err != nil {
		l.Error("Listing snapshots failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(snaps)
}

// HandleSnapshotProducts returns the product rows of one snapshot.
// @Summary Get snapshot products
// @Description Return every product row captured in the given snapshot.
// @Tags snapshots
// @Produce json
// @Param id path string true "Snapshot ID"
// @Success 200 {array} models.SnapshotProduct
// @Failure 404 {object} map[string]string "Snapshot not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshots/{id}/products [get]
func (h *Handler) HandleSnapshotProducts(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithRayID(h.logger, c)

	snap, err := h.store.Snapshot(c.Context(), id)
	if err != nil {
		l.Error("Loading snapshot failed", zap.Error(err), zap.String("snapshot_id", id))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if snap == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "snapshot not found",
		})
	}

	products, err := h.store.Products(c.Context(), id)
	if err != nil {
		l.Error("Loading snapshot products failed", zap.Error(err), zap.String("snapshot_id", id))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(products)
}
