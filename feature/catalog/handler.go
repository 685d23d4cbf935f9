package catalog

import (
	"strconv"

	"broodradar/core/logger"
	snapmodels "broodradar/feature/snapshot/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog and the history ledger.
type Handler struct {
	store  *Store
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(store *Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/", h.HandleListProducts)
	group.Get("/:id", h.HandleGetProduct)
	group.Get("/:id/history", h.HandleProductHistory)
	group.Get("/:id/at/:snapshot_id", h.HandleProductAtSnapshot)
}

// HandleListProducts lists the catalog for one retailer.
// @Summary List catalog products
// @Description List the catalog for a retailer, ordered by title.
// @Tags catalog
// @Produce json
// @Param retailer query string false "Retailer slug, defaults to ah"
// @Success 200 {array} models.CatalogEntry
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog [get]
func (h *Handler) HandleListProducts(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	retailer := c.Query("retailer", snapmodels.DefaultRetailer)
	entries, err := h.store.Products(c.Context(), retailer)
	if err != nil {
		l.Error("Listing catalog failed", zap.Error(err), zap.String("retailer", retailer))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(entries)
}

// HandleGetProduct returns one catalog entry.
// @Summary Get catalog product
// @Description Return one catalog entry by id.
// @Tags catalog
// @Produce json
// @Param id path string true "Catalog entry ID"
// @Success 200 {object} models.CatalogEntry
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/{id} [get]
func (h *Handler) HandleGetProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithRayID(h.logger, c)

	entry, err := h.store.Product(c.Context(), id)
	if err != nil {
		l.Error("Loading catalog entry failed", zap.Error(err), zap.String("product_id", id))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if entry == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "product not found",
		})
	}

	return c.JSON(entry)
}

// HandleProductHistory returns a product's ledger, newest first.
// @Summary Get product history
// @Description Return the history ledger for one catalog entry, newest first.
// @Tags catalog
// @Produce json
// @Param id path string true "Catalog entry ID"
// @Param limit query int false "Maximum number of entries, defaults to 50"
// @Success 200 {array} models.HistoryEntry
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/{id}/history [get]
func (h *Handler) HandleProductHistory(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithRayID(h.logger, c)

	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	history, err := h.store.History(c.Context(), id, limit)
	if err != nil {
		l.Error("Loading product history failed", zap.Error(err), zap.String("product_id", id))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(history)
}

// HandleProductAtSnapshot returns a product as it appeared in one snapshot.
// @Summary Get product version
// @Description Return a catalog product as it appeared in the given snapshot, with version navigation.
// @Tags catalog
// @Produce json
// @Param id path string true "Catalog entry ID"
// @Param snapshot_id path string true "Snapshot ID"
// @Success 200 {object} ProductVersion
// @Failure 404 {object} map[string]string "Version not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/{id}/at/{snapshot_id} [get]
func (h *Handler) HandleProductAtSnapshot(c *fiber.Ctx) error {
	id := c.Params("id")
	snapshotID := c.Params("snapshot_id")
	l := logger.WithRayID(h.logger, c)

	version, err := h.store.ProductAtSnapshot(c.Context(), id, snapshotID)
	if err != nil {
		l.Error("Loading product version failed", zap.Error(err),
			zap.String("product_id", id), zap.String("snapshot_id", snapshotID))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if version == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "product not present in snapshot",
		})
	}

	return c.JSON(version)
}
