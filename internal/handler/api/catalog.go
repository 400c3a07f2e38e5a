package api

import (
	"errors"
	"net/http"

	"beach-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary List regions
// @Description List all coastal regions
// @Tags catalog
// @Produce json
// @Success 200 {array} queries.RegionView
// @Router /regions [get]
func (h *CatalogHandler) ListRegions(c *gin.Context) {
	regions, err := h.catalogQueries.ListRegions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, regions)
}

// @Summary List beaches
// @Description List beaches in a region
// @Tags catalog
// @Produce json
// @Param id path string true "Region ID"
// @Success 200 {array} queries.BeachView
// @Failure 400 {object} map[string]string
// @Router /regions/{id}/beaches [get]
func (h *CatalogHandler) ListBeaches(c *gin.Context) {
	regionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid region ID format",
		})
		return
	}

	beaches, err := h.catalogQueries.ListBeaches(c.Request.Context(), regionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, beaches)
}

// @Summary List vendors
// @Description List active vendors on a beach
// @Tags catalog
// @Produce json
// @Param id path string true "Beach ID"
// @Success 200 {array} queries.VendorView
// @Failure 400 {object} map[string]string
// @Router /beaches/{id}/vendors [get]
func (h *CatalogHandler) ListVendors(c *gin.Context) {
	beachID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid beach ID format",
		})
		return
	}

	vendors, err := h.catalogQueries.ListVendors(c.Request.Context(), beachID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, vendors)
}

// @Summary Get vendor
// @Description Get a vendor's detail page
// @Tags catalog
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {object} queries.VendorView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vendors/{id} [get]
func (h *CatalogHandler) GetVendor(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vendor ID format",
		})
		return
	}

	vendor, err := h.catalogQueries.GetVendor(c.Request.Context(), vendorID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrVendorNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vendor not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// @Summary List vendor items
// @Description List active items a vendor offers
// @Tags catalog
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {array} queries.ItemView
// @Failure 400 {object} map[string]string
// @Router /vendors/{id}/items [get]
func (h *CatalogHandler) ListItems(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vendor ID format",
		})
		return
	}

	items, err := h.catalogQueries.ListItems(c.Request.Context(), vendorID, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, items)
}
