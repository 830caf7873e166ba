package trip

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fishhunter29/andaman-planner-v3/internal/catalog"
	"github.com/fishhunter29/andaman-planner-v3/internal/fares"
	"github.com/fishhunter29/andaman-planner-v3/internal/refdata"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Catalog: islands
// --------------------------------------------------
func (h *Handler) ListIslands(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Islands())
}

// --------------------------------------------------
// Catalog: filtered + sorted locations
// --------------------------------------------------
func (h *Handler) ListLocations(c *gin.Context) {
	criteria := catalog.FilterCriteria{
		Search:   c.Query("q"),
		Mood:     c.Query("mood"),
		Category: c.Query("category"),
		Bundle:   c.Query("bundle"),
	}
	if islands := strings.TrimSpace(c.Query("islands")); islands != "" {
		criteria.IslandIDs = strings.Split(islands, ",")
	}

	sortMode := c.DefaultQuery("sort", catalog.SortRecommended)

	c.JSON(http.StatusOK, h.service.Locations(criteria, sortMode))
}

// --------------------------------------------------
// Catalog: activities / hotels
// --------------------------------------------------
func (h *Handler) ListActivities(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Activities(c.Query("island")))
}

func (h *Handler) ListHotels(c *gin.Context) {
	hotels := h.service.Hotels(c.Query("island"))
	if hotels == nil {
		hotels = []refdata.Hotel{}
	}
	c.JSON(http.StatusOK, hotels)
}

func (h *Handler) ListLocationActivities(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.LocationActivities(c.Param("id")))
}

// --------------------------------------------------
// Estimate
// --------------------------------------------------
func (h *Handler) Estimate(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, h.service.Estimate(req))
}

// --------------------------------------------------
// Cab leg lookup (relaxation matcher, ops aid)
// --------------------------------------------------
func (h *Handler) FindCabLeg(c *gin.Context) {
	var req fares.LegRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	leg := h.service.FindCabLeg(req)
	if leg == nil {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "leg": leg})
}
