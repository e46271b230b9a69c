package handlers

import (
	"net/http"

	"giglink_backend/internal/middleware"
	"giglink_backend/internal/repositories"
	"giglink_backend/internal/services"
	"giglink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	*BaseHandler
	venueService *services.VenueService
}

func NewVenueHandler(base *BaseHandler, venueService *services.VenueService) *VenueHandler {
	return &VenueHandler{
		BaseHandler:  base,
		venueService: venueService,
	}
}

func (h *VenueHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/venues")
	{
		public.GET("", h.ListVenues)
		public.GET("/:id", h.GetVenue)
	}

	protected := r.Group("/venues")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", h.CreateVenue)
		protected.PUT("/:id", h.UpdateVenue)
		protected.POST("/:id/claim", h.ClaimVenue)
		protected.DELETE("/:id", h.DeleteVenue)
	}
}

func (h *VenueHandler) CreateVenue(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateVenueRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	venue, err := h.venueService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, venue)
}

func (h *VenueHandler) GetVenue(c *gin.Context) {
	venue, err := h.venueService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, venue)
}

// ListVenues serves both the directory and the map: genre narrows the list,
// the min/max lat/lng pairs bound the viewport.
func (h *VenueHandler) ListVenues(c *gin.Context) {
	var criteria repositories.VenueSearchCriteria
	if !h.BindAndValidateQuery(c, &criteria) {
		return
	}

	venues, err := h.venueService.List(c.Request.Context(), criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, venues)
}

func (h *VenueHandler) UpdateVenue(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateVenueRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	venue, err := h.venueService.Update(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, venue)
}

func (h *VenueHandler) ClaimVenue(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	venue, err := h.venueService.Claim(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, venue)
}

func (h *VenueHandler) DeleteVenue(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.venueService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
