package handlers

import (
	"net/http"

	"giglink_backend/internal/middleware"
	"giglink_backend/internal/services"
	"giglink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	*BaseHandler
	mediaService *services.MediaService
}

func NewMediaHandler(base *BaseHandler, mediaService *services.MediaService) *MediaHandler {
	return &MediaHandler{
		BaseHandler:  base,
		mediaService: mediaService,
	}
}

func (h *MediaHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/profiles")
	{
		public.GET("/:id/media", h.ListProfileMedia)
	}

	protected := r.Group("/media")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", h.AddMedia)
		protected.DELETE("/:id", h.DeleteMedia)
	}
}

func (h *MediaHandler) AddMedia(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddMediaRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.mediaService.Add(c.Request.Context(), userID, userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *MediaHandler) ListProfileMedia(c *gin.Context) {
	items, err := h.mediaService.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.mediaService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
