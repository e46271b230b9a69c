package handlers

import (
	"net/http"

	"giglink_backend/internal/middleware"
	"giglink_backend/internal/services"
	"giglink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	*BaseHandler
	groupService       *services.GroupService
	applicationService *services.ApplicationService
}

func NewGroupHandler(base *BaseHandler, groupService *services.GroupService, applicationService *services.ApplicationService) *GroupHandler {
	return &GroupHandler{
		BaseHandler:        base,
		groupService:       groupService,
		applicationService: applicationService,
	}
}

func (h *GroupHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/groups")
	{
		public.GET("", h.ListGroups)
		public.GET("/:id", h.GetGroup)
		public.GET("/:id/members", h.ListMembers)
	}

	protected := r.Group("/groups")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", h.CreateGroup)
		protected.GET("/mine", h.ListMyGroups)
		protected.PUT("/:id", h.UpdateGroup)
		protected.DELETE("/:id", h.DeleteGroup)
		protected.POST("/:id/members", h.AddMember)
		protected.DELETE("/:id/members/:profileId", h.RemoveMember)
		protected.GET("/:id/applications", h.ListApplications)
	}
}

func (h *GroupHandler) CreateGroup(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateGroupRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	group, err := h.groupService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

func (h *GroupHandler) GetGroup(c *gin.Context) {
	group, err := h.groupService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (h *GroupHandler) ListGroups(c *gin.Context) {
	groups, err := h.groupService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *GroupHandler) ListMyGroups(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	groups, err := h.groupService.ListMine(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateGroupRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	group, err := h.groupService.Update(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.groupService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GroupHandler) AddMember(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddGroupMemberRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	member, err := h.groupService.AddMember(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *GroupHandler) RemoveMember(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	err := h.groupService.RemoveMember(c.Request.Context(), userID, c.Param("id"), c.Param("profileId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GroupHandler) ListMembers(c *gin.Context) {
	members, err := h.groupService.ListMembers(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *GroupHandler) ListApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListForGroup(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}
