package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-workspace-api/internal/dto"
	"kanban-workspace-api/internal/response"
	"kanban-workspace-api/internal/service"
)

// WorkspaceHandler exposes workspace CRUD and membership endpoints
type WorkspaceHandler struct {
	workspaceService service.WorkspaceService
}

// NewWorkspaceHandler creates a new WorkspaceHandler
func NewWorkspaceHandler(workspaceService service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

// CreateWorkspace godoc
// @Summary      Create a workspace
// @Description  Creates a workspace and enrolls the caller as its OWNER
// @Tags         workspaces
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateWorkspaceRequest true "Workspace to create"
// @Success      201 {object} dto.WorkspaceResponse
// @Failure      400 {object} response.ErrorBody
// @Router       /workspaces [post]
func (h *WorkspaceHandler) CreateWorkspace(c *gin.Context) {
	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	workspace, err := h.workspaceService.CreateWorkspace(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, workspace)
}

// ListMyWorkspaces godoc
// @Summary      List my workspaces
// @Description  Returns every workspace the caller belongs to
// @Tags         workspaces
// @Produce      json
// @Success      200 {array} dto.WorkspaceResponse
// @Router       /workspaces [get]
func (h *WorkspaceHandler) ListMyWorkspaces(c *gin.Context) {
	workspaces, err := h.workspaceService.ListMyWorkspaces(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, workspaces)
}

// GetWorkspace godoc
// @Summary      Get a workspace
// @Tags         workspaces
// @Produce      json
// @Param        workspaceId path string true "Workspace ID (UUID)"
// @Success      200 {object} dto.WorkspaceResponse
// @Failure      403 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody
// @Router       /workspaces/{workspaceId} [get]
func (h *WorkspaceHandler) GetWorkspace(c *gin.Context) {
	workspaceID, ok := parseUUIDParam(c, "workspaceId")
	if !ok {
		return
	}

	workspace, err := h.workspaceService.GetWorkspace(c.Request.Context(), workspaceID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, workspace)
}

// UpdateWorkspace godoc
// @Summary      Update a workspace
// @Description  Renames or re-describes a workspace (OWNER only)
// @Tags         workspaces
// @Accept       json
// @Produce      json
// @Param        workspaceId path string true "Workspace ID (UUID)"
// @Param        request body dto.UpdateWorkspaceRequest true "Fields to update"
// @Success      200 {object} dto.WorkspaceResponse
// @Failure      403 {object} response.ErrorBody
// @Router       /workspaces/{workspaceId} [put]
func (h *WorkspaceHandler) UpdateWorkspace(c *gin.Context) {
	workspaceID, ok := parseUUIDParam(c, "workspaceId")
	if !ok {
		return
	}

	var req dto.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	workspace, err := h.workspaceService.UpdateWorkspace(c.Request.Context(), workspaceID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, workspace)
}

// UpdateSettings godoc
// @Summary      Update workspace board-creation policies
// @Tags         workspaces
// @Accept       json
// @Produce      json
// @Param        workspaceId path string true "Workspace ID (UUID)"
// @Param        request body dto.UpdateWorkspaceSettingsRequest true "Policy settings"
// @Success      200 {object} dto.WorkspaceResponse
// @Failure      403 {object} response.ErrorBody
// @Router       /workspaces/{workspaceId}/settings [put]
func (h *WorkspaceHandler) UpdateSettings(c *gin.Context) {
	workspaceID, ok := parseUUIDParam(c, "workspaceId")
	if !ok {
		return
	}

	var req dto.UpdateWorkspaceSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	workspace, err := h.workspaceService.UpdateSettings(c.Request.Context(), workspaceID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, workspace)
}

// DeleteWorkspace godoc
// @Summary      Delete a workspace
// @Description  Deletes a workspace and everything it owns (OWNER only)
// @Tags         workspaces
// @Produce      json
// @Param        workspaceId path string true "Workspace ID (UUID)"
// @Success      200 {object} map[string]string
// @Failure      403 {object} response.ErrorBody
// @Router       /workspaces/{workspaceId} [delete]
func (h *WorkspaceHandler) DeleteWorkspace(c *gin.Context) {
	workspaceID, ok := parseUUIDParam(c, "workspaceId")
	if !ok {
		return
	}

	if err := h.workspaceService.DeleteWorkspace(c.Request.Context(), workspaceID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Workspace deleted"})
}

// ListMembers godoc
// @Summary      List workspace members
// @Tags         workspaces
// @Produce      json
// @Param        workspaceId path string true "Workspace ID (UUID)"
// @Success      200 {array} dto.WorkspaceMemberResponse
// @Failure      403 {object} response.ErrorBody
// @Router       /workspaces/{workspaceId}/members [get]
func (h *WorkspaceHandler) ListMembers(c *gin.Context) {
	workspaceID, ok := parseUUIDParam(c, "workspaceId")
	if !ok {
		return
	}

	members, err := h.workspaceService.ListMembers(c.Request.Context(), workspaceID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, members)
}

// ChangeMemberRole godoc
// @Summary      Change a member's workspace role
// @Description  OWNER role cannot be assigned here; use ownership transfer
// @Tags         workspaces
// @Accept       json
// @Produce      json
// @Param        workspaceId path string true "Workspace ID (UUID)"
// @Param        userId path string true "Target user ID (UUID)"
// @Param        request body dto.ChangeWorkspaceRoleRequest true "New role"
// @Success      200 {object} dto.WorkspaceMemberResponse
// @Failure      403 {object} response.ErrorBody
// @Router       /workspaces/{workspaceId}/members/{userId}/role [put]
func (h *WorkspaceHandler) ChangeMemberRole(c *gin.Context) {
	workspaceID, ok := parseUUIDParam(c, "workspaceId")
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	var req dto.ChangeWorkspaceRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	member, err := h.workspaceService.ChangeMemberRole(c.Request.Context(), workspaceID, userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, member)
}

// RemoveMember godoc
// @Summary      Remove a workspace member
// @Description  Also removes the target from every board of the workspace
// @Tags         workspaces
// @Produce      json
// @Param        workspaceId path string true "Workspace ID (UUID)"
// @Param        userId path string true "Target user ID (UUID)"
// @Success      200 {object} map[string]string
// @Failure      403 {object} response.ErrorBody
// @Router       /workspaces/{workspaceId}/members/{userId} [delete]
func (h *WorkspaceHandler) RemoveMember(c *gin.Context) {
	workspaceID, ok := parseUUIDParam(c, "workspaceId")
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	if err := h.workspaceService.RemoveMember(c.Request.Context(), workspaceID, userID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Member removed"})
}

// LeaveWorkspace godoc
// @Summary      Leave a workspace
// @Description  The OWNER must transfer ownership before leaving
// @Tags         workspaces
// @Produce      json
// @Param        workspaceId path string true "Workspace ID (UUID)"
// @Success      200 {object} map[string]string
// @Failure      403 {object} response.ErrorBody
// @Router       /workspaces/{workspaceId}/members/leave [post]
func (h *WorkspaceHandler) LeaveWorkspace(c *gin.Context) {
	workspaceID, ok := parseUUIDParam(c, "workspaceId")
	if !ok {
		return
	}

	if err := h.workspaceService.LeaveWorkspace(c.Request.Context(), workspaceID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Left workspace"})
}

// TransferOwnership godoc
// @Summary      Transfer workspace ownership
// @Description  Atomically swaps OWNER to the target and demotes the caller to ADMIN
// @Tags         workspaces
// @Accept       json
// @Produce      json
// @Param        workspaceId path string true "Workspace ID (UUID)"
// @Param        request body dto.TransferOwnershipRequest true "New owner"
// @Success      200 {object} map[string]string
// @Failure      403 {object} response.ErrorBody
// @Router       /workspaces/{workspaceId}/transfer-ownership [post]
func (h *WorkspaceHandler) TransferOwnership(c *gin.Context) {
	workspaceID, ok := parseUUIDParam(c, "workspaceId")
	if !ok {
		return
	}

	var req dto.TransferOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	if err := h.workspaceService.TransferOwnership(c.Request.Context(), workspaceID, &req); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Ownership transferred"})
}
