package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-workspace-api/internal/dto"
	"kanban-workspace-api/internal/response"
	"kanban-workspace-api/internal/service"
)

// InviteHandler exposes workspace and board invitation endpoints
type InviteHandler struct {
	inviteService service.InviteService
}

// NewInviteHandler creates a new InviteHandler
func NewInviteHandler(inviteService service.InviteService) *InviteHandler {
	return &InviteHandler{inviteService: inviteService}
}

// CreateWorkspaceInvite godoc
// @Summary      Invite a user to a workspace
// @Description  Only one pending invite may exist per workspace and invitee
// @Tags         invites
// @Accept       json
// @Produce      json
// @Param        workspaceId path string true "Workspace ID (UUID)"
// @Param        request body dto.CreateWorkspaceInviteRequest true "Invitee and role"
// @Success      201 {object} dto.WorkspaceInviteResponse
// @Failure      409 {object} response.ErrorBody
// @Router       /workspaces/{workspaceId}/invites [post]
func (h *InviteHandler) CreateWorkspaceInvite(c *gin.Context) {
	workspaceID, ok := parseUUIDParam(c, "workspaceId")
	if !ok {
		return
	}

	var req dto.CreateWorkspaceInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	invite, err := h.inviteService.CreateWorkspaceInvite(c.Request.Context(), workspaceID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, invite)
}

// ListWorkspaceInvites godoc
// @Summary      List a workspace's pending invites
// @Tags         invites
// @Produce      json
// @Param        workspaceId path string true "Workspace ID (UUID)"
// @Success      200 {array} dto.WorkspaceInviteResponse
// @Failure      403 {object} response.ErrorBody
// @Router       /workspaces/{workspaceId}/invites [get]
func (h *InviteHandler) ListWorkspaceInvites(c *gin.Context) {
	workspaceID, ok := parseUUIDParam(c, "workspaceId")
	if !ok {
		return
	}

	invites, err := h.inviteService.ListWorkspaceInvites(c.Request.Context(), workspaceID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, invites)
}

// AcceptWorkspaceInvite godoc
// @Summary      Accept a workspace invite
// @Description  Adds the invitee as a workspace member with the invited role
// @Tags         invites
// @Produce      json
// @Param        inviteId path string true "Invite ID (UUID)"
// @Success      200 {object} dto.WorkspaceInviteResponse
// @Failure      403 {object} response.ErrorBody
// @Router       /workspaces/invites/{inviteId}/accept [post]
func (h *InviteHandler) AcceptWorkspaceInvite(c *gin.Context) {
	inviteID, ok := parseUUIDParam(c, "inviteId")
	if !ok {
		return
	}

	invite, err := h.inviteService.AcceptWorkspaceInvite(c.Request.Context(), inviteID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, invite)
}

// DeclineWorkspaceInvite godoc
// @Summary      Decline a workspace invite
// @Tags         invites
// @Produce      json
// @Param        inviteId path string true "Invite ID (UUID)"
// @Success      200 {object} map[string]string
// @Failure      403 {object} response.ErrorBody
// @Router       /workspaces/invites/{inviteId}/decline [post]
func (h *InviteHandler) DeclineWorkspaceInvite(c *gin.Context) {
	inviteID, ok := parseUUIDParam(c, "inviteId")
	if !ok {
		return
	}

	if err := h.inviteService.DeclineWorkspaceInvite(c.Request.Context(), inviteID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Invite declined"})
}

// CancelWorkspaceInvite godoc
// @Summary      Cancel a pending workspace invite
// @Description  Only the inviter or a workspace admin may cancel
// @Tags         invites
// @Produce      json
// @Param        inviteId path string true "Invite ID (UUID)"
// @Success      200 {object} map[string]string
// @Failure      403 {object} response.ErrorBody
// @Router       /workspaces/invites/{inviteId}/cancel [post]
func (h *InviteHandler) CancelWorkspaceInvite(c *gin.Context) {
	inviteID, ok := parseUUIDParam(c, "inviteId")
	if !ok {
		return
	}

	if err := h.inviteService.CancelWorkspaceInvite(c.Request.Context(), inviteID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Invite cancelled"})
}

// CreateBoardInvite godoc
// @Summary      Invite a user to a board
// @Tags         invites
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.CreateBoardInviteRequest true "Invitee and role"
// @Success      201 {object} dto.BoardInviteResponse
// @Failure      409 {object} response.ErrorBody
// @Router       /boards/{boardId}/invites [post]
func (h *InviteHandler) CreateBoardInvite(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}

	var req dto.CreateBoardInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	invite, err := h.inviteService.CreateBoardInvite(c.Request.Context(), boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, invite)
}

// ListBoardInvites godoc
// @Summary      List a board's pending invites
// @Tags         invites
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {array} dto.BoardInviteResponse
// @Failure      403 {object} response.ErrorBody
// @Router       /boards/{boardId}/invites [get]
func (h *InviteHandler) ListBoardInvites(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}

	invites, err := h.inviteService.ListBoardInvites(c.Request.Context(), boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, invites)
}

// AcceptBoardInvite godoc
// @Summary      Accept a board invite
// @Description  Adds the invitee to the board, and to the workspace as a guest when not already a member
// @Tags         invites
// @Produce      json
// @Param        inviteId path string true "Invite ID (UUID)"
// @Success      200 {object} dto.BoardInviteResponse
// @Failure      403 {object} response.ErrorBody
// @Router       /boards/invites/{inviteId}/accept [post]
func (h *InviteHandler) AcceptBoardInvite(c *gin.Context) {
	inviteID, ok := parseUUIDParam(c, "inviteId")
	if !ok {
		return
	}

	invite, err := h.inviteService.AcceptBoardInvite(c.Request.Context(), inviteID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, invite)
}

// DeclineBoardInvite godoc
// @Summary      Decline a board invite
// @Tags         invites
// @Produce      json
// @Param        inviteId path string true "Invite ID (UUID)"
// @Success      200 {object} map[string]string
// @Failure      403 {object} response.ErrorBody
// @Router       /boards/invites/{inviteId}/decline [post]
func (h *InviteHandler) DeclineBoardInvite(c *gin.Context) {
	inviteID, ok := parseUUIDParam(c, "inviteId")
	if !ok {
		return
	}

	if err := h.inviteService.DeclineBoardInvite(c.Request.Context(), inviteID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Invite declined"})
}

// CancelBoardInvite godoc
// @Summary      Cancel a pending board invite
// @Tags         invites
// @Produce      json
// @Param        inviteId path string true "Invite ID (UUID)"
// @Success      200 {object} map[string]string
// @Failure      403 {object} response.ErrorBody
// @Router       /boards/invites/{inviteId}/cancel [post]
func (h *InviteHandler) CancelBoardInvite(c *gin.Context) {
	inviteID, ok := parseUUIDParam(c, "inviteId")
	if !ok {
		return
	}

	if err := h.inviteService.CancelBoardInvite(c.Request.Context(), inviteID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Invite cancelled"})
}

// ListMyInvites godoc
// @Summary      List the caller's pending invites
// @Tags         invites
// @Produce      json
// @Success      200 {object} dto.MyInvitesResponse
// @Failure      401 {object} response.ErrorBody
// @Router       /invites [get]
func (h *InviteHandler) ListMyInvites(c *gin.Context) {
	invites, err := h.inviteService.ListMyInvites(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, invites)
}
