package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-workspace-api/internal/dto"
	"kanban-workspace-api/internal/response"
	"kanban-workspace-api/internal/service"
)

// BoardHandler exposes board CRUD and membership endpoints
type BoardHandler struct {
	boardService service.BoardService
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(boardService service.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

// CreateBoard godoc
// @Summary      Create a board
// @Description  Creates a board in a workspace, gated by the workspace's board-creation policy
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBoardRequest true "Board to create"
// @Success      201 {object} dto.BoardResponse
// @Failure      403 {object} response.ErrorBody
// @Router       /boards [post]
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	board, err := h.boardService.CreateBoard(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, board)
}

// ListBoardsByWorkspace godoc
// @Summary      List boards in a workspace
// @Description  Private boards are omitted unless the caller is a board member
// @Tags         boards
// @Produce      json
// @Param        workspaceId path string true "Workspace ID (UUID)"
// @Success      200 {array} dto.BoardResponse
// @Failure      403 {object} response.ErrorBody
// @Router       /boards/workspace/{workspaceId} [get]
func (h *BoardHandler) ListBoardsByWorkspace(c *gin.Context) {
	workspaceID, ok := parseUUIDParam(c, "workspaceId")
	if !ok {
		return
	}

	boards, err := h.boardService.ListBoardsByWorkspace(c.Request.Context(), workspaceID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, boards)
}

// GetBoard godoc
// @Summary      Get a board
// @Tags         boards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} dto.BoardResponse
// @Failure      403 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody
// @Router       /boards/{boardId} [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}

	board, err := h.boardService.GetBoard(c.Request.Context(), boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// UpdateBoard godoc
// @Summary      Update a board
// @Description  Changes title, description or visibility (board ADMIN only)
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.UpdateBoardRequest true "Fields to update"
// @Success      200 {object} dto.BoardResponse
// @Failure      403 {object} response.ErrorBody
// @Router       /boards/{boardId} [put]
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}

	var req dto.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	board, err := h.boardService.UpdateBoard(c.Request.Context(), boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// DeleteBoard godoc
// @Summary      Delete a board
// @Tags         boards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} map[string]string
// @Failure      403 {object} response.ErrorBody
// @Router       /boards/{boardId} [delete]
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}

	if err := h.boardService.DeleteBoard(c.Request.Context(), boardID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Board deleted"})
}

// JoinBoard godoc
// @Summary      Join a workspace-visible board
// @Description  Workspace members may self-join WORKSPACE boards as MEMBER
// @Tags         boards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      201 {object} dto.BoardMemberResponse
// @Failure      403 {object} response.ErrorBody
// @Failure      409 {object} response.ErrorBody
// @Router       /boards/{boardId}/join [post]
func (h *BoardHandler) JoinBoard(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}

	member, err := h.boardService.JoinBoard(c.Request.Context(), boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, member)
}

// LeaveBoard godoc
// @Summary      Leave a board
// @Description  The last member or the sole ADMIN cannot leave
// @Tags         boards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} map[string]string
// @Failure      403 {object} response.ErrorBody
// @Router       /boards/{boardId}/leave [post]
func (h *BoardHandler) LeaveBoard(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}

	if err := h.boardService.LeaveBoard(c.Request.Context(), boardID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Left board"})
}

// ListMembers godoc
// @Summary      List board members
// @Tags         boards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {array} dto.BoardMemberResponse
// @Failure      403 {object} response.ErrorBody
// @Router       /boards/{boardId}/members [get]
func (h *BoardHandler) ListMembers(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}

	members, err := h.boardService.ListMembers(c.Request.Context(), boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, members)
}

// AddMember godoc
// @Summary      Add a workspace member to a board
// @Description  Target must already belong to the workspace (board ADMIN only)
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.AddBoardMemberRequest true "Member to add"
// @Success      201 {object} dto.BoardMemberResponse
// @Failure      403 {object} response.ErrorBody
// @Failure      409 {object} response.ErrorBody
// @Router       /boards/{boardId}/members [post]
func (h *BoardHandler) AddMember(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}

	var req dto.AddBoardMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	member, err := h.boardService.AddMember(c.Request.Context(), boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, member)
}

// ChangeMemberRole godoc
// @Summary      Change a board member's role
// @Description  Demoting the sole ADMIN is rejected
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        userId path string true "Target user ID (UUID)"
// @Param        request body dto.ChangeBoardRoleRequest true "New role"
// @Success      200 {object} dto.BoardMemberResponse
// @Failure      403 {object} response.ErrorBody
// @Router       /boards/{boardId}/members/{userId}/role [put]
func (h *BoardHandler) ChangeMemberRole(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	var req dto.ChangeBoardRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	member, err := h.boardService.ChangeMemberRole(c.Request.Context(), boardID, userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, member)
}

// RemoveMember godoc
// @Summary      Remove a board member
// @Tags         boards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        userId path string true "Target user ID (UUID)"
// @Success      200 {object} map[string]string
// @Failure      403 {object} response.ErrorBody
// @Router       /boards/{boardId}/members/{userId} [delete]
func (h *BoardHandler) RemoveMember(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	if err := h.boardService.RemoveMember(c.Request.Context(), boardID, userID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Member removed"})
}
