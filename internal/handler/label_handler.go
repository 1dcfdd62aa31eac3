package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-workspace-api/internal/dto"
	"kanban-workspace-api/internal/response"
	"kanban-workspace-api/internal/service"
)

// LabelHandler exposes board label endpoints
type LabelHandler struct {
	labelService service.LabelService
}

// NewLabelHandler creates a new LabelHandler
func NewLabelHandler(labelService service.LabelService) *LabelHandler {
	return &LabelHandler{labelService: labelService}
}

// CreateLabel godoc
// @Summary      Create a board label
// @Tags         labels
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.CreateLabelRequest true "Label to create"
// @Success      201 {object} dto.LabelResponse
// @Failure      403 {object} response.ErrorBody
// @Router       /boards/{boardId}/labels [post]
func (h *LabelHandler) CreateLabel(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}

	var req dto.CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	label, err := h.labelService.CreateLabel(c.Request.Context(), boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, label)
}

// ListLabels godoc
// @Summary      List a board's labels
// @Tags         labels
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {array} dto.LabelResponse
// @Failure      403 {object} response.ErrorBody
// @Router       /boards/{boardId}/labels [get]
func (h *LabelHandler) ListLabels(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}

	labels, err := h.labelService.ListLabels(c.Request.Context(), boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, labels)
}

// UpdateLabel godoc
// @Summary      Update a label's name or color
// @Tags         labels
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        labelId path string true "Label ID (UUID)"
// @Param        request body dto.UpdateLabelRequest true "Fields to update"
// @Success      200 {object} dto.LabelResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /boards/{boardId}/labels/{labelId} [put]
func (h *LabelHandler) UpdateLabel(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	labelID, ok := parseUUIDParam(c, "labelId")
	if !ok {
		return
	}

	var req dto.UpdateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	label, err := h.labelService.UpdateLabel(c.Request.Context(), boardID, labelID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, label)
}

// DeleteLabel godoc
// @Summary      Delete a board label
// @Tags         labels
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        labelId path string true "Label ID (UUID)"
// @Success      200 {object} map[string]string
// @Failure      404 {object} response.ErrorBody
// @Router       /boards/{boardId}/labels/{labelId} [delete]
func (h *LabelHandler) DeleteLabel(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	labelID, ok := parseUUIDParam(c, "labelId")
	if !ok {
		return
	}

	if err := h.labelService.DeleteLabel(c.Request.Context(), boardID, labelID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Label deleted"})
}
