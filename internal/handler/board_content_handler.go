package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kanban-workspace-api/internal/dto"
	"kanban-workspace-api/internal/response"
	"kanban-workspace-api/internal/service"
)

// BoardContentHandler exposes list, card, checklist, assignee and comment
// endpoints under a board
type BoardContentHandler struct {
	contentService service.BoardContentService
}

// NewBoardContentHandler creates a new BoardContentHandler
func NewBoardContentHandler(contentService service.BoardContentService) *BoardContentHandler {
	return &BoardContentHandler{contentService: contentService}
}

// CreateList godoc
// @Summary      Create a list
// @Description  Creates a list at the requested position, rebalancing siblings on collision
// @Tags         lists
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.CreateListRequest true "List to create"
// @Success      201 {object} dto.ListResponse
// @Failure      403 {object} response.ErrorBody
// @Router       /boards/{boardId}/lists [post]
func (h *BoardContentHandler) CreateList(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}

	var req dto.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	list, err := h.contentService.CreateList(c.Request.Context(), boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, list)
}

// ListLists godoc
// @Summary      List a board's lists
// @Tags         lists
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {array} dto.ListResponse
// @Failure      403 {object} response.ErrorBody
// @Router       /boards/{boardId}/lists [get]
func (h *BoardContentHandler) ListLists(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}

	lists, err := h.contentService.ListLists(c.Request.Context(), boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, lists)
}

// RenameList godoc
// @Summary      Rename a list
// @Tags         lists
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        listId path string true "List ID (UUID)"
// @Param        request body dto.UpdateListRequest true "New title"
// @Success      200 {object} dto.ListResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /boards/{boardId}/lists/{listId} [put]
func (h *BoardContentHandler) RenameList(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}

	var req dto.UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	list, err := h.contentService.RenameList(c.Request.Context(), boardID, listID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, list)
}

// MoveList godoc
// @Summary      Move a list to a new position
// @Tags         lists
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        listId path string true "List ID (UUID)"
// @Param        request body dto.MoveRequest true "Target position"
// @Success      200 {object} dto.ListResponse
// @Failure      400 {object} response.ErrorBody
// @Router       /boards/{boardId}/lists/{listId}/move [put]
func (h *BoardContentHandler) MoveList(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}

	var req dto.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	list, err := h.contentService.MoveList(c.Request.Context(), boardID, listID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, list)
}

// DeleteList godoc
// @Summary      Delete a list and its cards
// @Tags         lists
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        listId path string true "List ID (UUID)"
// @Success      200 {object} map[string]string
// @Failure      404 {object} response.ErrorBody
// @Router       /boards/{boardId}/lists/{listId} [delete]
func (h *BoardContentHandler) DeleteList(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}

	if err := h.contentService.DeleteList(c.Request.Context(), boardID, listID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "List deleted"})
}

// CreateCard godoc
// @Summary      Create a card
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.CreateCardRequest true "Card to create"
// @Success      201 {object} dto.CardResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /boards/{boardId}/cards [post]
func (h *BoardContentHandler) CreateCard(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}

	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	card, err := h.contentService.CreateCard(c.Request.Context(), boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, card)
}

// ListCards godoc
// @Summary      List cards on a board
// @Description  Optionally scoped to one list via the listId query parameter
// @Tags         cards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        listId query string false "List ID (UUID)"
// @Success      200 {array} dto.CardResponse
// @Failure      403 {object} response.ErrorBody
// @Router       /boards/{boardId}/cards [get]
func (h *BoardContentHandler) ListCards(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}

	var listID *uuid.UUID
	if raw := c.Query("listId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid listId")
			return
		}
		listID = &parsed
	}

	cards, err := h.contentService.ListCards(c.Request.Context(), boardID, listID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, cards)
}

// GetCard godoc
// @Summary      Get a card
// @Tags         cards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        cardId path string true "Card ID (UUID)"
// @Success      200 {object} dto.CardResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /boards/{boardId}/cards/{cardId} [get]
func (h *BoardContentHandler) GetCard(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	cardID, ok := parseUUIDParam(c, "cardId")
	if !ok {
		return
	}

	card, err := h.contentService.GetCard(c.Request.Context(), boardID, cardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, card)
}

// UpdateCard godoc
// @Summary      Update a card's fields
// @Description  Start date must not be after due date
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        cardId path string true "Card ID (UUID)"
// @Param        request body dto.UpdateCardRequest true "Fields to update"
// @Success      200 {object} dto.CardResponse
// @Failure      400 {object} response.ErrorBody
// @Router       /boards/{boardId}/cards/{cardId} [put]
func (h *BoardContentHandler) UpdateCard(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	cardID, ok := parseUUIDParam(c, "cardId")
	if !ok {
		return
	}

	var req dto.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	card, err := h.contentService.UpdateCard(c.Request.Context(), boardID, cardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, card)
}

// MoveCard godoc
// @Summary      Move a card within or across lists
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        cardId path string true "Card ID (UUID)"
// @Param        request body dto.MoveRequest true "Target position and optional target list"
// @Success      200 {object} dto.CardResponse
// @Failure      400 {object} response.ErrorBody
// @Router       /boards/{boardId}/cards/{cardId}/move [put]
func (h *BoardContentHandler) MoveCard(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	cardID, ok := parseUUIDParam(c, "cardId")
	if !ok {
		return
	}

	var req dto.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	card, err := h.contentService.MoveCard(c.Request.Context(), boardID, cardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, card)
}

// DeleteCard godoc
// @Summary      Delete a card and its comments
// @Tags         cards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        cardId path string true "Card ID (UUID)"
// @Success      200 {object} map[string]string
// @Failure      404 {object} response.ErrorBody
// @Router       /boards/{boardId}/cards/{cardId} [delete]
func (h *BoardContentHandler) DeleteCard(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	cardID, ok := parseUUIDParam(c, "cardId")
	if !ok {
		return
	}

	if err := h.contentService.DeleteCard(c.Request.Context(), boardID, cardID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Card deleted"})
}

// AssignMember godoc
// @Summary      Assign a board member to a card
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        cardId path string true "Card ID (UUID)"
// @Param        request body dto.AssigneeRequest true "Member to assign"
// @Success      200 {object} dto.CardResponse
// @Failure      409 {object} response.ErrorBody
// @Router       /boards/{boardId}/cards/{cardId}/assignees [post]
func (h *BoardContentHandler) AssignMember(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	cardID, ok := parseUUIDParam(c, "cardId")
	if !ok {
		return
	}

	var req dto.AssigneeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	card, err := h.contentService.AssignMember(c.Request.Context(), boardID, cardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, card)
}

// UnassignMember godoc
// @Summary      Unassign a member from a card
// @Tags         cards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        cardId path string true "Card ID (UUID)"
// @Param        userId path string true "User ID (UUID)"
// @Success      200 {object} dto.CardResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /boards/{boardId}/cards/{cardId}/assignees/{userId} [delete]
func (h *BoardContentHandler) UnassignMember(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	cardID, ok := parseUUIDParam(c, "cardId")
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	card, err := h.contentService.UnassignMember(c.Request.Context(), boardID, cardID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, card)
}

// AttachLabel godoc
// @Summary      Attach a board label to a card
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        cardId path string true "Card ID (UUID)"
// @Param        request body dto.CardLabelRequest true "Label to attach"
// @Success      200 {object} dto.CardResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /boards/{boardId}/cards/{cardId}/labels [post]
func (h *BoardContentHandler) AttachLabel(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	cardID, ok := parseUUIDParam(c, "cardId")
	if !ok {
		return
	}

	var req dto.CardLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	card, err := h.contentService.AttachLabel(c.Request.Context(), boardID, cardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, card)
}

// DetachLabel godoc
// @Summary      Detach a label from a card
// @Tags         cards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        cardId path string true "Card ID (UUID)"
// @Param        labelId path string true "Label ID (UUID)"
// @Success      200 {object} dto.CardResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /boards/{boardId}/cards/{cardId}/labels/{labelId} [delete]
func (h *BoardContentHandler) DetachLabel(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	cardID, ok := parseUUIDParam(c, "cardId")
	if !ok {
		return
	}
	labelID, ok := parseUUIDParam(c, "labelId")
	if !ok {
		return
	}

	card, err := h.contentService.DetachLabel(c.Request.Context(), boardID, cardID, labelID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, card)
}

// AddChecklist godoc
// @Summary      Add a checklist to a card
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        cardId path string true "Card ID (UUID)"
// @Param        request body dto.ChecklistRequest true "Checklist to add"
// @Success      200 {object} dto.CardResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /boards/{boardId}/cards/{cardId}/checklists [post]
func (h *BoardContentHandler) AddChecklist(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	cardID, ok := parseUUIDParam(c, "cardId")
	if !ok {
		return
	}

	var req dto.ChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	card, err := h.contentService.AddChecklist(c.Request.Context(), boardID, cardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, card)
}

// RemoveChecklist godoc
// @Summary      Remove a checklist from a card
// @Tags         cards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        cardId path string true "Card ID (UUID)"
// @Param        checklistId path string true "Checklist ID (UUID)"
// @Success      200 {object} dto.CardResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /boards/{boardId}/cards/{cardId}/checklists/{checklistId} [delete]
func (h *BoardContentHandler) RemoveChecklist(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	cardID, ok := parseUUIDParam(c, "cardId")
	if !ok {
		return
	}
	checklistID, ok := parseUUIDParam(c, "checklistId")
	if !ok {
		return
	}

	card, err := h.contentService.RemoveChecklist(c.Request.Context(), boardID, cardID, checklistID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, card)
}

// AddChecklistItem godoc
// @Summary      Add an item to a checklist
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        cardId path string true "Card ID (UUID)"
// @Param        checklistId path string true "Checklist ID (UUID)"
// @Param        request body dto.ChecklistItemRequest true "Item to add"
// @Success      200 {object} dto.CardResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /boards/{boardId}/cards/{cardId}/checklists/{checklistId}/items [post]
func (h *BoardContentHandler) AddChecklistItem(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	cardID, ok := parseUUIDParam(c, "cardId")
	if !ok {
		return
	}
	checklistID, ok := parseUUIDParam(c, "checklistId")
	if !ok {
		return
	}

	var req dto.ChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	card, err := h.contentService.AddChecklistItem(c.Request.Context(), boardID, cardID, checklistID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, card)
}

// ToggleChecklistItem godoc
// @Summary      Mark a checklist item done or not done
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        cardId path string true "Card ID (UUID)"
// @Param        checklistId path string true "Checklist ID (UUID)"
// @Param        itemId path string true "Item ID (UUID)"
// @Param        request body dto.ChecklistItemToggleRequest true "Done flag"
// @Success      200 {object} dto.CardResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /boards/{boardId}/cards/{cardId}/checklists/{checklistId}/items/{itemId} [put]
func (h *BoardContentHandler) ToggleChecklistItem(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	cardID, ok := parseUUIDParam(c, "cardId")
	if !ok {
		return
	}
	checklistID, ok := parseUUIDParam(c, "checklistId")
	if !ok {
		return
	}
	itemID, ok := parseUUIDParam(c, "itemId")
	if !ok {
		return
	}

	var req dto.ChecklistItemToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	card, err := h.contentService.ToggleChecklistItem(c.Request.Context(), boardID, cardID, checklistID, itemID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, card)
}

// RemoveChecklistItem godoc
// @Summary      Remove a checklist item
// @Tags         cards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        cardId path string true "Card ID (UUID)"
// @Param        checklistId path string true "Checklist ID (UUID)"
// @Param        itemId path string true "Item ID (UUID)"
// @Success      200 {object} dto.CardResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /boards/{boardId}/cards/{cardId}/checklists/{checklistId}/items/{itemId} [delete]
func (h *BoardContentHandler) RemoveChecklistItem(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	cardID, ok := parseUUIDParam(c, "cardId")
	if !ok {
		return
	}
	checklistID, ok := parseUUIDParam(c, "checklistId")
	if !ok {
		return
	}
	itemID, ok := parseUUIDParam(c, "itemId")
	if !ok {
		return
	}

	card, err := h.contentService.RemoveChecklistItem(c.Request.Context(), boardID, cardID, checklistID, itemID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, card)
}

// AddComment godoc
// @Summary      Comment on a card
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        cardId path string true "Card ID (UUID)"
// @Param        request body dto.CreateCommentRequest true "Comment to add"
// @Success      201 {object} dto.CommentResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /boards/{boardId}/cards/{cardId}/comments [post]
func (h *BoardContentHandler) AddComment(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	cardID, ok := parseUUIDParam(c, "cardId")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	comment, err := h.contentService.AddComment(c.Request.Context(), boardID, cardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, comment)
}

// ListComments godoc
// @Summary      List a card's comments
// @Tags         comments
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        cardId path string true "Card ID (UUID)"
// @Success      200 {array} dto.CommentResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /boards/{boardId}/cards/{cardId}/comments [get]
func (h *BoardContentHandler) ListComments(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	cardID, ok := parseUUIDParam(c, "cardId")
	if !ok {
		return
	}

	comments, err := h.contentService.ListComments(c.Request.Context(), boardID, cardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comments)
}

// UpdateComment godoc
// @Summary      Edit a comment
// @Description  Only the author may edit
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        commentId path string true "Comment ID (UUID)"
// @Param        request body dto.UpdateCommentRequest true "New content"
// @Success      200 {object} dto.CommentResponse
// @Failure      403 {object} response.ErrorBody
// @Router       /boards/{boardId}/comments/{commentId} [put]
func (h *BoardContentHandler) UpdateComment(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	commentID, ok := parseUUIDParam(c, "commentId")
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	comment, err := h.contentService.UpdateComment(c.Request.Context(), boardID, commentID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  The author or a board admin may delete
// @Tags         comments
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        commentId path string true "Comment ID (UUID)"
// @Success      200 {object} map[string]string
// @Failure      403 {object} response.ErrorBody
// @Router       /boards/{boardId}/comments/{commentId} [delete]
func (h *BoardContentHandler) DeleteComment(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	commentID, ok := parseUUIDParam(c, "commentId")
	if !ok {
		return
	}

	if err := h.contentService.DeleteComment(c.Request.Context(), boardID, commentID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Comment deleted"})
}
