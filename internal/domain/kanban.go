package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// KanbanList represents an ordered column of cards within a board.
// Position is a floating-point ordering key maintained by the position allocator.
type KanbanList struct {
	BaseModel
	BoardID  uuid.UUID `gorm:"type:uuid;not null;index:idx_kanban_lists_board_id" json:"board_id"`
	Title    string    `gorm:"type:varchar(255);not null" json:"title"`
	Position float64   `gorm:"not null;index:idx_kanban_lists_position" json:"position"`
}

// TableName specifies the table name for KanbanList
func (KanbanList) TableName() string {
	return "kanban_lists"
}

// KanbanCard represents a card within a list.
// Labels, Checklists and Assignees are stored as JSON on the card row so the
// card aggregate is always written atomically with its owned collections.
type KanbanCard struct {
	BaseModel
	BoardID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_kanban_cards_board_id" json:"board_id"`
	ListID      uuid.UUID      `gorm:"type:uuid;not null;index:idx_kanban_cards_list_id" json:"list_id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Position    float64        `gorm:"not null;index:idx_kanban_cards_position" json:"position"`
	StartDate   *time.Time     `gorm:"type:timestamp" json:"start_date,omitempty"`
	DueDate     *time.Time     `gorm:"type:timestamp" json:"due_date,omitempty"`
	Labels      datatypes.JSON `gorm:"type:jsonb" json:"labels,omitempty"`
	Checklists  datatypes.JSON `gorm:"type:jsonb" json:"checklists,omitempty"`
	Assignees   datatypes.JSON `gorm:"type:jsonb" json:"assignees,omitempty"`
}

// TableName specifies the table name for KanbanCard
func (KanbanCard) TableName() string {
	return "kanban_cards"
}

// DecodeLabels unmarshals the label id set stored on the card
func (c *KanbanCard) DecodeLabels() ([]uuid.UUID, error) {
	if len(c.Labels) == 0 {
		return nil, nil
	}
	var labels []uuid.UUID
	if err := json.Unmarshal(c.Labels, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

// EncodeLabels marshals the label id set back onto the card
func (c *KanbanCard) EncodeLabels(labels []uuid.UUID) error {
	data, err := json.Marshal(labels)
	if err != nil {
		return err
	}
	c.Labels = datatypes.JSON(data)
	return nil
}

// DecodeAssignees unmarshals the assignee id set stored on the card
func (c *KanbanCard) DecodeAssignees() ([]uuid.UUID, error) {
	if len(c.Assignees) == 0 {
		return nil, nil
	}
	var assignees []uuid.UUID
	if err := json.Unmarshal(c.Assignees, &assignees); err != nil {
		return nil, err
	}
	return assignees, nil
}

// EncodeAssignees marshals the assignee id set back onto the card
func (c *KanbanCard) EncodeAssignees(assignees []uuid.UUID) error {
	data, err := json.Marshal(assignees)
	if err != nil {
		return err
	}
	c.Assignees = datatypes.JSON(data)
	return nil
}

// DecodeChecklists unmarshals the checklists stored on the card
func (c *KanbanCard) DecodeChecklists() ([]Checklist, error) {
	if len(c.Checklists) == 0 {
		return nil, nil
	}
	var checklists []Checklist
	if err := json.Unmarshal(c.Checklists, &checklists); err != nil {
		return nil, err
	}
	return checklists, nil
}

// EncodeChecklists marshals the checklists back onto the card
func (c *KanbanCard) EncodeChecklists(checklists []Checklist) error {
	data, err := json.Marshal(checklists)
	if err != nil {
		return err
	}
	c.Checklists = datatypes.JSON(data)
	return nil
}

// Checklist is a titled group of checklist items owned by one card
type Checklist struct {
	ID    uuid.UUID       `json:"id"`
	Title string          `json:"title"`
	Items []ChecklistItem `json:"items"`
}

// ChecklistItem is a single checkable entry within a checklist
type ChecklistItem struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Done  bool      `json:"done"`
}
