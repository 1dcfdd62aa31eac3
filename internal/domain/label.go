package domain

import "github.com/google/uuid"

// Label is a board-scoped label definition; cards reference labels by ID
type Label struct {
	BaseModel
	BoardID uuid.UUID `gorm:"type:uuid;not null;index:idx_labels_board_id" json:"board_id"`
	Name    string    `gorm:"type:varchar(100);not null" json:"name"`
	Color   string    `gorm:"type:varchar(20);not null" json:"color"`
}

// TableName specifies the table name for Label
func (Label) TableName() string {
	return "labels"
}
