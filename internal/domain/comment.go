package domain

import "github.com/google/uuid"

// CardComment represents a comment on a kanban card.
// Author details are enriched from the user lookup at read time.
type CardComment struct {
	BaseModel
	CardID   uuid.UUID `gorm:"type:uuid;not null;index:idx_card_comments_card_id" json:"card_id"`
	BoardID  uuid.UUID `gorm:"type:uuid;not null;index:idx_card_comments_board_id" json:"board_id"`
	AuthorID uuid.UUID `gorm:"type:uuid;not null;index:idx_card_comments_author_id" json:"author_id"`
	Content  string    `gorm:"type:text;not null" json:"content"`
}

// TableName specifies the table name for CardComment
func (CardComment) TableName() string {
	return "card_comments"
}
