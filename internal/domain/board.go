package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BoardVisibility controls who can see a board beyond its own members
type BoardVisibility string

const (
	BoardVisibilityPrivate   BoardVisibility = "PRIVATE"
	BoardVisibilityWorkspace BoardVisibility = "WORKSPACE"
)

// Board represents a kanban board belonging to exactly one workspace
type Board struct {
	BaseModel
	WorkspaceID uuid.UUID       `gorm:"type:uuid;not null;index:idx_boards_workspace_id" json:"workspace_id"`
	Title       string          `gorm:"type:varchar(255);not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Visibility  BoardVisibility `gorm:"type:varchar(20);not null;default:'PRIVATE'" json:"visibility"`

	Members []BoardMember `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"members,omitempty"`
	Invites []BoardInvite `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"invites,omitempty"`
	Lists   []KanbanList  `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"lists,omitempty"`
	Labels  []Label       `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"labels,omitempty"`
}

// TableName specifies the table name for Board
func (Board) TableName() string {
	return "boards"
}

// BoardRole represents the role of a board member
type BoardRole string

const (
	BoardRoleAdmin    BoardRole = "ADMIN"
	BoardRoleMember   BoardRole = "MEMBER"
	BoardRoleObserver BoardRole = "OBSERVER"
)

// BoardMember represents a member of a board.
// A board with at least one member always keeps at least one ADMIN,
// and a board never loses its last member through leave/remove.
type BoardMember struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BoardID   uuid.UUID `gorm:"type:uuid;not null;index:idx_board_members_board_id;uniqueIndex:uq_board_members_board_user" json:"board_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_board_members_user_id;uniqueIndex:uq_board_members_board_user" json:"user_id"`
	Role      BoardRole `gorm:"type:varchar(20);not null;default:'MEMBER';index:idx_board_members_role" json:"role"`
	JoinedAt  time.Time `gorm:"not null" json:"joined_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// BeforeCreate generates the ID and join timestamp when the database does not
func (m *BoardMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.JoinedAt.IsZero() {
		m.JoinedAt = time.Now()
	}
	return nil
}

// TableName specifies the table name for BoardMember
func (BoardMember) TableName() string {
	return "board_members"
}
