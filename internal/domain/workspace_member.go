package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkspaceRole represents the role of a workspace member
type WorkspaceRole string

const (
	WorkspaceRoleOwner  WorkspaceRole = "OWNER"
	WorkspaceRoleAdmin  WorkspaceRole = "ADMIN"
	WorkspaceRoleMember WorkspaceRole = "MEMBER"
	WorkspaceRoleGuest  WorkspaceRole = "GUEST"
)

// WorkspaceMember represents a member of a workspace.
// Exactly one member per workspace holds the OWNER role at all times.
type WorkspaceMember struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	WorkspaceID uuid.UUID     `gorm:"type:uuid;not null;index:idx_workspace_members_workspace_id;uniqueIndex:uq_workspace_members_workspace_user" json:"workspace_id"`
	UserID      uuid.UUID     `gorm:"type:uuid;not null;index:idx_workspace_members_user_id;uniqueIndex:uq_workspace_members_workspace_user" json:"user_id"`
	Role        WorkspaceRole `gorm:"type:varchar(20);not null;default:'MEMBER';index:idx_workspace_members_role" json:"role"`
	JoinedAt    time.Time     `gorm:"not null" json:"joined_at"`
	UpdatedAt   time.Time     `gorm:"not null" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for WorkspaceMember
func (WorkspaceMember) TableName() string {
	return "workspace_members"
}

// BeforeCreate generates a UUID when the database default is unavailable
func (m *WorkspaceMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.JoinedAt.IsZero() {
		m.JoinedAt = time.Now()
	}
	return nil
}
