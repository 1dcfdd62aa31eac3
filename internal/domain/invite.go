package domain

import (
	"time"

	"github.com/google/uuid"
)

// InviteStatus represents the lifecycle state of an invite.
// PENDING is the only non-terminal state; terminal states are never reopened.
type InviteStatus string

const (
	InviteStatusPending   InviteStatus = "PENDING"
	InviteStatusAccepted  InviteStatus = "ACCEPTED"
	InviteStatusDeclined  InviteStatus = "DECLINED"
	InviteStatusCancelled InviteStatus = "CANCELLED"
	InviteStatusExpired   InviteStatus = "EXPIRED"
)

// InviteTTL is how long a pending invite stays acceptable
const InviteTTL = 7 * 24 * time.Hour

// WorkspaceInvite represents an invitation of a user into a workspace.
// At most one PENDING invite may exist per (workspace, invitee) pair.
type WorkspaceInvite struct {
	BaseModel
	WorkspaceID uuid.UUID    `gorm:"type:uuid;not null;index:idx_workspace_invites_workspace_id" json:"workspace_id"`
	InviteeID   uuid.UUID    `gorm:"type:uuid;not null;index:idx_workspace_invites_invitee_id" json:"invitee_id"`
	InviterID   uuid.UUID    `gorm:"type:uuid;not null" json:"inviter_id"`
	Role        WorkspaceRole `gorm:"type:varchar(20);not null;default:'MEMBER'" json:"role"`
	Status      InviteStatus `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_workspace_invites_status" json:"status"`
	ExpiresAt   time.Time    `gorm:"not null" json:"expires_at"`

	Invitee *User `gorm:"foreignKey:InviteeID" json:"invitee,omitempty"`
}

// TableName specifies the table name for WorkspaceInvite
func (WorkspaceInvite) TableName() string {
	return "workspace_invites"
}

// Expired reports whether the invite's deadline has passed at the given time
func (i *WorkspaceInvite) Expired(now time.Time) bool {
	return i.ExpiresAt.Before(now)
}

// BoardInvite mirrors WorkspaceInvite, scoped to a board
type BoardInvite struct {
	BaseModel
	BoardID   uuid.UUID    `gorm:"type:uuid;not null;index:idx_board_invites_board_id" json:"board_id"`
	InviteeID uuid.UUID    `gorm:"type:uuid;not null;index:idx_board_invites_invitee_id" json:"invitee_id"`
	InviterID uuid.UUID    `gorm:"type:uuid;not null" json:"inviter_id"`
	Role      BoardRole    `gorm:"type:varchar(20);not null;default:'MEMBER'" json:"role"`
	Status    InviteStatus `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_board_invites_status" json:"status"`
	ExpiresAt time.Time    `gorm:"not null" json:"expires_at"`

	Invitee *User `gorm:"foreignKey:InviteeID" json:"invitee,omitempty"`
}

// TableName specifies the table name for BoardInvite
func (BoardInvite) TableName() string {
	return "board_invites"
}

// Expired reports whether the invite's deadline has passed at the given time
func (i *BoardInvite) Expired(now time.Time) bool {
	return i.ExpiresAt.Before(now)
}
