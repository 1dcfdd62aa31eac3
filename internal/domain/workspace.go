package domain

// BoardCreationPolicy controls which workspace roles may create boards
type BoardCreationPolicy string

const (
	PolicyAdminsOnly BoardCreationPolicy = "ADMINS_ONLY"
	PolicyAnyMember  BoardCreationPolicy = "ANY_MEMBER"
)

// Workspace is the top-level aggregate owning members, invites and boards
type Workspace struct {
	BaseModel
	Name                 string              `gorm:"type:varchar(255);not null" json:"name"`
	Description          string              `gorm:"type:text" json:"description"`
	PrivateBoardCreation BoardCreationPolicy `gorm:"type:varchar(20);not null;default:'ADMINS_ONLY'" json:"private_board_creation"`
	SharedBoardCreation  BoardCreationPolicy `gorm:"type:varchar(20);not null;default:'ADMINS_ONLY'" json:"shared_board_creation"`

	Members []WorkspaceMember `gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE" json:"members,omitempty"`
	Invites []WorkspaceInvite `gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE" json:"invites,omitempty"`
	Boards  []Board           `gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE" json:"boards,omitempty"`
}

// TableName specifies the table name for Workspace
func (Workspace) TableName() string {
	return "workspaces"
}
