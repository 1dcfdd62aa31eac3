package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account referenced by memberships and invites.
// Accounts are provisioned by the external identity service; this service
// only reads them to resolve invite targets and enrich comment authorship.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email" json:"email"`
	Name      string    `gorm:"type:varchar(255)" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
