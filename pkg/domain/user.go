package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a studio team member.
type UserID uuid.UUID

func (id UserID) String() string { return uuid.UUID(id).String() }

// User is a member of a tenant's team.
type User struct {
	ID       UserID   `json:"id"`
	TenantID TenantID `json:"tenantId"`

	Email Email  `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`

	// PasswordHash is empty for invited members who have not set a password yet.
	PasswordHash string `json:"-"`
	// ResetTokenHash and ResetExpiresAt describe an outstanding password reset.
	ResetTokenHash string    `json:"-"`
	ResetExpiresAt time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}
