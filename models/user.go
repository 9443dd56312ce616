package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a login account for the dashboard. Staff directory entries are
// a separate table; a user may reference one.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	Email        string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Role         string     `gorm:"size:50;not null" json:"role"`
	StaffID      *uuid.UUID `gorm:"type:uuid" json:"staffId,omitempty"`
	IsActive     bool       `gorm:"default:true" json:"isActive"`

	// One-shot password reset token, delivered out-of-band.
	ResetToken       *string    `gorm:"size:64;index" json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}
