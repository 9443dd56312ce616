package models

import (
	"time"

	"github.com/google/uuid"
)

// Setting keys.
const AdminAccessCodeKey = "admin_access_code"

// AdminSetting is a key-value row in admin_settings. The admin access
// code lives here and is only ever compared server-side.
type AdminSetting struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SettingKey   string    `gorm:"column:setting_key;size:100;uniqueIndex;not null" json:"settingKey"`
	SettingValue string    `gorm:"column:setting_value;type:text;not null" json:"settingValue"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (AdminSetting) TableName() string {
	return "admin_settings"
}
