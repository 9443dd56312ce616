package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
	"lgs.et/fleet/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250812_create_core_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{}, &models.Staff{}, &models.Vehicle{},
					&models.MaintenanceRecord{}, &models.DispatchRecord{},
					&models.TelebirrTransaction{}, &models.AdminSetting{})
			},
		},
		{
			ID: "20250819_add_delivery_zones",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.DeliveryZone{})
			},
		},
		{
			ID: "20250826_index_dispatch_status_created",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec("CREATE INDEX IF NOT EXISTS idx_dispatch_status_created ON dispatch_records (status, created_at DESC)").Error
			},
		},
	})
	return m.Migrate()
}
