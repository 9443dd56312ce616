package config

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"lgs.et/fleet/models"
)

// RunAllSeeding bootstraps the rows the dashboard cannot work without.
// Each step skips anything that already exists.
func RunAllSeeding() error {
	if err := seedAdminSettings(); err != nil {
		return err
	}
	return seedBootstrapUser()
}

// seedAdminSettings inserts the admin access code if no row exists yet.
// The initial value comes from ADMIN_ACCESS_CODE and can be rotated from
// the settings page afterwards.
func seedAdminSettings() error {
	var existing models.AdminSetting
	err := DB.Where("setting_key = ?", models.AdminAccessCodeKey).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	code := os.Getenv("ADMIN_ACCESS_CODE")
	if code == "" {
		log.Println("ADMIN_ACCESS_CODE not set, admin area stays locked until configured")
		return nil
	}
	return DB.Create(&models.AdminSetting{
		SettingKey:   models.AdminAccessCodeKey,
		SettingValue: code,
	}).Error
}

// seedBootstrapUser creates the first General Manager account from
// BOOTSTRAP_GM_EMAIL / BOOTSTRAP_GM_PASSWORD when the users table is
// empty, so a fresh install can be logged into.
func seedBootstrapUser() error {
	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("BOOTSTRAP_GM_EMAIL")
	password := os.Getenv("BOOTSTRAP_GM_PASSWORD")
	if email == "" || password == "" {
		log.Println("no users and no bootstrap credentials set; register is open for the first account")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.User{
		Name:         "General Manager",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleGeneralManager,
		IsActive:     true,
	}
	if err := DB.Create(&user).Error; err != nil {
		return err
	}
	log.Println("seeded bootstrap General Manager account:", email)
	return nil
}
