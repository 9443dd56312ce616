package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"lgs.et/fleet/config"
	"lgs.et/fleet/middleware"
	"lgs.et/fleet/models"
)

type verifyCodeReq struct {
	Code string `json:"code"`
}

// VerifyAdminAccessCode compares the submitted code against the stored
// admin access code server-side and mints a short-lived admin token on
// success. The stored value never leaves the server.
func VerifyAdminAccessCode(w http.ResponseWriter, r *http.Request) {
	var req verifyCodeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		http.Error(w, "code is required", http.StatusBadRequest)
		return
	}

	var setting models.AdminSetting
	err := config.DB.Where("setting_key = ?", models.AdminAccessCodeKey).First(&setting).Error
	if err == gorm.ErrRecordNotFound {
		http.Error(w, "admin access is not configured", http.StatusForbidden)
		return
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Code), []byte(setting.SettingValue)) != 1 {
		http.Error(w, "invalid access code", http.StatusForbidden)
		return
	}

	claims := middleware.GetClaims(r)
	token, err := middleware.GenerateAdminToken(claims.UserID, claims.Role, claims.Name, claims.Email)
	if err != nil {
		http.Error(w, "couldn't create token", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"adminToken": token})
}

// GetSettings lists admin settings with the access code value redacted.
func GetSettings(w http.ResponseWriter, r *http.Request) {
	var settings []models.AdminSetting
	if err := config.DB.Order("setting_key").Find(&settings).Error; err != nil {
		writeDomainError(w, err)
		return
	}
	for i := range settings {
		if settings[i].SettingKey == models.AdminAccessCodeKey {
			settings[i].SettingValue = "********"
		}
	}
	writeJSON(w, http.StatusOK, settings)
}

type upsertSettingReq struct {
	SettingKey   string `json:"settingKey"`
	SettingValue string `json:"settingValue"`
}

// UpsertSetting creates or overwrites one setting row. Rotating the
// admin access code invalidates nothing server-side; outstanding admin
// tokens simply expire.
func UpsertSetting(w http.ResponseWriter, r *http.Request) {
	var req upsertSettingReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.SettingKey == "" || req.SettingValue == "" {
		writeDomainError(w, &models.ValidationError{Fields: []string{"settingKey", "settingValue"}})
		return
	}

	var setting models.AdminSetting
	err := config.DB.Where("setting_key = ?", req.SettingKey).First(&setting).Error
	switch err {
	case nil:
		setting.SettingValue = req.SettingValue
		err = config.DB.Save(&setting).Error
	case gorm.ErrRecordNotFound:
		setting = models.AdminSetting{SettingKey: req.SettingKey, SettingValue: req.SettingValue}
		err = config.DB.Create(&setting).Error
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}

	setting.SettingValue = "********"
	writeJSON(w, http.StatusOK, setting)
}

func GetDeliveryZones(w http.ResponseWriter, r *http.Request) {
	var zones []models.DeliveryZone
	if err := config.DB.Order("city").Find(&zones).Error; err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, zones)
}

// UpsertDeliveryZone stores a destination-city boundary used to check
// reported drop coordinates.
func UpsertDeliveryZone(w http.ResponseWriter, r *http.Request) {
	var zone models.DeliveryZone
	if err := json.NewDecoder(r.Body).Decode(&zone); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if zone.City == "" || len(zone.Boundary) == 0 {
		writeDomainError(w, &models.ValidationError{Fields: []string{"city", "boundary"}})
		return
	}

	var existing models.DeliveryZone
	err := config.DB.Where("city ILIKE ?", zone.City).First(&existing).Error
	switch err {
	case nil:
		existing.Boundary = zone.Boundary
		zone = existing
		err = config.DB.Save(&zone).Error
	case gorm.ErrRecordNotFound:
		zone.ID = uuid.Nil
		err = config.DB.Create(&zone).Error
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, zone)
}
