package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"lgs.et/fleet/config"
	"lgs.et/fleet/models"
)

func GetAllStaff(w http.ResponseWriter, r *http.Request) {
	params, err := models.ParseListParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q := config.DB.Model(&models.Staff{}).Order("created_at DESC").Limit(params.Limit)
	if params.Search != "" {
		like := "%" + params.Search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ? OR role ILIKE ?", like, like, like)
	}

	var staff []models.Staff
	if err := q.Find(&staff).Error; err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, staff)
}

func CreateStaff(w http.ResponseWriter, r *http.Request) {
	var item models.Staff
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if err := item.ValidateForCreate(); err != nil {
		writeDomainError(w, err)
		return
	}

	item.ID = uuid.Nil
	item.IsActive = true
	if err := config.DB.Create(&item).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			http.Error(w, "email already in the directory", http.StatusConflict)
			return
		}
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func GetStaff(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Staff
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func UpdateStaff(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Staff
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		writeDomainError(w, err)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	item.ID = uuid.MustParse(id)

	if err := item.ValidateForCreate(); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := config.DB.Save(&item).Error; err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func DeleteStaff(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result := config.DB.Delete(&models.Staff{}, "id = ?", id)
	if result.Error != nil {
		writeDomainError(w, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "staff removed"})
}
