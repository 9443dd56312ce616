package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"lgs.et/fleet/config"
	"lgs.et/fleet/middleware"
	"lgs.et/fleet/models"
)

func GetAllVehicles(w http.ResponseWriter, r *http.Request) {
	params, err := models.ParseListParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q := config.DB.Model(&models.Vehicle{}).Order("created_at DESC").Limit(params.Limit)
	if params.Status != "" {
		q = q.Where("status = ?", params.Status)
	}
	if params.Search != "" {
		like := "%" + params.Search + "%"
		q = q.Where("serial_no ILIKE ? OR model ILIKE ? OR customer_name ILIKE ?", like, like, like)
	}

	var vehicles []models.Vehicle
	if err := q.Find(&vehicles).Error; err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var item models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if item.Status == "" {
		item.Status = models.VehicleAvailable
	}
	if item.Condition == "" {
		item.Condition = "good"
	}
	if err := item.ValidateForCreate(); err != nil {
		writeDomainError(w, err)
		return
	}

	item.ID = uuid.Nil
	if err := config.DB.Create(&item).Error; err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func GetVehicle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Vehicle
	if err := config.DB.Preload("MaintenanceRecords").First(&item, "id = ?", id).Error; err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Vehicle
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

func DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result := config.DB.Delete(&models.Vehicle{}, "id = ?", id)
	if result.Error != nil {
		writeDomainError(w, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "vehicle removed"})
}

// FlagVehicleForMaintenance forces the unit into maintenance. Sold units
// are refused.
func FlagVehicleForMaintenance(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Vehicle
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		writeDomainError(w, err)
		return
	}

	if err := item.FlagForMaintenance(); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := config.DB.Save(&item).Error; err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// SetVehicleRental toggles the rental sub-object. Toggling off clears
// the renter fields.
func SetVehicleRental(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Vehicle
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		writeDomainError(w, err)
		return
	}

	var info models.RentalInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	item.SetRental(info)
	if err := config.DB.Save(&item).Error; err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func GetMaintenanceRecords(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var records []models.MaintenanceRecord
	if err := config.DB.Where("vehicle_id = ?", id).
		Order("maintenance_date DESC").Find(&records).Error; err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// AddMaintenanceRecord appends a maintenance entry to the vehicle and
// stamps the vehicle's last-maintenance date.
func AddMaintenanceRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, "id = ?", id).Error; err != nil {
		writeDomainError(w, err)
		return
	}

	var record models.MaintenanceRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if record.Description == "" {
		writeDomainError(w, &models.ValidationError{Fields: []string{"description"}})
		return
	}

	record.ID = uuid.Nil
	record.VehicleID = vehicle.ID
	if record.MechanicName == "" {
		record.MechanicName = middleware.GetUser(r).Name
	}

	if err := config.DB.Create(&record).Error; err != nil {
		writeDomainError(w, err)
		return
	}

	vehicle.LastMaintenanceDate = &record.MaintenanceDate
	config.DB.Save(&vehicle)

	writeJSON(w, http.StatusCreated, record)
}

// CompleteMaintenanceRecord marks an entry done and drops the vehicle's
// maintenance flag when nothing else is open.
func CompleteMaintenanceRecord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleID, recordID := vars["id"], vars["recordId"]

	var record models.MaintenanceRecord
	if err := config.DB.First(&record, "id = ? AND vehicle_id = ?", recordID, vehicleID).Error; err != nil {
		writeDomainError(w, err)
		return
	}

	record.Completed = true
	if err := config.DB.Save(&record).Error; err != nil {
		writeDomainError(w, err)
		return
	}

	var open int64
	config.DB.Model(&models.MaintenanceRecord{}).
		Where("vehicle_id = ? AND completed = false", vehicleID).Count(&open)
	if open == 0 {
		config.DB.Model(&models.Vehicle{}).Where("id = ?", vehicleID).
			Update("flagged_for_maintenance", false)
	}

	writeJSON(w, http.StatusOK, record)
}
