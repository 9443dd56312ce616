package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
	"lgs.et/fleet/config"
	"lgs.et/fleet/middleware"
	"lgs.et/fleet/models"
	"lgs.et/fleet/utils"
)

// GetAllDispatchRecords lists the register newest-first with optional
// server-side status and search filters.
func GetAllDispatchRecords(w http.ResponseWriter, r *http.Request) {
	params, err := models.ParseListParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q := config.DB.Model(&models.DispatchRecord{}).Order("created_at DESC").Limit(params.Limit)
	if params.Status != "" {
		q = q.Where("status = ?", params.Status)
	}
	if params.Search != "" {
		like := "%" + params.Search + "%"
		q = q.Where("serial_no ILIKE ? OR customer_name ILIKE ? OR destination_city ILIKE ?", like, like, like)
	}

	var records []models.DispatchRecord
	if err := q.Find(&records).Error; err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

type createDispatchReq struct {
	models.DispatchRecord
	ModelOther string `json:"modelOther"`
}

func CreateDispatchRecord(w http.ResponseWriter, r *http.Request) {
	var req createDispatchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	item := req.DispatchRecord
	resolved, err := models.ResolveModel(item.Model, req.ModelOther)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	item.Model = resolved

	if err := item.ValidateForCreate(); err != nil {
		writeDomainError(w, err)
		return
	}

	if item.DropLatitude != nil && item.DropLongitude != nil {
		if err := checkDeliveryZone(item.DestinationCity, *item.DropLatitude, *item.DropLongitude); err != nil {
			writeDomainError(w, err)
			return
		}
	}

	// Server owns the lifecycle fields regardless of what was posted.
	item.ID = uuid.Nil
	item.Status = models.StatusPending
	item.ApprovedAt = nil
	item.RejectedAt = nil
	item.RejectionReason = ""
	if item.Checklist.KeysCount == 0 {
		item.Checklist.KeysCount = 2
	}

	user := middleware.GetUser(r)
	item.QcInspectorName = user.Name
	if uid, err := uuid.Parse(middleware.GetUserID(r)); err == nil {
		item.CreatedBy = &uid
		item.QcInspectorID = &uid
	}

	if err := config.DB.Create(&item).Error; err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// checkDeliveryZone verifies reported drop coordinates against the
// destination city's boundary when one is on file. Cities without a
// zone are not checked.
func checkDeliveryZone(city string, lat, lng float64) error {
	var zone models.DeliveryZone
	err := config.DB.Where("city ILIKE ?", city).First(&zone).Error
	if err == gorm.ErrRecordNotFound {
		return utils.ValidateCoordinate(lat, lng)
	}
	if err != nil {
		return err
	}

	inside, err := utils.PointInZone(zone.Boundary, lat, lng)
	if err != nil {
		return err
	}
	if !inside {
		return &models.ValidationError{Fields: []string{"dropLatitude", "dropLongitude"}}
	}
	return nil
}

func GetDispatchRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.DispatchRecord
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// UpdateDispatchRecord overwrites editable fields. Status and the
// approval stamps only move through the approve/reject endpoints.
func UpdateDispatchRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.DispatchRecord
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		writeDomainError(w, err)
		return
	}

	status := item.Status
	approvedAt, rejectedAt := item.ApprovedAt, item.RejectedAt
	managerID, managerName := item.DispatchManagerID, item.DispatchManagerName
	reason := item.RejectionReason
	createdBy := item.CreatedBy

	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	item.ID = uuid.MustParse(id)
	item.Status = status
	item.ApprovedAt, item.RejectedAt = approvedAt, rejectedAt
	item.DispatchManagerID, item.DispatchManagerName = managerID, managerName
	item.RejectionReason = reason
	item.CreatedBy = createdBy

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

// SubmitDispatchRecord runs the checklist gate. The record stays pending
// either way; an incomplete checklist is reported per category.
func SubmitDispatchRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.DispatchRecord
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		writeDomainError(w, err)
		return
	}

	if err := item.SubmitForApproval(); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

type approveDispatchReq struct {
	ManagerName string `json:"managerName"`
	Signature   string `json:"signature"`
}

func ApproveDispatchRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.DispatchRecord
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		writeDomainError(w, err)
		return
	}

	var req approveDispatchReq
	json.NewDecoder(r.Body).Decode(&req)

	user := middleware.GetUser(r)
	managerName := req.ManagerName
	if managerName == "" {
		managerName = user.Name
	}
	var managerID *uuid.UUID
	if uid, err := uuid.Parse(middleware.GetUserID(r)); err == nil {
		managerID = &uid
	}

	// Approval implies the checklist gate has been passed.
	if err := item.SubmitForApproval(); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := item.Approve(managerID, managerName, time.Now().UTC()); err != nil {
		writeDomainError(w, err)
		return
	}
	if req.Signature != "" {
		item.DispatchManagerSignature = req.Signature
	}

	if err := config.DB.Save(&item).Error; err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

type rejectReq struct {
	Reason string `json:"reason"`
}

func RejectDispatchRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.DispatchRecord
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		writeDomainError(w, err)
		return
	}

	var req rejectReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Reason == "" {
		http.Error(w, "rejection reason is required", http.StatusBadRequest)
		return
	}

	if err := item.Reject(req.Reason, time.Now().UTC()); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := config.DB.Save(&item).Error; err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}
