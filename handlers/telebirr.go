package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"lgs.et/fleet/config"
	"lgs.et/fleet/middleware"
	"lgs.et/fleet/models"
	"lgs.et/fleet/utils"
)

func GetAllTelebirrTransactions(w http.ResponseWriter, r *http.Request) {
	params, err := models.ParseListParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q := config.DB.Model(&models.TelebirrTransaction{}).Order("date DESC").Limit(params.Limit)
	if params.Status != "" {
		q = q.Where("status = ?", params.Status)
	}
	if params.Search != "" {
		q = q.Where("agent_name ILIKE ?", "%"+params.Search+"%")
	}

	var txs []models.TelebirrTransaction
	if err := q.Find(&txs).Error; err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}

func CreateTelebirrTransaction(w http.ResponseWriter, r *http.Request) {
	var item models.TelebirrTransaction
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	// Fill the agent name from the staff directory when only the id was
	// posted.
	if item.AgentName == "" && item.AgentID != uuid.Nil {
		var agent models.Staff
		if err := config.DB.First(&agent, "id = ?", item.AgentID).Error; err == nil {
			item.AgentName = agent.Name
		}
	}

	if err := item.ValidateForCreate(); err != nil {
		writeDomainError(w, err)
		return
	}

	item.ID = uuid.Nil
	item.Status = models.StatusPending
	item.ApprovedAt = nil
	item.RejectedAt = nil
	item.RejectionReason = ""
	if item.Date.IsZero() {
		item.Date = models.JSONTime(time.Now().UTC())
	}
	item.Recalculate()

	if err := config.DB.Create(&item).Error; err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func GetTelebirrTransaction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.TelebirrTransaction
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// UpdateTelebirrTransaction edits a pending entry. The stored variance
// is re-derived from the edited amounts so it can never drift from its
// inputs.
func UpdateTelebirrTransaction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.TelebirrTransaction
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		writeDomainError(w, err)
		return
	}
	if item.Status != models.StatusPending {
		writeDomainError(w, &models.InvalidTransitionError{From: item.Status, To: models.StatusPending})
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	item.ID = uuid.MustParse(id)
	item.Status = models.StatusPending

	if err := item.ValidateForCreate(); err != nil {
		writeDomainError(w, err)
		return
	}
	item.Recalculate()

	if err := config.DB.Save(&item).Error; err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func ApproveTelebirrTransaction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.TelebirrTransaction
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		writeDomainError(w, err)
		return
	}

	user := middleware.GetUser(r)
	var supervisorID *uuid.UUID
	if uid, err := uuid.Parse(middleware.GetUserID(r)); err == nil {
		supervisorID = &uid
	}

	if err := item.Approve(supervisorID, user.Name, time.Now().UTC()); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := config.DB.Save(&item).Error; err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func RejectTelebirrTransaction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.TelebirrTransaction
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

// GetTelebirrStats returns ledger totals, a variance distribution and
// per-agent performance over the full transaction list.
func GetTelebirrStats(w http.ResponseWriter, r *http.Request) {
	var txs []models.TelebirrTransaction
	if err := config.DB.Order("date DESC").Find(&txs).Error; err != nil {
		writeDomainError(w, err)
		return
	}

	variances := make([]float64, len(txs))
	for i, t := range txs {
		variances[i] = t.Variance
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"totals":   models.BuildLedgerStats(txs),
		"variance": utils.Summarize(variances),
		"agents":   models.BuildAgentPerformance(txs),
	})
}
