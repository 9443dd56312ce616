package handlers

import (
	"net/http"

	"lgs.et/fleet/config"
	"lgs.et/fleet/models"
	"lgs.et/fleet/utils"
)

type statusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// GetDashboard aggregates the numbers the landing page shows: fleet
// composition, dispatch register state, and the cash ledger summary.
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	var vehicleCounts []statusCount
	if err := config.DB.Model(&models.Vehicle{}).
		Select("status, count(*) as count").Group("status").
		Scan(&vehicleCounts).Error; err != nil {
		writeDomainError(w, err)
		return
	}

	var dispatchCounts []statusCount
	if err := config.DB.Model(&models.DispatchRecord{}).
		Select("status, count(*) as count").Group("status").
		Scan(&dispatchCounts).Error; err != nil {
		writeDomainError(w, err)
		return
	}

	var flagged int64
	config.DB.Model(&models.Vehicle{}).
		Where("flagged_for_maintenance = true").Count(&flagged)

	var activeStaff int64
	config.DB.Model(&models.Staff{}).Where("is_active = true").Count(&activeStaff)

	var txs []models.TelebirrTransaction
	if err := config.DB.Find(&txs).Error; err != nil {
		writeDomainError(w, err)
		return
	}
	variances := make([]float64, len(txs))
	for i, t := range txs {
		variances[i] = t.Variance
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"vehiclesByStatus":      vehicleCounts,
		"dispatchesByStatus":    dispatchCounts,
		"flaggedForMaintenance": flagged,
		"activeStaff":           activeStaff,
		"ledger":                models.BuildLedgerStats(txs),
		"ledgerVariance":        utils.Summarize(variances),
	})
}
