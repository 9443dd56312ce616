package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"lgs.et/fleet/config"
	"lgs.et/fleet/models"
)

// Admin-area account management. These sit behind the admin gate on top
// of the normal session.

func GetAllUsers(w http.ResponseWriter, r *http.Request) {
	var users []models.User
	if err := config.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]userPayload, len(users))
	for i, u := range users {
		out[i] = userPayload{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, IsActive: u.IsActive}
	}
	writeJSON(w, http.StatusOK, out)
}

type setActiveReq struct {
	IsActive bool `json:"isActive"`
}

// SetUserActive toggles an account. Deactivated accounts fail login but
// keep their history.
func SetUserActive(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var u models.User
	if err := config.DB.First(&u, "id = ?", id).Error; err != nil {
		writeDomainError(w, err)
		return
	}

	var req setActiveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	u.IsActive = req.IsActive
	if err := config.DB.Save(&u).Error; err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, userPayload{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, IsActive: u.IsActive})
}

type setRoleReq struct {
	Role string `json:"role"`
}

// SetUserRole reassigns an account's role.
func SetUserRole(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var u models.User
	if err := config.DB.First(&u, "id = ?", id).Error; err != nil {
		writeDomainError(w, err)
		return
	}

	var req setRoleReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if !models.ValidStaffRole(req.Role) {
		http.Error(w, "unknown role", http.StatusBadRequest)
		return
	}

	u.Role = req.Role
	if err := config.DB.Save(&u).Error; err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, userPayload{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, IsActive: u.IsActive})
}
