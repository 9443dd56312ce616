package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"
	"lgs.et/fleet/models"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeDomainError maps the error taxonomy onto HTTP statuses:
// validation 400, incomplete checklist 422, illegal transition 409,
// missing row 404, anything else from the store 500 verbatim. Nothing
// is retried; the caller re-attempts manually.
func writeDomainError(w http.ResponseWriter, err error) {
	var vErr *models.ValidationError
	var cErr *models.IncompleteChecklistError
	var tErr *models.InvalidTransitionError

	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  vErr.Error(),
			"fields": vErr.Fields,
		})
	case errors.As(err, &cErr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":      cErr.Error(),
			"categories": cErr.Categories,
		})
	case errors.As(err, &tErr):
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"error": tErr.Error(),
			"from":  tErr.From,
			"to":    tErr.To,
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "record not found", http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
