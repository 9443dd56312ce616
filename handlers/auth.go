package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"lgs.et/fleet/config"
	"lgs.et/fleet/middleware"
	"lgs.et/fleet/models"
)

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// emailDomainAllowed enforces the company-domain restriction when
// COMPANY_EMAIL_DOMAIN is configured.
func emailDomainAllowed(email string) bool {
	domain := os.Getenv("COMPANY_EMAIL_DOMAIN")
	if domain == "" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(email), "@"+strings.ToLower(domain))
}

func Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}
	if !emailDomainAllowed(req.Email) {
		http.Error(w, "email must use the company domain", http.StatusBadRequest)
		return
	}
	if !models.ValidStaffRole(req.Role) {
		http.Error(w, "unknown role", http.StatusBadRequest)
		return
	}
	// hash pw
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "error hashing password", http.StatusInternalServerError)
		return
	}
	u := models.User{
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		PasswordHash: string(hash),
		Role:         req.Role,
		IsActive:     true,
	}
	if err := config.DB.Create(&u).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			http.Error(w, "email already registered", http.StatusConflict)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusCreated)
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}
type userPayload struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	var u models.User
	if err := config.DB.Where("email = ?", strings.ToLower(req.Email)).First(&u).Error; err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if !u.IsActive {
		http.Error(w, "account is deactivated", http.StatusUnauthorized)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	token, err := middleware.GenerateToken(u.ID.String(), u.Role, u.Name, u.Email)
	if err != nil {
		http.Error(w, "couldn't create token", http.StatusInternalServerError)
		return
	}
	out := loginResp{
		Token: token,
		User: userPayload{
			ID:       u.ID,
			Name:     u.Name,
			Email:    u.Email,
			Role:     u.Role,
			IsActive: u.IsActive,
		},
	}
	writeJSON(w, http.StatusOK, out)
}

// Profile returns the signed-in user and the capabilities their role
// carries.
func Profile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	user := middleware.GetUser(r)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":           claims.UserID,
		"name":         user.Name,
		"email":        user.Email,
		"role":         user.Role,
		"is_active":    user.IsActive,
		"capabilities": models.RoleCapabilities[user.Role],
	})
}

type resetRequestReq struct {
	Email string `json:"email"`
}

// RequestPasswordReset stores a one-shot reset token for the account.
// Delivery happens out-of-band; the response never reveals whether the
// email exists.
func RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req resetRequestReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	var u models.User
	if err := config.DB.Where("email = ?", strings.ToLower(req.Email)).First(&u).Error; err == nil {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			http.Error(w, "could not generate token", http.StatusInternalServerError)
			return
		}
		token := hex.EncodeToString(buf)
		expiry := time.Now().Add(time.Hour)
		u.ResetToken = &token
		u.ResetTokenExpiry = &expiry
		if err := config.DB.Save(&u).Error; err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		log.Printf("[AUTH] password reset token issued for %s", u.Email)
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "if the account exists, a reset link has been sent",
	})
}

type resetConfirmReq struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// ConfirmPasswordReset swaps the password for a valid unexpired token
// and burns the token.
func ConfirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req resetConfirmReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Token == "" || req.NewPassword == "" {
		http.Error(w, "token and newPassword are required", http.StatusBadRequest)
		return
	}

	var u models.User
	if err := config.DB.Where("reset_token = ?", req.Token).First(&u).Error; err != nil {
		http.Error(w, "invalid or expired token", http.StatusUnauthorized)
		return
	}
	if u.ResetTokenExpiry == nil || time.Now().After(*u.ResetTokenExpiry) {
		http.Error(w, "invalid or expired token", http.StatusUnauthorized)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "error hashing password", http.StatusInternalServerError)
		return
	}
	u.PasswordHash = string(hash)
	u.ResetToken = nil
	u.ResetTokenExpiry = nil
	if err := config.DB.Save(&u).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}
