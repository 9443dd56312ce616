package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Staff roles. Lower level means higher privilege; the General Manager
// sits at the top.
const (
	RoleGeneralManager     = "General Manager"
	RoleFleetSupervisor    = "Fleet Supervisor"
	RoleTelebirrSupervisor = "Telebirr Supervisor"
	RoleDispatchManager    = "Dispatch Manager"
	RoleQualityInspector   = "Quality Inspector"
	RoleSalesAgent         = "Sales Agent"
	RoleMechanic           = "Mechanic"
	RoleMarketingTeam      = "Marketing Team"
)

// RoleHierarchy maps each role to its privilege level.
var RoleHierarchy = map[string]int{
	RoleGeneralManager:     1,
	RoleFleetSupervisor:    2,
	RoleTelebirrSupervisor: 2,
	RoleDispatchManager:    3,
	RoleQualityInspector:   4,
	RoleSalesAgent:         5,
	RoleMechanic:           5,
	RoleMarketingTeam:      5,
}

// Product categories a sales agent can be assigned to.
var ProductCategories = []string{"Electric Tricycle", "Spare Parts", "Batteries", "Accessories"}

// ValidStaffRole reports whether role is one of the fixed staff roles.
func ValidStaffRole(role string) bool {
	_, ok := RoleHierarchy[role]
	return ok
}

// RoleLevel returns the privilege level for role, or the lowest level
// for unknown roles.
func RoleLevel(role string) int {
	if level, ok := RoleHierarchy[role]; ok {
		return level
	}
	return 5
}

// Staff is a directory entry; login accounts live in User.
type Staff struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	Email           string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone           string    `gorm:"size:50" json:"phone,omitempty"`
	Role            string    `gorm:"size:50;not null" json:"role"`
	ProductCategory string    `gorm:"column:product_category;size:50" json:"productCategory,omitempty"`
	Department      string    `gorm:"size:100" json:"department,omitempty"`
	HireDate        JSONTime  `gorm:"column:hire_date" json:"hireDate"`
	IsActive        bool      `gorm:"column:is_active;not null;default:true" json:"isActive"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Staff) TableName() string {
	return "staff"
}

// ValidateForCreate checks name, email and role.
func (s *Staff) ValidateForCreate() error {
	var bad []string
	if strings.TrimSpace(s.Name) == "" {
		bad = append(bad, "name")
	}
	if strings.TrimSpace(s.Email) == "" || !strings.Contains(s.Email, "@") {
		bad = append(bad, "email")
	}
	if !ValidStaffRole(s.Role) {
		bad = append(bad, "role")
	}
	if len(bad) > 0 {
		return &ValidationError{Fields: bad}
	}
	return nil
}
