package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Vehicle commercial statuses. Transitions are unconstrained except for
// FlagForMaintenance.
const (
	VehicleAvailable   = "available"
	VehicleDispatched  = "dispatched"
	VehicleRented      = "rented"
	VehicleMaintenance = "maintenance"
	VehicleSold        = "sold"
)

var VehicleStatuses = []string{
	VehicleAvailable, VehicleDispatched, VehicleRented, VehicleMaintenance, VehicleSold,
}

var VehicleConditions = []string{"excellent", "good", "fair", "needs_repair"}

// ValidVehicleStatus reports whether s is a known commercial status.
func ValidVehicleStatus(s string) bool {
	for _, v := range VehicleStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ValidVehicleCondition reports whether s is a known condition grade.
func ValidVehicleCondition(s string) bool {
	for _, v := range VehicleConditions {
		if v == s {
			return true
		}
	}
	return false
}

// RentalInfo is embedded in Vehicle. Renter fields only carry meaning
// while IsRented is true and are cleared on toggle-off so stale renter
// data cannot leak into a later rental.
type RentalInfo struct {
	IsRented        bool      `gorm:"column:is_rented;not null;default:false" json:"isRented"`
	RenterName      string    `gorm:"column:renter_name;size:255" json:"renterName,omitempty"`
	RenterContact   string    `gorm:"column:renter_contact;size:50" json:"renterContact,omitempty"`
	RentalStartDate *JSONTime `gorm:"column:rental_start_date" json:"rentalStartDate,omitempty"`
	RentalEndDate   *JSONTime `gorm:"column:rental_end_date" json:"rentalEndDate,omitempty"`
	RentalTerms     string    `gorm:"column:rental_terms;type:text" json:"rentalTerms,omitempty"`
	DailyRate       *float64  `gorm:"column:daily_rate" json:"dailyRate,omitempty"`
}

// Clear wipes all renter fields and switches the rental off.
func (r *RentalInfo) Clear() {
	*r = RentalInfo{}
}

// MaintenanceRecord is an append-only child of Vehicle.
type MaintenanceRecord struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	VehicleID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"vehicleId"`
	MaintenanceDate JSONTime   `gorm:"column:maintenance_date;not null" json:"maintenanceDate"`
	Description     string     `gorm:"type:text;not null" json:"description"`
	MechanicID      *uuid.UUID `gorm:"type:uuid" json:"mechanicId,omitempty"`
	MechanicName    string     `gorm:"column:mechanic_name;size:255" json:"mechanicName,omitempty"`
	Cost            *float64   `json:"cost,omitempty"`
	PartsReplaced   string     `gorm:"column:parts_replaced;type:text" json:"partsReplaced,omitempty"`
	Notes           string     `gorm:"type:text" json:"notes,omitempty"`
	Completed       bool       `gorm:"not null;default:false" json:"completed"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (MaintenanceRecord) TableName() string {
	return "maintenance_records"
}

// Vehicle tracks one physical unit's commercial state independent of any
// dispatch record.
type Vehicle struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SerialNo       string    `gorm:"column:serial_no;size:100;uniqueIndex;not null" json:"serialNo"`
	Model          string    `gorm:"size:100;not null" json:"model"`
	Variant        string    `gorm:"size:100" json:"variant"`
	ProductionDate JSONTime  `gorm:"column:production_date" json:"productionDate"`
	ProductionSite string    `gorm:"column:production_site;size:255" json:"productionSite"`

	Status    string `gorm:"size:20;not null;default:available;index" json:"status"`
	Condition string `gorm:"size:20;not null;default:good" json:"condition"`

	// Dispatch info (if dispatched/sold)
	DispatchDate    *JSONTime `gorm:"column:dispatch_date" json:"dispatchDate,omitempty"`
	DestinationCity string    `gorm:"column:destination_city;size:255" json:"destinationCity,omitempty"`
	CustomerName    string    `gorm:"column:customer_name;size:255" json:"customerName,omitempty"`

	Rental RentalInfo `gorm:"embedded" json:"rental"`

	MaintenanceRecords    []MaintenanceRecord `gorm:"foreignKey:VehicleID" json:"maintenanceRecords,omitempty"`
	FlaggedForMaintenance bool                `gorm:"column:flagged_for_maintenance;not null;default:false" json:"flaggedForMaintenance"`
	LastMaintenanceDate   *JSONTime           `gorm:"column:last_maintenance_date" json:"lastMaintenanceDate,omitempty"`
	NextMaintenanceDate   *JSONTime           `gorm:"column:next_maintenance_date" json:"nextMaintenanceDate,omitempty"`
	MaintenanceNotes      string              `gorm:"column:maintenance_notes;type:text" json:"maintenanceNotes,omitempty"`
	MechanicID            *uuid.UUID          `gorm:"type:uuid" json:"mechanicId,omitempty"`

	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// ValidateForCreate checks the required vehicle fields.
func (v *Vehicle) ValidateForCreate() error {
	var missing []string
	if strings.TrimSpace(v.SerialNo) == "" {
		missing = append(missing, "serialNo")
	}
	if strings.TrimSpace(v.Model) == "" {
		missing = append(missing, "model")
	}
	if v.Status != "" && !ValidVehicleStatus(v.Status) {
		missing = append(missing, "status")
	}
	if v.Condition != "" && !ValidVehicleCondition(v.Condition) {
		missing = append(missing, "condition")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// FlagForMaintenance forces the unit into the maintenance state from any
// prior status except sold. A sold unit is no longer ours to service.
func (v *Vehicle) FlagForMaintenance() error {
	if v.Status == VehicleSold {
		return &InvalidTransitionError{From: VehicleSold, To: VehicleMaintenance}
	}
	v.Status = VehicleMaintenance
	v.FlaggedForMaintenance = true
	return nil
}

// SetRental applies a rental toggle. Switching the rental off clears all
// renter fields; switching it on also moves the unit to rented.
func (v *Vehicle) SetRental(info RentalInfo) {
	if !info.IsRented {
		v.Rental.Clear()
		if v.Status == VehicleRented {
			v.Status = VehicleAvailable
		}
		return
	}
	v.Rental = info
	v.Status = VehicleRented
}
