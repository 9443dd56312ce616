package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Dispatch record statuses. The lifecycle is pending → approved or
// pending → rejected; both end states are terminal.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Tricycle models offered on the dispatch form. "other" selects a
// free-text override.
var DispatchModels = []string{"eco-rider", "power-haul", "city-cruiser", "cargo-max"}

// DispatchVariants offered on the dispatch form.
var DispatchVariants = []string{"standard", "premium", "heavy-duty"}

// ResolveModel maps the form's model selection to the stored value.
// "other" requires a non-empty free-text override.
func ResolveModel(model, other string) (string, error) {
	if model == "other" {
		if strings.TrimSpace(other) == "" {
			return "", &ValidationError{Fields: []string{"modelOther"}}
		}
		return strings.TrimSpace(other), nil
	}
	for _, m := range DispatchModels {
		if m == model {
			return m, nil
		}
	}
	return "", &ValidationError{Fields: []string{"model"}}
}

// DispatchChecklist holds the pre-dispatch inspection items. Columns are
// flattened into dispatch_records; the JSON shape stays nested under
// "checklist". Every boolean starts false (not yet verified).
type DispatchChecklist struct {
	// Electrical system
	BatteryCharged        bool   `gorm:"column:battery_charged;not null;default:false" json:"batteryCharged"`
	BatteryVoltageTested  bool   `gorm:"column:battery_voltage_tested;not null;default:false" json:"batteryVoltageTested"`
	BatteryVoltageReading string `gorm:"column:battery_voltage_reading;size:50" json:"batteryVoltageReading,omitempty"`
	ChargerProvided       bool   `gorm:"column:charger_provided;not null;default:false" json:"chargerProvided"`
	WiringInspected       bool   `gorm:"column:wiring_inspected;not null;default:false" json:"wiringInspected"`
	LightsFunctioning     bool   `gorm:"column:lights_functioning;not null;default:false" json:"lightsFunctioning"`
	HornWorking           bool   `gorm:"column:horn_working;not null;default:false" json:"hornWorking"`
	DashboardOperational  bool   `gorm:"column:dashboard_operational;not null;default:false" json:"dashboardOperational"`

	// Mechanical components
	TiresInflated         bool `gorm:"column:tires_inflated;not null;default:false" json:"tiresInflated"`
	WheelNutsTightened    bool `gorm:"column:wheel_nuts_tightened;not null;default:false" json:"wheelNutsTightened"`
	BrakesTested          bool `gorm:"column:brakes_tested;not null;default:false" json:"brakesTested"`
	SuspensionFunctioning bool `gorm:"column:suspension_functioning;not null;default:false" json:"suspensionFunctioning"`
	SteeringChecked       bool `gorm:"column:steering_checked;not null;default:false" json:"steeringChecked"`
	FrameInspected        bool `gorm:"column:frame_inspected;not null;default:false" json:"frameInspected"`
	FastenersTightened    bool `gorm:"column:fasteners_tightened;not null;default:false" json:"fastenersTightened"`

	// Motor & controller
	MotorTested           bool `gorm:"column:motor_tested;not null;default:false" json:"motorTested"`
	ControllerFunctioning bool `gorm:"column:controller_functioning;not null;default:false" json:"controllerFunctioning"`
	SpeedTested           bool `gorm:"column:speed_tested;not null;default:false" json:"speedTested"`
	NoAbnormalNoises      bool `gorm:"column:no_abnormal_noises;not null;default:false" json:"noAbnormalNoises"`

	// Documentation pack
	InvoiceIncluded      bool `gorm:"column:invoice_included;not null;default:false" json:"invoiceIncluded"`
	WarrantyCardIncluded bool `gorm:"column:warranty_card_included;not null;default:false" json:"warrantyCardIncluded"`
	UserManualIncluded   bool `gorm:"column:user_manual_included;not null;default:false" json:"userManualIncluded"`

	// Accessories & tools
	EscortTireIncluded    bool `gorm:"column:escort_tire_included;not null;default:false" json:"escortTireIncluded"`
	ToolkitIncluded       bool `gorm:"column:toolkit_included;not null;default:false" json:"toolkitIncluded"`
	ChargerCablesIncluded bool `gorm:"column:charger_cables_included;not null;default:false" json:"chargerCablesIncluded"`
	KeysCount             int  `gorm:"column:keys_count;not null;default:2" json:"keysCount"`

	// Transport verification
	TricycleSecured bool `gorm:"column:tricycle_secured;not null;default:false" json:"tricycleSecured"`
	PhotosTaken     bool `gorm:"column:photos_taken;not null;default:false" json:"photosTaken"`
}

// NewChecklist returns the creation-time checklist: every item unchecked,
// two keys by default.
func NewChecklist() DispatchChecklist {
	return DispatchChecklist{KeysCount: 2}
}

// checklistCategories pairs each category name with its boolean items.
// BatteryVoltageReading and KeysCount are scalars and do not gate
// submission.
func (c *DispatchChecklist) checklistCategories() []struct {
	Name  string
	Items []bool
} {
	return []struct {
		Name  string
		Items []bool
	}{
		{"electrical", []bool{c.BatteryCharged, c.BatteryVoltageTested, c.ChargerProvided,
			c.WiringInspected, c.LightsFunctioning, c.HornWorking, c.DashboardOperational}},
		{"mechanical", []bool{c.TiresInflated, c.WheelNutsTightened, c.BrakesTested,
			c.SuspensionFunctioning, c.SteeringChecked, c.FrameInspected, c.FastenersTightened}},
		{"motor", []bool{c.MotorTested, c.ControllerFunctioning, c.SpeedTested, c.NoAbnormalNoises}},
		{"documentation", []bool{c.InvoiceIncluded, c.WarrantyCardIncluded, c.UserManualIncluded}},
		{"accessories", []bool{c.EscortTireIncluded, c.ToolkitIncluded, c.ChargerCablesIncluded}},
		{"transport", []bool{c.TricycleSecured, c.PhotosTaken}},
	}
}

// IncompleteCategories returns the names of categories with at least one
// unchecked item, in checklist order.
func (c *DispatchChecklist) IncompleteCategories() []string {
	var incomplete []string
	for _, cat := range c.checklistCategories() {
		for _, ok := range cat.Items {
			if !ok {
				incomplete = append(incomplete, cat.Name)
				break
			}
		}
	}
	return incomplete
}

// Complete reports whether every inspection item has been verified.
func (c *DispatchChecklist) Complete() bool {
	return len(c.IncompleteCategories()) == 0
}

// DispatchRecord is one quality-controlled release of a finished tricycle
// to a customer/transporter.
type DispatchRecord struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	// Basic info
	SerialNo       string   `gorm:"column:serial_no;size:100;not null;index" json:"serialNo"`
	Model          string   `gorm:"size:100;not null" json:"model"`
	Variant        string   `gorm:"size:100" json:"variant"`
	ProductionDate JSONTime `gorm:"column:production_date" json:"productionDate"`
	ProductionSite string   `gorm:"column:production_site;size:255" json:"productionSite"`

	// Destination
	DispatchDate    JSONTime `gorm:"column:dispatch_date" json:"dispatchDate"`
	DestinationCity string   `gorm:"column:destination_city;size:255;not null" json:"destinationCity"`
	CustomerName    string   `gorm:"column:customer_name;size:255;not null" json:"customerName"`

	// Transport info
	TransporterName    string `gorm:"column:transporter_name;size:255;not null" json:"transporterName"`
	TransporterContact string `gorm:"column:transporter_contact;size:50;not null" json:"transporterContact"`
	TruckNo            string `gorm:"column:truck_no;size:50;not null" json:"truckNo"`

	Checklist DispatchChecklist `gorm:"embedded" json:"checklist"`

	// Handover evidence
	PhotoURLs     pq.StringArray `gorm:"column:photo_urls;type:text[]" json:"photoUrls,omitempty"`
	DropLatitude  *float64       `gorm:"column:drop_latitude" json:"dropLatitude,omitempty"`
	DropLongitude *float64       `gorm:"column:drop_longitude" json:"dropLongitude,omitempty"`

	// Approval info
	QcInspectorID            *uuid.UUID `gorm:"type:uuid" json:"qcInspectorId,omitempty"`
	QcInspectorName          string     `gorm:"column:qc_inspector_name;size:255" json:"qcInspectorName,omitempty"`
	QcInspectorSignature     string     `gorm:"column:qc_inspector_signature;type:text" json:"qcInspectorSignature,omitempty"`
	DispatchManagerID        *uuid.UUID `gorm:"type:uuid" json:"dispatchManagerId,omitempty"`
	DispatchManagerName      string     `gorm:"column:dispatch_manager_name;size:255" json:"dispatchManagerName,omitempty"`
	DispatchManagerSignature string     `gorm:"column:dispatch_manager_signature;type:text" json:"dispatchManagerSignature,omitempty"`

	VehicleID *uuid.UUID `gorm:"type:uuid;index" json:"vehicleId,omitempty"`

	Status          string     `gorm:"size:20;not null;default:pending;index" json:"status"`
	ApprovedAt      *time.Time `gorm:"column:approved_at" json:"approvedAt,omitempty"`
	RejectedAt      *time.Time `gorm:"column:rejected_at" json:"rejectedAt,omitempty"`
	RejectionReason string     `gorm:"column:rejection_reason;type:text" json:"rejectionReason,omitempty"`
	Notes           string     `gorm:"type:text" json:"notes,omitempty"`

	CreatedBy *uuid.UUID `gorm:"type:uuid" json:"createdBy,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (DispatchRecord) TableName() string {
	return "dispatch_records"
}

// ValidateForCreate checks the required form fields before any database
// call, naming every blank field in the returned ValidationError.
func (d *DispatchRecord) ValidateForCreate() error {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"serialNo", d.SerialNo},
		{"model", d.Model},
		{"customerName", d.CustomerName},
		{"destinationCity", d.DestinationCity},
		{"transporterName", d.TransporterName},
		{"transporterContact", d.TransporterContact},
		{"truckNo", d.TruckNo},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// SubmitForApproval gates the record on checklist completeness. The
// record stays pending either way; completeness is a submission
// precondition, approval is a separate human action.
func (d *DispatchRecord) SubmitForApproval() error {
	if d.Status != StatusPending {
		return &InvalidTransitionError{From: d.Status, To: StatusPending}
	}
	if incomplete := d.Checklist.IncompleteCategories(); len(incomplete) > 0 {
		return &IncompleteChecklistError{Categories: incomplete}
	}
	return nil
}

// Approve moves pending → approved, stamping the acting manager and the
// approval time. Repeat transitions are refused, not absorbed.
func (d *DispatchRecord) Approve(managerID *uuid.UUID, managerName string, now time.Time) error {
	if d.Status != StatusPending {
		return &InvalidTransitionError{From: d.Status, To: StatusApproved}
	}
	d.Status = StatusApproved
	d.DispatchManagerID = managerID
	d.DispatchManagerName = managerName
	d.ApprovedAt = &now
	return nil
}

// Reject moves pending → rejected, stamping the reason and time.
func (d *DispatchRecord) Reject(reason string, now time.Time) error {
	if d.Status != StatusPending {
		return &InvalidTransitionError{From: d.Status, To: StatusRejected}
	}
	d.Status = StatusRejected
	d.RejectionReason = reason
	d.RejectedAt = &now
	return nil
}
