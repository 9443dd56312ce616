package models

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

// completeChecklist returns a checklist with every inspection item
// verified.
func completeChecklist() DispatchChecklist {
	return DispatchChecklist{
		BatteryCharged: true, BatteryVoltageTested: true, ChargerProvided: true,
		WiringInspected: true, LightsFunctioning: true, HornWorking: true,
		DashboardOperational: true,

		TiresInflated: true, WheelNutsTightened: true, BrakesTested: true,
		SuspensionFunctioning: true, SteeringChecked: true, FrameInspected: true,
		FastenersTightened: true,

		MotorTested: true, ControllerFunctioning: true, SpeedTested: true,
		NoAbnormalNoises: true,

		InvoiceIncluded: true, WarrantyCardIncluded: true, UserManualIncluded: true,

		EscortTireIncluded: true, ToolkitIncluded: true, ChargerCablesIncluded: true,
		KeysCount: 2,

		TricycleSecured: true, PhotosTaken: true,
	}
}

func pendingRecord() DispatchRecord {
	return DispatchRecord{
		SerialNo:           "LGS-2024-0001",
		Model:              "eco-rider",
		CustomerName:       "Abebe Trading",
		DestinationCity:    "Bahir Dar",
		TransporterName:    "Habesha Logistics",
		TransporterContact: "+251911000000",
		TruckNo:            "AA-3-12345",
		Status:             StatusPending,
		Checklist:          completeChecklist(),
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name    string
		model   string
		other   string
		want    string
		wantErr bool
	}{
		{"catalog model", "eco-rider", "", "eco-rider", false},
		{"other with text", "other", "custom build", "custom build", false},
		{"other trims spaces", "other", "  cargo special  ", "cargo special", false},
		{"other without text", "other", "   ", "", true},
		{"unknown model", "moon-rover", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveModel(tt.model, tt.other)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveModel(%q, %q) err = %v, wantErr %v", tt.model, tt.other, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ResolveModel(%q, %q) = %q, want %q", tt.model, tt.other, got, tt.want)
			}
		})
	}
}

func TestDispatchValidateForCreate(t *testing.T) {
	d := pendingRecord()
	if err := d.ValidateForCreate(); err != nil {
		t.Fatalf("valid record: unexpected error %v", err)
	}

	d.CustomerName = ""
	d.TruckNo = "  "
	err := d.ValidateForCreate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := []string{"customerName", "truckNo"}
	if len(verr.Fields) != len(want) {
		t.Fatalf("fields = %v, want %v", verr.Fields, want)
	}
	for i, f := range want {
		if verr.Fields[i] != f {
			t.Errorf("fields[%d] = %q, want %q", i, verr.Fields[i], f)
		}
	}
}

func TestSubmitForApprovalChecklistGate(t *testing.T) {
	d := pendingRecord()
	if err := d.SubmitForApproval(); err != nil {
		t.Fatalf("complete checklist: unexpected error %v", err)
	}

	// Unchecking any single item blocks submission and names the category.
	tests := []struct {
		category string
		uncheck  func(c *DispatchChecklist)
	}{
		{"electrical", func(c *DispatchChecklist) { c.HornWorking = false }},
		{"mechanical", func(c *DispatchChecklist) { c.BrakesTested = false }},
		{"motor", func(c *DispatchChecklist) { c.NoAbnormalNoises = false }},
		{"documentation", func(c *DispatchChecklist) { c.WarrantyCardIncluded = false }},
		{"accessories", func(c *DispatchChecklist) { c.ToolkitIncluded = false }},
		{"transport", func(c *DispatchChecklist) { c.PhotosTaken = false }},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			d := pendingRecord()
			tt.uncheck(&d.Checklist)
			err := d.SubmitForApproval()
			var cerr *IncompleteChecklistError
			if !errors.As(err, &cerr) {
				t.Fatalf("expected IncompleteChecklistError, got %v", err)
			}
			if len(cerr.Categories) != 1 || cerr.Categories[0] != tt.category {
				t.Errorf("categories = %v, want [%s]", cerr.Categories, tt.category)
			}
			if d.Status != StatusPending {
				t.Errorf("status = %q, want pending", d.Status)
			}
		})
	}
}

func TestChecklistScalarsDoNotGate(t *testing.T) {
	c := completeChecklist()
	c.BatteryVoltageReading = ""
	c.KeysCount = 0
	if !c.Complete() {
		t.Errorf("scalar fields should not block completeness, got incomplete %v", c.IncompleteCategories())
	}
}

func TestApprove(t *testing.T) {
	d := pendingRecord()
	managerID := uuid.New()
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	if err := d.Approve(&managerID, "Jane Manager", now); err != nil {
		t.Fatalf("approve pending: unexpected error %v", err)
	}
	if d.Status != StatusApproved {
		t.Errorf("status = %q, want approved", d.Status)
	}
	if d.DispatchManagerName != "Jane Manager" {
		t.Errorf("manager name = %q, want Jane Manager", d.DispatchManagerName)
	}
	if d.ApprovedAt == nil || !d.ApprovedAt.Equal(now) {
		t.Errorf("approvedAt = %v, want %v", d.ApprovedAt, now)
	}
	if d.RejectionReason != "" {
		t.Errorf("rejectionReason = %q, want empty", d.RejectionReason)
	}

	// Terminal states refuse further transitions.
	var terr *InvalidTransitionError
	if err := d.Approve(&managerID, "Jane Manager", now); !errors.As(err, &terr) {
		t.Fatalf("second approve: expected InvalidTransitionError, got %v", err)
	}
	if terr.From != StatusApproved || terr.To != StatusApproved {
		t.Errorf("transition = %s→%s, want approved→approved", terr.From, terr.To)
	}
	if err := d.Reject("late paperwork", now); !errors.As(err, &terr) {
		t.Fatalf("reject after approve: expected InvalidTransitionError, got %v", err)
	}
}

func TestReject(t *testing.T) {
	d := pendingRecord()
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	if err := d.Reject("damaged frame", now); err != nil {
		t.Fatalf("reject pending: unexpected error %v", err)
	}
	if d.Status != StatusRejected {
		t.Errorf("status = %q, want rejected", d.Status)
	}
	if d.RejectionReason != "damaged frame" {
		t.Errorf("reason = %q, want damaged frame", d.RejectionReason)
	}
	if d.RejectedAt == nil || !d.RejectedAt.Equal(now) {
		t.Errorf("rejectedAt = %v, want %v", d.RejectedAt, now)
	}

	var terr *InvalidTransitionError
	if err := d.Reject("again", now); !errors.As(err, &terr) {
		t.Fatalf("second reject: expected InvalidTransitionError, got %v", err)
	}
	if err := d.Approve(nil, "Jane Manager", now); !errors.As(err, &terr) {
		t.Fatalf("approve after reject: expected InvalidTransitionError, got %v", err)
	}
	if err := d.SubmitForApproval(); !errors.As(err, &terr) {
		t.Fatalf("submit after reject: expected InvalidTransitionError, got %v", err)
	}
}

func TestNewChecklist(t *testing.T) {
	c := NewChecklist()
	if c.KeysCount != 2 {
		t.Errorf("keysCount = %d, want 2", c.KeysCount)
	}
	if c.Complete() {
		t.Error("fresh checklist should not be complete")
	}
	if got := len(c.IncompleteCategories()); got != 6 {
		t.Errorf("incomplete categories = %d, want all 6", got)
	}
}
