package models

import (
	"errors"
	"testing"
	"time"
)

func TestFlagForMaintenance(t *testing.T) {
	for _, status := range []string{VehicleAvailable, VehicleDispatched, VehicleRented, VehicleMaintenance} {
		t.Run(status, func(t *testing.T) {
			v := Vehicle{Status: status}
			if err := v.FlagForMaintenance(); err != nil {
				t.Fatalf("flag from %s: unexpected error %v", status, err)
			}
			if v.Status != VehicleMaintenance {
				t.Errorf("status = %q, want maintenance", v.Status)
			}
			if !v.FlaggedForMaintenance {
				t.Error("flaggedForMaintenance not set")
			}
		})
	}

	// A sold unit is out of the fleet and cannot be flagged.
	v := Vehicle{Status: VehicleSold}
	err := v.FlagForMaintenance()
	var terr *InvalidTransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("flag sold: expected InvalidTransitionError, got %v", err)
	}
	if v.Status != VehicleSold || v.FlaggedForMaintenance {
		t.Errorf("sold vehicle mutated: %+v", v)
	}
}

func TestSetRental(t *testing.T) {
	start := JSONTime(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	rate := 450.0

	v := Vehicle{Status: VehicleAvailable}
	v.SetRental(RentalInfo{
		IsRented:        true,
		RenterName:      "Kebede",
		RenterContact:   "+251922000000",
		RentalStartDate: &start,
		DailyRate:       &rate,
	})
	if v.Status != VehicleRented {
		t.Errorf("status = %q, want rented", v.Status)
	}
	if !v.Rental.IsRented || v.Rental.RenterName != "Kebede" {
		t.Errorf("rental not applied: %+v", v.Rental)
	}

	// Toggling off wipes every renter field so nothing leaks into the
	// next rental.
	v.SetRental(RentalInfo{IsRented: false})
	if v.Status != VehicleAvailable {
		t.Errorf("status = %q, want available", v.Status)
	}
	if v.Rental != (RentalInfo{}) {
		t.Errorf("rental fields not cleared: %+v", v.Rental)
	}
}

func TestSetRentalOffKeepsNonRentedStatus(t *testing.T) {
	v := Vehicle{Status: VehicleMaintenance, Rental: RentalInfo{RenterName: "stale"}}
	v.SetRental(RentalInfo{IsRented: false})
	if v.Status != VehicleMaintenance {
		t.Errorf("status = %q, want maintenance untouched", v.Status)
	}
	if v.Rental.RenterName != "" {
		t.Errorf("stale renter name survived: %q", v.Rental.RenterName)
	}
}

func TestVehicleValidateForCreate(t *testing.T) {
	v := Vehicle{SerialNo: "LGS-2024-0002", Model: "power-haul", Status: VehicleAvailable, Condition: "good"}
	if err := v.ValidateForCreate(); err != nil {
		t.Fatalf("valid vehicle: unexpected error %v", err)
	}

	bad := Vehicle{Status: "scrapped", Condition: "mint"}
	err := bad.ValidateForCreate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := []string{"serialNo", "model", "status", "condition"}
	if len(verr.Fields) != len(want) {
		t.Fatalf("fields = %v, want %v", verr.Fields, want)
	}
}
