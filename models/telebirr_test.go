package models

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestComputeVariance(t *testing.T) {
	tests := []struct {
		name     string
		floated  float64
		sales    float64
		income   float64
		returned float64
		want     float64
	}{
		{"balanced day", 1000, 0, 0, 1000, 0},
		{"agent kept entitled income", 1000, 800, 100, 900, -600},
		{"shortfall", 500, 0, 0, 400, 100},
		{"all zero", 0, 0, 0, 0, 0},
		{"sales drawn down from float", 1000, 300, 0, 700, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeVariance(tt.floated, tt.sales, tt.income, tt.returned)
			if got != tt.want {
				t.Errorf("ComputeVariance(%v, %v, %v, %v) = %v, want %v",
					tt.floated, tt.sales, tt.income, tt.returned, got, tt.want)
			}
		})
	}
}

func TestRecalculate(t *testing.T) {
	tx := TelebirrTransaction{
		FloatedAmount:  1000,
		TotalSales:     800,
		DailyIncome:    100,
		AmountReturned: 900,
		Variance:       12345, // stale stored value
	}
	tx.Recalculate()
	if tx.Variance != -600 {
		t.Errorf("variance = %v, want -600", tx.Variance)
	}

	// An edit to any input must flow through on the next recalculation.
	tx.AmountReturned = 300
	tx.Recalculate()
	if tx.Variance != 0 {
		t.Errorf("variance after edit = %v, want 0", tx.Variance)
	}
}

func TestTelebirrValidateForCreate(t *testing.T) {
	tx := TelebirrTransaction{
		AgentID:       uuid.New(),
		AgentName:     "Sara",
		FloatedAmount: 1000,
	}
	if err := tx.ValidateForCreate(); err != nil {
		t.Fatalf("valid transaction: unexpected error %v", err)
	}

	bad := TelebirrTransaction{FloatedAmount: -5, AmountReturned: -1}
	err := bad.ValidateForCreate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := []string{"agentId", "agentName", "floatedAmount", "amountReturned"}
	if len(verr.Fields) != len(want) {
		t.Fatalf("fields = %v, want %v", verr.Fields, want)
	}
	for i, f := range want {
		if verr.Fields[i] != f {
			t.Errorf("fields[%d] = %q, want %q", i, verr.Fields[i], f)
		}
	}
}

func TestTelebirrTransitions(t *testing.T) {
	now := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)
	supervisorID := uuid.New()

	tx := TelebirrTransaction{Status: StatusPending}
	if err := tx.Approve(&supervisorID, "Mulu", now); err != nil {
		t.Fatalf("approve pending: unexpected error %v", err)
	}
	if tx.Status != StatusApproved || tx.SupervisorName != "Mulu" || tx.ApprovedAt == nil {
		t.Errorf("approve did not stamp transaction: %+v", tx)
	}

	var terr *InvalidTransitionError
	if err := tx.Approve(&supervisorID, "Mulu", now); !errors.As(err, &terr) {
		t.Fatalf("second approve: expected InvalidTransitionError, got %v", err)
	}
	if err := tx.Reject("mismatch", now); !errors.As(err, &terr) {
		t.Fatalf("reject after approve: expected InvalidTransitionError, got %v", err)
	}

	tx2 := TelebirrTransaction{Status: StatusPending}
	if err := tx2.Reject("unexplained shortfall", now); err != nil {
		t.Fatalf("reject pending: unexpected error %v", err)
	}
	if tx2.Status != StatusRejected || tx2.RejectionReason != "unexplained shortfall" {
		t.Errorf("reject did not stamp transaction: %+v", tx2)
	}
}

func TestBuildLedgerStats(t *testing.T) {
	txs := []TelebirrTransaction{
		{FloatedAmount: 1000, TotalSales: 800, DailyIncome: 100, AmountReturned: 900, Variance: -600, Status: StatusPending},
		{FloatedAmount: 500, AmountReturned: 500, Status: StatusApproved},
		{FloatedAmount: 200, AmountReturned: 100, Variance: 100, Status: StatusPending},
	}
	s := BuildLedgerStats(txs)
	if s.TotalFloated != 1700 {
		t.Errorf("totalFloated = %v, want 1700", s.TotalFloated)
	}
	if s.TotalReturned != 1500 {
		t.Errorf("totalReturned = %v, want 1500", s.TotalReturned)
	}
	if s.TotalVariance != -500 {
		t.Errorf("totalVariance = %v, want -500", s.TotalVariance)
	}
	if s.PendingCount != 2 {
		t.Errorf("pendingCount = %d, want 2", s.PendingCount)
	}

	empty := BuildLedgerStats(nil)
	if empty != (LedgerStats{}) {
		t.Errorf("empty ledger = %+v, want zero stats", empty)
	}
}

func TestBuildAgentPerformance(t *testing.T) {
	agentA := uuid.New()
	agentB := uuid.New()
	day1 := JSONTime(time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC))
	day2 := JSONTime(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC))

	txs := []TelebirrTransaction{
		{AgentID: agentA, AgentName: "Sara", TotalSales: 400, Variance: 0, Date: day1},
		{AgentID: agentA, AgentName: "Sara", TotalSales: 600, Variance: -50, Date: day2},
		{AgentID: agentB, AgentName: "Dawit", TotalSales: 200, Variance: 0, Date: day1},
	}
	perf := BuildAgentPerformance(txs)
	if len(perf) != 2 {
		t.Fatalf("agents = %d, want 2", len(perf))
	}

	a := perf[0]
	if a.AgentName != "Sara" || a.TotalTransactions != 2 {
		t.Fatalf("first agent = %+v", a)
	}
	if a.AverageDailySales != 500 {
		t.Errorf("averageDailySales = %v, want 500", a.AverageDailySales)
	}
	if a.ComplianceRate != 50 {
		t.Errorf("complianceRate = %v, want 50", a.ComplianceRate)
	}
	if !a.LastTransactionDate.Time().Equal(day2.Time()) {
		t.Errorf("lastTransactionDate = %v, want %v", a.LastTransactionDate.Time(), day2.Time())
	}

	b := perf[1]
	if b.AgentName != "Dawit" || b.ComplianceRate != 100 {
		t.Errorf("second agent = %+v", b)
	}
}
