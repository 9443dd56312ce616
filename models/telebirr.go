package models

import (
	"time"

	"github.com/google/uuid"
)

// TelebirrTransaction is one daily cash-handling entry for a sales agent:
// float advanced in the morning, sales and retained income during the
// day, cash returned in the evening.
type TelebirrTransaction struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Date      JSONTime  `gorm:"not null;index" json:"date"`
	AgentID   uuid.UUID `gorm:"type:uuid;not null;index" json:"agentId"`
	AgentName string    `gorm:"column:agent_name;size:255;not null" json:"agentName"`

	// Cash flow
	FloatedAmount  float64 `gorm:"column:floated_amount;not null;default:0" json:"floatedAmount"`
	TotalSales     float64 `gorm:"column:total_sales;not null;default:0" json:"totalSales"`
	DailyIncome    float64 `gorm:"column:daily_income;not null;default:0" json:"dailyIncome"`
	AmountReturned float64 `gorm:"column:amount_returned;not null;default:0" json:"amountReturned"`

	// Derived: floated - returned - (sales - income). Stored, and
	// re-derived whenever an input is edited.
	Variance float64 `gorm:"not null;default:0" json:"variance"`

	Status          string     `gorm:"size:20;not null;default:pending;index" json:"status"`
	SupervisorID    *uuid.UUID `gorm:"type:uuid" json:"supervisorId,omitempty"`
	SupervisorName  string     `gorm:"column:supervisor_name;size:255" json:"supervisorName,omitempty"`
	ApprovedAt      *time.Time `gorm:"column:approved_at" json:"approvedAt,omitempty"`
	RejectedAt      *time.Time `gorm:"column:rejected_at" json:"rejectedAt,omitempty"`
	RejectionReason string     `gorm:"column:rejection_reason;type:text" json:"rejectionReason,omitempty"`

	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (TelebirrTransaction) TableName() string {
	return "telebirr_transactions"
}

// ComputeVariance is the reconciliation gap: cash advanced minus cash
// returned minus whatever part of sales the agent was entitled to keep.
// Zero means the day balanced.
func ComputeVariance(floated, sales, income, returned float64) float64 {
	return floated - returned - (sales - income)
}

// Recalculate re-derives the stored variance from the current inputs.
func (t *TelebirrTransaction) Recalculate() {
	t.Variance = ComputeVariance(t.FloatedAmount, t.TotalSales, t.DailyIncome, t.AmountReturned)
}

// ValidateForCreate checks agent identity and that no amount is negative.
func (t *TelebirrTransaction) ValidateForCreate() error {
	var bad []string
	if t.AgentID == uuid.Nil {
		bad = append(bad, "agentId")
	}
	if t.AgentName == "" {
		bad = append(bad, "agentName")
	}
	if t.FloatedAmount < 0 {
		bad = append(bad, "floatedAmount")
	}
	if t.TotalSales < 0 {
		bad = append(bad, "totalSales")
	}
	if t.DailyIncome < 0 {
		bad = append(bad, "dailyIncome")
	}
	if t.AmountReturned < 0 {
		bad = append(bad, "amountReturned")
	}
	if len(bad) > 0 {
		return &ValidationError{Fields: bad}
	}
	return nil
}

// Approve moves pending → approved and stamps the supervisor.
func (t *TelebirrTransaction) Approve(supervisorID *uuid.UUID, supervisorName string, now time.Time) error {
	if t.Status != StatusPending {
		return &InvalidTransitionError{From: t.Status, To: StatusApproved}
	}
	t.Status = StatusApproved
	t.SupervisorID = supervisorID
	t.SupervisorName = supervisorName
	t.ApprovedAt = &now
	return nil
}

// Reject moves pending → rejected and stamps the reason.
func (t *TelebirrTransaction) Reject(reason string, now time.Time) error {
	if t.Status != StatusPending {
		return &InvalidTransitionError{From: t.Status, To: StatusRejected}
	}
	t.Status = StatusRejected
	t.RejectionReason = reason
	t.RejectedAt = &now
	return nil
}

// LedgerStats are pure reductions over a transaction list.
type LedgerStats struct {
	TotalFloated  float64 `json:"totalFloated"`
	TotalSales    float64 `json:"totalSales"`
	TotalIncome   float64 `json:"totalIncome"`
	TotalReturned float64 `json:"totalReturned"`
	TotalVariance float64 `json:"totalVariance"`
	PendingCount  int     `json:"pendingCount"`
}

// BuildLedgerStats folds the transaction list into ledger totals.
func BuildLedgerStats(txs []TelebirrTransaction) LedgerStats {
	var s LedgerStats
	for _, t := range txs {
		s.TotalFloated += t.FloatedAmount
		s.TotalSales += t.TotalSales
		s.TotalIncome += t.DailyIncome
		s.TotalReturned += t.AmountReturned
		s.TotalVariance += t.Variance
		if t.Status == StatusPending {
			s.PendingCount++
		}
	}
	return s
}

// AgentPerformance aggregates one agent's ledger history.
type AgentPerformance struct {
	AgentID             uuid.UUID `json:"agentId"`
	AgentName           string    `json:"agentName"`
	TotalTransactions   int       `json:"totalTransactions"`
	TotalSales          float64   `json:"totalSales"`
	TotalIncome         float64   `json:"totalIncome"`
	AverageDailySales   float64   `json:"averageDailySales"`
	ComplianceRate      float64   `json:"complianceRate"`
	LastTransactionDate JSONTime  `json:"lastTransactionDate"`
}

// BuildAgentPerformance groups transactions by agent. ComplianceRate is
// the share of days whose ledger balanced exactly.
func BuildAgentPerformance(txs []TelebirrTransaction) []AgentPerformance {
	byAgent := make(map[uuid.UUID]*AgentPerformance)
	balanced := make(map[uuid.UUID]int)
	var order []uuid.UUID

	for _, t := range txs {
		p, ok := byAgent[t.AgentID]
		if !ok {
			p = &AgentPerformance{AgentID: t.AgentID, AgentName: t.AgentName}
			byAgent[t.AgentID] = p
			order = append(order, t.AgentID)
		}
		p.TotalTransactions++
		p.TotalSales += t.TotalSales
		p.TotalIncome += t.DailyIncome
		if t.Variance == 0 {
			balanced[t.AgentID]++
		}
		if t.Date.Time().After(p.LastTransactionDate.Time()) {
			p.LastTransactionDate = t.Date
		}
	}

	out := make([]AgentPerformance, 0, len(order))
	for _, id := range order {
		p := byAgent[id]
		p.AverageDailySales = p.TotalSales / float64(p.TotalTransactions)
		p.ComplianceRate = float64(balanced[id]) / float64(p.TotalTransactions) * 100
		out = append(out, *p)
	}
	return out
}
