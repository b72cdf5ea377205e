package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompleteOrderRequestDTO carries the caller-provided inputs of a completion.
type CompleteOrderRequestDTO struct {
	Description        string           `json:"description"`
	TotalValue         *decimal.Decimal `json:"total_value,omitempty"`
	SatisfactionRating *float64         `json:"satisfaction_rating,omitempty"`
}

// OrderSnapshotDTO is the read model of an order the presentation layer
// consumes after a lifecycle operation.
type OrderSnapshotDTO struct {
	ID                 int              `json:"id"`
	ClientID           int              `json:"client_id"`
	MachineryID        int              `json:"machinery_id"`
	Description        string           `json:"description"`
	Status             string           `json:"status"`
	EstimatedHours     *int             `json:"estimated_hours,omitempty"`
	SatisfactionRating *float64         `json:"satisfaction_rating,omitempty"`
	TotalValue         *decimal.Decimal `json:"total_value,omitempty"`
	OpenedAt           time.Time        `json:"opened_at"`
	ClosedDate         *time.Time       `json:"closed_date,omitempty"`
	AssignedEmployees  []int            `json:"assigned_employees"`
}
