package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service order lifecycle states.
const (
	StatusOpen       string = "open"
	StatusInProgress string = "in_progress"
	StatusCompleted  string = "completed"
	StatusCancelled  string = "cancelled"
)

// Financial transaction types.
const (
	TransactionIncome  string = "income"
	TransactionExpense string = "expense"
)

type Employee struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	Role      string    `db:"role"`
	Email     string    `db:"email"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
}

type User struct {
	ID         int       `db:"id"`
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	Role       string    `db:"role"`
	EmployeeID *int      `db:"employee_id"`
	CreatedAt  time.Time `db:"created_at"`
}

// Principal identifies the acting account for an operation. Core operations
// take it explicitly instead of reading ambient session state.
type Principal struct {
	UserID int
	Role   string
}

type ServiceOrder struct {
	ID                 int              `db:"id"`
	ClientID           int              `db:"client_id"`
	MachineryID        int              `db:"machinery_id"`
	Description        string           `db:"description"`
	Status             string           `db:"status"`
	EstimatedHours     *int             `db:"estimated_hours"`
	SatisfactionRating *float64         `db:"satisfaction_rating"`
	TotalValue         *decimal.Decimal `db:"total_value"`
	OpenedAt           time.Time        `db:"opened_at"`
	ClosedDate         *time.Time       `db:"closed_date"`
	UpdatedAt          time.Time        `db:"updated_at"`
}

type FinancialTransaction struct {
	ID          int             `db:"id"`
	Type        string          `db:"type"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	Date        time.Time       `db:"date"`
}

type Achievement struct {
	ID          int    `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Icon        string `db:"icon"`
	Points      int    `db:"points"`
}

// EarnedAchievement is a catalog entry joined with the grant timestamp for a
// particular user.
type EarnedAchievement struct {
	Achievement
	EarnedAt time.Time `db:"earned_at"`
}

type EmployeeStats struct {
	ID                int     `db:"id"`
	EmployeeID        int     `db:"employee_id"`
	Points            int     `db:"points"`
	Level             int     `db:"level"`
	ServicesCompleted int     `db:"services_completed"`
	TotalRatings      int     `db:"total_ratings"`
	TotalRatingValue  float64 `db:"total_rating_value"`
	AvgSatisfaction   float64 `db:"avg_satisfaction"`
}

type PointsHistoryEntry struct {
	ID         int       `db:"id"`
	EmployeeID int       `db:"employee_id"`
	OrderID    *int      `db:"order_id"`
	Points     int       `db:"points"`
	Reason     string    `db:"reason"`
	EarnedAt   time.Time `db:"earned_at"`
}

type LeaderboardEntry struct {
	EmployeeID        int     `db:"id"`
	Name              string  `db:"name"`
	Role              string  `db:"role"`
	Points            int     `db:"points"`
	Level             int     `db:"level"`
	ServicesCompleted int     `db:"services_completed"`
	AvgSatisfaction   float64 `db:"avg_satisfaction"`
}
