package financerepo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/samape/samape/internal/domain"
	"github.com/samape/samape/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// CreateTransaction appends an immutable ledger row.
func (r *Repository) CreateTransaction(ctx context.Context, transaction *domain.FinancialTransaction) (*domain.FinancialTransaction, error) {
	query := `
        INSERT INTO financial_transactions (type, amount, description, date)
        VALUES ($1, $2, $3, $4)
        RETURNING id, type, amount, description, date
    `
	row := r.db.QueryRow(ctx, query, transaction.Type, transaction.Amount, transaction.Description, transaction.Date)

	var created domain.FinancialTransaction
	err := row.Scan(&created.ID, &created.Type, &created.Amount, &created.Description, &created.Date)
	if err != nil {
		zap.L().Error("can't create financial transaction", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

// Summary reports income and expense totals for a period.
func (r *Repository) Summary(ctx context.Context, from, to time.Time) (income, expense decimal.Decimal, err error) {
	query := `
        SELECT
            COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
            COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)
        FROM financial_transactions
        WHERE date BETWEEN $1 AND $2
    `
	err = r.db.QueryRow(ctx, query, from, to).Scan(&income, &expense)
	if err != nil {
		zap.L().Error("can't get financial summary", zap.Error(err))
		return decimal.Zero, decimal.Zero, err
	}
	return income, expense, nil
}
