package orderrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/samape/samape/internal/domain"
	"github.com/samape/samape/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const orderColumns = `id, client_id, machinery_id, description, status, estimated_hours, satisfaction_rating, total_value, opened_at, closed_date, updated_at`

func (r *Repository) FindByID(ctx context.Context, orderID int) (*domain.ServiceOrder, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM service_orders
        WHERE id = $1
    `
	return r.scanOrder(ctx, query, orderID)
}

// FindByIDForUpdate locks the order row for the rest of the enclosing
// transaction, so concurrent transitions of the same order serialize.
func (r *Repository) FindByIDForUpdate(ctx context.Context, orderID int) (*domain.ServiceOrder, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM service_orders
        WHERE id = $1
        FOR UPDATE
    `
	return r.scanOrder(ctx, query, orderID)
}

func (r *Repository) scanOrder(ctx context.Context, query string, orderID int) (*domain.ServiceOrder, error) {
	row := r.db.QueryRow(ctx, query, orderID)

	var (
		order     domain.ServiceOrder
		estimated sql.NullInt64
		rating    sql.NullFloat64
		total     decimal.NullDecimal
		closed    sql.NullTime
	)
	err := row.Scan(&order.ID, &order.ClientID, &order.MachineryID, &order.Description, &order.Status,
		&estimated, &rating, &total, &order.OpenedAt, &closed, &order.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find service order", zap.Error(err))
		return nil, err
	}
	if estimated.Valid {
		hours := int(estimated.Int64)
		order.EstimatedHours = &hours
	}
	if rating.Valid {
		order.SatisfactionRating = &rating.Float64
	}
	if total.Valid {
		order.TotalValue = &total.Decimal
	}
	if closed.Valid {
		order.ClosedDate = &closed.Time
	}
	return &order, nil
}

// ListByStatus returns orders in one lifecycle state, newest first.
func (r *Repository) ListByStatus(ctx context.Context, status string) ([]domain.ServiceOrder, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM service_orders
        WHERE status = $1
        ORDER BY opened_at DESC
    `
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		zap.L().Error("can't list service orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.ServiceOrder
	for rows.Next() {
		var (
			order     domain.ServiceOrder
			estimated sql.NullInt64
			rating    sql.NullFloat64
			total     decimal.NullDecimal
			closed    sql.NullTime
		)
		err := rows.Scan(&order.ID, &order.ClientID, &order.MachineryID, &order.Description, &order.Status,
			&estimated, &rating, &total, &order.OpenedAt, &closed, &order.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan service order row", zap.Error(err))
			return nil, err
		}
		if estimated.Valid {
			hours := int(estimated.Int64)
			order.EstimatedHours = &hours
		}
		if rating.Valid {
			order.SatisfactionRating = &rating.Float64
		}
		if total.Valid {
			order.TotalValue = &total.Decimal
		}
		if closed.Valid {
			order.ClosedDate = &closed.Time
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *Repository) AssignedEmployeeIDs(ctx context.Context, orderID int) ([]int, error) {
	query := `
        SELECT employee_id
        FROM service_order_employees
        WHERE order_id = $1
        ORDER BY employee_id
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get assigned employees", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan assigned employee row", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *Repository) UpdateStatus(ctx context.Context, orderID int, status string) error {
	query := `
        UPDATE service_orders
        SET status = $1, updated_at = CURRENT_TIMESTAMP
        WHERE id = $2
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, status, orderID)
		if err != nil {
			zap.L().Error("can't update order status", zap.Error(err))
			return err
		}
		return nil
	})
}

// MarkCompleted writes the terminal completed state: description, closing
// date, total value and the optional satisfaction rating.
func (r *Repository) MarkCompleted(ctx context.Context, order *domain.ServiceOrder) error {
	query := `
        UPDATE service_orders
        SET status = $1, description = $2, closed_date = $3, total_value = $4, satisfaction_rating = $5, updated_at = CURRENT_TIMESTAMP
        WHERE id = $6
    `
	var total decimal.NullDecimal
	if order.TotalValue != nil {
		total = decimal.NullDecimal{Decimal: *order.TotalValue, Valid: true}
	}
	var rating sql.NullFloat64
	if order.SatisfactionRating != nil {
		rating = sql.NullFloat64{Float64: *order.SatisfactionRating, Valid: true}
	}
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, order.Status, order.Description, order.ClosedDate, total, rating, order.ID)
		if err != nil {
			zap.L().Error("can't mark order completed", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) MarkCancelled(ctx context.Context, orderID int, closedDate time.Time) error {
	query := `
        UPDATE service_orders
        SET status = $1, closed_date = $2, updated_at = CURRENT_TIMESTAMP
        WHERE id = $3
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, domain.StatusCancelled, closedDate, orderID)
		if err != nil {
			zap.L().Error("can't mark order cancelled", zap.Error(err))
			return err
		}
		return nil
	})
}

// StatusCounts reports how many orders sit in every lifecycle state.
func (r *Repository) StatusCounts(ctx context.Context) (map[string]int, error) {
	query := `
        SELECT status, COUNT(*)
        FROM service_orders
        GROUP BY status
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get order status counts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{
		domain.StatusOpen:       0,
		domain.StatusInProgress: 0,
		domain.StatusCompleted:  0,
		domain.StatusCancelled:  0,
	}
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			zap.L().Error("can't scan status count row", zap.Error(err))
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
