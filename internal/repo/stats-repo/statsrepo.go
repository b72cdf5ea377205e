package statsrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
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

const statsColumns = `id, employee_id, points, level, services_completed, total_ratings, total_rating_value, avg_satisfaction`

func (r *Repository) GetByEmployeeID(ctx context.Context, employeeID int) (*domain.EmployeeStats, error) {
	query := `
        SELECT ` + statsColumns + `
        FROM employee_stats
        WHERE employee_id = $1
    `
	return r.scanStats(ctx, query, employeeID)
}

// GetByEmployeeIDForUpdate serializes concurrent grants to one employee. The
// stats row may not exist yet, in which case FOR UPDATE on it locks nothing
// and two first grants could both read empty and overwrite each other, so the
// parent employees row is locked first.
func (r *Repository) GetByEmployeeIDForUpdate(ctx context.Context, employeeID int) (*domain.EmployeeStats, error) {
	lock := `
        SELECT id
        FROM employees
        WHERE id = $1
        FOR UPDATE
    `
	if _, err := r.db.Exec(ctx, lock, employeeID); err != nil {
		zap.L().Error("can't lock employee row", zap.Error(err))
		return nil, err
	}

	query := `
        SELECT ` + statsColumns + `
        FROM employee_stats
        WHERE employee_id = $1
        FOR UPDATE
    `
	return r.scanStats(ctx, query, employeeID)
}

func (r *Repository) scanStats(ctx context.Context, query string, employeeID int) (*domain.EmployeeStats, error) {
	row := r.db.QueryRow(ctx, query, employeeID)

	var stats domain.EmployeeStats
	err := row.Scan(&stats.ID, &stats.EmployeeID, &stats.Points, &stats.Level, &stats.ServicesCompleted,
		&stats.TotalRatings, &stats.TotalRatingValue, &stats.AvgSatisfaction)
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get employee stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}

// Upsert writes the aggregate row, creating it on first touch. The unique
// employee_id constraint keeps one row per employee.
func (r *Repository) Upsert(ctx context.Context, stats *domain.EmployeeStats) (*domain.EmployeeStats, error) {
	query := `
        INSERT INTO employee_stats (employee_id, points, level, services_completed, total_ratings, total_rating_value, avg_satisfaction)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (employee_id) DO UPDATE
        SET points = EXCLUDED.points,
            level = EXCLUDED.level,
            services_completed = EXCLUDED.services_completed,
            total_ratings = EXCLUDED.total_ratings,
            total_rating_value = EXCLUDED.total_rating_value,
            avg_satisfaction = EXCLUDED.avg_satisfaction,
            updated_at = CURRENT_TIMESTAMP
        RETURNING ` + statsColumns + `
    `
	var updated domain.EmployeeStats
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, stats.EmployeeID, stats.Points, stats.Level, stats.ServicesCompleted,
			stats.TotalRatings, stats.TotalRatingValue, stats.AvgSatisfaction)
		err := row.Scan(&updated.ID, &updated.EmployeeID, &updated.Points, &updated.Level, &updated.ServicesCompleted,
			&updated.TotalRatings, &updated.TotalRatingValue, &updated.AvgSatisfaction)
		if err != nil {
			zap.L().Error("can't upsert employee stats", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *Repository) InsertHistory(ctx context.Context, entry *domain.PointsHistoryEntry) error {
	query := `
        INSERT INTO employee_points_history (employee_id, order_id, points, reason)
        VALUES ($1, $2, $3, $4)
    `
	var orderID sql.NullInt64
	if entry.OrderID != nil {
		orderID = sql.NullInt64{Int64: int64(*entry.OrderID), Valid: true}
	}
	_, err := r.db.Exec(ctx, query, entry.EmployeeID, orderID, entry.Points, entry.Reason)
	if err != nil {
		zap.L().Error("can't insert points history", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) HistoryByEmployeeID(ctx context.Context, employeeID int) ([]domain.PointsHistoryEntry, error) {
	query := `
        SELECT id, employee_id, order_id, points, reason, earned_at
        FROM employee_points_history
        WHERE employee_id = $1
        ORDER BY earned_at DESC
    `
	rows, err := r.db.Query(ctx, query, employeeID)
	if err != nil {
		zap.L().Error("can't get points history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.PointsHistoryEntry
	for rows.Next() {
		var (
			entry   domain.PointsHistoryEntry
			orderID sql.NullInt64
		)
		if err := rows.Scan(&entry.ID, &entry.EmployeeID, &orderID, &entry.Points, &entry.Reason, &entry.EarnedAt); err != nil {
			zap.L().Error("can't scan points history row", zap.Error(err))
			return nil, err
		}
		if orderID.Valid {
			id := int(orderID.Int64)
			entry.OrderID = &id
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Leaderboard ranks active employees by the given dimension, name ascending on
// ties. The dimension is mapped onto a column here, never interpolated from
// caller input.
func (r *Repository) Leaderboard(ctx context.Context, dimension string, limit int) ([]domain.LeaderboardEntry, error) {
	orderBy := "points"
	switch dimension {
	case "services":
		orderBy = "services_completed"
	case "satisfaction":
		orderBy = "avg_satisfaction"
	}

	query := `
        SELECT
            e.id,
            e.name,
            e.role,
            COALESCE(es.points, 0) AS points,
            COALESCE(es.level, 1) AS level,
            COALESCE(es.services_completed, 0) AS services_completed,
            COALESCE(es.avg_satisfaction, 0) AS avg_satisfaction
        FROM employees e
        LEFT JOIN employee_stats es ON e.id = es.employee_id
        WHERE e.active = TRUE
        ORDER BY ` + orderBy + ` DESC, e.name ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get leaderboard", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var entry domain.LeaderboardEntry
		err := rows.Scan(&entry.EmployeeID, &entry.Name, &entry.Role, &entry.Points, &entry.Level,
			&entry.ServicesCompleted, &entry.AvgSatisfaction)
		if err != nil {
			zap.L().Error("can't scan leaderboard row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
