package identityrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/samape/samape/internal/domain"
	"github.com/samape/samape/internal/pg"
)

// Repository resolves the explicit User-Employee link. The link is owned by
// the users table (employee_id) and backfilled once by migration from the
// legacy email correlation.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindUserByID(ctx context.Context, userID int) (*domain.User, error) {
	query := `
        SELECT id, name, email, role, employee_id, created_at
        FROM users
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)

	var (
		user       domain.User
		employeeID sql.NullInt64
	)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &employeeID, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if employeeID.Valid {
		id := int(employeeID.Int64)
		user.EmployeeID = &id
	}
	return &user, nil
}

func (r *Repository) FindEmployeeByID(ctx context.Context, employeeID int) (*domain.Employee, error) {
	query := `
        SELECT id, name, role, COALESCE(email, ''), active, created_at
        FROM employees
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, employeeID)

	var employee domain.Employee
	err := row.Scan(&employee.ID, &employee.Name, &employee.Role, &employee.Email, &employee.Active, &employee.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find employee", zap.Error(err))
		return nil, err
	}
	return &employee, nil
}

// EmployeeIDForUser returns the linked employee id, or nil when the account
// has no technician identity.
func (r *Repository) EmployeeIDForUser(ctx context.Context, userID int) (*int, error) {
	query := `
        SELECT employee_id
        FROM users
        WHERE id = $1
    `
	var employeeID sql.NullInt64
	err := r.db.QueryRow(ctx, query, userID).Scan(&employeeID)
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't resolve employee for user", zap.Error(err))
		return nil, err
	}
	if !employeeID.Valid {
		return nil, nil
	}
	id := int(employeeID.Int64)
	return &id, nil
}

// UserIDForEmployee returns the account linked to the technician, or nil when
// none is provisioned.
func (r *Repository) UserIDForEmployee(ctx context.Context, employeeID int) (*int, error) {
	query := `
        SELECT id
        FROM users
        WHERE employee_id = $1
    `
	var userID int
	err := r.db.QueryRow(ctx, query, employeeID).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't resolve user for employee", zap.Error(err))
		return nil, err
	}
	return &userID, nil
}
