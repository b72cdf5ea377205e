package identityrepo

import (
	"context"
	"database/sql"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/samape/samape/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	return New(mock), mock
}

func TestFindUserByID(t *testing.T) {
	repo, mock := NewMock(t)
	defer mock.Close()
	ctx := context.Background()

	createdAt := time.Now()

	t.Run("Linked user", func(t *testing.T) {
		mock.ExpectQuery(`FROM users`).
			WithArgs(9).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "role", "employee_id", "created_at"}).
				AddRow(9, "Ana", "ana@samape.com", "technician", sql.NullInt64{Int64: 5, Valid: true}, createdAt))

		user, err := repo.FindUserByID(ctx, 9)
		assert.NoError(t, err)
		assert.Equal(t, "Ana", user.Name)
		assert.Equal(t, 5, *user.EmployeeID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unlinked user", func(t *testing.T) {
		mock.ExpectQuery(`FROM users`).
			WithArgs(9).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "role", "employee_id", "created_at"}).
				AddRow(9, "Ana", "ana@samape.com", "manager", sql.NullInt64{}, createdAt))

		user, err := repo.FindUserByID(ctx, 9)
		assert.NoError(t, err)
		assert.Nil(t, user.EmployeeID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM users`).
			WithArgs(9).
			WillReturnError(sql.ErrNoRows)

		user, err := repo.FindUserByID(ctx, 9)
		assert.NoError(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindEmployeeByID(t *testing.T) {
	repo, mock := NewMock(t)
	defer mock.Close()
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		createdAt := time.Now()
		mock.ExpectQuery(`FROM employees`).
			WithArgs(5).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "role", "email", "active", "created_at"}).
				AddRow(5, "Ana", "technician", "ana@samape.com", true, createdAt))

		employee, err := repo.FindEmployeeByID(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, &domain.Employee{
			ID: 5, Name: "Ana", Role: "technician", Email: "ana@samape.com", Active: true, CreatedAt: createdAt,
		}, employee)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM employees`).
			WithArgs(5).
			WillReturnError(sql.ErrNoRows)

		employee, err := repo.FindEmployeeByID(ctx, 5)
		assert.NoError(t, err)
		assert.Nil(t, employee)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEmployeeIDForUser(t *testing.T) {
	repo, mock := NewMock(t)
	defer mock.Close()
	ctx := context.Background()

	t.Run("Linked", func(t *testing.T) {
		mock.ExpectQuery(`SELECT employee_id`).
			WithArgs(9).
			WillReturnRows(pgxmock.NewRows([]string{"employee_id"}).AddRow(sql.NullInt64{Int64: 5, Valid: true}))

		id, err := repo.EmployeeIDForUser(ctx, 9)
		assert.NoError(t, err)
		assert.Equal(t, 5, *id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not linked", func(t *testing.T) {
		mock.ExpectQuery(`SELECT employee_id`).
			WithArgs(9).
			WillReturnRows(pgxmock.NewRows([]string{"employee_id"}).AddRow(sql.NullInt64{}))

		id, err := repo.EmployeeIDForUser(ctx, 9)
		assert.NoError(t, err)
		assert.Nil(t, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No such user", func(t *testing.T) {
		mock.ExpectQuery(`SELECT employee_id`).
			WithArgs(9).
			WillReturnError(sql.ErrNoRows)

		id, err := repo.EmployeeIDForUser(ctx, 9)
		assert.NoError(t, err)
		assert.Nil(t, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserIDForEmployee(t *testing.T) {
	repo, mock := NewMock(t)
	defer mock.Close()
	ctx := context.Background()

	t.Run("Linked", func(t *testing.T) {
		mock.ExpectQuery(`WHERE employee_id = \$1`).
			WithArgs(5).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(9))

		id, err := repo.UserIDForEmployee(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, 9, *id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No account", func(t *testing.T) {
		mock.ExpectQuery(`WHERE employee_id = \$1`).
			WithArgs(5).
			WillReturnError(sql.ErrNoRows)

		id, err := repo.UserIDForEmployee(ctx, 5)
		assert.NoError(t, err)
		assert.Nil(t, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
