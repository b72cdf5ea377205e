package achievementrepo

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/samape/samape/internal/domain"
)

var achievementRows = []string{"id", "name", "description", "icon", "points"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	return New(mock), mock
}

func TestGetAll(t *testing.T) {
	repo, mock := NewMock(t)
	defer mock.Close()

	mock.ExpectQuery(`FROM achievements`).
		WillReturnRows(pgxmock.NewRows(achievementRows).
			AddRow(1, "Primeiro Serviço", "Complete seu primeiro serviço", "bi-1-circle", 10).
			AddRow(2, "Técnico Iniciante", "Complete 5 serviços", "bi-5-circle", 20))

	achievements, err := repo.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, achievements, 2)
	assert.Equal(t, "Primeiro Serviço", achievements[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID(t *testing.T) {
	repo, mock := NewMock(t)
	defer mock.Close()
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(`WHERE id = \$1`).
			WithArgs(3).
			WillReturnRows(pgxmock.NewRows(achievementRows).
				AddRow(3, "Mestre Técnico", "Complete 100 serviços", "bi-trophy", 100))

		achievement, err := repo.FindByID(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, &domain.Achievement{
			ID: 3, Name: "Mestre Técnico", Description: "Complete 100 serviços", Icon: "bi-trophy", Points: 100,
		}, achievement)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`WHERE id = \$1`).
			WithArgs(99).
			WillReturnError(sql.ErrNoRows)

		achievement, err := repo.FindByID(ctx, 99)
		assert.NoError(t, err)
		assert.Nil(t, achievement)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindByName(t *testing.T) {
	repo, mock := NewMock(t)
	defer mock.Close()

	mock.ExpectQuery(`WHERE name = \$1`).
		WithArgs("Primeiro Serviço").
		WillReturnRows(pgxmock.NewRows(achievementRows).
			AddRow(1, "Primeiro Serviço", "Complete seu primeiro serviço", "bi-1-circle", 10))

	achievement, err := repo.FindByName(context.Background(), "Primeiro Serviço")
	assert.NoError(t, err)
	assert.Equal(t, 1, achievement.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasUserAchievement(t *testing.T) {
	repo, mock := NewMock(t)
	defer mock.Close()
	ctx := context.Background()

	t.Run("Granted", func(t *testing.T) {
		mock.ExpectQuery(`FROM user_achievements`).
			WithArgs(9, 1).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

		has, err := repo.HasUserAchievement(ctx, 9, 1)
		assert.NoError(t, err)
		assert.True(t, has)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not granted", func(t *testing.T) {
		mock.ExpectQuery(`FROM user_achievements`).
			WithArgs(9, 1).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))

		has, err := repo.HasUserAchievement(ctx, 9, 1)
		assert.NoError(t, err)
		assert.False(t, has)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInsertUserAchievement(t *testing.T) {
	repo, mock := NewMock(t)
	defer mock.Close()
	ctx := context.Background()

	t.Run("Inserted", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO user_achievements`).
			WithArgs(9, 1).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		inserted, err := repo.InsertUserAchievement(ctx, 9, 1)
		assert.NoError(t, err)
		assert.True(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Conflict reports not inserted", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO user_achievements`).
			WithArgs(9, 1).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))

		inserted, err := repo.InsertUserAchievement(ctx, 9, 1)
		assert.NoError(t, err)
		assert.False(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Write error", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO user_achievements`).
			WithArgs(9, 1).
			WillReturnError(errors.New("db error"))

		inserted, err := repo.InsertUserAchievement(ctx, 9, 1)
		assert.Error(t, err)
		assert.False(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetUserAchievements(t *testing.T) {
	repo, mock := NewMock(t)
	defer mock.Close()

	earnedAt := time.Now()
	mock.ExpectQuery(`JOIN user_achievements`).
		WithArgs(9).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description", "icon", "points", "earned_at"}).
			AddRow(2, "Técnico Iniciante", "Complete 5 serviços", "bi-5-circle", 20, earnedAt))

	earned, err := repo.GetUserAchievements(context.Background(), 9)
	assert.NoError(t, err)
	assert.Len(t, earned, 1)
	assert.Equal(t, "Técnico Iniciante", earned[0].Name)
	assert.Equal(t, earnedAt, earned[0].EarnedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
