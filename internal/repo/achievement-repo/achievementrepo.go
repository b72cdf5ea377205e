package achievementrepo

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
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll(ctx context.Context) ([]domain.Achievement, error) {
	query := `
        SELECT id, name, description, icon, points
        FROM achievements
        ORDER BY points ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get achievements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var achievements []domain.Achievement
	for rows.Next() {
		var a domain.Achievement
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Icon, &a.Points); err != nil {
			zap.L().Error("can't scan achievement row", zap.Error(err))
			return nil, err
		}
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}

func (r *Repository) FindByID(ctx context.Context, achievementID int) (*domain.Achievement, error) {
	query := `
        SELECT id, name, description, icon, points
        FROM achievements
        WHERE id = $1
    `
	return r.scanAchievement(r.db.QueryRow(ctx, query, achievementID))
}

func (r *Repository) FindByName(ctx context.Context, name string) (*domain.Achievement, error) {
	query := `
        SELECT id, name, description, icon, points
        FROM achievements
        WHERE name = $1
    `
	return r.scanAchievement(r.db.QueryRow(ctx, query, name))
}

func (r *Repository) scanAchievement(row pgx.Row) (*domain.Achievement, error) {
	var a domain.Achievement
	err := row.Scan(&a.ID, &a.Name, &a.Description, &a.Icon, &a.Points)
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find achievement", zap.Error(err))
		return nil, err
	}
	return &a, nil
}

func (r *Repository) HasUserAchievement(ctx context.Context, userID, achievementID int) (bool, error) {
	query := `
        SELECT COUNT(*)
        FROM user_achievements
        WHERE user_id = $1 AND achievement_id = $2
    `
	var count int
	if err := r.db.QueryRow(ctx, query, userID, achievementID).Scan(&count); err != nil {
		zap.L().Error("can't check user achievement", zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

// InsertUserAchievement records the grant. The (user_id, achievement_id)
// uniqueness constraint is the final guard against concurrent double grants:
// a conflicting insert reports false instead of an error.
func (r *Repository) InsertUserAchievement(ctx context.Context, userID, achievementID int) (bool, error) {
	query := `
        INSERT INTO user_achievements (user_id, achievement_id)
        VALUES ($1, $2)
        ON CONFLICT (user_id, achievement_id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, userID, achievementID)
	if err != nil {
		zap.L().Error("can't insert user achievement", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) GetUserAchievements(ctx context.Context, userID int) ([]domain.EarnedAchievement, error) {
	query := `
        SELECT a.id, a.name, a.description, a.icon, a.points, ua.earned_at
        FROM achievements a
        JOIN user_achievements ua ON a.id = ua.achievement_id
        WHERE ua.user_id = $1
        ORDER BY ua.earned_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get user achievements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var earned []domain.EarnedAchievement
	for rows.Next() {
		var e domain.EarnedAchievement
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Icon, &e.Points, &e.EarnedAt); err != nil {
			zap.L().Error("can't scan user achievement row", zap.Error(err))
			return nil, err
		}
		earned = append(earned, e)
	}
	return earned, rows.Err()
}
