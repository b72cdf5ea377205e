package gamification

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/samape/samape/internal/domain"
	"github.com/samape/samape/internal/pg"
	"github.com/samape/samape/pkg/level"
)

type StatsRepo interface {
	GetByEmployeeID(ctx context.Context, employeeID int) (*domain.EmployeeStats, error)
	GetByEmployeeIDForUpdate(ctx context.Context, employeeID int) (*domain.EmployeeStats, error)
	Upsert(ctx context.Context, stats *domain.EmployeeStats) (*domain.EmployeeStats, error)
	InsertHistory(ctx context.Context, entry *domain.PointsHistoryEntry) error
	HistoryByEmployeeID(ctx context.Context, employeeID int) ([]domain.PointsHistoryEntry, error)
	Leaderboard(ctx context.Context, dimension string, limit int) ([]domain.LeaderboardEntry, error)
}

type AchievementRepo interface {
	GetAll(ctx context.Context) ([]domain.Achievement, error)
	FindByID(ctx context.Context, achievementID int) (*domain.Achievement, error)
	FindByName(ctx context.Context, name string) (*domain.Achievement, error)
	HasUserAchievement(ctx context.Context, userID, achievementID int) (bool, error)
	InsertUserAchievement(ctx context.Context, userID, achievementID int) (bool, error)
	GetUserAchievements(ctx context.Context, userID int) ([]domain.EarnedAchievement, error)
}

type IdentityRepo interface {
	FindUserByID(ctx context.Context, userID int) (*domain.User, error)
	FindEmployeeByID(ctx context.Context, employeeID int) (*domain.Employee, error)
	EmployeeIDForUser(ctx context.Context, userID int) (*int, error)
	UserIDForEmployee(ctx context.Context, employeeID int) (*int, error)
}

type Service struct {
	statsRepo       StatsRepo
	achievementRepo AchievementRepo
	identityRepo    IdentityRepo
	txManager       pg.TXManager
}

func New(statsRepo StatsRepo, achievementRepo AchievementRepo, identityRepo IdentityRepo, txManager pg.TXManager) *Service {
	return &Service{
		statsRepo:       statsRepo,
		achievementRepo: achievementRepo,
		identityRepo:    identityRepo,
		txManager:       txManager,
	}
}

var (
	ErrInvalidPoints    = errors.New("points must be positive")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidDimension = errors.New("unknown leaderboard dimension")
)

const (
	// BaseCompletionPoints is granted to every assigned employee when a
	// service order is completed.
	BaseCompletionPoints = 10
	// EfficiencyBonusPoints is granted on top when the order closed within
	// its estimated duration.
	EfficiencyBonusPoints = 5

	reasonServiceCompletion = "service order completion"
	reasonEfficiencyBonus   = "completed within estimated duration"

	defaultLeaderboardLimit = 10
)

type milestone struct {
	count int
	name  string
}

// Milestones are soft-bound to the catalog by name: a missing catalog entry
// is skipped, not an error.
var (
	serviceMilestones = []milestone{
		{count: 1, name: "Primeiro Serviço"},
		{count: 5, name: "Técnico Iniciante"},
		{count: 25, name: "Técnico Experiente"},
		{count: 100, name: "Mestre Técnico"},
	}
	satisfactionMilestones = []milestone{
		{count: 1, name: "Satisfação 5 Estrelas"},
		{count: 10, name: "Cliente Feliz"},
	}
)

// AddPoints grants points to an employee, creating the stats row on first
// grant, recomputing the level and appending the audit ledger entry. The
// read-modify-write runs under a row lock so concurrent grants to the same
// employee never lose an increment.
func (s *Service) AddPoints(ctx context.Context, employeeID, points int, reason string, orderID *int) (*domain.EmployeeStats, error) {
	if points <= 0 {
		return nil, ErrInvalidPoints
	}
	employee, err := s.identityRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	var updated *domain.EmployeeStats
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		stats, err := s.statsRepo.GetByEmployeeIDForUpdate(ctx, employeeID)
		if err != nil {
			return err
		}
		if stats == nil {
			stats = &domain.EmployeeStats{EmployeeID: employeeID}
		}
		stats.Points += points
		stats.Level = level.ForPoints(stats.Points)

		updated, err = s.statsRepo.Upsert(ctx, stats)
		if err != nil {
			return err
		}
		return s.statsRepo.InsertHistory(ctx, &domain.PointsHistoryEntry{
			EmployeeID: employeeID,
			OrderID:    orderID,
			Points:     points,
			Reason:     reason,
		})
	})
	if err != nil {
		zap.L().Error("can't add points to employee", zap.Int("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// AwardAchievement grants the achievement to the user and credits its point
// value to the linked employee, both in one transaction. Returns true only
// when the grant is new; re-awarding is a silent no-op, as is an unknown
// achievement id.
func (s *Service) AwardAchievement(ctx context.Context, userID, achievementID int) (bool, error) {
	achievement, err := s.achievementRepo.FindByID(ctx, achievementID)
	if err != nil {
		return false, err
	}
	if achievement == nil {
		return false, nil
	}

	has, err := s.achievementRepo.HasUserAchievement(ctx, userID, achievementID)
	if err != nil {
		return false, err
	}
	if has {
		return false, nil
	}

	granted := false
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		inserted, err := s.achievementRepo.InsertUserAchievement(ctx, userID, achievementID)
		if err != nil {
			return err
		}
		if !inserted {
			// lost the race, somebody granted it first
			return nil
		}
		granted = true

		employeeID, err := s.identityRepo.EmployeeIDForUser(ctx, userID)
		if err != nil {
			return err
		}
		if employeeID == nil || achievement.Points <= 0 {
			return nil
		}
		reason := fmt.Sprintf("achievement earned: %s", achievement.Name)
		_, err = s.AddPoints(ctx, *employeeID, achievement.Points, reason, nil)
		return err
	})
	if err != nil {
		zap.L().Error("can't award achievement", zap.Int("user_id", userID), zap.Int("achievement_id", achievementID), zap.Error(err))
		return false, err
	}
	return granted, nil
}

// CheckServiceCountAchievements awards every service-count milestone the
// employee's completed total has reached. Safe to re-run on every completion
// because AwardAchievement is idempotent.
func (s *Service) CheckServiceCountAchievements(ctx context.Context, userID, servicesCompleted int) (bool, error) {
	return s.checkMilestones(ctx, userID, servicesCompleted, serviceMilestones)
}

// CheckSatisfactionAchievements awards rating milestones once a five-star
// rating arrives.
func (s *Service) CheckSatisfactionAchievements(ctx context.Context, userID, ratingCount int) (bool, error) {
	return s.checkMilestones(ctx, userID, ratingCount, satisfactionMilestones)
}

func (s *Service) checkMilestones(ctx context.Context, userID, count int, milestones []milestone) (bool, error) {
	awarded := false
	for _, m := range milestones {
		if count < m.count {
			continue
		}
		achievement, err := s.achievementRepo.FindByName(ctx, m.name)
		if err != nil {
			return awarded, err
		}
		if achievement == nil {
			continue
		}
		granted, err := s.AwardAchievement(ctx, userID, achievement.ID)
		if err != nil {
			return awarded, err
		}
		if granted {
			awarded = true
		}
	}
	return awarded, nil
}

// ApplyServiceCompletion applies the gamification side effects of a completed
// order to every assigned employee: services count, rating totals, base and
// bonus points, ledger rows and milestone checks. The caller's transaction
// makes the whole completion atomic.
func (s *Service) ApplyServiceCompletion(ctx context.Context, orderID int, employeeIDs []int, satisfactionRating *float64, withinEstimate bool) error {
	if len(employeeIDs) == 0 {
		return nil
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, employeeID := range employeeIDs {
			if err := s.applyCompletionFor(ctx, orderID, employeeID, satisfactionRating, withinEstimate); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Service) applyCompletionFor(ctx context.Context, orderID, employeeID int, satisfactionRating *float64, withinEstimate bool) error {
	stats, err := s.statsRepo.GetByEmployeeIDForUpdate(ctx, employeeID)
	if err != nil {
		return err
	}
	if stats == nil {
		stats = &domain.EmployeeStats{EmployeeID: employeeID}
	}

	stats.ServicesCompleted++

	pointsEarned := BaseCompletionPoints
	if satisfactionRating != nil && *satisfactionRating > 0 {
		stats.TotalRatings++
		stats.TotalRatingValue += *satisfactionRating
		if *satisfactionRating >= 4 {
			pointsEarned += int(math.Round((*satisfactionRating - 3) * 5))
		}
	}

	stats.Points += pointsEarned
	stats.Level = level.ForPoints(stats.Points)
	stats.AvgSatisfaction = averageSatisfaction(stats.TotalRatingValue, stats.TotalRatings)

	stats, err = s.statsRepo.Upsert(ctx, stats)
	if err != nil {
		return err
	}
	err = s.statsRepo.InsertHistory(ctx, &domain.PointsHistoryEntry{
		EmployeeID: employeeID,
		OrderID:    &orderID,
		Points:     pointsEarned,
		Reason:     reasonServiceCompletion,
	})
	if err != nil {
		return err
	}

	if withinEstimate {
		if _, err := s.AddPoints(ctx, employeeID, EfficiencyBonusPoints, reasonEfficiencyBonus, &orderID); err != nil {
			return err
		}
	}

	userID, err := s.identityRepo.UserIDForEmployee(ctx, employeeID)
	if err != nil {
		return err
	}
	if userID == nil {
		return nil
	}
	if _, err := s.CheckServiceCountAchievements(ctx, *userID, stats.ServicesCompleted); err != nil {
		return err
	}
	if satisfactionRating != nil && *satisfactionRating == 5 {
		if _, err := s.CheckSatisfactionAchievements(ctx, *userID, stats.TotalRatings); err != nil {
			return err
		}
	}
	return nil
}

func averageSatisfaction(totalValue float64, totalRatings int) float64 {
	if totalRatings == 0 {
		return 0
	}
	return math.Round(totalValue/float64(totalRatings)*10) / 10
}

// GetEmployeeStats returns the aggregate, or zero-value defaults when the
// employee has no stats row yet.
func (s *Service) GetEmployeeStats(ctx context.Context, employeeID int) (*domain.EmployeeStats, error) {
	stats, err := s.statsRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		zap.L().Error("can't get employee stats", zap.Error(err))
		return nil, err
	}
	if stats == nil {
		return &domain.EmployeeStats{
			EmployeeID: employeeID,
			Level:      level.Min,
		}, nil
	}
	return stats, nil
}

func (s *Service) GetLeaderboard(ctx context.Context, dimension string, limit int) ([]domain.LeaderboardEntry, error) {
	switch dimension {
	case "points", "services", "satisfaction":
	default:
		return nil, ErrInvalidDimension
	}
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	entries, err := s.statsRepo.Leaderboard(ctx, dimension, limit)
	if err != nil {
		zap.L().Error("can't get leaderboard", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func (s *Service) GetAllAchievements(ctx context.Context) ([]domain.Achievement, error) {
	achievements, err := s.achievementRepo.GetAll(ctx)
	if err != nil {
		zap.L().Error("can't get achievements", zap.Error(err))
		return nil, err
	}
	return achievements, nil
}

func (s *Service) GetUserAchievements(ctx context.Context, userID int) ([]domain.EarnedAchievement, error) {
	user, err := s.identityRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	earned, err := s.achievementRepo.GetUserAchievements(ctx, userID)
	if err != nil {
		zap.L().Error("can't get user achievements", zap.Error(err))
		return nil, err
	}
	return earned, nil
}

func (s *Service) GetPointsHistory(ctx context.Context, employeeID int) ([]domain.PointsHistoryEntry, error) {
	entries, err := s.statsRepo.HistoryByEmployeeID(ctx, employeeID)
	if err != nil {
		zap.L().Error("can't get points history", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
