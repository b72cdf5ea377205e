package service

import (
	"github.com/samape/samape/internal/pg"
	"github.com/samape/samape/internal/repo"
	"github.com/samape/samape/internal/service/activity"
	"github.com/samape/samape/internal/service/gamification"
	"github.com/samape/samape/internal/service/orderservice"
)

type Services struct {
	GamificationService *gamification.Service
	OrderService        *orderservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	gamificationService := gamification.New(repo.StatsRepo, repo.AchievementRepo, repo.IdentityRepo, txManager)
	orderService := orderservice.New(repo.OrderRepo, repo.FinanceRepo, gamificationService, activity.New(), txManager)

	return &Services{
		GamificationService: gamificationService,
		OrderService:        orderService,
	}
}
