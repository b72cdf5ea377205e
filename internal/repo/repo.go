package repo

import (
	"github.com/samape/samape/internal/pg"
	achievementrepo "github.com/samape/samape/internal/repo/achievement-repo"
	financerepo "github.com/samape/samape/internal/repo/finance-repo"
	identityrepo "github.com/samape/samape/internal/repo/identity-repo"
	orderrepo "github.com/samape/samape/internal/repo/order-repo"
	statsrepo "github.com/samape/samape/internal/repo/stats-repo"
	"github.com/samape/samape/internal/service/gamification"
	"github.com/samape/samape/internal/service/orderservice"
)

type Repositories struct {
	OrderRepo       orderservice.OrderRepo
	FinanceRepo     orderservice.FinanceRepo
	StatsRepo       gamification.StatsRepo
	AchievementRepo gamification.AchievementRepo
	IdentityRepo    gamification.IdentityRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	orderRepo := orderrepo.New(conn, txManager)
	financeRepo := financerepo.New(conn)
	statsRepo := statsrepo.New(conn, txManager)
	achievementRepo := achievementrepo.New(conn)
	identityRepo := identityrepo.New(conn)

	return &Repositories{
		OrderRepo:       orderRepo,
		FinanceRepo:     financeRepo,
		StatsRepo:       statsRepo,
		AchievementRepo: achievementRepo,
		IdentityRepo:    identityRepo,
	}
}
