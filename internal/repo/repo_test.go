package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/samape/samape/internal/pg"
	achievementrepo "github.com/samape/samape/internal/repo/achievement-repo"
	financerepo "github.com/samape/samape/internal/repo/finance-repo"
	identityrepo "github.com/samape/samape/internal/repo/identity-repo"
	orderrepo "github.com/samape/samape/internal/repo/order-repo"
	statsrepo "github.com/samape/samape/internal/repo/stats-repo"
)

func TestNew(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	txManager := pg.NewMockTXManager(ctrl)

	repositories := New(mock, txManager)

	assert.NotNil(t, repositories)
	assert.IsType(t, &orderrepo.Repository{}, repositories.OrderRepo)
	assert.IsType(t, &financerepo.Repository{}, repositories.FinanceRepo)
	assert.IsType(t, &statsrepo.Repository{}, repositories.StatsRepo)
	assert.IsType(t, &achievementrepo.Repository{}, repositories.AchievementRepo)
	assert.IsType(t, &identityrepo.Repository{}, repositories.IdentityRepo)
}
