package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/samape/samape/internal/pg"
	"github.com/samape/samape/internal/repo"
)

func TestNew(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	txManager := pg.NewMockTXManager(ctrl)

	repositories := repo.New(mock, txManager)
	services := New(repositories, txManager)

	assert.NotNil(t, services)
	assert.NotNil(t, services.GamificationService)
	assert.NotNil(t, services.OrderService)
}
