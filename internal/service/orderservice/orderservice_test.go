package orderservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/samape/samape/internal/domain"
	"github.com/samape/samape/internal/dto"
	"github.com/samape/samape/internal/pg"
)

type mocks struct {
	orderRepo    *MockOrderRepo
	financeRepo  *MockFinanceRepo
	gamification *MockGamification
	activity     *MockActivityLog
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		orderRepo:    NewMockOrderRepo(ctrl),
		financeRepo:  NewMockFinanceRepo(ctrl),
		gamification: NewMockGamification(ctrl),
		activity:     NewMockActivityLog(ctrl),
	}
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		}).AnyTimes()

	service := New(m.orderRepo, m.financeRepo, m.gamification, m.activity, txManager)
	defer ctrl.Finish()
	return service, m
}

func floatPtr(v float64) *float64 { return &v }

func openOrder(id int) *domain.ServiceOrder {
	return &domain.ServiceOrder{
		ID:          id,
		ClientID:    3,
		MachineryID: 4,
		Status:      domain.StatusOpen,
		OpenedAt:    time.Now().Add(-2 * time.Hour),
	}
}

func TestStart(t *testing.T) {
	principal := domain.Principal{UserID: 9, Role: "manager"}

	tests := []struct {
		name          string
		prepareMock   func(m mocks)
		expectedError error
	}{
		{
			name: "Unknown order",
			prepareMock: func(m mocks) {
				m.orderRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name: "Only open orders can be started",
			prepareMock: func(m mocks) {
				order := openOrder(42)
				order.Status = domain.StatusInProgress
				m.orderRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(order, nil)
			},
			expectedError: ErrInvalidTransition,
		},
		{
			name: "Open order moves to in_progress",
			prepareMock: func(m mocks) {
				m.orderRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(openOrder(42), nil)
				m.orderRepo.EXPECT().UpdateStatus(gomock.Any(), 42, domain.StatusInProgress).Return(nil)
				m.orderRepo.EXPECT().AssignedEmployeeIDs(gomock.Any(), 42).Return([]int{1}, nil)
				m.activity.EXPECT().Record(gomock.Any(), principal, "order_started", "service order #42")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			snapshot, err := service.Start(context.Background(), principal, 42)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, snapshot)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.StatusInProgress, snapshot.Status)
				assert.Equal(t, []int{1}, snapshot.AssignedEmployees)
			}
		})
	}
}

func TestComplete(t *testing.T) {
	principal := domain.Principal{UserID: 9, Role: "manager"}
	totalValue := decimal.NewFromFloat(2000)
	negative := decimal.NewFromFloat(-1)

	tests := []struct {
		name          string
		req           dto.CompleteOrderRequestDTO
		prepareMock   func(m mocks)
		check         func(t *testing.T, snapshot *dto.OrderSnapshotDTO)
		expectedError error
	}{
		{
			name:          "Rating above five rejected",
			req:           dto.CompleteOrderRequestDTO{SatisfactionRating: floatPtr(5.1)},
			prepareMock:   func(m mocks) {},
			expectedError: ErrInvalidRating,
		},
		{
			name:          "Negative total value rejected",
			req:           dto.CompleteOrderRequestDTO{TotalValue: &negative},
			prepareMock:   func(m mocks) {},
			expectedError: ErrInvalidTotalValue,
		},
		{
			name: "Unknown order",
			req:  dto.CompleteOrderRequestDTO{},
			prepareMock: func(m mocks) {
				m.orderRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name: "Completed order cannot be completed again",
			req:  dto.CompleteOrderRequestDTO{},
			prepareMock: func(m mocks) {
				order := openOrder(42)
				order.Status = domain.StatusCompleted
				m.orderRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(order, nil)
			},
			expectedError: ErrOrderClosed,
		},
		{
			name: "Cancelled order cannot be completed",
			req:  dto.CompleteOrderRequestDTO{},
			prepareMock: func(m mocks) {
				order := openOrder(42)
				order.Status = domain.StatusCancelled
				m.orderRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(order, nil)
			},
			expectedError: ErrOrderClosed,
		},
		{
			name: "Full completion books income and credits employees",
			req: dto.CompleteOrderRequestDTO{
				Description:        "replaced hydraulic pump",
				TotalValue:         &totalValue,
				SatisfactionRating: floatPtr(5),
			},
			prepareMock: func(m mocks) {
				order := openOrder(42)
				order.Status = domain.StatusInProgress
				m.orderRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(order, nil)
				m.orderRepo.EXPECT().MarkCompleted(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, updated *domain.ServiceOrder) error {
						assert.Equal(t, domain.StatusCompleted, updated.Status)
						assert.Equal(t, "replaced hydraulic pump", updated.Description)
						assert.NotNil(t, updated.ClosedDate)
						assert.True(t, updated.TotalValue.Equal(totalValue))
						return nil
					})
				m.financeRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, transaction *domain.FinancialTransaction) (*domain.FinancialTransaction, error) {
						assert.Equal(t, domain.TransactionIncome, transaction.Type)
						assert.True(t, transaction.Amount.Equal(totalValue))
						assert.Equal(t, "Service order #42 payment", transaction.Description)
						return transaction, nil
					})
				m.orderRepo.EXPECT().AssignedEmployeeIDs(gomock.Any(), 42).Return([]int{1, 2}, nil)
				m.gamification.EXPECT().ApplyServiceCompletion(gomock.Any(), 42, []int{1, 2}, floatPtr(5), false).Return(nil)
				m.activity.EXPECT().Record(gomock.Any(), principal, "order_completed", "service order #42")
			},
			check: func(t *testing.T, snapshot *dto.OrderSnapshotDTO) {
				assert.Equal(t, domain.StatusCompleted, snapshot.Status)
				assert.Equal(t, []int{1, 2}, snapshot.AssignedEmployees)
				assert.True(t, snapshot.TotalValue.Equal(totalValue))
			},
		},
		{
			name: "Zero value completion skips the income entry",
			req:  dto.CompleteOrderRequestDTO{Description: "warranty repair"},
			prepareMock: func(m mocks) {
				m.orderRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(openOrder(42), nil)
				m.orderRepo.EXPECT().MarkCompleted(gomock.Any(), gomock.Any()).Return(nil)
				m.orderRepo.EXPECT().AssignedEmployeeIDs(gomock.Any(), 42).Return([]int{1}, nil)
				m.gamification.EXPECT().ApplyServiceCompletion(gomock.Any(), 42, []int{1}, nil, false).Return(nil)
				m.activity.EXPECT().Record(gomock.Any(), principal, "order_completed", "service order #42")
			},
			check: func(t *testing.T, snapshot *dto.OrderSnapshotDTO) {
				assert.True(t, snapshot.TotalValue.IsZero())
			},
		},
		{
			name: "No assigned employees skips gamification",
			req:  dto.CompleteOrderRequestDTO{},
			prepareMock: func(m mocks) {
				m.orderRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(openOrder(42), nil)
				m.orderRepo.EXPECT().MarkCompleted(gomock.Any(), gomock.Any()).Return(nil)
				m.orderRepo.EXPECT().AssignedEmployeeIDs(gomock.Any(), 42).Return(nil, nil)
				m.activity.EXPECT().Record(gomock.Any(), principal, "order_completed", "service order #42")
			},
			check: func(t *testing.T, snapshot *dto.OrderSnapshotDTO) {
				assert.Empty(t, snapshot.AssignedEmployees)
			},
		},
		{
			name: "Gamification failure aborts the completion",
			req:  dto.CompleteOrderRequestDTO{},
			prepareMock: func(m mocks) {
				m.orderRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(openOrder(42), nil)
				m.orderRepo.EXPECT().MarkCompleted(gomock.Any(), gomock.Any()).Return(nil)
				m.orderRepo.EXPECT().AssignedEmployeeIDs(gomock.Any(), 42).Return([]int{1}, nil)
				m.gamification.EXPECT().ApplyServiceCompletion(gomock.Any(), 42, []int{1}, nil, false).
					Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			snapshot, err := service.Complete(context.Background(), principal, 42, tt.req)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, snapshot)
			} else {
				assert.NoError(t, err)
				if tt.check != nil {
					tt.check(t, snapshot)
				}
			}
		})
	}
}

func TestCompleteWithinEstimate(t *testing.T) {
	principal := domain.Principal{UserID: 9, Role: "manager"}
	service, m := NewMock(t)

	order := openOrder(42)
	hours := 8
	order.EstimatedHours = &hours

	m.orderRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(order, nil)
	m.orderRepo.EXPECT().MarkCompleted(gomock.Any(), gomock.Any()).Return(nil)
	m.orderRepo.EXPECT().AssignedEmployeeIDs(gomock.Any(), 42).Return([]int{1}, nil)
	m.gamification.EXPECT().ApplyServiceCompletion(gomock.Any(), 42, []int{1}, nil, true).Return(nil)
	m.activity.EXPECT().Record(gomock.Any(), principal, "order_completed", "service order #42")

	snapshot, err := service.Complete(context.Background(), principal, 42, dto.CompleteOrderRequestDTO{})
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, snapshot.Status)
}

func TestCancel(t *testing.T) {
	principal := domain.Principal{UserID: 9, Role: "admin"}

	tests := []struct {
		name          string
		prepareMock   func(m mocks)
		expectedError error
	}{
		{
			name: "Unknown order",
			prepareMock: func(m mocks) {
				m.orderRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name: "Closed order cannot be cancelled",
			prepareMock: func(m mocks) {
				order := openOrder(42)
				order.Status = domain.StatusCompleted
				m.orderRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(order, nil)
			},
			expectedError: ErrOrderClosed,
		},
		{
			name: "Cancellation has no financial or gamification side effects",
			prepareMock: func(m mocks) {
				m.orderRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(openOrder(42), nil)
				m.orderRepo.EXPECT().MarkCancelled(gomock.Any(), 42, gomock.Any()).Return(nil)
				m.orderRepo.EXPECT().AssignedEmployeeIDs(gomock.Any(), 42).Return([]int{1}, nil)
				m.activity.EXPECT().Record(gomock.Any(), principal, "order_cancelled", "service order #42")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			snapshot, err := service.Cancel(context.Background(), principal, 42)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, snapshot)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.StatusCancelled, snapshot.Status)
				assert.NotNil(t, snapshot.ClosedDate)
			}
		})
	}
}

func TestGetOrder(t *testing.T) {
	t.Run("Found with assignments", func(t *testing.T) {
		service, m := NewMock(t)
		m.orderRepo.EXPECT().FindByID(gomock.Any(), 42).Return(openOrder(42), nil)
		m.orderRepo.EXPECT().AssignedEmployeeIDs(gomock.Any(), 42).Return([]int{1, 2}, nil)

		snapshot, err := service.GetOrder(context.Background(), 42)
		assert.NoError(t, err)
		assert.Equal(t, 42, snapshot.ID)
		assert.Equal(t, []int{1, 2}, snapshot.AssignedEmployees)
	})

	t.Run("Not found", func(t *testing.T) {
		service, m := NewMock(t)
		m.orderRepo.EXPECT().FindByID(gomock.Any(), 42).Return(nil, nil)

		snapshot, err := service.GetOrder(context.Background(), 42)
		assert.ErrorIs(t, err, ErrOrderNotFound)
		assert.Nil(t, snapshot)
	})
}

func TestListOrders(t *testing.T) {
	t.Run("Unknown status rejected", func(t *testing.T) {
		service, _ := NewMock(t)

		snapshots, err := service.ListOrders(context.Background(), "archived")
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Nil(t, snapshots)
	})

	t.Run("Orders in the given state", func(t *testing.T) {
		service, m := NewMock(t)
		m.orderRepo.EXPECT().ListByStatus(gomock.Any(), domain.StatusOpen).Return([]domain.ServiceOrder{
			*openOrder(42),
			*openOrder(41),
		}, nil)

		snapshots, err := service.ListOrders(context.Background(), domain.StatusOpen)
		assert.NoError(t, err)
		assert.Len(t, snapshots, 2)
		assert.Equal(t, 42, snapshots[0].ID)
		assert.Equal(t, domain.StatusOpen, snapshots[1].Status)
	})
}

func TestGetStatusCounts(t *testing.T) {
	service, m := NewMock(t)
	expected := map[string]int{
		domain.StatusOpen:       2,
		domain.StatusInProgress: 1,
		domain.StatusCompleted:  5,
		domain.StatusCancelled:  0,
	}
	m.orderRepo.EXPECT().StatusCounts(gomock.Any()).Return(expected, nil)

	counts, err := service.GetStatusCounts(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, counts)
}
