package orderservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/samape/samape/internal/domain"
	"github.com/samape/samape/internal/dto"
	"github.com/samape/samape/internal/pg"
)

type OrderRepo interface {
	FindByID(ctx context.Context, orderID int) (*domain.ServiceOrder, error)
	FindByIDForUpdate(ctx context.Context, orderID int) (*domain.ServiceOrder, error)
	ListByStatus(ctx context.Context, status string) ([]domain.ServiceOrder, error)
	AssignedEmployeeIDs(ctx context.Context, orderID int) ([]int, error)
	UpdateStatus(ctx context.Context, orderID int, status string) error
	MarkCompleted(ctx context.Context, order *domain.ServiceOrder) error
	MarkCancelled(ctx context.Context, orderID int, closedDate time.Time) error
	StatusCounts(ctx context.Context) (map[string]int, error)
}

type FinanceRepo interface {
	CreateTransaction(ctx context.Context, transaction *domain.FinancialTransaction) (*domain.FinancialTransaction, error)
}

type Gamification interface {
	ApplyServiceCompletion(ctx context.Context, orderID int, employeeIDs []int, satisfactionRating *float64, withinEstimate bool) error
}

type ActivityLog interface {
	Record(ctx context.Context, principal domain.Principal, action, details string)
}

type Service struct {
	orderRepo    OrderRepo
	financeRepo  FinanceRepo
	gamification Gamification
	activity     ActivityLog
	txManager    pg.TXManager
}

func New(orderRepo OrderRepo, financeRepo FinanceRepo, gamification Gamification, activity ActivityLog, txManager pg.TXManager) *Service {
	return &Service{
		orderRepo:    orderRepo,
		financeRepo:  financeRepo,
		gamification: gamification,
		activity:     activity,
		txManager:    txManager,
	}
}

var (
	ErrOrderNotFound     = errors.New("service order not found")
	ErrOrderClosed       = errors.New("service order already closed")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidStatus     = errors.New("unknown order status")
	ErrInvalidRating     = errors.New("satisfaction rating must be between 0 and 5")
	ErrInvalidTotalValue = errors.New("total value must not be negative")
)

// Start moves an open order to in_progress. A pure status change with no
// side effects.
func (s *Service) Start(ctx context.Context, principal domain.Principal, orderID int) (*dto.OrderSnapshotDTO, error) {
	var snapshot *dto.OrderSnapshotDTO
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if order.Status != domain.StatusOpen {
			return ErrInvalidTransition
		}
		if err := s.orderRepo.UpdateStatus(ctx, orderID, domain.StatusInProgress); err != nil {
			return err
		}
		order.Status = domain.StatusInProgress
		snapshot, err = s.snapshot(ctx, order)
		return err
	})
	if err != nil {
		zap.L().Error("can't start service order", zap.Int("order_id", orderID), zap.Error(err))
		return nil, err
	}

	s.activity.Record(ctx, principal, "order_started", fmt.Sprintf("service order #%d", orderID))
	return snapshot, nil
}

// Complete drives the terminal transition and all of its side effects in one
// transaction: the order row, the income ledger entry and the gamification
// updates either all commit or none do.
func (s *Service) Complete(ctx context.Context, principal domain.Principal, orderID int, req dto.CompleteOrderRequestDTO) (*dto.OrderSnapshotDTO, error) {
	if req.SatisfactionRating != nil && (*req.SatisfactionRating < 0 || *req.SatisfactionRating > 5) {
		return nil, ErrInvalidRating
	}
	if req.TotalValue != nil && req.TotalValue.IsNegative() {
		return nil, ErrInvalidTotalValue
	}

	var snapshot *dto.OrderSnapshotDTO
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if order.Status == domain.StatusCompleted || order.Status == domain.StatusCancelled {
			return ErrOrderClosed
		}

		closedDate := time.Now()
		totalValue := decimal.Zero
		if req.TotalValue != nil {
			totalValue = *req.TotalValue
		}

		order.Status = domain.StatusCompleted
		order.Description = req.Description
		order.ClosedDate = &closedDate
		order.TotalValue = &totalValue
		order.SatisfactionRating = req.SatisfactionRating

		if err := s.orderRepo.MarkCompleted(ctx, order); err != nil {
			return err
		}

		if totalValue.IsPositive() {
			_, err := s.financeRepo.CreateTransaction(ctx, &domain.FinancialTransaction{
				Type:        domain.TransactionIncome,
				Amount:      totalValue,
				Description: fmt.Sprintf("Service order #%d payment", orderID),
				Date:        closedDate,
			})
			if err != nil {
				return err
			}
		}

		employeeIDs, err := s.orderRepo.AssignedEmployeeIDs(ctx, orderID)
		if err != nil {
			return err
		}
		if len(employeeIDs) > 0 {
			withinEstimate := finishedWithinEstimate(order, closedDate)
			if err := s.gamification.ApplyServiceCompletion(ctx, orderID, employeeIDs, order.SatisfactionRating, withinEstimate); err != nil {
				return err
			}
		}

		snapshot = orderSnapshot(order, employeeIDs)
		return nil
	})
	if err != nil {
		zap.L().Error("can't complete service order", zap.Int("order_id", orderID), zap.Error(err))
		return nil, err
	}

	s.activity.Record(ctx, principal, "order_completed", fmt.Sprintf("service order #%d", orderID))
	return snapshot, nil
}

// Cancel closes an order without financial or gamification side effects.
// Allowed only from open or in_progress.
func (s *Service) Cancel(ctx context.Context, principal domain.Principal, orderID int) (*dto.OrderSnapshotDTO, error) {
	var snapshot *dto.OrderSnapshotDTO
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if order.Status == domain.StatusCompleted || order.Status == domain.StatusCancelled {
			return ErrOrderClosed
		}

		closedDate := time.Now()
		if err := s.orderRepo.MarkCancelled(ctx, orderID, closedDate); err != nil {
			return err
		}
		order.Status = domain.StatusCancelled
		order.ClosedDate = &closedDate
		snapshot, err = s.snapshot(ctx, order)
		return err
	})
	if err != nil {
		zap.L().Error("can't cancel service order", zap.Int("order_id", orderID), zap.Error(err))
		return nil, err
	}

	s.activity.Record(ctx, principal, "order_cancelled", fmt.Sprintf("service order #%d", orderID))
	return snapshot, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID int) (*dto.OrderSnapshotDTO, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		zap.L().Error("can't get service order", zap.Int("order_id", orderID), zap.Error(err))
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return s.snapshot(ctx, order)
}

// ListOrders returns every order in the given lifecycle state, newest first.
// Assignments are not expanded in list view.
func (s *Service) ListOrders(ctx context.Context, status string) ([]dto.OrderSnapshotDTO, error) {
	switch status {
	case domain.StatusOpen, domain.StatusInProgress, domain.StatusCompleted, domain.StatusCancelled:
	default:
		return nil, ErrInvalidStatus
	}
	orders, err := s.orderRepo.ListByStatus(ctx, status)
	if err != nil {
		zap.L().Error("can't list service orders", zap.String("status", status), zap.Error(err))
		return nil, err
	}
	snapshots := make([]dto.OrderSnapshotDTO, 0, len(orders))
	for i := range orders {
		snapshots = append(snapshots, *orderSnapshot(&orders[i], nil))
	}
	return snapshots, nil
}

func (s *Service) GetStatusCounts(ctx context.Context) (map[string]int, error) {
	counts, err := s.orderRepo.StatusCounts(ctx)
	if err != nil {
		zap.L().Error("can't get order status counts", zap.Error(err))
		return nil, err
	}
	return counts, nil
}

func (s *Service) snapshot(ctx context.Context, order *domain.ServiceOrder) (*dto.OrderSnapshotDTO, error) {
	employeeIDs, err := s.orderRepo.AssignedEmployeeIDs(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return orderSnapshot(order, employeeIDs), nil
}

func orderSnapshot(order *domain.ServiceOrder, employeeIDs []int) *dto.OrderSnapshotDTO {
	return &dto.OrderSnapshotDTO{
		ID:                 order.ID,
		ClientID:           order.ClientID,
		MachineryID:        order.MachineryID,
		Description:        order.Description,
		Status:             order.Status,
		EstimatedHours:     order.EstimatedHours,
		SatisfactionRating: order.SatisfactionRating,
		TotalValue:         order.TotalValue,
		OpenedAt:           order.OpenedAt,
		ClosedDate:         order.ClosedDate,
		AssignedEmployees:  employeeIDs,
	}
}

func finishedWithinEstimate(order *domain.ServiceOrder, closedDate time.Time) bool {
	if order.EstimatedHours == nil {
		return false
	}
	target := time.Duration(*order.EstimatedHours) * time.Hour
	return closedDate.Sub(order.OpenedAt) <= target
}
