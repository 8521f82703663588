package services

import (
	"fmt"
	"time"

	"github.com/automatamexico/Restaurante/internal/models"
	"github.com/automatamexico/Restaurante/internal/repositories"
)

// DashboardStats are the cards on the dashboard.
type DashboardStats struct {
	PendingOrders  int64          `json:"pending_orders"`
	OccupiedTables int64          `json:"occupied_tables"`
	TodaySales     float64        `json:"today_sales"`
	LowStockItems  int            `json:"low_stock_items"`
	RecentOrders   []models.Order `json:"recent_orders"`
}

// DashboardService aggregates stats across the other aggregates.
type DashboardService struct {
	orderRepo     repositories.OrderRepository
	tableRepo     repositories.TableRepository
	paymentRepo   repositories.PaymentRepository
	inventoryRepo repositories.InventoryRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(orderRepo repositories.OrderRepository, tableRepo repositories.TableRepository, paymentRepo repositories.PaymentRepository, inventoryRepo repositories.InventoryRepository) *DashboardService {
	return &DashboardService{
		orderRepo:     orderRepo,
		tableRepo:     tableRepo,
		paymentRepo:   paymentRepo,
		inventoryRepo: inventoryRepo,
	}
}

// Overview computes the dashboard: pending order count, occupied table count,
// today's sales (payments recorded since local midnight), low-stock item count
// and the five most recent orders.
func (s *DashboardService) Overview() (*DashboardStats, error) {
	pending, err := s.orderRepo.CountByStatus(models.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending orders: %w", err)
	}

	occupied, err := s.tableRepo.CountByStatus(models.TableOccupied)
	if err != nil {
		return nil, fmt.Errorf("failed to count occupied tables: %w", err)
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	sales, err := s.paymentRepo.SumSince(midnight)
	if err != nil {
		return nil, fmt.Errorf("failed to sum today's sales: %w", err)
	}

	inventory, err := s.inventoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	lowStock := 0
	for _, item := range inventory {
		if item.LowStock() {
			lowStock++
		}
	}

	recent, err := s.orderRepo.GetRecent(5)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent orders: %w", err)
	}

	return &DashboardStats{
		PendingOrders:  pending,
		OccupiedTables: occupied,
		TodaySales:     Round2(sales),
		LowStockItems:  lowStock,
		RecentOrders:   recent,
	}, nil
}
