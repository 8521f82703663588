package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/automatamexico/Restaurante/internal/models"
	"github.com/automatamexico/Restaurante/internal/repositories"
	"github.com/automatamexico/Restaurante/pkg/rabbitmq"
)

// TicketPublisher publishes kitchen tickets. Satisfied by *rabbitmq.Client.
type TicketPublisher interface {
	PublishTicket(ticket rabbitmq.Ticket) error
}

// LineInput is one requested order line. The unit price is never taken from the
// client; it is captured from the menu at save time.
type LineInput struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
	Notes      string `json:"notes" validate:"omitempty,max=255"`
}

// OrderRequest is the payload for creating or editing an order.
type OrderRequest struct {
	TableID string      `json:"table_id" validate:"required"`
	Lines   []LineInput `json:"lines" validate:"required,min=1,dive"`
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	menuRepo  repositories.MenuItemRepository
	tableRepo repositories.TableRepository
	publisher TicketPublisher
}

// NewOrderService creates a new OrderService. publisher may be nil, in which
// case kitchen tickets are skipped (orders are still saved).
func NewOrderService(orderRepo repositories.OrderRepository, menuRepo repositories.MenuItemRepository, tableRepo repositories.TableRepository, publisher TicketPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
		tableRepo: tableRepo,
		publisher: publisher,
	}
}

// GetAllOrders retrieves all orders with their lines.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// KitchenOrders retrieves the orders the kitchen still has to act on, oldest
// first.
func (s *OrderService) KitchenOrders() ([]models.Order, error) {
	return s.orderRepo.GetByStatuses(models.KitchenStatuses)
}

// CreateOrder creates a new order for a table. New orders start in "preparing"
// and a full kitchen ticket is published. staffID is the acting waiter's user
// ID, passed explicitly by the handler; waiter is their display name for the
// ticket.
func (s *OrderService) CreateOrder(req OrderRequest, staffID, waiter string) (*models.Order, error) {
	table, err := s.tableRepo.GetByID(req.TableID)
	if err != nil {
		return nil, err
	}

	lines, names, err := s.buildLines(req.Lines)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		TableID:     req.TableID,
		UserID:      staffID,
		Lines:       lines,
		TotalAmount: OrderTotal(lines),
		Status:      models.StatusPreparing,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publish(rabbitmq.Ticket{
		Kind:      rabbitmq.TicketNewOrder,
		OrderID:   order.ID,
		TableName: table.Name,
		Waiter:    waiter,
		Lines:     ticketLines(order.Lines, names),
		Total:     order.TotalAmount,
		CreatedAt: order.CreatedAt,
	})

	return order, nil
}

// UpdateOrder replaces the full line set of an existing order and recomputes
// its total. Only the newly added quantities, if any, are announced to the
// kitchen; removed and unchanged lines travel silently with the replacement.
func (s *OrderService) UpdateOrder(id string, req OrderRequest, staffID string) (*models.Order, error) {
	existing, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if models.IsTerminalStatus(existing.Status) {
		return nil, fmt.Errorf("%w: order %s is %s", ErrOrderClosed, id, existing.Status)
	}

	table, err := s.tableRepo.GetByID(req.TableID)
	if err != nil {
		return nil, err
	}

	lines, names, err := s.buildLines(req.Lines)
	if err != nil {
		return nil, err
	}

	prevSnapshot := LineSnapshot(existing.Lines)

	updated := &models.Order{
		ID:          existing.ID,
		TableID:     req.TableID,
		UserID:      existing.UserID,
		Lines:       lines,
		TotalAmount: OrderTotal(lines),
		Status:      existing.Status,
		CreatedAt:   existing.CreatedAt,
	}
	if staffID != "" {
		updated.UserID = staffID
	}

	if err := s.orderRepo.ReplaceLines(updated); err != nil {
		return nil, err
	}

	added := AddedQuantities(prevSnapshot, LineSnapshot(lines))
	if len(added) > 0 {
		ticket := rabbitmq.Ticket{
			Kind:      rabbitmq.TicketItemsAdded,
			OrderID:   updated.ID,
			TableName: table.Name,
			Total:     updated.TotalAmount,
			CreatedAt: time.Now(),
		}
		for key, qty := range added {
			ticket.Lines = append(ticket.Lines, rabbitmq.TicketLine{
				MenuItem: names[key.MenuItemID],
				Quantity: qty,
				Notes:    key.Note,
			})
		}
		s.publish(ticket)
	}

	return updated, nil
}

// UpdateOrderStatus moves an order through its lifecycle from a staff action.
// "paid" is never accepted here; it is assigned by settlement only.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	if !models.IsValidStatus(status) {
		return fmt.Errorf("invalid order status: %s", status)
	}
	if status == models.StatusPaid {
		return fmt.Errorf("%w: status %q is assigned by settlement, not by request", ErrInvalidTransition, status)
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if !models.CanTransition(order.Status, status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}
	return nil
}

// DeleteOrder deletes an order and its lines.
func (s *OrderService) DeleteOrder(id string) error {
	return s.orderRepo.Delete(id)
}

// buildLines validates requested lines and captures the current menu price into
// each one. It also returns menu item names by ID for ticket building.
func (s *OrderService) buildLines(inputs []LineInput) ([]models.OrderLine, map[string]string, error) {
	if len(inputs) == 0 {
		return nil, nil, ErrEmptyOrder
	}

	lines := make([]models.OrderLine, 0, len(inputs))
	names := make(map[string]string, len(inputs))
	for _, in := range inputs {
		if in.Quantity <= 0 {
			return nil, nil, fmt.Errorf("%w: got %d", ErrInvalidQuantity, in.Quantity)
		}
		item, err := s.menuRepo.GetByID(in.MenuItemID)
		if err != nil {
			return nil, nil, err
		}
		if !item.IsAvailable {
			return nil, nil, fmt.Errorf("menu item %s is not available", item.Name)
		}
		names[item.ID] = item.Name
		lines = append(lines, models.OrderLine{
			MenuItemID: item.ID,
			Quantity:   in.Quantity,
			Price:      item.Price,
			Notes:      strings.TrimSpace(in.Notes),
		})
	}
	return lines, names, nil
}

func (s *OrderService) publish(ticket rabbitmq.Ticket) {
	if s.publisher == nil {
		log.Println("Kitchen ticket publisher is not initialized. Skipping ticket.")
		return
	}
	if err := s.publisher.PublishTicket(ticket); err != nil {
		log.Printf("Warning: Failed to publish kitchen ticket for order %s: %v", ticket.OrderID, err)
	}
}

func ticketLines(lines []models.OrderLine, names map[string]string) []rabbitmq.TicketLine {
	out := make([]rabbitmq.TicketLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, rabbitmq.TicketLine{
			MenuItem: names[line.MenuItemID],
			Quantity: line.Quantity,
			Notes:    line.Notes,
		})
	}
	return out
}
