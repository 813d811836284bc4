package service

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/op/go-logging"
	"github.com/restotrack/api/internal/database"
	"github.com/restotrack/api/internal/enum"
	"github.com/restotrack/api/internal/events"
)

var log = logging.MustGetLogger("service")

// TxBeginner starts a new database transaction.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// OrderStore defines the DB methods needed by the order lifecycle.
// Satisfied by *database.Queries.
type OrderStore interface {
	GetAvailableMenuItemByName(ctx context.Context, foodName string) (database.MenuItem, error)
	CreateOrder(ctx context.Context, arg database.CreateOrderParams) (database.Order, error)
	GetOrder(ctx context.Context, id int64) (database.Order, error)
	UpdateOrderStatus(ctx context.Context, arg database.UpdateOrderStatusParams) (database.Order, error)
	ListActiveOrders(ctx context.Context) ([]database.Order, error)
}

// CreateOrderRequest is the input for placing an order.
type CreateOrderRequest struct {
	TableNo    int32
	WaiterName string
	FoodItem   string
	Quantity   int32
}

// OrderEvent is the payload of order.created and order.status_changed.
type OrderEvent struct {
	Order          database.Order `json:"order"`
	PreviousStatus string         `json:"previous_status,omitempty"`
}

// OrderService moves orders through Pending → Cooking → Ready → Served.
// It keeps no state between calls; every operation reads and writes the store.
type OrderService struct {
	store    OrderStore
	policy   TransitionPolicy
	notifier events.Notifier
	now      func() time.Time
}

// OrderOption configures an OrderService.
type OrderOption func(*OrderService)

// WithTransitionPolicy replaces the default PermissivePolicy.
func WithTransitionPolicy(p TransitionPolicy) OrderOption {
	return func(s *OrderService) { s.policy = p }
}

// WithOrderNotifier sets where order events are sent.
func WithOrderNotifier(n events.Notifier) OrderOption {
	return func(s *OrderService) { s.notifier = n }
}

// WithClock overrides time.Now for order timestamps.
func WithClock(now func() time.Time) OrderOption {
	return func(s *OrderService) { s.now = now }
}

// NewOrderService creates a new OrderService.
func NewOrderService(store OrderStore, opts ...OrderOption) *OrderService {
	s := &OrderService{
		store:    store,
		policy:   PermissivePolicy{},
		notifier: events.Nop{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOrder validates the request and inserts a Pending order stamped with
// the current time. The waiter is not checked against the staff roster.
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (database.Order, error) {
	if req.TableNo < 1 {
		return database.Order{}, ErrInvalidTableNumber
	}
	if req.Quantity < 1 {
		return database.Order{}, ErrInvalidQuantity
	}
	if strings.TrimSpace(req.WaiterName) == "" {
		return database.Order{}, ErrWaiterRequired
	}
	if strings.TrimSpace(req.FoodItem) == "" {
		return database.Order{}, ErrFoodItemRequired
	}

	if _, err := s.store.GetAvailableMenuItemByName(ctx, req.FoodItem); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return database.Order{}, fmt.Errorf("%w: %q", ErrMenuItemUnavailable, req.FoodItem)
		}
		return database.Order{}, fmt.Errorf("get menu item: %w", err)
	}

	order, err := s.store.CreateOrder(ctx, database.CreateOrderParams{
		TableNo:    req.TableNo,
		WaiterName: req.WaiterName,
		FoodItem:   req.FoodItem,
		Quantity:   req.Quantity,
		OrderTime:  s.now(),
	})
	if err != nil {
		return database.Order{}, fmt.Errorf("create order: %w", err)
	}

	log.Infof("order %d created: table %d, %d x %s", order.ID, order.TableNo, order.Quantity, order.FoodItem)
	events.Emit(ctx, s.notifier, enum.EventOrderCreated, OrderEvent{Order: order})
	return order, nil
}

// AdvanceStatus sets the status of an order to target (Cooking, Ready or
// Served), subject to the configured TransitionPolicy. The write only
// succeeds if the status is still the one that was checked.
func (s *OrderService) AdvanceStatus(ctx context.Context, orderID int64, target string) (database.Order, error) {
	next := database.OrderStatus(target)
	if !isValidTargetStatus(next) {
		return database.Order{}, ErrInvalidTargetStatus
	}

	current, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return database.Order{}, ErrOrderNotFound
		}
		return database.Order{}, fmt.Errorf("get order: %w", err)
	}

	if err := s.policy.Allow(current.Status, next); err != nil {
		return database.Order{}, err
	}

	updated, err := s.store.UpdateOrderStatus(ctx, database.UpdateOrderStatusParams{
		ID:       orderID,
		Status:   next,
		Status_2: current.Status,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return database.Order{}, ErrStatusConflict
		}
		return database.Order{}, fmt.Errorf("update order status: %w", err)
	}

	log.Infof("order %d: %s -> %s", updated.ID, current.Status, updated.Status)
	events.Emit(ctx, s.notifier, enum.EventOrderStatusChanged, OrderEvent{
		Order:          updated,
		PreviousStatus: string(current.Status),
	})
	return updated, nil
}

// ListActiveOrders returns every order that is not Served, oldest first.
func (s *OrderService) ListActiveOrders(ctx context.Context) ([]database.Order, error) {
	orders, err := s.store.ListActiveOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active orders: %w", err)
	}
	return orders, nil
}

// ActiveOrders is the lazy form of ListActiveOrders. Nothing is read until
// the sequence is ranged over, and every range reads the store again.
func (s *OrderService) ActiveOrders(ctx context.Context) iter.Seq2[database.Order, error] {
	return func(yield func(database.Order, error) bool) {
		orders, err := s.ListActiveOrders(ctx)
		if err != nil {
			yield(database.Order{}, err)
			return
		}
		for _, o := range orders {
			if !yield(o, nil) {
				return
			}
		}
	}
}

func isValidTargetStatus(s database.OrderStatus) bool {
	switch s {
	case database.OrderStatusCooking,
		database.OrderStatusReady,
		database.OrderStatusServed:
		return true
	}
	return false
}
