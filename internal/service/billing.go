package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/restotrack/api/internal/database"
	"github.com/restotrack/api/internal/enum"
	"github.com/restotrack/api/internal/events"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// BillingStore defines the DB methods needed inside the billing transaction.
// Satisfied by *database.Queries.
type BillingStore interface {
	GetOrderForUpdate(ctx context.Context, id int64) (database.Order, error)
	GetMenuPriceByName(ctx context.Context, foodName string) (pgtype.Numeric, error)
	CreateBill(ctx context.Context, arg database.CreateBillParams) (database.Bill, error)
}

// NewBillingStore creates a BillingStore bound to a DBTX (typically a pgx.Tx).
type NewBillingStore func(db database.DBTX) BillingStore

// BillAmounts is the money breakdown of one bill.
type BillAmounts struct {
	FoodSubtotal decimal.Decimal
	Tax          decimal.Decimal
	Discount     decimal.Decimal
	FinalAmount  decimal.Decimal
}

// CalculateBill computes subtotal = quantity × unitPrice, tax = subtotal ×
// rate / 100 and final = subtotal + tax − discount, all without rounding.
// A discount larger than subtotal + tax yields a negative final amount.
func CalculateBill(quantity int32, unitPrice decimal.Decimal, taxRatePercent int32, discount decimal.Decimal) BillAmounts {
	subtotal := unitPrice.Mul(decimal.NewFromInt32(quantity))
	tax := subtotal.Mul(decimal.NewFromInt32(taxRatePercent)).Div(hundred)
	return BillAmounts{
		FoodSubtotal: subtotal,
		Tax:          tax,
		Discount:     discount,
		FinalAmount:  subtotal.Add(tax).Sub(discount),
	}
}

// GenerateBillRequest is the input for billing a Ready order.
type GenerateBillRequest struct {
	OrderID        int64
	TaxRatePercent int32
	Discount       decimal.Decimal
	PaymentMethod  string
	PaymentStatus  string
}

// GenerateBillResult is what GenerateBill produced.
type GenerateBillResult struct {
	Bill    database.Bill
	Order   database.Order
	Amounts BillAmounts
}

// BillingService turns Ready orders into bills.
type BillingService struct {
	pool     TxBeginner
	newStore NewBillingStore
	notifier events.Notifier
}

// BillingOption configures a BillingService.
type BillingOption func(*BillingService)

// WithBillingNotifier sets where bill events are sent.
func WithBillingNotifier(n events.Notifier) BillingOption {
	return func(s *BillingService) { s.notifier = n }
}

// NewBillingService creates a new BillingService.
func NewBillingService(pool TxBeginner, newStore NewBillingStore, opts ...BillingOption) *BillingService {
	s := &BillingService{
		pool:     pool,
		newStore: newStore,
		notifier: events.Nop{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateBill prices a Ready order and stores the bill. The order row is
// locked for the duration so its status cannot change underneath. The order
// itself is left as is; billing it again produces another bill.
func (s *BillingService) GenerateBill(ctx context.Context, req GenerateBillRequest) (*GenerateBillResult, error) {
	if err := validateBillRequest(req); err != nil {
		return nil, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)

	order, err := store.GetOrderForUpdate(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotBillable
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order.Status != database.OrderStatusReady {
		return nil, fmt.Errorf("%w: order %d is %s", ErrOrderNotBillable, order.ID, order.Status)
	}

	price, err := store.GetMenuPriceByName(ctx, order.FoodItem)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", ErrMenuItemNotFound, order.FoodItem)
		}
		return nil, fmt.Errorf("get menu price: %w", err)
	}

	amounts := CalculateBill(order.Quantity, database.DecimalFromNumeric(price), req.TaxRatePercent, req.Discount)

	bill, err := store.CreateBill(ctx, database.CreateBillParams{
		OrderID:       order.ID,
		FoodTotal:     database.NumericFromDecimal(amounts.FoodSubtotal),
		Tax:           database.NumericFromDecimal(amounts.Tax),
		Discount:      database.NumericFromDecimal(amounts.Discount),
		FinalAmount:   database.NumericFromDecimal(amounts.FinalAmount),
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		return nil, fmt.Errorf("create bill: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	log.Infof("bill %d for order %d: final %s", bill.ID, order.ID, amounts.FinalAmount.StringFixed(2))
	events.Emit(ctx, s.notifier, enum.EventBillGenerated, BillEvent{
		BillID:      bill.ID,
		OrderID:     order.ID,
		TableNo:     order.TableNo,
		FinalAmount: amounts.FinalAmount.StringFixed(2),
	})

	return &GenerateBillResult{Bill: bill, Order: order, Amounts: amounts}, nil
}

// BillEvent is the payload of bill.generated.
type BillEvent struct {
	BillID      int64  `json:"bill_id"`
	OrderID     int64  `json:"order_id"`
	TableNo     int32  `json:"table_no"`
	FinalAmount string `json:"final_amount"`
}

func validateBillRequest(req GenerateBillRequest) error {
	switch req.TaxRatePercent {
	case enum.TaxRateReduced, enum.TaxRateStandard:
	default:
		return ErrInvalidTaxRate
	}
	if req.Discount.IsNegative() {
		return ErrInvalidDiscount
	}
	switch req.PaymentMethod {
	case enum.PaymentMethodCash, enum.PaymentMethodCard, enum.PaymentMethodOnline:
	default:
		return ErrInvalidPaymentMethod
	}
	switch req.PaymentStatus {
	case enum.PaymentStatusPaid, enum.PaymentStatusUnpaid:
	default:
		return ErrInvalidPaymentStatus
	}
	return nil
}
