package service

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by the services either wraps one of
// these or is a store failure passed through with context.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// Validation errors: nothing is written when one of these is returned.
var (
	ErrInvalidTableNumber   = fmt.Errorf("%w: table_no must be >= 1", ErrValidation)
	ErrInvalidQuantity      = fmt.Errorf("%w: quantity must be >= 1", ErrValidation)
	ErrWaiterRequired       = fmt.Errorf("%w: waiter_name is required", ErrValidation)
	ErrFoodItemRequired     = fmt.Errorf("%w: food_item is required", ErrValidation)
	ErrMenuItemUnavailable  = fmt.Errorf("%w: food_item is not an available menu item", ErrValidation)
	ErrInvalidTargetStatus  = fmt.Errorf("%w: status must be Cooking, Ready or Served", ErrValidation)
	ErrInvalidTaxRate       = fmt.Errorf("%w: tax_rate must be 5 or 10", ErrValidation)
	ErrInvalidDiscount      = fmt.Errorf("%w: discount must be >= 0", ErrValidation)
	ErrInvalidPaymentMethod = fmt.Errorf("%w: payment_method must be Cash, Card or Online", ErrValidation)
	ErrInvalidPaymentStatus = fmt.Errorf("%w: payment_status must be Paid or Unpaid", ErrValidation)
)

// Not-found errors.
var (
	ErrOrderNotFound    = fmt.Errorf("%w: order not found", ErrNotFound)
	ErrOrderNotBillable = fmt.Errorf("%w: no ready order with this id", ErrNotFound)
	ErrMenuItemNotFound = fmt.Errorf("%w: menu item not found", ErrNotFound)
)

// Conflict errors.
var (
	ErrOrderServed      = fmt.Errorf("%w: order is already served", ErrConflict)
	ErrTransitionDenied = fmt.Errorf("%w: status transition not allowed", ErrConflict)
	ErrStatusConflict   = fmt.Errorf("%w: order status changed, please retry", ErrConflict)
)

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsNotFound reports whether err refers to a missing order or menu item.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict reports whether err is a rejected or raced status change.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }
