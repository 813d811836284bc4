package service

import (
	"fmt"

	"github.com/restotrack/api/internal/database"
)

// TransitionPolicy decides whether an order may move from one status to another.
type TransitionPolicy interface {
	Allow(from, to database.OrderStatus) error
}

// PermissivePolicy lets kitchen staff correct a mis-click: any move among
// Pending, Cooking and Ready is allowed, backward ones included. Served is
// terminal.
type PermissivePolicy struct{}

func (PermissivePolicy) Allow(from, to database.OrderStatus) error {
	if from == database.OrderStatusServed {
		return ErrOrderServed
	}
	return nil
}

// ForwardOnlyPolicy only allows moves further along Pending → Cooking → Ready → Served.
// Steps may be skipped.
type ForwardOnlyPolicy struct{}

// forwardTransitions defines valid status transitions under ForwardOnlyPolicy.
// Key is current status, value is the set of statuses it can transition to.
var forwardTransitions = map[database.OrderStatus][]database.OrderStatus{
	database.OrderStatusPending: {database.OrderStatusCooking, database.OrderStatusReady, database.OrderStatusServed},
	database.OrderStatusCooking: {database.OrderStatusReady, database.OrderStatusServed},
	database.OrderStatusReady:   {database.OrderStatusServed},
}

func (ForwardOnlyPolicy) Allow(from, to database.OrderStatus) error {
	if from == database.OrderStatusServed {
		return ErrOrderServed
	}
	for _, s := range forwardTransitions[from] {
		if s == to {
			return nil
		}
	}
	return fmt.Errorf("%w: cannot transition from %s to %s", ErrTransitionDenied, from, to)
}

// PolicyFor returns ForwardOnlyPolicy when strict is set, PermissivePolicy otherwise.
func PolicyFor(strict bool) TransitionPolicy {
	if strict {
		return ForwardOnlyPolicy{}
	}
	return PermissivePolicy{}
}
