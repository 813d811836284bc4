package enum

// ── Group A: State machines (CHECK constrained in DB) ──

const (
	OrderStatusPending = "Pending"
	OrderStatusCooking = "Cooking"
	OrderStatusReady   = "Ready"
	OrderStatusServed  = "Served"
)

const (
	PaymentStatusPaid   = "Paid"
	PaymentStatusUnpaid = "Unpaid"
)

// ── Group B: Closed choices of the forms (CHECK constrained in DB) ──

const (
	StaffRoleWaiter       = "Waiter"
	StaffRoleChef         = "Chef"
	StaffRoleKitchenStaff = "Kitchen Staff"
	StaffRoleCashier      = "Cashier"
)

const (
	ShiftMorning = "Morning"
	ShiftEvening = "Evening"
)

const (
	CategoryFastFood = "Fast Food"
	CategoryBBQ      = "BBQ"
	CategoryDrinks   = "Drinks"
	CategoryDessert  = "Dessert"
)

const (
	PaymentMethodCash   = "Cash"
	PaymentMethodCard   = "Card"
	PaymentMethodOnline = "Online"
)

// ── Group C: Billing constants (no DB constraint) ──

const (
	TaxRateReduced  int32 = 5
	TaxRateStandard int32 = 10
)

// Placeholders offered to the order form when nothing can be selected.
const (
	PlaceholderNoItems   = "No items available"
	PlaceholderNoWaiters = "No waiters"
)

// ── Group D: Event types pushed to kitchen screens and the broker ──

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventBillGenerated      = "bill.generated"
)
