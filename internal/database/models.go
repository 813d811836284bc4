package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "Pending"
	OrderStatusCooking OrderStatus = "Cooking"
	OrderStatusReady   OrderStatus = "Ready"
	OrderStatusServed  OrderStatus = "Served"
)

type Bill struct {
	ID            int64          `json:"id"`
	OrderID       int64          `json:"order_id"`
	FoodTotal     pgtype.Numeric `json:"food_total"`
	Tax           pgtype.Numeric `json:"tax"`
	Discount      pgtype.Numeric `json:"discount"`
	FinalAmount   pgtype.Numeric `json:"final_amount"`
	PaymentMethod string         `json:"payment_method"`
	PaymentStatus string         `json:"payment_status"`
	CreatedAt     time.Time      `json:"created_at"`
}

type Feedback struct {
	ID           int64       `json:"id"`
	CustomerName pgtype.Text `json:"customer_name"`
	Rating       int32       `json:"rating"`
	Comments     string      `json:"comments"`
	Date         pgtype.Date `json:"date"`
}

type MenuItem struct {
	ID        int64          `json:"id"`
	FoodName  string         `json:"food_name"`
	Category  string         `json:"category"`
	Price     pgtype.Numeric `json:"price"`
	Available bool           `json:"available"`
	PrepTime  int32          `json:"prep_time"`
}

type Order struct {
	ID         int64       `json:"id"`
	TableNo    int32       `json:"table_no"`
	WaiterName string      `json:"waiter_name"`
	FoodItem   string      `json:"food_item"`
	Quantity   int32       `json:"quantity"`
	OrderTime  time.Time   `json:"order_time"`
	Status     OrderStatus `json:"status"`
}

type RestaurantInfo struct {
	ID           int32     `json:"id"`
	Name         string    `json:"name"`
	Owner        string    `json:"owner"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	OpeningTime  string    `json:"opening_time"`
	ClosingTime  string    `json:"closing_time"`
	TypeDinein   bool      `json:"type_dinein"`
	TypeTakeaway bool      `json:"type_takeaway"`
	TypeDelivery bool      `json:"type_delivery"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Staff struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Role        string         `json:"role"`
	Cnic        pgtype.Text    `json:"cnic"`
	Phone       string         `json:"phone"`
	Salary      pgtype.Numeric `json:"salary"`
	Shift       string         `json:"shift"`
	JoiningDate pgtype.Date    `json:"joining_date"`
}
