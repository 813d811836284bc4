package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const createOrder = `-- name: CreateOrder :one
INSERT INTO orders (table_no, waiter_name, food_item, quantity, order_time, status)
VALUES ($1, $2, $3, $4, $5, 'Pending')
RETURNING id, table_no, waiter_name, food_item, quantity, order_time, status
`

type CreateOrderParams struct {
	TableNo    int32     `json:"table_no"`
	WaiterName string    `json:"waiter_name"`
	FoodItem   string    `json:"food_item"`
	Quantity   int32     `json:"quantity"`
	OrderTime  time.Time `json:"order_time"`
}

func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error) {
	row := q.db.QueryRow(ctx, createOrder,
		arg.TableNo,
		arg.WaiterName,
		arg.FoodItem,
		arg.Quantity,
		arg.OrderTime,
	)
	var i Order
	err := row.Scan(
		&i.ID,
		&i.TableNo,
		&i.WaiterName,
		&i.FoodItem,
		&i.Quantity,
		&i.OrderTime,
		&i.Status,
	)
	return i, err
}

const getOrder = `-- name: GetOrder :one
SELECT id, table_no, waiter_name, food_item, quantity, order_time, status
FROM orders
WHERE id = $1
`

func (q *Queries) GetOrder(ctx context.Context, id int64) (Order, error) {
	row := q.db.QueryRow(ctx, getOrder, id)
	var i Order
	err := row.Scan(
		&i.ID,
		&i.TableNo,
		&i.WaiterName,
		&i.FoodItem,
		&i.Quantity,
		&i.OrderTime,
		&i.Status,
	)
	return i, err
}

const getOrderForUpdate = `-- name: GetOrderForUpdate :one
SELECT id, table_no, waiter_name, food_item, quantity, order_time, status
FROM orders
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetOrderForUpdate(ctx context.Context, id int64) (Order, error) {
	row := q.db.QueryRow(ctx, getOrderForUpdate, id)
	var i Order
	err := row.Scan(
		&i.ID,
		&i.TableNo,
		&i.WaiterName,
		&i.FoodItem,
		&i.Quantity,
		&i.OrderTime,
		&i.Status,
	)
	return i, err
}

const listActiveOrders = `-- name: ListActiveOrders :many
SELECT id, table_no, waiter_name, food_item, quantity, order_time, status
FROM orders
WHERE status <> 'Served'
ORDER BY order_time, id
`

func (q *Queries) ListActiveOrders(ctx context.Context) ([]Order, error) {
	rows, err := q.db.Query(ctx, listActiveOrders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Order{}
	for rows.Next() {
		var i Order
		if err := rows.Scan(
			&i.ID,
			&i.TableNo,
			&i.WaiterName,
			&i.FoodItem,
			&i.Quantity,
			&i.OrderTime,
			&i.Status,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listOrders = `-- name: ListOrders :many
SELECT id, table_no, waiter_name, food_item, quantity, order_time, status
FROM orders
ORDER BY id
`

func (q *Queries) ListOrders(ctx context.Context) ([]Order, error) {
	rows, err := q.db.Query(ctx, listOrders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Order{}
	for rows.Next() {
		var i Order
		if err := rows.Scan(
			&i.ID,
			&i.TableNo,
			&i.WaiterName,
			&i.FoodItem,
			&i.Quantity,
			&i.OrderTime,
			&i.Status,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateOrderStatus = `-- name: UpdateOrderStatus :one
UPDATE orders
SET status = $2
WHERE id = $1 AND status = $3
RETURNING id, table_no, waiter_name, food_item, quantity, order_time, status
`

type UpdateOrderStatusParams struct {
	ID       int64       `json:"id"`
	Status   OrderStatus `json:"status"`
	Status_2 OrderStatus `json:"status_2"`
}

func (q *Queries) UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) (Order, error) {
	row := q.db.QueryRow(ctx, updateOrderStatus, arg.ID, arg.Status, arg.Status_2)
	var i Order
	err := row.Scan(
		&i.ID,
		&i.TableNo,
		&i.WaiterName,
		&i.FoodItem,
		&i.Quantity,
		&i.OrderTime,
		&i.Status,
	)
	return i, err
}

const listBillableOrders = `-- name: ListBillableOrders :many
SELECT o.id, o.table_no, o.waiter_name, o.food_item, o.quantity, o.order_time, m.price
FROM orders o
JOIN LATERAL (
    SELECT price FROM menu WHERE food_name = o.food_item ORDER BY id LIMIT 1
) m ON TRUE
WHERE o.status = 'Ready'
ORDER BY o.order_time, o.id
`

type ListBillableOrdersRow struct {
	ID         int64          `json:"id"`
	TableNo    int32          `json:"table_no"`
	WaiterName string         `json:"waiter_name"`
	FoodItem   string         `json:"food_item"`
	Quantity   int32          `json:"quantity"`
	OrderTime  time.Time      `json:"order_time"`
	Price      pgtype.Numeric `json:"price"`
}

func (q *Queries) ListBillableOrders(ctx context.Context) ([]ListBillableOrdersRow, error) {
	rows, err := q.db.Query(ctx, listBillableOrders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListBillableOrdersRow{}
	for rows.Next() {
		var i ListBillableOrdersRow
		if err := rows.Scan(
			&i.ID,
			&i.TableNo,
			&i.WaiterName,
			&i.FoodItem,
			&i.Quantity,
			&i.OrderTime,
			&i.Price,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
