package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createBill = `-- name: CreateBill :one
INSERT INTO billing (order_id, food_total, tax, discount, final_amount, payment_method, payment_status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, order_id, food_total, tax, discount, final_amount, payment_method, payment_status, created_at
`

type CreateBillParams struct {
	OrderID       int64          `json:"order_id"`
	FoodTotal     pgtype.Numeric `json:"food_total"`
	Tax           pgtype.Numeric `json:"tax"`
	Discount      pgtype.Numeric `json:"discount"`
	FinalAmount   pgtype.Numeric `json:"final_amount"`
	PaymentMethod string         `json:"payment_method"`
	PaymentStatus string         `json:"payment_status"`
}

func (q *Queries) CreateBill(ctx context.Context, arg CreateBillParams) (Bill, error) {
	row := q.db.QueryRow(ctx, createBill,
		arg.OrderID,
		arg.FoodTotal,
		arg.Tax,
		arg.Discount,
		arg.FinalAmount,
		arg.PaymentMethod,
		arg.PaymentStatus,
	)
	var i Bill
	err := row.Scan(
		&i.ID,
		&i.OrderID,
		&i.FoodTotal,
		&i.Tax,
		&i.Discount,
		&i.FinalAmount,
		&i.PaymentMethod,
		&i.PaymentStatus,
		&i.CreatedAt,
	)
	return i, err
}

const listBills = `-- name: ListBills :many
SELECT id, order_id, food_total, tax, discount, final_amount, payment_method, payment_status, created_at
FROM billing
ORDER BY id
`

func (q *Queries) ListBills(ctx context.Context) ([]Bill, error) {
	rows, err := q.db.Query(ctx, listBills)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Bill{}
	for rows.Next() {
		var i Bill
		if err := rows.Scan(
			&i.ID,
			&i.OrderID,
			&i.FoodTotal,
			&i.Tax,
			&i.Discount,
			&i.FinalAmount,
			&i.PaymentMethod,
			&i.PaymentStatus,
			&i.CreatedAt,
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

const listBillsByOrder = `-- name: ListBillsByOrder :many
SELECT id, order_id, food_total, tax, discount, final_amount, payment_method, payment_status, created_at
FROM billing
WHERE order_id = $1
ORDER BY id
`

func (q *Queries) ListBillsByOrder(ctx context.Context, orderID int64) ([]Bill, error) {
	rows, err := q.db.Query(ctx, listBillsByOrder, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Bill{}
	for rows.Next() {
		var i Bill
		if err := rows.Scan(
			&i.ID,
			&i.OrderID,
			&i.FoodTotal,
			&i.Tax,
			&i.Discount,
			&i.FinalAmount,
			&i.PaymentMethod,
			&i.PaymentStatus,
			&i.CreatedAt,
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
