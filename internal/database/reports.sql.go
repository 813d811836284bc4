package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const getDailyRevenue = `-- name: GetDailyRevenue :many
SELECT
    created_at::date AS sale_date,
    COUNT(*) AS bill_count,
    COALESCE(SUM(food_total), 0)::numeric AS total_food,
    COALESCE(SUM(tax), 0)::numeric AS total_tax,
    COALESCE(SUM(discount), 0)::numeric AS total_discount,
    COALESCE(SUM(final_amount), 0)::numeric AS net_revenue
FROM billing
WHERE created_at >= $1 AND created_at < $2
GROUP BY created_at::date
ORDER BY sale_date
`

type GetDailyRevenueParams struct {
	CreatedAt   time.Time `json:"created_at"`
	CreatedAt_2 time.Time `json:"created_at_2"`
}

type GetDailyRevenueRow struct {
	SaleDate      pgtype.Date    `json:"sale_date"`
	BillCount     int64          `json:"bill_count"`
	TotalFood     pgtype.Numeric `json:"total_food"`
	TotalTax      pgtype.Numeric `json:"total_tax"`
	TotalDiscount pgtype.Numeric `json:"total_discount"`
	NetRevenue    pgtype.Numeric `json:"net_revenue"`
}

func (q *Queries) GetDailyRevenue(ctx context.Context, arg GetDailyRevenueParams) ([]GetDailyRevenueRow, error) {
	rows, err := q.db.Query(ctx, getDailyRevenue, arg.CreatedAt, arg.CreatedAt_2)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []GetDailyRevenueRow{}
	for rows.Next() {
		var i GetDailyRevenueRow
		if err := rows.Scan(
			&i.SaleDate,
			&i.BillCount,
			&i.TotalFood,
			&i.TotalTax,
			&i.TotalDiscount,
			&i.NetRevenue,
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

const getPaymentSummary = `-- name: GetPaymentSummary :many
SELECT
    payment_method,
    payment_status,
    COUNT(*) AS bill_count,
    COALESCE(SUM(final_amount), 0)::numeric AS total_amount
FROM billing
WHERE created_at >= $1 AND created_at < $2
GROUP BY payment_method, payment_status
ORDER BY payment_method, payment_status
`

type GetPaymentSummaryParams struct {
	CreatedAt   time.Time `json:"created_at"`
	CreatedAt_2 time.Time `json:"created_at_2"`
}

type GetPaymentSummaryRow struct {
	PaymentMethod string         `json:"payment_method"`
	PaymentStatus string         `json:"payment_status"`
	BillCount     int64          `json:"bill_count"`
	TotalAmount   pgtype.Numeric `json:"total_amount"`
}

func (q *Queries) GetPaymentSummary(ctx context.Context, arg GetPaymentSummaryParams) ([]GetPaymentSummaryRow, error) {
	rows, err := q.db.Query(ctx, getPaymentSummary, arg.CreatedAt, arg.CreatedAt_2)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []GetPaymentSummaryRow{}
	for rows.Next() {
		var i GetPaymentSummaryRow
		if err := rows.Scan(
			&i.PaymentMethod,
			&i.PaymentStatus,
			&i.BillCount,
			&i.TotalAmount,
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

const getItemSales = `-- name: GetItemSales :many
SELECT
    o.food_item,
    COALESCE(SUM(o.quantity), 0)::bigint AS quantity_sold,
    COALESCE(SUM(b.food_total), 0)::numeric AS total_revenue
FROM billing b
JOIN orders o ON o.id = b.order_id
WHERE b.created_at >= $1 AND b.created_at < $2
GROUP BY o.food_item
ORDER BY total_revenue DESC, o.food_item
LIMIT $3
`

type GetItemSalesParams struct {
	CreatedAt   time.Time `json:"created_at"`
	CreatedAt_2 time.Time `json:"created_at_2"`
	Limit       int32     `json:"limit"`
}

type GetItemSalesRow struct {
	FoodItem     string         `json:"food_item"`
	QuantitySold int64          `json:"quantity_sold"`
	TotalRevenue pgtype.Numeric `json:"total_revenue"`
}

func (q *Queries) GetItemSales(ctx context.Context, arg GetItemSalesParams) ([]GetItemSalesRow, error) {
	rows, err := q.db.Query(ctx, getItemSales, arg.CreatedAt, arg.CreatedAt_2, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []GetItemSalesRow{}
	for rows.Next() {
		var i GetItemSalesRow
		if err := rows.Scan(&i.FoodItem, &i.QuantitySold, &i.TotalRevenue); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
