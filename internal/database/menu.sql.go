package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createMenuItem = `-- name: CreateMenuItem :one
INSERT INTO menu (food_name, category, price, available, prep_time)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, food_name, category, price, available, prep_time
`

type CreateMenuItemParams struct {
	FoodName  string         `json:"food_name"`
	Category  string         `json:"category"`
	Price     pgtype.Numeric `json:"price"`
	Available bool           `json:"available"`
	PrepTime  int32          `json:"prep_time"`
}

func (q *Queries) CreateMenuItem(ctx context.Context, arg CreateMenuItemParams) (MenuItem, error) {
	row := q.db.QueryRow(ctx, createMenuItem,
		arg.FoodName,
		arg.Category,
		arg.Price,
		arg.Available,
		arg.PrepTime,
	)
	var i MenuItem
	err := row.Scan(
		&i.ID,
		&i.FoodName,
		&i.Category,
		&i.Price,
		&i.Available,
		&i.PrepTime,
	)
	return i, err
}

const getAvailableMenuItemByName = `-- name: GetAvailableMenuItemByName :one
SELECT id, food_name, category, price, available, prep_time
FROM menu
WHERE food_name = $1 AND available = TRUE
ORDER BY id
LIMIT 1
`

func (q *Queries) GetAvailableMenuItemByName(ctx context.Context, foodName string) (MenuItem, error) {
	row := q.db.QueryRow(ctx, getAvailableMenuItemByName, foodName)
	var i MenuItem
	err := row.Scan(
		&i.ID,
		&i.FoodName,
		&i.Category,
		&i.Price,
		&i.Available,
		&i.PrepTime,
	)
	return i, err
}

// Duplicate names resolve to the oldest row.
const getMenuPriceByName = `-- name: GetMenuPriceByName :one
SELECT price
FROM menu
WHERE food_name = $1
ORDER BY id
LIMIT 1
`

func (q *Queries) GetMenuPriceByName(ctx context.Context, foodName string) (pgtype.Numeric, error) {
	row := q.db.QueryRow(ctx, getMenuPriceByName, foodName)
	var price pgtype.Numeric
	err := row.Scan(&price)
	return price, err
}

const listAvailableMenuItems = `-- name: ListAvailableMenuItems :many
SELECT id, food_name, category, price, available, prep_time
FROM menu
WHERE available = TRUE
ORDER BY id
`

func (q *Queries) ListAvailableMenuItems(ctx context.Context) ([]MenuItem, error) {
	rows, err := q.db.Query(ctx, listAvailableMenuItems)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMenuItems(rows)
}

const listMenuItems = `-- name: ListMenuItems :many
SELECT id, food_name, category, price, available, prep_time
FROM menu
ORDER BY id
`

func (q *Queries) ListMenuItems(ctx context.Context) ([]MenuItem, error) {
	rows, err := q.db.Query(ctx, listMenuItems)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMenuItems(rows)
}

type menuRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanMenuItems(rows menuRows) ([]MenuItem, error) {
	items := []MenuItem{}
	for rows.Next() {
		var i MenuItem
		if err := rows.Scan(
			&i.ID,
			&i.FoodName,
			&i.Category,
			&i.Price,
			&i.Available,
			&i.PrepTime,
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
