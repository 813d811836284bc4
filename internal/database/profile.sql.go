package database

import (
	"context"
)

const getRestaurantInfo = `-- name: GetRestaurantInfo :one
SELECT id, name, owner, phone, email, address, opening_time, closing_time, type_dinein, type_takeaway, type_delivery, updated_at
FROM restaurant_info
WHERE id = 1
`

func (q *Queries) GetRestaurantInfo(ctx context.Context) (RestaurantInfo, error) {
	row := q.db.QueryRow(ctx, getRestaurantInfo)
	var i RestaurantInfo
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Owner,
		&i.Phone,
		&i.Email,
		&i.Address,
		&i.OpeningTime,
		&i.ClosingTime,
		&i.TypeDinein,
		&i.TypeTakeaway,
		&i.TypeDelivery,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertRestaurantInfo = `-- name: UpsertRestaurantInfo :one
INSERT INTO restaurant_info (id, name, owner, phone, email, address, opening_time, closing_time, type_dinein, type_takeaway, type_delivery)
VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    owner = EXCLUDED.owner,
    phone = EXCLUDED.phone,
    email = EXCLUDED.email,
    address = EXCLUDED.address,
    opening_time = EXCLUDED.opening_time,
    closing_time = EXCLUDED.closing_time,
    type_dinein = EXCLUDED.type_dinein,
    type_takeaway = EXCLUDED.type_takeaway,
    type_delivery = EXCLUDED.type_delivery,
    updated_at = now()
RETURNING id, name, owner, phone, email, address, opening_time, closing_time, type_dinein, type_takeaway, type_delivery, updated_at
`

type UpsertRestaurantInfoParams struct {
	Name         string `json:"name"`
	Owner        string `json:"owner"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	OpeningTime  string `json:"opening_time"`
	ClosingTime  string `json:"closing_time"`
	TypeDinein   bool   `json:"type_dinein"`
	TypeTakeaway bool   `json:"type_takeaway"`
	TypeDelivery bool   `json:"type_delivery"`
}

func (q *Queries) UpsertRestaurantInfo(ctx context.Context, arg UpsertRestaurantInfoParams) (RestaurantInfo, error) {
	row := q.db.QueryRow(ctx, upsertRestaurantInfo,
		arg.Name,
		arg.Owner,
		arg.Phone,
		arg.Email,
		arg.Address,
		arg.OpeningTime,
		arg.ClosingTime,
		arg.TypeDinein,
		arg.TypeTakeaway,
		arg.TypeDelivery,
	)
	var i RestaurantInfo
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Owner,
		&i.Phone,
		&i.Email,
		&i.Address,
		&i.OpeningTime,
		&i.ClosingTime,
		&i.TypeDinein,
		&i.TypeTakeaway,
		&i.TypeDelivery,
		&i.UpdatedAt,
	)
	return i, err
}
