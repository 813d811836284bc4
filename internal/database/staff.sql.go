package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createStaff = `-- name: CreateStaff :one
INSERT INTO staff (name, role, cnic, phone, salary, shift, joining_date)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, name, role, cnic, phone, salary, shift, joining_date
`

type CreateStaffParams struct {
	Name        string         `json:"name"`
	Role        string         `json:"role"`
	Cnic        pgtype.Text    `json:"cnic"`
	Phone       string         `json:"phone"`
	Salary      pgtype.Numeric `json:"salary"`
	Shift       string         `json:"shift"`
	JoiningDate pgtype.Date    `json:"joining_date"`
}

func (q *Queries) CreateStaff(ctx context.Context, arg CreateStaffParams) (Staff, error) {
	row := q.db.QueryRow(ctx, createStaff,
		arg.Name,
		arg.Role,
		arg.Cnic,
		arg.Phone,
		arg.Salary,
		arg.Shift,
		arg.JoiningDate,
	)
	var i Staff
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Role,
		&i.Cnic,
		&i.Phone,
		&i.Salary,
		&i.Shift,
		&i.JoiningDate,
	)
	return i, err
}

const listStaff = `-- name: ListStaff :many
SELECT id, name, role, cnic, phone, salary, shift, joining_date
FROM staff
ORDER BY id
`

func (q *Queries) ListStaff(ctx context.Context) ([]Staff, error) {
	rows, err := q.db.Query(ctx, listStaff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Staff{}
	for rows.Next() {
		var i Staff
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Role,
			&i.Cnic,
			&i.Phone,
			&i.Salary,
			&i.Shift,
			&i.JoiningDate,
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

const listStaffByRole = `-- name: ListStaffByRole :many
SELECT id, name, role, cnic, phone, salary, shift, joining_date
FROM staff
WHERE role = $1
ORDER BY id
`

func (q *Queries) ListStaffByRole(ctx context.Context, role string) ([]Staff, error) {
	rows, err := q.db.Query(ctx, listStaffByRole, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Staff{}
	for rows.Next() {
		var i Staff
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Role,
			&i.Cnic,
			&i.Phone,
			&i.Salary,
			&i.Shift,
			&i.JoiningDate,
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
