package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createFeedback = `-- name: CreateFeedback :one
INSERT INTO feedback (customer_name, rating, comments, date)
VALUES ($1, $2, $3, $4)
RETURNING id, customer_name, rating, comments, date
`

type CreateFeedbackParams struct {
	CustomerName pgtype.Text `json:"customer_name"`
	Rating       int32       `json:"rating"`
	Comments     string      `json:"comments"`
	Date         pgtype.Date `json:"date"`
}

func (q *Queries) CreateFeedback(ctx context.Context, arg CreateFeedbackParams) (Feedback, error) {
	row := q.db.QueryRow(ctx, createFeedback,
		arg.CustomerName,
		arg.Rating,
		arg.Comments,
		arg.Date,
	)
	var i Feedback
	err := row.Scan(
		&i.ID,
		&i.CustomerName,
		&i.Rating,
		&i.Comments,
		&i.Date,
	)
	return i, err
}

const listFeedback = `-- name: ListFeedback :many
SELECT id, customer_name, rating, comments, date
FROM feedback
ORDER BY id
`

func (q *Queries) ListFeedback(ctx context.Context) ([]Feedback, error) {
	rows, err := q.db.Query(ctx, listFeedback)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Feedback{}
	for rows.Next() {
		var i Feedback
		if err := rows.Scan(
			&i.ID,
			&i.CustomerName,
			&i.Rating,
			&i.Comments,
			&i.Date,
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
