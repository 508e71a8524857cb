package rating

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, rt *Rating) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO ratings (id, product_id, user_id, score, comment)
		VALUES ($1,$2,$3,$4,$5)`,
		rt.ID, rt.ProductID, rt.UserID, rt.Score, rt.Comment)
	return err
}

func (r *postgresRepo) ListByProduct(ctx context.Context, productID string) ([]*Rating, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, user_id, score, comment, created_at
		FROM ratings WHERE product_id=$1 ORDER BY created_at DESC`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []*Rating
	for rows.Next() {
		rt := &Rating{}
		err := rows.Scan(&rt.ID, &rt.ProductID, &rt.UserID, &rt.Score, &rt.Comment, &rt.CreatedAt)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, rt)
	}
	return ratings, rows.Err()
}

func (r *postgresRepo) Summarize(ctx context.Context, productID string) (*Summary, error) {
	s := &Summary{ProductID: productID}
	err := r.db.QueryRowContext(ctx, `
		SELECT count(*), coalesce(avg(score), 0)
		FROM ratings WHERE product_id=$1`, productID).Scan(&s.Count, &s.Average)
	if err != nil {
		return nil, err
	}
	return s, nil
}
