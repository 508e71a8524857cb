package offer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const offerColumns = `id, name, description, discount_percent, valid_from, valid_to,
	active, applicable_products, applicable_categories, created_at, updated_at`

func (r *postgresRepo) Create(ctx context.Context, o *Offer) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO offers
		  (id, name, description, discount_percent, valid_from, valid_to, active,
		   applicable_products, applicable_categories)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		o.ID, o.Name, o.Description, o.DiscountPercent, o.ValidFrom, o.ValidTo,
		o.Active, pq.Array(o.ApplicableProducts), pq.Array(o.ApplicableCategories))
	return err
}

func scanOffer(scan func(...interface{}) error) (*Offer, error) {
	o := &Offer{}
	var products, categories pq.StringArray
	err := scan(&o.ID, &o.Name, &o.Description, &o.DiscountPercent,
		&o.ValidFrom, &o.ValidTo, &o.Active, &products, &categories,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.ApplicableProducts = []string(products)
	o.ApplicableCategories = []string(categories)
	return o, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Offer, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx,
		`SELECT `+offerColumns+` FROM offers WHERE id=$1`, uid)
	return scanOffer(row.Scan)
}

func (r *postgresRepo) List(ctx context.Context, activeOnly bool) ([]*Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers`
	if activeOnly {
		query += ` WHERE active=true`
	}
	query += ` ORDER BY created_at DESC`
	return r.queryOffers(ctx, query)
}

func (r *postgresRepo) Search(ctx context.Context, term string, activeOnly bool) ([]*Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers
	          WHERE (name ILIKE $1 OR description ILIKE $1)`
	if activeOnly {
		query += ` AND active=true`
	}
	query += ` ORDER BY created_at DESC`
	return r.queryOffers(ctx, query, "%"+term+"%")
}

func (r *postgresRepo) queryOffers(ctx context.Context, query string, args ...interface{}) ([]*Offer, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []*Offer
	for rows.Next() {
		o, err := scanOffer(rows.Scan)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, o *Offer) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE offers SET
		  name=$2, description=$3, discount_percent=$4, valid_from=$5, valid_to=$6,
		  active=$7, applicable_products=$8, applicable_categories=$9, updated_at=now()
		WHERE id=$1`,
		o.ID, o.Name, o.Description, o.DiscountPercent, o.ValidFrom, o.ValidTo,
		o.Active, pq.Array(o.ApplicableProducts), pq.Array(o.ApplicableCategories))
	if err != nil {
		return err
	}
	return requireRow(res, o.ID.String())
}

func (r *postgresRepo) SetActive(ctx context.Context, id string, active bool) (*Offer, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `
		UPDATE offers SET active=$2, updated_at=now()
		WHERE id=$1
		RETURNING `+offerColumns, uid, active)
	return scanOffer(row.Scan)
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM offers WHERE id=$1`, uid)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("offer %s: %w", id, sql.ErrNoRows)
	}
	return nil
}
