package combo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const comboColumns = `id, name, description, price, product_ids, image_url, active, created_at, updated_at`

func (r *postgresRepo) Create(ctx context.Context, c *Combo) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO combos (id, name, description, price, product_ids, image_url, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		c.ID, c.Name, c.Description, c.Price, pq.Array(c.ProductIDs), c.ImageURL, c.Active)
	return err
}

func scanCombo(scan func(...interface{}) error) (*Combo, error) {
	c := &Combo{}
	var products pq.StringArray
	err := scan(&c.ID, &c.Name, &c.Description, &c.Price, &products,
		&c.ImageURL, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.ProductIDs = []string(products)
	return c, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Combo, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+comboColumns+` FROM combos WHERE id=$1`, uid)
	return scanCombo(row.Scan)
}

func (r *postgresRepo) List(ctx context.Context, activeOnly bool) ([]*Combo, error) {
	query := `SELECT ` + comboColumns + ` FROM combos`
	if activeOnly {
		query += ` WHERE active=true`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var combos []*Combo
	for rows.Next() {
		c, err := scanCombo(rows.Scan)
		if err != nil {
			return nil, err
		}
		combos = append(combos, c)
	}
	return combos, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, c *Combo) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE combos SET
		  name=$2, description=$3, price=$4, product_ids=$5, image_url=$6,
		  active=$7, updated_at=now()
		WHERE id=$1`,
		c.ID, c.Name, c.Description, c.Price, pq.Array(c.ProductIDs), c.ImageURL, c.Active)
	return err
}

func (r *postgresRepo) SetActive(ctx context.Context, id string, active bool) (*Combo, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `
		UPDATE combos SET active=$2, updated_at=now()
		WHERE id=$1
		RETURNING `+comboColumns, uid, active)
	return scanCombo(row.Scan)
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `DELETE FROM combos WHERE id=$1`, uid)
	return err
}
