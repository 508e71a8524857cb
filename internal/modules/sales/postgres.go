package sales

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// CreateSale inserts the sale and all its items inside a single transaction.
func (r *postgresRepo) CreateSale(ctx context.Context, s *Sale) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sales
		  (id, customer_id, sale_number, channel, subtotal, discount, total, currency, offer_ids, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		s.ID, s.CustomerID, s.SaleNumber, s.Channel,
		s.Subtotal, s.Discount, s.Total, s.Currency, pq.Array(s.OfferIDs), s.Notes)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}

	for _, item := range s.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO sale_items
			  (id, sale_id, product_id, product_name, quantity, unit_price, line_total)
			VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			item.ID, s.ID, item.ProductID, item.ProductName,
			item.Quantity, item.UnitPrice, item.LineTotal)
		if err != nil {
			return fmt.Errorf("insert sale_item: %w", err)
		}
	}

	return tx.Commit()
}

const saleColumns = `id, customer_id, sale_number, channel, subtotal, discount, total, currency, offer_ids, notes, created_at`

func scanSale(scan func(...interface{}) error) (*Sale, error) {
	s := &Sale{}
	var customerID sql.NullString
	var offerIDs pq.StringArray
	err := scan(&s.ID, &customerID, &s.SaleNumber, &s.Channel,
		&s.Subtotal, &s.Discount, &s.Total, &s.Currency, &offerIDs, &s.Notes, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	if customerID.Valid {
		id, err := uuid.Parse(customerID.String)
		if err != nil {
			return nil, err
		}
		s.CustomerID = &id
	}
	s.OfferIDs = []string(offerIDs)
	return s, nil
}

func (r *postgresRepo) GetSaleByID(ctx context.Context, id string) (*Sale, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	s, err := scanSale(r.db.QueryRowContext(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE id=$1`, uid).Scan)
	if err != nil {
		return nil, err
	}
	s.Items, err = r.listItems(ctx, s.ID)
	return s, err
}

func (r *postgresRepo) ListSales(ctx context.Context, from, to time.Time) ([]*Sale, error) {
	return r.querySales(ctx, `
		SELECT `+saleColumns+` FROM sales
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at DESC`, from, to)
}

func (r *postgresRepo) ListSalesByCustomer(ctx context.Context, customerID string) ([]*Sale, error) {
	uid, err := uuid.Parse(customerID)
	if err != nil {
		return nil, err
	}
	return r.querySales(ctx, `
		SELECT `+saleColumns+` FROM sales
		WHERE customer_id=$1 ORDER BY created_at DESC`, uid)
}

func (r *postgresRepo) querySales(ctx context.Context, query string, args ...interface{}) ([]*Sale, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []*Sale
	for rows.Next() {
		s, err := scanSale(rows.Scan)
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (r *postgresRepo) listItems(ctx context.Context, saleID uuid.UUID) ([]*SaleItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, sale_id, product_id, product_name, quantity, unit_price, line_total
		FROM sale_items WHERE sale_id=$1`, saleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*SaleItem
	for rows.Next() {
		item := &SaleItem{}
		err := rows.Scan(&item.ID, &item.SaleID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.LineTotal)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
