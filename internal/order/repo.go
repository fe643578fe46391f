// Package order provides the repository interface and PostgreSQL
// implementation for managing laundry orders.
package order

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("order not found")
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id int64) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	Update(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id int64) (bool, error)
	CountByCustomer(ctx context.Context, customerID int64) (int64, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// NUMERIC columns are moved as text; decimal.Decimal scans them without
// rounding.
const orderColumns = `
	o.id, o.customer_id, o.service, o.weight::text, o.price::text, o.status, o.payment, o.created_at,
	c.id, c.name, c.phone, c.address`

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID, &o.CustomerID, &o.Service, &o.Weight, &o.Price, &o.Status, &o.Payment, &o.CreatedAt,
		&o.Customer.ID, &o.Customer.Name, &o.Customer.Phone, &o.Customer.Address,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.db.QueryRow(ctx, `
		INSERT INTO orders (customer_id, service, weight, price, status, payment, created_at)
		VALUES ($1,$2,$3::numeric,$4::numeric,$5,$6,NOW())
		RETURNING id, created_at
	`, o.CustomerID, o.Service, o.Weight.String(), o.Price.String(), o.Status, o.Payment).Scan(&o.ID, &o.CreatedAt)
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `
		SELECT`+orderColumns+`
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.id=$1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

// List returns every order with its customer resolved, ordered by id.
// Search, filters, sorting and pagination happen in the list-query engine.
func (r *PGRepo) List(ctx context.Context) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT`+orderColumns+`
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		ORDER BY o.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// Update rewrites every mutable column; created_at never changes. The handler
// merges the partial request into the stored order before calling this.
func (r *PGRepo) Update(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE orders
		SET customer_id = $2, service = $3, weight = $4::numeric, price = $5::numeric, status = $6, payment = $7
		WHERE id = $1
	`, o.ID, o.CustomerID, o.Service, o.Weight.String(), o.Price.String(), o.Status, o.Payment)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

// CountByCustomer backs the restrict-delete check on customers.
func (r *PGRepo) CountByCustomer(ctx context.Context, customerID int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var n int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM orders WHERE customer_id=$1
	`, customerID).Scan(&n)
	return n, err
}
