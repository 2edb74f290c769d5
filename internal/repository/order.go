package repository

import (
	"context"
	"fmt"

	"service-delivery-admin/internal/apperr"
	"service-delivery-admin/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderRepo is the orders storage layer.
type OrderRepo struct{ db *pgxpool.Pool }

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo { return &OrderRepo{db: db} }

// orderSelect eager-loads the associations the admin list views render:
// signature file, deliveryman summary and the recipient address block.
const orderSelect = `
    SELECT o.id, o.product, o.recipient_id, o.deliveryman_id, o.signature_id,
           o.canceled_at, o.start_date, o.end_date,
           f.path, f.url,
           d.name,
           r.name, r.street, r.number, r.additional_address, r.state, r.city, r.zip_code
    FROM orders o
    JOIN deliverymen d ON d.id = o.deliveryman_id
    JOIN recipients r  ON r.id = o.recipient_id
    LEFT JOIN files f  ON f.id = o.signature_id`

func scanOrder(scan func(...any) error) (domain.Order, error) {
	var (
		o          domain.Order
		path, link *string
		rec        domain.Recipient
		dmName     string
	)
	err := scan(&o.ID, &o.Product, &o.RecipientID, &o.DeliverymanID, &o.SignatureID,
		&o.CanceledAt, &o.StartDate, &o.EndDate,
		&path, &link,
		&dmName,
		&rec.Name, &rec.Street, &rec.Number, &rec.AdditionalAddress, &rec.State, &rec.City, &rec.ZipCode)
	if err != nil {
		return domain.Order{}, err
	}
	if o.SignatureID != nil && path != nil && link != nil {
		o.Signature = &domain.File{ID: *o.SignatureID, Path: *path, URL: *link}
	}
	o.Deliveryman = &domain.DeliverymanSummary{ID: o.DeliverymanID, Name: dmName}
	rec.ID = o.RecipientID
	o.Recipient = &rec
	return o, nil
}

// Get returns an order with its associations, or nil when absent.
func (r *OrderRepo) Get(ctx context.Context, id int64) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, orderSelect+` WHERE o.id = $1`, id)
	o, err := scanOrder(row.Scan)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return &o, nil
}

// List returns orders whose product starts with productPrefix (case-insensitive,
// empty matches all), ordered by id.
func (r *OrderRepo) List(ctx context.Context, productPrefix string, limit, offset int) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx,
		orderSelect+` WHERE o.product ILIKE $1 ORDER BY o.id LIMIT $2 OFFSET $3`,
		likePrefix(productPrefix), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Order, 0, limit)
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// Count returns the number of orders matching productPrefix.
func (r *OrderRepo) Count(ctx context.Context, productPrefix string) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE product ILIKE $1`,
		likePrefix(productPrefix)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

// Create persists a new order and returns its generated id.
func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO orders(product, recipient_id, deliveryman_id) VALUES($1, $2, $3) RETURNING id`,
		o.Product, o.RecipientID, o.DeliverymanID).Scan(&id)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return 0, apperr.ErrInvalid
		}
		return 0, fmt.Errorf("create order: %w", err)
	}
	return id, nil
}

// UpdatePartial applies a partial update and returns true if a row was affected.
func (r *OrderRepo) UpdatePartial(ctx context.Context, u domain.PartialOrderUpdate) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET
            product        = COALESCE($2, product),
            recipient_id   = COALESCE($3, recipient_id),
            deliveryman_id = COALESCE($4, deliveryman_id),
            updated_at     = now()
        WHERE id = $1
    `, u.ID, u.Product, u.RecipientID, u.DeliverymanID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return false, apperr.ErrInvalid
		}
		return false, fmt.Errorf("update order %d: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// Delete removes an order and returns true if a row was deleted.
func (r *OrderRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete order %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
