package repository

import (
	"context"
	"fmt"

	"service-delivery-admin/internal/apperr"
	"service-delivery-admin/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DeliverymanRepo is the deliverymen storage layer.
type DeliverymanRepo struct{ db *pgxpool.Pool }

// NewDeliverymanRepo creates a new DeliverymanRepo.
func NewDeliverymanRepo(db *pgxpool.Pool) *DeliverymanRepo { return &DeliverymanRepo{db: db} }

const deliverymanSelect = `
    SELECT d.id, d.name, d.email, d.avatar_id, f.path, f.url
    FROM deliverymen d
    LEFT JOIN files f ON f.id = d.avatar_id`

func scanDeliveryman(scan func(...any) error) (domain.Deliveryman, error) {
	var (
		d          domain.Deliveryman
		path, link *string
	)
	if err := scan(&d.ID, &d.Name, &d.Email, &d.AvatarID, &path, &link); err != nil {
		return domain.Deliveryman{}, err
	}
	if d.AvatarID != nil && path != nil && link != nil {
		d.Avatar = &domain.File{ID: *d.AvatarID, Path: *path, URL: *link}
	}
	return d, nil
}

// Get returns a deliveryman with its avatar, or nil when absent.
func (r *DeliverymanRepo) Get(ctx context.Context, id int64) (*domain.Deliveryman, error) {
	row := r.db.QueryRow(ctx, deliverymanSelect+` WHERE d.id = $1`, id)
	d, err := scanDeliveryman(row.Scan)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get deliveryman %d: %w", id, err)
	}
	return &d, nil
}

// List returns deliverymen whose name starts with namePrefix (case-insensitive,
// empty matches all), ordered by id.
func (r *DeliverymanRepo) List(ctx context.Context, namePrefix string, limit, offset int) ([]domain.Deliveryman, error) {
	rows, err := r.db.Query(ctx,
		deliverymanSelect+` WHERE d.name ILIKE $1 ORDER BY d.id LIMIT $2 OFFSET $3`,
		likePrefix(namePrefix), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list deliverymen: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Deliveryman, 0, limit)
	for rows.Next() {
		d, err := scanDeliveryman(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Count returns the number of deliverymen matching namePrefix.
func (r *DeliverymanRepo) Count(ctx context.Context, namePrefix string) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM deliverymen WHERE name ILIKE $1`,
		likePrefix(namePrefix)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count deliverymen: %w", err)
	}
	return n, nil
}

// Create persists a new deliveryman and returns its generated id.
func (r *DeliverymanRepo) Create(ctx context.Context, d *domain.Deliveryman) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO deliverymen(name, email, avatar_id) VALUES($1, $2, $3) RETURNING id`,
		d.Name, d.Email, d.AvatarID).Scan(&id)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return 0, apperr.ErrInvalid
		}
		return 0, fmt.Errorf("create deliveryman: %w", err)
	}
	return id, nil
}

// UpdatePartial applies a partial update and returns true if a row was affected.
func (r *DeliverymanRepo) UpdatePartial(ctx context.Context, u domain.PartialDeliverymanUpdate) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE deliverymen
        SET
            name       = COALESCE($2, name),
            email      = COALESCE($3, email),
            avatar_id  = COALESCE($4, avatar_id),
            updated_at = now()
        WHERE id = $1
    `, u.ID, u.Name, u.Email, u.AvatarID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return false, apperr.ErrInvalid
		}
		return false, fmt.Errorf("update deliveryman %d: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// Delete removes a deliveryman and returns true if a row was deleted.
func (r *DeliverymanRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM deliverymen WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete deliveryman %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
