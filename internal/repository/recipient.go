package repository

import (
	"context"
	"fmt"

	"service-delivery-admin/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RecipientRepo is the recipients storage layer.
type RecipientRepo struct{ db *pgxpool.Pool }

// NewRecipientRepo creates a new RecipientRepo.
func NewRecipientRepo(db *pgxpool.Pool) *RecipientRepo { return &RecipientRepo{db: db} }

const recipientColumns = `id, name, street, number, additional_address, state, city, zip_code`

func scanRecipient(scan func(...any) error) (domain.Recipient, error) {
	var rec domain.Recipient
	err := scan(&rec.ID, &rec.Name, &rec.Street, &rec.Number,
		&rec.AdditionalAddress, &rec.State, &rec.City, &rec.ZipCode)
	return rec, err
}

// Get returns a recipient by id, or nil when absent.
func (r *RecipientRepo) Get(ctx context.Context, id int64) (*domain.Recipient, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+recipientColumns+` FROM recipients WHERE id = $1`, id)
	rec, err := scanRecipient(row.Scan)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipient %d: %w", id, err)
	}
	return &rec, nil
}

// List returns recipients whose name starts with namePrefix (case-insensitive,
// empty matches all), ordered by id.
func (r *RecipientRepo) List(ctx context.Context, namePrefix string, limit, offset int) ([]domain.Recipient, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+recipientColumns+` FROM recipients WHERE name ILIKE $1 ORDER BY id LIMIT $2 OFFSET $3`,
		likePrefix(namePrefix), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list recipients: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Recipient, 0, limit)
	for rows.Next() {
		rec, err := scanRecipient(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Count returns the number of recipients matching namePrefix.
func (r *RecipientRepo) Count(ctx context.Context, namePrefix string) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM recipients WHERE name ILIKE $1`,
		likePrefix(namePrefix)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count recipients: %w", err)
	}
	return n, nil
}

// Create persists a new recipient and returns its generated id.
func (r *RecipientRepo) Create(ctx context.Context, rec *domain.Recipient) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO recipients(name, street, number, additional_address, state, city, zip_code)
        VALUES($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `, rec.Name, rec.Street, rec.Number, rec.AdditionalAddress, rec.State, rec.City, rec.ZipCode).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create recipient: %w", err)
	}
	return id, nil
}

// UpdatePartial applies a partial update and returns true if a row was affected.
func (r *RecipientRepo) UpdatePartial(ctx context.Context, u domain.PartialRecipientUpdate) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE recipients
        SET
            name               = COALESCE($2, name),
            street             = COALESCE($3, street),
            number             = COALESCE($4, number),
            additional_address = COALESCE($5, additional_address),
            state              = COALESCE($6, state),
            city               = COALESCE($7, city),
            zip_code           = COALESCE($8, zip_code),
            updated_at         = now()
        WHERE id = $1
    `, u.ID, u.Name, u.Street, u.Number, u.AdditionalAddress, u.State, u.City, u.ZipCode)
	if err != nil {
		return false, fmt.Errorf("update recipient %d: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// Delete removes a recipient and returns true if a row was deleted.
func (r *RecipientRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM recipients WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete recipient %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
