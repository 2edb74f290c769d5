package recipient

import (
	"context"

	"service-delivery-admin/internal/domain"
)

// recipientRepository defines storage operations required by the business layer.
type recipientRepository interface {
	Get(ctx context.Context, id int64) (*domain.Recipient, error)
	List(ctx context.Context, namePrefix string, limit, offset int) ([]domain.Recipient, error)
	Count(ctx context.Context, namePrefix string) (int64, error)
	Create(ctx context.Context, rec *domain.Recipient) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialRecipientUpdate) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
