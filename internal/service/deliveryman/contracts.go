package deliveryman

import (
	"context"

	"service-delivery-admin/internal/domain"
)

// deliverymanRepository defines storage operations required by the business layer.
type deliverymanRepository interface {
	Get(ctx context.Context, id int64) (*domain.Deliveryman, error)
	List(ctx context.Context, namePrefix string, limit, offset int) ([]domain.Deliveryman, error)
	Count(ctx context.Context, namePrefix string) (int64, error)
	Create(ctx context.Context, d *domain.Deliveryman) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialDeliverymanUpdate) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
