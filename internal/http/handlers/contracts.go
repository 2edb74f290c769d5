package handlers

import (
	"context"

	"service-delivery-admin/internal/domain"
	"service-delivery-admin/internal/service/deliveryman"
	"service-delivery-admin/internal/service/order"
	"service-delivery-admin/internal/service/recipient"
)

type deliverymanUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Deliveryman, error)
	List(ctx context.Context, namePrefix string, page int) ([]domain.Deliveryman, int, error)
	Create(ctx context.Context, d *domain.Deliveryman) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialDeliverymanUpdate) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// NewDeliverymanUsecase wires a deliveryman.Service into a deliverymanUsecase.
func NewDeliverymanUsecase(svc *deliveryman.Service) deliverymanUsecase {
	return svc
}

type recipientUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Recipient, error)
	List(ctx context.Context, namePrefix string, page int) ([]domain.Recipient, int, error)
	Create(ctx context.Context, rec *domain.Recipient) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialRecipientUpdate) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// NewRecipientUsecase wires a recipient.Service into a recipientUsecase.
func NewRecipientUsecase(svc *recipient.Service) recipientUsecase {
	return svc
}

type orderUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, productPrefix string, page int) ([]domain.Order, int, error)
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	UpdatePartial(ctx context.Context, u domain.PartialOrderUpdate) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// NewOrderUsecase wires an order.Service into an orderUsecase.
func NewOrderUsecase(svc *order.Service) orderUsecase {
	return svc
}
