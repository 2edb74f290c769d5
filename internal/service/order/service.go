package order

import (
	"context"
	"strings"
	"time"

	"service-delivery-admin/internal/apperr"
	"service-delivery-admin/internal/domain"
	"service-delivery-admin/internal/logx"
	"service-delivery-admin/internal/service/notifications"
)

const pageSize = 5

// Service coordinates order business logic: it validates references against
// their own repositories, persists orders and emits notification events.
type Service struct {
	repo             orderRepository
	deliverymen      deliverymanGetter
	recipients       recipientGetter
	events           EventPublisher
	logger           logx.Logger
	operationTimeout time.Duration
}

// NewService creates and configures an order Service. events may be nil when
// notifications are disabled.
func NewService(
	repo orderRepository,
	deliverymen deliverymanGetter,
	recipients recipientGetter,
	events EventPublisher,
	logger logx.Logger,
	timeout time.Duration,
) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             repo,
		deliverymen:      deliverymen,
		recipients:       recipients,
		events:           events,
		logger:           logger,
		operationTimeout: timeout,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validateCreate(o *domain.Order) error {
	if o == nil {
		return apperr.ErrInvalid
	}
	if strings.TrimSpace(o.Product) == "" {
		return apperr.ErrInvalid
	}
	if o.RecipientID <= 0 || o.DeliverymanID <= 0 {
		return apperr.ErrInvalid
	}
	return nil
}

func validateUpdate(u *domain.PartialOrderUpdate) error {
	if u.ID <= 0 {
		return apperr.ErrInvalid
	}
	if u.Product == nil && u.RecipientID == nil && u.DeliverymanID == nil {
		return apperr.ErrInvalid
	}
	if u.Product != nil && strings.TrimSpace(*u.Product) == "" {
		return apperr.ErrInvalid
	}
	if u.RecipientID != nil && *u.RecipientID <= 0 {
		return apperr.ErrInvalid
	}
	if u.DeliverymanID != nil && *u.DeliverymanID <= 0 {
		return apperr.ErrInvalid
	}
	return nil
}

// Get retrieves an order with its associations by ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.ErrNotFound
	}
	return o, nil
}

// List returns one page of orders filtered by product prefix, together with
// the total number of pages for that filter.
func (s *Service) List(ctx context.Context, productPrefix string, page int) ([]domain.Order, int, error) {
	if page < 1 {
		page = 1
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	items, err := s.repo.List(ctx, productPrefix, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, productPrefix)
	if err != nil {
		return nil, 0, err
	}
	return items, maxPage(total), nil
}

// Create persists a new order after checking both referenced entities exist,
// then publishes an order-created event. Publishing is best effort: a queue
// failure is logged but never fails the request.
func (s *Service) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	if err := validateCreate(o); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	dm, err := s.deliverymen.Get(ctx, o.DeliverymanID)
	if err != nil {
		return nil, err
	}
	rec, err := s.recipients.Get(ctx, o.RecipientID)
	if err != nil {
		return nil, err
	}
	if dm == nil || rec == nil {
		return nil, apperr.ErrInvalid
	}

	id, err := s.repo.Create(ctx, o)
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publishCreated(ctx, created, dm, rec)
	return created, nil
}

func (s *Service) publishCreated(ctx context.Context, o *domain.Order, dm *domain.Deliveryman, rec *domain.Recipient) {
	if s.events == nil || o == nil {
		return
	}
	e := notifications.OrderCreatedEvent{
		OrderID:          o.ID,
		Product:          o.Product,
		DeliverymanName:  dm.Name,
		DeliverymanEmail: dm.Email,
		RecipientName:    rec.Name,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.events.PublishOrderCreated(ctx, e); err != nil {
		s.logger.Error("publish order created event",
			logx.Int64("order_id", o.ID),
			logx.Err(err),
		)
	}
}

// UpdatePartial applies a partial update to an order. It returns true if a row was updated.
func (s *Service) UpdatePartial(ctx context.Context, u domain.PartialOrderUpdate) (bool, error) {
	if err := validateUpdate(&u); err != nil {
		return false, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.UpdatePartial(ctx, u)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, apperr.ErrNotFound
	}
	return true, nil
}

// Delete removes an order by its ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}

func maxPage(total int64) int {
	return int((total + pageSize - 1) / pageSize)
}
