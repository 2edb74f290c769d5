package deliveryman

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"service-delivery-admin/internal/apperr"
	"service-delivery-admin/internal/domain"
)

// pageSize is the fixed number of items per admin list page.
const pageSize = 5

var validate = validator.New()

// Service coordinates deliveryman business logic and orchestrates repository calls.
type Service struct {
	repo             deliverymanRepository
	operationTimeout time.Duration
}

// NewService creates and configures a deliveryman Service.
func NewService(r deliverymanRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validateCreate(d *domain.Deliveryman) error {
	if d == nil {
		return apperr.ErrInvalid
	}
	if strings.TrimSpace(d.Name) == "" {
		return apperr.ErrInvalid
	}
	if validate.Var(d.Email, "required,email") != nil {
		return apperr.ErrInvalid
	}
	return nil
}

func validateUpdate(u *domain.PartialDeliverymanUpdate) error {
	if u.ID <= 0 {
		return apperr.ErrInvalid
	}
	if u.Name == nil && u.Email == nil && u.AvatarID == nil {
		return apperr.ErrInvalid
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return apperr.ErrInvalid
	}
	if u.Email != nil && validate.Var(*u.Email, "required,email") != nil {
		return apperr.ErrInvalid
	}
	return nil
}

// Get retrieves a deliveryman by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Deliveryman, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrNotFound
	}
	return d, nil
}

// List returns one page of deliverymen filtered by name prefix, together with
// the total number of pages for that filter. Pages are 1-based; anything below
// 1 is treated as the first page.
func (s *Service) List(ctx context.Context, namePrefix string, page int) ([]domain.Deliveryman, int, error) {
	if page < 1 {
		page = 1
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	items, err := s.repo.List(ctx, namePrefix, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, namePrefix)
	if err != nil {
		return nil, 0, err
	}
	return items, maxPage(total), nil
}

// Create persists a new deliveryman and returns its generated ID.
func (s *Service) Create(ctx context.Context, d *domain.Deliveryman) (int64, error) {
	if err := validateCreate(d); err != nil {
		return 0, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Create(ctx, d)
}

// UpdatePartial applies a partial update to a deliveryman. It returns true if a row was updated.
func (s *Service) UpdatePartial(ctx context.Context, u domain.PartialDeliverymanUpdate) (bool, error) {
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

// Delete removes a deliveryman by its ID.
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
