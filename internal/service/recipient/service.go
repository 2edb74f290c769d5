package recipient

import (
	"context"
	"strings"
	"time"

	"service-delivery-admin/internal/apperr"
	"service-delivery-admin/internal/domain"
)

const pageSize = 5

// Service coordinates recipient business logic and orchestrates repository calls.
type Service struct {
	repo             recipientRepository
	operationTimeout time.Duration
}

// NewService creates and configures a recipient Service.
func NewService(r recipientRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validateCreate(rec *domain.Recipient) error {
	if rec == nil {
		return apperr.ErrInvalid
	}
	if strings.TrimSpace(rec.Name) == "" {
		return apperr.ErrInvalid
	}
	return nil
}

func validateUpdate(u *domain.PartialRecipientUpdate) error {
	if u.ID <= 0 {
		return apperr.ErrInvalid
	}
	if u.Name == nil && u.Street == nil && u.Number == nil && u.AdditionalAddress == nil &&
		u.State == nil && u.City == nil && u.ZipCode == nil {
		return apperr.ErrInvalid
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return apperr.ErrInvalid
	}
	return nil
}

// Get retrieves a recipient by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Recipient, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperr.ErrNotFound
	}
	return rec, nil
}

// List returns one page of recipients filtered by name prefix, together with
// the total number of pages for that filter.
func (s *Service) List(ctx context.Context, namePrefix string, page int) ([]domain.Recipient, int, error) {
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

// Create persists a new recipient and returns its generated ID.
func (s *Service) Create(ctx context.Context, rec *domain.Recipient) (int64, error) {
	if err := validateCreate(rec); err != nil {
		return 0, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Create(ctx, rec)
}

// UpdatePartial applies a partial update to a recipient. It returns true if a row was updated.
func (s *Service) UpdatePartial(ctx context.Context, u domain.PartialRecipientUpdate) (bool, error) {
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

// Delete removes a recipient by its ID.
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
