//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"service-delivery-admin/internal/apperr"
	"service-delivery-admin/internal/domain"
	"service-delivery-admin/internal/repository"
)

type OrderRepositorySuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *repository.OrderRepo

	recipientID   int64
	deliverymanID int64
}

func (s *OrderRepositorySuite) SetupSuite() {
	s.Require().NotNil(tcPool, "tcPool must be initialized in TestMain")

	s.pool = tcPool
	s.repo = repository.NewOrderRepo(tcPool)
}

func (s *OrderRepositorySuite) SetupTest() {
	ctx := context.Background()
	_, err := s.pool.Exec(ctx,
		`TRUNCATE orders, deliverymen, recipients, files RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)

	err = s.pool.QueryRow(ctx, `
        INSERT INTO recipients(name, street, number, state, city, zip_code)
        VALUES('Carla', 'Main St', '42', 'SP', 'São Paulo', '01000-000')
        RETURNING id
    `).Scan(&s.recipientID)
	s.Require().NoError(err)

	err = s.pool.QueryRow(ctx,
		`INSERT INTO deliverymen(name, email) VALUES('Ana', 'ana@x.com') RETURNING id`,
	).Scan(&s.deliverymanID)
	s.Require().NoError(err)
}

func (s *OrderRepositorySuite) newOrder(product string) *domain.Order {
	return &domain.Order{
		Product:       product,
		RecipientID:   s.recipientID,
		DeliverymanID: s.deliverymanID,
	}
}

func (s *OrderRepositorySuite) TestCreateAndGet_EagerLoads() {
	ctx := context.Background()

	id, err := s.repo.Create(ctx, s.newOrder("Keyboard"))
	s.Require().NoError(err)

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(got)

	s.Equal("Keyboard", got.Product)
	s.Nil(got.CanceledAt)
	s.Nil(got.Signature)

	s.Require().NotNil(got.Deliveryman)
	s.Equal(s.deliverymanID, got.Deliveryman.ID)
	s.Equal("Ana", got.Deliveryman.Name)

	s.Require().NotNil(got.Recipient)
	s.Equal(s.recipientID, got.Recipient.ID)
	s.Equal("Carla", got.Recipient.Name)
	s.Equal("Main St", got.Recipient.Street)
	s.Equal("01000-000", got.Recipient.ZipCode)
}

func (s *OrderRepositorySuite) TestCreate_UnknownRecipient() {
	ctx := context.Background()

	_, err := s.repo.Create(ctx, &domain.Order{
		Product:       "Keyboard",
		RecipientID:   9999,
		DeliverymanID: s.deliverymanID,
	})
	s.Require().Error(err)
	s.True(errors.Is(err, apperr.ErrInvalid))
}

func (s *OrderRepositorySuite) TestList_ProductPrefix() {
	ctx := context.Background()

	for _, p := range []string{"Keyboard", "keycap set", "Mouse"} {
		_, err := s.repo.Create(ctx, s.newOrder(p))
		s.Require().NoError(err)
	}

	list, err := s.repo.List(ctx, "key", 5, 0)
	s.Require().NoError(err)
	s.Len(list, 2)

	n, err := s.repo.Count(ctx, "key")
	s.Require().NoError(err)
	s.Equal(int64(2), n)
}

func (s *OrderRepositorySuite) TestList_Pagination() {
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		_, err := s.repo.Create(ctx, s.newOrder(fmt.Sprintf("Item %d", i+1)))
		s.Require().NoError(err)
	}

	first, err := s.repo.List(ctx, "", 5, 0)
	s.Require().NoError(err)
	s.Len(first, 5)

	second, err := s.repo.List(ctx, "", 5, 5)
	s.Require().NoError(err)
	s.Len(second, 1)
}

func (s *OrderRepositorySuite) TestUpdatePartial() {
	ctx := context.Background()

	id, err := s.repo.Create(ctx, s.newOrder("Keyboard"))
	s.Require().NoError(err)

	newProduct := "Mechanical Keyboard"
	ok, err := s.repo.UpdatePartial(ctx, domain.PartialOrderUpdate{ID: id, Product: &newProduct})
	s.Require().NoError(err)
	s.True(ok)

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Equal(newProduct, got.Product)
	s.Equal(s.recipientID, got.RecipientID)
}

func (s *OrderRepositorySuite) TestUpdatePartial_UnknownDeliveryman() {
	ctx := context.Background()

	id, err := s.repo.Create(ctx, s.newOrder("Keyboard"))
	s.Require().NoError(err)

	missing := int64(9999)
	ok, err := s.repo.UpdatePartial(ctx, domain.PartialOrderUpdate{ID: id, DeliverymanID: &missing})
	s.False(ok)
	s.Require().Error(err)
	s.True(errors.Is(err, apperr.ErrInvalid))
}

func (s *OrderRepositorySuite) TestDelete() {
	ctx := context.Background()

	id, err := s.repo.Create(ctx, s.newOrder("Keyboard"))
	s.Require().NoError(err)

	ok, err := s.repo.Delete(ctx, id)
	s.Require().NoError(err)
	s.True(ok)

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Nil(got)
}

func TestOrderRepositorySuite(t *testing.T) {
	suite.Run(t, new(OrderRepositorySuite))
}
