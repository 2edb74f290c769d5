package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"service-delivery-admin/internal/apperr"
	"service-delivery-admin/internal/domain"
	"service-delivery-admin/internal/http/handlers"
)

type stubOrderUsecase struct {
	getFn           func(ctx context.Context, id int64) (*domain.Order, error)
	listFn          func(ctx context.Context, productPrefix string, page int) ([]domain.Order, int, error)
	createFn        func(ctx context.Context, o *domain.Order) (*domain.Order, error)
	updatePartialFn func(ctx context.Context, u domain.PartialOrderUpdate) (bool, error)
	deleteFn        func(ctx context.Context, id int64) error
}

func (s *stubOrderUsecase) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return s.getFn(ctx, id)
}

func (s *stubOrderUsecase) List(ctx context.Context, productPrefix string, page int) ([]domain.Order, int, error) {
	return s.listFn(ctx, productPrefix, page)
}

func (s *stubOrderUsecase) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	return s.createFn(ctx, o)
}

func (s *stubOrderUsecase) UpdatePartial(ctx context.Context, u domain.PartialOrderUpdate) (bool, error) {
	return s.updatePartialFn(ctx, u)
}

func (s *stubOrderUsecase) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func sampleOrder() *domain.Order {
	return &domain.Order{
		ID:            11,
		Product:       "Keyboard",
		RecipientID:   2,
		DeliverymanID: 3,
		Deliveryman:   &domain.DeliverymanSummary{ID: 3, Name: "Ana"},
		Recipient: &domain.Recipient{
			ID: 2, Name: "Carla", Street: "Main St", Number: "42",
			State: "SP", City: "São Paulo", ZipCode: "01000-000",
		},
	}
}

func TestOrderHandler_Index_OK(t *testing.T) {
	t.Parallel()

	uc := &stubOrderUsecase{
		listFn: func(ctx context.Context, productPrefix string, page int) ([]domain.Order, int, error) {
			require.Equal(t, "key", productPrefix)
			require.Equal(t, 1, page)
			return []domain.Order{*sampleOrder()}, 1, nil
		},
	}
	h := handlers.NewOrderHandler(uc)

	req := httptest.NewRequest(http.MethodGet, "/orders?product=key", nil)
	rr := httptest.NewRecorder()
	h.Index(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Orders []struct {
			ID          int64 `json:"id"`
			Deliveryman *struct {
				ID   int64  `json:"id"`
				Name string `json:"name"`
			} `json:"deliveryman"`
			Recipient *struct {
				City string `json:"city"`
			} `json:"recipient"`
			Signature *struct{} `json:"signature"`
		} `json:"orders"`
		MaxPage int `json:"maxPage"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, 1, resp.MaxPage)
	require.Len(t, resp.Orders, 1)
	require.NotNil(t, resp.Orders[0].Deliveryman)
	require.Equal(t, "Ana", resp.Orders[0].Deliveryman.Name)
	require.NotNil(t, resp.Orders[0].Recipient)
	require.Equal(t, "São Paulo", resp.Orders[0].Recipient.City)
	require.Nil(t, resp.Orders[0].Signature)
}

func TestOrderHandler_Index_BadPage(t *testing.T) {
	t.Parallel()

	h := handlers.NewOrderHandler(&stubOrderUsecase{
		listFn: func(ctx context.Context, productPrefix string, page int) ([]domain.Order, int, error) {
			require.FailNow(t, "usecase.List should not be called on bad page")
			return nil, 0, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/orders?page=two", nil)
	rr := httptest.NewRecorder()
	h.Index(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "Product name must be a string and page must be a number!", decodeErrBody(t, rr))
}

func TestOrderHandler_Store_OK(t *testing.T) {
	t.Parallel()

	uc := &stubOrderUsecase{
		createFn: func(ctx context.Context, o *domain.Order) (*domain.Order, error) {
			require.Equal(t, "Keyboard", o.Product)
			require.Equal(t, int64(2), o.RecipientID)
			require.Equal(t, int64(3), o.DeliverymanID)
			return sampleOrder(), nil
		},
	}
	h := handlers.NewOrderHandler(uc)

	body := strings.NewReader(`{"product":"Keyboard","recipient_id":2,"deliveryman_id":3}`)
	req := httptest.NewRequest(http.MethodPost, "/orders", body)
	rr := httptest.NewRecorder()
	h.Store(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		ID      int64  `json:"id"`
		Product string `json:"product"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, int64(11), resp.ID)
	require.Equal(t, "Keyboard", resp.Product)
}

func TestOrderHandler_Store_UnknownReference(t *testing.T) {
	t.Parallel()

	h := handlers.NewOrderHandler(&stubOrderUsecase{
		createFn: func(ctx context.Context, o *domain.Order) (*domain.Order, error) {
			return nil, apperr.ErrInvalid
		},
	})

	body := strings.NewReader(`{"product":"Keyboard","recipient_id":9999,"deliveryman_id":3}`)
	req := httptest.NewRequest(http.MethodPost, "/orders", body)
	rr := httptest.NewRecorder()
	h.Store(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "Invalid inserted data!", decodeErrBody(t, rr))
}

func TestOrderHandler_Update_UnknownID(t *testing.T) {
	t.Parallel()

	h := handlers.NewOrderHandler(&stubOrderUsecase{
		updatePartialFn: func(ctx context.Context, u domain.PartialOrderUpdate) (bool, error) {
			return false, apperr.ErrNotFound
		},
	})

	body := strings.NewReader(`{"id":9999,"product":"Mouse"}`)
	req := httptest.NewRequest(http.MethodPut, "/orders", body)
	rr := httptest.NewRecorder()
	h.Update(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "Invalid id!", decodeErrBody(t, rr))
}

func TestOrderHandler_Delete_OK(t *testing.T) {
	t.Parallel()

	uc := &stubOrderUsecase{
		deleteFn: func(ctx context.Context, id int64) error {
			require.Equal(t, int64(11), id)
			return nil
		},
	}
	h := handlers.NewOrderHandler(uc)

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/orders/11", nil), "id", "11")
	rr := httptest.NewRecorder()
	h.Delete(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Msg string `json:"msg"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, "Order was deleted!", resp.Msg)
}

func TestOrderHandler_Show_NotFound(t *testing.T) {
	t.Parallel()

	h := handlers.NewOrderHandler(&stubOrderUsecase{
		getFn: func(ctx context.Context, id int64) (*domain.Order, error) {
			return nil, apperr.ErrNotFound
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/orders/10", nil), "id", "10")
	rr := httptest.NewRecorder()
	h.Show(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}
