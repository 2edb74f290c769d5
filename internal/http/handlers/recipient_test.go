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

type stubRecipientUsecase struct {
	getFn           func(ctx context.Context, id int64) (*domain.Recipient, error)
	listFn          func(ctx context.Context, namePrefix string, page int) ([]domain.Recipient, int, error)
	createFn        func(ctx context.Context, rec *domain.Recipient) (int64, error)
	updatePartialFn func(ctx context.Context, u domain.PartialRecipientUpdate) (bool, error)
	deleteFn        func(ctx context.Context, id int64) error
}

func (s *stubRecipientUsecase) Get(ctx context.Context, id int64) (*domain.Recipient, error) {
	return s.getFn(ctx, id)
}

func (s *stubRecipientUsecase) List(ctx context.Context, namePrefix string, page int) ([]domain.Recipient, int, error) {
	return s.listFn(ctx, namePrefix, page)
}

func (s *stubRecipientUsecase) Create(ctx context.Context, rec *domain.Recipient) (int64, error) {
	return s.createFn(ctx, rec)
}

func (s *stubRecipientUsecase) UpdatePartial(ctx context.Context, u domain.PartialRecipientUpdate) (bool, error) {
	return s.updatePartialFn(ctx, u)
}

func (s *stubRecipientUsecase) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func TestRecipientHandler_Index_OK(t *testing.T) {
	t.Parallel()

	uc := &stubRecipientUsecase{
		listFn: func(ctx context.Context, namePrefix string, page int) ([]domain.Recipient, int, error) {
			require.Equal(t, "ca", namePrefix)
			require.Equal(t, 1, page)
			return []domain.Recipient{
				{ID: 3, Name: "Carla", Street: "Rua A", Number: "10",
					State: "SP", City: "São Paulo", ZipCode: "01000-000"},
			}, 2, nil
		},
	}
	h := handlers.NewRecipientHandler(uc)

	req := httptest.NewRequest(http.MethodGet, "/recipients?name=ca&page=1", nil)
	rr := httptest.NewRecorder()
	h.Index(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Recipients []struct {
			ID      int64  `json:"id"`
			Name    string `json:"name"`
			City    string `json:"city"`
			ZipCode string `json:"zip_code"`
		} `json:"recipients"`
		MaxPage int `json:"maxPage"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, 2, resp.MaxPage)
	require.Len(t, resp.Recipients, 1)
	require.Equal(t, "Carla", resp.Recipients[0].Name)
	require.Equal(t, "São Paulo", resp.Recipients[0].City)
	require.Equal(t, "01000-000", resp.Recipients[0].ZipCode)
}

func TestRecipientHandler_Index_BadPage(t *testing.T) {
	t.Parallel()

	h := handlers.NewRecipientHandler(&stubRecipientUsecase{
		listFn: func(ctx context.Context, namePrefix string, page int) ([]domain.Recipient, int, error) {
			require.FailNow(t, "usecase.List should not be called on bad page")
			return nil, 0, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/recipients?page=two", nil)
	rr := httptest.NewRecorder()
	h.Index(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "Recipient name must be a string and page must be a number!", decodeErrBody(t, rr))
}

func TestRecipientHandler_Show_NotFound(t *testing.T) {
	t.Parallel()

	h := handlers.NewRecipientHandler(&stubRecipientUsecase{
		getFn: func(ctx context.Context, id int64) (*domain.Recipient, error) {
			return nil, apperr.ErrNotFound
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/recipients/10", nil), "id", "10")
	rr := httptest.NewRecorder()
	h.Show(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "not found", decodeErrBody(t, rr))
}

func TestRecipientHandler_Store_OK(t *testing.T) {
	t.Parallel()

	uc := &stubRecipientUsecase{
		createFn: func(ctx context.Context, rec *domain.Recipient) (int64, error) {
			require.Equal(t, "Carla", rec.Name)
			require.Equal(t, "Rua A", rec.Street)
			return 3, nil
		},
		getFn: func(ctx context.Context, id int64) (*domain.Recipient, error) {
			require.Equal(t, int64(3), id)
			return &domain.Recipient{ID: 3, Name: "Carla", Street: "Rua A"}, nil
		},
	}
	h := handlers.NewRecipientHandler(uc)

	body := strings.NewReader(`{"name":"Carla","street":"Rua A"}`)
	req := httptest.NewRequest(http.MethodPost, "/recipients", body)
	rr := httptest.NewRecorder()
	h.Store(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, int64(3), resp.ID)
	require.Equal(t, "Carla", resp.Name)
}

func TestRecipientHandler_Store_InvalidInput(t *testing.T) {
	t.Parallel()

	h := handlers.NewRecipientHandler(&stubRecipientUsecase{
		createFn: func(ctx context.Context, rec *domain.Recipient) (int64, error) {
			return 0, apperr.ErrInvalid
		},
	})

	body := strings.NewReader(`{"name":""}`)
	req := httptest.NewRequest(http.MethodPost, "/recipients", body)
	rr := httptest.NewRecorder()
	h.Store(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "Invalid inserted data!", decodeErrBody(t, rr))
}

func TestRecipientHandler_Update_OK(t *testing.T) {
	t.Parallel()

	uc := &stubRecipientUsecase{
		updatePartialFn: func(ctx context.Context, u domain.PartialRecipientUpdate) (bool, error) {
			require.Equal(t, int64(3), u.ID)
			require.NotNil(t, u.City)
			require.Equal(t, "Campinas", *u.City)
			require.Nil(t, u.Name)
			return true, nil
		},
		getFn: func(ctx context.Context, id int64) (*domain.Recipient, error) {
			return &domain.Recipient{ID: 3, Name: "Carla", City: "Campinas"}, nil
		},
	}
	h := handlers.NewRecipientHandler(uc)

	body := strings.NewReader(`{"id":3,"city":"Campinas"}`)
	req := httptest.NewRequest(http.MethodPut, "/recipients", body)
	rr := httptest.NewRecorder()
	h.Update(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestRecipientHandler_Update_UnknownID(t *testing.T) {
	t.Parallel()

	h := handlers.NewRecipientHandler(&stubRecipientUsecase{
		updatePartialFn: func(ctx context.Context, u domain.PartialRecipientUpdate) (bool, error) {
			return false, apperr.ErrNotFound
		},
	})

	body := strings.NewReader(`{"id":9999,"name":"Carla"}`)
	req := httptest.NewRequest(http.MethodPut, "/recipients", body)
	rr := httptest.NewRecorder()
	h.Update(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "Invalid id!", decodeErrBody(t, rr))
}

func TestRecipientHandler_Delete_OK(t *testing.T) {
	t.Parallel()

	uc := &stubRecipientUsecase{
		deleteFn: func(ctx context.Context, id int64) error {
			require.Equal(t, int64(3), id)
			return nil
		},
	}
	h := handlers.NewRecipientHandler(uc)

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/recipients/3", nil), "id", "3")
	rr := httptest.NewRecorder()
	h.Delete(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Msg string `json:"msg"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, "Recipient was deleted!", resp.Msg)
}

func TestRecipientHandler_Delete_UnknownID(t *testing.T) {
	t.Parallel()

	h := handlers.NewRecipientHandler(&stubRecipientUsecase{
		deleteFn: func(ctx context.Context, id int64) error {
			return apperr.ErrNotFound
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/recipients/9999", nil), "id", "9999")
	rr := httptest.NewRecorder()
	h.Delete(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "Invalid id!", decodeErrBody(t, rr))
}
