package handlers

import (
	"errors"
	"net/http"

	"service-delivery-admin/internal/apperr"
	"service-delivery-admin/internal/domain"
)

const (
	msgOrderBadQuery = "Product name must be a string and page must be a number!"
	msgOrderDeleted  = "Order was deleted!"
)

// OrderHandler serves HTTP endpoints for order resources.
type OrderHandler struct{ uc orderUsecase }

// NewOrderHandler wires an orderUsecase into HTTP handlers.
func NewOrderHandler(uc orderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Index handles GET /orders with optional product filter and page.
func (h *OrderHandler) Index(w http.ResponseWriter, r *http.Request) {
	page, ok := pageFromQuery(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, msgOrderBadQuery)
		return
	}

	list, maxPage, err := h.uc.List(r.Context(), r.URL.Query().Get("product"), page)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, r, http.StatusOK, orderIndexResponse{
		Orders:  toOrderDTOs(list),
		MaxPage: maxPage,
	})
}

// Show handles GET /orders/{id}.
func (h *OrderHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, msgIDRequired)
		return
	}

	o, err := h.uc.Get(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, toOrderDTO(*o))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, msgNotFound)
	default:
		writeError(w, r, http.StatusInternalServerError, msgInternal)
	}
}

// Store handles POST /orders. A successful create also publishes the
// order-created event for the notification worker.
func (h *OrderHandler) Store(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if ok := decodeJSON(w, r, &req, msgInvalidData); !ok {
		return
	}

	created, err := h.uc.Create(r.Context(), &domain.Order{
		Product:       req.Product,
		RecipientID:   req.RecipientID,
		DeliverymanID: req.DeliverymanID,
	})
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, toOrderDTO(*created))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(w, r, http.StatusBadRequest, msgInvalidData)
	default:
		writeError(w, r, http.StatusInternalServerError, msgInternal)
	}
}

// Update handles PUT /orders with partial updates from the request body.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateOrderRequest
	if ok := decodeJSON(w, r, &req, msgInvalidData); !ok {
		return
	}

	_, err := h.uc.UpdatePartial(r.Context(), domain.PartialOrderUpdate{
		ID:            req.ID,
		Product:       req.Product,
		RecipientID:   req.RecipientID,
		DeliverymanID: req.DeliverymanID,
	})
	switch {
	case err == nil:
		h.respondWith(w, r, req.ID)
	case errors.Is(err, apperr.ErrInvalid):
		writeError(w, r, http.StatusBadRequest, msgInvalidData)
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusBadRequest, msgInvalidID)
	default:
		writeError(w, r, http.StatusInternalServerError, msgInternal)
	}
}

// Delete handles DELETE /orders/{id}.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, msgIDRequired)
		return
	}

	err = h.uc.Delete(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, msgResponse{Msg: msgOrderDeleted})
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusBadRequest, msgInvalidID)
	default:
		writeError(w, r, http.StatusInternalServerError, msgInternal)
	}
}

func (h *OrderHandler) respondWith(w http.ResponseWriter, r *http.Request, id int64) {
	o, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, r, http.StatusOK, toOrderDTO(*o))
}
