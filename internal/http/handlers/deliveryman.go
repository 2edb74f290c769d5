package handlers

import (
	"errors"
	"net/http"

	"service-delivery-admin/internal/apperr"
	"service-delivery-admin/internal/domain"
)

// Fixed client-facing messages of the deliveryman endpoints.
const (
	msgDeliverymanBadQuery = "Deliveryman name must be a string and page must be a number!"
	msgDeliverymanDeleted  = "Delivery man was deleted!"
)

const (
	msgIDRequired  = "Id is required!"
	msgInvalidID   = "Invalid id!"
	msgInvalidData = "Invalid inserted data!"
	msgNotFound    = "not found"
	msgInternal    = "internal error"
)

// DeliverymanHandler serves HTTP endpoints for deliveryman resources.
type DeliverymanHandler struct{ uc deliverymanUsecase }

// NewDeliverymanHandler wires a deliverymanUsecase into HTTP handlers.
func NewDeliverymanHandler(uc deliverymanUsecase) *DeliverymanHandler {
	return &DeliverymanHandler{uc: uc}
}

// Index handles GET /deliveryman with optional name filter and page.
func (h *DeliverymanHandler) Index(w http.ResponseWriter, r *http.Request) {
	page, ok := pageFromQuery(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, msgDeliverymanBadQuery)
		return
	}

	list, maxPage, err := h.uc.List(r.Context(), r.URL.Query().Get("name"), page)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, r, http.StatusOK, deliverymanIndexResponse{
		Deliverymen: toDeliverymanDTOs(list),
		MaxPage:     maxPage,
	})
}

// Show handles GET /deliveryman/{id}.
func (h *DeliverymanHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, msgIDRequired)
		return
	}

	d, err := h.uc.Get(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, toDeliverymanDTO(*d))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, msgNotFound)
	default:
		writeError(w, r, http.StatusInternalServerError, msgInternal)
	}
}

// Store handles POST /deliveryman.
func (h *DeliverymanHandler) Store(w http.ResponseWriter, r *http.Request) {
	var req createDeliverymanRequest
	if ok := decodeJSON(w, r, &req, msgInvalidData); !ok {
		return
	}

	id, err := h.uc.Create(r.Context(), &domain.Deliveryman{
		Name:     req.Name,
		Email:    req.Email,
		AvatarID: req.AvatarID,
	})
	switch {
	case err == nil:
		h.respondWith(w, r, id)
	case errors.Is(err, apperr.ErrInvalid):
		writeError(w, r, http.StatusBadRequest, msgInvalidData)
	default:
		writeError(w, r, http.StatusInternalServerError, msgInternal)
	}
}

// Update handles PUT /deliveryman with partial updates from the request body.
func (h *DeliverymanHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateDeliverymanRequest
	if ok := decodeJSON(w, r, &req, msgInvalidData); !ok {
		return
	}

	_, err := h.uc.UpdatePartial(r.Context(), domain.PartialDeliverymanUpdate{
		ID:       req.ID,
		Name:     req.Name,
		Email:    req.Email,
		AvatarID: req.AvatarID,
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

// Delete handles DELETE /deliveryman/{id}.
func (h *DeliverymanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, msgIDRequired)
		return
	}

	err = h.uc.Delete(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, msgResponse{Msg: msgDeliverymanDeleted})
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusBadRequest, msgInvalidID)
	default:
		writeError(w, r, http.StatusInternalServerError, msgInternal)
	}
}

// respondWith loads the stored row so responses carry the avatar association.
func (h *DeliverymanHandler) respondWith(w http.ResponseWriter, r *http.Request, id int64) {
	d, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, r, http.StatusOK, toDeliverymanDTO(*d))
}
