package handlers

import (
	"errors"
	"net/http"

	"service-delivery-admin/internal/apperr"
	"service-delivery-admin/internal/domain"
)

const (
	msgRecipientBadQuery = "Recipient name must be a string and page must be a number!"
	msgRecipientDeleted  = "Recipient was deleted!"
)

// RecipientHandler serves HTTP endpoints for recipient resources.
type RecipientHandler struct{ uc recipientUsecase }

// NewRecipientHandler wires a recipientUsecase into HTTP handlers.
func NewRecipientHandler(uc recipientUsecase) *RecipientHandler {
	return &RecipientHandler{uc: uc}
}

// Index handles GET /recipients with optional name filter and page.
func (h *RecipientHandler) Index(w http.ResponseWriter, r *http.Request) {
	page, ok := pageFromQuery(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, msgRecipientBadQuery)
		return
	}

	list, maxPage, err := h.uc.List(r.Context(), r.URL.Query().Get("name"), page)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, r, http.StatusOK, recipientIndexResponse{
		Recipients: toRecipientDTOs(list),
		MaxPage:    maxPage,
	})
}

// Show handles GET /recipients/{id}.
func (h *RecipientHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, msgIDRequired)
		return
	}

	rec, err := h.uc.Get(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, toRecipientDTO(*rec))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, msgNotFound)
	default:
		writeError(w, r, http.StatusInternalServerError, msgInternal)
	}
}

// Store handles POST /recipients.
func (h *RecipientHandler) Store(w http.ResponseWriter, r *http.Request) {
	var req createRecipientRequest
	if ok := decodeJSON(w, r, &req, msgInvalidData); !ok {
		return
	}

	id, err := h.uc.Create(r.Context(), &domain.Recipient{
		Name:              req.Name,
		Street:            req.Street,
		Number:            req.Number,
		AdditionalAddress: req.AdditionalAddress,
		State:             req.State,
		City:              req.City,
		ZipCode:           req.ZipCode,
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

// Update handles PUT /recipients with partial updates from the request body.
func (h *RecipientHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRecipientRequest
	if ok := decodeJSON(w, r, &req, msgInvalidData); !ok {
		return
	}

	_, err := h.uc.UpdatePartial(r.Context(), domain.PartialRecipientUpdate{
		ID:                req.ID,
		Name:              req.Name,
		Street:            req.Street,
		Number:            req.Number,
		AdditionalAddress: req.AdditionalAddress,
		State:             req.State,
		City:              req.City,
		ZipCode:           req.ZipCode,
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

// Delete handles DELETE /recipients/{id}.
func (h *RecipientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, msgIDRequired)
		return
	}

	err = h.uc.Delete(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, msgResponse{Msg: msgRecipientDeleted})
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusBadRequest, msgInvalidID)
	default:
		writeError(w, r, http.StatusInternalServerError, msgInternal)
	}
}

func (h *RecipientHandler) respondWith(w http.ResponseWriter, r *http.Request, id int64) {
	rec, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, r, http.StatusOK, toRecipientDTO(*rec))
}
