package handlers

import "service-delivery-admin/internal/domain"

func toOrderDTO(o domain.Order) orderDTO {
	dto := orderDTO{
		ID:            o.ID,
		Product:       o.Product,
		RecipientID:   o.RecipientID,
		DeliverymanID: o.DeliverymanID,
		CanceledAt:    o.CanceledAt,
		StartDate:     o.StartDate,
		EndDate:       o.EndDate,
	}
	if o.Signature != nil {
		dto.Signature = &fileDTO{Path: o.Signature.Path, URL: o.Signature.URL}
	}
	if o.Deliveryman != nil {
		dto.Deliveryman = &deliverymanSummaryDTO{ID: o.Deliveryman.ID, Name: o.Deliveryman.Name}
	}
	if o.Recipient != nil {
		rec := toRecipientDTO(*o.Recipient)
		dto.Recipient = &rec
	}
	return dto
}

func toOrderDTOs(list []domain.Order) []orderDTO {
	out := make([]orderDTO, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderDTO(o))
	}
	return out
}
