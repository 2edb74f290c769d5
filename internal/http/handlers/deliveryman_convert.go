package handlers

import "service-delivery-admin/internal/domain"

func toDeliverymanDTO(d domain.Deliveryman) deliverymanDTO {
	dto := deliverymanDTO{
		ID:    d.ID,
		Name:  d.Name,
		Email: d.Email,
	}
	if d.Avatar != nil {
		dto.Avatar = &fileDTO{Path: d.Avatar.Path, URL: d.Avatar.URL}
	}
	return dto
}

func toDeliverymanDTOs(list []domain.Deliveryman) []deliverymanDTO {
	out := make([]deliverymanDTO, 0, len(list))
	for _, d := range list {
		out = append(out, toDeliverymanDTO(d))
	}
	return out
}
