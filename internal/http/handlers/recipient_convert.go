package handlers

import "service-delivery-admin/internal/domain"

func toRecipientDTO(rec domain.Recipient) recipientDTO {
	return recipientDTO{
		ID:                rec.ID,
		Name:              rec.Name,
		Street:            rec.Street,
		Number:            rec.Number,
		AdditionalAddress: rec.AdditionalAddress,
		State:             rec.State,
		City:              rec.City,
		ZipCode:           rec.ZipCode,
	}
}

func toRecipientDTOs(list []domain.Recipient) []recipientDTO {
	out := make([]recipientDTO, 0, len(list))
	for _, rec := range list {
		out = append(out, toRecipientDTO(rec))
	}
	return out
}
