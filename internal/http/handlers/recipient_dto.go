package handlers

type recipientDTO struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Street            string `json:"street"`
	Number            string `json:"number"`
	AdditionalAddress string `json:"additional_address"`
	State             string `json:"state"`
	City              string `json:"city"`
	ZipCode           string `json:"zip_code"`
}

type recipientIndexResponse struct {
	Recipients []recipientDTO `json:"recipients"`
	MaxPage    int            `json:"maxPage"`
}

type createRecipientRequest struct {
	Name              string `json:"name"`
	Street            string `json:"street"`
	Number            string `json:"number"`
	AdditionalAddress string `json:"additional_address"`
	State             string `json:"state"`
	City              string `json:"city"`
	ZipCode           string `json:"zip_code"`
}

type updateRecipientRequest struct {
	ID                int64   `json:"id"`
	Name              *string `json:"name,omitempty"`
	Street            *string `json:"street,omitempty"`
	Number            *string `json:"number,omitempty"`
	AdditionalAddress *string `json:"additional_address,omitempty"`
	State             *string `json:"state,omitempty"`
	City              *string `json:"city,omitempty"`
	ZipCode           *string `json:"zip_code,omitempty"`
}
