package domain

// Recipient represents a delivery recipient and their address.
type Recipient struct {
	ID                int64
	Name              string
	Street            string
	Number            string
	AdditionalAddress string
	State             string
	City              string
	ZipCode           string
}

// PartialRecipientUpdate carries optional fields to update a recipient.
// A nil field means “do not change” that attribute.
type PartialRecipientUpdate struct {
	ID                int64
	Name              *string
	Street            *string
	Number            *string
	AdditionalAddress *string
	State             *string
	City              *string
	ZipCode           *string
}
