package address

import domain "github.com/mohammadpnp/contact-book/internal/domain/address"

type AddressOutput struct {
	ID         int64   `json:"id"`
	Street     *string `json:"street,omitempty"`
	City       *string `json:"city,omitempty"`
	Province   *string `json:"province,omitempty"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
}

func toOutput(a domain.Address) AddressOutput {
	return AddressOutput{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}
