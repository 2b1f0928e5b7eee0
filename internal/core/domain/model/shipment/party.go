package shipment

import (
	"errors"
	"strings"

	"parcel/internal/pkg/errs"
)

// Party holds the contact details of a sender or a recipient.
type Party struct {
	name    string
	phone   string
	address string
}

// NewSender requires name and phone.
func NewSender(name, phone string) (Party, error) {
	return newParty(name, phone, "", false)
}

// NewRecipient requires name, phone and a delivery address.
func NewRecipient(name, phone, address string) (Party, error) {
	return newParty(name, phone, address, true)
}

func newParty(name, phone, address string, addressRequired bool) (Party, error) {
	p := Party{
		name:    strings.TrimSpace(name),
		phone:   strings.TrimSpace(phone),
		address: strings.TrimSpace(address),
	}

	var errName, errPhone, errAddress error
	if p.name == "" {
		errName = errs.NewValueIsRequiredError("name")
	}
	if p.phone == "" {
		errPhone = errs.NewValueIsRequiredError("phone")
	}
	if addressRequired && p.address == "" {
		errAddress = errs.NewValueIsRequiredError("address")
	}
	if err := errors.Join(errName, errPhone, errAddress); err != nil {
		return Party{}, err
	}

	return p, nil
}

func (p Party) Name() string    { return p.name }
func (p Party) Phone() string   { return p.phone }
func (p Party) Address() string { return p.address }
