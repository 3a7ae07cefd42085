// Package model contains records exchanged with the CRM API.
package model

import (
	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

// Customer is a customer record as returned by the API.
type Customer struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	TotalOrders int     `json:"totalOrders"`
	TotalSpent  float64 `json:"totalSpent"`
}

// CustomerFields is the payload of a create request.
type CustomerFields struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CustomerPatch is the payload of an update request, nil fields are not sent.
type CustomerPatch struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// PatchFromFields creates a patch which overwrites all editable fields.
func PatchFromFields(f CustomerFields) CustomerPatch {
	return CustomerPatch{Name: &f.Name, Email: &f.Email, Phone: &f.Phone}
}

func (p CustomerPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil
}

// Fields returns the editable fields, they pre-fill the edit form.
func (c Customer) Fields() CustomerFields {
	return CustomerFields{Name: c.Name, Email: c.Email, Phone: c.Phone}
}

// ValidateCustomerList checks that ids are unique within a fetched list.
func ValidateCustomerList(customers []Customer) error {
	errs := errors.NewMultiError()
	seen := make(map[int]bool, len(customers))
	for _, c := range customers {
		if seen[c.ID] {
			errs.Append(errors.Errorf(`duplicate customer id "%d"`, c.ID))
		}
		seen[c.ID] = true
	}
	return errs.ErrorOrNil()
}

func FindCustomer(customers []Customer, id int) (Customer, bool) {
	for _, c := range customers {
		if c.ID == id {
			return c, true
		}
	}
	return Customer{}, false
}
