package dashboard

import (
	"github.com/furniture-crm/crm-cli/internal/pkg/model"
)

// ModalState is one of ModalClosed, ModalCreating and ModalEditing.
// The edited customer exists only within ModalEditing, so an open flag and an edit target cannot disagree.
type ModalState interface {
	isModalState()
}

type ModalClosed struct{}

type ModalCreating struct{}

type ModalEditing struct {
	Customer model.Customer
}

func (ModalClosed) isModalState()   {}
func (ModalCreating) isModalState() {}
func (ModalEditing) isModalState()  {}

func (d *Dashboard) Modal() ModalState {
	return d.modal
}

func (d *Dashboard) OpenAdd() {
	d.modal = ModalCreating{}
}

func (d *Dashboard) OpenEdit(customer model.Customer) {
	d.modal = ModalEditing{Customer: customer}
}

func (d *Dashboard) CloseModal() {
	d.modal = ModalClosed{}
}
