package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/furniture-crm/crm-cli/internal/pkg/model"
	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

const (
	LoadingCustomersMessage = "Loading customers..."
	NoCustomersMessage      = "No customers found"
)

// CustomerTable lists customers in the order returned by the server.
// Each row has the edit and delete actions, they are triggered by the customer ID.
type CustomerTable struct {
	Customers []model.Customer
	Loading   bool
	OnEdit    func(customer model.Customer)
	OnDelete  func(id int)
}

func (t CustomerTable) Render(w io.Writer) error {
	switch {
	case t.Loading && len(t.Customers) == 0:
		_, err := fmt.Fprintln(w, LoadingCustomersMessage)
		return err
	case len(t.Customers) == 0:
		_, err := fmt.Fprintln(w, NoCustomersMessage)
		return err
	}

	table := newTable(w)
	table.SetHeader([]string{"ID", "Name", "Email", "Phone", "Orders", "Total Spent"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})
	for _, c := range t.Customers {
		table.Append([]string{
			strconv.Itoa(c.ID),
			c.Name,
			c.Email,
			c.Phone,
			FormatCount(c.TotalOrders),
			FormatCurrency(c.TotalSpent),
		})
	}
	table.Render()
	return nil
}

// Choices returns one label per row, for a select prompt.
func (t CustomerTable) Choices() []string {
	out := make([]string, 0, len(t.Customers))
	for _, c := range t.Customers {
		out = append(out, CustomerLabel(c))
	}
	return out
}

// Edit triggers the edit action of the row.
func (t CustomerTable) Edit(id int) error {
	c, found := model.FindCustomer(t.Customers, id)
	if !found {
		return errors.Errorf(`customer "%d" not found`, id)
	}
	if t.OnEdit != nil {
		t.OnEdit(c)
	}
	return nil
}

// Delete triggers the delete action of the row.
func (t CustomerTable) Delete(id int) error {
	if _, found := model.FindCustomer(t.Customers, id); !found {
		return errors.Errorf(`customer "%d" not found`, id)
	}
	if t.OnDelete != nil {
		t.OnDelete(id)
	}
	return nil
}

func CustomerLabel(c model.Customer) string {
	if c.Email == "" {
		return fmt.Sprintf("#%d %s", c.ID, c.Name)
	}
	return fmt.Sprintf("#%d %s <%s>", c.ID, c.Name, c.Email)
}
