package ui

import (
	"bytes"
	"context"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furniture-crm/crm-cli/internal/pkg/model"
)

func TestFormatCurrency(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "$500.50", FormatCurrency(500.5))
	assert.Equal(t, "$50.05", FormatCurrency(50.05))
	assert.Equal(t, "$0.00", FormatCurrency(0))
	assert.Equal(t, "$0.00", FormatCurrency(math.NaN()))
	assert.Equal(t, "$0.00", FormatCurrency(math.Inf(1)))
}

func TestStatsSummary(t *testing.T) {
	t.Parallel()
	s := StatsSummary{Stats: &model.Stats{TotalCustomers: 3, TotalOrders: 10, TotalRevenue: 500.5, AvgOrderValue: 50.05}}
	assert.Equal(t, []StatCell{
		{Label: "Total Customers", Value: "3"},
		{Label: "Total Orders", Value: "10"},
		{Label: "Total Revenue", Value: "$500.50"},
		{Label: "Avg Order Value", Value: "$50.05"},
	}, s.Cells())

	var out bytes.Buffer
	require.NoError(t, s.Render(&out))
	for _, str := range []string{"Total Customers", "Avg Order Value", "$500.50", "$50.05", "10"} {
		assert.Contains(t, out.String(), str)
	}
}

func TestStatsSummary_Missing(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []StatCell{
		{Label: "Total Customers", Value: "0"},
		{Label: "Total Orders", Value: "0"},
		{Label: "Total Revenue", Value: "$0.00"},
		{Label: "Avg Order Value", Value: "$0.00"},
	}, StatsSummary{}.Cells())
}

func TestCustomerTable_States(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		table    CustomerTable
		expected string
	}{
		{name: "loading", table: CustomerTable{Loading: true}, expected: "Loading customers...\n"},
		{name: "empty", table: CustomerTable{}, expected: "No customers found\n"},
		{name: "empty-slice", table: CustomerTable{Customers: []model.Customer{}}, expected: "No customers found\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			require.NoError(t, tc.table.Render(&out))
			assert.Equal(t, tc.expected, out.String())
		})
	}
}

func TestCustomerTable_Rows(t *testing.T) {
	t.Parallel()
	table := CustomerTable{
		Loading: true,
		Customers: []model.Customer{
			{ID: 2, Name: "Bob", Email: "bob@example.com", Phone: "555-0102", TotalOrders: 1, TotalSpent: 99.9},
			{ID: 1, Name: "Alice", Email: "alice@example.com", TotalOrders: 4, TotalSpent: 1200},
		},
	}

	var out bytes.Buffer
	require.NoError(t, table.Render(&out))
	str := out.String()
	assert.NotContains(t, str, LoadingCustomersMessage)
	for _, header := range []string{"ID", "Name", "Email", "Phone", "Orders", "Total Spent"} {
		assert.Contains(t, str, header)
	}
	assert.Contains(t, str, "$99.90")
	assert.Contains(t, str, "$1200.00")
	assert.Less(t, strings.Index(str, "Bob"), strings.Index(str, "Alice"))

	assert.Equal(t, []string{"#2 Bob <bob@example.com>", "#1 Alice <alice@example.com>"}, table.Choices())
}

func TestCustomerTable_Actions(t *testing.T) {
	t.Parallel()
	var edited []model.Customer
	var deleted []int
	table := CustomerTable{
		Customers: []model.Customer{{ID: 7, Name: "Carol"}},
		OnEdit:    func(c model.Customer) { edited = append(edited, c) },
		OnDelete:  func(id int) { deleted = append(deleted, id) },
	}

	require.NoError(t, table.Edit(7))
	require.NoError(t, table.Delete(7))
	assert.Equal(t, []model.Customer{{ID: 7, Name: "Carol"}}, edited)
	assert.Equal(t, []int{7}, deleted)

	err := table.Delete(8)
	require.Error(t, err)
	assert.Equal(t, `customer "8" not found`, err.Error())
	assert.Equal(t, []int{7}, deleted)
	require.Error(t, table.Edit(8))
	assert.Len(t, edited, 1)
}

func TestCustomerForm_New(t *testing.T) {
	t.Parallel()
	form := NewCustomerForm(nil)
	assert.False(t, form.IsEdit())
	assert.Equal(t, "Add Customer", form.Title())
	assert.Equal(t, "Create", form.SubmitLabel())
	assert.Equal(t, model.CustomerFields{}, form.Values())

	fields, err := form.Submit(context.Background(), model.CustomerFields{Name: " Dave ", Email: "dave@example.com ", Phone: ""})
	require.NoError(t, err)
	assert.Equal(t, model.CustomerFields{Name: "Dave", Email: "dave@example.com"}, fields)
}

func TestCustomerForm_Edit(t *testing.T) {
	t.Parallel()
	existing := &model.Customer{ID: 3, Name: "Eve", Email: "eve@example.com", Phone: "555", TotalOrders: 2}
	form := NewCustomerForm(existing)
	assert.True(t, form.IsEdit())
	assert.Equal(t, "Edit Customer", form.Title())
	assert.Equal(t, "Update", form.SubmitLabel())
	assert.Equal(t, model.CustomerFields{Name: "Eve", Email: "eve@example.com", Phone: "555"}, form.Values())
}

func TestCustomerForm_Invalid(t *testing.T) {
	t.Parallel()
	form := NewCustomerForm(nil)

	_, err := form.Submit(context.Background(), model.CustomerFields{Name: "   ", Email: "not-an-email"})
	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "- Name is a required field.\n- Email must be a valid email address.", validationErr.Message())

	_, err = form.Submit(context.Background(), model.CustomerFields{Name: "Frank"})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "- Email is a required field.", validationErr.Message())
}

func TestCustomerForm_SharedValidator(t *testing.T) {
	t.Parallel()
	assert.Same(t, formValidator(), formValidator())

	// Forms are submitted concurrently by the dashboard and the commands
	wg := &sync.WaitGroup{}
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := NewCustomerForm(nil).Submit(context.Background(), model.CustomerFields{Name: "Grace"})
			var validationErr *ValidationError
			if assert.ErrorAs(t, err, &validationErr) {
				assert.Equal(t, "- Email is a required field.", validationErr.Message())
			}
		}()
	}
	wg.Wait()
}

func TestHeader(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	require.NoError(t, Header{Email: "alice@example.com"}.Render(&out, NewTheme(false)))
	assert.Equal(t, "Furniture CRM  alice@example.com\n\n", out.String())
}
