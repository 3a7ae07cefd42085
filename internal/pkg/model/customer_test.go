package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furniture-crm/crm-cli/internal/pkg/encoding/json"
)

func TestCustomerPatch_OmitsNilFields(t *testing.T) {
	t.Parallel()
	name := "Bob"
	assert.JSONEq(t, `{"name":"Bob"}`, json.MustEncodeString(CustomerPatch{Name: &name}, false))
	assert.JSONEq(t,
		`{"name":"Bob","email":"bob@example.com","phone":""}`,
		json.MustEncodeString(PatchFromFields(CustomerFields{Name: "Bob", Email: "bob@example.com"}), false),
	)
	assert.True(t, CustomerPatch{}.IsEmpty())
	assert.False(t, CustomerPatch{Name: &name}.IsEmpty())
}

func TestValidateCustomerList(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateCustomerList([]Customer{{ID: 1}, {ID: 2}}))
	assert.NoError(t, ValidateCustomerList(nil))

	err := ValidateCustomerList([]Customer{{ID: 1}, {ID: 2}, {ID: 1}})
	require.Error(t, err)
	assert.Equal(t, `- duplicate customer id "1"`, err.Error())
}

func TestFindCustomer(t *testing.T) {
	t.Parallel()
	customers := []Customer{{ID: 1, Name: "Alice"}, {ID: 7, Name: "Bob"}}
	c, found := FindCustomer(customers, 7)
	assert.True(t, found)
	assert.Equal(t, "Bob", c.Name)
	_, found = FindCustomer(customers, 3)
	assert.False(t, found)
}
