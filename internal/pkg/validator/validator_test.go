package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

type testStruct struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	APIURL      string `name:"API url" validate:"required,url"`
	AuthAnonKey string `validate:"required"`
}

func TestValidator_Struct(t *testing.T) {
	t.Parallel()
	err := New().Struct(context.Background(), testStruct{Email: "foo", APIURL: "not a url"})
	require.Error(t, err)
	assert.Equal(t, "- name is a required field\n- email must be a valid email address\n- API url must be a valid URL\n- auth anon key is a required field", err.Error())

	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "name", fieldErr.Field)
	assert.Equal(t, "required", fieldErr.Tag)
}

func TestValidator_Struct_Valid(t *testing.T) {
	t.Parallel()
	err := New().Struct(context.Background(), testStruct{
		Name:        "Alice",
		Email:       "alice@example.com",
		APIURL:      "http://localhost:3001/api",
		AuthAnonKey: "anon",
	})
	assert.NoError(t, err)
}

func TestValidator_Var(t *testing.T) {
	t.Parallel()
	err := New().Var(context.Background(), "foo", "email", "customer email")
	require.Error(t, err)
	assert.Equal(t, "- customer email must be a valid email address", err.Error())
	assert.NoError(t, New().Var(context.Background(), "a@b.cz", "email", "customer email"))
}
