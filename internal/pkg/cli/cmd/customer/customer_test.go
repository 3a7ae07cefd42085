package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	id, err := parseID(" 7")
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	for _, arg := range []string{"", "abc", "0", "-1", "1.5"} {
		_, err := parseID(arg)
		if assert.Error(t, err, arg) {
			assert.Equal(t, `invalid customer id "`+arg+`"`, err.Error())
		}
	}
}

func TestCommands(t *testing.T) {
	t.Parallel()
	cmd := Commands(nil)
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Equal(t, []string{"create", "delete", "list", "update"}, names)

	del, _, err := cmd.Find([]string{"delete"})
	require.NoError(t, err)
	assert.NotNil(t, del.Flags().ShorthandLookup("y"))
}
