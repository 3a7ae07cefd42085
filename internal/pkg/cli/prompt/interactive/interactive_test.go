package interactive

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTerminal(t *testing.T) {
	t.Parallel()
	// Buffers have no file descriptor.
	assert.False(t, IsTerminal(&bytes.Buffer{}, &bytes.Buffer{}))
	assert.False(t, IsTerminal(nil, nil))
}
