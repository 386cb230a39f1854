package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUint(t *testing.T) {
	assert.Equal(t, uint(42), parseUint("42"))
	assert.Equal(t, uint(0), parseUint("0"))
	assert.Equal(t, uint(0), parseUint(""))
	assert.Equal(t, uint(0), parseUint("not-a-number"))
	assert.Equal(t, uint(0), parseUint("-5"))
	assert.Equal(t, uint(0), parseUint("12.5"))
}
