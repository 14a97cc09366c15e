package oerror

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "configuration error: unknown key x", New("unknown key %s", "x").Error())
	assert.Equal(t, "precondition error: 2", NewPrecondition("%d", 2).Error())
	assert.Equal(t, "hook error: boom", NewHook("boom").Error())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
