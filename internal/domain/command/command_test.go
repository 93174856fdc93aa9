package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryCommandHasLabelAndKeys(t *testing.T) {
	for _, id := range Order {
		assert.NotEmpty(t, Labels[id], id)
		assert.NotEmpty(t, DefaultKeys[id], id)
	}
	assert.Len(t, Labels, len(Order))
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("split-vertical"))
	assert.False(t, Known("zoom-pane"))
	assert.False(t, Known(""))
}
