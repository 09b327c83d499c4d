package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairKeyUnordered(t *testing.T) {
	assert.Equal(t, pairKey(3, 7), pairKey(7, 3))
	assert.NotEqual(t, pairKey(3, 7), pairKey(3, 8))
}
