package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSigle(t *testing.T) {
	assert.True(t, IsValidSigle("INF1062"))
	assert.True(t, IsValidSigle(" inf1062 "))
	assert.False(t, IsValidSigle("INF106"))
	assert.False(t, IsValidSigle("INF10622"))
	assert.False(t, IsValidSigle("1062INF"))
	assert.False(t, IsValidSigle(""))
}

func TestParseSigles(t *testing.T) {
	assert.Equal(t, []string{"INF1000", "MTH1000"}, ParseSigles("INF1000, MTH1000"))
	assert.Equal(t, []string{"INF1000"}, ParseSigles("inf1000 ou inf1000"))
	assert.Equal(t, []string{"INF1000", "MTH1007"}, ParseSigles("INF1000 et MTH1007 obligatoires"))
	assert.Nil(t, ParseSigles(""))
	assert.Nil(t, ParseSigles("aucun préalable"))
}
