package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDefaultsToNopLogger(t *testing.T) {
	assert.NotNil(t, Get())
}

func TestInitProduction(t *testing.T) {
	err := Init(false)
	assert.NoError(t, err)
	assert.NotNil(t, Get())
}

func TestInitVerbose(t *testing.T) {
	err := Init(true)
	assert.NoError(t, err)
	assert.NotNil(t, Get())
}
