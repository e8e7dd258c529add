package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPlate(t *testing.T) {
	assert.True(t, IsValidPlate("ABC1234"))
	assert.True(t, IsValidPlate("ABC1D23"))
	assert.False(t, IsValidPlate("abc1234"))
	assert.False(t, IsValidPlate("ABCD123"))
	assert.False(t, IsValidPlate("AB12345"))
	assert.False(t, IsValidPlate(""))
}

func TestIsValidChassis(t *testing.T) {
	assert.True(t, IsValidChassis("9BWZZZ377VT004251"))
	assert.False(t, IsValidChassis("9BWZZZ377VT00425"))
	assert.False(t, IsValidChassis(""))
}

func TestIsValidCPF(t *testing.T) {
	assert.True(t, IsValidCPF("12345678901"))
	assert.False(t, IsValidCPF("1234567890"))
	assert.False(t, IsValidCPF("123456789012"))
	assert.False(t, IsValidCPF("1234567890a"))
}

func TestIsValidFuelLevel(t *testing.T) {
	assert.True(t, IsValidFuelLevel(0))
	assert.True(t, IsValidFuelLevel(100))
	assert.True(t, IsValidFuelLevel(50.5))
	assert.False(t, IsValidFuelLevel(-1))
	assert.False(t, IsValidFuelLevel(100.01))
}

func TestIsValidMileage(t *testing.T) {
	assert.True(t, IsValidMileage(1))
	assert.False(t, IsValidMileage(0))
	assert.False(t, IsValidMileage(-5))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("driver@example.com"))
	assert.False(t, IsValidEmail("driver@example"))
	assert.False(t, IsValidEmail("not-an-email"))
}
