package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneNumber(t *testing.T) {
	t.Run("adds leading plus", func(t *testing.T) {
		assert.Equal(t, "+919876543210", NormalizePhoneNumber("919876543210"))
	})

	t.Run("keeps existing plus", func(t *testing.T) {
		assert.Equal(t, "+919876543210", NormalizePhoneNumber("+919876543210"))
	})

	t.Run("removes spaces and dashes", func(t *testing.T) {
		assert.Equal(t, "+919876543210", NormalizePhoneNumber(" +91 98765-43210 "))
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		assert.Equal(t, "", NormalizePhoneNumber("   "))
	})
}

func TestValidatePhoneNumber(t *testing.T) {
	t.Run("accepts normalized number", func(t *testing.T) {
		assert.NoError(t, ValidatePhoneNumber("+919876543210"))
	})

	t.Run("rejects missing plus", func(t *testing.T) {
		assert.Error(t, ValidatePhoneNumber("919876543210"))
	})

	t.Run("rejects non digits", func(t *testing.T) {
		assert.Error(t, ValidatePhoneNumber("+91abc6543210"))
	})

	t.Run("rejects leading zero country code", func(t *testing.T) {
		assert.Error(t, ValidatePhoneNumber("+0919876543210"))
	})

	t.Run("rejects too short", func(t *testing.T) {
		assert.Error(t, ValidatePhoneNumber("+12345"))
	})

	t.Run("rejects too long", func(t *testing.T) {
		assert.Error(t, ValidatePhoneNumber("+1234567890123456"))
	})

	t.Run("rejects empty", func(t *testing.T) {
		assert.Error(t, ValidatePhoneNumber(""))
	})
}
