package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeInYearsAt(t *testing.T) {
	at := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("birthday already passed this year", func(t *testing.T) {
		dob := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 6, AgeInYearsAt(dob, at))
	})

	t.Run("birthday not yet reached this year", func(t *testing.T) {
		dob := time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 5, AgeInYearsAt(dob, at))
	})

	t.Run("birthday today counts as completed year", func(t *testing.T) {
		dob := time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 6, AgeInYearsAt(dob, at))
	})

	t.Run("future dob clamps to zero", func(t *testing.T) {
		dob := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 0, AgeInYearsAt(dob, at))
	})
}

func TestIsPediatric(t *testing.T) {
	at := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("newborn is pediatric", func(t *testing.T) {
		dob := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		assert.True(t, IsPediatric(dob, at))
	})

	t.Run("one year old is pediatric", func(t *testing.T) {
		dob := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		assert.True(t, IsPediatric(dob, at))
	})

	t.Run("exactly two years old is not pediatric", func(t *testing.T) {
		dob := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
		assert.False(t, IsPediatric(dob, at))
	})

	t.Run("adult is not pediatric", func(t *testing.T) {
		dob := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
		assert.False(t, IsPediatric(dob, at))
	})
}

func TestParseDateOfBirth(t *testing.T) {
	t.Run("parses layout", func(t *testing.T) {
		parsed, err := ParseDateOfBirth("2024-02-29")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		_, err := ParseDateOfBirth("29-02-2024")
		assert.Error(t, err)
	})
}
