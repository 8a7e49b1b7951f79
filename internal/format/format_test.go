package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Currency(t *testing.T) {
	f, err := New("en", "USD")
	require.NoError(t, err)

	got := f.Currency(1234.5)
	assert.Contains(t, got, "USD")
	assert.Contains(t, got, "1,234.50")
}

func TestFormatter_Numbers(t *testing.T) {
	f, err := New("en", "EUR")
	require.NoError(t, err)

	assert.Equal(t, "12,000", f.Count(12000))
	assert.Contains(t, f.Amount(10), "10.00")
	assert.Contains(t, f.Percent(0.5), "50")
}

func TestNew_Invalid(t *testing.T) {
	_, err := New("en", "dollars")
	assert.ErrorIs(t, err, ErrInvalidCurrency)

	_, err = New("not a locale!", "USD")
	assert.ErrorIs(t, err, ErrInvalidLocale)
}
