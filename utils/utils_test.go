package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalDate(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"2024-06-05", "20240605"},
		{"1999-12-31", "19991231"},
		{" 2024-01-01 ", "20240101"},
	}
	for _, tt := range tests {
		got, err := CanonicalDate(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got)
	}
}

func TestCanonicalDate_Invalid(t *testing.T) {
	for _, raw := range []string{"", "20240605", "2024/06/05", "2024-13-01", "june 5"} {
		_, err := CanonicalDate(raw)
		assert.ErrorIs(t, err, ErrBadDate, raw)
	}
}

func TestPrettyDate(t *testing.T) {
	assert.Equal(t, "June 05, 2024", PrettyDate("20240605"))
	assert.Equal(t, "garbage", PrettyDate("garbage"))
}

func TestCalories(t *testing.T) {
	assert.Equal(t, 165.0, Calories(30, 0, 5))
	assert.Equal(t, 0.0, Calories(0, 0, 0))
	assert.Equal(t, 4*1.5+4*2.5+9*0.5, Calories(1.5, 2.5, 0.5))
}

func TestCapitalizeName(t *testing.T) {
	assert.Equal(t, "Chicken", CapitalizeName("chicken"))
	assert.Equal(t, "Chicken", CapitalizeName("CHICKEN"))
	assert.Equal(t, "Chicken breast", CapitalizeName("  chicken Breast "))
	assert.Equal(t, "Épinards", CapitalizeName("épinards"))
	assert.Equal(t, "", CapitalizeName("   "))
}
