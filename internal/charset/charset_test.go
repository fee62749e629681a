package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidChar(t *testing.T) {
	for _, c := range []byte("0123456789ABCDEFGHJKLMNPRSTUVWXYZ") {
		assert.True(t, IsValidChar(c), "expected %q to be valid", c)
	}
	for _, c := range []byte("IOQ") {
		assert.False(t, IsValidChar(c), "expected %q to be forbidden", c)
	}
	assert.False(t, IsValidChar('a'))
	assert.False(t, IsValidChar('#'))
}

func TestValue(t *testing.T) {
	cases := map[byte]int{
		'0': 0, '9': 9,
		'A': 1, 'H': 8, 'J': 1, 'P': 7, 'R': 9, 'Z': 9,
	}
	for c, want := range cases {
		got, ok := Value(c)
		assert.True(t, ok)
		assert.Equal(t, want, got, "char %q", c)
	}

	_, ok := Value('I')
	assert.False(t, ok)
}

func TestYearBase(t *testing.T) {
	y, ok := YearBase('A')
	assert.True(t, ok)
	assert.Equal(t, 1980, y)

	y, ok = YearBase('9')
	assert.True(t, ok)
	assert.Equal(t, 2009, y)

	_, ok = YearBase('0')
	assert.False(t, ok)

	_, ok = YearBase('U')
	assert.False(t, ok)
}

func TestWeightsShape(t *testing.T) {
	assert.Len(t, Weights, Length)
	assert.Equal(t, 0, Weights[CheckDigitPosition-1])
}
