package modelyear

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode_NumericCycle(t *testing.T) {
	y, ok := Decode('A', '5', 0)
	assert.True(t, ok)
	assert.Equal(t, 1980, y)
}

func TestDecode_AlphabeticCycleBoundary(t *testing.T) {
	// Year code 'A' in a post-2010 vehicle (alphabetic position-7) must
	// decode to 2010, not 1980.
	y, ok := Decode('A', 'H', 0)
	assert.True(t, ok)
	assert.Equal(t, 2010, y)
}

func TestDecode_UnknownZero(t *testing.T) {
	y, ok := Decode('0', 'H', 0)
	assert.False(t, ok)
	assert.Equal(t, Unknown, y)
}

func TestDecode_UnknownUnrecognized(t *testing.T) {
	y, ok := Decode('U', 'H', 0)
	assert.False(t, ok)
	assert.Equal(t, Unknown, y)
}

func TestDecode_ClampToSnapshotMaxYear(t *testing.T) {
	// 'A' in the alphabetic cycle would be 2010; with a snapshot that only
	// knows up to 2005, it must clamp down one full cycle to 1980.
	y, ok := Decode('A', 'H', 2005)
	assert.True(t, ok)
	assert.Equal(t, 1980, y)
}

func TestDecode_KnownVINs(t *testing.T) {
	cases := []struct {
		yearChar, cycleChar byte
		want                int
	}{
		{'H', 'H', 2017}, // 5FNYF5H59HB011946
		{'K', 'U', 2019}, // YT9NN1U14KA007175
		{'L', 'L', 2020}, // KNDCE3LG2L5073161
	}
	for _, c := range cases {
		y, ok := Decode(c.yearChar, c.cycleChar, 0)
		assert.True(t, ok)
		assert.Equal(t, c.want, y)
	}
}
