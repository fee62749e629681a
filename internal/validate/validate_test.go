package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Valid(t *testing.T) {
	res, err := Validate("4T1BE46K19U856421", false)
	require.NoError(t, err)
	assert.Equal(t, "4T1BE46K19U856421", res.Canonical)
	assert.False(t, res.Corrected)
}

func TestValidate_LowercaseAccepted(t *testing.T) {
	res, err := Validate("4t1be46k19u856421", false)
	require.NoError(t, err)
	assert.Equal(t, "4T1BE46K19U856421", res.Canonical)
}

func TestValidate_WrongLength(t *testing.T) {
	_, err := Validate("4T1BE46K19U85642", false)
	require.Error(t, err)
	var lenErr *InvalidLengthError
	require.ErrorAs(t, err, &lenErr)
	assert.Equal(t, 16, lenErr.Length)
}

func TestValidate_ForbiddenLetters(t *testing.T) {
	for _, bad := range []byte("IOQ") {
		vin := []byte("4T1BE46K19U856421")
		vin[3] = bad
		_, err := Validate(string(vin), false)
		require.Error(t, err)
		var charErr *InvalidCharacterError
		require.ErrorAs(t, err, &charErr)
		assert.Equal(t, 4, charErr.Position)
	}
}

func TestValidate_BadCheckDigit_NoCorrection(t *testing.T) {
	_, err := Validate("4T1BE46K09U856421", false)
	require.Error(t, err)
	var cdErr *InvalidCheckDigitError
	require.ErrorAs(t, err, &cdErr)
	assert.Equal(t, byte('1'), cdErr.Expected)
	assert.Equal(t, byte('0'), cdErr.Got)
}

func TestValidate_BadCheckDigit_Corrected(t *testing.T) {
	res, err := Validate("4T1BE46K09U856421", true)
	require.NoError(t, err)
	assert.True(t, res.Corrected)
	assert.Equal(t, "4T1BE46K19U856421", res.Canonical)
}

func TestValidate_CorrectionDiffersOnlyAtPosition9(t *testing.T) {
	original := "4T1BE46K09U856421"
	res, err := Validate(original, true)
	require.NoError(t, err)

	diffCount := 0
	diffPos := -1
	for i := 0; i < len(original); i++ {
		if original[i] != res.Canonical[i] {
			diffCount++
			diffPos = i
		}
	}
	assert.LessOrEqual(t, diffCount, 1)
	if diffCount == 1 {
		assert.Equal(t, 8, diffPos) // 0-based index of position 9
	}
}

func TestValidate_NonASCIIThatShrinksUnderUnicodeUppercasingIsRejected(t *testing.T) {
	// U+017F LATIN SMALL LETTER LONG S ('ſ') is 2 bytes in UTF-8 but
	// uppercases to the 1-byte ASCII 'S' under full Unicode case
	// folding. A naive strings.ToUpper would shrink this 17-byte input
	// to 16 bytes, all ASCII, skipping the character-set check entirely
	// and then indexing past the end of the buffer in CheckDigit.
	// Validate must reject it as an invalid character instead.
	vin := "ſ" + "FNYF5H59HB01194"
	require.Equal(t, 17, len(vin))

	_, err := Validate(vin, false)
	require.Error(t, err)
	var charErr *InvalidCharacterError
	require.ErrorAs(t, err, &charErr)
	assert.Equal(t, 1, charErr.Position)
}

func TestCheckDigit_KnownVINs(t *testing.T) {
	cases := map[string]byte{
		"5FNYF5H59HB011946": '9',
		"YT9NN1U14KA007175": '4',
		"KNDCE3LG2L5073161": '2',
		"4T1BE46K19U856421": '1',
	}
	for vin, want := range cases {
		got, err := CheckDigit(vin)
		require.NoError(t, err)
		assert.Equal(t, want, got, "vin %s", vin)
	}
}
