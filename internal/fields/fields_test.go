package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	f := Split("5FNYF5H59HB011946")
	assert.Equal(t, "5FN", f.WMI3)
	assert.Equal(t, "YF5H5", f.VDS)
	assert.Equal(t, byte('9'), f.CheckChar)
	assert.Equal(t, "HB011946", f.VIS)
	assert.Equal(t, byte('H'), f.YearChar)
	assert.Equal(t, byte('H'), f.CycleChar)
	assert.Equal(t, byte('B'), f.PlantChar)
	assert.Equal(t, "011", f.WMI6Suffix)
}

func TestKeyChar(t *testing.T) {
	f := Split("KNDCE3LG2L5073161")
	assert.Equal(t, byte('C'), f.KeyChar(4))
	assert.Equal(t, byte('G'), f.KeyChar(8))
	assert.Equal(t, byte('2'), f.KeyChar(9))
	assert.Equal(t, byte('L'), f.KeyChar(10))
}
