package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vpicgo/vindecoder/internal/fields"
	"github.com/vpicgo/vindecoder/internal/snapshot"
)

func loadTestSnapshot(t *testing.T) *snapshot.Snapshot {
	t.Helper()
	s, err := snapshot.Default("", nil)
	require.NoError(t, err)
	return s
}

func TestResolve_WMI6WinsOverWMI3(t *testing.T) {
	snap := loadTestSnapshot(t)
	f := fields.Split("YT9NN1U14KA007175")

	res := Resolve(snap, f, 2019)
	require.True(t, res.WMIFound)
	assert.Equal(t, "Koenigsegg", res.WMI.ManufacturerName)
}

func TestResolve_WMI3WhenNoSuffixMatch(t *testing.T) {
	snap := loadTestSnapshot(t)
	f := fields.Split("YT9NN1U14KA999175") // suffix "999" has no 6-char entry

	res := Resolve(snap, f, 2019)
	require.True(t, res.WMIFound)
	assert.Equal(t, "UNKNOWN MANUFACTURER", res.WMI.ManufacturerName)
}

func TestResolve_KiaElementAssignment(t *testing.T) {
	snap := loadTestSnapshot(t)
	f := fields.Split("KNDCE3LG2L5073161")

	res := Resolve(snap, f, 2020)
	require.True(t, res.WMIFound)
	assert.Equal(t, "Niro", res.Elements["Model"])
	assert.Equal(t, "EX", res.Elements["Series"])
	assert.Equal(t, "Premium", res.Elements["Trim"])
	assert.Equal(t, "Gwangju", res.Elements["Plant City"])
	assert.Equal(t, "SOUTH KOREA", res.Elements["Plant Country"])
}

func TestResolve_ExactPatternBeatsWildcard(t *testing.T) {
	snap := loadTestSnapshot(t)
	f := fields.Split("KNDCE3LG2L5073161")

	res := Resolve(snap, f, 2020)
	// "CE***" also assigns Model = "Sportage", but the exact "CE3LG"
	// pattern is evaluated first and wins.
	assert.Equal(t, "Niro", res.Elements["Model"])
	assert.NotEqual(t, "Sportage", res.Elements["Model"])
}

func TestResolve_YearScopeExcludesOutOfRangePattern(t *testing.T) {
	snap := loadTestSnapshot(t)
	f := fields.Split("KNDCE3LG2L5073161")

	res := Resolve(snap, f, 2018)
	assert.Equal(t, "Touring", res.Elements["Trim"])
}

func TestResolve_UnknownYearOnlyMatchesUnscopedPatterns(t *testing.T) {
	snap := loadTestSnapshot(t)
	f := fields.Split("KNDCE3LG2L5073161")

	res := Resolve(snap, f, 0)
	assert.Equal(t, "Niro", res.Elements["Model"])
	_, hasTrim := res.Elements["Trim"]
	assert.False(t, hasTrim)
}

func TestResolve_UnknownWMI(t *testing.T) {
	snap := loadTestSnapshot(t)
	f := fields.Split("1ZZZZZZZ0ZZZZZZZ1") // contrived, no matching WMI, no patterns either

	res := Resolve(snap, f, 2020)
	assert.False(t, res.WMIFound)
	assert.Empty(t, res.Elements)
}

func TestResolve_PatternsEvaluatedWithoutWMIRecord(t *testing.T) {
	snap := loadTestSnapshot(t)
	f := fields.Split("9PT1234589U012345") // wmi "9PT" has a pattern row but no wmi record

	res := Resolve(snap, f, 2009)
	assert.False(t, res.WMIFound)
	assert.Empty(t, res.WMI.ManufacturerName)
	assert.Equal(t, "Ghost", res.Elements["Model"])
}
