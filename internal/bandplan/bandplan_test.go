package bandplan

import (
	"sort"
	"testing"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestByFrequency(t *testing.T) {
	tests := []struct {
		mhz  float64
		want BandName
	}{
		{146.52, BandVHF},
		{136, BandVHF},
		{174, BandVHF},
		{174.001, BandUnknown},
		{446, BandUHF},
		{480, BandUHF},
		{29.6, BandUnknown},
		{223.5, BandUnknown},
		{900, BandUnknown},
	}
	for _, tt := range tests {
		got := DM32.ByFrequency(model.MHz(tt.mhz))
		assert.Equal(t, tt.want, got.Name, "%v MHz", tt.mhz)
		assert.Equal(t, tt.want != BandUnknown, DM32.Contains(model.MHz(tt.mhz)))
	}
}

func TestStandardTonesSorted(t *testing.T) {
	assert.Len(t, StandardTones, 51)
	assert.True(t, sort.SliceIsSorted(StandardTones, func(i, j int) bool {
		return StandardTones[i] < StandardTones[j]
	}))
}

func TestIsStandardTone(t *testing.T) {
	assert.True(t, IsStandardTone(model.NoTone))
	assert.True(t, IsStandardTone(670))
	assert.True(t, IsStandardTone(1000))
	assert.True(t, IsStandardTone(2541))
	assert.False(t, IsStandardTone(1001))
	assert.False(t, IsStandardTone(600))
	assert.False(t, IsStandardTone(3000))
}
