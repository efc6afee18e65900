// Package bandplan describes the frequency ranges the DM-32 can tune and the
// standard CTCSS tone set.
package bandplan

import (
	"sort"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/model"
)

// BandName is the name of a frequency band.
type BandName string

// Bands the radio covers.
const (
	BandUnknown BandName = "Unknown"
	BandVHF     BandName = "VHF"
	BandUHF     BandName = "UHF"
)

// Band is an inclusive frequency range.
type Band struct {
	Name BandName
	From model.Frequency
	To   model.Frequency
}

// Contains indicates if the band contains the given frequency.
func (b Band) Contains(f model.Frequency) bool {
	return f >= b.From && f <= b.To
}

// UnknownBand contains no frequency.
var UnknownBand = Band{Name: BandUnknown}

// Bandplan is an ordered set of bands.
type Bandplan []Band

// ByFrequency returns the band for the matching frequency.
func (p Bandplan) ByFrequency(f model.Frequency) Band {
	for _, b := range p {
		if b.Contains(f) {
			return b
		}
	}
	return UnknownBand
}

// Contains reports whether any band holds f.
func (p Bandplan) Contains(f model.Frequency) bool {
	return p.ByFrequency(f).Name != BandUnknown
}

// DM32 is the transceiver's transmit and receive coverage.
var DM32 = Bandplan{
	{Name: BandVHF, From: model.MHz(136), To: model.MHz(174)},
	{Name: BandUHF, From: model.MHz(400), To: model.MHz(480)},
}

// StandardTones is the EIA CTCSS tone list in tenths of a hertz, ascending.
var StandardTones = []model.Tone{
	670, 693, 719, 744, 770, 797, 825, 854, 885, 915,
	948, 974, 1000, 1035, 1072, 1109, 1148, 1188, 1230, 1273,
	1318, 1365, 1413, 1462, 1500, 1514, 1567, 1598, 1622, 1655,
	1679, 1713, 1738, 1773, 1799, 1835, 1862, 1899, 1928, 1966,
	1995, 2035, 2065, 2107, 2181, 2257, 2291, 2336, 2418, 2503,
	2541,
}

// IsStandardTone reports whether t is NoTone or one of StandardTones.
func IsStandardTone(t model.Tone) bool {
	if t == model.NoTone {
		return true
	}
	i := sort.Search(len(StandardTones), func(i int) bool { return StandardTones[i] >= t })
	return i < len(StandardTones) && StandardTones[i] == t
}
