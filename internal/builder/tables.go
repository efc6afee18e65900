package builder

import (
	"fmt"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/model"
)

// StaticChannel is one fixed simplex entry.
type StaticChannel struct {
	Name string          `json:"name"`
	Freq model.Frequency `json:"freq"`
}

// Table is a built-in channel list for one service.
type Table struct {
	Category  model.Category  `json:"category"`
	Bandwidth model.Bandwidth `json:"bandwidth"`
	Channels  []StaticChannel `json:"channels"`
}

func mhz(name string, v float64) StaticChannel {
	return StaticChannel{Name: name, Freq: model.MHz(v)}
}

func gmrs() []StaticChannel {
	freqs := []float64{
		462.5625, 462.5875, 462.6125, 462.6375, 462.6625, 462.6875, 462.7125,
		467.5625, 467.5875, 467.6125, 467.6375, 467.6625, 467.6875, 467.7125,
		462.55, 462.575, 462.6, 462.625, 462.65, 462.675, 462.7, 462.725,
	}
	out := make([]StaticChannel, len(freqs))
	for i, f := range freqs {
		out[i] = mhz(fmt.Sprintf("GMRS/FRS %02d", i+1), f)
	}
	return out
}

func murs() []StaticChannel {
	freqs := []float64{151.820, 151.880, 151.940, 154.570, 154.600}
	out := make([]StaticChannel, len(freqs))
	for i, f := range freqs {
		out[i] = mhz(fmt.Sprintf("MURS %d", i+1), f)
	}
	return out
}

func noaa() []StaticChannel {
	out := make([]StaticChannel, 7)
	for i := range out {
		out[i] = StaticChannel{
			Name: fmt.Sprintf("NOAA WX %d", i+1),
			Freq: model.MHz(162.400) + model.Frequency(i)*25000,
		}
	}
	return out
}

var tables = map[model.Category]Table{
	model.CategoryGMRS: {
		Category:  model.CategoryGMRS,
		Bandwidth: model.Narrow,
		Channels:  gmrs(),
	},
	model.CategoryMURS: {
		Category:  model.CategoryMURS,
		Bandwidth: model.Narrow,
		Channels:  murs(),
	},
	model.CategoryAirband: {
		Category:  model.CategoryAirband,
		Bandwidth: model.Wide,
		Channels: []StaticChannel{
			mhz("Air 121.5 Emergency", 121.500),
			mhz("Air 122.75 Air-to-Air", 122.750),
			mhz("Air 122.8 Unicom", 122.800),
			mhz("Air 123.0 Unicom", 123.000),
			mhz("Air 123.025 Helicopter", 123.025),
			mhz("Air 123.45 Air-to-Air", 123.450),
			mhz("Air 123.1 SAR", 123.100),
		},
	},
	model.CategoryMarine: {
		Category:  model.CategoryMarine,
		Bandwidth: model.Wide,
		Channels: []StaticChannel{
			mhz("Marine Ch16 Distress", 156.8),
			mhz("Marine Ch13 Nav", 156.65),
			mhz("Marine Ch09 Calling", 156.45),
			mhz("Marine Ch22A USCG", 157.1),
		},
	},
	model.CategoryHamCalling: {
		Category:  model.CategoryHamCalling,
		Bandwidth: model.Narrow,
		Channels: []StaticChannel{
			mhz("2m Calling", 146.520),
			mhz("70cm Calling", 446.000),
			mhz("1.25m Calling", 223.500),
			mhz("6m Calling", 50.125),
			mhz("10m FM Calling", 29.600),
		},
	},
	model.CategoryNOAA: {
		Category:  model.CategoryNOAA,
		Bandwidth: model.Wide,
		Channels:  noaa(),
	},
}

// StaticCategories lists the categories backed by a built-in table, in
// precedence order.
func StaticCategories() []model.Category {
	var out []model.Category
	for _, c := range model.Categories() {
		if _, ok := tables[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// LookupTable returns a copy of the built-in table for c.
func LookupTable(c model.Category) (Table, bool) {
	t, ok := tables[c]
	if !ok {
		return Table{}, false
	}
	t.Channels = append([]StaticChannel(nil), t.Channels...)
	return t, true
}

// PopularTalkgroup is a well-known network talkgroup.
type PopularTalkgroup struct {
	Name string `json:"name"`
	ID   uint32 `json:"id"`
}

// PopularTalkgroups are commonly monitored BrandMeister talkgroups.
var PopularTalkgroups = []PopularTalkgroup{
	{"Worldwide", 91},
	{"North America", 93},
	{"USA Bridge", 3100},
	{"America Link", 31656},
	{"SkyHub Link", 310847},
	{"Midwest Regional", 3169},
	{"Northeast Regional", 3172},
	{"MidAtlantic Regional", 3173},
	{"TX-OK Regional", 3175},
	{"Southwest Regional", 3176},
	{"Mountain Regional", 3177},
	{"First Coast", 31121},
	{"TAC 310", 310},
	{"TAC 311", 311},
	{"TAC 312", 312},
	{"TAC 313", 313},
	{"TAC 314", 314},
	{"TAC 315", 315},
	{"TAC 316", 316},
	{"TAC 317", 317},
	{"TAC 318", 318},
	{"TAC 319", 319},
	{"JOTA", 907},
	{"POTA", 3181},
	{"SOTA", 973},
	{"Parrot", 9990},
}
