package builder

import (
	"errors"
	"testing"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/asciiname"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() *model.TalkgroupTable {
	return model.NewTalkgroupTable([]model.Talkgroup{
		{ID: 91, Name: "Worldwide", CallType: model.GroupCall},
		{ID: 93, Name: "North America", CallType: model.GroupCall},
		{ID: 3100, Name: "USA Nationwide", CallType: model.GroupCall},
		{ID: 31268, Name: "UPTG", CallType: model.GroupCall},
		{ID: 9990, Name: "Parrot", CallType: model.PrivateCall},
	})
}

func assertNamesBounded(t *testing.T, chs []model.Channel) {
	t.Helper()
	for _, ch := range chs {
		assert.True(t, asciiname.Fits(ch.Name, MaxNameLength), "channel name %q", ch.Name)
	}
}

func TestStaticBuilderCounts(t *testing.T) {
	want := map[model.Category]int{
		model.CategoryGMRS:       22,
		model.CategoryMURS:       5,
		model.CategoryAirband:    7,
		model.CategoryMarine:     4,
		model.CategoryHamCalling: 5,
		model.CategoryNOAA:       7,
	}
	require.Len(t, StaticCategories(), len(want))
	for c, n := range want {
		out, err := StaticBuilder{Kind: c, Enabled: true}.Build()
		require.NoError(t, err)
		assert.Len(t, out.Channels, n, c.String())
		assert.Empty(t, out.Rejected)
		assertNamesBounded(t, out.Channels)
		for _, ch := range out.Channels {
			assert.Equal(t, model.Analog, ch.Type)
			assert.Equal(t, model.PowerHigh, ch.Power)
			assert.Equal(t, ch.RX, ch.TX)
			assert.Equal(t, c, ch.Category)
		}
	}
}

func TestStaticBuilderDisabled(t *testing.T) {
	out, err := StaticBuilder{Kind: model.CategoryMURS}.Build()
	require.NoError(t, err)
	assert.Empty(t, out.Channels)

	_, err = StaticBuilder{Kind: model.CategoryTalkgroup, Enabled: true}.Build()
	assert.Error(t, err)
}

func TestStaticTableValues(t *testing.T) {
	gmrs, ok := LookupTable(model.CategoryGMRS)
	require.True(t, ok)
	assert.Equal(t, "GMRS/FRS 01", gmrs.Channels[0].Name)
	assert.Equal(t, "462.56250", gmrs.Channels[0].Freq.String())
	assert.Equal(t, "467.71250", gmrs.Channels[13].Freq.String())
	assert.Equal(t, "462.72500", gmrs.Channels[21].Freq.String())
	assert.Equal(t, model.Narrow, gmrs.Bandwidth)

	noaa, _ := LookupTable(model.CategoryNOAA)
	assert.Equal(t, "162.55000", noaa.Channels[6].Freq.String())
	assert.Equal(t, model.Wide, noaa.Bandwidth)

	out, err := StaticBuilder{Kind: model.CategoryAirband, Enabled: true}.Build()
	require.NoError(t, err)
	assert.Equal(t, "Air 123.025 Heli", out.Channels[4].Name)

	// Copies must not alias the package tables.
	gmrs.Channels[0].Name = "changed"
	again, _ := LookupTable(model.CategoryGMRS)
	assert.Equal(t, "GMRS/FRS 01", again.Channels[0].Name)
}

func TestTalkgroupChannelName(t *testing.T) {
	assert.Equal(t, "Worldwide 91", TalkgroupChannelName("Worldwide", 91, true))
	assert.Equal(t, "N Ameri 93", TalkgroupChannelName("North America", 93, true))
	assert.Equal(t, "Northeast R 3172", TalkgroupChannelName("Northeast Regional", 3172, true))
	assert.Equal(t, "SkyHub Li 310847", TalkgroupChannelName("SkyHub Link", 310847, true))
	assert.Equal(t, "MidAtlantic Regi", TalkgroupChannelName("MidAtlantic Regional", 3173, false))
	assert.Equal(t, "12345678", TalkgroupChannelName("", 12345678, true))
	assert.Equal(t, "World 1234567890", TalkgroupChannelName("Worldwide", 1234567890, true))
}

func TestAnalogBuilder(t *testing.T) {
	out, err := AnalogBuilder{Repeaters: []AnalogRepeater{
		{Name: "KE8IL UHF", RX: "444.800", TX: "449.800", CTCSS: "100.0"},
		{Name: "Simplex", RX: "146.55"},
		{Name: "Bad Tone", RX: "147.27", CTCSS: "101.0"},
		{Name: "Out Of Band", RX: "223.94"},
		{Name: "Garbage", RX: "abc"},
		{Name: "", RX: "146.52"},
	}}.Build()
	require.NoError(t, err)

	require.Len(t, out.Channels, 2)
	ke8il := out.Channels[0]
	assert.Equal(t, "KE8IL UHF", ke8il.Name)
	assert.Equal(t, "444.80000", ke8il.RX.String())
	assert.Equal(t, "449.80000", ke8il.TX.String())
	assert.Equal(t, model.Tone(1000), ke8il.CTCSS)
	assert.Equal(t, model.PowerHigh, ke8il.Power)
	assert.Equal(t, model.Narrow, ke8il.Bandwidth)

	simplex := out.Channels[1]
	assert.Equal(t, simplex.RX, simplex.TX)
	assert.Equal(t, model.NoTone, simplex.CTCSS)

	require.Len(t, out.Rejected, 4)
	for _, rej := range out.Rejected {
		assert.True(t, errors.Is(rej, ErrConfig))
		assert.Equal(t, model.CategoryAnalogRepeater, rej.Category)
	}
	assert.Equal(t, "ctcss", out.Rejected[0].Field)
	assert.Equal(t, "rx", out.Rejected[1].Field)
	assert.Equal(t, "#6", out.Rejected[3].Item)
}

func TestDMRBuilderHotspotSlot2(t *testing.T) {
	out, err := DMRBuilder{
		Talkgroups: testTable(),
		Repeaters: []DMRRepeater{
			{Name: "Hotspot", RX: "430.000", TX: "430.000", Slot2: "91"},
		},
	}.Build()
	require.NoError(t, err)
	require.Empty(t, out.Rejected)
	require.Len(t, out.Channels, 1)

	ch := out.Channels[0]
	assert.Equal(t, uint8(2), ch.TimeSlot)
	assert.Equal(t, uint32(91), ch.ContactTS2)
	assert.Zero(t, ch.ContactTS1)
	assert.Equal(t, "Worldwide", ch.Contact)
	assert.Empty(t, ch.RXContacts)
	assert.Equal(t, uint8(1), ch.ColorCode)
	assert.Equal(t, model.Digital, ch.Type)
}

func TestDMRBuilderBothSlots(t *testing.T) {
	out, err := DMRBuilder{
		Talkgroups: testTable(),
		Repeaters: []DMRRepeater{
			{Name: "KB0P DMR", RX: "442.200", TX: "447.200", ColorCode: "3", Slot1: "3100", Slot2: "31268"},
			{Name: "KB0P TS2", RX: "442.200", TX: "447.200", TimeSlot: "Slot 2", Slot1: "3100", Slot2: "31268"},
			{Name: "Local", RX: "442.200", Slot1: "0"},
		},
	}.Build()
	require.NoError(t, err)
	require.Len(t, out.Channels, 3)

	assert.Equal(t, uint8(1), out.Channels[0].TimeSlot)
	assert.Equal(t, uint8(3), out.Channels[0].ColorCode)
	assert.Equal(t, "USA Nationwide", out.Channels[0].Contact)
	assert.Equal(t, uint32(31268), out.Channels[0].ContactTS2)

	assert.Equal(t, []string{"USA Nationwide", "UPTG"}, out.Channels[0].RXContacts)

	assert.Equal(t, "UPTG", out.Channels[1].Contact)
	assert.Equal(t, []string{"USA Nationwide", "UPTG"}, out.Channels[1].RXContacts)
	assert.Equal(t, NoContact, out.Channels[2].Contact)
	assert.Equal(t, uint8(1), out.Channels[2].TimeSlot)
	assert.Empty(t, out.Channels[2].RXContacts)
}

func TestDMRBuilderInactiveSlotOnly(t *testing.T) {
	out, err := DMRBuilder{
		Talkgroups: testTable(),
		Repeaters: []DMRRepeater{
			{Name: "KB0P Local", RX: "442.200", TimeSlot: "2", Slot1: "91"},
		},
	}.Build()
	require.NoError(t, err)
	require.Len(t, out.Channels, 1)

	ch := out.Channels[0]
	assert.Equal(t, NoContact, ch.Contact)
	assert.Equal(t, uint32(91), ch.ContactTS1)
	assert.Equal(t, []string{"Worldwide"}, ch.RXContacts)
}

func TestDMRBuilderRejects(t *testing.T) {
	out, err := DMRBuilder{
		Talkgroups: testTable(),
		Repeaters: []DMRRepeater{
			{Name: "Unknown TG", RX: "442.200", Slot1: "123456"},
			{Name: "Bad CC", RX: "442.200", ColorCode: "16"},
			{Name: "Bad Slot", RX: "442.200", TimeSlot: "3"},
			{Name: "Bad Band", RX: "900.000"},
			{Name: "Bad Power", RX: "442.200", Power: "max"},
		},
	}.Build()
	require.NoError(t, err)
	assert.Empty(t, out.Channels)
	require.Len(t, out.Rejected, 5)

	var cfgErr *ConfigError
	require.True(t, errors.As(error(out.Rejected[0]), &cfgErr))
	assert.Equal(t, "slot1", cfgErr.Field)
	assert.Contains(t, cfgErr.Error(), "123456")
	assert.Equal(t, "color_code", out.Rejected[1].Field)
	assert.Equal(t, "time_slot", out.Rejected[2].Field)
	assert.Equal(t, "rx", out.Rejected[3].Field)
	assert.Equal(t, "power", out.Rejected[4].Field)
}

func TestTalkgroupBuilder(t *testing.T) {
	out, err := TalkgroupBuilder{
		Talkgroups:   testTable(),
		Count:        3,
		Digital:      Digital{RX: "430.000"},
		DefaultPower: model.PowerLow,
		IncludeID:    true,
	}.Build()
	require.NoError(t, err)
	require.Len(t, out.Channels, 3)
	assertNamesBounded(t, out.Channels)

	first := out.Channels[0]
	assert.Equal(t, "Worldwide 91", first.Name)
	assert.Equal(t, model.PowerLow, first.Power)
	assert.Equal(t, uint8(2), first.TimeSlot)
	assert.Equal(t, uint32(91), first.ContactTS2)
	assert.Equal(t, "Worldwide", first.Contact)
	assert.Equal(t, "N Ameri 93", out.Channels[1].Name)
}

func TestTalkgroupBuilderRejectsFrequency(t *testing.T) {
	out, err := TalkgroupBuilder{Talkgroups: testTable(), Digital: Digital{RX: "1296.0"}}.Build()
	require.NoError(t, err)
	assert.Empty(t, out.Channels)
	require.Len(t, out.Rejected, 1)
	assert.Equal(t, model.CategoryTalkgroup, out.Rejected[0].Category)
}

func TestTalkgroupBuilderEmptyTable(t *testing.T) {
	out, err := TalkgroupBuilder{Digital: Digital{RX: "garbage"}}.Build()
	require.NoError(t, err)
	assert.Empty(t, out.Channels)
	assert.Empty(t, out.Rejected)
}

func TestPopularBuilder(t *testing.T) {
	out, err := PopularBuilder{
		Enabled:    true,
		Talkgroups: testTable(),
		Digital:    Digital{RX: "430.000"},
		IncludeID:  true,
	}.Build()
	require.NoError(t, err)
	require.Len(t, out.Channels, len(PopularTalkgroups))
	assertNamesBounded(t, out.Channels)

	assert.Equal(t, "Worldwide 91", out.Channels[0].Name)
	assert.Equal(t, model.PowerMiddle, out.Channels[0].Power)
	assert.Equal(t, "USA Nationwide", out.Channels[2].Contact)
	assert.Equal(t, "SkyHub Link", out.Channels[4].Contact)
	for _, ch := range out.Channels {
		assert.Equal(t, model.CategoryPopular, ch.Category)
		assert.Equal(t, ch.ActiveContact(), ch.ContactTS2)
	}

	out, err = PopularBuilder{Talkgroups: testTable(), Digital: Digital{RX: "430.000"}}.Build()
	require.NoError(t, err)
	assert.Empty(t, out.Channels)
}

func TestBuildersAreSealed(t *testing.T) {
	var bs = []Builder{
		StaticBuilder{Kind: model.CategoryNOAA},
		PopularBuilder{},
		AnalogBuilder{},
		DMRBuilder{},
		TalkgroupBuilder{},
	}
	cats := []model.Category{
		model.CategoryNOAA, model.CategoryPopular, model.CategoryAnalogRepeater,
		model.CategoryDMRRepeater, model.CategoryTalkgroup,
	}
	for i, b := range bs {
		assert.Equal(t, cats[i], b.Category())
	}
}
