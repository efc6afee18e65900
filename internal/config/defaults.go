package config

import (
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/asciiname"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/builder"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/codeplug"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/model"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/talkgroup"
)

// DefaultTalkgroupZoneName is the zone title for the imported talkgroups.
const DefaultTalkgroupZoneName = "Hotspot"

// DefaultHotspotFrequency is a common UHF simplex hotspot frequency.
const DefaultHotspotFrequency = "430.00000"

// Default returns a definition that enables every built-in category and a
// hotspot talkgroup zone.
func Default() Config {
	cats := make(map[string]Scalar)
	for _, c := range builder.StaticCategories() {
		cats[c.String()] = "yes"
	}
	return Config{
		Talkgroups: TalkgroupsConfig{
			Encoding:     "utf-8",
			Delimiter:    ",",
			MaxLength:    asciiname.DefaultMaxLength,
			PrivateIDs:   append([]uint32(nil), talkgroup.DefaultPrivateIDs...),
			ContactLimit: model.MaxContacts,
		},
		Output: OutputConfig{
			Dir:      ".",
			Prefix:   codeplug.DefaultPrefix,
			Encoding: "ascii",
		},
		Radio: RadioConfig{
			DMRID:        codeplug.DefaultDMRID,
			ChannelLimit: model.MaxChannels,
			ZoneLimit:    model.MaxZones,
		},
		TalkgroupZone: TalkgroupZoneConfig{
			Name:            DefaultTalkgroupZoneName,
			Count:           builder.DefaultTalkgroupCount,
			Hotspot:         "yes",
			RX:              DefaultHotspotFrequency,
			TX:              DefaultHotspotFrequency,
			ColorCode:       "1",
			TimeSlot:        "2",
			IncludeIDInName: "yes",
		},
		Categories: cats,
	}
}
